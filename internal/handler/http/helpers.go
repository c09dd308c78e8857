package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/mikiasgoitom/QAForum/internal/handler/http/dto"
	"github.com/mikiasgoitom/QAForum/internal/handler/http/middleware"
)

// ErrorHandler centralizes error handling for HTTP responses
func ErrorHandler(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, dto.ErrorResponse{Error: message})
}

// SuccessHandler centralizes success responses
func SuccessHandler(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

// MessageHandler centralizes message responses
func MessageHandler(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, dto.MessageResponse{Message: message})
}

// BindAndValidate binds JSON request and validates it
func BindAndValidate(c *gin.Context, req interface{}) error {
	if err := c.ShouldBindJSON(req); err != nil {
		ErrorHandler(c, http.StatusBadRequest, err.Error())
		return err
	}
	return nil
}

// currentUserID writes a 401 and returns false when the request is unauthenticated.
func currentUserID(c *gin.Context) (uint, bool) {
	id, ok := middleware.UserIDFromContext(c)
	if !ok {
		ErrorHandler(c, http.StatusUnauthorized, "User not authenticated")
		return 0, false
	}
	return id, true
}

// idParam parses a positive integer path parameter, writing a 400 otherwise.
func idParam(c *gin.Context, name, message string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 0)
	if err != nil || id == 0 {
		ErrorHandler(c, http.StatusBadRequest, message)
		return 0, false
	}
	return uint(id), true
}

// internalError logs the cause against the request and answers with a generic message.
func internalError(c *gin.Context, message string, err error) {
	_ = c.Error(err)
	ErrorHandler(c, http.StatusInternalServerError, message)
}
