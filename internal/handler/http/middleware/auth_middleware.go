package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/mikiasgoitom/QAForum/internal/handler/http/dto"
	"github.com/mikiasgoitom/QAForum/internal/usecase"
	usecasecontract "github.com/mikiasgoitom/QAForum/internal/usecase/contract"
)

// ContextUserIDKey is the gin context key holding the authenticated user id (uint).
const ContextUserIDKey = "userID"

// AuthMiddleWare accepts only requests carrying a valid bearer token whose
// subject is an existing user.
func AuthMiddleWare(jwtService usecase.JWTService, userUsecase usecasecontract.IUserUseCase) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			abortUnauthorized(c, "Authorization header required")
			return
		}

		claims, err := jwtService.ParseAccessToken(tokenStr)
		if err != nil {
			abortUnauthorized(c, "Invalid or expired token")
			return
		}

		user, err := userUsecase.GetUserByID(c.Request.Context(), claims.UserID)
		if err != nil {
			if errors.Is(err, usecase.ErrUserNotFound) {
				abortUnauthorized(c, "User no longer exists")
				return
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to authenticate"})
			return
		}

		c.Set(ContextUserIDKey, user.ID)
		c.Next()
	}
}

// UserIDFromContext returns the id stored by AuthMiddleWare.
func UserIDFromContext(c *gin.Context) (uint, bool) {
	v, exists := c.Get(ContextUserIDKey)
	if !exists {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok && id != 0
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

func abortUnauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Error: message})
}
