package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mikiasgoitom/QAForum/internal/handler/http/dto"
	"github.com/mikiasgoitom/QAForum/internal/usecase"
	usecasecontract "github.com/mikiasgoitom/QAForum/internal/usecase/contract"
)

type InteractionHandler struct {
	likeUsecase usecasecontract.ILikeUseCase
}

func NewInteractionHandler(likeUsecase usecasecontract.ILikeUseCase) *InteractionHandler {
	return &InteractionHandler{
		likeUsecase: likeUsecase,
	}
}

// ToggleAnswerLikeHandler handles POST /api/questions/answers/:id/like
func (h *InteractionHandler) ToggleAnswerLikeHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	answerID, ok := idParam(c, "id", "Invalid answer ID")
	if !ok {
		return
	}

	result, err := h.likeUsecase.ToggleLike(c.Request.Context(), userID, answerID)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrAnswerNotFound):
			ErrorHandler(c, http.StatusNotFound, "Answer not found")
		case errors.Is(err, usecase.ErrLikeConflict):
			ErrorHandler(c, http.StatusConflict, "Like is being toggled concurrently, please retry")
		default:
			internalError(c, "Failed to toggle like", err)
		}
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToLikeResponse(*result))
}
