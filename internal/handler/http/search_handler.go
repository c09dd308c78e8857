package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mikiasgoitom/QAForum/internal/handler/http/dto"
	"github.com/mikiasgoitom/QAForum/internal/usecase"
	usecasecontract "github.com/mikiasgoitom/QAForum/internal/usecase/contract"
)

type SearchHandler struct {
	searchUsecase usecasecontract.ISearchUseCase
}

func NewSearchHandler(searchUsecase usecasecontract.ISearchUseCase) *SearchHandler {
	return &SearchHandler{searchUsecase: searchUsecase}
}

// SearchHandler handles GET /api/questions/search?q=term
func (h *SearchHandler) Search(c *gin.Context) {
	result, err := h.searchUsecase.Search(c.Request.Context(), c.Query("q"))
	if err != nil {
		if errors.Is(err, usecase.ErrSearchTermRequired) {
			ErrorHandler(c, http.StatusBadRequest, "Search term required")
			return
		}
		internalError(c, "Failed to search", err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToSearchResponse(*result))
}
