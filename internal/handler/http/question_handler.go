package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mikiasgoitom/QAForum/internal/handler/http/dto"
	"github.com/mikiasgoitom/QAForum/internal/usecase"
	usecasecontract "github.com/mikiasgoitom/QAForum/internal/usecase/contract"
)

type QuestionHandler struct {
	questionUsecase usecasecontract.IQuestionUseCase
}

func NewQuestionHandler(questionUsecase usecasecontract.IQuestionUseCase) *QuestionHandler {
	return &QuestionHandler{questionUsecase: questionUsecase}
}

// CreateQuestionHandler handles POST /api/questions
func (h *QuestionHandler) CreateQuestionHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req dto.CreateQuestionRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	question, err := h.questionUsecase.CreateQuestion(c.Request.Context(), userID, req.Title, req.Content)
	if err != nil {
		if errors.Is(err, usecase.ErrValidation) {
			ErrorHandler(c, http.StatusBadRequest, err.Error())
			return
		}
		internalError(c, "Failed to create question", err)
		return
	}
	SuccessHandler(c, http.StatusCreated, dto.ToQuestionResponse(*question))
}

// ListQuestionsHandler handles GET /api/questions
func (h *QuestionHandler) ListQuestionsHandler(c *gin.Context) {
	questions, err := h.questionUsecase.ListQuestions(c.Request.Context())
	if err != nil {
		internalError(c, "Failed to fetch questions", err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToQuestionResponses(questions))
}

// CreateAnswerHandler handles POST /api/questions/:questionId/answers
func (h *QuestionHandler) CreateAnswerHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	questionID, ok := idParam(c, "questionId", "Invalid question ID")
	if !ok {
		return
	}
	var req dto.CreateAnswerRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	answer, err := h.questionUsecase.CreateAnswer(c.Request.Context(), userID, questionID, req.Content)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrValidation):
			ErrorHandler(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, usecase.ErrQuestionNotFound):
			ErrorHandler(c, http.StatusNotFound, "Question not found")
		default:
			internalError(c, "Failed to create answer", err)
		}
		return
	}
	SuccessHandler(c, http.StatusCreated, dto.ToAnswerResponse(*answer))
}

// ListAnswersHandler handles GET /api/questions/:questionId/answers
func (h *QuestionHandler) ListAnswersHandler(c *gin.Context) {
	questionID, ok := idParam(c, "questionId", "Invalid question ID")
	if !ok {
		return
	}
	answers, err := h.questionUsecase.ListAnswers(c.Request.Context(), questionID)
	if err != nil {
		internalError(c, "Failed to fetch answers", err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToAnswerResponses(answers))
}
