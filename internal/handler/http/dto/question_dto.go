package dto

import (
	"time"

	"github.com/mikiasgoitom/QAForum/internal/domain/entity"
)

type CreateQuestionRequest struct {
	Title   string `json:"title" binding:"required,notblank,max=300"`
	Content string `json:"content" binding:"required,notblank"`
}

type CreateAnswerRequest struct {
	Content string `json:"content" binding:"required,notblank"`
}

type QuestionResponse struct {
	ID        uint             `json:"id"`
	Title     string           `json:"title"`
	Content   string           `json:"content"`
	UserID    uint             `json:"userId"`
	CreatedAt time.Time        `json:"createdAt"`
	User      UserSummary      `json:"user"`
	Answers   []AnswerResponse `json:"answers"`
}

// QuestionRef is the question embedded in an answer.
type QuestionRef struct {
	ID    uint         `json:"id"`
	Title string       `json:"title"`
	User  *UserSummary `json:"user,omitempty"`
}

type AnswerResponse struct {
	ID         uint         `json:"id"`
	Content    string       `json:"content"`
	UserID     uint         `json:"userId"`
	QuestionID uint         `json:"questionId"`
	Likes      int          `json:"likes"`
	CreatedAt  time.Time    `json:"createdAt"`
	User       UserSummary  `json:"user"`
	Question   *QuestionRef `json:"question,omitempty"`
}

type LikeResponse struct {
	Message string `json:"message"`
	Likes   int    `json:"likes"`
}

type SearchResponse struct {
	Questions  []QuestionResponse `json:"questions"`
	Answers    []AnswerResponse   `json:"answers"`
	SearchTerm string             `json:"searchTerm"`
}

func ToQuestionResponse(q entity.Question) QuestionResponse {
	return QuestionResponse{
		ID:        q.ID,
		Title:     q.Title,
		Content:   q.Content,
		UserID:    q.UserID,
		CreatedAt: q.CreatedAt,
		User:      ToUserSummary(q.User),
		Answers:   ToAnswerResponses(q.Answers),
	}
}

func ToQuestionResponses(questions []entity.Question) []QuestionResponse {
	out := make([]QuestionResponse, 0, len(questions))
	for _, q := range questions {
		out = append(out, ToQuestionResponse(q))
	}
	return out
}

func ToAnswerResponse(a entity.Answer) AnswerResponse {
	resp := AnswerResponse{
		ID:         a.ID,
		Content:    a.Content,
		UserID:     a.UserID,
		QuestionID: a.QuestionID,
		Likes:      a.Likes,
		CreatedAt:  a.CreatedAt,
		User:       ToUserSummary(a.User),
	}
	if a.Question != nil {
		ref := &QuestionRef{ID: a.Question.ID, Title: a.Question.Title}
		// only loaded by search
		if a.Question.User.ID != 0 {
			u := ToUserSummary(a.Question.User)
			ref.User = &u
		}
		resp.Question = ref
	}
	return resp
}

// ToAnswerResponses never returns nil so empty lists encode as [].
func ToAnswerResponses(answers []entity.Answer) []AnswerResponse {
	out := make([]AnswerResponse, 0, len(answers))
	for _, a := range answers {
		out = append(out, ToAnswerResponse(a))
	}
	return out
}

func ToLikeResponse(r entity.LikeResult) LikeResponse {
	return LikeResponse{Message: string(r.State), Likes: r.Likes}
}

func ToSearchResponse(r entity.SearchResult) SearchResponse {
	return SearchResponse{
		Questions:  ToQuestionResponses(r.Questions),
		Answers:    ToAnswerResponses(r.Answers),
		SearchTerm: r.SearchTerm,
	}
}
