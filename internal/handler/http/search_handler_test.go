package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/mikiasgoitom/QAForum/internal/domain/entity"
	handler "github.com/mikiasgoitom/QAForum/internal/handler/http"
	dto "github.com/mikiasgoitom/QAForum/internal/handler/http/dto"
	mocks "github.com/mikiasgoitom/QAForum/internal/handler/http/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func search(r *gin.Engine, rawQuery string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/questions/search"+rawQuery, nil)
	r.ServeHTTP(w, req)
	return w
}

func searchRouter(uc *mocks.MockSearchUsecase) *gin.Engine {
	r := gin.New()
	r.GET("/api/questions/search", handler.NewSearchHandler(uc).Search)
	return r
}

func TestSearch(t *testing.T) {
	uc := mocks.NewMockSearchUsecase()
	uc.Result = entity.SearchResult{
		Questions: []entity.Question{{ID: 1, Title: "Foo Bar", User: entity.User{ID: 1, Username: "ada"}}},
		Answers: []entity.Answer{{
			ID: 4, Content: "foo", QuestionID: 1, User: entity.User{ID: 2, Username: "bob"},
			Question: &entity.Question{ID: 1, Title: "Foo Bar", User: entity.User{ID: 1, Username: "ada"}},
		}},
	}

	w := search(searchRouter(uc), "?q="+url.QueryEscape(" foo "))

	require.Equal(t, http.StatusOK, w.Code)
	var got dto.SearchResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "foo", got.SearchTerm)
	require.Len(t, got.Questions, 1)
	require.Len(t, got.Answers, 1)
	require.NotNil(t, got.Answers[0].Question)
	require.NotNil(t, got.Answers[0].Question.User)
	assert.Equal(t, "ada", got.Answers[0].Question.User.Username)
}

func TestSearch_NoMatches(t *testing.T) {
	w := search(searchRouter(mocks.NewMockSearchUsecase()), "?q=zzz")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"questions":[],"answers":[],"searchTerm":"zzz"}`, w.Body.String())
}

func TestSearch_MissingTerm(t *testing.T) {
	r := searchRouter(mocks.NewMockSearchUsecase())
	for _, q := range []string{"", "?q=", "?q=%20%20"} {
		w := search(r, q)
		assert.Equal(t, http.StatusBadRequest, w.Code, q)
		assert.JSONEq(t, `{"error":"Search term required"}`, w.Body.String())
	}
}

func TestSearch_Fail(t *testing.T) {
	uc := mocks.NewMockSearchUsecase()
	uc.ShouldFail = true

	w := search(searchRouter(uc), "?q=foo")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Failed to search"}`, w.Body.String())
}
