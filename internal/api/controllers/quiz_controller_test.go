package controllers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cholojai/internal/models/response_models"
	"cholojai/internal/services"
	"cholojai/pkg/memcache"
)

func newQuizRouter() *gin.Engine {
	catalog := newTestCatalog()
	quizService := services.NewQuizService(catalog, services.NewPackageService(catalog), memcache.NewQuizSessions())
	controller := NewQuizController(quizService)

	r := gin.New()
	quiz := r.Group("/api/quiz")
	quiz.POST("/start", controller.StartQuizHandler)
	quiz.POST("/answers", controller.AnswerQuizHandler)
	quiz.GET("/:sessionId/result", controller.QuizResultHandler)
	return r
}

func startQuiz(t *testing.T, r *gin.Engine, nickname string) response_models.QuizStartResponse {
	t.Helper()
	w := performRequest(r, http.MethodPost, "/api/quiz/start", strings.NewReader(fmt.Sprintf(`{"nickname": %q}`, nickname)))
	require.Equal(t, http.StatusOK, w.Code)

	var resp response_models.QuizStartResponse
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, w).Data, &resp))
	return resp
}

func TestStartQuizHandlerRequiresNickname(t *testing.T) {
	r := newQuizRouter()

	for _, body := range []string{`{}`, `{"nickname": "  "}`, `not json`} {
		w := performRequest(r, http.MethodPost, "/api/quiz/start", strings.NewReader(body))
		assert.Equal(t, http.StatusBadRequest, w.Code, body)
	}
}

func TestStartQuizHandler(t *testing.T) {
	r := newQuizRouter()

	resp := startQuiz(t, r, "Ayesha")

	assert.NotEmpty(t, resp.SessionID)
	assert.Equal(t, "Ayesha", resp.Nickname)
	assert.Len(t, resp.Destinations, 2)
	assert.Contains(t, resp.BudgetRanges, "low")
}

func TestAnswerQuizHandlerRequiresSessionID(t *testing.T) {
	r := newQuizRouter()

	w := performRequest(r, http.MethodPost, "/api/quiz/answers", strings.NewReader(`{"budget": "low"}`))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAnswerQuizHandlerUnknownSession(t *testing.T) {
	r := newQuizRouter()

	body := `{"session_id": "nope", "budget": "low", "destinations": ["coxs"]}`
	w := performRequest(r, http.MethodPost, "/api/quiz/answers", strings.NewReader(body))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Quiz session not found or expired", decodeEnvelope(t, w).Message)
}

func TestAnswerQuizHandlerInvalidBudget(t *testing.T) {
	r := newQuizRouter()
	start := startQuiz(t, r, "Ayesha")

	body := fmt.Sprintf(`{"session_id": %q, "budget": "luxury", "destinations": ["coxs"]}`, start.SessionID)
	w := performRequest(r, http.MethodPost, "/api/quiz/answers", strings.NewReader(body))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Budget must be one of low, medium, high", decodeEnvelope(t, w).Message)
}

func TestQuizResultHandlerBeforeAnswers(t *testing.T) {
	r := newQuizRouter()
	start := startQuiz(t, r, "Ayesha")

	w := performRequest(r, http.MethodGet, "/api/quiz/"+start.SessionID+"/result", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Submit quiz answers before requesting results", decodeEnvelope(t, w).Message)
}

func TestQuizFlowOverHTTP(t *testing.T) {
	r := newQuizRouter()
	start := startQuiz(t, r, "Ayesha")

	body := fmt.Sprintf(`{"session_id": %q, "budget": "medium", "destinations": ["bangkok"]}`, start.SessionID)
	w := performRequest(r, http.MethodPost, "/api/quiz/answers", strings.NewReader(body))
	require.Equal(t, http.StatusOK, w.Code)

	w = performRequest(r, http.MethodGet, "/api/quiz/"+start.SessionID+"/result", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var result response_models.QuizResultResponse
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, w).Data, &result))

	assert.Equal(t, "Ayesha", result.Nickname)
	assert.True(t, result.ExactMatch)
	require.Len(t, result.Packages, 1)
	assert.Equal(t, "bangkok", result.Packages[0].Destination)
}
