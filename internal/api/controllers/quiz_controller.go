package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"cholojai/internal/models/request_models"
	"cholojai/internal/services"
	"cholojai/pkg/utils"
)

type QuizController struct {
	quizService services.QuizServiceInterface
}

func NewQuizController(quizService services.QuizServiceInterface) *QuizController {
	return &QuizController{
		quizService: quizService,
	}
}

func (q *QuizController) StartQuizHandler(c *gin.Context) {
	var req request_models.QuizStartRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Nickname) == "" {
		utils.RespondError(c, http.StatusBadRequest, "nickname is required")
		return
	}

	resp := q.quizService.StartQuiz(strings.TrimSpace(req.Nickname))
	utils.RespondSuccess(c, resp, "Quiz started")
}

func (q *QuizController) AnswerQuizHandler(c *gin.Context) {
	var req request_models.QuizAnswersRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.SessionID == "" {
		utils.RespondError(c, http.StatusBadRequest, "session_id is required")
		return
	}

	if err := q.quizService.SubmitAnswers(req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Answers accepted")
}

func (q *QuizController) QuizResultHandler(c *gin.Context) {
	sessionID := c.Param("sessionId")
	if sessionID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Session ID is required")
		return
	}

	result, err := q.quizService.GetResult(sessionID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Quiz result ready")
}
