package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"cholojai/internal/models/request_models"
	"cholojai/internal/services"
)

type AssistantController struct {
	assistantService services.AssistantServiceInterface
}

func NewAssistantController(assistantService services.AssistantServiceInterface) *AssistantController {
	return &AssistantController{
		assistantService: assistantService,
	}
}

// ChatHandler keeps the chat widget's wire contract: a malformed body is the
// only 400; everything else, failures included, comes back as 200 with a
// response and a source tag, so the widget only ever reads "response".
func (a *AssistantController) ChatHandler(c *gin.Context) {
	var req request_models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Message) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid message"})
		return
	}

	resp := a.assistantService.Resolve(c.Request.Context(), req.Message)
	c.JSON(http.StatusOK, resp)
}
