package controllers

import (
	"github.com/gin-gonic/gin"

	"cholojai/internal/models/request_models"
	"cholojai/internal/services"
	"cholojai/pkg/utils"
)

type HandoffController struct {
	handoffService services.HandoffServiceInterface
}

func NewHandoffController(handoffService services.HandoffServiceInterface) *HandoffController {
	return &HandoffController{
		handoffService: handoffService,
	}
}

func (h *HandoffController) CreateHandoffHandler(c *gin.Context) {
	// An empty body is fine; the service falls back to a generic greeting.
	var req request_models.HandoffRequest
	_ = c.ShouldBindJSON(&req)

	resp, err := h.handoffService.BuildLink(req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Handoff link created")
}
