package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/riskaamelia-wd/sumq/pkg/logger"
)

type GenerationService interface {
	GenerateQuestions(ctx context.Context, topic string) (string, error)
}

type GenerateHandler struct {
	GenerationService GenerationService
	log               logger.Log
}

func NewGenerateHandler(l logger.Log, generationService GenerationService) *GenerateHandler {
	return &GenerateHandler{
		GenerationService: generationService,
		log:               l,
	}
}

type generateRequest struct {
	Topic string `json:"topic" binding:"required"`
}

func (h *GenerateHandler) GenerateQuestions(c *gin.Context) {
	var input generateRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.GenerationService.GenerateQuestions(c.Request.Context(), input.Topic)
	if err != nil {
		h.log.ErrorErr("question generation failed", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"result": result})
}
