package controllers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/riskaamelia-wd/sumq/internal/app_errors"
	"github.com/riskaamelia-wd/sumq/internal/models"
	"github.com/riskaamelia-wd/sumq/pkg/logger"
)

type TemplateService interface {
	ListTemplates(ctx context.Context) ([]models.TemplateMeta, error)
	TemplateByName(ctx context.Context, name string) (*models.TemplateMeta, error)
}

type TemplateHandler struct {
	TemplateService TemplateService
	log             logger.Log
}

func NewTemplateHandler(l logger.Log, templateService TemplateService) *TemplateHandler {
	return &TemplateHandler{
		TemplateService: templateService,
		log:             l,
	}
}

func (h *TemplateHandler) ListTemplates(c *gin.Context) {
	templates, err := h.TemplateService.ListTemplates(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"templates": templates})
}

func (h *TemplateHandler) TemplateByName(c *gin.Context) {
	name := c.Param("name")
	template, err := h.TemplateService.TemplateByName(c.Request.Context(), name)
	if err != nil {
		if errors.Is(err, app_errors.ErrTemplateNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, template)
}
