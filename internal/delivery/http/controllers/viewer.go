package controllers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/riskaamelia-wd/sumq/internal/app_errors"
	"github.com/riskaamelia-wd/sumq/internal/service/viewer"
	"github.com/riskaamelia-wd/sumq/pkg/logger"
)

type ViewerService interface {
	OpenSubtopicSession(ctx context.Context, subtopicID uuid.UUID, initial int) (*viewer.SessionView, error)
	OpenShowcaseSession() (*viewer.SessionView, error)
	CurrentFrame(sessionID uuid.UUID) (*viewer.SessionView, error)
	Next(sessionID uuid.UUID) (*viewer.SessionView, error)
	Prev(sessionID uuid.UUID) (*viewer.SessionView, error)
	GoTo(sessionID uuid.UUID, index int) (*viewer.SessionView, error)
	SelectAnswer(sessionID uuid.UUID, index int) (*viewer.SessionView, error)
	CloseSession(sessionID uuid.UUID)
}

type ViewerHandler struct {
	ViewerService ViewerService
	log           logger.Log
}

func NewViewerHandler(l logger.Log, viewerService ViewerService) *ViewerHandler {
	return &ViewerHandler{
		ViewerService: viewerService,
		log:           l,
	}
}

func (h *ViewerHandler) OpenSubtopicSession(c *gin.Context) {
	subtopicID, err := uuid.Parse(c.Param("subtopic_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid subtopic_id"})
		return
	}
	initial := 0
	if raw := c.Query("initial"); raw != "" {
		initial, err = strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid initial index"})
			return
		}
	}

	view, err := h.ViewerService.OpenSubtopicSession(c.Request.Context(), subtopicID, initial)
	if err != nil {
		if errors.Is(err, app_errors.ErrEmptyDeck) {
			c.JSON(http.StatusOK, gin.H{"message": "no slides available"})
			return
		}
		h.respondViewerErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, view)
}

func (h *ViewerHandler) OpenShowcaseSession(c *gin.Context) {
	view, err := h.ViewerService.OpenShowcaseSession()
	if err != nil {
		h.respondViewerErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, view)
}

func (h *ViewerHandler) CurrentFrame(c *gin.Context) {
	sessionID, err := uuid.Parse(c.Param("session_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid session_id"})
		return
	}
	view, err := h.ViewerService.CurrentFrame(sessionID)
	if err != nil {
		h.respondViewerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *ViewerHandler) Next(c *gin.Context) {
	sessionID, err := uuid.Parse(c.Param("session_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid session_id"})
		return
	}
	view, err := h.ViewerService.Next(sessionID)
	if err != nil {
		h.respondViewerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *ViewerHandler) Prev(c *gin.Context) {
	sessionID, err := uuid.Parse(c.Param("session_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid session_id"})
		return
	}
	view, err := h.ViewerService.Prev(sessionID)
	if err != nil {
		h.respondViewerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

type goToRequest struct {
	Index *int `json:"index" binding:"required"`
}

func (h *ViewerHandler) GoTo(c *gin.Context) {
	sessionID, err := uuid.Parse(c.Param("session_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid session_id"})
		return
	}
	var input goToRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	view, err := h.ViewerService.GoTo(sessionID, *input.Index)
	if err != nil {
		h.respondViewerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

type selectAnswerRequest struct {
	Index *int `json:"index" binding:"required"`
}

func (h *ViewerHandler) SelectAnswer(c *gin.Context) {
	sessionID, err := uuid.Parse(c.Param("session_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid session_id"})
		return
	}
	var input selectAnswerRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	view, err := h.ViewerService.SelectAnswer(sessionID, *input.Index)
	if err != nil {
		h.respondViewerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *ViewerHandler) CloseSession(c *gin.Context) {
	sessionID, err := uuid.Parse(c.Param("session_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid session_id"})
		return
	}
	h.ViewerService.CloseSession(sessionID)
	c.JSON(http.StatusOK, gin.H{"status": "session closed"})
}

func (h *ViewerHandler) respondViewerErr(c *gin.Context, err error) {
	switch {
	case errors.Is(err, app_errors.ErrSessionNotFound),
		errors.Is(err, app_errors.ErrSubtopicNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, app_errors.ErrInvalidSlide),
		errors.Is(err, app_errors.ErrUnknownTemplate):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
