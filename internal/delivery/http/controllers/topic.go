package controllers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/riskaamelia-wd/sumq/internal/app_errors"
	"github.com/riskaamelia-wd/sumq/internal/models"
	"github.com/riskaamelia-wd/sumq/pkg/logger"
)

type TopicService interface {
	CreateTopic(ctx context.Context, topic models.Topic) (*models.Topic, error)
	TopicByID(ctx context.Context, id uuid.UUID) (*models.Topic, error)
	ListTopics(ctx context.Context) ([]models.Topic, error)
	SearchTopics(ctx context.Context, query string, size int) ([]models.Topic, error)
	UpdateTopic(ctx context.Context, topic models.Topic) (*models.Topic, error)
	SetTopicActive(ctx context.Context, id uuid.UUID, active bool) error
	DeleteTopic(ctx context.Context, id uuid.UUID) error
	CreateSubtopic(ctx context.Context, sub models.Subtopic) (*models.Subtopic, error)
	SubtopicsByTopic(ctx context.Context, topicID uuid.UUID) ([]models.Subtopic, error)
	UpdateSubtopic(ctx context.Context, sub models.Subtopic) (*models.Subtopic, error)
	DeleteSubtopic(ctx context.Context, id uuid.UUID) error
}

type TopicHandler struct {
	TopicService TopicService
	log          logger.Log
}

func NewTopicHandler(l logger.Log, topicService TopicService) *TopicHandler {
	return &TopicHandler{
		TopicService: topicService,
		log:          l,
	}
}

type newTopicRequest struct {
	Name string `json:"name" binding:"required"`
}

func (h *TopicHandler) CreateTopic(c *gin.Context) {
	var input newTopicRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	topic, err := h.TopicService.CreateTopic(c.Request.Context(), models.Topic{Name: input.Name})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, topic)
}

func (h *TopicHandler) ListTopics(c *gin.Context) {
	if query := c.Query("q"); query != "" {
		size, _ := strconv.Atoi(c.DefaultQuery("size", "10"))
		topics, err := h.TopicService.SearchTopics(c.Request.Context(), query, size)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"topics": topics})
		return
	}

	topics, err := h.TopicService.ListTopics(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"topics": topics})
}

func (h *TopicHandler) TopicByID(c *gin.Context) {
	topicID, err := uuid.Parse(c.Param("topic_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid topic_id"})
		return
	}
	topic, err := h.TopicService.TopicByID(c.Request.Context(), topicID)
	if err != nil {
		if errors.Is(err, app_errors.ErrTopicNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, topic)
}

type updateTopicRequest struct {
	Name   string `json:"name" binding:"required"`
	Active *bool  `json:"active" binding:"required"`
}

func (h *TopicHandler) UpdateTopic(c *gin.Context) {
	topicID, err := uuid.Parse(c.Param("topic_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid topic_id"})
		return
	}
	var input updateTopicRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	topic, err := h.TopicService.UpdateTopic(c.Request.Context(), models.Topic{
		ID:     topicID,
		Name:   input.Name,
		Active: *input.Active,
	})
	if err != nil {
		if errors.Is(err, app_errors.ErrTopicNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, topic)
}

type setActiveRequest struct {
	Active *bool `json:"active" binding:"required"`
}

func (h *TopicHandler) SetTopicActive(c *gin.Context) {
	topicID, err := uuid.Parse(c.Param("topic_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid topic_id"})
		return
	}
	var input setActiveRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.TopicService.SetTopicActive(c.Request.Context(), topicID, *input.Active); err != nil {
		if errors.Is(err, app_errors.ErrTopicNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{})
}

func (h *TopicHandler) DeleteTopic(c *gin.Context) {
	topicID, err := uuid.Parse(c.Param("topic_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid topic_id"})
		return
	}
	if err := h.TopicService.DeleteTopic(c.Request.Context(), topicID); err != nil {
		if errors.Is(err, app_errors.ErrTopicNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "topic deleted"})
}

type newSubtopicRequest struct {
	Name string `json:"name" binding:"required"`
}

func (h *TopicHandler) CreateSubtopic(c *gin.Context) {
	topicID, err := uuid.Parse(c.Param("topic_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid topic_id"})
		return
	}
	var input newSubtopicRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	sub, err := h.TopicService.CreateSubtopic(c.Request.Context(), models.Subtopic{
		TopicID: topicID,
		Name:    input.Name,
	})
	if err != nil {
		if errors.Is(err, app_errors.ErrTopicNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, sub)
}

func (h *TopicHandler) SubtopicsByTopic(c *gin.Context) {
	topicID, err := uuid.Parse(c.Param("topic_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid topic_id"})
		return
	}
	subs, err := h.TopicService.SubtopicsByTopic(c.Request.Context(), topicID)
	if err != nil {
		if errors.Is(err, app_errors.ErrTopicNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"subtopics": subs})
}

type updateSubtopicRequest struct {
	Name   string `json:"name" binding:"required"`
	Active *bool  `json:"active" binding:"required"`
}

func (h *TopicHandler) UpdateSubtopic(c *gin.Context) {
	subtopicID, err := uuid.Parse(c.Param("subtopic_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid subtopic_id"})
		return
	}
	var input updateSubtopicRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	sub, err := h.TopicService.UpdateSubtopic(c.Request.Context(), models.Subtopic{
		ID:     subtopicID,
		Name:   input.Name,
		Active: *input.Active,
	})
	if err != nil {
		if errors.Is(err, app_errors.ErrSubtopicNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, sub)
}

func (h *TopicHandler) DeleteSubtopic(c *gin.Context) {
	subtopicID, err := uuid.Parse(c.Param("subtopic_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid subtopic_id"})
		return
	}
	if err := h.TopicService.DeleteSubtopic(c.Request.Context(), subtopicID); err != nil {
		if errors.Is(err, app_errors.ErrSubtopicNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "subtopic deleted"})
}
