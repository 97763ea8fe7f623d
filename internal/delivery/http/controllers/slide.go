package controllers

import (
	"context"
	"errors"
	"io"
	"mime"
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/riskaamelia-wd/sumq/internal/app_errors"
	"github.com/riskaamelia-wd/sumq/internal/models"
	"github.com/riskaamelia-wd/sumq/pkg/logger"
)

type SlideService interface {
	CreateSlide(ctx context.Context, slide models.Slide) (*models.Slide, error)
	SlideByID(ctx context.Context, id uuid.UUID) (*models.Slide, error)
	SlidesBySubtopic(ctx context.Context, subtopicID uuid.UUID) ([]models.Slide, error)
	UpdateSlide(ctx context.Context, slide models.Slide) (*models.Slide, error)
	SwapSlides(ctx context.Context, slideID1, slideID2 uuid.UUID) error
	DeleteSlide(ctx context.Context, id uuid.UUID) error
	UploadSlideImage(ctx context.Context, slideID uuid.UUID, filename string, file io.Reader, size int64, contentType string) (*models.Slide, error)
	SlideImageURL(ctx context.Context, slideID uuid.UUID) (string, error)
}

type SlideHandler struct {
	SlideService SlideService
	log          logger.Log
}

func NewSlideHandler(l logger.Log, slideService SlideService) *SlideHandler {
	return &SlideHandler{
		SlideService: slideService,
		log:          l,
	}
}

type slideRequest struct {
	SubtopicID uuid.UUID        `json:"subtopic_id" binding:"required"`
	Template   string           `json:"template" binding:"required"`
	Title      string           `json:"title" binding:"required"`
	BgColor    string           `json:"bg_color" binding:"required"`
	DecorColor string           `json:"decor_color"`
	Active     *bool            `json:"active"`
	Data       models.SlideData `json:"data"`
}

func (h *SlideHandler) CreateSlide(c *gin.Context) {
	var input slideRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	slide := models.Slide{
		SubtopicID: input.SubtopicID,
		Template:   input.Template,
		Title:      input.Title,
		BgColor:    input.BgColor,
		DecorColor: input.DecorColor,
		Data:       input.Data,
	}
	created, err := h.SlideService.CreateSlide(c.Request.Context(), slide)
	if err != nil {
		h.respondSlideErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *SlideHandler) SlideByID(c *gin.Context) {
	slideID, err := uuid.Parse(c.Param("slide_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid slide_id"})
		return
	}
	slide, err := h.SlideService.SlideByID(c.Request.Context(), slideID)
	if err != nil {
		h.respondSlideErr(c, err)
		return
	}
	c.JSON(http.StatusOK, slide)
}

func (h *SlideHandler) SlidesBySubtopic(c *gin.Context) {
	subtopicID, err := uuid.Parse(c.Param("subtopic_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid subtopic_id"})
		return
	}
	slides, err := h.SlideService.SlidesBySubtopic(c.Request.Context(), subtopicID)
	if err != nil {
		h.respondSlideErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"slides": slides})
}

func (h *SlideHandler) UpdateSlide(c *gin.Context) {
	slideID, err := uuid.Parse(c.Param("slide_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid slide_id"})
		return
	}
	var input slideRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	active := true
	if input.Active != nil {
		active = *input.Active
	}
	slide := models.Slide{
		ID:         slideID,
		SubtopicID: input.SubtopicID,
		Template:   input.Template,
		Title:      input.Title,
		BgColor:    input.BgColor,
		DecorColor: input.DecorColor,
		Active:     active,
		Data:       input.Data,
	}
	updated, err := h.SlideService.UpdateSlide(c.Request.Context(), slide)
	if err != nil {
		h.respondSlideErr(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *SlideHandler) SwapSlides(c *gin.Context) {
	slideID1Str := c.Query("slide_id_1")
	slideID2Str := c.Query("slide_id_2")
	if slideID1Str == "" || slideID2Str == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "slide_id_1 and slide_id_2 required"})
		return
	}
	slideID1, err := uuid.Parse(slideID1Str)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid slide_id_1"})
		return
	}
	slideID2, err := uuid.Parse(slideID2Str)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid slide_id_2"})
		return
	}

	if err := h.SlideService.SwapSlides(c.Request.Context(), slideID1, slideID2); err != nil {
		h.log.ErrorErr("swap slides failed", err)
		h.respondSlideErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "slides swapped"})
}

func (h *SlideHandler) DeleteSlide(c *gin.Context) {
	slideID, err := uuid.Parse(c.Param("slide_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid slide_id"})
		return
	}
	if err := h.SlideService.DeleteSlide(c.Request.Context(), slideID); err != nil {
		h.respondSlideErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "slide deleted"})
}

func (h *SlideHandler) UploadSlideImage(c *gin.Context) {
	slideID, err := uuid.Parse(c.Param("slide_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid slide_id"})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "cannot open file"})
		return
	}
	defer file.Close()

	ct := fileHeader.Header.Get("Content-Type")
	if ct == "" {
		ct = mime.TypeByExtension(filepath.Ext(fileHeader.Filename))
		if ct == "" {
			ct = "application/octet-stream"
		}
	}

	slide, err := h.SlideService.UploadSlideImage(c.Request.Context(), slideID, fileHeader.Filename, file, fileHeader.Size, ct)
	if err != nil {
		h.respondSlideErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, slide)
}

func (h *SlideHandler) SlideImageURL(c *gin.Context) {
	slideID, err := uuid.Parse(c.Param("slide_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid slide_id"})
		return
	}
	url, err := h.SlideService.SlideImageURL(c.Request.Context(), slideID)
	if err != nil {
		if errors.Is(err, app_errors.ErrImageNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		h.respondSlideErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": url})
}

func (h *SlideHandler) respondSlideErr(c *gin.Context, err error) {
	switch {
	case errors.Is(err, app_errors.ErrSlideNotFound),
		errors.Is(err, app_errors.ErrSubtopicNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, app_errors.ErrInvalidSlide),
		errors.Is(err, app_errors.ErrUnknownTemplate),
		errors.Is(err, app_errors.ErrNotImage),
		errors.Is(err, app_errors.ErrFileSize):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
