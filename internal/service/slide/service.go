package slide

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"

	"github.com/riskaamelia-wd/sumq/internal/app_errors"
	"github.com/riskaamelia-wd/sumq/internal/models"
	"github.com/riskaamelia-wd/sumq/pkg/logger"
)

type slideRepo interface {
	CreateSlide(ctx context.Context, slide *models.Slide) (uuid.UUID, error)
	SlideByID(ctx context.Context, id uuid.UUID) (*models.Slide, error)
	SlidesBySubtopic(ctx context.Context, subtopicID uuid.UUID) ([]models.Slide, error)
	GetMaxOrderIndex(ctx context.Context, subtopicID uuid.UUID) (int, error)
	UpdateSlide(ctx context.Context, slide *models.Slide) error
	SwapSlides(ctx context.Context, slideID1, slideID2 uuid.UUID) error
	DeleteSlideAndUpdateOrder(ctx context.Context, slideID, subtopicID uuid.UUID, orderIndex int) error
}

type subtopicRepo interface {
	SubtopicByID(ctx context.Context, id uuid.UUID) (*models.Subtopic, error)
}

type imageStorage interface {
	UploadImage(ctx context.Context, slideID uuid.UUID, filename string, reader io.Reader, size int64, contentType string) (string, error)
	GetImageURL(ctx context.Context, objectKey string) (string, error)
	DeleteImage(ctx context.Context, objectKey string) error
}

type SlideService struct {
	log          logger.Log
	slideRepo    slideRepo
	subtopicRepo subtopicRepo
	imageStorage imageStorage
}

func NewSlideService(log logger.Log, s slideRepo, sub subtopicRepo, img imageStorage) *SlideService {
	return &SlideService{
		log:          log,
		slideRepo:    s,
		subtopicRepo: sub,
		imageStorage: img,
	}
}

// CreateSlide validates the record against its template schema and appends
// it at the end of the subtopic's deck.
func (s *SlideService) CreateSlide(ctx context.Context, slide models.Slide) (*models.Slide, error) {
	if _, err := s.subtopicRepo.SubtopicByID(ctx, slide.SubtopicID); err != nil {
		return nil, err
	}
	if err := slide.Validate(); err != nil {
		return nil, err
	}

	maxOrder, err := s.slideRepo.GetMaxOrderIndex(ctx, slide.SubtopicID)
	if err != nil {
		return nil, err
	}
	slide.OrderIndex = maxOrder + 1
	slide.Active = true

	id, err := s.slideRepo.CreateSlide(ctx, &slide)
	if err != nil {
		return nil, err
	}
	slide.ID = id
	return &slide, nil
}

func (s *SlideService) SlideByID(ctx context.Context, id uuid.UUID) (*models.Slide, error) {
	return s.slideRepo.SlideByID(ctx, id)
}

func (s *SlideService) SlidesBySubtopic(ctx context.Context, subtopicID uuid.UUID) ([]models.Slide, error) {
	if _, err := s.subtopicRepo.SubtopicByID(ctx, subtopicID); err != nil {
		return nil, err
	}
	return s.slideRepo.SlidesBySubtopic(ctx, subtopicID)
}

func (s *SlideService) UpdateSlide(ctx context.Context, slide models.Slide) (*models.Slide, error) {
	existing, err := s.slideRepo.SlideByID(ctx, slide.ID)
	if err != nil {
		return nil, err
	}

	existing.Template = slide.Template
	existing.Title = slide.Title
	existing.BgColor = slide.BgColor
	existing.DecorColor = slide.DecorColor
	existing.Active = slide.Active
	existing.Data = slide.Data

	if err := existing.Validate(); err != nil {
		return nil, err
	}
	if err := s.slideRepo.UpdateSlide(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *SlideService) SwapSlides(ctx context.Context, slideID1, slideID2 uuid.UUID) error {
	slide1, err := s.slideRepo.SlideByID(ctx, slideID1)
	if err != nil {
		return err
	}
	slide2, err := s.slideRepo.SlideByID(ctx, slideID2)
	if err != nil {
		return err
	}
	if slide1.SubtopicID != slide2.SubtopicID {
		return fmt.Errorf("slides belong to different subtopics")
	}
	return s.slideRepo.SwapSlides(ctx, slideID1, slideID2)
}

func (s *SlideService) DeleteSlide(ctx context.Context, id uuid.UUID) error {
	slide, err := s.slideRepo.SlideByID(ctx, id)
	if err != nil {
		return err
	}
	if slide.Template == models.TemplateImageFocus && slide.Data.Image != "" {
		if err := s.imageStorage.DeleteImage(ctx, slide.Data.Image); err != nil {
			s.log.ErrorErr("failed to delete slide image", err, "slide_id", id)
		}
	}
	return s.slideRepo.DeleteSlideAndUpdateOrder(ctx, id, slide.SubtopicID, slide.OrderIndex)
}

const maxImageSize = 10 << 20

// UploadSlideImage stores the picture for an image-focus slide and points
// the record's image field at the stored object.
func (s *SlideService) UploadSlideImage(ctx context.Context, slideID uuid.UUID, filename string, file io.Reader, size int64, contentType string) (*models.Slide, error) {
	if !strings.HasPrefix(contentType, "image/") {
		return nil, app_errors.ErrNotImage
	}
	if size <= 0 || size > maxImageSize {
		return nil, app_errors.ErrFileSize
	}

	slide, err := s.slideRepo.SlideByID(ctx, slideID)
	if err != nil {
		return nil, err
	}

	objectKey, err := s.imageStorage.UploadImage(ctx, slideID, filename, file, size, contentType)
	if err != nil {
		return nil, err
	}

	slide.Data.Image = objectKey
	if err := s.slideRepo.UpdateSlide(ctx, slide); err != nil {
		return nil, err
	}
	return slide, nil
}

func (s *SlideService) SlideImageURL(ctx context.Context, slideID uuid.UUID) (string, error) {
	slide, err := s.slideRepo.SlideByID(ctx, slideID)
	if err != nil {
		return "", err
	}
	if slide.Data.Image == "" {
		return "", app_errors.ErrImageNotFound
	}
	return s.imageStorage.GetImageURL(ctx, slide.Data.Image)
}
