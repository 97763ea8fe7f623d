package slide

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riskaamelia-wd/sumq/internal/app_errors"
	"github.com/riskaamelia-wd/sumq/internal/models"
	"github.com/riskaamelia-wd/sumq/pkg/logger"
)

type fakeSlideRepo struct {
	slides  map[uuid.UUID]*models.Slide
	deleted []uuid.UUID
	swapped [][2]uuid.UUID
}

func newFakeSlideRepo() *fakeSlideRepo {
	return &fakeSlideRepo{slides: make(map[uuid.UUID]*models.Slide)}
}

func (f *fakeSlideRepo) CreateSlide(_ context.Context, slide *models.Slide) (uuid.UUID, error) {
	id := uuid.New()
	stored := *slide
	stored.ID = id
	f.slides[id] = &stored
	return id, nil
}

func (f *fakeSlideRepo) SlideByID(_ context.Context, id uuid.UUID) (*models.Slide, error) {
	s, ok := f.slides[id]
	if !ok {
		return nil, app_errors.ErrSlideNotFound
	}
	cp := *s
	return &cp, nil
}

func (f *fakeSlideRepo) SlidesBySubtopic(_ context.Context, subtopicID uuid.UUID) ([]models.Slide, error) {
	var out []models.Slide
	for _, s := range f.slides {
		if s.SubtopicID == subtopicID {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (f *fakeSlideRepo) GetMaxOrderIndex(_ context.Context, subtopicID uuid.UUID) (int, error) {
	max := -1
	for _, s := range f.slides {
		if s.SubtopicID == subtopicID && s.OrderIndex > max {
			max = s.OrderIndex
		}
	}
	return max, nil
}

func (f *fakeSlideRepo) UpdateSlide(_ context.Context, slide *models.Slide) error {
	if _, ok := f.slides[slide.ID]; !ok {
		return app_errors.ErrSlideNotFound
	}
	cp := *slide
	f.slides[slide.ID] = &cp
	return nil
}

func (f *fakeSlideRepo) SwapSlides(_ context.Context, slideID1, slideID2 uuid.UUID) error {
	f.swapped = append(f.swapped, [2]uuid.UUID{slideID1, slideID2})
	return nil
}

func (f *fakeSlideRepo) DeleteSlideAndUpdateOrder(_ context.Context, slideID, _ uuid.UUID, _ int) error {
	delete(f.slides, slideID)
	f.deleted = append(f.deleted, slideID)
	return nil
}

type fakeSubtopicRepo struct {
	known map[uuid.UUID]bool
}

func (f *fakeSubtopicRepo) SubtopicByID(_ context.Context, id uuid.UUID) (*models.Subtopic, error) {
	if !f.known[id] {
		return nil, app_errors.ErrSubtopicNotFound
	}
	return &models.Subtopic{ID: id}, nil
}

type fakeImageStorage struct {
	uploaded map[string]int64
	removed  []string
}

func newFakeImageStorage() *fakeImageStorage {
	return &fakeImageStorage{uploaded: make(map[string]int64)}
}

func (f *fakeImageStorage) UploadImage(_ context.Context, slideID uuid.UUID, filename string, _ io.Reader, size int64, _ string) (string, error) {
	key := "slides/" + slideID.String() + "/image.png"
	f.uploaded[key] = size
	return key, nil
}

func (f *fakeImageStorage) GetImageURL(_ context.Context, objectKey string) (string, error) {
	return "https://cdn.example.com/" + objectKey, nil
}

func (f *fakeImageStorage) DeleteImage(_ context.Context, objectKey string) error {
	f.removed = append(f.removed, objectKey)
	return nil
}

func newTestService(t *testing.T) (*SlideService, *fakeSlideRepo, *fakeImageStorage, uuid.UUID) {
	t.Helper()
	subtopicID := uuid.New()
	slideRepo := newFakeSlideRepo()
	images := newFakeImageStorage()
	svc := NewSlideService(
		logger.New("prod"),
		slideRepo,
		&fakeSubtopicRepo{known: map[uuid.UUID]bool{subtopicID: true}},
		images,
	)
	return svc, slideRepo, images, subtopicID
}

func tipSlide(subtopicID uuid.UUID) models.Slide {
	return models.Slide{
		SubtopicID: subtopicID,
		Template:   models.TemplateTipCard,
		Title:      "Tips",
		BgColor:    "#123456",
		Data: models.SlideData{
			Tips: []models.TipItem{{Emoji: "🎯", Title: "Acronym", Description: "spells fanboys"}},
		},
	}
}

func TestCreateSlide_AppendsToEnd(t *testing.T) {
	svc, _, _, subtopicID := newTestService(t)

	first, err := svc.CreateSlide(context.Background(), tipSlide(subtopicID))
	require.NoError(t, err)
	assert.Equal(t, 0, first.OrderIndex)
	assert.True(t, first.Active)

	second, err := svc.CreateSlide(context.Background(), tipSlide(subtopicID))
	require.NoError(t, err)
	assert.Equal(t, 1, second.OrderIndex)
}

func TestCreateSlide_RejectsInvalid(t *testing.T) {
	svc, _, _, subtopicID := newTestService(t)

	s := tipSlide(subtopicID)
	s.Data.Tips = nil
	_, err := svc.CreateSlide(context.Background(), s)
	assert.ErrorIs(t, err, app_errors.ErrInvalidSlide)

	s = tipSlide(subtopicID)
	s.Template = "hero-banner"
	_, err = svc.CreateSlide(context.Background(), s)
	assert.ErrorIs(t, err, app_errors.ErrUnknownTemplate)
}

func TestCreateSlide_UnknownSubtopic(t *testing.T) {
	svc, _, _, _ := newTestService(t)

	_, err := svc.CreateSlide(context.Background(), tipSlide(uuid.New()))
	assert.ErrorIs(t, err, app_errors.ErrSubtopicNotFound)
}

func TestUpdateSlide_RevalidatesAgainstNewTemplate(t *testing.T) {
	svc, _, _, subtopicID := newTestService(t)

	created, err := svc.CreateSlide(context.Background(), tipSlide(subtopicID))
	require.NoError(t, err)

	changed := *created
	changed.Template = models.TemplateQuiz
	_, err = svc.UpdateSlide(context.Background(), changed)
	assert.ErrorIs(t, err, app_errors.ErrInvalidSlide, "old payload must not pass the new template's schema")

	changed.Data = models.SlideData{
		Question:      "Pick one",
		Options:       []string{"a", "b"},
		CorrectAnswer: 0,
	}
	updated, err := svc.UpdateSlide(context.Background(), changed)
	require.NoError(t, err)
	assert.Equal(t, models.TemplateQuiz, updated.Template)
	assert.Equal(t, created.OrderIndex, updated.OrderIndex, "update must not move the slide")
}

func TestSwapSlides_DifferentSubtopicsRejected(t *testing.T) {
	svc, slideRepo, _, subtopicID := newTestService(t)

	a, err := svc.CreateSlide(context.Background(), tipSlide(subtopicID))
	require.NoError(t, err)

	other := tipSlide(uuid.New())
	other.OrderIndex = 0
	other.Active = true
	otherID, err := slideRepo.CreateSlide(context.Background(), &other)
	require.NoError(t, err)

	err = svc.SwapSlides(context.Background(), a.ID, otherID)
	require.Error(t, err)
	assert.Empty(t, slideRepo.swapped)
}

func TestDeleteSlide_RemovesImageFocusPicture(t *testing.T) {
	svc, slideRepo, images, subtopicID := newTestService(t)

	s := models.Slide{
		SubtopicID: subtopicID,
		Template:   models.TemplateImageFocus,
		Title:      "Modus Ponens",
		BgColor:    "#193549",
		Data: models.SlideData{
			Image:     "slides/abc/image.png",
			ImageSize: "large",
			Notes:     []string{"If P then Q"},
		},
	}
	created, err := svc.CreateSlide(context.Background(), s)
	require.NoError(t, err)

	require.NoError(t, svc.DeleteSlide(context.Background(), created.ID))
	assert.Equal(t, []string{"slides/abc/image.png"}, images.removed)
	assert.Equal(t, []uuid.UUID{created.ID}, slideRepo.deleted)
}

func TestUploadSlideImage(t *testing.T) {
	svc, _, images, subtopicID := newTestService(t)

	created, err := svc.CreateSlide(context.Background(), tipSlide(subtopicID))
	require.NoError(t, err)

	body := strings.NewReader("png-bytes")
	updated, err := svc.UploadSlideImage(context.Background(), created.ID, "photo.png", body, int64(body.Len()), "image/png")
	require.NoError(t, err)
	assert.Contains(t, updated.Data.Image, created.ID.String())
	assert.Len(t, images.uploaded, 1)

	url, err := svc.SlideImageURL(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Contains(t, url, updated.Data.Image)
}

func TestUploadSlideImage_Rejected(t *testing.T) {
	svc, _, _, subtopicID := newTestService(t)

	created, err := svc.CreateSlide(context.Background(), tipSlide(subtopicID))
	require.NoError(t, err)

	_, err = svc.UploadSlideImage(context.Background(), created.ID, "notes.txt", strings.NewReader("hi"), 2, "text/plain")
	assert.ErrorIs(t, err, app_errors.ErrNotImage)

	_, err = svc.UploadSlideImage(context.Background(), created.ID, "big.png", strings.NewReader("x"), 20<<20, "image/png")
	assert.ErrorIs(t, err, app_errors.ErrFileSize)

	_, err = svc.UploadSlideImage(context.Background(), created.ID, "empty.png", strings.NewReader(""), 0, "image/png")
	assert.ErrorIs(t, err, app_errors.ErrFileSize)
}

func TestSlideImageURL_NoImage(t *testing.T) {
	svc, _, _, subtopicID := newTestService(t)

	created, err := svc.CreateSlide(context.Background(), tipSlide(subtopicID))
	require.NoError(t, err)

	_, err = svc.SlideImageURL(context.Background(), created.ID)
	assert.ErrorIs(t, err, app_errors.ErrImageNotFound)
}
