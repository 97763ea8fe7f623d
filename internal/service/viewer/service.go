package viewer

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/riskaamelia-wd/sumq/internal/app_errors"
	"github.com/riskaamelia-wd/sumq/internal/carousel"
	"github.com/riskaamelia-wd/sumq/internal/models"
	"github.com/riskaamelia-wd/sumq/pkg/logger"
)

type slideRepo interface {
	SlidesBySubtopic(ctx context.Context, subtopicID uuid.UUID) ([]models.Slide, error)
}

type subtopicRepo interface {
	SubtopicByID(ctx context.Context, id uuid.UUID) (*models.Subtopic, error)
}

type imageStorage interface {
	GetImageURL(ctx context.Context, objectKey string) (string, error)
}

// SessionView is what viewer endpoints return per interaction: the rendered
// frame of the current slide plus enough position info for indicators.
type SessionView struct {
	SessionID uuid.UUID          `json:"session_id"`
	Index     int                `json:"index"`
	Length    int                `json:"length"`
	Quiz      carousel.QuizState `json:"quiz"`
	Frame     carousel.Frame     `json:"frame"`
}

// ViewerService owns the viewing sessions. Each session is a deck plus
// navigation and quiz state; the store is a keyed map so interactions stay
// decoupled from rendering.
type ViewerService struct {
	log          logger.Log
	slideRepo    slideRepo
	subtopicRepo subtopicRepo
	imageStorage imageStorage

	mu       sync.Mutex
	sessions map[uuid.UUID]*carousel.Session
}

func NewViewerService(log logger.Log, s slideRepo, sub subtopicRepo, img imageStorage) *ViewerService {
	return &ViewerService{
		log:          log,
		slideRepo:    s,
		subtopicRepo: sub,
		imageStorage: img,
		sessions:     make(map[uuid.UUID]*carousel.Session),
	}
}

// OpenSubtopicSession builds a deck from the subtopic's active slides and
// starts a saturating session over it. An empty deck is reported as
// ErrEmptyDeck so the caller can show the "no slides" state.
func (s *ViewerService) OpenSubtopicSession(ctx context.Context, subtopicID uuid.UUID, initial int) (*SessionView, error) {
	if _, err := s.subtopicRepo.SubtopicByID(ctx, subtopicID); err != nil {
		return nil, err
	}
	slides, err := s.slideRepo.SlidesBySubtopic(ctx, subtopicID)
	if err != nil {
		return nil, err
	}

	active := make([]models.Slide, 0, len(slides))
	for _, sl := range slides {
		if !sl.Active {
			continue
		}
		s.resolveImage(ctx, &sl)
		active = append(active, sl)
	}

	deck, err := carousel.NewDeck(active)
	if err != nil {
		return nil, err
	}
	return s.startSession(deck, carousel.PolicySaturate, initial)
}

// OpenShowcaseSession starts a wrapping session over the built-in demo deck
// used by the template browser.
func (s *ViewerService) OpenShowcaseSession() (*SessionView, error) {
	return s.startSession(carousel.ShowcaseDeck(), carousel.PolicyWrap, 0)
}

func (s *ViewerService) startSession(deck carousel.Deck, policy carousel.NavPolicy, initial int) (*SessionView, error) {
	session, err := carousel.NewSession(deck, policy, initial)
	if err != nil {
		return nil, err
	}
	id := uuid.New()

	s.mu.Lock()
	s.sessions[id] = session
	s.mu.Unlock()

	return view(id, session), nil
}

// The mutex stays held for the whole interaction, not just the map lookup:
// sessions are mutable and gin serves requests concurrently, so two requests
// on one session id must not touch its index or quiz state at the same time.
func (s *ViewerService) CurrentFrame(sessionID uuid.UUID) (*SessionView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, err := s.session(sessionID)
	if err != nil {
		return nil, err
	}
	return view(sessionID, session), nil
}

func (s *ViewerService) Next(sessionID uuid.UUID) (*SessionView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, err := s.session(sessionID)
	if err != nil {
		return nil, err
	}
	session.Next()
	return view(sessionID, session), nil
}

func (s *ViewerService) Prev(sessionID uuid.UUID) (*SessionView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, err := s.session(sessionID)
	if err != nil {
		return nil, err
	}
	session.Prev()
	return view(sessionID, session), nil
}

func (s *ViewerService) GoTo(sessionID uuid.UUID, index int) (*SessionView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, err := s.session(sessionID)
	if err != nil {
		return nil, err
	}
	session.GoTo(index)
	return view(sessionID, session), nil
}

func (s *ViewerService) SelectAnswer(sessionID uuid.UUID, index int) (*SessionView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, err := s.session(sessionID)
	if err != nil {
		return nil, err
	}
	session.SelectAnswer(index)
	return view(sessionID, session), nil
}

func (s *ViewerService) CloseSession(sessionID uuid.UUID) {
	s.mu.Lock()
	delete(s.sessions, sessionID)
	s.mu.Unlock()
}

// session looks up a live session. Callers must hold s.mu.
func (s *ViewerService) session(id uuid.UUID) (*carousel.Session, error) {
	session, ok := s.sessions[id]
	if !ok {
		return nil, app_errors.ErrSessionNotFound
	}
	return session, nil
}

// Image-focus slides store an object key; the viewer swaps it for a
// presigned URL so the card can actually load the picture. Inline glyphs
// and absolute URLs pass through.
func (s *ViewerService) resolveImage(ctx context.Context, slide *models.Slide) {
	if slide.Template != models.TemplateImageFocus {
		return
	}
	key := slide.Data.Image
	if key == "" || strings.HasPrefix(key, "http") || !strings.Contains(key, "/") {
		return
	}
	url, err := s.imageStorage.GetImageURL(ctx, key)
	if err != nil {
		s.log.ErrorErr("failed to presign slide image", err, "slide_id", slide.ID)
		return
	}
	slide.Data.Image = url
}

func view(id uuid.UUID, session *carousel.Session) *SessionView {
	return &SessionView{
		SessionID: id,
		Index:     session.Index(),
		Length:    session.Len(),
		Quiz:      session.Quiz(),
		Frame:     session.Frame(),
	}
}
