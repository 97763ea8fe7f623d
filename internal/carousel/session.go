package carousel

import (
	"github.com/riskaamelia-wd/sumq/internal/app_errors"
	"github.com/riskaamelia-wd/sumq/internal/models"
)

// NavPolicy fixes how a session behaves at the deck edges. The subtopic
// viewer saturates; the template showcase wraps. A session keeps its policy
// for life, the two are never mixed on one surface.
type NavPolicy int

const (
	PolicySaturate NavPolicy = iota
	PolicyWrap
)

// QuizState is the per-session interaction state of the current slide. The
// reveal flag is a one-way latch: once an answer is selected it stays set
// until navigation moves off the slide.
type QuizState struct {
	SelectedAnswer *int `json:"selected_answer"`
	AnswerRevealed bool `json:"answer_revealed"`
}

// Session is the navigation state machine over one deck. All transitions
// are synchronous; the session never mutates the deck.
type Session struct {
	deck   Deck
	index  int
	policy NavPolicy
	quiz   QuizState
}

// NewSession starts at initial, clamped into range.
func NewSession(deck Deck, policy NavPolicy, initial int) (*Session, error) {
	if len(deck) == 0 {
		return nil, app_errors.ErrEmptyDeck
	}
	if initial < 0 {
		initial = 0
	}
	if initial >= len(deck) {
		initial = len(deck) - 1
	}
	return &Session{deck: deck, index: initial, policy: policy}, nil
}

func (s *Session) Index() int { return s.index }

func (s *Session) Len() int { return len(s.deck) }

func (s *Session) Policy() NavPolicy { return s.policy }

func (s *Session) Current() models.Slide { return s.deck[s.index] }

func (s *Session) Quiz() QuizState { return s.quiz }

// Frame renders the current slide with the session's quiz state.
func (s *Session) Frame() Frame {
	return Render(s.deck[s.index], s.quiz)
}

func (s *Session) Next() {
	switch s.policy {
	case PolicyWrap:
		s.index = (s.index + 1) % len(s.deck)
	default:
		if s.index < len(s.deck)-1 {
			s.index++
		}
	}
	s.resetQuiz()
}

func (s *Session) Prev() {
	switch s.policy {
	case PolicyWrap:
		s.index = (s.index - 1 + len(s.deck)) % len(s.deck)
	default:
		if s.index > 0 {
			s.index--
		}
	}
	s.resetQuiz()
}

// GoTo jumps to index i. Out-of-range requests are rejected silently and
// leave the whole session state, quiz state included, untouched.
func (s *Session) GoTo(i int) {
	if i < 0 || i >= len(s.deck) {
		return
	}
	s.index = i
	s.resetQuiz()
}

// SelectAnswer latches the given option index for a quiz slide. The first
// selection reveals the answer; once revealed, further selections are no-ops
// until navigation resets the state. Selections on non-quiz slides or out of
// the option range are ignored.
func (s *Session) SelectAnswer(i int) {
	slide := s.deck[s.index]
	if slide.Template != models.TemplateQuiz {
		return
	}
	if s.quiz.AnswerRevealed {
		return
	}
	if i < 0 || i >= len(slide.Data.Options) {
		return
	}
	selected := i
	s.quiz.SelectedAnswer = &selected
	s.quiz.AnswerRevealed = true
}

func (s *Session) resetQuiz() {
	s.quiz = QuizState{}
}
