package carousel

import (
	"fmt"

	"github.com/riskaamelia-wd/sumq/internal/app_errors"
	"github.com/riskaamelia-wd/sumq/internal/models"
)

// Deck is an ordered sequence of slides shown one at a time. Order is the
// only relationship between slides and is preserved from construction.
type Deck []models.Slide

// NewDeck validates every slide up front so sessions never render a record
// missing its template's required fields. An empty input is rejected with
// ErrEmptyDeck; callers surface that as a "no slides" state.
func NewDeck(slides []models.Slide) (Deck, error) {
	if len(slides) == 0 {
		return nil, app_errors.ErrEmptyDeck
	}
	for i, s := range slides {
		if err := s.Validate(); err != nil {
			return nil, fmt.Errorf("slide %d: %w", i, err)
		}
	}
	deck := make(Deck, len(slides))
	copy(deck, slides)
	return deck, nil
}
