package carousel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riskaamelia-wd/sumq/internal/app_errors"
	"github.com/riskaamelia-wd/sumq/internal/models"
)

func TestNewDeck(t *testing.T) {
	t.Run("empty input rejected", func(t *testing.T) {
		_, err := NewDeck(nil)
		assert.ErrorIs(t, err, app_errors.ErrEmptyDeck)

		_, err = NewDeck([]models.Slide{})
		assert.ErrorIs(t, err, app_errors.ErrEmptyDeck)
	})

	t.Run("invalid slide rejected with its position", func(t *testing.T) {
		slides := ShowcaseDeck()
		slides[2].Title = ""

		_, err := NewDeck(slides)
		require.Error(t, err)
		assert.ErrorIs(t, err, app_errors.ErrInvalidSlide)
		assert.Contains(t, err.Error(), "slide 2")
	})

	t.Run("order preserved and input copied", func(t *testing.T) {
		slides := ShowcaseDeck()
		deck, err := NewDeck(slides)
		require.NoError(t, err)
		require.Len(t, deck, len(slides))
		for i := range slides {
			assert.Equal(t, slides[i].Title, deck[i].Title)
		}

		slides[0].Title = "mutated"
		assert.NotEqual(t, "mutated", deck[0].Title)
	})
}

func TestShowcaseDeck_OnePerTemplate(t *testing.T) {
	deck := ShowcaseDeck()
	require.Len(t, deck, len(models.TemplateNames))

	seen := make(map[string]bool)
	for _, s := range deck {
		assert.NoError(t, s.Validate(), s.Template)
		seen[s.Template] = true
	}
	for _, name := range models.TemplateNames {
		assert.True(t, seen[name], name)
	}
}
