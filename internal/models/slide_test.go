package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riskaamelia-wd/sumq/internal/app_errors"
)

func validQuizSlide() Slide {
	return Slide{
		Template: TemplateQuiz,
		Title:    "Practice",
		BgColor:  "#1E3A5F",
		Data: SlideData{
			Question:      "Which connector fits?",
			Options:       []string{"because", "but", "although"},
			CorrectAnswer: 1,
			Explanation:   "'but' joins two independent clauses.",
		},
	}
}

func TestKnownTemplate(t *testing.T) {
	for _, name := range TemplateNames {
		assert.True(t, KnownTemplate(name), name)
	}
	assert.False(t, KnownTemplate("hero-banner"))
	assert.False(t, KnownTemplate(""))
}

func TestValidate_UnknownTemplate(t *testing.T) {
	s := validQuizSlide()
	s.Template = "hero-banner"
	err := s.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, app_errors.ErrUnknownTemplate)
}

func TestValidate_CommonFields(t *testing.T) {
	t.Run("missing title", func(t *testing.T) {
		s := validQuizSlide()
		s.Title = ""
		assert.ErrorIs(t, s.Validate(), app_errors.ErrInvalidSlide)
	})

	t.Run("missing bg_color", func(t *testing.T) {
		s := validQuizSlide()
		s.BgColor = ""
		assert.ErrorIs(t, s.Validate(), app_errors.ErrInvalidSlide)
	})
}

func TestValidate_Quiz(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, validQuizSlide().Validate())
	})

	t.Run("missing question", func(t *testing.T) {
		s := validQuizSlide()
		s.Data.Question = ""
		assert.ErrorIs(t, s.Validate(), app_errors.ErrInvalidSlide)
	})

	t.Run("too few options", func(t *testing.T) {
		s := validQuizSlide()
		s.Data.Options = []string{"only one"}
		s.Data.CorrectAnswer = 0
		assert.ErrorIs(t, s.Validate(), app_errors.ErrInvalidSlide)
	})

	t.Run("correct answer out of range", func(t *testing.T) {
		s := validQuizSlide()
		s.Data.CorrectAnswer = 3
		assert.ErrorIs(t, s.Validate(), app_errors.ErrInvalidSlide)

		s.Data.CorrectAnswer = -1
		assert.ErrorIs(t, s.Validate(), app_errors.ErrInvalidSlide)
	})

	t.Run("explanation is optional", func(t *testing.T) {
		s := validQuizSlide()
		s.Data.Explanation = ""
		assert.NoError(t, s.Validate())
	})
}

func TestValidate_ReportsFirstMissingFieldStably(t *testing.T) {
	s := Slide{
		Template: TemplateInfoCard,
		Title:    "Subject & Verb",
		BgColor:  "#0B3D2E",
	}
	for i := 0; i < 20; i++ {
		err := s.Validate()
		require.Error(t, err)
		assert.EqualError(t, err, "invalid slide: subtitle is required")
	}
}

func TestValidate_InfoCard(t *testing.T) {
	s := Slide{
		Template: TemplateInfoCard,
		Title:    "Subject & Verb",
		BgColor:  "#0B3D2E",
		Data: SlideData{
			Subtitle:     "The backbone of every sentence",
			Visual:       "🧩",
			Duration:     "3 min",
			WhatYouLearn: []string{"spot the subject", "match the verb"},
			Keywords:     []string{"subject", "verb"},
		},
	}
	assert.NoError(t, s.Validate())

	s.Data.WhatYouLearn = nil
	assert.ErrorIs(t, s.Validate(), app_errors.ErrInvalidSlide)
}

func TestValidate_LongText(t *testing.T) {
	s := Slide{
		Template: TemplateLongText,
		Title:    "Adverb Clauses",
		BgColor:  "#2D1B4E",
		Data: SlideData{
			Subtitle: "Dependent clauses that act like adverbs",
			Content:  "An adverb clause answers **when**, **where**, or **why**.",
			Icon:     "book",
		},
	}
	assert.NoError(t, s.Validate())

	s.Data.Content = ""
	assert.ErrorIs(t, s.Validate(), app_errors.ErrInvalidSlide)
}

func TestValidate_ImageFocus(t *testing.T) {
	s := Slide{
		Template: TemplateImageFocus,
		Title:    "Modus Ponens",
		BgColor:  "#193549",
		Data: SlideData{
			Image:     "slides/abc/image.png",
			ImageSize: "large",
			Notes:     []string{"If P then Q", "P", "Therefore Q"},
		},
	}
	assert.NoError(t, s.Validate())

	s.Data.ImageSize = ""
	assert.ErrorIs(t, s.Validate(), app_errors.ErrInvalidSlide)
}

func TestValidate_Comparison(t *testing.T) {
	s := Slide{
		Template: TemplateComparison,
		Title:    "FANBOYS vs Adverb Clause",
		BgColor:  "#3B2F2F",
		Data: SlideData{
			LeftTitle:  "FANBOYS",
			LeftItems:  []string{"joins equals", "needs a comma"},
			RightTitle: "Adverb Clause",
			RightItems: []string{"subordinates"},
		},
	}
	assert.NoError(t, s.Validate())

	s.Data.RightItems = nil
	assert.ErrorIs(t, s.Validate(), app_errors.ErrInvalidSlide)
}

func TestValidate_TipCard(t *testing.T) {
	s := Slide{
		Template: TemplateTipCard,
		Title:    "Tips",
		BgColor:  "#123456",
		Data: SlideData{
			Tips: []TipItem{{Emoji: "🎯", Title: "Use the acronym", Description: "hard to forget"}},
		},
	}
	assert.NoError(t, s.Validate())

	s.Data.Tips = nil
	assert.ErrorIs(t, s.Validate(), app_errors.ErrInvalidSlide)
}

func TestValidate_Definition(t *testing.T) {
	s := Slide{
		Template: TemplateDefinition,
		Title:    "Coordinate Connector",
		BgColor:  "#222244",
		Data: SlideData{
			Term:       "Coordinate Connector",
			Definition: "A word that joins two independent clauses of equal weight.",
			Connectors: []string{"for", "and", "nor"},
			Examples:   []string{"I was tired, so I slept."},
		},
	}
	assert.NoError(t, s.Validate())

	s.Data.Term = ""
	assert.ErrorIs(t, s.Validate(), app_errors.ErrInvalidSlide)
}
