package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/riskaamelia-wd/sumq/internal/app_errors"
)

// The closed set of slide templates. The Template field of a Slide must hold
// one of these values for the record to be renderable; anything else falls
// through to the viewer's placeholder.
const (
	TemplateInfoCard   = "info-card"
	TemplateQuiz       = "quiz"
	TemplateLongText   = "long-text"
	TemplateImageFocus = "image-focus"
	TemplateComparison = "comparison"
	TemplateTipCard    = "tip-card"
	TemplateDefinition = "definition"
)

// TemplateNames lists every known template in catalog order.
var TemplateNames = []string{
	TemplateInfoCard,
	TemplateQuiz,
	TemplateLongText,
	TemplateImageFocus,
	TemplateComparison,
	TemplateTipCard,
	TemplateDefinition,
}

func KnownTemplate(name string) bool {
	for _, t := range TemplateNames {
		if t == name {
			return true
		}
	}
	return false
}

type Slide struct {
	ID         uuid.UUID `json:"id"`
	SubtopicID uuid.UUID `json:"subtopic_id"`
	Template   string    `json:"template"`
	Title      string    `json:"title"`
	BgColor    string    `json:"bg_color"`
	DecorColor string    `json:"decor_color,omitempty"`
	OrderIndex int       `json:"order_index"`
	Active     bool      `json:"active"`
	Data       SlideData `json:"data"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// SlideData carries the template-specific payload. Only the fields belonging
// to the record's template are set; Validate enforces that the required ones
// are present.
type SlideData struct {
	// info-card
	Subtitle     string   `json:"subtitle,omitempty"`
	Visual       string   `json:"visual,omitempty"`
	Duration     string   `json:"duration,omitempty"`
	WhatYouLearn []string `json:"what_you_learn,omitempty"`
	Keywords     []string `json:"keywords,omitempty"`
	Example      string   `json:"example,omitempty"`

	// quiz
	Question      string   `json:"question,omitempty"`
	Options       []string `json:"options,omitempty"`
	CorrectAnswer int      `json:"correct_answer,omitempty"`
	Explanation   string   `json:"explanation,omitempty"`

	// long-text
	Content string `json:"content,omitempty"`
	Icon    string `json:"icon,omitempty"`

	// image-focus
	Image     string   `json:"image,omitempty"`
	ImageSize string   `json:"image_size,omitempty"`
	Notes     []string `json:"notes,omitempty"`

	// comparison
	LeftTitle  string   `json:"left_title,omitempty"`
	LeftItems  []string `json:"left_items,omitempty"`
	RightTitle string   `json:"right_title,omitempty"`
	RightItems []string `json:"right_items,omitempty"`

	// tip-card
	Tips []TipItem `json:"tips,omitempty"`

	// definition
	Term       string   `json:"term,omitempty"`
	Definition string   `json:"definition,omitempty"`
	Connectors []string `json:"connectors,omitempty"`
	Examples   []string `json:"examples,omitempty"`
}

type TipItem struct {
	Emoji       string `json:"emoji"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Validate checks the record against its template's schema. Records are
// validated when written and again when a deck is assembled, so the renderer
// only ever sees well-formed slides of known templates.
func (s Slide) Validate() error {
	if !KnownTemplate(s.Template) {
		return fmt.Errorf("%w: %q", app_errors.ErrUnknownTemplate, s.Template)
	}
	if s.Title == "" {
		return fmt.Errorf("%w: title is required", app_errors.ErrInvalidSlide)
	}
	if s.BgColor == "" {
		return fmt.Errorf("%w: bg_color is required", app_errors.ErrInvalidSlide)
	}

	switch s.Template {
	case TemplateInfoCard:
		return requireFields([]requiredField{
			{"subtitle", s.Data.Subtitle != ""},
			{"visual", s.Data.Visual != ""},
			{"duration", s.Data.Duration != ""},
			{"what_you_learn", s.Data.WhatYouLearn != nil},
			{"keywords", s.Data.Keywords != nil},
		})
	case TemplateQuiz:
		if s.Data.Question == "" {
			return fmt.Errorf("%w: question is required", app_errors.ErrInvalidSlide)
		}
		if len(s.Data.Options) < 2 {
			return fmt.Errorf("%w: quiz needs at least 2 options", app_errors.ErrInvalidSlide)
		}
		if s.Data.CorrectAnswer < 0 || s.Data.CorrectAnswer >= len(s.Data.Options) {
			return fmt.Errorf("%w: correct_answer %d out of range [0,%d)",
				app_errors.ErrInvalidSlide, s.Data.CorrectAnswer, len(s.Data.Options))
		}
		return nil
	case TemplateLongText:
		return requireFields([]requiredField{
			{"subtitle", s.Data.Subtitle != ""},
			{"content", s.Data.Content != ""},
			{"icon", s.Data.Icon != ""},
		})
	case TemplateImageFocus:
		return requireFields([]requiredField{
			{"image", s.Data.Image != ""},
			{"image_size", s.Data.ImageSize != ""},
			{"notes", s.Data.Notes != nil},
		})
	case TemplateComparison:
		return requireFields([]requiredField{
			{"left_title", s.Data.LeftTitle != ""},
			{"left_items", s.Data.LeftItems != nil},
			{"right_title", s.Data.RightTitle != ""},
			{"right_items", s.Data.RightItems != nil},
		})
	case TemplateTipCard:
		if s.Data.Tips == nil {
			return fmt.Errorf("%w: tips is required", app_errors.ErrInvalidSlide)
		}
		return nil
	case TemplateDefinition:
		return requireFields([]requiredField{
			{"term", s.Data.Term != ""},
			{"definition", s.Data.Definition != ""},
			{"connectors", s.Data.Connectors != nil},
			{"examples", s.Data.Examples != nil},
		})
	}
	return nil
}

type requiredField struct {
	name    string
	present bool
}

// Fields are checked in declaration order so the same record always reports
// the same missing field.
func requireFields(fields []requiredField) error {
	for _, f := range fields {
		if !f.present {
			return fmt.Errorf("%w: %s is required", app_errors.ErrInvalidSlide, f.name)
		}
	}
	return nil
}
