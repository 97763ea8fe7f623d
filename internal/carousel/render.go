package carousel

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/riskaamelia-wd/sumq/internal/models"
)

var md = goldmark.New(
	goldmark.WithExtensions(
		extension.GFM,
		highlighting.NewHighlighting(
			highlighting.WithStyle("monokai"),
		),
	),
	goldmark.WithRendererOptions(
		html.WithUnsafe(),
	),
)

// Render builds the frame for one slide. Dispatch branches strictly on the
// template discriminant; every known value maps to exactly one builder and
// anything else falls through to the placeholder. Render never mutates the
// slide and never fails: malformed records degrade to whatever their fields
// allow.
func Render(slide models.Slide, quiz QuizState) Frame {
	f := Frame{
		Template:    slide.Template,
		AspectRatio: CardAspectRatio,
		BgColor:     slide.BgColor,
		DecorColor:  slide.DecorColor,
		Title:       slide.Title,
	}

	switch slide.Template {
	case models.TemplateInfoCard:
		f.Sections = infoCardSections(slide.Data)
	case models.TemplateQuiz:
		f.Sections = quizSections(slide.Data, quiz)
	case models.TemplateLongText:
		f.Sections = longTextSections(slide.Data)
	case models.TemplateImageFocus:
		f.Sections = imageFocusSections(slide.Data)
	case models.TemplateComparison:
		f.Sections = comparisonSections(slide.Data)
	case models.TemplateTipCard:
		f.Sections = tipCardSections(slide.Data)
	case models.TemplateDefinition:
		f.Sections = definitionSections(slide.Data)
	default:
		f.Placeholder = true
		f.Title = ""
		f.Sections = []Section{{Kind: SectionMessage, Text: "template not found"}}
	}
	return f
}

func infoCardSections(d models.SlideData) []Section {
	sections := []Section{
		{Kind: SectionSubtitle, Text: d.Subtitle},
		{Kind: SectionVisual, Text: d.Visual, Badge: d.Duration},
		{Kind: SectionList, Label: "What you learn", Items: d.WhatYouLearn},
	}
	if d.Example != "" {
		sections = append(sections, Section{Kind: SectionExample, Label: "Example", Text: d.Example})
	}
	sections = append(sections, Section{Kind: SectionChips, Label: "Keywords", Items: d.Keywords})
	return sections
}

func quizSections(d models.SlideData, quiz QuizState) []Section {
	options := make([]OptionView, 0, len(d.Options))
	for i, text := range d.Options {
		selected := quiz.SelectedAnswer != nil && *quiz.SelectedAnswer == i
		options = append(options, OptionView{
			Index:     i,
			Label:     fmt.Sprintf("%c", 'A'+i),
			Text:      text,
			Selected:  selected,
			Correct:   quiz.AnswerRevealed && i == d.CorrectAnswer,
			Incorrect: quiz.AnswerRevealed && selected && i != d.CorrectAnswer,
			Disabled:  quiz.AnswerRevealed,
		})
	}

	sections := []Section{
		{Kind: SectionQuestion, Text: d.Question},
		{Kind: SectionOptions, Options: options},
	}
	if quiz.AnswerRevealed && d.Explanation != "" {
		sections = append(sections, Section{Kind: SectionExplanation, Label: "Explanation", Text: d.Explanation})
	}
	return sections
}

func longTextSections(d models.SlideData) []Section {
	return []Section{
		{Kind: SectionVisual, Text: IconGlyph(d.Icon)},
		{Kind: SectionSubtitle, Text: d.Subtitle},
		{Kind: SectionBody, Text: d.Content, HTML: renderMarkdown(d.Content)},
	}
}

func imageFocusSections(d models.SlideData) []Section {
	sections := []Section{
		{Kind: SectionImage, Text: d.Image, Size: d.ImageSize},
		{Kind: SectionList, Items: d.Notes},
	}
	if d.Example != "" {
		sections = append(sections, Section{Kind: SectionExample, Label: "Example", Text: d.Example})
	}
	return sections
}

// The two columns are independent enumerations: lengths may differ and rows
// are never paired up.
func comparisonSections(d models.SlideData) []Section {
	return []Section{
		{Kind: SectionColumns, Columns: []Column{
			{Title: d.LeftTitle, Items: d.LeftItems},
			{Title: d.RightTitle, Items: d.RightItems},
		}},
	}
}

func tipCardSections(d models.SlideData) []Section {
	tips := make([]TipView, 0, len(d.Tips))
	for _, t := range d.Tips {
		tips = append(tips, TipView{Emoji: t.Emoji, Title: t.Title, Description: t.Description})
	}
	return []Section{
		{Kind: SectionTips, Tips: tips},
	}
}

func definitionSections(d models.SlideData) []Section {
	return []Section{
		{Kind: SectionTerm, Text: d.Term},
		{Kind: SectionBody, Text: d.Definition},
		{Kind: SectionChips, Label: "Connectors", Items: d.Connectors},
		{Kind: SectionList, Label: "Examples", Items: d.Examples},
	}
}

func renderMarkdown(content string) string {
	var buf bytes.Buffer
	if err := md.Convert([]byte(content), &buf); err != nil {
		return ""
	}
	return buf.String()
}
