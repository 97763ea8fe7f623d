package carousel

import "github.com/riskaamelia-wd/sumq/internal/models"

// ShowcaseDeck returns the built-in demo deck the template browser cycles
// through: one slide per template, in catalog order.
func ShowcaseDeck() Deck {
	return Deck{
		{
			Template:   models.TemplateInfoCard,
			Title:      "Subject & Verb",
			BgColor:    "from-blue-50 to-indigo-50",
			DecorColor: "text-blue-600",
			Data: models.SlideData{
				Subtitle: "Grammar Basics",
				Visual:   "📝",
				Duration: "5 min",
				WhatYouLearn: []string{
					"Nouns and pronouns",
					"Noun phrases",
					"Gerunds (verb+ing)",
				},
				Keywords: []string{"Grammar", "Subject"},
				Example:  "Tom is singing",
			},
		},
		{
			Template:   models.TemplateQuiz,
			Title:      "Practice: Coordinate Connectors",
			BgColor:    "from-purple-50 to-pink-50",
			DecorColor: "text-purple-600",
			Data: models.SlideData{
				Question: "Pick the sentence that uses FANBOYS correctly:",
				Options: []string{
					"I was tired so I went home",
					"I was tired, so I went home",
					"I was tired so, I went home",
					"I was tired, so, I went home",
				},
				CorrectAnswer: 1,
				Explanation:   "FANBOYS take a comma BEFORE the connector: 'I was tired, so I went home'.",
			},
		},
		{
			Template:   models.TemplateLongText,
			Title:      "What is an Adverb Clause?",
			BgColor:    "from-teal-50 to-emerald-50",
			DecorColor: "text-teal-600",
			Data: models.SlideData{
				Subtitle: "Full Explanation",
				Icon:     "book",
				Content: "An adverb clause works as an adverb: it tells **when**, **where**, " +
					"**why**, or **how** something happens.\n\n" +
					"- Starts with a subordinating conjunction (when, because, if, although)\n" +
					"- Can sit at the start or middle of a sentence\n" +
					"- Takes a comma when it comes first",
			},
		},
		{
			Template:   models.TemplateImageFocus,
			Title:      "Modus Ponens",
			BgColor:    "from-amber-50 to-orange-50",
			DecorColor: "text-amber-600",
			Data: models.SlideData{
				Image:     "⚡",
				ImageSize: "huge",
				Notes:     []string{"If P → Q", "P holds", "∴ Q holds"},
				Example:   "If diligent → success\nBudi is diligent\n∴ Budi succeeds",
			},
		},
		{
			Template:   models.TemplateComparison,
			Title:      "FANBOYS vs Adverb Clause",
			BgColor:    "from-green-50 to-lime-50",
			DecorColor: "text-green-600",
			Data: models.SlideData{
				LeftTitle: "FANBOYS",
				LeftItems: []string{
					"Mid-sentence only",
					"Comma required",
					"Joins two equal clauses",
				},
				RightTitle: "Adverb Clause",
				RightItems: []string{
					"Start or middle",
					"Comma when leading",
					"Joins main and subordinate clause",
					"Examples: when, because, if",
				},
			},
		},
		{
			Template:   models.TemplateTipCard,
			Title:      "Tips for Remembering FANBOYS",
			BgColor:    "from-yellow-50 to-amber-50",
			DecorColor: "text-yellow-600",
			Data: models.SlideData{
				Tips: []models.TipItem{
					{Emoji: "🎯", Title: "Use the acronym", Description: "F-A-N-B-O-Y-S spells 'fanboys', hard to forget"},
					{Emoji: "✍️", Title: "Practice daily", Description: "Write one sentence a day with a different connector"},
					{Emoji: "📝", Title: "Check the comma", Description: "FANBOYS always means comma"},
				},
			},
		},
		{
			Template:   models.TemplateDefinition,
			Title:      "Coordinate Connector",
			BgColor:    "from-rose-50 to-red-50",
			DecorColor: "text-rose-600",
			Data: models.SlideData{
				Term:       "FANBOYS",
				Definition: "The seven coordinating conjunctions that join two independent clauses of equal weight.",
				Connectors: []string{"for", "and", "nor", "but", "or", "yet", "so"},
				Examples: []string{
					"I was tired, so I went home",
					"She studied hard, and she passed",
				},
			},
		},
	}
}
