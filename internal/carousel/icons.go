package carousel

// Closed mapping from icon identifiers to glyphs. Authoring surfaces store
// the identifier; lookup never reaches into an open namespace.
var iconGlyphs = map[string]string{
	"book":      "📖",
	"notebook":  "📓",
	"pencil":    "✏️",
	"bulb":      "💡",
	"target":    "🎯",
	"rocket":    "🚀",
	"star":      "⭐",
	"flag":      "🚩",
	"gear":      "⚙️",
	"chart":     "📊",
	"globe":     "🌍",
	"brain":     "🧠",
	"lightning": "⚡",
	"trophy":    "🏆",
}

const defaultIconGlyph = "📘"

// IconGlyph resolves an icon identifier to its glyph. Identifiers already
// holding a non-ASCII glyph pass through unchanged, so decks authored with
// literal emoji keep working. Unrecognized names get the default.
func IconGlyph(name string) string {
	if g, ok := iconGlyphs[name]; ok {
		return g
	}
	for _, r := range name {
		if r > 0x7F {
			return name
		}
	}
	return defaultIconGlyph
}
