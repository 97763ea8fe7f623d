package carousel

// CardAspectRatio is the fixed aspect ratio every rendered card fills.
const CardAspectRatio = "4/5"

// Frame is the renderable tree the dispatcher produces for one slide. It is
// a plain value: building a frame never touches the deck, storage, or the
// network. Clients lay the sections out top to bottom in order.
type Frame struct {
	Template    string    `json:"template"`
	AspectRatio string    `json:"aspect_ratio"`
	BgColor     string    `json:"bg_color,omitempty"`
	DecorColor  string    `json:"decor_color,omitempty"`
	Title       string    `json:"title,omitempty"`
	Placeholder bool      `json:"placeholder,omitempty"`
	Sections    []Section `json:"sections"`
}

// Section kinds. Each renderer emits only the kinds its template defines.
const (
	SectionSubtitle    = "subtitle"
	SectionVisual      = "visual"
	SectionList        = "list"
	SectionChips       = "chips"
	SectionExample     = "example"
	SectionQuestion    = "question"
	SectionOptions     = "options"
	SectionExplanation = "explanation"
	SectionBody        = "body"
	SectionImage       = "image"
	SectionColumns     = "columns"
	SectionTips        = "tips"
	SectionTerm        = "term"
	SectionMessage     = "message"
)

type Section struct {
	Kind    string       `json:"kind"`
	Label   string       `json:"label,omitempty"`
	Text    string       `json:"text,omitempty"`
	HTML    string       `json:"html,omitempty"`
	Badge   string       `json:"badge,omitempty"`
	Size    string       `json:"size,omitempty"`
	Items   []string     `json:"items,omitempty"`
	Options []OptionView `json:"options,omitempty"`
	Columns []Column     `json:"columns,omitempty"`
	Tips    []TipView    `json:"tips,omitempty"`
}

// OptionView is one quiz answer row. Correct/Incorrect marks appear only
// after the answer is revealed; Disabled flips for every option at reveal.
type OptionView struct {
	Index     int    `json:"index"`
	Label     string `json:"label"`
	Text      string `json:"text"`
	Selected  bool   `json:"selected"`
	Correct   bool   `json:"correct"`
	Incorrect bool   `json:"incorrect"`
	Disabled  bool   `json:"disabled"`
}

type Column struct {
	Title string   `json:"title"`
	Items []string `json:"items"`
}

type TipView struct {
	Emoji       string `json:"emoji"`
	Title       string `json:"title"`
	Description string `json:"description"`
}
