// Package textfields is a stack of Material-style text fields with a caret,
// mouse and keyboard selection, clipboard support and an animated corner
// radius that tightens while a field is focused.
package textfields

import (
	"fmt"
	"time"

	"github.com/zjrosen/sketchpad/internal/canvas"
	"github.com/zjrosen/sketchpad/internal/params"
	"github.com/zjrosen/sketchpad/internal/sketch"
)

const Name = "textfields"

const description = `# Text Fields

One to five stacked text fields. Each field can override the shared label,
placeholder, helper text, state and accent colour.

- **click** a field to focus it and place the caret; **drag** to select
- **click** the trailing ✕ to clear the field
- **ctrl+a / ctrl+c / ctrl+x / ctrl+v** select all, copy, cut, paste
- **tab** moves to the next field, **esc** or a click outside blurs
`

// Field states.
const (
	StateEnabled  = "Enabled"
	StateFocused  = "Focused"
	StateError    = "Error"
	StateDisabled = "Disabled"
	// StateInherit on a field override uses the shared state.
	StateInherit = "Inherit"
)

// MaxFields is the number of field override records.
const MaxFields = 5

const (
	blinkInterval = 530 * time.Millisecond
	radiusLerp    = 0.1
	radiusEps     = 0.01
	iconSize      = 24.0
	iconGap       = 6.0
	disabledAlpha = 38
	labelDisabled = 60
	placeholderA  = 128
	selectionA    = 0x40
)

// Palette holds the accent colours one is drawn from at start-up.
var Palette = []string{
	"#1F6E43", "#2D9D6C", "#4DB38A", "#8FD65B", "#D9E64A",
	"#0A3B6D", "#2D6FC1", "#4A9FE6", "#6BCBF5", "#A8E7F0",
	"#6B4D1E", "#C42E1B", "#E84C30", "#F7954A", "#FFCF54",
}

// Field is the per-field override record. Empty strings inherit the shared
// value; Value is the field's own content.
type Field struct {
	Value       string
	Label       string
	Placeholder string
	HelperText  string
	State       string
	ActiveColor string
}

// Config is the parameter record.
type Config struct {
	Label          string
	Placeholder    string
	HelperText     string
	ShowLabel      bool
	ShowHelperText bool
	State          string

	ScreenSize int
	FieldCount int
	FieldGap   int

	Pill           bool
	CornerRadius   int
	FocusedRadius  int
	FontSize       int
	LabelSize      int
	HelperTextSize int
	FieldPadding   int

	ShowLeadingIcon  bool
	LeadingIcon      string
	ShowTrailingIcon bool
	TrailingIcon     string

	Background      canvas.Color
	FieldBackground canvas.Color
	Text            canvas.Color
	LabelColor      canvas.Color
	Active          canvas.Color
	Error           canvas.Color
	Disabled        canvas.Color
	Helper          canvas.Color

	Fields [MaxFields]Field
}

func DefaultConfig() Config {
	c := Config{
		Label:            "Label",
		Placeholder:      "Input",
		HelperText:       "Supporting text",
		ShowLabel:        true,
		ShowHelperText:   true,
		State:            StateEnabled,
		ScreenSize:       412,
		FieldCount:       1,
		FieldGap:         32,
		Pill:             true,
		CornerRadius:     20,
		FocusedRadius:    8,
		FontSize:         16,
		LabelSize:        12,
		HelperTextSize:   12,
		FieldPadding:     16,
		ShowLeadingIcon:  true,
		LeadingIcon:      string(canvas.IconSearch),
		ShowTrailingIcon: true,
		TrailingIcon:     string(canvas.IconClose),
		Background:       canvas.MustParse("#F5F5F5"),
		FieldBackground:  canvas.MustParse("#FFFFFF"),
		Text:             canvas.MustParse("#1C1B1F"),
		LabelColor:       canvas.MustParse("#49454F"),
		Active:           canvas.MustParse("#1F6E43"),
		Error:            canvas.MustParse("#B3261E"),
		Disabled:         canvas.MustParse("#1C1B1F"),
		Helper:           canvas.MustParse("#49454F"),
	}
	for i := range c.Fields {
		c.Fields[i].State = StateInherit
	}
	return c
}

// fieldState is the transient input state of one field.
type fieldState struct {
	sel    Selection
	caret  int
	radius float64 // negative until first layout
}

// Sketch is the text-field demo.
type Sketch struct {
	cfg  Config
	set  *params.Set
	view sketch.Viewport

	fields   [MaxFields]fieldState
	focus    int
	dragging bool

	hoverField int
	hoverIcon  int

	caretOn    bool
	lastBlink  time.Time
	blinkReset bool
}

var _ sketch.Sketch = (*Sketch)(nil)

func New(opts sketch.Options) sketch.Sketch {
	rng := opts.Rand()
	s := &Sketch{cfg: DefaultConfig(), focus: -1, hoverField: -1, hoverIcon: -1}
	c := &s.cfg

	c.Active = canvas.MustParse(Palette[rng.IntN(len(Palette))])
	c.ShowLabel = rng.Float64() >= 0.5
	c.ShowHelperText = rng.Float64() >= 0.5

	states := []string{StateEnabled, StateFocused, StateError, StateDisabled}
	icons := make([]string, len(canvas.FieldIcons))
	for i, ic := range canvas.FieldIcons {
		icons[i] = string(ic)
	}

	s.set = params.NewSet("Text Field Controls")
	s.set.Group("Content",
		params.Text(&c.Label, "label", "Label Text"),
		params.Bool(&c.ShowLabel, "showLabel", "Show Label"),
		params.Text(&c.Placeholder, "placeholder", "Placeholder"),
		params.Text(&c.Fields[0].Value, "value", "Input Value"),
		params.Text(&c.HelperText, "helperText", "Helper Text"),
		params.Bool(&c.ShowHelperText, "showHelperText", "Show Helper Text"),
		params.Choice(&c.State, "state", "Field State", states...),
	)
	s.set.Group("Layout",
		params.Int(&c.ScreenSize, "screenSize", "Screen Size (dp)", 320, 1200, 1),
		params.Int(&c.FieldCount, "fieldCount", "Fields", 1, MaxFields, 1),
		params.Int(&c.FieldGap, "fieldGap", "Field Gap", 16, 64, 1),
	)
	s.set.Group("Style",
		params.Bool(&c.Pill, "pill", "Pill Shape"),
		params.Int(&c.CornerRadius, "cornerRadius", "Corner Radius", 0, 20, 1),
		params.Int(&c.FocusedRadius, "focusedRadius", "Focused Radius", 0, 20, 1),
		params.Int(&c.FontSize, "fontSize", "Input Font Size", 12, 24, 1),
		params.Int(&c.LabelSize, "labelSize", "Label Font Size", 10, 18, 1),
		params.Int(&c.HelperTextSize, "helperTextSize", "Helper Text Size", 10, 18, 1),
		params.Int(&c.FieldPadding, "fieldPadding", "Field Padding", 8, 24, 1),
	)
	s.set.Group("Icons",
		params.Bool(&c.ShowLeadingIcon, "showLeadingIcon", "Show Leading Icon"),
		params.Choice(&c.LeadingIcon, "leadingIcon", "Leading Icon", icons...),
		params.Bool(&c.ShowTrailingIcon, "showTrailingIcon", "Show Trailing Icon"),
		params.Choice(&c.TrailingIcon, "trailingIcon", "Trailing Icon", icons...),
	)
	s.set.Group("Colors",
		params.Color(&c.Background, "backgroundColor", "Background"),
		params.Color(&c.FieldBackground, "fieldBackgroundColor", "Field Background"),
		params.Color(&c.Text, "textColor", "Text Color"),
		params.Color(&c.LabelColor, "labelColor", "Label Color"),
		params.Color(&c.Active, "activeColor", "Active Color"),
		params.Color(&c.Error, "errorColor", "Error Color"),
		params.Color(&c.Disabled, "disabledColor", "Disabled Color"),
		params.Color(&c.Helper, "helperTextColor", "Helper Text"),
	)
	overrideStates := append([]string{StateInherit}, states...)
	for i := 0; i < MaxFields; i++ {
		f := &c.Fields[i]
		group := fmt.Sprintf("Field %d", i+1)
		if i > 0 {
			s.set.Group(group, params.Text(&f.Value, fmt.Sprintf("field%dValue", i+1), "Value"))
		}
		s.set.Group(group,
			params.Text(&f.Label, fmt.Sprintf("field%dLabel", i+1), "Label"),
			params.Text(&f.Placeholder, fmt.Sprintf("field%dPlaceholder", i+1), "Placeholder"),
			params.Text(&f.HelperText, fmt.Sprintf("field%dHelper", i+1), "Helper Text"),
			params.Choice(&f.State, fmt.Sprintf("field%dState", i+1), "State", overrideStates...),
			params.Text(&f.ActiveColor, fmt.Sprintf("field%dActive", i+1), "Active Color"),
		)
	}

	s.set.OnChange(func(key string) {
		if key == "cornerRadius" {
			c.Pill = false
		}
	})
	s.resetInput()
	return s
}

func (s *Sketch) Info() sketch.Info {
	return sketch.Info{Name: Name, Title: "Text Fields", Description: description, ExportBase: "textfield-component"}
}

func (s *Sketch) Params() *params.Set { return s.set }
func (s *Sketch) Config() Config { return s.cfg }

// Focused is the focused field index or -1.
func (s *Sketch) Focused() int { return s.focus }

// Value is the content of field i.
func (s *Sketch) Value(i int) string { return s.cfg.Fields[i].Value }

// Selection is the selection of field i.
func (s *Sketch) Selection(i int) Selection { return s.fields[i].sel }

// Caret is the caret offset of field i.
func (s *Sketch) Caret(i int) int { return s.fields[i].caret }

func (s *Sketch) Reset() {
	s.set.Reset()
	s.resetInput()
}

func (s *Sketch) resetInput() {
	for i := range s.fields {
		s.fields[i] = fieldState{radius: -1}
	}
	s.focus = -1
	s.dragging = false
	s.hoverField, s.hoverIcon = -1, -1
	s.caretOn = true
}

// resolved is a field's effective configuration after overrides.
type resolved struct {
	label, placeholder, helper string
	state                      string
	active                     canvas.Color
}

func (s *Sketch) resolve(i int) resolved {
	c := &s.cfg
	f := &c.Fields[i]
	r := resolved{
		label:       pick(f.Label, c.Label),
		placeholder: pick(f.Placeholder, c.Placeholder),
		helper:      pick(f.HelperText, c.HelperText),
		state:       c.State,
		active:      c.Active,
	}
	if f.State != "" && f.State != StateInherit {
		r.state = f.State
	}
	if f.ActiveColor != "" {
		if col, err := canvas.ParseColor(f.ActiveColor); err == nil {
			r.active = col
		}
	}
	return r
}

func pick(override, shared string) string {
	if override != "" {
		return override
	}
	return shared
}

// visualState is the state a field is drawn in: a focused field shows as
// Focused unless it is disabled.
func (s *Sketch) visualState(i int) string {
	st := s.resolve(i).state
	if s.focus == i && st != StateDisabled {
		return StateFocused
	}
	return st
}

// sync clamps transient state after parameters changed underneath it.
func (s *Sketch) sync() {
	n := s.cfg.FieldCount
	if s.focus >= n || (s.focus >= 0 && s.resolve(s.focus).state == StateDisabled) {
		s.focus = -1
		s.dragging = false
	}
	for i := range s.fields {
		f := &s.fields[i]
		count := clusterCount(s.cfg.Fields[i].Value)
		f.sel = f.sel.clamp(count)
		if !s.dragging || i != s.focus {
			f.sel = f.sel.Normalize()
		}
		f.caret = min(max(f.caret, 0), count)
		if f.radius < 0 {
			f.radius = s.targetRadius(i)
		}
	}
}
