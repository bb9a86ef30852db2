// Package params provides typed, bounded parameters bound to fields of a
// sketch's config record. Every write goes through Set, which parses, clamps
// and snaps, so render code can trust the values it reads.
package params

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/zjrosen/sketchpad/internal/canvas"
)

// ErrUnknownParam is returned when a key does not name a parameter.
var ErrUnknownParam = errors.New("unknown parameter")

// Kind identifies the value type of a parameter.
type Kind int

const (
	KindInt Kind = iota
	KindFloat
	KindBool
	KindText
	KindColor
	KindChoice
)

func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindBool:
		return "bool"
	case KindText:
		return "text"
	case KindColor:
		return "color"
	case KindChoice:
		return "choice"
	}
	return "unknown"
}

// Param is one editable value.
type Param interface {
	Key() string
	Label() string
	Group() string
	Kind() Kind
	// String formats the current value the way Set accepts it.
	String() string
	// Set parses raw and stores it, clamped to the parameter's bounds.
	Set(raw string) error
	// Step nudges the value: numbers by one step, bools toggle, choices
	// cycle. Returns false for kinds that cannot be stepped.
	Step(dir int) bool
	// Hint describes the accepted values for the panel footer.
	Hint() string

	setGroup(string)
}

type base struct {
	key   string
	label string
	group string
}

func (b *base) Key() string { return b.key }
func (b *base) Label() string { return b.label }
func (b *base) Group() string { return b.group }
func (b *base) setGroup(g string) { b.group = g }
func newBase(key, label string) base { return base{key: key, label: label} }

// IntParam is an integer in [Min, Max] snapped to Step.
type IntParam struct {
	base
	ptr           *int
	Min, Max, Inc int
}

// Int binds ptr. The current value is clamped immediately.
func Int(ptr *int, key, label string, minV, maxV, step int) *IntParam {
	p := &IntParam{base: newBase(key, label), ptr: ptr, Min: minV, Max: maxV, Inc: max(step, 1)}
	p.store(*ptr)
	return p
}

func (p *IntParam) Kind() Kind { return KindInt }
func (p *IntParam) String() string { return strconv.Itoa(*p.ptr) }
func (p *IntParam) Value() int { return *p.ptr }
func (p *IntParam) Hint() string { return fmt.Sprintf("%d–%d", p.Min, p.Max) }

func (p *IntParam) Step(dir int) bool {
	p.store(*p.ptr + sign(dir)*p.Inc)
	return true
}

func (p *IntParam) Set(raw string) error {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%s: %q is not a number", p.key, raw)
	}
	// clamp before converting: huge values overflow int
	v = math.Max(float64(p.Min), math.Min(float64(p.Max), v))
	p.store(int(math.Round(v)))
	return nil
}

func (p *IntParam) store(v int) {
	v = p.Min + int(math.Round(float64(v-p.Min)/float64(p.Inc)))*p.Inc
	*p.ptr = min(max(v, p.Min), p.Max)
}

// FloatParam is a float in [Min, Max] snapped to Step.
type FloatParam struct {
	base
	ptr           *float64
	Min, Max, Inc float64
}

// Float binds ptr. A non-positive step disables snapping.
func Float(ptr *float64, key, label string, minV, maxV, step float64) *FloatParam {
	p := &FloatParam{base: newBase(key, label), ptr: ptr, Min: minV, Max: maxV, Inc: step}
	p.store(*ptr)
	return p
}

func (p *FloatParam) Kind() Kind { return KindFloat }
func (p *FloatParam) String() string { return strconv.FormatFloat(*p.ptr, 'f', -1, 64) }
func (p *FloatParam) Value() float64 { return *p.ptr }

func (p *FloatParam) Hint() string {
	return fmt.Sprintf("%s–%s", strconv.FormatFloat(p.Min, 'f', -1, 64), strconv.FormatFloat(p.Max, 'f', -1, 64))
}

func (p *FloatParam) Step(dir int) bool {
	inc := p.Inc
	if inc <= 0 {
		inc = (p.Max - p.Min) / 100
	}
	p.store(*p.ptr + float64(sign(dir))*inc)
	return true
}

func (p *FloatParam) Set(raw string) error {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%s: %q is not a number", p.key, raw)
	}
	p.store(v)
	return nil
}

func (p *FloatParam) store(v float64) {
	if p.Inc > 0 {
		v = p.Min + math.Round((v-p.Min)/p.Inc)*p.Inc
	}
	v = math.Round(v*1e6) / 1e6
	*p.ptr = math.Min(math.Max(v, p.Min), p.Max)
}

// BoolParam is a toggle.
type BoolParam struct {
	base
	ptr *bool
}

func Bool(ptr *bool, key, label string) *BoolParam {
	return &BoolParam{base: newBase(key, label), ptr: ptr}
}

func (p *BoolParam) Kind() Kind { return KindBool }
func (p *BoolParam) String() string { return strconv.FormatBool(*p.ptr) }
func (p *BoolParam) Value() bool { return *p.ptr }
func (p *BoolParam) Hint() string { return "true/false" }

func (p *BoolParam) Step(int) bool {
	*p.ptr = !*p.ptr
	return true
}

func (p *BoolParam) Set(raw string) error {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "1", "t", "true", "yes", "on":
		*p.ptr = true
	case "0", "f", "false", "no", "off":
		*p.ptr = false
	default:
		return fmt.Errorf("%s: %q is not a boolean", p.key, raw)
	}
	return nil
}

// TextParam is free text.
type TextParam struct {
	base
	ptr *string
}

func Text(ptr *string, key, label string) *TextParam {
	return &TextParam{base: newBase(key, label), ptr: ptr}
}

func (p *TextParam) Kind() Kind { return KindText }
func (p *TextParam) String() string { return *p.ptr }
func (p *TextParam) Hint() string { return "text" }
func (p *TextParam) Step(int) bool { return false }
func (p *TextParam) Set(raw string) error { *p.ptr = raw; return nil }

// ColorParam is a colour edited as hex.
type ColorParam struct {
	base
	ptr *canvas.Color
}

func Color(ptr *canvas.Color, key, label string) *ColorParam {
	return &ColorParam{base: newBase(key, label), ptr: ptr}
}

func (p *ColorParam) Kind() Kind { return KindColor }
func (p *ColorParam) String() string { return strings.ToUpper(p.ptr.Hex()) }
func (p *ColorParam) Hint() string { return "#RRGGBB" }
func (p *ColorParam) Step(int) bool { return false }

func (p *ColorParam) Set(raw string) error {
	c, err := canvas.ParseColor(raw)
	if err != nil {
		return fmt.Errorf("%s: %w", p.key, err)
	}
	*p.ptr = c
	return nil
}

// ChoiceParam is one of a closed set of strings.
type ChoiceParam struct {
	base
	ptr     *string
	Options []string
}

// Choice binds ptr; a current value outside options is replaced by the
// first option.
func Choice(ptr *string, key, label string, options ...string) *ChoiceParam {
	p := &ChoiceParam{base: newBase(key, label), ptr: ptr, Options: options}
	if !slices.Contains(options, *ptr) && len(options) > 0 {
		*ptr = options[0]
	}
	return p
}

func (p *ChoiceParam) Kind() Kind { return KindChoice }
func (p *ChoiceParam) String() string { return *p.ptr }
func (p *ChoiceParam) Hint() string { return strings.Join(p.Options, "|") }

func (p *ChoiceParam) Step(dir int) bool {
	if len(p.Options) == 0 {
		return false
	}
	i := slices.Index(p.Options, *p.ptr)
	n := len(p.Options)
	*p.ptr = p.Options[((i+sign(dir))%n+n)%n]
	return true
}

func (p *ChoiceParam) Set(raw string) error {
	for _, o := range p.Options {
		if strings.EqualFold(o, strings.TrimSpace(raw)) {
			*p.ptr = o
			return nil
		}
	}
	return fmt.Errorf("%s: %q is not one of %s", p.key, raw, p.Hint())
}

func sign(dir int) int {
	if dir < 0 {
		return -1
	}
	return 1
}
