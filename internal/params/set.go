package params

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// Set is the ordered parameter list of one sketch. Defaults are captured as
// parameters are added, so Reset and Diff compare against construction time.
type Set struct {
	title    string
	params   []Param
	index    map[string]Param
	defaults map[string]string
	onChange []func(key string)
}

// NewSet creates an empty set titled for the panel header.
func NewSet(title string) *Set {
	return &Set{
		title:    title,
		index:    make(map[string]Param),
		defaults: make(map[string]string),
	}
}

// Title is the panel header.
func (s *Set) Title() string { return s.title }

// Add appends ungrouped parameters.
func (s *Set) Add(ps ...Param) *Set {
	return s.Group("", ps...)
}

// Group appends parameters under a group heading. Duplicate keys panic:
// they are programming errors in a sketch's constructor.
func (s *Set) Group(name string, ps ...Param) *Set {
	for _, p := range ps {
		if _, dup := s.index[p.Key()]; dup {
			panic(fmt.Sprintf("params: duplicate key %q", p.Key()))
		}
		p.setGroup(name)
		s.params = append(s.params, p)
		s.index[p.Key()] = p
		s.defaults[p.Key()] = p.String()
	}
	return s
}

// All returns the parameters in display order.
func (s *Set) All() []Param { return s.params }

// Len is the number of parameters.
func (s *Set) Len() int { return len(s.params) }

// Get looks up a parameter by key.
func (s *Set) Get(key string) (Param, bool) {
	p, ok := s.index[key]
	return p, ok
}

// OnChange registers fn to run after any successful write.
func (s *Set) OnChange(fn func(key string)) {
	s.onChange = append(s.onChange, fn)
}

// SetString parses raw into the parameter named key.
func (s *Set) SetString(key, raw string) error {
	p, ok := s.index[key]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownParam, key)
	}
	if err := p.Set(raw); err != nil {
		return err
	}
	s.changed(key)
	return nil
}

// Step nudges the parameter named key; see Param.Step.
func (s *Set) Step(key string, dir int) (bool, error) {
	p, ok := s.index[key]
	if !ok {
		return false, fmt.Errorf("%w: %s", ErrUnknownParam, key)
	}
	if !p.Step(dir) {
		return false, nil
	}
	s.changed(key)
	return true, nil
}

// Apply writes every key in values in sorted key order and reports all
// failures together.
func (s *Set) Apply(values map[string]string) error {
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var errs []error
	for _, k := range keys {
		if err := s.SetString(k, values[k]); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Reset restores every parameter to its captured default.
func (s *Set) Reset() {
	for _, p := range s.params {
		_ = p.Set(s.defaults[p.Key()])
	}
	s.changed("")
}

// Value is one key/value pair in display order.
type Value struct {
	Key   string
	Value string
}

// Values returns the current values in display order.
func (s *Set) Values() []Value {
	out := make([]Value, len(s.params))
	for i, p := range s.params {
		out[i] = Value{Key: p.Key(), Value: p.String()}
	}
	return out
}

// Changed returns only the values that differ from their defaults.
func (s *Set) Changed() map[string]string {
	out := make(map[string]string)
	for _, p := range s.params {
		if v := p.String(); v != s.defaults[p.Key()] {
			out[p.Key()] = v
		}
	}
	return out
}

func (s *Set) changed(key string) {
	for _, fn := range s.onChange {
		fn(key)
	}
}

// LineType classifies a diff line.
type LineType int

const (
	LineSame LineType = iota
	LineAdded
	LineRemoved
)

// DiffLine is one line of a parameter diff.
type DiffLine struct {
	Type LineType
	Text string
}

// Diff compares the defaults with the current values, one "key: value" line
// per parameter.
func (s *Set) Diff() []DiffLine {
	var before, after strings.Builder
	for _, p := range s.params {
		fmt.Fprintf(&before, "%s: %s\n", p.Key(), s.defaults[p.Key()])
		fmt.Fprintf(&after, "%s: %s\n", p.Key(), p.String())
	}

	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(before.String(), after.String())
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	var out []DiffLine
	for _, d := range diffs {
		typ := LineSame
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			typ = LineAdded
		case diffmatchpatch.DiffDelete:
			typ = LineRemoved
		}
		for _, line := range strings.SplitAfter(d.Text, "\n") {
			if line = strings.TrimSuffix(line, "\n"); line != "" {
				out = append(out, DiffLine{Type: typ, Text: line})
			}
		}
	}
	return out
}

// DiffString renders Diff with unified-diff prefixes, omitting unchanged
// lines. Empty when nothing changed.
func (s *Set) DiffString() string {
	var sb strings.Builder
	for _, l := range s.Diff() {
		switch l.Type {
		case LineAdded:
			sb.WriteString("+ " + l.Text + "\n")
		case LineRemoved:
			sb.WriteString("- " + l.Text + "\n")
		}
	}
	return sb.String()
}
