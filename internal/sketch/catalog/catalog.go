// Package catalog lists the available sketches in sidebar order.
package catalog

import (
	"fmt"
	"strings"

	"github.com/zjrosen/sketchpad/internal/sketch"
	"github.com/zjrosen/sketchpad/internal/sketch/newtabs"
	"github.com/zjrosen/sketchpad/internal/sketch/radio"
	"github.com/zjrosen/sketchpad/internal/sketch/tabs"
	"github.com/zjrosen/sketchpad/internal/sketch/textfields"
)

// Entry is a sketch constructor with its sidebar metadata.
type Entry struct {
	Name        string
	Description string
	New         func(sketch.Options) sketch.Sketch
}

// Entries returns the registry of all sketches.
func Entries() []Entry {
	return []Entry{
		{
			Name:        tabs.Name,
			Description: "Navigation bar with an active-tab indicator",
			New:         tabs.New,
		},
		{
			Name:        newtabs.Name,
			Description: "Rounded tabs with icons and hover colours",
			New:         newtabs.New,
		},
		{
			Name:        radio.Name,
			Description: "10×10 radio grid with animated selection",
			New:         radio.New,
		},
		{
			Name:        textfields.Name,
			Description: "Stacked text fields with caret and selection",
			New:         textfields.New,
		},
	}
}

// Names returns the sketch names in order.
func Names() []string {
	entries := Entries()
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Name
	}
	return out
}

// Lookup finds the entry named name (case-insensitive).
func Lookup(name string) (Entry, error) {
	for _, e := range Entries() {
		if strings.EqualFold(e.Name, name) {
			return e, nil
		}
	}
	return Entry{}, fmt.Errorf("unknown sketch %q (available: %s)", name, strings.Join(Names(), ", "))
}

// Create builds the sketch named name.
func Create(name string, opts sketch.Options) (sketch.Sketch, error) {
	e, err := Lookup(name)
	if err != nil {
		return nil, err
	}
	return e.New(opts), nil
}
