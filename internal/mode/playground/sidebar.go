package playground

import (
	"strings"

	zone "github.com/lrstanley/bubblezone"
	"github.com/mattn/go-runewidth"

	"github.com/zjrosen/sketchpad/internal/sketch"
	"github.com/zjrosen/sketchpad/internal/ui/styles"
)

const sidebarZonePrefix = "sketch:"

func sidebarZoneID(name string) string { return sidebarZonePrefix + name }

// renderSidebar lists the sketches, one per line, with the selected one
// highlighted. Each row is a mouse zone.
func renderSidebar(sketches []sketch.Sketch, selected, width int) string {
	lines := make([]string, 0, len(sketches))
	for i, sk := range sketches {
		info := sk.Info()
		title := info.Title
		if title == "" {
			title = info.Name
		}

		var line string
		if i == selected {
			line = styles.SidebarSelectedStyle.Render(runewidth.FillRight(runewidth.Truncate("● "+title, width, "…"), width))
		} else {
			line = styles.SidebarItemStyle.Render(runewidth.Truncate("  "+title, width, "…"))
		}
		lines = append(lines, zone.Mark(sidebarZoneID(info.Name), line))
	}
	return strings.Join(lines, "\n")
}
