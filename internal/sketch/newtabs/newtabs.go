// Package newtabs is a segmented tab bar: the active tab is a filled pill
// with rounded top corners and tighter bottom corners, optionally led by an
// icon, and hovered tabs are tinted.
package newtabs

import (
	"fmt"
	"time"

	"github.com/zjrosen/sketchpad/internal/canvas"
	"github.com/zjrosen/sketchpad/internal/clipboard"
	"github.com/zjrosen/sketchpad/internal/log"
	"github.com/zjrosen/sketchpad/internal/params"
	"github.com/zjrosen/sketchpad/internal/sketch"
)

const Name = "newtabs"

const description = `# New Tabs

A segmented tab bar. The active tab is filled with the accent colour; its
bottom corners use a quarter of the top radius.

- **hover** tints inactive tabs
- **click** activates a tab
- **Add Icons** prefixes the active title with its icon
`

const MaxTabs = 4

// Config is the parameter record.
type Config struct {
	Titles       [MaxTabs]string
	TabCount     int
	ActiveTab    int
	ScreenSize   int
	CornerRadius int
	FontSize     int
	TabPadding   int
	ShowIcons    bool

	Background       canvas.Color
	TabBackground    canvas.Color
	ActiveBackground canvas.Color
	HoverBackground  canvas.Color
	TabText          canvas.Color
	ActiveText       canvas.Color
}

func DefaultConfig() Config {
	return Config{
		Titles:           [MaxTabs]string{"Overview", "Specifications", "Details", "Resources"},
		TabCount:         4,
		ScreenSize:       412,
		CornerRadius:     16,
		FontSize:         14,
		TabPadding:       21,
		Background:       canvas.MustParse("#F5F5F5"),
		TabBackground:    canvas.MustParse("#FFFFFF"),
		ActiveBackground: canvas.MustParse("#6750A4"),
		HoverBackground:  canvas.MustParse("#F7F2FA"),
		TabText:          canvas.MustParse("#49454F"),
		ActiveText:       canvas.MustParse("#FFFFFF"),
	}
}

type Sketch struct {
	cfg   Config
	set   *params.Set
	view  sketch.Viewport
	hover int
}

var _ sketch.Sketch = (*Sketch)(nil)

func New(sketch.Options) sketch.Sketch {
	s := &Sketch{cfg: DefaultConfig(), hover: -1}
	c := &s.cfg

	s.set = params.NewSet("Controls")
	s.set.Group("Content", params.Int(&c.TabCount, "tabCount", "Number of Tabs", 2, MaxTabs, 1))
	for i := range c.Titles {
		s.set.Group("Content", params.Text(&c.Titles[i], fmt.Sprintf("tab%dTitle", i+1), fmt.Sprintf("Tab %d Title", i+1)))
	}
	s.set.Group("Style",
		params.Int(&c.ScreenSize, "screenSize", "Screen Size (dp)", 320, 1200, 1),
		params.Int(&c.CornerRadius, "cornerRadius", "Corner Radius", 0, 30, 1),
		params.Int(&c.FontSize, "fontSize", "Font Size", 12, 24, 1),
		params.Int(&c.TabPadding, "tabPadding", "Tab Padding", 10, 40, 1),
		params.Int(&c.ActiveTab, "activeTab", "Active Tab", 0, MaxTabs-1, 1),
		params.Bool(&c.ShowIcons, "showIcons", "Add Icons"),
	)
	s.set.Group("Colors",
		params.Color(&c.Background, "backgroundColor", "Background"),
		params.Color(&c.TabBackground, "tabBackgroundColor", "Inactive Tab BG"),
		params.Color(&c.ActiveBackground, "activeTabBackgroundColor", "Active Tab BG"),
		params.Color(&c.HoverBackground, "hoverTabBackgroundColor", "Hover Tab BG"),
		params.Color(&c.TabText, "tabTextColor", "Inactive Tab Text"),
		params.Color(&c.ActiveText, "activeTabTextColor", "Active Tab Text"),
	)
	return s
}

func (s *Sketch) Info() sketch.Info {
	return sketch.Info{Name: Name, Title: "New Tabs", Description: description, ExportBase: "tabs-component"}
}

func (s *Sketch) Params() *params.Set { return s.set }
func (s *Sketch) Config() Config { return s.cfg }
func (s *Sketch) ActiveTab() int { return s.cfg.ActiveTab }
func (s *Sketch) Hovered() int { return s.hover }

func (s *Sketch) bar() (x, y, w, h, tabW float64) {
	w = float64(s.cfg.ScreenSize)
	h = float64(s.cfg.FontSize) * 3
	return s.view.W/2 - w/2, s.view.H/2 - h/2, w, h, w / float64(s.cfg.TabCount)
}

func (s *Sketch) tabAt(px, py float64) int {
	x, y, w, h, tabW := s.bar()
	if py < y || py > y+h || px < x || px > x+w {
		return -1
	}
	return min(int((px-x)/tabW), s.cfg.TabCount-1)
}

func (s *Sketch) Render(c *canvas.Canvas) {
	s.view.Update(c)
	cfg := &s.cfg
	x, y, _, h, tabW := s.bar()
	size := float64(cfg.FontSize)
	r := float64(cfg.CornerRadius)

	c.Background(cfg.Background)

	for i := 0; i < cfg.TabCount; i++ {
		tx := x + float64(i)*tabW
		active := i == cfg.ActiveTab

		switch {
		case active:
			c.FillRoundRect(tx, y, tabW, h, canvas.TopBottom(r, r/4), cfg.ActiveBackground)
		case i == s.hover:
			c.FillRect(tx, y, tabW, h, cfg.HoverBackground)
		default:
			c.FillRect(tx, y, tabW, h, cfg.TabBackground)
		}

		col := cfg.TabText
		if active {
			col = cfg.ActiveText
		}
		avail := tabW - 2*float64(cfg.TabPadding)
		cy := y + h/2

		if cfg.ShowIcons && active {
			iconSize := size
			spacing := iconSize / 2
			title := sketch.Truncate(cfg.Titles[i], size, avail-iconSize-spacing)
			total := iconSize + spacing + c.MeasureText(title, size)
			start := tx + tabW/2 - total/2
			c.DrawIcon(canvas.Icon{Name: canvas.IconFor(i), X: start, Y: cy - iconSize/2, Size: iconSize, Color: col})
			c.Text(title, start+iconSize+spacing, cy, size, canvas.AlignLeft, col)
			continue
		}
		c.Text(sketch.Truncate(cfg.Titles[i], size, avail), tx+tabW/2, cy, size, canvas.AlignCenter, col)
	}
}

func (s *Sketch) Pointer(ev sketch.PointerEvent) bool {
	prev := s.hover
	s.hover = s.tabAt(ev.X, ev.Y)
	if ev.Kind == sketch.PointerDown && s.hover >= 0 && s.hover != s.cfg.ActiveTab {
		// through the set so OnChange observers and the diff see the click
		if err := s.set.SetString("activeTab", fmt.Sprint(s.hover)); err != nil {
			log.ErrorErr(log.CatInput, "activate tab", err)
			return false
		}
		return true
	}
	return prev != s.hover
}

func (s *Sketch) Key(sketch.KeyEvent) ([]clipboard.Request, bool) { return nil, false }

func (s *Sketch) Tick(time.Time) bool { return false }

func (s *Sketch) Cursor() sketch.Cursor {
	if s.hover >= 0 {
		return sketch.CursorPointer
	}
	return sketch.CursorDefault
}

func (s *Sketch) Reset() {
	s.set.Reset()
	s.hover = -1
}
