// Package tabs is a navigation bar: titled tabs on a shared container with an
// indicator under the active one.
package tabs

import (
	"fmt"
	"time"

	"github.com/zjrosen/sketchpad/internal/canvas"
	"github.com/zjrosen/sketchpad/internal/clipboard"
	"github.com/zjrosen/sketchpad/internal/log"
	"github.com/zjrosen/sketchpad/internal/params"
	"github.com/zjrosen/sketchpad/internal/sketch"
)

const Name = "tabs"

const description = `# Tabs

A tab bar as wide as the simulated screen. The active tab carries an
indicator along the bottom edge.

- **click** a tab to activate it
- **tab padding** is the minimum space kept around each title; longer titles
  are truncated
`

// MaxTabs is the number of title slots.
const MaxTabs = 4

// Config is the tab bar's parameter record.
type Config struct {
	Titles          [MaxTabs]string
	TabCount        int
	ActiveTab       int
	ScreenSize      int
	CornerRadius    int
	FontSize        int
	TabPadding      int
	IndicatorHeight int

	Background    canvas.Color
	TabBackground canvas.Color
	TabText       canvas.Color
	ActiveText    canvas.Color
	Indicator     canvas.Color
}

// DefaultConfig is the bar as first shown.
func DefaultConfig() Config {
	return Config{
		Titles:          [MaxTabs]string{"Overview", "Specifications", "Details", "Resources"},
		TabCount:        2,
		ScreenSize:      412,
		FontSize:        14,
		TabPadding:      21,
		IndicatorHeight: 4,
		Background:      canvas.MustParse("#E6E6FA"),
		TabBackground:   canvas.MustParse("#FFFFFF"),
		TabText:         canvas.MustParse("#333333"),
		ActiveText:      canvas.MustParse("#000000"),
		Indicator:       canvas.MustParse("#6A5ACD"),
	}
}

// Sketch is the tabs demo.
type Sketch struct {
	cfg   Config
	set   *params.Set
	view  sketch.Viewport
	hover int
}

var _ sketch.Sketch = (*Sketch)(nil)

// New builds the sketch with default parameters.
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
		params.Int(&c.CornerRadius, "cornerRadius", "Corner Radius", 0, 20, 1),
		params.Int(&c.FontSize, "fontSize", "Font Size", 12, 24, 1),
		params.Int(&c.TabPadding, "tabPadding", "Tab Padding", 10, 40, 1),
		params.Int(&c.IndicatorHeight, "indicatorHeight", "Indicator Height", 1, 10, 1),
		params.Color(&c.Indicator, "indicatorColor", "Indicator"),
		params.Int(&c.ActiveTab, "activeTab", "Active Tab", 0, MaxTabs-1, 1),
	)
	s.set.Group("Colors",
		params.Color(&c.Background, "backgroundColor", "Background"),
		params.Color(&c.TabBackground, "tabBackgroundColor", "Tab Background"),
		params.Color(&c.TabText, "tabTextColor", "Tab Text"),
		params.Color(&c.ActiveText, "activeTabTextColor", "Active Tab Text"),
	)
	return s
}

func (s *Sketch) Info() sketch.Info {
	return sketch.Info{Name: Name, Title: "Tabs", Description: description, ExportBase: "tabs-component"}
}

func (s *Sketch) Params() *params.Set { return s.set }

// Config returns a copy of the current parameters.
func (s *Sketch) Config() Config { return s.cfg }

// ActiveTab is the index of the active tab.
func (s *Sketch) ActiveTab() int { return s.cfg.ActiveTab }

type layout struct {
	x, y, w, h float64
	tabW       float64
}

func (s *Sketch) layout() layout {
	w := float64(s.cfg.ScreenSize)
	h := float64(s.cfg.FontSize) * 3
	return layout{
		x:    s.view.W/2 - w/2,
		y:    s.view.H/2 - h/2,
		w:    w,
		h:    h,
		tabW: w / float64(s.cfg.TabCount),
	}
}

// tabAt returns the tab under (x, y) or -1.
func (s *Sketch) tabAt(x, y float64) int {
	l := s.layout()
	if y < l.y || y > l.y+l.h || x < l.x || x > l.x+l.w {
		return -1
	}
	return min(int((x-l.x)/l.tabW), s.cfg.TabCount-1)
}

func (s *Sketch) Render(c *canvas.Canvas) {
	s.view.Update(c)
	cfg := &s.cfg
	l := s.layout()

	c.Background(cfg.Background)
	c.FillRoundRect(l.x, l.y, l.w, l.h, canvas.Uniform(float64(cfg.CornerRadius)), cfg.TabBackground)

	size := float64(cfg.FontSize)
	for i := 0; i < cfg.TabCount; i++ {
		tx := l.x + float64(i)*l.tabW
		active := i == cfg.ActiveTab

		col := cfg.TabText
		if active {
			col = cfg.ActiveText
		}
		title := sketch.Truncate(cfg.Titles[i], size, l.tabW-2*float64(cfg.TabPadding))
		c.Text(title, tx+l.tabW/2, l.y+l.h/2, size, canvas.AlignCenter, col)

		if active {
			ih := float64(cfg.IndicatorHeight)
			c.FillRect(tx, l.y+l.h-ih, l.tabW, ih, cfg.Indicator)
		}
	}
}

func (s *Sketch) Pointer(ev sketch.PointerEvent) bool {
	prev := s.hover
	s.hover = s.tabAt(ev.X, ev.Y)

	if ev.Kind == sketch.PointerDown && s.hover >= 0 && s.hover != s.cfg.ActiveTab {
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
