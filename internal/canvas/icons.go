package canvas

import "math"

// IconName identifies a vector icon. Names follow the Material icon set.
type IconName string

const (
	IconHome          IconName = "home"
	IconDescription   IconName = "description"
	IconInfo          IconName = "info"
	IconFolder        IconName = "folder"
	IconSearch        IconName = "search"
	IconPerson        IconName = "person"
	IconEmail         IconName = "email"
	IconPhone         IconName = "phone"
	IconLock          IconName = "lock"
	IconVisibility    IconName = "visibility"
	IconVisibilityOff IconName = "visibility_off"
	IconClose         IconName = "close"
	IconCheck         IconName = "check"
	IconError         IconName = "error"
	IconWarning       IconName = "warning"
)

// FieldIcons are the icons offered as text-field adornments.
var FieldIcons = []IconName{
	IconSearch, IconPerson, IconEmail, IconPhone, IconLock, IconVisibility,
	IconVisibilityOff, IconClose, IconCheck, IconError, IconWarning, IconInfo,
}

// Icon is a declarative icon node: what to draw and where. X and Y are the
// top-left of a Size×Size box.
type Icon struct {
	Name    IconName
	X, Y    float64
	Size    float64
	Color   Color
	Opacity float64 // 0 means fully opaque
}

// DrawIcon paints ic. Unknown names draw nothing.
func (c *Canvas) DrawIcon(ic Icon) {
	if ic.Size <= 0 {
		return
	}
	col := ic.Color
	if ic.Opacity > 0 {
		col = col.Fade(ic.Opacity)
	}
	p := iconPen{c: c, x: ic.X, y: ic.Y, k: ic.Size / 24, col: col}

	switch ic.Name {
	case IconHome:
		p.poly(true, 10, 20, 10, 14, 14, 14, 14, 20, 19, 20, 19, 12, 22, 12, 12, 3, 2, 12, 5, 12, 5, 20)
	case IconDescription:
		p.poly(false, 6, 2, 14, 2, 20, 8, 20, 22, 4, 22, 4, 2, 6, 2)
		p.line(8, 13, 16, 13)
		p.line(8, 17, 16, 17)
		p.line(14, 2, 14, 8)
		p.line(14, 8, 20, 8)
	case IconInfo:
		p.ring(12, 12, 9)
		p.dot(12, 7.5, 1.3)
		p.line(12, 11, 12, 17)
	case IconFolder:
		p.poly(true, 2, 6, 4, 4, 10, 4, 12, 6, 20, 6, 22, 8, 22, 18, 20, 20, 4, 20, 2, 18)
	case IconSearch:
		p.ring(9.5, 9.5, 5.5)
		p.line(13.5, 13.5, 20, 20)
	case IconPerson:
		p.dot(12, 8, 4)
		c.FillRoundRect(p.px(4), p.py(14), 16*p.k, 6*p.k, TopBottom(6*p.k, 1*p.k), col)
	case IconEmail:
		c.StrokeRoundRect(p.px(2), p.py(5), 20*p.k, 14*p.k, Uniform(2*p.k), 2*p.k, col)
		p.line(3, 6, 12, 13)
		p.line(12, 13, 21, 6)
	case IconPhone:
		c.StrokeRoundRect(p.px(7), p.py(2), 10*p.k, 20*p.k, Uniform(2*p.k), 2*p.k, col)
		p.line(10.5, 18.5, 13.5, 18.5)
	case IconLock:
		c.FillRoundRect(p.px(5), p.py(10), 14*p.k, 11*p.k, Uniform(1.5*p.k), col)
		p.line(8, 10, 8, 7)
		p.line(16, 10, 16, 7)
		p.arc(12, 7, 4, math.Pi, 2*math.Pi)
	case IconVisibility:
		p.eye()
	case IconVisibilityOff:
		p.eye()
		p.line(3, 3, 21, 21)
	case IconClose:
		p.line(6, 6, 18, 18)
		p.line(18, 6, 6, 18)
	case IconCheck:
		p.line(5, 12.5, 10, 17.5)
		p.line(10, 17.5, 19, 7)
	case IconError:
		p.ring(12, 12, 9)
		p.line(12, 7, 12, 13)
		p.dot(12, 16.5, 1.3)
	case IconWarning:
		p.poly(false, 12, 3, 22, 20, 2, 20, 12, 3)
		p.line(12, 9, 12, 14)
		p.dot(12, 17, 1.2)
	}
}

// iconPen draws in the 24-unit icon grid.
type iconPen struct {
	c    *Canvas
	x, y float64
	k    float64
	col  Color
}

func (p iconPen) px(v float64) float64 { return p.x + v*p.k }
func (p iconPen) py(v float64) float64 { return p.y + v*p.k }

func (p iconPen) line(x1, y1, x2, y2 float64) {
	p.c.Line(p.px(x1), p.py(y1), p.px(x2), p.py(y2), 2*p.k, p.col)
}

func (p iconPen) ring(cx, cy, r float64) {
	p.c.StrokeCircle(p.px(cx), p.py(cy), r*p.k, 2*p.k, p.col)
}

func (p iconPen) dot(cx, cy, r float64) {
	p.c.FillCircle(p.px(cx), p.py(cy), r*p.k, p.col)
}

func (p iconPen) arc(cx, cy, r, a1, a2 float64) {
	s := p.c.ratio
	p.c.dc.ClearPath()
	p.c.dc.DrawArc(p.px(cx)*s, p.py(cy)*s, r*p.k*s, a1, a2)
	p.c.stroke(2*p.k, p.col)
}

func (p iconPen) eye() {
	s := p.c.ratio
	p.c.dc.ClearPath()
	p.c.dc.DrawEllipse(p.px(12)*s, p.py(12)*s, 10*p.k*s, 6*p.k*s)
	p.c.stroke(2*p.k, p.col)
	p.dot(12, 12, 3)
}

// poly draws a polyline through xy pairs; filled closes and fills it.
func (p iconPen) poly(filled bool, xy ...float64) {
	if len(xy) < 4 {
		return
	}
	s := p.c.ratio
	dc := p.c.dc
	dc.ClearPath()
	dc.MoveTo(p.px(xy[0])*s, p.py(xy[1])*s)
	for i := 2; i+1 < len(xy); i += 2 {
		dc.LineTo(p.px(xy[i])*s, p.py(xy[i+1])*s)
	}
	if filled {
		dc.ClosePath()
		p.c.fill(p.col)
		return
	}
	p.c.stroke(2*p.k, p.col)
}

// IconFor returns the icon shown before tab i when tab icons are enabled.
func IconFor(i int) IconName {
	icons := [...]IconName{IconHome, IconDescription, IconInfo, IconFolder}
	return icons[((i%len(icons))+len(icons))%len(icons)]
}
