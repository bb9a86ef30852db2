package textfields

import (
	"strings"

	"github.com/zjrosen/sketchpad/internal/canvas"
)

func (s *Sketch) Render(c *canvas.Canvas) {
	s.view.Update(c)
	s.sync()

	c.Background(s.cfg.Background)
	for i := 0; i < s.cfg.FieldCount; i++ {
		s.renderField(c, i)
	}
}

func (s *Sketch) renderField(c *canvas.Canvas, i int) {
	cfg := &s.cfg
	b := s.box(i)
	r := s.resolve(i)
	st := s.visualState(i)
	value := cfg.Fields[i].Value
	focused := s.focus == i
	disabled := st == StateDisabled
	fontSize := float64(cfg.FontSize)

	labelActive := cfg.LabelColor
	switch st {
	case StateFocused:
		labelActive = r.active
	case StateError:
		labelActive = cfg.Error
	case StateDisabled:
		labelActive = cfg.Disabled.WithAlpha(labelDisabled)
	}

	bg := cfg.FieldBackground
	if disabled {
		bg = bg.WithAlpha(disabledAlpha)
	}
	c.FillRoundRect(b.x, b.y, b.w, b.h, canvas.Uniform(s.fields[i].radius), bg)

	if cfg.ShowLabel {
		col := cfg.LabelColor
		if focused || value != "" {
			col = labelActive
		}
		c.Text(r.label, b.textX, b.labelY, float64(cfg.LabelSize), canvas.AlignLeft, col)
	}

	switch {
	case value != "":
		parts := clusters(value)
		widths := prefixWidths(parts, fontSize)
		fs := &s.fields[i]

		if sel := fs.sel.Normalize(); focused && !sel.Empty() {
			x1, x2 := b.textX+widths[sel.Start], b.textX+widths[sel.End]
			h := fontSize * 1.25
			c.FillRect(x1, b.textY-h/2, x2-x1, h, r.active.WithAlpha(selectionA))
		}

		col := cfg.Text
		if disabled {
			col = col.WithAlpha(disabledAlpha)
		}
		c.Text(strings.Join(parts, ""), b.textX, b.textY, fontSize, canvas.AlignLeft, col)

		if focused && s.caretOn {
			x := b.textX + widths[fs.caret]
			if fs.caret > 0 {
				x += 2
			}
			c.Line(x, b.textY-fontSize/2, x, b.textY+fontSize/2, 2, r.active)
		}
	case focused:
		if s.caretOn {
			c.Line(b.textX, b.textY-fontSize/2, b.textX, b.textY+fontSize/2, 2, r.active)
		}
	default:
		c.Text(r.placeholder, b.textX, b.textY, fontSize, canvas.AlignLeft, cfg.LabelColor.WithAlpha(placeholderA))
	}

	if cfg.ShowHelperText {
		col := cfg.Helper
		if st == StateError {
			col = cfg.Error
		}
		c.Text(r.helper, b.helperX, b.helperY, float64(cfg.HelperTextSize), canvas.AlignLeft, col)
	}

	opacity := 0.0
	if disabled {
		opacity = 0.38
	}
	iconY := b.y + b.h/2 - iconSize/2
	pad := float64(cfg.FieldPadding)
	if cfg.ShowLeadingIcon {
		c.DrawIcon(canvas.Icon{
			Name: canvas.IconName(cfg.LeadingIcon), X: b.x + pad, Y: iconY,
			Size: iconSize, Color: cfg.LabelColor, Opacity: opacity,
		})
	}
	if cfg.ShowTrailingIcon {
		col := cfg.LabelColor
		if s.hoverField == i && s.hoverIcon == i {
			col = r.active
		}
		c.DrawIcon(canvas.Icon{
			Name: canvas.IconName(cfg.TrailingIcon), X: b.x + b.w - pad - iconSize, Y: iconY,
			Size: iconSize, Color: col, Opacity: opacity,
		})
	}
}
