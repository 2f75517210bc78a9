// Package term paints ring graphs onto a tcell screen.
//
// Terminal cells are roughly twice as tall as they are wide, so the painter
// works in a virtual space where each cell is one unit wide and two units
// tall. Use [Painter.Rect] for the rect passed to the surface.
package term

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/go-drift/ringmeter/pkg/graphics"
	"github.com/go-drift/ringmeter/pkg/ringgraph"
)

const (
	// cellAspect is the height of a cell in virtual units.
	cellAspect = 2
	fillRune   = '█'
	trackRune  = '░'
)

// Painter is a ringgraph.Painter backed by a tcell.Screen.
type Painter struct {
	ringgraph.LayoutPainter

	Screen     tcell.Screen
	Background graphics.Color
}

// NewPainter creates a painter drawing onto screen.
func NewPainter(graph *ringgraph.RingGraph, screen tcell.Screen) *Painter {
	return &Painter{
		LayoutPainter: ringgraph.LayoutPainter{Graph: graph},
		Screen:        screen,
		Background:    graphics.ColorBlack,
	}
}

// Rect returns the screen bounds in virtual units.
func (p *Painter) Rect() graphics.Rect {
	w, h := p.Screen.Size()
	return graphics.RectFromLTWH(0, 0, float64(w), float64(h*cellAspect))
}

// DrawForeground implements ringgraph.Painter.
func (p *Painter) DrawForeground(rect graphics.Rect, state ringgraph.GraphAnimationState) {
	bg := p.style(p.Background, p.Background)
	p.Screen.Fill(' ', bg)

	layout := ringgraph.NewLayout(rect, len(state.Meters))
	if len(layout.Radii) == 0 {
		return
	}
	w, h := p.Screen.Size()
	for cy := range h {
		for cx := range w {
			vx := float64(cx) + 0.5
			vy := (float64(cy) + 0.5) * cellAspect
			ring, turn, ok := hitRing(layout, vx, vy)
			if !ok {
				continue
			}
			mp := state.Meters[ring]
			switch {
			case mp.Fill > 0 && turn <= mp.Fill:
				col := mp.Meter.ColorAt(turn / mp.Fill)
				p.Screen.SetContent(cx, cy, fillRune, nil, p.style(col, p.Background))
			case mp.Meter.BackgroundColor.Alpha() > 0:
				p.Screen.SetContent(cx, cy, trackRune, nil, p.style(mp.Meter.BackgroundColor, p.Background))
			}
		}
	}
}

// hitRing returns the ring under a virtual point and the point's position
// as a clockwise turn fraction from twelve o'clock.
func hitRing(layout ringgraph.Layout, x, y float64) (int, float64, bool) {
	dx := x - layout.Center.X
	dy := y - layout.Center.Y
	dist := math.Hypot(dx, dy)
	for i, r := range layout.Radii {
		if math.Abs(dist-r) > layout.RingWidth/2 {
			continue
		}
		angle := math.Atan2(dy, dx) + math.Pi/2
		if angle < 0 {
			angle += 2 * math.Pi
		}
		return i, angle / (2 * math.Pi), true
	}
	return 0, 0, false
}

// DrawOverlays writes label and readout overlays over the rings.
// Terminals have no alpha, so label opacity blends toward the background.
func (p *Painter) DrawOverlays(overlays []ringgraph.Overlay) {
	for _, o := range overlays {
		switch o := o.(type) {
		case *ringgraph.FadingLabel:
			if !o.Visible() {
				continue
			}
			col := graphics.Lerp(p.Background, o.Color, o.Opacity())
			style := p.style(col, p.Background)
			if o.Bold {
				style = style.Bold(true)
			}
			row := int(o.Frame.Center().Y / cellAspect)
			p.putText(o.Text, o.Frame, o.Align, row, style)
		case *ringgraph.ProgressReadout:
			style := p.style(o.Color, p.Background)
			row := int(o.Frame.Center().Y / cellAspect)
			p.putText(o.Text(), o.Frame, graphics.TextAlignCenter, row, style.Bold(true))
			p.putText(o.Detail(), o.Frame, graphics.TextAlignCenter, row+1, style)
		}
	}
}

func (p *Painter) putText(s string, frame graphics.Rect, align graphics.TextAlign, row int, style tcell.Style) {
	runes := []rune(s)
	left := int(math.Round(align.AlignedLeft(frame, float64(len(runes)))))
	if left < 0 {
		left = 0
	}
	for i, r := range runes {
		p.Screen.SetContent(left+i, row, r, nil, style)
	}
}

func (p *Painter) style(fg, bg graphics.Color) tcell.Style {
	return tcell.StyleDefault.Foreground(toTcell(fg)).Background(toTcell(bg))
}

func toTcell(c graphics.Color) tcell.Color {
	r, g, b, _ := c.Components()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
