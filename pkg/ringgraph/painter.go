package ringgraph

import (
	"math"

	"github.com/go-drift/ringmeter/pkg/graphics"
)

// Painter draws the ring graph foreground and answers the layout queries
// the surface uses once, at construction, to place overlays.
type Painter interface {
	// DrawForeground renders the rings for one frame into rect.
	DrawForeground(rect graphics.Rect, state GraphAnimationState)
	// FramesForDescriptionLabels returns one label frame per meter.
	FramesForDescriptionLabels(rect graphics.Rect) []graphics.Rect
	// FrameForDescriptionText returns the frame of the central readout.
	FrameForDescriptionText(rect graphics.Rect) graphics.Rect
}

// Host receives redraw requests. A host that sets its display dirty must
// later call Surface.Draw from the same goroutine.
type Host interface {
	SetNeedsDisplay()
}

const (
	// holeRatio is the inner empty radius as a fraction of the outer radius.
	holeRatio = 0.3
	// strokeRatio is the ring stroke as a fraction of the per-ring step.
	strokeRatio = 0.85
	// marginRatio insets the outer ring from the frame edge.
	marginRatio = 0.04
)

// Layout is the ring geometry shared by painters.
type Layout struct {
	Rect        graphics.Rect
	Center      graphics.Offset
	OuterRadius float64
	// RingWidth is the stroke width of every ring.
	RingWidth float64
	// Radii holds the centerline radius of each ring, outermost first.
	Radii []float64
}

// NewLayout computes concentric ring geometry for count rings in rect.
func NewLayout(rect graphics.Rect, count int) Layout {
	outer := rect.ShortestSide()/2 - rect.ShortestSide()*marginRatio
	l := Layout{
		Rect:        rect,
		Center:      rect.Center(),
		OuterRadius: math.Max(0, outer),
	}
	if count <= 0 || rect.IsEmpty() || l.OuterRadius == 0 {
		return l
	}
	step := l.OuterRadius * (1 - holeRatio) / float64(count)
	l.RingWidth = step * strokeRatio
	l.Radii = make([]float64, count)
	for i := range l.Radii {
		l.Radii[i] = l.OuterRadius - step*float64(i) - l.RingWidth/2
	}
	return l
}

// InnerRadius returns the radius of the empty hole inside the rings.
func (l Layout) InnerRadius() float64 {
	if len(l.Radii) == 0 {
		return l.OuterRadius
	}
	return l.Radii[len(l.Radii)-1] - l.RingWidth/2
}

// LabelFrames places one label left of each ring's top, right aligned to
// just before the ring start angle.
func (l Layout) LabelFrames() []graphics.Rect {
	frames := make([]graphics.Rect, len(l.Radii))
	for i, r := range l.Radii {
		top := l.Center.Y - r - l.RingWidth/2
		frames[i] = graphics.Rect{
			Left:   l.Rect.Left,
			Top:    top,
			Right:  l.Center.X - l.RingWidth*0.25,
			Bottom: top + l.RingWidth,
		}
	}
	return frames
}

// TextFrame returns the square inscribed in the hole.
func (l Layout) TextFrame() graphics.Rect {
	half := l.InnerRadius() / math.Sqrt2
	return graphics.Rect{
		Left:   l.Center.X - half,
		Top:    l.Center.Y - half,
		Right:  l.Center.X + half,
		Bottom: l.Center.Y + half,
	}
}

// ArcPoint returns the point at fraction t of a full clockwise turn that
// starts at twelve o'clock, on the circle of the given radius.
func (l Layout) ArcPoint(radius, t float64) graphics.Offset {
	angle := -math.Pi/2 + t*2*math.Pi
	return graphics.Offset{
		X: l.Center.X + radius*math.Cos(angle),
		Y: l.Center.Y + radius*math.Sin(angle),
	}
}

// LayoutPainter answers layout queries from [Layout]; painters embed it
// and add DrawForeground.
type LayoutPainter struct {
	Graph *RingGraph
}

// FramesForDescriptionLabels implements Painter.
func (p LayoutPainter) FramesForDescriptionLabels(rect graphics.Rect) []graphics.Rect {
	return NewLayout(rect, len(p.Graph.Meters)).LabelFrames()
}

// FrameForDescriptionText implements Painter.
func (p LayoutPainter) FrameForDescriptionText(rect graphics.Rect) graphics.Rect {
	return NewLayout(rect, len(p.Graph.Meters)).TextFrame()
}
