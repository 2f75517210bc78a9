// Package raster paints ring graphs into in-memory images with
// golang.org/x/image and encodes frames as PNG.
package raster

import (
	"image"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/vector"

	"github.com/go-drift/ringmeter/pkg/graphics"
	"github.com/go-drift/ringmeter/pkg/ringgraph"
)

// segmentsPerTurn is the arc tessellation of a full ring. Gradients
// change color once per segment.
const segmentsPerTurn = 120

// Painter is a ringgraph.Painter that draws into an RGBA image.
type Painter struct {
	ringgraph.LayoutPainter

	// Background fills the image before every frame.
	Background graphics.Color

	img *image.RGBA
	z   *vector.Rasterizer
}

// NewPainter creates a painter with a width x height canvas.
func NewPainter(graph *ringgraph.RingGraph, width, height int) *Painter {
	return &Painter{
		LayoutPainter: ringgraph.LayoutPainter{Graph: graph},
		Background:    graphics.ColorBlack,
		img:           image.NewRGBA(image.Rect(0, 0, width, height)),
		z:             vector.NewRasterizer(width, height),
	}
}

// Image returns the canvas. It is overwritten by the next frame.
func (p *Painter) Image() *image.RGBA {
	return p.img
}

// Bounds returns the canvas as a graphics.Rect.
func (p *Painter) Bounds() graphics.Rect {
	b := p.img.Bounds()
	return graphics.RectFromLTWH(float64(b.Min.X), float64(b.Min.Y), float64(b.Dx()), float64(b.Dy()))
}

// DrawForeground implements ringgraph.Painter.
func (p *Painter) DrawForeground(rect graphics.Rect, state ringgraph.GraphAnimationState) {
	draw.Draw(p.img, p.img.Bounds(), image.NewUniform(p.Background.NRGBA()), image.Point{}, draw.Src)

	layout := ringgraph.NewLayout(rect, len(state.Meters))
	if len(layout.Radii) == 0 {
		return
	}
	for i, mp := range state.Meters {
		radius := layout.Radii[i]
		if mp.Meter.BackgroundColor.Alpha() > 0 {
			p.fillArc(layout, radius, 0, 1, mp.Meter.BackgroundColor)
		}
		p.drawMeter(layout, radius, mp)
	}
}

func (p *Painter) drawMeter(layout ringgraph.Layout, radius float64, mp ringgraph.MeterProgress) {
	if mp.Fill <= 0 {
		return
	}
	segments := int(math.Ceil(mp.Fill * segmentsPerTurn))
	for s := range segments {
		t0 := float64(s) / segmentsPerTurn
		t1 := math.Min(float64(s+1)/segmentsPerTurn, mp.Fill)
		// Gradient position is relative to the filled arc.
		col := mp.Meter.ColorAt(t0 / mp.Fill)
		p.fillArc(layout, radius, t0, t1, col)
	}
	// Round cap at the leading edge.
	end := layout.ArcPoint(radius, mp.Fill)
	p.fillCircle(end, layout.RingWidth/2, mp.Meter.ColorAt(1))
	start := layout.ArcPoint(radius, 0)
	p.fillCircle(start, layout.RingWidth/2, mp.Meter.ColorAt(0))
}

// fillArc fills the band of the ring between turn fractions t0 and t1.
func (p *Painter) fillArc(layout ringgraph.Layout, radius, t0, t1 float64, col graphics.Color) {
	inner := radius - layout.RingWidth/2
	outer := radius + layout.RingWidth/2
	steps := int(math.Max(2, math.Ceil((t1-t0)*segmentsPerTurn*2)))

	p.resetRasterizer()
	first := layout.ArcPoint(outer, t0)
	p.z.MoveTo(float32(first.X), float32(first.Y))
	for i := 1; i <= steps; i++ {
		pt := layout.ArcPoint(outer, t0+(t1-t0)*float64(i)/float64(steps))
		p.z.LineTo(float32(pt.X), float32(pt.Y))
	}
	for i := steps; i >= 0; i-- {
		pt := layout.ArcPoint(inner, t0+(t1-t0)*float64(i)/float64(steps))
		p.z.LineTo(float32(pt.X), float32(pt.Y))
	}
	p.z.ClosePath()
	p.z.Draw(p.img, p.img.Bounds(), image.NewUniform(col.NRGBA()), image.Point{})
}

func (p *Painter) fillCircle(center graphics.Offset, r float64, col graphics.Color) {
	const steps = 32
	p.resetRasterizer()
	p.z.MoveTo(float32(center.X+r), float32(center.Y))
	for i := 1; i < steps; i++ {
		a := 2 * math.Pi * float64(i) / steps
		p.z.LineTo(float32(center.X+r*math.Cos(a)), float32(center.Y+r*math.Sin(a)))
	}
	p.z.ClosePath()
	p.z.Draw(p.img, p.img.Bounds(), image.NewUniform(col.NRGBA()), image.Point{})
}

func (p *Painter) resetRasterizer() {
	b := p.img.Bounds()
	p.z.Reset(b.Dx(), b.Dy())
	p.z.DrawOp = draw.Over
}

// WritePNG encodes the current canvas.
func (p *Painter) WritePNG(w io.Writer) error {
	return png.Encode(w, p.img)
}
