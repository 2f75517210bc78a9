package raster

import (
	"image"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/go-drift/ringmeter/pkg/graphics"
	"github.com/go-drift/ringmeter/pkg/ringgraph"
)

// face is the bitmap face all overlay text is rendered with before being
// scaled to the requested size.
var face = basicfont.Face7x13

// DrawOverlays paints label and readout overlays on top of the rings.
// Call it after the surface has drawn, so overlays carry the frame's
// progress.
func (p *Painter) DrawOverlays(overlays []ringgraph.Overlay) {
	for _, o := range overlays {
		switch o := o.(type) {
		case *ringgraph.FadingLabel:
			if !o.Visible() {
				continue
			}
			p.drawText(o.Text, o.DrawColor(), o.Frame, o.Align, o.FontSize, o.Bold)
		case *ringgraph.ProgressReadout:
			main, detail := splitFrame(o.Frame)
			p.drawText(o.Text(), o.Color, main, graphics.TextAlignCenter, main.Height()*0.8, true)
			p.drawText(o.Detail(), o.Color, detail, graphics.TextAlignCenter, detail.Height()*0.6, false)
		}
	}
}

// splitFrame divides a readout frame into a large top line and a smaller
// bottom line.
func splitFrame(r graphics.Rect) (graphics.Rect, graphics.Rect) {
	mid := r.Top + r.Height()*0.65
	return graphics.Rect{Left: r.Left, Top: r.Top, Right: r.Right, Bottom: mid},
		graphics.Rect{Left: r.Left, Top: mid, Right: r.Right, Bottom: r.Bottom}
}

// MeasureText returns the width of s at the given size.
func MeasureText(s string, size float64) float64 {
	w := font.MeasureString(face, s).Ceil()
	return float64(w) * size / float64(face.Height)
}

// drawText renders s with the bitmap face, scales it to size and places
// it in frame according to align, vertically centered.
func (p *Painter) drawText(s string, col graphics.Color, frame graphics.Rect, align graphics.TextAlign, size float64, bold bool) {
	if s == "" || size <= 0 || col.Alpha() == 0 {
		return
	}
	w := font.MeasureString(face, s).Ceil()
	if bold {
		w++
	}
	h := face.Height
	glyphs := image.NewNRGBA(image.Rect(0, 0, w, h))
	d := &font.Drawer{
		Dst:  glyphs,
		Src:  image.NewUniform(col.NRGBA()),
		Face: face,
		Dot:  fixed.P(0, face.Ascent),
	}
	d.DrawString(s)
	if bold {
		d.Dot = fixed.P(1, face.Ascent)
		d.DrawString(s)
	}

	scale := size / float64(h)
	dw := MeasureText(s, size)
	if bold {
		dw += scale
	}
	dh := float64(h) * scale
	left := align.AlignedLeft(frame, dw)
	top := frame.Top + (frame.Height()-dh)/2
	dst := image.Rect(int(left), int(top), int(left+dw), int(top+dh))
	draw.ApproxBiLinear.Scale(p.img, dst, glyphs, glyphs.Bounds(), draw.Over, nil)
}
