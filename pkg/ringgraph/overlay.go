package ringgraph

import (
	"fmt"
	"math"
	"strings"

	"github.com/go-drift/ringmeter/pkg/animation"
	"github.com/go-drift/ringmeter/pkg/graphics"
)

// Overlay is a visual element whose appearance is a pure function of the
// surface progress. SetAnimationProgress is called once per frame, with
// the same value the rings were drawn with, and must not accumulate state.
type Overlay interface {
	SetAnimationProgress(p float64)
}

// Label fade window, in terms of the meter's own fill. The label sits left
// of the ring's top, so it is covered during the last quarter of a turn.
const (
	labelFadeBegin = 0.75
	labelFadeEnd   = 1.0
)

var labelFade = animation.Interval(labelFadeBegin, labelFadeEnd, animation.EaseIn)

// FadingLabel shows a meter title next to its ring and fades out as the
// ring's arc sweeps underneath it.
//
// The fade follows the meter's own fill, so a label only fades once its
// arc passes three quarters of a turn. Labels of meters filled to 75% or
// less stay fully visible for the whole animation.
type FadingLabel struct {
	Text  string
	Color graphics.Color
	Frame graphics.Rect
	Align graphics.TextAlign
	Bold  bool
	// FontSize is the nominal text size in pixels.
	FontSize float64

	meter   *RingMeter
	opacity float64
}

// NewFadingLabel creates a fully visible label for meter.
func NewFadingLabel(frame graphics.Rect, meter *RingMeter) *FadingLabel {
	return &FadingLabel{
		Text:     strings.ToUpper(meter.Title),
		Color:    meter.DescriptionLabelColor,
		Frame:    frame,
		Align:    graphics.TextAlignRight,
		Bold:     true,
		FontSize: 20,
		meter:    meter,
		opacity:  1,
	}
}

// SetAnimationProgress implements Overlay.
func (l *FadingLabel) SetAnimationProgress(p float64) {
	l.opacity = 1 - labelFade(l.meter.Fraction()*p)
}

// Meter returns the meter the label describes.
func (l *FadingLabel) Meter() *RingMeter {
	return l.meter
}

// Opacity returns the label opacity in [0, 1].
func (l *FadingLabel) Opacity() float64 {
	return l.opacity
}

// Visible reports whether the label has any opacity left.
func (l *FadingLabel) Visible() bool {
	return l.opacity > 0
}

// DrawColor is the label color with the current opacity applied.
func (l *FadingLabel) DrawColor() graphics.Color {
	return l.Color.WithAlpha(l.Color.Alpha() * l.opacity)
}

// ProgressReadout shows the value of one meter in the middle of the rings,
// counting up with the animation.
type ProgressReadout struct {
	Frame graphics.Rect
	Color graphics.Color

	meter   *RingMeter
	value   float64
	percent int
}

// NewProgressReadout creates a readout bound to meter, showing its
// settled value.
func NewProgressReadout(frame graphics.Rect, meter *RingMeter) *ProgressReadout {
	r := &ProgressReadout{
		Frame: frame,
		Color: meter.DescriptionLabelColor,
		meter: meter,
	}
	r.SetAnimationProgress(1)
	return r
}

// SetAnimationProgress implements Overlay.
func (r *ProgressReadout) SetAnimationProgress(p float64) {
	r.value = r.meter.Value * p
	r.percent = int(math.Round(r.meter.Fraction() * p * 100))
}

// Meter returns the meter the readout is bound to.
func (r *ProgressReadout) Meter() *RingMeter {
	return r.meter
}

// Percent returns the displayed fill percentage.
func (r *ProgressReadout) Percent() int {
	return r.percent
}

// Text returns the main readout line, e.g. "75%".
func (r *ProgressReadout) Text() string {
	return fmt.Sprintf("%d%%", r.percent)
}

// Detail returns the secondary line, e.g. "450/600 MOVE".
func (r *ProgressReadout) Detail() string {
	return fmt.Sprintf("%.0f/%.0f %s", r.value, r.meter.Max, strings.ToUpper(r.meter.Title))
}
