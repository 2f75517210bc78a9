// Package ringgraph implements an animated ring graph: concentric progress
// rings, one per meter, that fill from zero to their values whenever the
// graph is animated.
//
// A [Surface] owns the animation. It subscribes to a frame source, turns
// frame intervals into a progress value through [animation.AnimationState],
// asks a [Painter] to draw the rings for that progress and pushes the same
// progress into every [Overlay] (description labels or a central readout).
//
// All Surface methods must be called from the goroutine that steps the
// frame source.
package ringgraph

import (
	"math"

	"github.com/go-drift/ringmeter/pkg/graphics"
)

// RingMeter describes one data series drawn as a ring.
type RingMeter struct {
	// Title names the series. Description labels show it uppercased.
	Title string
	// Value is the current value of the series.
	Value float64
	// Max is the value at which the ring is full.
	Max float64
	// Colors is the gradient painted along the filled arc, start to end.
	// A single color paints a solid arc.
	Colors []graphics.Color
	// BackgroundColor paints the unfilled track. Zero draws no track.
	BackgroundColor graphics.Color
	// DescriptionLabelColor is used by overlays bound to this meter.
	DescriptionLabelColor graphics.Color
}

// Fraction returns Value/Max clamped to [0, 1]. A non-positive Max yields 0.
func (m *RingMeter) Fraction() float64 {
	if m.Max <= 0 {
		return 0
	}
	return math.Max(0, math.Min(1, m.Value/m.Max))
}

// ColorAt returns the arc color at position t in [0, 1] along the gradient.
func (m *RingMeter) ColorAt(t float64) graphics.Color {
	switch len(m.Colors) {
	case 0:
		return m.DescriptionLabelColor
	case 1:
		return m.Colors[0]
	}
	t = math.Max(0, math.Min(1, t))
	segments := float64(len(m.Colors) - 1)
	pos := t * segments
	i := int(pos)
	if i >= len(m.Colors)-1 {
		return m.Colors[len(m.Colors)-1]
	}
	return graphics.Lerp(m.Colors[i], m.Colors[i+1], pos-float64(i))
}

// RingGraph is the data model: meters ordered from the outermost ring in.
type RingGraph struct {
	Meters []*RingMeter
}

// NewRingGraph creates a graph from meters, outermost first.
func NewRingGraph(meters ...*RingMeter) *RingGraph {
	return &RingGraph{Meters: meters}
}

// MeterProgress is the fill of one ring in a frame.
type MeterProgress struct {
	Meter *RingMeter
	// Fill is the drawn fraction of the full circle.
	Fill float64
}

// GraphAnimationState is the per-frame snapshot handed to painters.
type GraphAnimationState struct {
	// Progress is the surface animation progress in [0, 1].
	Progress float64
	// Meters holds one entry per ring, in graph order.
	Meters []MeterProgress
}

// NewGraphAnimationState scales every meter's fraction by progress.
func NewGraphAnimationState(graph *RingGraph, progress float64) GraphAnimationState {
	state := GraphAnimationState{
		Progress: progress,
		Meters:   make([]MeterProgress, len(graph.Meters)),
	}
	for i, m := range graph.Meters {
		state.Meters[i] = MeterProgress{Meter: m, Fill: m.Fraction() * progress}
	}
	return state
}
