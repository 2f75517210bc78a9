package testing

import (
	"github.com/go-drift/ringmeter/pkg/graphics"
	"github.com/go-drift/ringmeter/pkg/ringgraph"
)

// RecordingPainter is a ringgraph.Painter that records every frame.
// Layout queries delegate to ringgraph.LayoutPainter.
type RecordingPainter struct {
	ringgraph.LayoutPainter

	// Frames holds the snapshot of every DrawForeground call, in order.
	Frames []ringgraph.GraphAnimationState
	// Rects holds the rect passed with each frame.
	Rects []graphics.Rect
}

// NewRecordingPainter creates a painter laid out for graph.
func NewRecordingPainter(graph *ringgraph.RingGraph) *RecordingPainter {
	return &RecordingPainter{LayoutPainter: ringgraph.LayoutPainter{Graph: graph}}
}

// DrawForeground implements ringgraph.Painter.
func (p *RecordingPainter) DrawForeground(rect graphics.Rect, state ringgraph.GraphAnimationState) {
	p.Frames = append(p.Frames, state)
	p.Rects = append(p.Rects, rect)
}

// Progresses returns the progress of every recorded frame.
func (p *RecordingPainter) Progresses() []float64 {
	out := make([]float64, len(p.Frames))
	for i, f := range p.Frames {
		out[i] = f.Progress
	}
	return out
}

// Last returns the most recent frame and whether one exists.
func (p *RecordingPainter) Last() (ringgraph.GraphAnimationState, bool) {
	if len(p.Frames) == 0 {
		return ringgraph.GraphAnimationState{}, false
	}
	return p.Frames[len(p.Frames)-1], true
}

// RecordingOverlay records every progress value it receives.
type RecordingOverlay struct {
	Values []float64
}

// SetAnimationProgress implements ringgraph.Overlay.
func (o *RecordingOverlay) SetAnimationProgress(p float64) {
	o.Values = append(o.Values, p)
}
