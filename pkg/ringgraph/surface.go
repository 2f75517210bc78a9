package ringgraph

import (
	"fmt"
	"time"

	"github.com/go-drift/ringmeter/pkg/animation"
	"github.com/go-drift/ringmeter/pkg/errors"
	"github.com/go-drift/ringmeter/pkg/graphics"
)

// DefaultDuration is the length of one fill animation.
const DefaultDuration = 1300 * time.Millisecond

// Status is the animation state of a Surface.
//
//	          Animate()
//	Idle ─────────────────► Animating
//	  ▲                         │
//	  └─────────────────────────┘
//	     progress reaches 1.0
//
// Calling Animate while animating stays in Animating with a fresh run.
type Status int

const (
	// StatusIdle means no frame subscription is live.
	StatusIdle Status = iota
	// StatusAnimating means a frame subscription is driving redraws.
	StatusAnimating
)

// String returns a human-readable representation of the status.
func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusAnimating:
		return "animating"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// SurfaceConfig configures a Surface. Graph, Painter and Frames are required.
type SurfaceConfig struct {
	// Frame is the surface bounds used for overlay layout.
	Frame graphics.Rect
	Graph *RingGraph
	// Preset selects the overlays built at construction.
	Preset  DescriptionPreset
	Painter Painter
	// Frames supplies display refresh subscriptions.
	Frames animation.FrameSource
	// Host receives redraw requests. When nil, each tick draws the surface
	// synchronously into Frame.
	Host Host
	// Duration overrides DefaultDuration.
	Duration time.Duration
}

// Surface draws a ring graph and animates it on demand.
//
// A Surface must be created with NewSurface; the zero value is not usable
// and terminates the process when touched.
type Surface struct {
	frame   graphics.Rect
	graph   *RingGraph
	preset  DescriptionPreset
	painter Painter
	frames  animation.FrameSource
	host    Host

	state        *animation.AnimationState
	status       Status
	subscription animation.FrameSubscription

	overlays []Overlay
	drawn    uint64
}

// NewSurface builds a surface resting at full progress and creates the
// overlays its preset asks for.
func NewSurface(cfg SurfaceConfig) *Surface {
	if cfg.Graph == nil || cfg.Painter == nil || cfg.Frames == nil {
		errors.Fatal("ringgraph.NewSurface", "graph, painter and frame source are required")
	}
	duration := cfg.Duration
	if duration == 0 {
		duration = DefaultDuration
	}

	s := &Surface{
		frame:   cfg.Frame,
		graph:   cfg.Graph,
		preset:  cfg.Preset,
		painter: cfg.Painter,
		frames:  cfg.Frames,
		host:    cfg.Host,
		state:   animation.NewAnimationState(duration, 1),
		status:  StatusIdle,
	}

	switch cfg.Preset {
	case PresetCentralDescription:
		s.addProgressReadout()
	case PresetMetersDescription:
		s.addDescriptionLabels()
	case PresetNone:
	default:
		errors.Fatal("ringgraph.NewSurface", "unsupported description preset %v", cfg.Preset)
	}
	return s
}

// Animate starts a new fill animation from zero. A run already in flight
// is cancelled first, so at most one frame subscription is ever live.
func (s *Surface) Animate() {
	s.mustBeConfigured("Animate")
	if s.status == StatusAnimating {
		s.endAnimation()
	}

	s.state.Reset()
	sub := s.frames.NewSubscription()
	s.subscription = sub
	s.status = StatusAnimating
	sub.Start(func(time.Duration) {
		s.setNeedsDisplay()
	})
}

// Draw is the redraw handler. It may run for ticks or for any other
// repaint the host performs; while animating, each call advances time by
// the subscription's last reported frame interval.
func (s *Surface) Draw(rect graphics.Rect) {
	s.mustBeConfigured("Draw")
	if s.status == StatusAnimating {
		s.state.IncrementDuration(s.subscription.Duration())
	}

	p := s.state.Progress()

	// The completing frame is still drawn at full progress below.
	if s.status == StatusAnimating && p == 1 {
		s.endAnimation()
	}

	s.painter.DrawForeground(rect, NewGraphAnimationState(s.graph, p))
	for _, o := range s.overlays {
		o.SetAnimationProgress(p)
	}
	s.drawn++
}

// Progress returns the current animation progress.
func (s *Surface) Progress() float64 {
	s.mustBeConfigured("Progress")
	return s.state.Progress()
}

// Status returns whether the surface is animating.
func (s *Surface) Status() Status {
	s.mustBeConfigured("Status")
	return s.status
}

// IsAnimating reports whether a frame subscription is live.
func (s *Surface) IsAnimating() bool {
	s.mustBeConfigured("IsAnimating")
	return s.status == StatusAnimating
}

// Overlays returns the overlays in draw order. Hosts read them to present
// labels; the slice must not be modified.
func (s *Surface) Overlays() []Overlay {
	s.mustBeConfigured("Overlays")
	return s.overlays
}

// Graph returns the data model.
func (s *Surface) Graph() *RingGraph {
	s.mustBeConfigured("Graph")
	return s.graph
}

// Frame returns the surface bounds.
func (s *Surface) Frame() graphics.Rect {
	s.mustBeConfigured("Frame")
	return s.frame
}

// Preset returns the description preset the surface was built with.
func (s *Surface) Preset() DescriptionPreset {
	s.mustBeConfigured("Preset")
	return s.preset
}

// DrawCount returns the number of completed Draw calls.
func (s *Surface) DrawCount() uint64 {
	s.mustBeConfigured("DrawCount")
	return s.drawn
}

// Dispose stops any running animation. The surface stays drawable.
func (s *Surface) Dispose() {
	s.mustBeConfigured("Dispose")
	if s.status == StatusAnimating {
		s.endAnimation()
	}
}

func (s *Surface) setNeedsDisplay() {
	if s.host != nil {
		s.host.SetNeedsDisplay()
		return
	}
	s.Draw(s.frame)
}

func (s *Surface) endAnimation() {
	if s.subscription != nil {
		s.subscription.Stop()
		s.subscription = nil
	}
	s.status = StatusIdle
}

func (s *Surface) mustBeConfigured(op string) {
	if s.state == nil {
		errors.Fatal("ringgraph.Surface."+op, "surface was not created with NewSurface")
	}
}

func (s *Surface) addDescriptionLabels() {
	frames := s.painter.FramesForDescriptionLabels(s.frame)
	for i, frame := range frames {
		if i >= len(s.graph.Meters) {
			break
		}
		s.overlays = append(s.overlays, NewFadingLabel(frame, s.graph.Meters[i]))
	}
}

func (s *Surface) addProgressReadout() {
	if len(s.graph.Meters) == 0 {
		errors.Fatal("ringgraph.NewSurface", "central description needs at least one meter")
	}
	frame := s.painter.FrameForDescriptionText(s.frame)
	s.overlays = append(s.overlays, NewProgressReadout(frame, s.graph.Meters[0]))
}
