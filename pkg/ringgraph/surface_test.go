package ringgraph_test

import (
	"testing"
	"time"

	"github.com/go-drift/ringmeter/pkg/animation"
	"github.com/go-drift/ringmeter/pkg/errors"
	"github.com/go-drift/ringmeter/pkg/graphics"
	"github.com/go-drift/ringmeter/pkg/ringgraph"
	ringtest "github.com/go-drift/ringmeter/pkg/testing"
)

const frame = 100 * time.Millisecond

func threeMeters() *ringgraph.RingGraph {
	return ringgraph.NewRingGraph(
		&ringgraph.RingMeter{Title: "Move", Value: 300, Max: 400, Colors: []graphics.Color{graphics.RGB(250, 17, 79)}, DescriptionLabelColor: graphics.RGB(250, 17, 79)},
		&ringgraph.RingMeter{Title: "Exercise", Value: 20, Max: 30, Colors: []graphics.Color{graphics.RGB(153, 255, 1)}, DescriptionLabelColor: graphics.RGB(153, 255, 1)},
		&ringgraph.RingMeter{Title: "Stand", Value: 12, Max: 12, Colors: []graphics.Color{graphics.RGB(0, 255, 246)}, DescriptionLabelColor: graphics.RGB(0, 255, 246)},
	)
}

func TestSurface_RestsAtFullProgress(t *testing.T) {
	tester := ringtest.NewSurfaceTester(t, threeMeters(), ringgraph.PresetNone)
	s := tester.Surface()

	if s.Status() != ringgraph.StatusIdle {
		t.Errorf("expected idle, got %v", s.Status())
	}
	if s.Progress() != 1 {
		t.Errorf("expected resting progress 1, got %v", s.Progress())
	}
}

func TestSurface_AnimateStartsAtZero(t *testing.T) {
	tester := ringtest.NewSurfaceTester(t, threeMeters(), ringgraph.PresetNone)
	s := tester.Surface()

	s.Animate()

	if s.Status() != ringgraph.StatusAnimating {
		t.Fatalf("expected animating, got %v", s.Status())
	}
	if s.Progress() != 0 {
		t.Errorf("expected progress 0 before the first tick, got %v", s.Progress())
	}
	if len(tester.Painter().Frames) != 0 {
		t.Errorf("expected no frames before the first tick, got %d", len(tester.Painter().Frames))
	}
}

func TestSurface_CompletesAfterThirteenTicks(t *testing.T) {
	tester := ringtest.NewSurfaceTester(t, threeMeters(), ringgraph.PresetNone)
	s := tester.Surface()
	s.Animate()

	for i := 1; i <= 12; i++ {
		tester.Pump(frame)
		if !s.IsAnimating() {
			t.Fatalf("animation ended early at tick %d (progress %v)", i, s.Progress())
		}
	}
	tester.Pump(frame)

	if s.Progress() != 1 {
		t.Fatalf("expected progress 1 after 13 ticks, got %v", s.Progress())
	}
	if s.Status() != ringgraph.StatusIdle {
		t.Fatalf("expected idle after completion, got %v", s.Status())
	}

	frames := tester.Painter().Progresses()
	if len(frames) != 13 {
		t.Fatalf("expected 13 frames, got %d", len(frames))
	}
	if frames[12] != 1 {
		t.Errorf("final frame should be drawn at full progress, got %v", frames[12])
	}

	// A 14th tick must not reach the surface.
	tester.Pump(frame)
	if got := len(tester.Painter().Frames); got != 13 {
		t.Errorf("expected no frame after completion, got %d frames", got)
	}
	if tester.Scheduler().HasActiveSubscriptions() {
		t.Error("expected subscription to be stopped")
	}
}

func TestSurface_ProgressIsMonotonicWhileAnimating(t *testing.T) {
	tester := ringtest.NewSurfaceTester(t, threeMeters(), ringgraph.PresetNone)
	tester.Surface().Animate()

	if err := tester.PumpAndSettle(16*time.Millisecond, 200); err != nil {
		t.Fatal(err)
	}
	prev := -1.0
	for i, p := range tester.Painter().Progresses() {
		if p < prev {
			t.Fatalf("frame %d progress %v decreased from %v", i, p, prev)
		}
		if p < 0 || p > 1 {
			t.Fatalf("frame %d progress %v out of range", i, p)
		}
		prev = p
	}
	if prev != 1 {
		t.Errorf("expected last frame at 1, got %v", prev)
	}
}

func TestSurface_AnimateTwiceRestarts(t *testing.T) {
	tester := ringtest.NewSurfaceTester(t, threeMeters(), ringgraph.PresetNone)
	s := tester.Surface()

	s.Animate()
	tester.PumpFrames(5, frame)
	if s.Progress() == 0 {
		t.Fatal("expected progress after five ticks")
	}

	s.Animate()
	if s.Progress() != 0 {
		t.Errorf("expected progress reset to 0, got %v", s.Progress())
	}
	if !s.IsAnimating() {
		t.Fatal("expected animating after restart")
	}

	before := len(tester.Painter().Frames)
	tester.Pump(frame)
	if got := len(tester.Painter().Frames) - before; got != 1 {
		t.Fatalf("expected exactly one live subscription to draw once, drew %d", got)
	}
	want := float64(frame) / float64(ringgraph.DefaultDuration)
	if got := s.Progress(); got != want {
		t.Errorf("progress after restart tick = %v, want %v", got, want)
	}
}

func TestSurface_ImmediateDoubleAnimate(t *testing.T) {
	tester := ringtest.NewSurfaceTester(t, threeMeters(), ringgraph.PresetNone)
	s := tester.Surface()

	s.Animate()
	s.Animate()

	tester.Pump(frame)
	if got := len(tester.Painter().Frames); got != 1 {
		t.Errorf("expected one draw per tick, got %d", got)
	}
}

func TestSurface_ExternalRedrawAdvancesTime(t *testing.T) {
	tester := ringtest.NewSurfaceTester(t, threeMeters(), ringgraph.PresetNone)
	s := tester.Surface()
	s.Animate()

	// Before any tick the subscription has no interval to report.
	s.Draw(s.Frame())
	if s.Progress() != 0 {
		t.Errorf("external redraw before first tick advanced time to %v", s.Progress())
	}

	tester.Pump(frame)
	s.Draw(s.Frame())

	want := float64(2*frame) / float64(ringgraph.DefaultDuration)
	if got := s.Progress(); got != want {
		t.Errorf("progress = %v, want %v", got, want)
	}
}

func TestSurface_IdleRedrawDoesNotAdvance(t *testing.T) {
	tester := ringtest.NewSurfaceTester(t, threeMeters(), ringgraph.PresetNone)
	s := tester.Surface()

	s.Draw(s.Frame())
	s.Draw(s.Frame())

	for _, p := range tester.Painter().Progresses() {
		if p != 1 {
			t.Errorf("idle redraw drew progress %v, want 1", p)
		}
	}
}

func TestSurface_DeferredHost(t *testing.T) {
	tester := ringtest.NewDeferredSurfaceTester(t, threeMeters(), ringgraph.PresetNone)
	s := tester.Surface()
	s.Animate()

	tester.Scheduler().StepFrame(frame)
	if tester.Host().Requests != 1 {
		t.Fatalf("expected one redraw request, got %d", tester.Host().Requests)
	}
	if len(tester.Painter().Frames) != 0 {
		t.Fatal("deferred host must not draw synchronously")
	}
	if tester.Host().TakeDirty() {
		s.Draw(s.Frame())
	}

	tester.PumpFrames(12, frame)
	if s.IsAnimating() {
		t.Errorf("expected animation to end after 13 ticks, progress %v", s.Progress())
	}
}

func TestSurface_CustomDuration(t *testing.T) {
	graph := threeMeters()
	scheduler := animation.NewFrameScheduler()
	painter := ringtest.NewRecordingPainter(graph)
	s := ringgraph.NewSurface(ringgraph.SurfaceConfig{
		Frame:    ringtest.DefaultFrame,
		Graph:    graph,
		Painter:  painter,
		Frames:   scheduler,
		Duration: 200 * time.Millisecond,
	})

	s.Animate()
	scheduler.StepFrame(frame)
	scheduler.StepFrame(frame)

	if s.IsAnimating() {
		t.Error("expected 200ms animation to finish after two 100ms ticks")
	}
}

func TestSurface_SnapshotScalesMeters(t *testing.T) {
	tester := ringtest.NewSurfaceTester(t, threeMeters(), ringgraph.PresetNone)
	s := tester.Surface()
	s.Animate()
	tester.PumpFrames(13, frame)

	last, ok := tester.Painter().Last()
	if !ok {
		t.Fatal("expected frames")
	}
	wants := []float64{0.75, 20.0 / 30.0, 1}
	for i, want := range wants {
		if got := last.Meters[i].Fill; got != want {
			t.Errorf("meter %d fill = %v, want %v", i, got, want)
		}
	}
}

func TestSurface_ZeroValueIsFatal(t *testing.T) {
	prevExit := errors.SetExitFunc(func(int) {})
	defer errors.SetExitFunc(prevExit)
	prevHandler := errors.DefaultHandler
	errors.SetHandler(&errors.LogHandler{Out: discard{}})
	defer errors.SetHandler(prevHandler)

	defer func() {
		if recover() == nil {
			t.Error("expected zero-value surface to be fatal")
		}
	}()
	var s ringgraph.Surface
	s.Animate()
}

func TestSurface_ZeroValueAccessorsAreFatal(t *testing.T) {
	prevExit := errors.SetExitFunc(func(int) {})
	defer errors.SetExitFunc(prevExit)
	prevHandler := errors.DefaultHandler
	errors.SetHandler(&errors.LogHandler{Out: discard{}})
	defer errors.SetHandler(prevHandler)

	tests := []struct {
		name string
		call func(s *ringgraph.Surface)
	}{
		{"Status", func(s *ringgraph.Surface) { s.Status() }},
		{"IsAnimating", func(s *ringgraph.Surface) { s.IsAnimating() }},
		{"Overlays", func(s *ringgraph.Surface) { s.Overlays() }},
		{"Graph", func(s *ringgraph.Surface) { s.Graph() }},
		{"Frame", func(s *ringgraph.Surface) { s.Frame() }},
		{"Preset", func(s *ringgraph.Surface) { s.Preset() }},
		{"DrawCount", func(s *ringgraph.Surface) { s.DrawCount() }},
		{"Dispose", func(s *ringgraph.Surface) { s.Dispose() }},
		{"Progress", func(s *ringgraph.Surface) { s.Progress() }},
		{"Draw", func(s *ringgraph.Surface) { s.Draw(graphics.RectFromLTWH(0, 0, 10, 10)) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("expected %s on a zero-value surface to be fatal", tt.name)
				}
			}()
			var s ringgraph.Surface
			tt.call(&s)
		})
	}
}

func TestSurface_MissingCollaboratorsIsFatal(t *testing.T) {
	prevExit := errors.SetExitFunc(func(int) {})
	defer errors.SetExitFunc(prevExit)
	prevHandler := errors.DefaultHandler
	errors.SetHandler(&errors.LogHandler{Out: discard{}})
	defer errors.SetHandler(prevHandler)

	defer func() {
		if recover() == nil {
			t.Error("expected NewSurface without a painter to be fatal")
		}
	}()
	ringgraph.NewSurface(ringgraph.SurfaceConfig{Graph: threeMeters(), Frames: animation.NewFrameScheduler()})
}

type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }
