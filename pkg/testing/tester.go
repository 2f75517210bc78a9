package testing

import (
	"fmt"
	"testing"
	"time"

	"github.com/go-drift/ringmeter/pkg/animation"
	"github.com/go-drift/ringmeter/pkg/graphics"
	"github.com/go-drift/ringmeter/pkg/ringgraph"
)

// DefaultFrame is the surface frame used by NewSurfaceTester.
var DefaultFrame = graphics.RectFromLTWH(0, 0, 320, 320)

// SurfaceTester owns a surface, a manually stepped scheduler and a
// recording painter.
type SurfaceTester struct {
	t         testing.TB
	scheduler *animation.FrameScheduler
	painter   *RecordingPainter
	host      *DeferredHost
	surface   *ringgraph.Surface
}

// NewSurfaceTester creates a tester whose surface draws synchronously on
// every tick.
func NewSurfaceTester(t testing.TB, graph *ringgraph.RingGraph, preset ringgraph.DescriptionPreset) *SurfaceTester {
	return newSurfaceTester(t, graph, preset, nil)
}

// NewDeferredSurfaceTester creates a tester whose surface only requests
// redraws; Pump performs them after stepping the frame.
func NewDeferredSurfaceTester(t testing.TB, graph *ringgraph.RingGraph, preset ringgraph.DescriptionPreset) *SurfaceTester {
	return newSurfaceTester(t, graph, preset, &DeferredHost{})
}

func newSurfaceTester(t testing.TB, graph *ringgraph.RingGraph, preset ringgraph.DescriptionPreset, host *DeferredHost) *SurfaceTester {
	t.Helper()
	st := &SurfaceTester{
		t:         t,
		scheduler: animation.NewFrameScheduler(),
		painter:   NewRecordingPainter(graph),
		host:      host,
	}
	cfg := ringgraph.SurfaceConfig{
		Frame:   DefaultFrame,
		Graph:   graph,
		Preset:  preset,
		Painter: st.painter,
		Frames:  st.scheduler,
	}
	if host != nil {
		cfg.Host = host
	}
	st.surface = ringgraph.NewSurface(cfg)
	t.Cleanup(st.surface.Dispose)
	return st
}

// Surface returns the surface under test.
func (st *SurfaceTester) Surface() *ringgraph.Surface { return st.surface }

// Painter returns the recording painter.
func (st *SurfaceTester) Painter() *RecordingPainter { return st.painter }

// Scheduler returns the frame scheduler.
func (st *SurfaceTester) Scheduler() *animation.FrameScheduler { return st.scheduler }

// Host returns the deferred host, or nil for synchronous testers.
func (st *SurfaceTester) Host() *DeferredHost { return st.host }

// Pump steps one frame and, for deferred testers, performs the requested
// redraw.
func (st *SurfaceTester) Pump(interval time.Duration) {
	st.scheduler.StepFrame(interval)
	if st.host != nil && st.host.TakeDirty() {
		st.surface.Draw(st.surface.Frame())
	}
}

// PumpFrames pumps n frames of the same interval.
func (st *SurfaceTester) PumpFrames(n int, interval time.Duration) {
	for range n {
		st.Pump(interval)
	}
}

// PumpAndSettle pumps frames until the surface is idle. It returns an
// error if the surface is still animating after maxFrames.
func (st *SurfaceTester) PumpAndSettle(interval time.Duration, maxFrames int) error {
	for range maxFrames {
		if !st.surface.IsAnimating() {
			return nil
		}
		st.Pump(interval)
	}
	if st.surface.IsAnimating() {
		return fmt.Errorf("surface still animating after %d frames (progress %.3f)", maxFrames, st.surface.Progress())
	}
	return nil
}
