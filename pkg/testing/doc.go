// Package testing provides test doubles and a frame-stepping tester for
// ring graph surfaces.
//
// # Quick Start
//
//	func TestFill(t *testing.T) {
//	    tester := ringtest.NewSurfaceTester(t, graph, ringgraph.PresetMetersDescription)
//	    tester.Surface().Animate()
//
//	    tester.PumpFrames(13, 100*time.Millisecond)
//
//	    if tester.Surface().IsAnimating() {
//	        t.Error("expected animation to finish")
//	    }
//	}
//
// # Frame Control
//
// Frames are stepped explicitly; nothing advances unless the test pumps.
// [SurfaceTester.PumpAndSettle] pumps until the surface is idle or a frame
// budget is exhausted.
//
// # Painting
//
// [RecordingPainter] records every DrawForeground call so tests can assert
// on the exact progress each frame was painted with.
package testing
