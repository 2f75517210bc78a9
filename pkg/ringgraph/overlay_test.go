package ringgraph_test

import (
	"testing"

	"github.com/go-drift/ringmeter/pkg/graphics"
	"github.com/go-drift/ringmeter/pkg/ringgraph"
	ringtest "github.com/go-drift/ringmeter/pkg/testing"
)

func TestMetersPreset_BuildsOneLabelPerMeter(t *testing.T) {
	graph := threeMeters()
	tester := ringtest.NewSurfaceTester(t, graph, ringgraph.PresetMetersDescription)
	overlays := tester.Surface().Overlays()

	if len(overlays) != 3 {
		t.Fatalf("expected 3 overlays, got %d", len(overlays))
	}
	frames := tester.Painter().FramesForDescriptionLabels(ringtest.DefaultFrame)
	wantText := []string{"MOVE", "EXERCISE", "STAND"}
	for i, o := range overlays {
		label, ok := o.(*ringgraph.FadingLabel)
		if !ok {
			t.Fatalf("overlay %d is %T, want *FadingLabel", i, o)
		}
		if label.Meter() != graph.Meters[i] {
			t.Errorf("label %d bound to wrong meter", i)
		}
		if label.Text != wantText[i] {
			t.Errorf("label %d text = %q, want %q", i, label.Text, wantText[i])
		}
		if label.Color != graph.Meters[i].DescriptionLabelColor {
			t.Errorf("label %d color = %s", i, label.Color.Hex())
		}
		if label.Frame != frames[i] {
			t.Errorf("label %d frame = %+v, want %+v", i, label.Frame, frames[i])
		}
		if label.Align != graphics.TextAlignRight {
			t.Errorf("label %d align = %v, want right", i, label.Align)
		}
	}
}

func TestMetersPreset_LabelsFollowGraphProgress(t *testing.T) {
	graph := threeMeters()
	tester := ringtest.NewSurfaceTester(t, graph, ringgraph.PresetMetersDescription)
	s := tester.Surface()
	s.Animate()

	for range 13 {
		tester.Pump(frame)
		last, _ := tester.Painter().Last()
		for i, o := range s.Overlays() {
			label := o.(*ringgraph.FadingLabel)
			reference := ringgraph.NewFadingLabel(label.Frame, graph.Meters[i])
			reference.SetAnimationProgress(last.Progress)
			if label.Opacity() != reference.Opacity() {
				t.Fatalf("label %d opacity %v does not match frame progress %v", i, label.Opacity(), last.Progress)
			}
		}
	}
}

func TestCentralPreset_BuildsReadoutForFirstMeter(t *testing.T) {
	graph := threeMeters()
	tester := ringtest.NewSurfaceTester(t, graph, ringgraph.PresetCentralDescription)
	overlays := tester.Surface().Overlays()

	if len(overlays) != 1 {
		t.Fatalf("expected 1 overlay, got %d", len(overlays))
	}
	readout, ok := overlays[0].(*ringgraph.ProgressReadout)
	if !ok {
		t.Fatalf("overlay is %T, want *ProgressReadout", overlays[0])
	}
	if readout.Meter() != graph.Meters[0] {
		t.Error("readout should be bound to the first meter")
	}
	if readout.Frame != tester.Painter().FrameForDescriptionText(ringtest.DefaultFrame) {
		t.Errorf("readout frame = %+v", readout.Frame)
	}
	if readout.Text() != "75%" {
		t.Errorf("settled readout = %q, want 75%%", readout.Text())
	}
}

func TestCentralPreset_ReadoutCountsUp(t *testing.T) {
	tester := ringtest.NewSurfaceTester(t, threeMeters(), ringgraph.PresetCentralDescription)
	s := tester.Surface()
	readout := s.Overlays()[0].(*ringgraph.ProgressReadout)

	s.Animate()
	prev := -1
	for range 13 {
		tester.Pump(frame)
		if readout.Percent() < prev {
			t.Fatalf("readout went backwards: %d after %d", readout.Percent(), prev)
		}
		prev = readout.Percent()
	}
	if readout.Text() != "75%" {
		t.Errorf("final readout = %q, want 75%%", readout.Text())
	}
	if readout.Detail() != "300/400 MOVE" {
		t.Errorf("final detail = %q", readout.Detail())
	}
}

func TestNonePreset_BuildsNoOverlays(t *testing.T) {
	tester := ringtest.NewSurfaceTester(t, threeMeters(), ringgraph.PresetNone)
	if n := len(tester.Surface().Overlays()); n != 0 {
		t.Errorf("expected no overlays, got %d", n)
	}
}

func TestMetersPreset_EmptyGraph(t *testing.T) {
	tester := ringtest.NewSurfaceTester(t, ringgraph.NewRingGraph(), ringgraph.PresetMetersDescription)
	if n := len(tester.Surface().Overlays()); n != 0 {
		t.Errorf("expected no overlays for an empty graph, got %d", n)
	}
}

func TestFadingLabel_Idempotent(t *testing.T) {
	meter := &ringgraph.RingMeter{Title: "Move", Value: 1, Max: 1, DescriptionLabelColor: graphics.RGB(255, 0, 0)}
	for _, p := range []float64{0, 0.5, 0.8, 0.9, 1} {
		once := ringgraph.NewFadingLabel(graphics.Rect{}, meter)
		once.SetAnimationProgress(p)

		twice := ringgraph.NewFadingLabel(graphics.Rect{}, meter)
		twice.SetAnimationProgress(p)
		twice.SetAnimationProgress(p)

		if once.Opacity() != twice.Opacity() || once.DrawColor() != twice.DrawColor() {
			t.Errorf("p=%v: repeated update changed state (%v vs %v)", p, once.Opacity(), twice.Opacity())
		}
	}
}

func TestFadingLabel_FadesMonotonically(t *testing.T) {
	meter := &ringgraph.RingMeter{Title: "Move", Value: 1, Max: 1}
	label := ringgraph.NewFadingLabel(graphics.Rect{}, meter)

	prev := 2.0
	for i := 0; i <= 100; i++ {
		label.SetAnimationProgress(float64(i) / 100)
		if label.Opacity() > prev {
			t.Fatalf("opacity increased at p=%v", float64(i)/100)
		}
		prev = label.Opacity()
	}
	if label.Visible() {
		t.Errorf("label over a full ring should be hidden at p=1, opacity %v", label.Opacity())
	}

	label.SetAnimationProgress(0)
	if label.Opacity() != 1 {
		t.Errorf("label should be fully visible at p=0, got %v", label.Opacity())
	}
}

func TestFadingLabel_StaysVisibleOverPartialRing(t *testing.T) {
	tests := []struct {
		name        string
		value, max  float64
		wantVisible bool
		wantHidden  bool
	}{
		{"half", 5, 10, true, false},
		{"two thirds", 20, 30, true, false},
		{"three quarters", 3, 4, true, false},
		{"seven eighths", 7, 8, false, false},
		{"full", 10, 10, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meter := &ringgraph.RingMeter{Title: "Stand", Value: tt.value, Max: tt.max}
			label := ringgraph.NewFadingLabel(graphics.Rect{}, meter)
			label.SetAnimationProgress(1)
			got := label.Opacity()
			switch {
			case tt.wantVisible:
				if got != 1 {
					t.Errorf("arc never reaches the label, opacity %v, want 1", got)
				}
			case tt.wantHidden:
				if got != 0 {
					t.Errorf("full ring should hide the label, opacity %v", got)
				}
			default:
				if got <= 0 || got >= 1 {
					t.Errorf("opacity %v, want partially faded", got)
				}
			}
		})
	}
}

func TestProgressReadout_Idempotent(t *testing.T) {
	meter := &ringgraph.RingMeter{Title: "Move", Value: 450, Max: 600}
	r := ringgraph.NewProgressReadout(graphics.Rect{}, meter)
	r.SetAnimationProgress(0.5)
	first := r.Text() + r.Detail()
	r.SetAnimationProgress(0.5)
	if got := r.Text() + r.Detail(); got != first {
		t.Errorf("repeated update changed readout: %q vs %q", got, first)
	}
	if r.Text() != "38%" {
		t.Errorf("Text() = %q, want 38%%", r.Text())
	}
}
