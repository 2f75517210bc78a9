// Package animation provides the timing primitives behind ring graph
// animations.
//
// # Core Components
//
//   - [AnimationState]: accumulates frame time and converts it into a
//     normalized progress value in [0, 1].
//
//   - [FrameScheduler]: the display refresh source. Each call to
//     [FrameScheduler.StepFrame] delivers one tick to every active
//     [FrameSubscription].
//
//   - Curves: easing functions such as [EaseIn] used by overlays to map
//     progress onto opacity.
//
// # Basic Usage
//
//	scheduler := animation.NewFrameScheduler()
//	state := animation.NewAnimationState(1300*time.Millisecond, 1.0)
//
//	sub := scheduler.NewSubscription()
//	state.Reset()
//	sub.Start(func(elapsed time.Duration) {
//	    state.IncrementDuration(elapsed)
//	    if state.Progress() == 1 {
//	        sub.Stop()
//	    }
//	})
//
//	// Once per display refresh, on the rendering goroutine:
//	scheduler.StepFrame(16 * time.Millisecond)
package animation

import "time"

// AnimationState converts accumulated frame time into animation progress.
//
// TotalDuration is fixed for the life of the state; a new run reuses it and
// only resets CurrentTime. Clamping happens in Progress, never when time is
// accumulated.
type AnimationState struct {
	// TotalDuration is the length of one animation run.
	TotalDuration time.Duration

	// CurrentTime is the time accumulated in the current run.
	CurrentTime time.Duration
}

// NewAnimationState creates a state for runs of the given duration, resting
// at the given progress. A surface typically starts at 1.0 (settled).
func NewAnimationState(total time.Duration, progress float64) *AnimationState {
	s := &AnimationState{TotalDuration: total}
	if total > 0 {
		s.CurrentTime = time.Duration(clampUnit(progress) * float64(total))
	}
	return s
}

// Progress returns CurrentTime / TotalDuration clamped to [0, 1].
// A non-positive TotalDuration is treated as already complete.
func (s *AnimationState) Progress() float64 {
	if s.TotalDuration <= 0 {
		return 1
	}
	if s.CurrentTime >= s.TotalDuration {
		return 1
	}
	return clampUnit(float64(s.CurrentTime) / float64(s.TotalDuration))
}

// IncrementDuration adds one frame interval to the accumulator.
// Callers must pass a non-negative delta.
func (s *AnimationState) IncrementDuration(delta time.Duration) {
	s.CurrentTime += delta
}

// Reset rewinds the accumulator for a new run.
func (s *AnimationState) Reset() {
	s.CurrentTime = 0
}
