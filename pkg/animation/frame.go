package animation

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// FrameSource creates frame subscriptions. It abstracts the platform's
// display refresh signal so hosts can substitute a manual clock in tests.
type FrameSource interface {
	NewSubscription() FrameSubscription
}

// FrameSubscription delivers one tick per display refresh while started.
//
// The tick callback receives the refresh interval reported by the source,
// not a wall-clock measurement. Stop is idempotent and guarantees that no
// tick is delivered after it returns.
type FrameSubscription interface {
	// Start registers the callback and begins delivering ticks.
	// Starting an active subscription is a no-op.
	Start(onTick func(elapsed time.Duration))
	// Stop ends tick delivery. Safe to call when not started.
	Stop()
	// IsActive reports whether ticks are being delivered.
	IsActive() bool
	// Duration returns the interval of the most recently delivered tick,
	// or zero if no tick has been delivered yet.
	Duration() time.Duration
}

// FrameScheduler is a [FrameSource] driven by explicit frame steps.
//
// The engine loop (or a test) calls StepFrame once per display refresh.
// Ticks are delivered in subscription order on the caller's goroutine.
type FrameScheduler struct {
	mu     sync.Mutex
	active []*Subscription
	frames uint64
}

// NewFrameScheduler creates a scheduler with no subscriptions.
func NewFrameScheduler() *FrameScheduler {
	return &FrameScheduler{}
}

// NewSubscription returns an inactive subscription bound to this scheduler.
func (f *FrameScheduler) NewSubscription() FrameSubscription {
	return &Subscription{scheduler: f}
}

// StepFrame delivers a tick of the given interval to every active
// subscription. Subscriptions stopped by an earlier callback in the same
// step do not receive the tick.
func (f *FrameScheduler) StepFrame(interval time.Duration) {
	if interval < 0 {
		interval = 0
	}
	f.mu.Lock()
	f.frames++
	if len(f.active) == 0 {
		f.mu.Unlock()
		return
	}
	// Copy so callbacks can start or stop subscriptions.
	subs := make([]*Subscription, len(f.active))
	copy(subs, f.active)
	f.mu.Unlock()

	for _, sub := range subs {
		sub.deliver(interval)
	}
}

// Run steps a frame every interval until ctx is done. afterFrame, if set,
// runs after each step on the same goroutine, which is where hosts present
// the frame. A non-positive interval is an error.
func (f *FrameScheduler) Run(ctx context.Context, interval time.Duration, afterFrame func()) error {
	if interval <= 0 {
		return fmt.Errorf("frame interval must be positive, got %v", interval)
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if err := ctx.Err(); err != nil {
				return err
			}
			f.StepFrame(interval)
			if afterFrame != nil {
				afterFrame()
			}
		}
	}
}

// HasActiveSubscriptions reports whether any subscription is started.
func (f *FrameScheduler) HasActiveSubscriptions() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.active) > 0
}

// FrameCount returns the number of frames stepped so far.
func (f *FrameScheduler) FrameCount() uint64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.frames
}

func (f *FrameScheduler) register(s *Subscription) {
	f.mu.Lock()
	f.active = append(f.active, s)
	f.mu.Unlock()
}

func (f *FrameScheduler) unregister(s *Subscription) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, sub := range f.active {
		if sub == s {
			f.active = append(f.active[:i], f.active[i+1:]...)
			return
		}
	}
}

// Subscription is the [FrameSubscription] handed out by [FrameScheduler].
type Subscription struct {
	scheduler *FrameScheduler
	callback  func(elapsed time.Duration)
	isActive  bool
	last      time.Duration
}

// Start activates the subscription.
func (s *Subscription) Start(onTick func(elapsed time.Duration)) {
	if s.isActive {
		return
	}
	s.isActive = true
	s.callback = onTick
	s.scheduler.register(s)
}

// Stop deactivates the subscription.
func (s *Subscription) Stop() {
	if !s.isActive {
		return
	}
	s.isActive = false
	s.callback = nil
	s.scheduler.unregister(s)
}

// IsActive returns whether the subscription is currently delivering ticks.
func (s *Subscription) IsActive() bool {
	return s.isActive
}

// Duration returns the interval of the last delivered tick.
func (s *Subscription) Duration() time.Duration {
	return s.last
}

func (s *Subscription) deliver(interval time.Duration) {
	if !s.isActive || s.callback == nil {
		return
	}
	s.last = interval
	s.callback(interval)
}
