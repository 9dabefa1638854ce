package testkit

import (
	"time"

	"github.com/go-drift/drawerkit/pkg/animation"
)

// FramePeriod approximates one frame at 60fps.
const FramePeriod = 16 * time.Millisecond

// Pump plays the host render loop for the given total duration: it advances
// the clock one frame at a time and steps all active tickers after each
// advance. Install the clock with animation.SetClock first.
func Pump(clock *FakeClock, total time.Duration) {
	PumpFrames(clock, total, FramePeriod)
}

// PumpFrames is Pump with an explicit frame period.
func PumpFrames(clock *FakeClock, total, frame time.Duration) {
	if frame <= 0 {
		frame = FramePeriod
	}
	for elapsed := time.Duration(0); elapsed < total; elapsed += frame {
		clock.Advance(frame)
		animation.StepTickers()
	}
}

// PumpUntil steps frames until done returns true or the budget elapses.
// It returns true when the condition was met.
func PumpUntil(clock *FakeClock, budget time.Duration, done func() bool) bool {
	for elapsed := time.Duration(0); elapsed < budget; elapsed += FramePeriod {
		if done() {
			return true
		}
		clock.Advance(FramePeriod)
		animation.StepTickers()
	}
	return done()
}
