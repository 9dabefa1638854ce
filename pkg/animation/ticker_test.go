package animation_test

import (
	"testing"
	"time"

	"github.com/go-drift/drawerkit/pkg/animation"
	"github.com/go-drift/drawerkit/pkg/geometry"
	"github.com/go-drift/drawerkit/pkg/testkit"
)

func TestTickerReportsElapsed(t *testing.T) {
	clock := testkit.NewFakeClock()
	prev := animation.SetClock(clock)
	defer animation.SetClock(prev)

	var elapsed []time.Duration
	ticker := animation.NewTicker(func(e time.Duration) { elapsed = append(elapsed, e) })
	ticker.Start()
	defer ticker.Stop()

	clock.Advance(16 * time.Millisecond)
	animation.StepTickers()
	clock.Advance(16 * time.Millisecond)
	animation.StepTickers()

	want := []time.Duration{16 * time.Millisecond, 32 * time.Millisecond}
	if len(elapsed) != len(want) {
		t.Fatalf("elapsed = %v, want %v", elapsed, want)
	}
	for i := range want {
		if elapsed[i] != want[i] {
			t.Errorf("elapsed[%d] = %v, want %v", i, elapsed[i], want[i])
		}
	}
}

func TestStoppedTickerDoesNotFire(t *testing.T) {
	clock := testkit.NewFakeClock()
	prev := animation.SetClock(clock)
	defer animation.SetClock(prev)

	fired := 0
	ticker := animation.NewTicker(func(time.Duration) { fired++ })
	ticker.Start()
	ticker.Stop()

	clock.Advance(16 * time.Millisecond)
	animation.StepTickers()
	if fired != 0 {
		t.Errorf("stopped ticker fired %d times", fired)
	}
	if animation.HasActiveTickers() {
		t.Error("no tickers should remain active")
	}
}

func TestTweenTransform(t *testing.T) {
	c, err := animation.NewProgressController(animation.ProgressConfig{})
	if err != nil {
		t.Fatalf("NewProgressController: %v", err)
	}
	defer c.Dispose()

	c.DragBy(0.5)

	slide := animation.TweenFloat64(0, 340)
	if got := slide.Transform(c); got != 170 {
		t.Errorf("slide at 0.5 = %v, want 170", got)
	}

	offset := animation.TweenOffset(geometry.Offset{}, geometry.Offset{X: 100, Y: 40})
	if got := offset.Transform(c); got.X != 50 || got.Y != 20 {
		t.Errorf("offset at 0.5 = %+v, want {50 20}", got)
	}
}
