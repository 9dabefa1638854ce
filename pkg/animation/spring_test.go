package animation_test

import (
	"math"
	"testing"

	"github.com/go-drift/drawerkit/pkg/animation"
)

func stepUntilDone(t *testing.T, sim *animation.SpringSimulation, budget float64) {
	t.Helper()
	const dt = 1.0 / 60.0
	for elapsed := 0.0; elapsed < budget; elapsed += dt {
		if sim.Step(dt) {
			return
		}
	}
	t.Fatalf("spring did not settle within %vs (position %v)", budget, sim.Position())
}

func TestSpringSettlesAtTarget(t *testing.T) {
	sim := animation.NewSpringSimulation(animation.IOSSpring(), 0, 500, 300)
	stepUntilDone(t, sim, 5)
	if sim.Position() != 300 {
		t.Errorf("final position = %v, want exactly 300", sim.Position())
	}
	if sim.Velocity() != 0 {
		t.Errorf("final velocity = %v, want 0", sim.Velocity())
	}
	if !sim.IsDone() {
		t.Error("IsDone should be true after settling")
	}
}

func TestSpringNormalizedRange(t *testing.T) {
	// The drawer flings in normalized progress units.
	sim := animation.NewSpringSimulation(animation.IOSSpring(), 0.6, 1.2, 1.0)
	stepUntilDone(t, sim, 5)
	if sim.Position() != 1.0 {
		t.Errorf("final position = %v, want exactly 1.0", sim.Position())
	}
}

func TestSpringZeroVelocityCompletes(t *testing.T) {
	sim := animation.NewSpringSimulation(animation.IOSSpring(), 0.5, 0, 0)
	stepUntilDone(t, sim, 5)
	if sim.Position() != 0 {
		t.Errorf("final position = %v, want 0", sim.Position())
	}
}

func TestSpringInitialVelocityDirection(t *testing.T) {
	// A strong velocity away from the target moves the position away first.
	sim := animation.NewSpringSimulation(animation.IOSSpring(), 0.5, -3.0, 1.0)
	sim.Step(1.0 / 60.0)
	if sim.Position() >= 0.5 {
		t.Errorf("position after one step = %v, want < 0.5", sim.Position())
	}
	stepUntilDone(t, sim, 5)
	if sim.Position() != 1.0 {
		t.Errorf("final position = %v, want 1.0", sim.Position())
	}
}

func TestBouncySpringOvershoots(t *testing.T) {
	sim := animation.NewSpringSimulation(animation.BouncySpring(), 0, 0, 100)
	overshot := false
	const dt = 1.0 / 60.0
	for elapsed := 0.0; elapsed < 5; elapsed += dt {
		done := sim.Step(dt)
		if sim.Position() > 100 {
			overshot = true
		}
		if done {
			break
		}
	}
	if !overshot {
		t.Error("BouncySpring should overshoot the target")
	}
	if math.Abs(sim.Position()-100) > 1e-6 {
		t.Errorf("final position = %v, want 100", sim.Position())
	}
}

func TestSpringStepIgnoresNonPositiveDt(t *testing.T) {
	sim := animation.NewSpringSimulation(animation.IOSSpring(), 0, 0, 1)
	before := sim.Position()
	sim.Step(0)
	sim.Step(-1)
	if sim.Position() != before {
		t.Errorf("position changed on non-positive dt: %v -> %v", before, sim.Position())
	}
}
