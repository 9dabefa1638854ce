package animation

import "math"

// Spring describes the physical parameters of a damped spring.
type Spring struct {
	// Mass of the attached object.
	Mass float64
	// Stiffness is the spring constant.
	Stiffness float64
	// Damping is the friction coefficient.
	Damping float64
}

// SpringWithDampingRatio builds a spring from mass, stiffness, and a damping
// ratio (1.0 = critically damped, <1 underdamped, >1 overdamped).
func SpringWithDampingRatio(mass, stiffness, ratio float64) Spring {
	return Spring{
		Mass:      mass,
		Stiffness: stiffness,
		Damping:   ratio * 2 * math.Sqrt(mass*stiffness),
	}
}

// IOSSpring returns a near-critically damped spring matching the feel of
// iOS panel transitions. Used for fling settles.
func IOSSpring() Spring {
	return SpringWithDampingRatio(1, 280, 1.0)
}

// BouncySpring returns an underdamped spring with a visible overshoot.
func BouncySpring() Spring {
	return SpringWithDampingRatio(1, 180, 0.65)
}

// Rest thresholds: the simulation reports done once both the distance to
// target and the velocity drop below these, then snaps to the target.
const (
	defaultRestDistance = 1e-3
	defaultRestVelocity = 1e-2
)

// SpringSimulation integrates a spring toward a target position.
//
// Create one with the current position and velocity (e.g., from a fling
// gesture), then call Step once per frame with the elapsed seconds. The
// simulation is driven externally; it holds no timers.
type SpringSimulation struct {
	spring   Spring
	position float64
	velocity float64
	target   float64
	done     bool

	restDistance float64
	restVelocity float64
}

// NewSpringSimulation creates a simulation starting at position with the
// given initial velocity, settling at target.
func NewSpringSimulation(spring Spring, position, velocity, target float64) *SpringSimulation {
	if spring.Mass <= 0 {
		spring.Mass = 1
	}
	return &SpringSimulation{
		spring:       spring,
		position:     position,
		velocity:     velocity,
		target:       target,
		restDistance: defaultRestDistance,
		restVelocity: defaultRestVelocity,
	}
}

// SetTolerance overrides the rest thresholds. Pixel-space simulations can
// use coarser values than normalized progress values.
func (s *SpringSimulation) SetTolerance(distance, velocity float64) {
	if distance > 0 {
		s.restDistance = distance
	}
	if velocity > 0 {
		s.restVelocity = velocity
	}
}

// Step advances the simulation by dt seconds and returns true once settled.
func (s *SpringSimulation) Step(dt float64) bool {
	if s.done || dt <= 0 {
		return s.done
	}

	// Semi-implicit Euler, subdivided so large frame gaps stay stable.
	const maxSlice = 1.0 / 120.0
	remaining := dt
	for remaining > 0 {
		slice := remaining
		if slice > maxSlice {
			slice = maxSlice
		}
		displacement := s.position - s.target
		accel := (-s.spring.Stiffness*displacement - s.spring.Damping*s.velocity) / s.spring.Mass
		s.velocity += accel * slice
		s.position += s.velocity * slice
		remaining -= slice
	}

	if math.Abs(s.position-s.target) < s.restDistance && math.Abs(s.velocity) < s.restVelocity {
		s.position = s.target
		s.velocity = 0
		s.done = true
	}
	return s.done
}

// Position returns the current simulated position.
func (s *SpringSimulation) Position() float64 {
	return s.position
}

// Velocity returns the current simulated velocity.
func (s *SpringSimulation) Velocity() float64 {
	return s.velocity
}

// IsDone returns true once the simulation has settled at the target.
func (s *SpringSimulation) IsDone() bool {
	return s.done
}
