// Package stoolwalk simulates the quasi-static "walking" of a four-legged
// stool that shuffles forward by alternately sliding its front and back leg
// pairs across the floor.
//
// The simulator advances a fixed-increment clock, applying one front and one
// back half-step per cycle, and reports the total horizontal distance walked
// or the way the run ended up on the floor (see the topple package for the
// failure kinds).
//
// Basic usage:
//
//	stool := stoolwalk.NewStool(stoolwalk.DefaultConfig())
//	distance, err := stool.Move(0.5, 0.5)
//	if err != nil {
//		var angle *topple.AngleExceeded
//		if errors.As(err, &angle) {
//			fmt.Printf("fell at %.4f rad\n", angle.Angle)
//		}
//	}
//
// For replayable runs, attach a trace before walking:
//
//	trace := stoolwalk.NewTrace()
//	stool := stoolwalk.NewStool(cfg).WithTrace(trace)
//	stool.Move(0.5, 0.5)
//	tea.NewProgram(stoolwalk.NewReplay(trace)).Run()
package stoolwalk

import "math"

// Config fixes the stool's geometry and the simulation clock. All values are
// set once at construction; the simulator never mutates them.
type Config struct {
	WoodLength float64 // Length of the friction blocks under the legs
	LegLength  float64 // Leg length, seat to floor
	SeatLength float64 // Seat length, back edge to front edge
	WoodWeight float64 // Block weight; carried by the model but unused by the quasi-static dynamics
	TotalTime  float64 // Simulated time budget for one walk
	Pause      float64 // Rest inserted after every half-step
	TimeStep   float64 // Clock advance per half-step
	Friction   float64 // Block/floor friction coefficient; sets the tilt limit
}

// DefaultConfig returns the classroom reference stool: 60-unit legs under an
// 80-unit seat, walking for 1000 time units with a friction coefficient of
// 0.1.
func DefaultConfig() Config {
	return Config{
		WoodLength: 40,
		LegLength:  60,
		SeatLength: 80,
		WoodWeight: 2,
		TotalTime:  1000,
		Pause:      2,
		TimeStep:   2,
		Friction:   0.1,
	}
}

// Stool is a stateful stepper over one walking run. It owns the positions of
// the two leg-pair contact points and the two seat edges, and advances them
// half-step by half-step under Move.
//
// A Stool is good for exactly one Move call; construct a fresh one per run.
// Independent instances share nothing and may run concurrently.
type Stool struct {
	config  Config
	maxTilt float64 // atan(Friction), fixed at construction

	frontLeg  float64 // front leg-pair contact position
	backLeg   float64 // back leg-pair contact position
	seatFront float64 // seat front-edge position
	seatBack  float64 // seat back-edge position

	trace *Trace // optional half-step recorder
}

// NewStool builds a simulator in its resting pose: the front legs under the
// seat's front edge at SeatLength, the back legs under the back edge at the
// origin.
//
// Construction performs no validation beyond types; impossible geometry
// (a leg shorter than its own displacement, say) surfaces during Move as a
// topple.DomainError.
func NewStool(config Config) *Stool {
	return &Stool{
		config:    config,
		maxTilt:   math.Atan(config.Friction),
		frontLeg:  config.SeatLength,
		backLeg:   0,
		seatFront: config.SeatLength,
		seatBack:  0,
	}
}

// WithTrace attaches a recorder that captures every half-step of the walk
// for later replay or film capture. Attaching resets the trace to this
// stool's starting pose.
func (s *Stool) WithTrace(trace *Trace) *Stool {
	s.trace = trace
	if trace != nil {
		trace.reset(s.snapshot(PhaseStart, 0, 0, 0))
	}
	return s
}

// Config returns the geometry and clock the stool was built with.
func (s *Stool) Config() Config {
	return s.config
}

// MaxTilt returns the friction-limited maximum tilt angle in radians,
// atan of the friction coefficient.
func (s *Stool) MaxTilt() float64 {
	return s.maxTilt
}
