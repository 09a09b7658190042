package stoolwalk

import (
	"math"

	"github.com/teranos/stoolwalk/topple"
)

// Move walks the stool until the configured time budget is spent,
// alternating front and back half-steps of the given lengths. Each half-step
// consumes TimeStep + Pause of simulated time, and each full cycle ends with
// a balance check of the seat over its support base.
//
// The returned distance is the sum of the applied front steps only:
// front-leg progress is what defines how far the stool has walked. A nil
// error means the stool is still standing when time runs out; otherwise the
// run ended early with one of the topple failure kinds and the distance
// covers the half-steps that completed.
func (s *Stool) Move(frontStep, backStep float64) (float64, error) {
	var distance, elapsed float64

	for elapsed < s.config.TotalTime {
		// Front half-step: the front legs slide forward and the seat's
		// front edge follows.
		s.frontLeg += frontStep
		tilt, err := s.tiltAngle(s.seatFront-s.frontLeg, frontStep)
		if err != nil {
			return distance, s.fell(err)
		}
		if tilt > s.maxTilt {
			// A fatal frame keeps the clock of the last completed
			// half-step; the failed one never consumed its time.
			s.record(PhaseFront, elapsed, tilt, distance)
			return distance, s.fell(&topple.AngleExceeded{Angle: tilt})
		}
		distance += frontStep
		s.seatFront += frontStep
		elapsed += s.config.TimeStep + s.config.Pause
		s.record(PhaseFront, elapsed, tilt, distance)

		// Back half-step: the seat's back edge has already translated with
		// the front displacement before the back legs catch up.
		s.seatBack += frontStep
		tilt, err = s.tiltAngle(s.seatBack-s.backLeg, backStep)
		if err != nil {
			return distance, s.fell(err)
		}
		if tilt > s.maxTilt {
			s.record(PhaseBack, elapsed, tilt, distance)
			return distance, s.fell(&topple.AngleExceeded{Angle: tilt})
		}
		s.backLeg += backStep
		elapsed += s.config.TimeStep + s.config.Pause
		s.record(PhaseBack, elapsed, tilt, distance)

		if err := s.checkBalance(); err != nil {
			return distance, s.fell(err)
		}
	}

	return distance, nil
}

// tiltAngle derives how far a leg assembly tips from vertical when its pair
// slides by step while its seat edge sits offset away from the contact
// point.
//
// An offset beyond the leg's reach is impossible geometry whether or not the
// pair moves this half-step, so the domain check comes first. A stationary
// pair otherwise cannot tip: the raw expression degenerates to a 0·Inf
// artifact at step zero, so the analytic limit of zero tilt is returned
// directly.
func (s *Stool) tiltAngle(offset, step float64) (float64, error) {
	lean := math.Abs(offset) / s.config.LegLength
	if lean > 1 {
		return 0, &topple.DomainError{Fn: "acos", Arg: lean}
	}

	if step == 0 {
		return 0, nil
	}

	sine := (s.config.LegLength - math.Tan(math.Acos(lean))*step) / s.config.SeatLength
	if sine < -1 || sine > 1 {
		return 0, &topple.DomainError{Fn: "asin", Arg: sine}
	}

	return math.Asin(sine), nil
}

// checkBalance verifies the seat's midpoint still lies over the support
// base, the closed interval between the two leg contacts. Resting exactly on
// a contact point is still balanced.
func (s *Stool) checkBalance() error {
	midpoint := s.seatFront - (s.seatFront-s.seatBack)/2
	if midpoint > s.frontLeg || midpoint < s.backLeg {
		return topple.ErrUnstable
	}
	return nil
}

// record appends the stool's current pose to the attached trace, if any.
func (s *Stool) record(phase Phase, elapsed, tilt, distance float64) {
	if s.trace == nil {
		return
	}
	s.trace.append(s.snapshot(phase, elapsed, tilt, distance))
}

// fell marks the attached trace as ended by err and passes it through.
func (s *Stool) fell(err error) error {
	if s.trace != nil {
		s.trace.fail(err)
	}
	return err
}

// snapshot captures the stool's pose as an immutable frame.
func (s *Stool) snapshot(phase Phase, elapsed, tilt, distance float64) Frame {
	return Frame{
		Phase:     phase,
		Elapsed:   elapsed,
		FrontLeg:  s.frontLeg,
		BackLeg:   s.backLeg,
		SeatFront: s.seatFront,
		SeatBack:  s.seatBack,
		Tilt:      tilt,
		Distance:  distance,
	}
}
