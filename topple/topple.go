// Package topple classifies the ways a stool walk ends up on the floor.
//
// A walking run fails in one of three ways: a leg assembly tips past the
// friction-limited maximum angle (AngleExceeded), the seat's center of mass
// drifts off its support base (ErrUnstable), or the step geometry leaves the
// domain of the inverse trigonometry that derives the tilt (DomainError).
// The first two are named verdicts of the model; the third signals geometry
// the model cannot express, such as a leg shorter than the offset it has to
// span.
//
// All three are terminal to a single walk and carry no retry semantics.
// Callers recover at the boundary:
//
//	distance, err := stool.Move(front, back)
//	var angle *topple.AngleExceeded
//	switch {
//	case err == nil:
//		// still standing
//	case errors.As(err, &angle):
//		fmt.Printf("tipped over at %.4f rad\n", angle.Angle)
//	case errors.Is(err, topple.ErrUnstable):
//		// seat left the support base
//	default:
//		// impossible geometry, a *topple.DomainError
//	}
package topple

import (
	"errors"
	"fmt"
)

// AngleExceeded reports a half-step that tipped a leg assembly past the
// friction-limited maximum tilt. The blocks under the legs have slipped and
// the stool has fallen.
type AngleExceeded struct {
	Angle float64 // the offending tilt, in radians
}

func (e *AngleExceeded) Error() string {
	return fmt.Sprintf("topple: tilt angle %v exceeds the friction limit, the blocks have fallen", e.Angle)
}

// ErrUnstable reports a full step cycle that left the seat's center of mass
// outside the interval between the two leg contacts. The stool has fallen.
var ErrUnstable = errors.New("topple: center of mass left the support base, the stool has fallen")

// DomainError reports an inverse-trigonometric argument outside [-1, 1]
// while deriving a tilt angle. It is the generic numeric failure of the
// model, distinct from the two named verdicts above.
type DomainError struct {
	Fn  string  // the inverse function, "acos" or "asin"
	Arg float64 // the out-of-domain argument
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("topple: %s of %v is undefined, the step geometry is impossible", e.Fn, e.Arg)
}
