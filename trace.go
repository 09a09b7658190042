package stoolwalk

// Phase names which half of a step cycle produced a frame.
type Phase int

const (
	// PhaseStart is the resting pose recorded before the first half-step.
	PhaseStart Phase = iota
	// PhaseFront is a front leg-pair half-step.
	PhaseFront
	// PhaseBack is a back leg-pair half-step.
	PhaseBack
)

func (p Phase) String() string {
	switch p {
	case PhaseStart:
		return "start"
	case PhaseFront:
		return "front"
	case PhaseBack:
		return "back"
	default:
		return "unknown"
	}
}

// Frame is an immutable snapshot of the stool's pose after one half-step:
// where the legs and seat edges stand, the tilt the half-step produced, and
// the distance walked so far.
//
// A fatal half-step never consumes simulated time, so the frame recording a
// fall carries the clock of the last completed half-step.
type Frame struct {
	Phase     Phase   // which half-step produced this frame
	Elapsed   float64 // simulated time consumed so far
	FrontLeg  float64 // front leg-pair contact position
	BackLeg   float64 // back leg-pair contact position
	SeatFront float64 // seat front-edge position
	SeatBack  float64 // seat back-edge position
	Tilt      float64 // tilt angle of the pair that just moved, radians
	Distance  float64 // accumulated front displacement
}

// SeatMidpoint returns the horizontal position of the seat's center of mass.
func (f Frame) SeatMidpoint() float64 {
	return f.SeatFront - (f.SeatFront-f.SeatBack)/2
}

// Trace records every half-step of one walk so it can be replayed in the
// terminal or captured to film. Attach it with Stool.WithTrace before
// calling Move; attaching resets any previous recording.
//
// A trace always begins with a PhaseStart frame of the resting pose. When
// the walk ends on the floor, the terminal failure is recorded alongside the
// frames.
type Trace struct {
	frames  []Frame
	outcome error
}

// NewTrace returns an empty recorder.
func NewTrace() *Trace {
	return &Trace{}
}

// Frames returns the recorded frames in walk order.
func (t *Trace) Frames() []Frame {
	return t.frames
}

// Len returns the number of recorded frames, including the starting pose.
func (t *Trace) Len() int {
	return len(t.frames)
}

// Last returns the final recorded frame. The zero Frame if nothing was
// recorded.
func (t *Trace) Last() Frame {
	if len(t.frames) == 0 {
		return Frame{}
	}
	return t.frames[len(t.frames)-1]
}

// Distance returns the distance walked up to the last recorded frame.
func (t *Trace) Distance() float64 {
	return t.Last().Distance
}

// Outcome returns how the walk ended: nil while the stool is standing, the
// terminal topple error otherwise.
func (t *Trace) Outcome() error {
	return t.outcome
}

func (t *Trace) reset(start Frame) {
	t.frames = t.frames[:0]
	t.outcome = nil
	t.frames = append(t.frames, start)
}

func (t *Trace) append(f Frame) {
	t.frames = append(t.frames, f)
}

func (t *Trace) fail(err error) {
	t.outcome = err
}
