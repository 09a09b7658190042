package stoolwalk

import "strconv"

// PerfectDistance is the walk length earning the top grade with the
// classroom reference stool: 125 front half-steps at the longest step the
// friction limit allows.
const PerfectDistance = 3733.022748825491

// Grade maps a completed walk distance to a classroom grade. Reaching
// PerfectDistance earns a 5, coming within one percent of it a 4, anything
// shorter a 3.
func Grade(distance float64) int {
	switch {
	case distance >= PerfectDistance:
		return 5
	case distance > 0.99*PerfectDistance:
		return 4
	default:
		return 3
	}
}

// Assessment is the recordable outcome of one walk: a grade when the stool
// stayed standing, the failure's text when it did not.
type Assessment struct {
	Grade  int    // grade earned; meaningful only when Failed is false
	Failed bool   // whether the walk ended on the floor
	Reason string // the failure's text when Failed
}

// Assess converts a Move result into an Assessment. Every failure kind is
// absorbed here: the collaborator records the failure's text instead of a
// grade and carries on, so a fallen stool never crashes a grading run.
func Assess(distance float64, err error) Assessment {
	if err != nil {
		return Assessment{Failed: true, Reason: err.Error()}
	}
	return Assessment{Grade: Grade(distance)}
}

// Value returns what goes into the grade book: the integer grade, or the
// failure text.
func (a Assessment) Value() any {
	if a.Failed {
		return a.Reason
	}
	return a.Grade
}

func (a Assessment) String() string {
	if a.Failed {
		return a.Reason
	}
	return strconv.Itoa(a.Grade)
}
