package stoolwalk

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/stoolwalk/topple"
)

func TestNewStool_RestingPose(t *testing.T) {
	stool := NewStool(DefaultConfig())

	assert.Equal(t, 80.0, stool.frontLeg, "front legs start under the seat's front edge")
	assert.Equal(t, 0.0, stool.backLeg, "back legs start at the origin")
	assert.Equal(t, stool.frontLeg, stool.seatFront)
	assert.Equal(t, stool.backLeg, stool.seatBack)
	assert.InDelta(t, math.Atan(0.1), stool.MaxTilt(), 1e-15)
}

func TestMove_ZeroStepsNeverFall(t *testing.T) {
	configs := []Config{
		DefaultConfig(),
		{WoodLength: 10, LegLength: 5, SeatLength: 12, WoodWeight: 1, TotalTime: 100, Pause: 1, TimeStep: 1, Friction: 0.3},
		{WoodLength: 1, LegLength: 200, SeatLength: 50, WoodWeight: 9, TotalTime: 40, Pause: 0.5, TimeStep: 0.5, Friction: 0.01},
	}

	for _, config := range configs {
		distance, err := NewStool(config).Move(0, 0)
		require.NoError(t, err, "a motionless stool cannot fall")
		assert.Equal(t, 0.0, distance)
	}
}

func TestMove_ReferenceWalk(t *testing.T) {
	stool := NewStool(DefaultConfig())

	distance, err := stool.Move(0.5, 0.5)
	require.NoError(t, err)

	// 1000 time units at 4 per half-step is 125 full cycles; only the
	// front steps count toward the distance.
	assert.InDelta(t, 62.5, distance, 1e-9)
}

func TestMove_StrandedBackLegsLeaveTheDomain(t *testing.T) {
	// With a zero back step the seat drifts half a unit per cycle away from
	// the stranded back legs; once that offset passes the 60-unit legs the
	// geometry is impossible and the walk must fail loudly, not finish.
	distance, err := NewStool(DefaultConfig()).Move(0.5, 0)
	require.Error(t, err)

	var domain *topple.DomainError
	require.ErrorAs(t, err, &domain)
	assert.Equal(t, "acos", domain.Fn)
	assert.Greater(t, domain.Arg, 1.0)
	assert.InDelta(t, 60.5, distance, 1e-9, "the offset first exceeds the legs on cycle 121")
}

func TestTiltAngle_StationaryPairStillChecksReach(t *testing.T) {
	stool := NewStool(DefaultConfig())

	// An offset exactly at the leg's reach is still valid geometry.
	tilt, err := stool.tiltAngle(60, 0)
	require.NoError(t, err)
	assert.Equal(t, 0.0, tilt)

	// Beyond it, a zero step must not mask the impossible offset.
	_, err = stool.tiltAngle(60.5, 0)
	var domain *topple.DomainError
	require.ErrorAs(t, err, &domain)
	assert.Equal(t, "acos", domain.Fn)
}

func TestMove_NearFrictionLimitCompletes(t *testing.T) {
	distance, err := NewStool(DefaultConfig()).Move(29.86, 29.86)
	require.NoError(t, err, "a step just under the friction limit should hold")

	assert.InDelta(t, 125*29.86, distance, 1e-6)
	assert.Equal(t, 4, Grade(distance), "within a percent of the perfect walk")
}

func TestMove_AngleExceeded(t *testing.T) {
	stool := NewStool(DefaultConfig())

	distance, err := stool.Move(30, 30)
	require.Error(t, err)

	var angle *topple.AngleExceeded
	require.ErrorAs(t, err, &angle)
	assert.Greater(t, angle.Angle, stool.MaxTilt(), "the verdict carries the offending tilt")
	assert.Equal(t, 0.0, distance, "the stool fell on its first half-step")
}

func TestMove_BackStepAngleExceeded(t *testing.T) {
	// A near-limit front step with a lagging back step tips the back pair:
	// the back legs have to span the front displacement with less reach.
	distance, err := NewStool(DefaultConfig()).Move(29.8, 29)
	require.Error(t, err)

	var angle *topple.AngleExceeded
	require.ErrorAs(t, err, &angle)
	assert.InDelta(t, 29.8, distance, 1e-9, "the front half-step had already landed")
}

func TestMove_BackStepLeavesAsinDomain(t *testing.T) {
	// An aggressive back step against a small front offset blows the tilt
	// expression out of the asin domain.
	_, err := NewStool(DefaultConfig()).Move(0.5, 1.2)
	require.Error(t, err)

	var domain *topple.DomainError
	require.ErrorAs(t, err, &domain)
	assert.Equal(t, "asin", domain.Fn)
	assert.Less(t, domain.Arg, -1.0)
}

func TestMove_StepLongerThanLegs(t *testing.T) {
	distance, err := NewStool(DefaultConfig()).Move(61, 61)
	require.Error(t, err)

	var domain *topple.DomainError
	require.ErrorAs(t, err, &domain)
	assert.Equal(t, "acos", domain.Fn)
	assert.Greater(t, domain.Arg, 1.0)
	assert.Equal(t, 0.0, distance)
}

func TestMove_TinyLegsFailLoudly(t *testing.T) {
	config := DefaultConfig()
	config.LegLength = 0.4

	_, err := NewStool(config).Move(0.5, 0.5)

	var domain *topple.DomainError
	require.ErrorAs(t, err, &domain, "legs shorter than the step must fail, not mis-measure")
}

func TestTiltAngle_MonotoneInStep(t *testing.T) {
	stool := NewStool(DefaultConfig())

	previous := -1.0
	for _, step := range []float64{0, 0.1, 0.5, 1, 5, 10, 20, 29} {
		tilt, err := stool.tiltAngle(step, step)
		require.NoError(t, err, "step %v", step)
		assert.GreaterOrEqual(t, tilt, previous, "tilt never shrinks as the step grows (step %v)", step)
		previous = tilt
	}
}

func TestCheckBalance_ClosedInterval(t *testing.T) {
	stool := NewStool(DefaultConfig())

	// Midpoint exactly on the front contact: still balanced.
	stool.frontLeg = 80
	stool.backLeg = 0
	stool.seatFront = 120
	stool.seatBack = 40
	assert.NoError(t, stool.checkBalance(), "resting exactly on a leg contact is balanced")

	// Midpoint exactly on the back contact: still balanced.
	stool.seatFront = 8
	stool.seatBack = -8
	assert.NoError(t, stool.checkBalance())

	// Past the front contact: fallen.
	stool.seatFront = 122
	stool.seatBack = 40
	assert.ErrorIs(t, stool.checkBalance(), topple.ErrUnstable)

	// Behind the back contact: fallen.
	stool.seatFront = 10
	stool.seatBack = -14
	assert.ErrorIs(t, stool.checkBalance(), topple.ErrUnstable)
}

func TestMove_FailureKindsAreDistinguishable(t *testing.T) {
	var angle *topple.AngleExceeded
	var domain *topple.DomainError

	_, angleErr := NewStool(DefaultConfig()).Move(30, 30)
	assert.True(t, errors.As(angleErr, &angle))
	assert.False(t, errors.As(angleErr, &domain))
	assert.False(t, errors.Is(angleErr, topple.ErrUnstable))

	_, domainErr := NewStool(DefaultConfig()).Move(61, 61)
	assert.True(t, errors.As(domainErr, &domain))
	assert.False(t, errors.As(domainErr, &angle))
	assert.False(t, errors.Is(domainErr, topple.ErrUnstable))
}
