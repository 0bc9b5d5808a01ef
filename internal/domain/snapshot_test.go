package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewSnapshot(t *testing.T) {
	plan := DefaultPlan()
	state := advanceTimes(NewWorkoutState(), plan, 3)
	state.Status = StatusRunning
	state.TotalElapsedSeconds = 150
	state.ExerciseElapsedSeconds = 30

	snap := NewSnapshot(state, plan, 120)

	assert.Equal(t, Position{ExerciseID: 1, SetIndex: 4, SetCount: 4}, snap.Current)
	assert.Equal(t, Position{ExerciseID: 2, SetIndex: 1, SetCount: 3}, snap.Next)
	assert.True(t, snap.IsRunning())
	assert.Equal(t, 1, snap.CurrentCycle())
	assert.Equal(t, 90, snap.SecondsUntilInterval())
	assert.InDelta(t, 0.25, snap.IntervalProgress(), 1e-9)
}

func TestSnapshot_IntervalMathWithZeroInterval(t *testing.T) {
	snap := Snapshot{TotalElapsedSeconds: 10}

	assert.Equal(t, 0, snap.SecondsUntilInterval())
	assert.Zero(t, snap.IntervalProgress())
}

func TestSnapshot_IsNewerThan(t *testing.T) {
	older := Snapshot{Version: 3}
	newer := Snapshot{Version: 4}

	assert.True(t, newer.IsNewerThan(older))
	assert.False(t, older.IsNewerThan(newer))
	assert.False(t, older.IsNewerThan(older))
}
