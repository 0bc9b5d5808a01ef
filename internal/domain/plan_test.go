package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPlan_RejectsEmpty(t *testing.T) {
	_, err := NewPlan()

	require.ErrorIs(t, err, ErrEmptyPlan)
}

func TestNewPlan_RejectsNonPositiveSetCount(t *testing.T) {
	tests := []struct {
		name    string
		entries []PlanEntry
	}{
		{"zero sets", []PlanEntry{{ExerciseID: 1, SetCount: 0}}},
		{"negative sets", []PlanEntry{{ExerciseID: 1, SetCount: -2}}},
		{"bad entry after good one", []PlanEntry{{ExerciseID: 1, SetCount: 3}, {ExerciseID: 2, SetCount: 0}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewPlan(tt.entries...)
			require.ErrorIs(t, err, ErrInvalidSetCount)
		})
	}
}

func TestNewPlan_CopiesEntries(t *testing.T) {
	entries := []PlanEntry{{ExerciseID: 7, SetCount: 2}}

	plan, err := NewPlan(entries...)
	require.NoError(t, err)

	entries[0].SetCount = 99
	assert.Equal(t, 2, plan.Entry(0).SetCount)

	returned := plan.Entries()
	returned[0].SetCount = 42
	assert.Equal(t, 2, plan.Entry(0).SetCount)
}

func TestDefaultPlan(t *testing.T) {
	plan := DefaultPlan()

	assert.Equal(t, 3, plan.Len())
	assert.Equal(t, 10, plan.TotalSets())
	assert.Equal(t, "ex1×4, ex2×3, ex3×3", plan.String())
	assert.Equal(t, []PlanEntry{
		{ExerciseID: 1, SetCount: 4},
		{ExerciseID: 2, SetCount: 3},
		{ExerciseID: 3, SetCount: 3},
	}, plan.Entries())
}
