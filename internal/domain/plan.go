package domain

import (
	"fmt"
	"strings"
)

// PlanEntry is one exercise and the number of sets it requires
type PlanEntry struct {
	ExerciseID int
	SetCount   int
}

// Plan is the ordered, immutable list of exercises for a workout.
// The zero value is not usable; build plans with NewPlan or DefaultPlan.
type Plan struct {
	entries []PlanEntry
}

// NewPlan validates the entries and returns a Plan holding its own copy of them
func NewPlan(entries ...PlanEntry) (Plan, error) {
	if len(entries) == 0 {
		return Plan{}, ErrEmptyPlan
	}
	for i, e := range entries {
		if e.SetCount < 1 {
			return Plan{}, fmt.Errorf("entry %d (exercise %d): %w", i, e.ExerciseID, ErrInvalidSetCount)
		}
	}

	owned := make([]PlanEntry, len(entries))
	copy(owned, entries)
	return Plan{entries: owned}, nil
}

// DefaultPlan returns the reference plan: exercise 1 x4, exercise 2 x3, exercise 3 x3
func DefaultPlan() Plan {
	p, err := NewPlan(
		PlanEntry{ExerciseID: 1, SetCount: 4},
		PlanEntry{ExerciseID: 2, SetCount: 3},
		PlanEntry{ExerciseID: 3, SetCount: 3},
	)
	if err != nil {
		panic("default plan is invalid: " + err.Error())
	}
	return p
}

// Len returns the number of entries
func (p Plan) Len() int {
	return len(p.entries)
}

// Entry returns the entry at index i
func (p Plan) Entry(i int) PlanEntry {
	return p.entries[i]
}

// Entries returns a copy of the plan entries
func (p Plan) Entries() []PlanEntry {
	out := make([]PlanEntry, len(p.entries))
	copy(out, p.entries)
	return out
}

// TotalSets returns the number of sets in one full cycle
func (p Plan) TotalSets() int {
	total := 0
	for _, e := range p.entries {
		total += e.SetCount
	}
	return total
}

// String renders the plan as "ex1×4, ex2×3, ex3×3"
func (p Plan) String() string {
	parts := make([]string, len(p.entries))
	for i, e := range p.entries {
		parts[i] = fmt.Sprintf("ex%d×%d", e.ExerciseID, e.SetCount)
	}
	return strings.Join(parts, ", ")
}
