package domain

import "fmt"

// Status represents whether the workout clock is progressing
type Status string

const (
	StatusPaused  Status = "paused"
	StatusRunning Status = "running"
)

// Status symbols (Unicode)
const (
	SymbolPaused  = "❚❚"
	SymbolRunning = "▶"
)

// WorkoutState is the mutable position and clock of a workout session.
// SetIndex is 1-based.
type WorkoutState struct {
	CyclesCompleted        int
	ExerciseElapsedSeconds int
	ExerciseIndex          int
	SetIndex               int
	Status                 Status
	TotalElapsedSeconds    int
}

// NewWorkoutState returns the initial state: paused at the first set of the first exercise
func NewWorkoutState() WorkoutState {
	return WorkoutState{
		SetIndex: 1,
		Status:   StatusPaused,
	}
}

// Position identifies a set within the plan for display
type Position struct {
	ExerciseID int
	SetCount   int
	SetIndex   int
}

// String renders the position as "Exercise 1 • Set 2/4"
func (p Position) String() string {
	return fmt.Sprintf("Exercise %d • Set %d/%d", p.ExerciseID, p.SetIndex, p.SetCount)
}

// CurrentPosition returns the position the state points at
func CurrentPosition(state WorkoutState, plan Plan) Position {
	entry := plan.Entry(state.ExerciseIndex)
	return Position{
		ExerciseID: entry.ExerciseID,
		SetCount:   entry.SetCount,
		SetIndex:   state.SetIndex,
	}
}

// Advance moves the state to the next set. When the current exercise has no
// sets left it moves to the first set of the next exercise, wrapping to the
// start of the plan and counting a completed cycle on wrap. The set clock is
// reset; the total clock and status are left alone.
func Advance(state WorkoutState, plan Plan) WorkoutState {
	exerciseIndex, setIndex, wrapped := nextIndices(state, plan)

	next := state
	next.ExerciseElapsedSeconds = 0
	next.ExerciseIndex = exerciseIndex
	next.SetIndex = setIndex
	if wrapped {
		next.CyclesCompleted++
	}
	return next
}

// PeekNext returns the position Advance would move to, without changing anything
func PeekNext(state WorkoutState, plan Plan) Position {
	exerciseIndex, setIndex, _ := nextIndices(state, plan)
	entry := plan.Entry(exerciseIndex)
	return Position{
		ExerciseID: entry.ExerciseID,
		SetCount:   entry.SetCount,
		SetIndex:   setIndex,
	}
}

func nextIndices(state WorkoutState, plan Plan) (exerciseIndex, setIndex int, wrapped bool) {
	if state.SetIndex < plan.Entry(state.ExerciseIndex).SetCount {
		return state.ExerciseIndex, state.SetIndex + 1, false
	}
	exerciseIndex = (state.ExerciseIndex + 1) % plan.Len()
	return exerciseIndex, 1, exerciseIndex == 0
}

// IntervalReached reports whether total elapsed seconds sit on a positive
// multiple of the interval
func IntervalReached(totalSeconds, intervalSeconds int) bool {
	return totalSeconds > 0 && totalSeconds%intervalSeconds == 0
}
