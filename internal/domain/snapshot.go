package domain

// Snapshot is a read-only view of a workout at one instant
type Snapshot struct {
	Current                Position
	CyclesCompleted        int
	ExerciseElapsedSeconds int
	IntervalSeconds        int
	Next                   Position
	Plan                   Plan
	Status                 Status
	TotalElapsedSeconds    int

	// Version increases with every state change of the timer that produced
	// the snapshot. Zero means the snapshot was not taken from a timer.
	Version uint64
}

// NewSnapshot builds a Snapshot of state within plan
func NewSnapshot(state WorkoutState, plan Plan, intervalSeconds int) Snapshot {
	return Snapshot{
		Current:                CurrentPosition(state, plan),
		CyclesCompleted:        state.CyclesCompleted,
		ExerciseElapsedSeconds: state.ExerciseElapsedSeconds,
		IntervalSeconds:        intervalSeconds,
		Next:                   PeekNext(state, plan),
		Plan:                   plan,
		Status:                 state.Status,
		TotalElapsedSeconds:    state.TotalElapsedSeconds,
	}
}

// IsNewerThan reports whether s reflects a later state than other
func (s Snapshot) IsNewerThan(other Snapshot) bool {
	return s.Version > other.Version
}

// CurrentCycle is the 1-based number of the cycle in progress
func (s Snapshot) CurrentCycle() int {
	return s.CyclesCompleted + 1
}

// IsRunning reports whether the clock is progressing
func (s Snapshot) IsRunning() bool {
	return s.Status == StatusRunning
}

// SecondsUntilInterval returns how many ticks remain before the next interval trigger
func (s Snapshot) SecondsUntilInterval() int {
	if s.IntervalSeconds <= 0 {
		return 0
	}
	return s.IntervalSeconds - s.TotalElapsedSeconds%s.IntervalSeconds
}

// IntervalProgress returns the fraction of the current interval already elapsed, in [0, 1)
func (s Snapshot) IntervalProgress() float64 {
	if s.IntervalSeconds <= 0 {
		return 0
	}
	return float64(s.TotalElapsedSeconds%s.IntervalSeconds) / float64(s.IntervalSeconds)
}
