package services

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/renato0307/gymtimer/internal/domain"
	"github.com/renato0307/gymtimer/internal/logging"
	"github.com/renato0307/gymtimer/internal/ports"
)

// Defaults for the timer engine
const (
	DefaultIntervalSeconds = 120
	DefaultTickEvery       = time.Second
)

var ErrInvalidInterval = errors.New("interval must be at least 1 second")

// TimerOption customizes a TimerService
type TimerOption func(*TimerService)

// WithInterval sets how many seconds pass between automatic set advances
func WithInterval(seconds int) TimerOption {
	return func(s *TimerService) {
		s.intervalSeconds = seconds
	}
}

// WithTickEvery sets the wall-clock length of one tick
func WithTickEvery(d time.Duration) TimerOption {
	return func(s *TimerService) {
		s.tickEvery = d
	}
}

// TimerService drives the workout clock. While running it ticks once per
// second, and every interval it notifies the user and moves to the next set.
//
// All state is guarded by mu. Each start bumps generation and captures it in
// the tick callback; pause and restart bump it again, so a tick that was
// already in flight when the schedule was cancelled finds a stale generation
// and does nothing.
//
// Every state change bumps version under mu and stamps it on the published
// snapshot. Publishing is serialized through pending: snapshots reach
// listeners in version order and a snapshot older than one already queued
// is dropped.
type TimerService struct {
	intervalSeconds int
	listeners       []func(domain.Snapshot)
	notifier        ports.Notifier
	plan            domain.Plan
	scheduler       ports.Scheduler
	tickEvery       time.Duration

	mu         sync.Mutex
	generation uint64
	state      domain.WorkoutState
	task       ports.ScheduledTask
	version    uint64

	publishMu  sync.Mutex
	pending    []domain.Snapshot
	publishing bool
	queued     uint64
}

// NewTimerService creates a paused TimerService at the start of plan
func NewTimerService(
	plan domain.Plan,
	scheduler ports.Scheduler,
	notifier ports.Notifier,
	opts ...TimerOption,
) (*TimerService, error) {
	if plan.Len() == 0 {
		return nil, domain.ErrEmptyPlan
	}

	s := &TimerService{
		intervalSeconds: DefaultIntervalSeconds,
		notifier:        notifier,
		plan:            plan,
		scheduler:       scheduler,
		state:           domain.NewWorkoutState(),
		tickEvery:       DefaultTickEvery,
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.intervalSeconds < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidInterval, s.intervalSeconds)
	}
	if s.tickEvery <= 0 {
		return nil, fmt.Errorf("tick length must be positive: got %s", s.tickEvery)
	}

	logging.Logger.Debug("Timer created",
		"plan", plan.String(),
		"interval_seconds", s.intervalSeconds,
		"tick_every", s.tickEvery)

	return s, nil
}

// OnChange registers fn to receive a snapshot after every command and tick.
// Register listeners before starting the timer. fn runs without the timer
// lock held and may call the timer's read methods. Listeners are called one
// snapshot at a time in state order; a snapshot superseded before delivery
// is skipped.
func (s *TimerService) OnChange(fn func(domain.Snapshot)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

// Start begins or resumes the clock. It does nothing if already running.
func (s *TimerService) Start() {
	s.mu.Lock()
	if s.state.Status == domain.StatusRunning {
		s.mu.Unlock()
		return
	}
	s.startLocked()
	snap := s.changedLocked()
	s.mu.Unlock()

	logging.Logger.Debug("Timer started", "total_seconds", snap.TotalElapsedSeconds)
	s.publish(snap)
}

// Pause stops the clock, keeping all counters. It does nothing if already paused.
// No tick is applied after Pause returns.
func (s *TimerService) Pause() {
	s.mu.Lock()
	if s.state.Status != domain.StatusRunning {
		s.mu.Unlock()
		return
	}
	s.cancelLocked()
	s.state.Status = domain.StatusPaused
	snap := s.changedLocked()
	s.mu.Unlock()

	logging.Logger.Debug("Timer paused", "total_seconds", snap.TotalElapsedSeconds)
	s.publish(snap)
}

// Restart clears the workout back to its first set with zeroed clocks and
// starts running, as one step.
func (s *TimerService) Restart() {
	s.mu.Lock()
	s.cancelLocked()
	s.state = domain.NewWorkoutState()
	s.startLocked()
	snap := s.changedLocked()
	s.mu.Unlock()

	logging.Logger.Debug("Timer restarted")
	s.publish(snap)
}

// NextSet moves to the next set whether or not the clock is running.
// The set clock restarts at zero; total time is untouched.
func (s *TimerService) NextSet() {
	s.mu.Lock()
	s.state = domain.Advance(s.state, s.plan)
	snap := s.changedLocked()
	s.mu.Unlock()

	logging.Logger.Debug("Set advanced manually", "position", snap.Current.String())
	s.publish(snap)
}

// Snapshot returns the current state and derived positions
func (s *TimerService) Snapshot() domain.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Status reports whether the clock is running
func (s *TimerService) Status() domain.Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Status
}

// CurrentPosition returns the exercise and set in progress
func (s *TimerService) CurrentPosition() domain.Position {
	s.mu.Lock()
	defer s.mu.Unlock()
	return domain.CurrentPosition(s.state, s.plan)
}

// NextPosition returns the set that follows the current one
func (s *TimerService) NextPosition() domain.Position {
	s.mu.Lock()
	defer s.mu.Unlock()
	return domain.PeekNext(s.state, s.plan)
}

// ElapsedTotal returns seconds counted since the workout was last restarted
func (s *TimerService) ElapsedTotal() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.TotalElapsedSeconds
}

// ElapsedInSet returns seconds counted since the current set began
func (s *TimerService) ElapsedInSet() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.ExerciseElapsedSeconds
}

// CyclesCompleted returns how many times the whole plan has been finished
func (s *TimerService) CyclesCompleted() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.CyclesCompleted
}

// Plan returns the workout plan
func (s *TimerService) Plan() domain.Plan {
	return s.plan
}

// IntervalSeconds returns the automatic advance interval
func (s *TimerService) IntervalSeconds() int {
	return s.intervalSeconds
}

func (s *TimerService) startLocked() {
	s.state.Status = domain.StatusRunning
	s.generation++
	gen := s.generation
	s.task = s.scheduler.Every(s.tickEvery, func() { s.tick(gen) })
}

func (s *TimerService) cancelLocked() {
	s.generation++
	if s.task != nil {
		s.task.Stop()
		s.task = nil
	}
}

// tick applies one second of progress for the schedule started at generation gen
func (s *TimerService) tick(gen uint64) {
	s.mu.Lock()
	if gen != s.generation || s.state.Status != domain.StatusRunning {
		s.mu.Unlock()
		return
	}

	s.state.TotalElapsedSeconds++
	s.state.ExerciseElapsedSeconds++

	triggered := domain.IntervalReached(s.state.TotalElapsedSeconds, s.intervalSeconds)
	if triggered {
		s.state = domain.Advance(s.state, s.plan)
	}
	snap := s.changedLocked()
	s.mu.Unlock()

	if triggered {
		logging.Logger.Info("Interval reached",
			"total_seconds", snap.TotalElapsedSeconds,
			"position", snap.Current.String(),
			"cycles_completed", snap.CyclesCompleted)
		s.notifier.EmitTone()
		s.notifier.EmitFlash()
	}
	s.publish(snap)
}

func (s *TimerService) snapshotLocked() domain.Snapshot {
	snap := domain.NewSnapshot(s.state, s.plan, s.intervalSeconds)
	snap.Version = s.version
	return snap
}

// changedLocked records a state change and returns the snapshot to publish
func (s *TimerService) changedLocked() domain.Snapshot {
	s.version++
	return s.snapshotLocked()
}

// publish delivers snap to the listeners unless a newer snapshot was already
// queued. When another goroutine is delivering, snap is left for it to pick
// up, so a listener that triggers a command does not deadlock.
func (s *TimerService) publish(snap domain.Snapshot) {
	s.publishMu.Lock()
	if snap.Version <= s.queued {
		s.publishMu.Unlock()
		logging.Logger.Debug("Dropped stale snapshot", "version", snap.Version, "queued", s.queued)
		return
	}
	s.queued = snap.Version
	s.pending = append(s.pending, snap)
	if s.publishing {
		s.publishMu.Unlock()
		return
	}
	s.publishing = true

	for len(s.pending) > 0 {
		next := s.pending[0]
		s.pending = s.pending[1:]
		s.publishMu.Unlock()

		s.mu.Lock()
		listeners := s.listeners
		s.mu.Unlock()
		for _, fn := range listeners {
			fn(next)
		}

		s.publishMu.Lock()
	}

	s.publishing = false
	s.publishMu.Unlock()
}
