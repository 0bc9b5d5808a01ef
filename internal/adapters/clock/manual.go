package clock

import (
	"sort"
	"sync"
	"time"

	"github.com/renato0307/gymtimer/internal/ports"
)

// Manual implements ports.Scheduler on a virtual clock that only moves when
// Advance is called. Callbacks run on the goroutine calling Advance.
type Manual struct {
	mu    sync.Mutex
	now   time.Duration
	seq   int
	tasks []*manualTask
}

// NewManual creates a virtual clock at time zero
func NewManual() *Manual {
	return &Manual{}
}

type manualTask struct {
	due     time.Duration
	every   time.Duration // zero for one-shot tasks
	fn      func()
	owner   *Manual
	seq     int
	stopped bool
}

func (t *manualTask) Stop() {
	t.owner.mu.Lock()
	defer t.owner.mu.Unlock()
	t.stopped = true
}

// Every schedules fn at now+interval, now+2*interval, ...
func (m *Manual) Every(interval time.Duration, fn func()) ports.ScheduledTask {
	if interval <= 0 {
		panic("clock: non-positive interval")
	}
	return m.add(interval, interval, fn)
}

// After schedules fn once at now+delay
func (m *Manual) After(delay time.Duration, fn func()) ports.ScheduledTask {
	return m.add(delay, 0, fn)
}

func (m *Manual) add(delay, every time.Duration, fn func()) *manualTask {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.seq++
	task := &manualTask{
		due:   m.now + delay,
		every: every,
		fn:    fn,
		owner: m,
		seq:   m.seq,
	}
	m.tasks = append(m.tasks, task)
	return task
}

// Now returns the virtual time elapsed since the clock was created
func (m *Manual) Now() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

// Pending returns the number of tasks that have not fired or been stopped
func (m *Manual) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	count := 0
	for _, t := range m.tasks {
		if !t.stopped {
			count++
		}
	}
	return count
}

// Advance moves the clock forward by d, firing every task that falls due in
// time order. Tasks due at the same instant fire in scheduling order.
func (m *Manual) Advance(d time.Duration) {
	m.mu.Lock()
	target := m.now + d
	m.mu.Unlock()

	for {
		fn := m.nextDue(target)
		if fn == nil {
			break
		}
		fn()
	}

	m.mu.Lock()
	m.now = target
	m.mu.Unlock()
}

// nextDue returns the callback of the earliest task due at or before target, moving the clock
// to its due time and rescheduling it when it repeats
func (m *Manual) nextDue(target time.Duration) func() {
	m.mu.Lock()
	defer m.mu.Unlock()

	live := m.tasks[:0]
	for _, t := range m.tasks {
		if !t.stopped {
			live = append(live, t)
		}
	}
	m.tasks = live

	sort.SliceStable(m.tasks, func(i, j int) bool {
		if m.tasks[i].due != m.tasks[j].due {
			return m.tasks[i].due < m.tasks[j].due
		}
		return m.tasks[i].seq < m.tasks[j].seq
	})

	if len(m.tasks) == 0 || m.tasks[0].due > target {
		return nil
	}

	task := m.tasks[0]
	m.now = task.due
	if task.every > 0 {
		task.due += task.every
	} else {
		task.stopped = true
	}
	return task.fn
}
