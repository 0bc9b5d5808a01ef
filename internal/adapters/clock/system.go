package clock

import (
	"sync"
	"time"

	"github.com/renato0307/gymtimer/internal/ports"
)

// System implements ports.Scheduler on the wall clock
type System struct{}

// NewSystem creates a new wall-clock scheduler
func NewSystem() *System {
	return &System{}
}

// Every runs fn on its own goroutine once per interval until stopped.
// A callback that was already due when Stop is called may still run once;
// callers that need a hard cut-off must guard their callback.
func (s *System) Every(interval time.Duration, fn func()) ports.ScheduledTask {
	task := &tickerTask{
		done:   make(chan struct{}),
		ticker: time.NewTicker(interval),
	}
	go task.loop(fn)
	return task
}

// After runs fn once on its own goroutine after delay
func (s *System) After(delay time.Duration, fn func()) ports.ScheduledTask {
	return &timerTask{timer: time.AfterFunc(delay, fn)}
}

type tickerTask struct {
	done   chan struct{}
	once   sync.Once
	ticker *time.Ticker
}

func (t *tickerTask) loop(fn func()) {
	for {
		select {
		case <-t.done:
			return
		case <-t.ticker.C:
			fn()
		}
	}
}

func (t *tickerTask) Stop() {
	t.once.Do(func() {
		t.ticker.Stop()
		close(t.done)
	})
}

type timerTask struct {
	timer *time.Timer
}

func (t *timerTask) Stop() {
	t.timer.Stop()
}
