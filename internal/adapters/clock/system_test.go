package clock

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSystem_EveryAndStop(t *testing.T) {
	s := NewSystem()
	var count atomic.Int32

	task := s.Every(5*time.Millisecond, func() { count.Add(1) })

	assert.Eventually(t, func() bool { return count.Load() >= 3 }, time.Second, time.Millisecond)

	task.Stop()
	task.Stop()
	// Allow a tick that was already due to drain, then check nothing else arrives
	time.Sleep(20 * time.Millisecond)
	stopped := count.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, stopped, count.Load())
}

func TestSystem_AfterCanBeStopped(t *testing.T) {
	s := NewSystem()
	var fired atomic.Bool

	task := s.After(50*time.Millisecond, func() { fired.Store(true) })
	task.Stop()

	time.Sleep(100 * time.Millisecond)
	assert.False(t, fired.Load())
}

func TestSystem_AfterFires(t *testing.T) {
	s := NewSystem()
	done := make(chan struct{})

	s.After(time.Millisecond, func() { close(done) })

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("After callback did not fire")
	}
}
