package cmd

import (
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func TestMsgForwarder_PreservesOrder(t *testing.T) {
	var (
		mu       sync.Mutex
		received []tea.Msg
	)
	fwd := newMsgForwarder(func(msg tea.Msg) {
		mu.Lock()
		received = append(received, msg)
		mu.Unlock()
	})
	defer fwd.Stop()

	for i := range 100 {
		fwd.Send(i)
	}

	assert.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(received) == 100
	}, time.Second, 5*time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	for i, msg := range received {
		assert.Equal(t, i, msg)
	}
}

func TestMsgForwarder_SendNeverBlocks(t *testing.T) {
	release := make(chan struct{})
	fwd := newMsgForwarder(func(tea.Msg) {
		<-release
	})

	done := make(chan struct{})
	go func() {
		for i := range 10 {
			fwd.Send(i)
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Send blocked while delivery was stuck")
	}

	fwd.Stop()
	close(release)
}

func TestMsgForwarder_DropsAfterStop(t *testing.T) {
	calls := 0
	fwd := newMsgForwarder(func(tea.Msg) { calls++ })
	fwd.Stop()
	fwd.Stop()

	fwd.Send("late")
	time.Sleep(10 * time.Millisecond)
	assert.Zero(t, calls)
}
