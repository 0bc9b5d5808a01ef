package ui

import (
	"github.com/renato0307/gymtimer/internal/domain"
)

// StateChangedMsg carries the timer state after a tick or command
type StateChangedMsg struct {
	Snapshot domain.Snapshot
}

// FlashMsg turns the interval flash on or off
type FlashMsg struct {
	On bool
}
