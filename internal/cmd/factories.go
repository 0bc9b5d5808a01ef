package cmd

import (
	"sync"

	"github.com/renato0307/gymtimer/internal/adapters/clock"
	adaptersound "github.com/renato0307/gymtimer/internal/adapters/sound"
	"github.com/renato0307/gymtimer/internal/domain"
	"github.com/renato0307/gymtimer/internal/logging"
	"github.com/renato0307/gymtimer/internal/ports"
	"github.com/renato0307/gymtimer/internal/services"
)

// Container holds all dependencies for the application
type Container struct {
	Scheduler   ports.Scheduler
	SoundPlayer ports.SoundPlayer

	// Internal - for cleanup only
	mu     sync.Mutex
	timers []*services.TimerService
}

// NewContainer creates a new Container wired to the system clock and the
// platform sound player
func NewContainer() (*Container, error) {
	return &Container{
		Scheduler:   clock.NewSystem(),
		SoundPlayer: adaptersound.NewPlayer(),
	}, nil
}

// NewNotificationService creates a notifier that shares the container's
// scheduler and sound player
func (c *Container) NewNotificationService(opts ...services.NotificationOption) *services.NotificationService {
	return services.NewNotificationService(c.SoundPlayer, c.Scheduler, opts...)
}

// NewTimerService creates a timer for plan. The container pauses it on Close.
func (c *Container) NewTimerService(
	plan domain.Plan,
	notifier ports.Notifier,
	opts ...services.TimerOption,
) (*services.TimerService, error) {
	timer, err := services.NewTimerService(plan, c.Scheduler, notifier, opts...)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.timers = append(c.timers, timer)
	c.mu.Unlock()
	return timer, nil
}

// Close stops every timer created by the container
func (c *Container) Close() error {
	c.mu.Lock()
	timers := c.timers
	c.timers = nil
	c.mu.Unlock()

	for _, timer := range timers {
		timer.Pause()
	}
	logging.Logger.Debug("Container closed", "timers", len(timers))
	return nil
}
