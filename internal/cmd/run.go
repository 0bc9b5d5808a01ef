package cmd

import (
	"fmt"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/renato0307/gymtimer/internal/config"
	"github.com/renato0307/gymtimer/internal/domain"
	"github.com/renato0307/gymtimer/internal/logging"
	"github.com/renato0307/gymtimer/internal/services"
	"github.com/renato0307/gymtimer/internal/ui"
)

// RunCmd starts the TUI application
type RunCmd struct {
	IntervalFlags `embed:""`
	ToneFlags     `embed:""`

	AutoStart     bool `help:"Start the timer as soon as the screen opens"`
	Dev           bool `help:"Enable development mode (shows version info in the header)"`
	FlashDuration int  `help:"Milliseconds the screen flashes at each interval" default:"700" env:"GYMTIMER_FLASH_DURATION"`
	Mute          bool `help:"Do not play the interval tone"`
}

// Run executes the TUI
func (r *RunCmd) Run(cli *CLI) error {
	r.IntervalFlags.applySettings(cli.settings)
	r.ToneFlags.applySettings(cli.settings)

	var keysConfig config.KeyBindingsConfig
	if cli.settings != nil {
		applyIntSetting(&r.FlashDuration, defaultFlashDurationMs, EnvFlashDuration, cli.settings.FlashDurationMs)
		applyBoolSetting(&r.Mute, "", cli.settings.Mute)

		if cli.settings.Keys != nil {
			if err := cli.settings.Keys.Validate(ui.GetValidKeyNames()); err != nil {
				return fmt.Errorf("invalid key bindings in settings.json: %w", err)
			}
			keysConfig = cli.settings.Keys
			logging.Logger.Debug("Custom key bindings loaded and validated")
		}
	}

	logging.Logger.Info("Starting gymtimer TUI",
		"interval_seconds", r.Interval,
		"tone_frequency_hz", r.ToneFrequency,
		"flash_duration_ms", r.FlashDuration,
		"mute", r.Mute)

	notifier := cli.Container.NewNotificationService(
		services.WithFlashDuration(time.Duration(r.FlashDuration)*time.Millisecond),
		services.WithMuted(r.Mute),
		services.WithTone(r.tone()),
	)
	timer, err := cli.Container.NewTimerService(domain.DefaultPlan(), notifier, services.WithInterval(r.Interval))
	if err != nil {
		return fmt.Errorf("failed to create timer: %w", err)
	}

	p := tea.NewProgram(
		ui.NewModel(keysConfig, timer, r.Dev),
		tea.WithAltScreen(),
	)

	fwd := newMsgForwarder(p.Send)
	defer fwd.Stop()
	timer.OnChange(func(snap domain.Snapshot) {
		fwd.Send(ui.StateChangedMsg{Snapshot: snap})
	})
	notifier.OnFlash(func(on bool) {
		fwd.Send(ui.FlashMsg{On: on})
	})

	if r.AutoStart {
		timer.Start()
	}

	logging.Logger.Info("Starting TUI program")
	if _, err := p.Run(); err != nil {
		logging.Logger.Error("TUI program error", "error", err)
		return fmt.Errorf("error running program: %w", err)
	}

	timer.Pause()
	logging.Logger.Info("TUI program exited normally")
	return nil
}

// msgForwarder delivers messages to a Bubble Tea program in the order they
// were produced. Send never blocks, so it is safe to call from inside Update.
type msgForwarder struct {
	deliver func(tea.Msg)

	mu      sync.Mutex
	queue   []tea.Msg
	stopped bool
	wake    chan struct{}
	done    chan struct{}
}

func newMsgForwarder(deliver func(tea.Msg)) *msgForwarder {
	f := &msgForwarder{
		deliver: deliver,
		wake:    make(chan struct{}, 1),
		done:    make(chan struct{}),
	}
	go f.loop()
	return f
}

// Send queues msg for delivery
func (f *msgForwarder) Send(msg tea.Msg) {
	f.mu.Lock()
	if f.stopped {
		f.mu.Unlock()
		return
	}
	f.queue = append(f.queue, msg)
	f.mu.Unlock()

	select {
	case f.wake <- struct{}{}:
	default:
	}
}

// Stop drops pending messages and ends the delivery goroutine
func (f *msgForwarder) Stop() {
	f.mu.Lock()
	if f.stopped {
		f.mu.Unlock()
		return
	}
	f.stopped = true
	f.queue = nil
	f.mu.Unlock()
	close(f.done)
}

func (f *msgForwarder) loop() {
	for {
		select {
		case <-f.done:
			return
		case <-f.wake:
		}

		for {
			f.mu.Lock()
			if f.stopped || len(f.queue) == 0 {
				f.mu.Unlock()
				break
			}
			msg := f.queue[0]
			f.queue = f.queue[1:]
			f.mu.Unlock()

			f.deliver(msg)
		}
	}
}
