package cmd

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/renato0307/gymtimer/internal/adapters/clock"
	"github.com/renato0307/gymtimer/internal/domain"
	"github.com/renato0307/gymtimer/internal/logging"
	"github.com/renato0307/gymtimer/internal/ports"
	"github.com/renato0307/gymtimer/internal/services"
	"github.com/renato0307/gymtimer/internal/ui"
)

// SimulateCmd runs the timer on a virtual clock
type SimulateCmd struct {
	IntervalFlags `embed:""`

	Seconds int `help:"Seconds of workout to simulate" default:"600"`
}

// Run simulates the workout and prints each set change
func (s *SimulateCmd) Run(cli *CLI) error {
	s.IntervalFlags.applySettings(cli.settings)
	return simulate(os.Stdout, cli.Container.SoundPlayer, domain.DefaultPlan(), s.Interval, s.Seconds)
}

// simulate runs a fresh timer for seconds of virtual time. The notifier is
// muted, so soundPlayer is never called; it is only needed to build one.
func simulate(w io.Writer, soundPlayer ports.SoundPlayer, plan domain.Plan, intervalSeconds, seconds int) error {
	if seconds < 0 {
		return fmt.Errorf("seconds must not be negative, got %d", seconds)
	}

	scheduler := clock.NewManual()
	notifier := services.NewNotificationService(soundPlayer, scheduler, services.WithMuted(true))
	timer, err := services.NewTimerService(plan, scheduler, notifier, services.WithInterval(intervalSeconds))
	if err != nil {
		return fmt.Errorf("failed to create timer: %w", err)
	}

	fmt.Fprintf(w, "Simulating %s with one set every %s (plan: %s)\n",
		ui.FormatClock(seconds), ui.FormatClock(intervalSeconds), plan)

	triggers := 0
	notifier.OnFlash(func(on bool) {
		if !on {
			return
		}
		triggers++
		snap := timer.Snapshot()
		fmt.Fprintf(w, "%7s  %s  (cycle %d)\n",
			ui.FormatClock(snap.TotalElapsedSeconds), snap.Current, snap.CurrentCycle())
	})

	timer.Start()
	scheduler.Advance(time.Duration(seconds) * time.Second)
	timer.Pause()

	snap := timer.Snapshot()
	logging.Logger.Debug("Simulation finished", "seconds", seconds, "triggers", triggers)
	fmt.Fprintf(w, "Final: %s, set clock %s, total %s, cycles completed %d\n",
		snap.Current,
		ui.FormatClock(snap.ExerciseElapsedSeconds),
		ui.FormatClock(snap.TotalElapsedSeconds),
		snap.CyclesCompleted)
	return nil
}
