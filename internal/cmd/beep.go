package cmd

import (
	"fmt"

	"github.com/renato0307/gymtimer/internal/logging"
	"github.com/renato0307/gymtimer/internal/services"
)

// BeepCmd plays the interval tone
type BeepCmd struct {
	ToneFlags `embed:""`
}

// Run plays the tone and waits for playback to finish
func (b *BeepCmd) Run(cli *CLI) error {
	b.ToneFlags.applySettings(cli.settings)

	logging.Logger.Debug("Playing interval tone", "frequency_hz", b.ToneFrequency)
	notifier := cli.Container.NewNotificationService(services.WithTone(b.tone()))
	if err := notifier.PlayTone(); err != nil {
		return fmt.Errorf("failed to play tone: %w", err)
	}
	return nil
}
