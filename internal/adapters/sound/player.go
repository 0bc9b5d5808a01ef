package sound

import (
	"fmt"
	"os"

	"github.com/renato0307/gymtimer/internal/domain"
)

// Player implements ports.SoundPlayer
type Player struct{}

// NewPlayer creates a new sound player
func NewPlayer() *Player {
	return &Player{}
}

// PlayTone synthesizes the tone and plays it through the first audio backend
// that works on this platform. Platform-specific implementations are in
// player_*.go files with build tags.
func (p *Player) PlayTone(tone domain.Tone) error {
	wav, err := SynthesizeTone(tone)
	if err != nil {
		return err
	}
	return playWAV(wav)
}

// writeTempWAV stores wav in a temporary file for players that cannot read stdin.
// The caller removes the file.
func writeTempWAV(wav []byte) (string, error) {
	f, err := os.CreateTemp("", "gymtimer-*.wav")
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}
	defer f.Close()

	if _, err := f.Write(wav); err != nil {
		os.Remove(f.Name())
		return "", fmt.Errorf("failed to write temp file: %w", err)
	}
	return f.Name(), nil
}

// terminalBell outputs a terminal bell character as fallback
func terminalBell() error {
	fmt.Print("\a")
	return nil
}
