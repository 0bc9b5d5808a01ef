package ports

import "github.com/renato0307/gymtimer/internal/domain"

// SoundPlayer plays notification sounds
type SoundPlayer interface {
	// PlayTone synthesizes and plays the tone, returning once playback ends
	PlayTone(tone domain.Tone) error
}
