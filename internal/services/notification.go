package services

import (
	"sync"
	"time"

	"github.com/renato0307/gymtimer/internal/domain"
	"github.com/renato0307/gymtimer/internal/logging"
	"github.com/renato0307/gymtimer/internal/ports"
)

// DefaultFlashDuration is how long the visual flash stays on
const DefaultFlashDuration = 700 * time.Millisecond

// NotificationService implements ports.Notifier with a tone and a flash event
type NotificationService struct {
	flashDuration time.Duration
	muted         bool
	scheduler     ports.Scheduler
	soundPlayer   ports.SoundPlayer
	tone          domain.Tone

	mu             sync.Mutex
	flashListeners []func(on bool)
}

// NotificationOption customizes a NotificationService
type NotificationOption func(*NotificationService)

// WithFlashDuration sets how long each flash stays on
func WithFlashDuration(d time.Duration) NotificationOption {
	return func(s *NotificationService) {
		s.flashDuration = d
	}
}

// WithTone sets the tone played at each interval
func WithTone(tone domain.Tone) NotificationOption {
	return func(s *NotificationService) {
		s.tone = tone
	}
}

// WithMuted disables the tone; flashes still happen
func WithMuted(muted bool) NotificationOption {
	return func(s *NotificationService) {
		s.muted = muted
	}
}

// NewNotificationService creates a new NotificationService
func NewNotificationService(
	soundPlayer ports.SoundPlayer,
	scheduler ports.Scheduler,
	opts ...NotificationOption,
) *NotificationService {
	s := &NotificationService{
		flashDuration: DefaultFlashDuration,
		scheduler:     scheduler,
		soundPlayer:   soundPlayer,
		tone:          domain.DefaultTone(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// OnFlash registers fn to be called with true when a flash starts and false
// when it ends
func (s *NotificationService) OnFlash(fn func(on bool)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.flashListeners = append(s.flashListeners, fn)
}

// EmitTone plays the interval tone in the background. Playback errors are
// logged and otherwise ignored.
func (s *NotificationService) EmitTone() {
	if s.muted {
		logging.Logger.Debug("Tone muted")
		return
	}

	go func() {
		if err := s.soundPlayer.PlayTone(s.tone); err != nil {
			logging.Logger.Debug("Failed to play tone", "error", err)
		}
	}()
}

// EmitFlash turns the flash on and schedules it off after the flash duration.
// Every call schedules its own clear.
func (s *NotificationService) EmitFlash() {
	s.notifyFlash(true)
	s.scheduler.After(s.flashDuration, func() {
		s.notifyFlash(false)
	})
}

// PlayTone plays the interval tone and waits for it to finish
func (s *NotificationService) PlayTone() error {
	logging.Logger.Debug("Playing tone", "frequency_hz", s.tone.FrequencyHz)
	return s.soundPlayer.PlayTone(s.tone)
}

func (s *NotificationService) notifyFlash(on bool) {
	s.mu.Lock()
	listeners := s.flashListeners
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(on)
	}
}
