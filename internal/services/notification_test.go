package services

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/gymtimer/internal/adapters/clock"
	"github.com/renato0307/gymtimer/internal/domain"
	portsmocks "github.com/renato0307/gymtimer/internal/ports/mocks"
)

func TestEmitTone_PlaysDefaultTone(t *testing.T) {
	soundPlayer := portsmocks.NewMockSoundPlayer(t)
	done := make(chan struct{})
	soundPlayer.EXPECT().PlayTone(domain.DefaultTone()).
		Run(func(domain.Tone) { close(done) }).
		Return(nil).Once()

	service := NewNotificationService(soundPlayer, clock.NewManual())
	service.EmitTone()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("tone was not played")
	}
}

func TestEmitTone_SwallowsPlaybackErrors(t *testing.T) {
	soundPlayer := portsmocks.NewMockSoundPlayer(t)
	done := make(chan struct{})
	soundPlayer.EXPECT().PlayTone(domain.DefaultTone()).
		Run(func(domain.Tone) { close(done) }).
		Return(errors.New("no audio device")).Once()

	service := NewNotificationService(soundPlayer, clock.NewManual())

	assert.NotPanics(t, service.EmitTone)
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("tone was not attempted")
	}
}

func TestEmitTone_DoesNotBlock(t *testing.T) {
	soundPlayer := portsmocks.NewMockSoundPlayer(t)
	release := make(chan struct{})
	played := make(chan struct{})
	soundPlayer.EXPECT().PlayTone(domain.DefaultTone()).
		Run(func(domain.Tone) {
			<-release
			close(played)
		}).
		Return(nil).Once()

	service := NewNotificationService(soundPlayer, clock.NewManual())

	returned := make(chan struct{})
	go func() {
		service.EmitTone()
		close(returned)
	}()

	select {
	case <-returned:
	case <-time.After(time.Second):
		t.Fatal("EmitTone blocked on playback")
	}
	close(release)
	<-played
}

func TestEmitTone_Muted(t *testing.T) {
	soundPlayer := portsmocks.NewMockSoundPlayer(t)

	service := NewNotificationService(soundPlayer, clock.NewManual(), WithMuted(true))
	service.EmitTone()

	// Give a stray goroutine the chance to call the player
	time.Sleep(10 * time.Millisecond)
	soundPlayer.AssertNotCalled(t, "PlayTone", domain.DefaultTone())
}

func TestEmitFlash_TurnsOffAfterDuration(t *testing.T) {
	scheduler := clock.NewManual()
	service := NewNotificationService(portsmocks.NewMockSoundPlayer(t), scheduler)
	var events []bool
	service.OnFlash(func(on bool) { events = append(events, on) })

	service.EmitFlash()
	assert.Equal(t, []bool{true}, events)

	scheduler.Advance(699 * time.Millisecond)
	assert.Equal(t, []bool{true}, events)

	scheduler.Advance(time.Millisecond)
	assert.Equal(t, []bool{true, false}, events)
}

func TestEmitFlash_OverlappingCallsEachClear(t *testing.T) {
	scheduler := clock.NewManual()
	service := NewNotificationService(portsmocks.NewMockSoundPlayer(t), scheduler,
		WithFlashDuration(100*time.Millisecond))
	var events []bool
	service.OnFlash(func(on bool) { events = append(events, on) })

	service.EmitFlash()
	scheduler.Advance(50 * time.Millisecond)
	service.EmitFlash()
	scheduler.Advance(time.Second)

	assert.Equal(t, []bool{true, true, false, false}, events)
	assert.Equal(t, 0, scheduler.Pending())
}

func TestPlayTone_ReturnsErrors(t *testing.T) {
	soundPlayer := portsmocks.NewMockSoundPlayer(t)
	tone := domain.Tone{FrequencyHz: 440, Volume: 0.3}
	soundPlayer.EXPECT().PlayTone(tone).Return(errors.New("boom")).Once()

	service := NewNotificationService(soundPlayer, clock.NewManual(), WithTone(tone))

	require.Error(t, service.PlayTone())
}

func TestNotificationService_DrivenByTimer(t *testing.T) {
	scheduler := clock.NewManual()
	soundPlayer := portsmocks.NewMockSoundPlayer(t)
	toned := make(chan struct{}, 1)
	soundPlayer.EXPECT().PlayTone(domain.DefaultTone()).
		Run(func(domain.Tone) { toned <- struct{}{} }).
		Return(nil).Once()

	notifier := NewNotificationService(soundPlayer, scheduler)
	var flashes []bool
	notifier.OnFlash(func(on bool) { flashes = append(flashes, on) })

	timer, err := NewTimerService(domain.DefaultPlan(), scheduler, notifier, WithInterval(5))
	require.NoError(t, err)

	timer.Start()
	scheduler.Advance(5 * time.Second)
	assert.Equal(t, []bool{true}, flashes)

	scheduler.Advance(time.Second)
	assert.Equal(t, []bool{true, false}, flashes)

	select {
	case <-toned:
	case <-time.After(time.Second):
		t.Fatal("tone was not played")
	}
	assert.Equal(t, domain.Position{ExerciseID: 1, SetIndex: 2, SetCount: 4}, timer.CurrentPosition())
}
