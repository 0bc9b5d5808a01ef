//go:build linux

package sound

import (
	"bytes"
	"os/exec"
)

// playWAV plays sounds on Linux using paplay (PulseAudio) or aplay (ALSA), fed from stdin
func playWAV(wav []byte) error {
	players := []struct {
		cmd  string
		args []string
	}{
		{"paplay", nil},
		{"aplay", []string{"-q", "-"}},
	}

	for _, player := range players {
		cmd := exec.Command(player.cmd, player.args...)
		cmd.Stdin = bytes.NewReader(wav)
		if err := cmd.Run(); err == nil {
			return nil
		}
	}

	return terminalBell()
}
