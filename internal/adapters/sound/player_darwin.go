//go:build darwin

package sound

import (
	"os"
	"os/exec"
)

// playWAV plays sounds on macOS using afplay
func playWAV(wav []byte) error {
	path, err := writeTempWAV(wav)
	if err != nil {
		return terminalBell()
	}
	defer os.Remove(path)

	if err := exec.Command("afplay", path).Run(); err == nil {
		return nil
	}

	return terminalBell()
}
