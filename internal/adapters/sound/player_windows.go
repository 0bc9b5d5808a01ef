//go:build windows

package sound

import (
	"fmt"
	"os"
	"os/exec"
)

// playWAV plays sounds on Windows using PowerShell
func playWAV(wav []byte) error {
	path, err := writeTempWAV(wav)
	if err != nil {
		return terminalBell()
	}
	defer os.Remove(path)

	script := fmt.Sprintf("(New-Object System.Media.SoundPlayer '%s').PlaySync()", path)
	if err := exec.Command("powershell", "-NoProfile", "-c", script).Run(); err == nil {
		return nil
	}

	return terminalBell()
}
