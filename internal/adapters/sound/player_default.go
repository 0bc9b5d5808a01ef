//go:build !darwin && !linux && !windows

package sound

// playWAV falls back to terminal bell on unsupported platforms
func playWAV(wav []byte) error {
	return terminalBell()
}
