// Package harness provides utilities for integration testing the gymtimer CLI.
// It handles binary compilation, environment isolation, and command execution.
//
// Environment variables managed:
//   - GYMTIMER_HOME: Isolated per test (temp directory)
//   - GYMTIMER_DEBUG: Disabled to reduce noise
package harness
