package cmd

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/renato0307/gymtimer/internal/config"
	"github.com/renato0307/gymtimer/internal/logging"
)

// CLI represents the command-line interface structure
type CLI struct {
	Version     kong.VersionFlag `help:"Show version information"`
	Debug       bool             `help:"Enable debug logging to file" short:"d"`
	DebugFile   string           `help:"Custom path for debug log file (disables automatic cleanup)"`
	MaxLogFiles int              `help:"Maximum number of log files to keep (0 = unlimited)" default:"1000"`

	Run      RunCmd      `cmd:"" help:"Start the workout timer (default)" default:"1"`
	Beep     BeepCmd     `cmd:"beep" help:"Play the interval tone once"`
	Plan     PlanCmd     `cmd:"plan" help:"Show the workout plan"`
	Simulate SimulateCmd `cmd:"simulate" help:"Run the timer without a screen and print each set change"`
	Settings SettingsCmd `cmd:"settings" help:"Show settings file location, options and key bindings"`

	// Internal fields (not flags)
	Container *Container       `kong:"-"`
	settings  *config.Settings `kong:"-"`
}

// SetSettings sets the settings on the CLI struct
func (c *CLI) SetSettings(settings *config.Settings) {
	c.settings = settings
}

// AfterApply initializes logging after CLI parsing and applies settings
func (c *CLI) AfterApply() error {
	// Precedence: CLI flags > env vars > settings.json > defaults
	if c.settings != nil {
		applyIntSetting(&c.MaxLogFiles, logging.DefaultMaxLogFiles, logging.EnvMaxLogFiles, c.settings.MaxLogFiles)
		applyBoolSetting(&c.Debug, logging.EnvDebug, c.settings.Debug)
	}

	if _, err := logging.Initialize(c.Debug, c.DebugFile, c.MaxLogFiles); err != nil {
		return err
	}

	container, err := NewContainer()
	if err != nil {
		return fmt.Errorf("failed to initialize container: %w", err)
	}
	c.Container = container

	return nil
}

// Close closes all resources held by the CLI
func (c *CLI) Close() error {
	if c.Container != nil {
		return c.Container.Close()
	}
	return nil
}

// applyIntSetting copies a settings value into flag when the flag still holds
// its default and no environment variable was given.
func applyIntSetting(flag *int, def int, env string, setting *int) {
	if setting == nil || *flag != def || hasEnv(env) {
		return
	}
	*flag = *setting
}

func applyFloatSetting(flag *float64, def float64, env string, setting *float64) {
	if setting == nil || *flag != def || hasEnv(env) {
		return
	}
	*flag = *setting
}

// applyBoolSetting only turns a flag on; false in settings.json keeps the default
func applyBoolSetting(flag *bool, env string, setting *bool) {
	if setting == nil || *flag || hasEnv(env) {
		return
	}
	*flag = *setting
}

func hasEnv(name string) bool {
	if name == "" {
		return false
	}
	_, ok := os.LookupEnv(name)
	return ok
}
