package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/renato0307/gymtimer/internal/config"
	"github.com/renato0307/gymtimer/internal/logging"
	"github.com/renato0307/gymtimer/internal/ui"
)

// SettingsCmd manages settings
type SettingsCmd struct {
	Path    SettingsPathCmd    `cmd:"path" help:"Print the settings file location" default:"1"`
	Example SettingsExampleCmd `cmd:"example" help:"Print an example settings.json with every option"`
	Keys    SettingsKeysCmd    `cmd:"keys" help:"Manage key bindings"`
}

// SettingsPathCmd prints the settings file path
type SettingsPathCmd struct{}

// Run prints the path
func (s *SettingsPathCmd) Run(cli *CLI) error {
	fmt.Println(config.GetSettingsPath())
	return nil
}

// SettingsExampleCmd prints a settings.json with every field filled in
type SettingsExampleCmd struct{}

// Run prints the example
func (s *SettingsExampleCmd) Run(cli *CLI) error {
	data, err := json.MarshalIndent(config.GetSettingsExample(), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

// SettingsKeysCmd manages keyboard shortcuts
type SettingsKeysCmd struct {
	List SettingsKeysListCmd `cmd:"list" help:"List all key bindings (defaults and custom)" default:"1"`
	Set  SettingsKeysSetCmd  `cmd:"set" help:"Set a key binding"`
}

// SettingsKeysListCmd lists all key bindings
type SettingsKeysListCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

// Run executes the list command
func (s *SettingsKeysListCmd) Run(cli *CLI) error {
	var customKeys config.KeyBindingsConfig
	if cli.settings != nil {
		customKeys = cli.settings.Keys
	}

	if s.Format == "json" {
		return writeKeysJSON(os.Stdout, customKeys)
	}
	fmt.Printf("Key Bindings (settings file: %s)\n\n", config.GetSettingsPath())
	return writeKeysTable(os.Stdout, customKeys)
}

func writeKeysJSON(w io.Writer, customKeys config.KeyBindingsConfig) error {
	defaults := ui.GetDefaultKeyBindings()
	result := make(map[string]map[string]any)

	for _, name := range ui.GetValidKeyNames() {
		entry := map[string]any{"default": defaults[name]}
		if custom, ok := customKeys[name]; ok && len(custom) > 0 {
			entry["custom"] = []string(custom)
		}
		result[name] = entry
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	fmt.Fprintln(w, string(data))
	return nil
}

func writeKeysTable(w io.Writer, customKeys config.KeyBindingsConfig) error {
	defaults := ui.GetDefaultKeyBindings()

	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
	fmt.Fprintln(tw, "Name\tDefault\tCustom\tAction")
	fmt.Fprintln(tw, "────\t───────\t──────\t──────")

	for _, name := range ui.GetValidKeyNames() {
		custom := "-"
		if keys, ok := customKeys[name]; ok && len(keys) > 0 {
			custom = strings.Join(keys, ", ")
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
			name, strings.Join(defaults[name], ", "), custom, ui.GetKeyDefinition(name).Help)
	}

	return tw.Flush()
}

// SettingsKeysSetCmd sets a key binding
type SettingsKeysSetCmd struct {
	Key   string `arg:"" help:"Key name (e.g., toggle, next_set, quit)"`
	Value string `arg:"" help:"Key binding (e.g., p, ctrl+s, or comma-separated for multiple: n,right)"`
}

// Run validates the new binding and saves it to settings.json
func (s *SettingsKeysSetCmd) Run(cli *CLI) error {
	settings := cli.settings
	if settings == nil {
		settings = &config.Settings{}
	}

	updated := *settings
	updated.Keys = make(config.KeyBindingsConfig, len(settings.Keys)+1)
	for name, keys := range settings.Keys {
		updated.Keys[name] = keys
	}
	updated.Keys[s.Key] = parseKeyList(s.Value)

	if err := updated.Keys.Validate(ui.GetValidKeyNames()); err != nil {
		return err
	}
	if err := config.SaveSettings(&updated); err != nil {
		return err
	}

	logging.Logger.Info("Key binding saved", "name", s.Key, "keys", updated.Keys[s.Key])
	fmt.Printf("Set %s = %s\n", s.Key, strings.Join(updated.Keys[s.Key], ", "))
	return nil
}

func parseKeyList(value string) config.KeyBindingValue {
	parts := strings.Split(value, ",")
	keys := make(config.KeyBindingValue, 0, len(parts))
	for _, part := range parts {
		keys = append(keys, strings.TrimSpace(part))
	}
	return keys
}
