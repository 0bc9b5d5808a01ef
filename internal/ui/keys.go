package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/renato0307/gymtimer/internal/config"
)

// KeyMap contains all keyboard shortcuts of the timer screen
type KeyMap struct {
	ForceQuit key.Binding
	Help      key.Binding
	NextSet   key.Binding
	Quit      key.Binding
	Restart   key.Binding
	Toggle    key.Binding
}

// NewKeyMap creates a new KeyMap with all key bindings initialized.
// Pass nil for customKeys to use default bindings.
func NewKeyMap(customKeys config.KeyBindingsConfig) KeyMap {
	defaults := GetDefaultKeyBindings()
	return KeyMap{
		ForceQuit: buildBinding("force_quit", defaults, customKeys),
		Help:      buildBinding("help", defaults, customKeys),
		NextSet:   buildBinding("next_set", defaults, customKeys),
		Quit:      buildBinding("quit", defaults, customKeys),
		Restart:   buildBinding("restart", defaults, customKeys),
		Toggle:    buildBinding("toggle", defaults, customKeys),
	}
}

// ShortHelp returns the bindings shown in the footer (implements help.KeyMap)
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.NextSet, k.Restart, k.Help, k.Quit}
}

// FullHelp returns the bindings shown in the expanded help (implements help.KeyMap)
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Toggle, k.NextSet, k.Restart},
		{k.Help, k.Quit, k.ForceQuit},
	}
}

// buildBinding creates a key.Binding from the key definition, using custom keys if provided
func buildBinding(name string, defaults map[string][]string, customKeys config.KeyBindingsConfig) key.Binding {
	def := GetKeyDefinition(name)
	if def == nil {
		panic("unknown key definition: " + name)
	}

	keys := defaults[name]
	if custom, ok := customKeys[name]; ok && len(custom) > 0 {
		keys = custom
	}

	// Bubble Tea reports the space bar as " "
	matchKeys := make([]string, 0, len(keys))
	for _, k := range keys {
		if k == "space" {
			matchKeys = append(matchKeys, " ")
		}
		matchKeys = append(matchKeys, k)
	}

	return key.NewBinding(
		key.WithKeys(matchKeys...),
		key.WithHelp(strings.Join(keys, "/"), def.Help),
	)
}
