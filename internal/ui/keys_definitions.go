package ui

import (
	"sort"
	"sync"
)

// KeyDefinition defines the metadata for a configurable key binding.
// All key bindings are defined here as the single source of truth.
type KeyDefinition struct {
	Defaults []string
	Help     string
	Name     string
}

// AllKeyDefinitions contains all configurable key bindings
var AllKeyDefinitions = []KeyDefinition{
	{Name: "force_quit", Defaults: []string{"ctrl+c"}, Help: "force quit"},
	{Name: "help", Defaults: []string{"?", "h"}, Help: "toggle help"},
	{Name: "next_set", Defaults: []string{"n", "right"}, Help: "next set"},
	{Name: "quit", Defaults: []string{"q"}, Help: "quit"},
	{Name: "restart", Defaults: []string{"r"}, Help: "restart workout"},
	{Name: "toggle", Defaults: []string{"space", "s"}, Help: "start / pause"},
}

var (
	defaultBindingsCache map[string][]string
	defaultBindingsOnce  sync.Once

	keyDefinitionsMap     map[string]KeyDefinition
	keyDefinitionsMapOnce sync.Once

	validKeyNames     []string
	validKeyNamesOnce sync.Once
)

// GetDefaultKeyBindings returns the default key bindings as a map.
// The result is cached after the first call.
func GetDefaultKeyBindings() map[string][]string {
	defaultBindingsOnce.Do(func() {
		defaultBindingsCache = make(map[string][]string, len(AllKeyDefinitions))
		for _, def := range AllKeyDefinitions {
			defaultBindingsCache[def.Name] = def.Defaults
		}
	})
	return defaultBindingsCache
}

// GetKeyDefinition returns the definition for name, or nil if it does not exist
func GetKeyDefinition(name string) *KeyDefinition {
	keyDefinitionsMapOnce.Do(func() {
		keyDefinitionsMap = make(map[string]KeyDefinition, len(AllKeyDefinitions))
		for _, def := range AllKeyDefinitions {
			keyDefinitionsMap[def.Name] = def
		}
	})
	def, ok := keyDefinitionsMap[name]
	if !ok {
		return nil
	}
	return &def
}

// GetValidKeyNames returns the sorted names accepted in the "keys" setting
func GetValidKeyNames() []string {
	validKeyNamesOnce.Do(func() {
		validKeyNames = make([]string, 0, len(AllKeyDefinitions))
		for _, def := range AllKeyDefinitions {
			validKeyNames = append(validKeyNames, def.Name)
		}
		sort.Strings(validKeyNames)
	})
	return validKeyNames
}
