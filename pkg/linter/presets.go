package linter

import (
	"embed"
	"fmt"
	"path"
	"sort"
	"strings"
)

// presetsFS embeds the built-in configurations usable with "extends"
//
//go:embed presets/*.yaml
var presetsFS embed.FS

// LoadPreset parses a built-in configuration by name
func LoadPreset(name string) (*Config, error) {
	data, err := presetsFS.ReadFile(path.Join("presets", name+".yaml"))
	if err != nil {
		return nil, &ConfigError{Reason: fmt.Sprintf("unknown preset %q (available: %s)", name, strings.Join(Presets(), ", "))}
	}
	return ParseConfig(data)
}

// Presets lists the built-in configuration names
func Presets() []string {
	entries, err := presetsFS.ReadDir("presets")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".yaml"))
	}
	sort.Strings(names)
	return names
}
