package linter

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config represents the linting configuration
type Config struct {
	Extends   string                  `yaml:"extends,omitempty"`
	Rules     map[string]RuleSettings `yaml:"rules,omitempty"`
	Ignore    Patterns                `yaml:"ignore,omitempty"`
	YAMLFiles []string                `yaml:"yaml-files,omitempty"`
}

// RuleSettings is the user configuration of one rule: either "enable" /
// "disable", or a mapping of option values plus an optional "level".
type RuleSettings struct {
	Enabled bool
	Level   string
	Options map[string]interface{}
}

// Patterns is a list of gitignore-style patterns. In YAML it is either a
// sequence or a block string with one pattern per line.
type Patterns []string

// DefaultConfig returns default linting configuration
func DefaultConfig() *Config {
	return &Config{
		Extends:   "default",
		Rules:     make(map[string]RuleSettings),
		YAMLFiles: []string{"*.yaml", "*.yml", ".yamllint"},
	}
}

// ParseConfig decodes a configuration document
func ParseConfig(data []byte) (*Config, error) {
	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if config.Rules == nil {
		config.Rules = make(map[string]RuleSettings)
	}
	if len(config.YAMLFiles) == 0 {
		config.YAMLFiles = DefaultConfig().YAMLFiles
	}
	return &config, nil
}

// LoadConfig loads configuration from a file
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	config, err := ParseConfig(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return config, nil
}

// LoadConfigFromDir searches for config file in directory
func LoadConfigFromDir(dir string) (*Config, error) {
	configNames := []string{".yamllint", ".yamllint.yaml", ".yamllint.yml"}

	for _, name := range configNames {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return LoadConfig(path)
		}
	}

	// Return default if no config found
	return DefaultConfig(), nil
}

// SaveConfig saves configuration to a file
func SaveConfig(config *Config, path string) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// EffectiveRules resolves the preset chain named by Extends and merges
// the config's own rule settings on top of it
func (c *Config) EffectiveRules() (map[string]RuleSettings, error) {
	return c.effectiveRules(make(map[string]bool))
}

func (c *Config) effectiveRules(visited map[string]bool) (map[string]RuleSettings, error) {
	rules := make(map[string]RuleSettings)

	if c.Extends != "" {
		if visited[c.Extends] {
			return nil, &ConfigError{Reason: fmt.Sprintf("preset %q extends itself", c.Extends)}
		}
		visited[c.Extends] = true

		preset, err := LoadPreset(c.Extends)
		if err != nil {
			return nil, err
		}
		base, err := preset.effectiveRules(visited)
		if err != nil {
			return nil, err
		}
		rules = base
	}

	for id, s := range c.Rules {
		if base, ok := rules[id]; ok {
			rules[id] = base.merge(s)
			continue
		}
		rules[id] = s
	}

	return rules, nil
}

// merge applies override on top of s. Options present in both are taken
// from override; "enable" keeps the inherited options.
func (s RuleSettings) merge(override RuleSettings) RuleSettings {
	merged := RuleSettings{
		Enabled: override.Enabled,
		Level:   s.Level,
		Options: make(map[string]interface{}, len(s.Options)+len(override.Options)),
	}
	for k, v := range s.Options {
		merged.Options[k] = v
	}
	for k, v := range override.Options {
		merged.Options[k] = v
	}
	if override.Level != "" {
		merged.Level = override.Level
	}
	return merged
}

// UnmarshalYAML implements yaml.Unmarshaler
func (s *RuleSettings) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		switch value.Value {
		case "enable":
			*s = RuleSettings{Enabled: true}
		case "disable":
			*s = RuleSettings{Enabled: false}
		default:
			return fmt.Errorf("line %d: rule settings must be \"enable\", \"disable\" or a mapping, got %q", value.Line, value.Value)
		}
		return nil

	case yaml.MappingNode:
		var options map[string]interface{}
		if err := value.Decode(&options); err != nil {
			return err
		}
		settings := RuleSettings{Enabled: true, Options: options}
		if level, ok := options["level"]; ok {
			str, ok := level.(string)
			if !ok {
				return fmt.Errorf("line %d: level must be a string", value.Line)
			}
			settings.Level = str
			delete(options, "level")
		}
		*s = settings
		return nil
	}

	return fmt.Errorf("line %d: rule settings must be \"enable\", \"disable\" or a mapping", value.Line)
}

// MarshalYAML implements yaml.Marshaler
func (s RuleSettings) MarshalYAML() (interface{}, error) {
	if !s.Enabled {
		return "disable", nil
	}
	if len(s.Options) == 0 && s.Level == "" {
		return "enable", nil
	}
	out := make(map[string]interface{}, len(s.Options)+1)
	for k, v := range s.Options {
		out[k] = v
	}
	if s.Level != "" {
		out["level"] = s.Level
	}
	return out, nil
}

// UnmarshalYAML implements yaml.Unmarshaler
func (p *Patterns) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		var patterns Patterns
		for _, line := range strings.Split(value.Value, "\n") {
			if line = strings.TrimSpace(line); line != "" {
				patterns = append(patterns, line)
			}
		}
		*p = patterns
		return nil
	case yaml.SequenceNode:
		var patterns []string
		if err := value.Decode(&patterns); err != nil {
			return err
		}
		*p = patterns
		return nil
	}
	return fmt.Errorf("line %d: ignore must be a string or a list of patterns", value.Line)
}
