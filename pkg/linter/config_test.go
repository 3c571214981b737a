package linter

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	require.NotNil(t, config)
	assert.Equal(t, "default", config.Extends)
	assert.Empty(t, config.Rules)
	assert.Equal(t, []string{"*.yaml", "*.yml", ".yamllint"}, config.YAMLFiles)
}

func TestLoadConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "test-config.yaml")

	configContent := `extends: relaxed
rules:
  colons:
    max-spaces-after: 2
    level: error
  document-start: enable
  key-duplicates: disable
ignore: |
  vendor/
  *.generated.yaml
yaml-files:
  - "*.yaml"
`
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0644))

	config, err := LoadConfig(configPath)
	require.NoError(t, err)

	assert.Equal(t, "relaxed", config.Extends)
	assert.Equal(t, RuleSettings{
		Enabled: true,
		Level:   "error",
		Options: map[string]interface{}{"max-spaces-after": 2},
	}, config.Rules["colons"])
	assert.Equal(t, RuleSettings{Enabled: true}, config.Rules["document-start"])
	assert.Equal(t, RuleSettings{Enabled: false}, config.Rules["key-duplicates"])
	assert.Equal(t, Patterns{"vendor/", "*.generated.yaml"}, config.Ignore)
	assert.Equal(t, []string{"*.yaml"}, config.YAMLFiles)
}

func TestLoadConfig_NonExistent(t *testing.T) {
	_, err := LoadConfig("/nonexistent/path/config.yaml")
	assert.Error(t, err)
}

func TestLoadConfig_InvalidYAML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("rules: [unclosed"), 0644))

	_, err := LoadConfig(configPath)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestParseConfig_RuleSettings(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    RuleSettings
		wantErr bool
	}{
		{"enable", "rules: {colons: enable}", RuleSettings{Enabled: true}, false},
		{"disable", "rules: {colons: disable}", RuleSettings{Enabled: false}, false},
		{"level only", "rules: {colons: {level: warning}}", RuleSettings{Enabled: true, Level: "warning", Options: map[string]interface{}{}}, false},
		{"options", "rules: {colons: {max-spaces-before: -1}}", RuleSettings{Enabled: true, Options: map[string]interface{}{"max-spaces-before": -1}}, false},
		{"bad scalar", "rules: {colons: on}", RuleSettings{}, true},
		{"bad level", "rules: {colons: {level: 3}}", RuleSettings{}, true},
		{"sequence", "rules: {colons: [1, 2]}", RuleSettings{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config, err := ParseConfig([]byte(tt.input))
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidConfig)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, config.Rules["colons"])
		})
	}
}

func TestParseConfig_IgnoreList(t *testing.T) {
	config, err := ParseConfig([]byte("ignore:\n  - build/\n  - '*.lock.yaml'\n"))
	require.NoError(t, err)
	assert.Equal(t, Patterns{"build/", "*.lock.yaml"}, config.Ignore)
}

func TestLoadConfigFromDir(t *testing.T) {
	tmpDir := t.TempDir()

	config, err := LoadConfigFromDir(tmpDir)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), config)

	configPath := filepath.Join(tmpDir, ".yamllint.yml")
	require.NoError(t, os.WriteFile(configPath, []byte("extends: relaxed\n"), 0644))

	config, err = LoadConfigFromDir(tmpDir)
	require.NoError(t, err)
	assert.Equal(t, "relaxed", config.Extends)

	// .yamllint wins over the suffixed names
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, ".yamllint"), []byte("extends: default\n"), 0644))
	config, err = LoadConfigFromDir(tmpDir)
	require.NoError(t, err)
	assert.Equal(t, "default", config.Extends)
}

func TestSaveConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "saved.yaml")

	config := DefaultConfig()
	config.Rules["colons"] = RuleSettings{Enabled: true, Level: "warning", Options: map[string]interface{}{"max-spaces-after": 2}}
	config.Rules["document-start"] = RuleSettings{Enabled: false}
	config.Rules["hyphens"] = RuleSettings{Enabled: true}

	require.NoError(t, SaveConfig(config, configPath))

	loaded, err := LoadConfig(configPath)
	require.NoError(t, err)
	assert.Equal(t, config, loaded)
}

func TestRuleSettings_MarshalYAML(t *testing.T) {
	out, err := yaml.Marshal(map[string]RuleSettings{
		"a": {Enabled: false},
		"b": {Enabled: true},
		"c": {Enabled: true, Level: "info"},
	})
	require.NoError(t, err)
	assert.Equal(t, "a: disable\nb: enable\nc:\n    level: info\n", string(out))
}

func TestEffectiveRules_Default(t *testing.T) {
	rules, err := DefaultConfig().EffectiveRules()
	require.NoError(t, err)

	for _, id := range []string{"braces", "brackets", "colons", "commas", "document-start", "hyphens", "key-duplicates"} {
		assert.True(t, rules[id].Enabled, id)
	}
	assert.Equal(t, "warning", rules["document-start"].Level)
	assert.Equal(t, 1, rules["colons"].Options["max-spaces-after"])
}

func TestEffectiveRules_Relaxed(t *testing.T) {
	config := &Config{Extends: "relaxed"}
	rules, err := config.EffectiveRules()
	require.NoError(t, err)

	assert.False(t, rules["document-start"].Enabled)
	assert.Equal(t, "warning", rules["brackets"].Level)
	assert.Equal(t, 1, rules["brackets"].Options["max-spaces-inside"])
	// inherited from default
	assert.Equal(t, 0, rules["brackets"].Options["min-spaces-inside"])
	assert.Equal(t, "warning", rules["colons"].Level)
	assert.Equal(t, 0, rules["colons"].Options["max-spaces-before"])
}

func TestEffectiveRules_Override(t *testing.T) {
	config, err := ParseConfig([]byte(`extends: relaxed
rules:
  colons:
    max-spaces-after: 3
  document-start: enable
  commas: disable
`))
	require.NoError(t, err)

	rules, err := config.EffectiveRules()
	require.NoError(t, err)

	assert.Equal(t, 3, rules["colons"].Options["max-spaces-after"])
	assert.Equal(t, 0, rules["colons"].Options["max-spaces-before"])
	assert.Equal(t, "warning", rules["colons"].Level)

	// "enable" revives the rule with the options of the chain
	assert.True(t, rules["document-start"].Enabled)
	assert.Equal(t, true, rules["document-start"].Options["present"])

	assert.False(t, rules["commas"].Enabled)
}

func TestEffectiveRules_UnknownPreset(t *testing.T) {
	config := &Config{Extends: "strictest"}
	_, err := config.EffectiveRules()
	assert.ErrorIs(t, err, ErrInvalidConfig)
	assert.Contains(t, err.Error(), "relaxed")
}

func TestPresets(t *testing.T) {
	assert.Equal(t, []string{"default", "relaxed"}, Presets())
}
