package rules

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/platinummonkey/yamllint/pkg/linter"
	"github.com/platinummonkey/yamllint/pkg/scanner"
	"github.com/platinummonkey/yamllint/pkg/token"
)

type ruleCase struct {
	name    string
	src     string
	options map[string]interface{}
	want    []string
}

// lint runs a single rule over src and renders problems as
// "line:column message"
func lint(t *testing.T, rule linter.Rule, options map[string]interface{}, src string) []string {
	t.Helper()

	conf, err := linter.NewRuleConfig(rule.ID(), rule.Options(), rule.Severity(), options)
	require.NoError(t, err)
	if v, ok := rule.(linter.Validator); ok {
		require.NoError(t, v.Validate(conf))
	}
	checker, err := rule.Configure(conf)
	require.NoError(t, err)

	tokens, err := scanner.Tokenize([]byte(src))
	require.NoError(t, err)

	active := []*linter.ActiveRule{{Rule: rule, Config: conf, Checker: checker}}
	problems, err := linter.NewDispatcher(token.NewSliceStream(tokens), active).Run()
	require.NoError(t, err)

	var out []string
	for _, p := range problems {
		assert.Equal(t, rule.ID(), p.Rule)
		out = append(out, fmt.Sprintf("%d:%d %s", p.Position.Line, p.Position.Column, p.Message))
	}
	return out
}

func runCases(t *testing.T, rule linter.Rule, tests []ruleCase) {
	t.Helper()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, lint(t, rule, tt.options, tt.src))
		})
	}
}

func TestDefaultRules(t *testing.T) {
	rules := DefaultRules()

	ids := make([]string, len(rules))
	for i, r := range rules {
		ids[i] = r.ID()
		assert.NotEmpty(t, r.Description(), r.ID())
		assert.Equal(t, linter.SeverityError, r.Severity(), r.ID())
	}
	assert.Equal(t, []string{"braces", "brackets", "colons", "commas", "hyphens", "document-start", "key-duplicates"}, ids)
}

func TestRegisterDefaultRules(t *testing.T) {
	registry := linter.NewRuleRegistry()
	RegisterDefaultRules(registry)
	assert.Equal(t, len(DefaultRules()), registry.Len())

	// every rule the presets mention is registered
	for _, preset := range linter.Presets() {
		config := &linter.Config{Extends: preset}
		_, err := registry.Resolve(config)
		assert.NoError(t, err, preset)

		settings, err := config.EffectiveRules()
		require.NoError(t, err)
		for id := range settings {
			_, ok := registry.GetRule(id)
			assert.True(t, ok, "%s: %s", preset, id)
		}
	}
}

func TestOptionsHaveDescriptions(t *testing.T) {
	for _, rule := range DefaultRules() {
		for _, opt := range rule.Options() {
			assert.NotEmpty(t, opt.Description, "%s.%s", rule.ID(), opt.Name)
		}
	}
}
