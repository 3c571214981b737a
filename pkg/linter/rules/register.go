package rules

import "github.com/platinummonkey/yamllint/pkg/linter"

// Registry interface for registering rules
type Registry interface {
	Register(rule linter.Rule)
}

// DefaultRules returns a fresh instance of every built-in rule, in
// registration order
func DefaultRules() []linter.Rule {
	return []linter.Rule{
		// Flow collection spacing
		NewBracesRule(),
		NewBracketsRule(),

		// Indicator spacing
		NewColonsRule(),
		NewCommasRule(),
		NewHyphensRule(),

		// Structure
		NewDocumentStartRule(),
		NewKeyDuplicatesRule(),
	}
}

// RegisterDefaultRules registers all built-in lint rules
func RegisterDefaultRules(registry Registry) {
	for _, rule := range DefaultRules() {
		registry.Register(rule)
	}
}
