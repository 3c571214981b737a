// Package linter provides the token-rule engine behind YAML style linting.
//
// # Overview
//
// A document is scanned into a forward-only token stream. The Dispatcher
// walks it once, exposing a Window (token, prev, next, nextnext) to every
// active rule in registration order, and the Aggregator orders and
// deduplicates what the rules report.
//
// # Rules
//
// A Rule declares its options once and binds a resolved RuleConfig into a
// Checker through Configure. Spacing rules build on SpacesBefore and
// SpacesAfter; stateful rules keep per-document memory in the Context,
// usually through a Namespace keyed by their ID.
//
// # Configuration
//
// Config is read from .yamllint, .yamllint.yaml or .yamllint.yml. It
// extends a built-in preset ("default" or "relaxed") and overrides rules:
//
//	extends: default
//	rules:
//	  colons:
//	    max-spaces-after: 2
//	  document-start: disable
//	  key-duplicates:
//	    level: warning
//
// Unknown rules or options and out-of-range values are reported as
// *ConfigError before any document is linted.
//
// # Usage Example
//
//	engine := linter.NewLintEngine(config, linter.WithCache(256))
//	rules.RegisterDefaultRules(engine.Registry())
//
//	result, err := engine.Lint("config.yaml", data)
//	if p, ok := linter.SyntaxProblem(err); ok {
//		fmt.Println(p)
//	}
//	for _, p := range result.Problems {
//		fmt.Println(p)
//	}
//
// # Errors
//
// A rule that panics does not abort the pass. The remaining rules and
// tokens are still evaluated and the panic is returned as a *DefectError
// alongside the problems found.
//
// # Related Packages
//
//   - pkg/token: Token model and streams
//   - pkg/scanner: YAML tokenizer
//   - pkg/linter/rules: Built-in rules
package linter
