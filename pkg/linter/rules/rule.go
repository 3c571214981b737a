package rules

import (
	"github.com/platinummonkey/yamllint/pkg/linter"
)

// BaseRule provides common functionality for rules
type BaseRule struct {
	RuleID          string
	RuleDescription string
	RuleSeverity    linter.Severity
	RuleOptions     []linter.Option
}

func (r *BaseRule) ID() string                { return r.RuleID }
func (r *BaseRule) Description() string       { return r.RuleDescription }
func (r *BaseRule) Severity() linter.Severity { return r.RuleSeverity }
func (r *BaseRule) Options() []linter.Option  { return r.RuleOptions }

// problems collects the non-nil results of spacing checks
func problems(ps ...*linter.Problem) []linter.Problem {
	var out []linter.Problem
	for _, p := range ps {
		if p != nil {
			out = append(out, *p)
		}
	}
	return out
}
