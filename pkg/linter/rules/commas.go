package rules

import (
	"github.com/platinummonkey/yamllint/pkg/linter"
	"github.com/platinummonkey/yamllint/pkg/token"
)

// CommasRule controls the number of spaces before and after commas in
// flow collections
type CommasRule struct {
	BaseRule
}

// NewCommasRule creates a new commas rule
func NewCommasRule() *CommasRule {
	return &CommasRule{
		BaseRule: BaseRule{
			RuleID:          "commas",
			RuleDescription: "Spaces before and after commas",
			RuleSeverity:    linter.SeverityError,
			RuleOptions: []linter.Option{
				linter.IntOption("max-spaces-before", 0, "maximal number of spaces allowed before commas (-1 to disable)"),
				linter.IntOption("min-spaces-after", 1, "minimal number of spaces required after commas (-1 to disable)"),
				linter.IntOption("max-spaces-after", 1, "maximal number of spaces allowed after commas (-1 to disable)"),
			},
		},
	}
}

type commasChecker struct {
	maxSpacesBefore int
	minSpacesAfter  int
	maxSpacesAfter  int
}

// Validate rejects a minimum above the maximum
func (r *CommasRule) Validate(conf linter.RuleConfig) error {
	return checkRange(conf, "min-spaces-after", "max-spaces-after")
}

// Configure binds the resolved options
func (r *CommasRule) Configure(conf linter.RuleConfig) (linter.Checker, error) {
	return &commasChecker{
		maxSpacesBefore: conf.Int("max-spaces-before"),
		minSpacesAfter:  conf.Int("min-spaces-after"),
		maxSpacesAfter:  conf.Int("max-spaces-after"),
	}, nil
}

func (c *commasChecker) Check(w linter.Window, _ *linter.Context) []linter.Problem {
	if w.Token.Kind != token.FlowEntry {
		return nil
	}

	var before *linter.Problem
	if !w.Prev.IsZero() && c.maxSpacesBefore != linter.Disabled && w.Prev.End.Line < w.Token.Start.Line {
		// a comma starting its own line is always misplaced
		before = &linter.Problem{
			Position: linter.At(w.Token.Start.Line, max(1, w.Token.Start.Column-1)),
			Message:  "too many spaces before comma",
		}
	} else {
		before = linter.SpacesBefore(w.Token, w.Prev, linter.Disabled, c.maxSpacesBefore,
			"", "too many spaces before comma")
	}

	after := linter.SpacesAfter(w.Token, w.Next, c.minSpacesAfter, c.maxSpacesAfter,
		"too few spaces after comma", "too many spaces after comma")

	return problems(before, after)
}
