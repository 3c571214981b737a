package rules

import (
	"github.com/platinummonkey/yamllint/pkg/linter"
	"github.com/platinummonkey/yamllint/pkg/token"
)

// ColonsRule controls the number of spaces before and after colons, and
// after the question mark of explicit keys.
//
//	colons: {max-spaces-before: 0, max-spaces-after: 1}
//
// accepts "key: value" and rejects "key :" and "key:  value".
type ColonsRule struct {
	BaseRule
}

// NewColonsRule creates a new colons rule
func NewColonsRule() *ColonsRule {
	return &ColonsRule{
		BaseRule: BaseRule{
			RuleID:          "colons",
			RuleDescription: "Spaces before and after colons",
			RuleSeverity:    linter.SeverityError,
			RuleOptions: []linter.Option{
				linter.IntOption("max-spaces-before", 0, "maximal number of spaces allowed before colons (-1 to disable)"),
				linter.IntOption("max-spaces-after", 1, "maximal number of spaces allowed after colons (-1 to disable)"),
			},
		},
	}
}

type colonsChecker struct {
	maxSpacesBefore int
	maxSpacesAfter  int
}

// Configure binds the resolved options
func (r *ColonsRule) Configure(conf linter.RuleConfig) (linter.Checker, error) {
	return &colonsChecker{
		maxSpacesBefore: conf.Int("max-spaces-before"),
		maxSpacesAfter:  conf.Int("max-spaces-after"),
	}, nil
}

func (c *colonsChecker) Check(w linter.Window, _ *linter.Context) []linter.Problem {
	switch {
	case w.Token.Kind == token.Value:
		var before *linter.Problem
		// "*alias : value" needs the space, a colon right after an alias
		// would be part of its name
		if !(w.Prev.Kind == token.Alias && w.Token.Start.Offset-w.Prev.End.Offset == 1) {
			before = linter.SpacesBefore(w.Token, w.Prev, linter.Disabled, c.maxSpacesBefore,
				"", "too many spaces before colon")
		}
		after := linter.SpacesAfter(w.Token, w.Next, linter.Disabled, c.maxSpacesAfter,
			"", "too many spaces after colon")
		return problems(before, after)

	case w.Token.IsExplicitKey():
		return problems(linter.SpacesAfter(w.Token, w.Next, linter.Disabled, c.maxSpacesAfter,
			"", "too many spaces after question mark"))
	}
	return nil
}
