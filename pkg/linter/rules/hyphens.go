package rules

import (
	"github.com/platinummonkey/yamllint/pkg/linter"
	"github.com/platinummonkey/yamllint/pkg/token"
)

// HyphensRule controls the number of spaces after block sequence hyphens
type HyphensRule struct {
	BaseRule
}

// NewHyphensRule creates a new hyphens rule
func NewHyphensRule() *HyphensRule {
	return &HyphensRule{
		BaseRule: BaseRule{
			RuleID:          "hyphens",
			RuleDescription: "Spaces after hyphens",
			RuleSeverity:    linter.SeverityError,
			RuleOptions: []linter.Option{
				linter.IntOption("max-spaces-after", 1, "maximal number of spaces allowed after hyphens (-1 to disable)"),
			},
		},
	}
}

// Configure binds the resolved options
func (r *HyphensRule) Configure(conf linter.RuleConfig) (linter.Checker, error) {
	maxSpacesAfter := conf.Int("max-spaces-after")

	return linter.CheckerFunc(func(w linter.Window, _ *linter.Context) []linter.Problem {
		if w.Token.Kind != token.BlockEntry {
			return nil
		}
		return problems(linter.SpacesAfter(w.Token, w.Next, linter.Disabled, maxSpacesAfter,
			"", "too many spaces after hyphen"))
	}), nil
}
