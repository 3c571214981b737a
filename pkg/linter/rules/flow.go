package rules

import (
	"fmt"

	"github.com/platinummonkey/yamllint/pkg/linter"
	"github.com/platinummonkey/yamllint/pkg/token"
)

// FlowCollectionRule controls the spaces inside the delimiters of flow
// sequences ("brackets") or flow mappings ("braces")
type FlowCollectionRule struct {
	BaseRule
	open, close token.Kind
	noun        string
}

func newFlowCollectionRule(id, noun string, openKind, closeKind token.Kind) *FlowCollectionRule {
	return &FlowCollectionRule{
		BaseRule: BaseRule{
			RuleID:          id,
			RuleDescription: "Spaces inside " + noun,
			RuleSeverity:    linter.SeverityError,
			RuleOptions: []linter.Option{
				linter.IntOption("min-spaces-inside", 0, "minimal number of spaces required inside "+noun+" (-1 to disable)"),
				linter.IntOption("max-spaces-inside", 0, "maximal number of spaces allowed inside "+noun+" (-1 to disable)"),
				linter.IntOption("min-spaces-inside-empty", -1, "minimal number of spaces required inside empty "+noun+" (-1 to use min-spaces-inside)"),
				linter.IntOption("max-spaces-inside-empty", -1, "maximal number of spaces allowed inside empty "+noun+" (-1 to use max-spaces-inside)"),
			},
		},
		open:  openKind,
		close: closeKind,
		noun:  noun,
	}
}

// NewBracketsRule creates the rule checking flow sequences, [ ... ]
func NewBracketsRule() *FlowCollectionRule {
	return newFlowCollectionRule("brackets", "brackets", token.FlowSequenceStart, token.FlowSequenceEnd)
}

// NewBracesRule creates the rule checking flow mappings, { ... }
func NewBracesRule() *FlowCollectionRule {
	return newFlowCollectionRule("braces", "braces", token.FlowMappingStart, token.FlowMappingEnd)
}

// Validate rejects a minimum above the maximum
func (r *FlowCollectionRule) Validate(conf linter.RuleConfig) error {
	if err := checkRange(conf, "min-spaces-inside", "max-spaces-inside"); err != nil {
		return err
	}
	return checkRange(conf, "min-spaces-inside-empty", "max-spaces-inside-empty")
}

type flowChecker struct {
	rule *FlowCollectionRule

	minInside, maxInside           int
	minInsideEmpty, maxInsideEmpty int
}

// Configure binds the resolved options. Unset empty thresholds inherit
// the regular ones.
func (r *FlowCollectionRule) Configure(conf linter.RuleConfig) (linter.Checker, error) {
	c := &flowChecker{
		rule:           r,
		minInside:      conf.Int("min-spaces-inside"),
		maxInside:      conf.Int("max-spaces-inside"),
		minInsideEmpty: conf.Int("min-spaces-inside-empty"),
		maxInsideEmpty: conf.Int("max-spaces-inside-empty"),
	}
	if c.minInsideEmpty == linter.Disabled {
		c.minInsideEmpty = c.minInside
	}
	if c.maxInsideEmpty == linter.Disabled {
		c.maxInsideEmpty = c.maxInside
	}
	return c, nil
}

func (c *flowChecker) Check(w linter.Window, _ *linter.Context) []linter.Problem {
	noun := c.rule.noun

	switch {
	case w.Token.Kind == c.rule.open && w.Next.Kind == c.rule.close:
		return problems(linter.SpacesAfter(w.Token, w.Next, c.minInsideEmpty, c.maxInsideEmpty,
			"too few spaces inside empty "+noun, "too many spaces inside empty "+noun))

	case w.Token.Kind == c.rule.open:
		return problems(linter.SpacesAfter(w.Token, w.Next, c.minInside, c.maxInside,
			"too few spaces inside "+noun, "too many spaces inside "+noun))

	case w.Token.Kind == c.rule.close && w.Prev.Kind != c.rule.open:
		return problems(linter.SpacesBefore(w.Token, w.Prev, c.minInside, c.maxInside,
			"too few spaces inside "+noun, "too many spaces inside "+noun))
	}
	return nil
}

// checkRange reports a configuration where both thresholds are enabled
// and the minimum exceeds the maximum
func checkRange(conf linter.RuleConfig, minName, maxName string) error {
	lo, hi := conf.Int(minName), conf.Int(maxName)
	if lo != linter.Disabled && hi != linter.Disabled && lo > hi {
		return fmt.Errorf("%s (%d) is greater than %s (%d)", minName, lo, maxName, hi)
	}
	return nil
}
