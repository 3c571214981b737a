package rules

import (
	"github.com/platinummonkey/yamllint/pkg/linter"
	"github.com/platinummonkey/yamllint/pkg/token"
)

// DocumentStartRule requires or forbids the "---" document start marker
type DocumentStartRule struct {
	BaseRule
}

// NewDocumentStartRule creates a new document-start rule
func NewDocumentStartRule() *DocumentStartRule {
	return &DocumentStartRule{
		BaseRule: BaseRule{
			RuleID:          "document-start",
			RuleDescription: "Presence of the document start marker",
			RuleSeverity:    linter.SeverityError,
			RuleOptions: []linter.Option{
				linter.BoolOption("present", true, "whether documents must (true) or must not (false) start with ---"),
			},
		},
	}
}

// Configure binds the resolved options
func (r *DocumentStartRule) Configure(conf linter.RuleConfig) (linter.Checker, error) {
	if conf.Bool("present") {
		return linter.CheckerFunc(requireDocumentStart), nil
	}
	return linter.CheckerFunc(forbidDocumentStart), nil
}

func requireDocumentStart(w linter.Window, _ *linter.Context) []linter.Problem {
	if w.Prev.Is(token.StreamStart, token.DocumentEnd, token.Directive) &&
		!w.Token.Is(token.DocumentStart, token.Directive, token.StreamEnd) {
		return []linter.Problem{{
			Position: linter.At(w.Token.Start.Line, 1),
			Message:  `missing document start "---"`,
		}}
	}
	return nil
}

func forbidDocumentStart(w linter.Window, _ *linter.Context) []linter.Problem {
	if w.Token.Kind == token.DocumentStart {
		return []linter.Problem{{
			Position: linter.At(w.Token.Start.Line, w.Token.Start.Column),
			Message:  `found forbidden document start "---"`,
		}}
	}
	return nil
}
