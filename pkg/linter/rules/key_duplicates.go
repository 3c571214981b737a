package rules

import (
	"fmt"

	"github.com/platinummonkey/yamllint/pkg/linter"
	"github.com/platinummonkey/yamllint/pkg/token"
)

// KeyDuplicatesRule reports keys repeated within the same mapping. It
// tracks the open collections of the document in the Context.
type KeyDuplicatesRule struct {
	BaseRule
}

// NewKeyDuplicatesRule creates a new key-duplicates rule
func NewKeyDuplicatesRule() *KeyDuplicatesRule {
	return &KeyDuplicatesRule{
		BaseRule: BaseRule{
			RuleID:          "key-duplicates",
			RuleDescription: "Duplicated keys in mappings",
			RuleSeverity:    linter.SeverityError,
			RuleOptions: []linter.Option{
				linter.BoolOption("forbid-duplicated-merge-keys", false, "also report repeated << merge keys"),
			},
		},
	}
}

// mergeKey is exempt from duplicate detection unless configured otherwise
const mergeKey = "<<"

// parent is one open collection
type parent struct {
	mapping bool
	keys    map[string]struct{}
}

type keyDuplicatesChecker struct {
	id             string
	forbidMergeDup bool
}

// Configure binds the resolved options
func (r *KeyDuplicatesRule) Configure(conf linter.RuleConfig) (linter.Checker, error) {
	return &keyDuplicatesChecker{
		id:             r.ID(),
		forbidMergeDup: conf.Bool("forbid-duplicated-merge-keys"),
	}, nil
}

func (c *keyDuplicatesChecker) Check(w linter.Window, ctx *linter.Context) []linter.Problem {
	store := ctx.Namespace(c.id)
	stack, _ := linter.Load[[]*parent](store, "stack")

	switch w.Token.Kind {
	case token.BlockMappingStart, token.FlowMappingStart:
		stack = append(stack, &parent{mapping: true, keys: make(map[string]struct{})})

	case token.BlockSequenceStart, token.FlowSequenceStart:
		stack = append(stack, &parent{})

	case token.BlockEnd, token.FlowMappingEnd, token.FlowSequenceEnd:
		if len(stack) > 0 {
			stack = stack[:len(stack)-1]
		}

	case token.Key:
		// keys of single-pair mappings inside flow sequences have no
		// mapping of their own on the stack
		if w.Next.Kind != token.Scalar || len(stack) == 0 || !stack[len(stack)-1].mapping {
			return nil
		}
		top := stack[len(stack)-1]
		key := w.Next.Value
		if _, dup := top.keys[key]; dup && (key != mergeKey || c.forbidMergeDup) {
			return []linter.Problem{{
				Position: linter.At(w.Next.Start.Line, w.Next.Start.Column),
				Message:  fmt.Sprintf(`duplication of key "%s" in mapping`, key),
			}}
		}
		top.keys[key] = struct{}{}
		return nil

	default:
		return nil
	}

	store.Set("stack", stack)
	return nil
}
