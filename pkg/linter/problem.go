package linter

import (
	"fmt"
	"sort"
	"strings"

	"github.com/platinummonkey/yamllint/pkg/token"
)

// Severity indicates how serious a problem is
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// ParseSeverity converts a configured level into a Severity
func ParseSeverity(level string) (Severity, error) {
	switch s := Severity(strings.ToLower(level)); s {
	case SeverityError, SeverityWarning, SeverityInfo:
		return s, nil
	default:
		return "", fmt.Errorf("unknown level %q (want error, warning or info)", level)
	}
}

// Problem is one stylistic violation. Only Line and Column of Position
// are set.
type Problem struct {
	Position token.Position
	Rule     string
	Message  string
	Severity Severity
}

func (p Problem) String() string {
	return fmt.Sprintf("%d:%d %s %s (%s)", p.Position.Line, p.Position.Column, p.Severity, p.Message, p.Rule)
}

// At builds a problem position
func At(line, column int) token.Position {
	return token.Position{Line: line, Column: column}
}

type problemKey struct {
	line, column  int
	rule, message string
}

type entry struct {
	problem Problem
	order   int
	seq     int
}

// Aggregator collects problems from every rule of a pass and yields them
// in a deterministic order
type Aggregator struct {
	entries []entry
	seen    map[problemKey]struct{}
}

// NewAggregator creates an empty aggregator
func NewAggregator() *Aggregator {
	return &Aggregator{seen: make(map[problemKey]struct{})}
}

// Add records a problem reported by the rule registered at position
// order. Identical (position, rule, message) tuples are kept once.
func (a *Aggregator) Add(order int, p Problem) {
	key := problemKey{p.Position.Line, p.Position.Column, p.Rule, p.Message}
	if _, dup := a.seen[key]; dup {
		return
	}
	a.seen[key] = struct{}{}
	a.entries = append(a.entries, entry{problem: p, order: order, seq: len(a.entries)})
}

// Len returns the number of distinct problems collected
func (a *Aggregator) Len() int {
	return len(a.entries)
}

// Problems returns the problems sorted by line, column, rule registration
// order and finally emission order
func (a *Aggregator) Problems() []Problem {
	sorted := make([]entry, len(a.entries))
	copy(sorted, a.entries)
	sort.Slice(sorted, func(i, j int) bool {
		pi, pj := sorted[i].problem.Position, sorted[j].problem.Position
		if pi.Line != pj.Line {
			return pi.Line < pj.Line
		}
		if pi.Column != pj.Column {
			return pi.Column < pj.Column
		}
		if sorted[i].order != sorted[j].order {
			return sorted[i].order < sorted[j].order
		}
		return sorted[i].seq < sorted[j].seq
	})

	problems := make([]Problem, len(sorted))
	for i, e := range sorted {
		problems[i] = e.problem
	}
	return problems
}
