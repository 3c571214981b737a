package linter

import (
	"fmt"
	"runtime/debug"

	"github.com/platinummonkey/yamllint/pkg/token"
)

// Window is the view of the token stream a rule sees at one dispatch
// step. Absent neighbours are zero tokens (Kind None).
type Window struct {
	Token    token.Token
	Prev     token.Token
	Next     token.Token
	NextNext token.Token
}

// State is the lifecycle of a Dispatcher
type State int

const (
	StateBeforeStart State = iota
	StateRunning
	StateDone
)

func (s State) String() string {
	switch s {
	case StateBeforeStart:
		return "before-start"
	case StateRunning:
		return "running"
	case StateDone:
		return "done"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Dispatcher walks a token stream once and invokes every active rule on
// each token. One Dispatcher serves exactly one document pass.
type Dispatcher struct {
	stream token.Stream
	rules  []*ActiveRule
	state  State

	current   token.Token
	lookahead []token.Token
	exhausted bool

	steps int
}

// NewDispatcher creates a dispatcher over stream. Rules are invoked in the
// given order.
func NewDispatcher(stream token.Stream, rules []*ActiveRule) *Dispatcher {
	return &Dispatcher{
		stream:    stream,
		rules:     rules,
		lookahead: make([]token.Token, 0, 3),
	}
}

// State returns the current lifecycle state
func (d *Dispatcher) State() State {
	return d.state
}

// Steps returns how many tokens have been dispatched
func (d *Dispatcher) Steps() int {
	return d.steps
}

// fill pulls from the stream until n tokens are buffered or it runs dry
func (d *Dispatcher) fill(n int) {
	for len(d.lookahead) < n && !d.exhausted {
		tok, ok := d.stream.Next()
		if !ok {
			d.exhausted = true
			return
		}
		d.lookahead = append(d.lookahead, tok)
	}
}

func (d *Dispatcher) peek(i int) token.Token {
	if i < len(d.lookahead) {
		return d.lookahead[i]
	}
	return token.Token{}
}

// Step advances the window by one token. It returns false once the
// stream is exhausted, after which the dispatcher is Done.
func (d *Dispatcher) Step() (Window, bool) {
	if d.state == StateDone {
		return Window{}, false
	}

	d.fill(3)
	if len(d.lookahead) == 0 {
		d.state = StateDone
		return Window{}, false
	}

	prev := d.current
	d.current = d.lookahead[0]
	d.lookahead = d.lookahead[1:]
	d.state = StateRunning
	d.steps++

	return Window{
		Token:    d.current,
		Prev:     prev,
		Next:     d.peek(0),
		NextNext: d.peek(1),
	}, true
}

// Run dispatches every token to every rule and returns the aggregated
// problems. Rule panics do not stop the pass; they are collected and
// returned as a *DefectError alongside the problems found.
func (d *Dispatcher) Run() ([]Problem, error) {
	ctx := NewContext()
	agg := NewAggregator()
	var defects []RuleDefect

	for {
		w, ok := d.Step()
		if !ok {
			break
		}
		for _, rule := range d.rules {
			problems, defect := invoke(rule, w, ctx)
			if defect != nil {
				defects = append(defects, *defect)
				continue
			}
			for _, p := range problems {
				p.Rule = rule.ID()
				p.Severity = rule.Config.Severity()
				agg.Add(rule.Order, p)
			}
		}
	}

	if len(defects) > 0 {
		return agg.Problems(), &DefectError{Defects: defects}
	}
	return agg.Problems(), nil
}

func invoke(rule *ActiveRule, w Window, ctx *Context) (problems []Problem, defect *RuleDefect) {
	defer func() {
		if rec := recover(); rec != nil {
			problems = nil
			defect = &RuleDefect{Rule: rule.ID(), Token: w.Token, Value: rec, Stack: debug.Stack()}
		}
	}()
	return rule.Checker.Check(w, ctx), nil
}
