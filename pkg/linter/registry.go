package linter

import (
	"fmt"
	"runtime/debug"
	"sort"
)

// Rule is the interface that all lint rules must implement. A rule
// declares its options once; Configure binds a resolved RuleConfig into a
// Checker for one run.
type Rule interface {
	ID() string
	Description() string
	Severity() Severity
	Options() []Option
	Configure(conf RuleConfig) (Checker, error)
}

// Checker inspects one window of the token stream. Checkers are shared
// by concurrent document passes and must keep per-document state in the
// Context only.
type Checker interface {
	Check(w Window, ctx *Context) []Problem
}

// CheckerFunc adapts a function to the Checker interface
type CheckerFunc func(w Window, ctx *Context) []Problem

func (f CheckerFunc) Check(w Window, ctx *Context) []Problem {
	return f(w, ctx)
}

// Validator is implemented by rules with constraints spanning several
// options
type Validator interface {
	Validate(conf RuleConfig) error
}

// ActiveRule is a configured rule ready for dispatch
type ActiveRule struct {
	Rule    Rule
	Config  RuleConfig
	Checker Checker
	Order   int
}

// ID returns the rule ID
func (a *ActiveRule) ID() string {
	return a.Rule.ID()
}

// RuleRegistry manages available lint rules in registration order
type RuleRegistry struct {
	rules   []Rule
	index   map[string]int
	version int
}

// NewRuleRegistry creates a new rule registry
func NewRuleRegistry() *RuleRegistry {
	return &RuleRegistry{
		index: make(map[string]int),
	}
}

// Register adds a rule to the registry. Registering an ID again replaces
// the rule but keeps its original position.
func (r *RuleRegistry) Register(rule Rule) {
	r.version++
	if i, ok := r.index[rule.ID()]; ok {
		r.rules[i] = rule
		return
	}
	r.index[rule.ID()] = len(r.rules)
	r.rules = append(r.rules, rule)
}

// GetRule retrieves a rule by ID
func (r *RuleRegistry) GetRule(id string) (Rule, bool) {
	i, ok := r.index[id]
	if !ok {
		return nil, false
	}
	return r.rules[i], true
}

// GetAllRules returns all registered rules in registration order
func (r *RuleRegistry) GetAllRules() []Rule {
	rules := make([]Rule, len(r.rules))
	copy(rules, r.rules)
	return rules
}

// Len returns the number of registered rules
func (r *RuleRegistry) Len() int {
	return len(r.rules)
}

// Version changes every time the registry is modified
func (r *RuleRegistry) Version() int {
	return r.version
}

// Resolve merges cfg (and the presets it extends) over the option
// defaults of every registered rule and configures the enabled ones.
// Configuration problems are returned as *ConfigError before anything is
// linted; a rule panicking while being configured yields a *DefectError.
func (r *RuleRegistry) Resolve(cfg *Config) ([]*ActiveRule, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	settings, err := cfg.EffectiveRules()
	if err != nil {
		return nil, err
	}

	// presets may name rules that are not registered, the config itself
	// may not
	ids := make([]string, 0, len(cfg.Rules))
	for id := range cfg.Rules {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		if _, ok := r.index[id]; !ok {
			return nil, &ConfigError{Rule: id, Reason: "no such rule"}
		}
	}

	active := make([]*ActiveRule, 0, len(r.rules))
	for order, rule := range r.rules {
		s, ok := settings[rule.ID()]
		if !ok || !s.Enabled {
			continue
		}

		a, err := configure(rule, s, order)
		if err != nil {
			return nil, err
		}
		active = append(active, a)
	}

	return active, nil
}

func configure(rule Rule, s RuleSettings, order int) (a *ActiveRule, err error) {
	severity := rule.Severity()
	if s.Level != "" {
		severity, err = ParseSeverity(s.Level)
		if err != nil {
			return nil, &ConfigError{Rule: rule.ID(), Reason: err.Error()}
		}
	}

	conf, err := NewRuleConfig(rule.ID(), rule.Options(), severity, s.Options)
	if err != nil {
		return nil, err
	}

	defer func() {
		if rec := recover(); rec != nil {
			a = nil
			err = &DefectError{Defects: []RuleDefect{{Rule: rule.ID(), Value: rec, Stack: debug.Stack()}}}
		}
	}()

	if v, ok := rule.(Validator); ok {
		if err := v.Validate(conf); err != nil {
			return nil, &ConfigError{Rule: rule.ID(), Reason: err.Error()}
		}
	}

	checker, err := rule.Configure(conf)
	if err != nil {
		return nil, &ConfigError{Rule: rule.ID(), Reason: err.Error()}
	}
	if checker == nil {
		return nil, &ConfigError{Rule: rule.ID(), Reason: fmt.Sprintf("rule %q returned no checker", rule.ID())}
	}

	return &ActiveRule{Rule: rule, Config: conf, Checker: checker, Order: order}, nil
}
