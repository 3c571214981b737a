package linter

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// OptionType is the value domain of a rule option
type OptionType int

const (
	OptionInt OptionType = iota
	OptionBool
	OptionEnum
)

var optionTypeNames = [...]string{
	OptionInt:  "int",
	OptionBool: "bool",
	OptionEnum: "enum",
}

func (t OptionType) String() string {
	if t < 0 || int(t) >= len(optionTypeNames) {
		return fmt.Sprintf("OptionType(%d)", int(t))
	}
	return optionTypeNames[t]
}

// Option declares a named configuration slot of a rule
type Option struct {
	Name        string
	Type        OptionType
	Default     interface{}
	Description string
	Choices     []string // OptionEnum only
}

// IntOption declares an integer option where -1 disables the check
func IntOption(name string, def int, description string) Option {
	return Option{Name: name, Type: OptionInt, Default: def, Description: description}
}

// BoolOption declares a boolean option
func BoolOption(name string, def bool, description string) Option {
	return Option{Name: name, Type: OptionBool, Default: def, Description: description}
}

// EnumOption declares a string option restricted to choices
func EnumOption(name, def string, choices []string, description string) Option {
	return Option{Name: name, Type: OptionEnum, Default: def, Description: description, Choices: choices}
}

// normalize validates a user supplied value and converts it to the
// option's canonical Go type
func (o Option) normalize(v interface{}) (interface{}, error) {
	switch o.Type {
	case OptionInt:
		// every integer option is bounded to int32 whatever the decoded type
		var n int64
		switch x := v.(type) {
		case int:
			n = int64(x)
		case int64:
			n = x
		case uint64:
			if x > math.MaxInt32 {
				return nil, fmt.Errorf("value %d out of range", x)
			}
			n = int64(x)
		case float64:
			if x != math.Trunc(x) {
				return nil, fmt.Errorf("expected an integer, got %v", x)
			}
			if x > math.MaxInt32 || x < math.MinInt32 {
				return nil, fmt.Errorf("value %v out of range", x)
			}
			n = int64(x)
		default:
			return nil, fmt.Errorf("expected an integer, got %T", v)
		}
		if n > math.MaxInt32 {
			return nil, fmt.Errorf("value %d out of range", n)
		}
		if n < Disabled {
			return nil, fmt.Errorf("must be -1 (disabled) or >= 0, got %d", n)
		}
		return int(n), nil

	case OptionBool:
		b, ok := v.(bool)
		if !ok {
			return nil, fmt.Errorf("expected a boolean, got %T", v)
		}
		return b, nil

	case OptionEnum:
		s, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("expected one of %s, got %T", strings.Join(o.Choices, ", "), v)
		}
		for _, c := range o.Choices {
			if c == s {
				return s, nil
			}
		}
		return nil, fmt.Errorf("expected one of %s, got %q", strings.Join(o.Choices, ", "), s)
	}
	return nil, fmt.Errorf("unsupported option type %v", o.Type)
}

// RuleConfig holds the resolved option values of one rule for one run.
// It is immutable once built by the registry.
type RuleConfig struct {
	rule     string
	severity Severity
	values   map[string]interface{}
}

// NewRuleConfig resolves overrides on top of the option defaults. It is
// what the registry uses; rules and tests may call it directly.
func NewRuleConfig(rule string, options []Option, severity Severity, overrides map[string]interface{}) (RuleConfig, error) {
	values := make(map[string]interface{}, len(options))
	declared := make(map[string]Option, len(options))
	for _, opt := range options {
		values[opt.Name] = opt.Default
		declared[opt.Name] = opt
	}

	names := make([]string, 0, len(overrides))
	for name := range overrides {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		opt, ok := declared[name]
		if !ok {
			return RuleConfig{}, &ConfigError{Rule: rule, Option: name, Reason: "unknown option"}
		}
		v, err := opt.normalize(overrides[name])
		if err != nil {
			return RuleConfig{}, &ConfigError{Rule: rule, Option: name, Reason: err.Error()}
		}
		values[name] = v
	}

	return RuleConfig{rule: rule, severity: severity, values: values}, nil
}

// Rule returns the ID of the rule this config belongs to
func (c RuleConfig) Rule() string { return c.rule }

// Severity returns the configured level of the rule
func (c RuleConfig) Severity() Severity { return c.severity }

func (c RuleConfig) lookup(name string) interface{} {
	v, ok := c.values[name]
	if !ok {
		panic(fmt.Errorf("%w: %s.%s", ErrUnregisteredOption, c.rule, name))
	}
	return v
}

// Int returns an integer option. Reading an undeclared option panics.
func (c RuleConfig) Int(name string) int {
	n, ok := c.lookup(name).(int)
	if !ok {
		panic(fmt.Errorf("%w: %s.%s is not an int option", ErrUnregisteredOption, c.rule, name))
	}
	return n
}

// Bool returns a boolean option. Reading an undeclared option panics.
func (c RuleConfig) Bool(name string) bool {
	b, ok := c.lookup(name).(bool)
	if !ok {
		panic(fmt.Errorf("%w: %s.%s is not a bool option", ErrUnregisteredOption, c.rule, name))
	}
	return b
}

// String returns an enum option. Reading an undeclared option panics.
func (c RuleConfig) String(name string) string {
	s, ok := c.lookup(name).(string)
	if !ok {
		panic(fmt.Errorf("%w: %s.%s is not an enum option", ErrUnregisteredOption, c.rule, name))
	}
	return s
}

// Values returns a copy of the resolved option values
func (c RuleConfig) Values() map[string]interface{} {
	out := make(map[string]interface{}, len(c.values))
	for k, v := range c.values {
		out[k] = v
	}
	return out
}
