package linter

import (
	"errors"
	"fmt"
	"strings"

	"github.com/platinummonkey/yamllint/pkg/token"
)

var (
	// ErrInvalidConfig is wrapped by every configuration error. These are
	// detected before any token is dispatched.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrUnregisteredOption is raised (as a panic value) when a rule reads
	// an option it never declared. It is a programming defect.
	ErrUnregisteredOption = errors.New("option not registered")

	// ErrRuleDefect is wrapped by DefectError
	ErrRuleDefect = errors.New("rule defect")

	// ErrScan is wrapped by Lint when the document cannot be tokenized
	ErrScan = errors.New("scan failed")
)

// ConfigError describes a configuration problem for one rule
type ConfigError struct {
	Rule   string
	Option string
	Reason string
}

func (e *ConfigError) Error() string {
	switch {
	case e.Rule == "":
		return fmt.Sprintf("invalid config: %s", e.Reason)
	case e.Option == "":
		return fmt.Sprintf("invalid config: rule %q: %s", e.Rule, e.Reason)
	default:
		return fmt.Sprintf("invalid config: rule %q: option %q: %s", e.Rule, e.Option, e.Reason)
	}
}

func (e *ConfigError) Unwrap() error {
	return ErrInvalidConfig
}

// ScanError is returned by Lint for a document that cannot be tokenized
type ScanError struct {
	Path string
	Err  error
}

func (e *ScanError) Error() string {
	return fmt.Sprintf("%s: %s: %v", ErrScan, e.Path, e.Err)
}

func (e *ScanError) Unwrap() []error {
	return []error{ErrScan, e.Err}
}

// RuleDefect records a panic raised by a rule while checking a token
type RuleDefect struct {
	Rule  string
	Token token.Token
	Value interface{}
	Stack []byte
}

func (d RuleDefect) Error() string {
	return fmt.Sprintf("rule %q panicked at %s: %v", d.Rule, d.Token, d.Value)
}

// DefectError collects the rule defects of one lint pass
type DefectError struct {
	Path    string
	Defects []RuleDefect
}

func (e *DefectError) Error() string {
	var sb strings.Builder
	if e.Path != "" {
		sb.WriteString(e.Path)
		sb.WriteString(": ")
	}
	fmt.Fprintf(&sb, "%d rule defect(s)", len(e.Defects))
	if len(e.Defects) > 0 {
		sb.WriteString(": ")
		sb.WriteString(e.Defects[0].Error())
	}
	return sb.String()
}

// Unwrap exposes ErrRuleDefect and any error values the rules panicked with
func (e *DefectError) Unwrap() []error {
	errs := []error{ErrRuleDefect}
	for _, d := range e.Defects {
		if err, ok := d.Value.(error); ok {
			errs = append(errs, err)
		}
	}
	return errs
}

// Rules returns the IDs of the defective rules, in order of first failure
func (e *DefectError) Rules() []string {
	seen := make(map[string]bool)
	var ids []string
	for _, d := range e.Defects {
		if !seen[d.Rule] {
			seen[d.Rule] = true
			ids = append(ids, d.Rule)
		}
	}
	return ids
}
