package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/platinummonkey/yamllint/pkg/linter"
)

// reporter renders the problems of one run
type reporter interface {
	File(path string, problems []linter.Problem)
	Finish() error
}

// styles holds color formatters for the colored format
type styles struct {
	file    *color.Color
	pos     *color.Color
	warning *color.Color
	error   *color.Color
	rule    *color.Color
}

// newStyles creates color formatters for report output
func newStyles(enabled bool) *styles {
	s := &styles{
		file:    color.New(color.Underline),
		pos:     color.New(color.Faint),
		warning: color.New(color.FgYellow),
		error:   color.New(color.FgRed),
		rule:    color.New(color.Faint),
	}

	if !enabled {
		s.file.DisableColor()
		s.pos.DisableColor()
		s.warning.DisableColor()
		s.error.DisableColor()
		s.rule.DisableColor()
	} else {
		s.file.EnableColor()
		s.pos.EnableColor()
		s.warning.EnableColor()
		s.error.EnableColor()
		s.rule.EnableColor()
	}

	return s
}

// resolveFormat picks the concrete format for "auto"
func resolveFormat(name string) string {
	if name != "auto" {
		return name
	}
	if os.Getenv("GITHUB_ACTIONS") != "" && os.Getenv("GITHUB_WORKFLOW") != "" {
		return "github"
	}
	if term.IsTerminal(int(os.Stdout.Fd())) && os.Getenv("NO_COLOR") == "" {
		return "colored"
	}
	return "standard"
}

func newReporter(name string, out io.Writer) (reporter, error) {
	switch resolveFormat(name) {
	case "standard":
		return &standardReporter{out: out}, nil
	case "parsable":
		return &parsableReporter{out: out}, nil
	case "colored":
		return &coloredReporter{out: out, s: newStyles(true)}, nil
	case "github":
		return &githubReporter{out: out}, nil
	case "json":
		return &jsonReporter{out: out, problems: make([]jsonProblem, 0)}, nil
	default:
		return nil, fmt.Errorf("unknown output format: %s", name)
	}
}

// report feeds results to r and returns what was reported. Non-error
// problems are dropped when errorsOnly is set.
func report(r reporter, results []linter.LintResult, errorsOnly bool) ([]linter.LintResult, error) {
	reported := make([]linter.LintResult, 0, len(results))
	for _, result := range results {
		if errorsOnly {
			var problems []linter.Problem
			for _, p := range result.Problems {
				if p.Severity == linter.SeverityError {
					problems = append(problems, p)
				}
			}
			result.Problems = problems
		}
		if len(result.Problems) > 0 {
			r.File(result.FilePath, result.Problems)
		}
		reported = append(reported, result)
	}
	return reported, r.Finish()
}

// pad appends spaces to line until it is width characters wide
func pad(line string, width int) string {
	if n := width - len(line); n > 0 {
		return line + strings.Repeat(" ", n)
	}
	return line
}

type standardReporter struct {
	out io.Writer
}

func (r *standardReporter) File(path string, problems []linter.Problem) {
	fmt.Fprintln(r.out, path)
	for _, p := range problems {
		line := pad(fmt.Sprintf("  %d:%d", p.Position.Line, p.Position.Column), 12)
		line = pad(line+string(p.Severity), 21)
		line += p.Message
		if p.Rule != "" {
			line += fmt.Sprintf("  (%s)", p.Rule)
		}
		fmt.Fprintln(r.out, line)
	}
	fmt.Fprintln(r.out)
}

func (r *standardReporter) Finish() error { return nil }

type parsableReporter struct {
	out io.Writer
}

func (r *parsableReporter) File(path string, problems []linter.Problem) {
	for _, p := range problems {
		fmt.Fprintf(r.out, "%s:%d:%d: [%s] %s (%s)\n",
			path, p.Position.Line, p.Position.Column, p.Severity, p.Message, p.Rule)
	}
}

func (r *parsableReporter) Finish() error { return nil }

type coloredReporter struct {
	out io.Writer
	s   *styles
}

func (r *coloredReporter) File(path string, problems []linter.Problem) {
	fmt.Fprintln(r.out, r.s.file.Sprint(path))
	for _, p := range problems {
		pos := fmt.Sprintf("%d:%d", p.Position.Line, p.Position.Column)
		level := string(p.Severity)
		levelStyle := r.s.error
		if p.Severity != linter.SeverityError {
			levelStyle = r.s.warning
		}

		// pad on the plain text so columns line up with and without color
		line := "  " + r.s.pos.Sprint(pos) + strings.Repeat(" ", max(0, 10-len(pos)))
		line += levelStyle.Sprint(level) + strings.Repeat(" ", max(0, 9-len(level)))
		line += p.Message
		if p.Rule != "" {
			line += "  " + r.s.rule.Sprintf("(%s)", p.Rule)
		}
		fmt.Fprintln(r.out, line)
	}
	fmt.Fprintln(r.out)
}

func (r *coloredReporter) Finish() error { return nil }

type githubReporter struct {
	out io.Writer
}

func (r *githubReporter) File(path string, problems []linter.Problem) {
	fmt.Fprintf(r.out, "::group::%s\n", path)
	for _, p := range problems {
		level := "warning"
		if p.Severity == linter.SeverityError {
			level = "error"
		}
		fmt.Fprintf(r.out, "::%s file=%s,line=%d,col=%d::%d:%d [%s] %s\n",
			level, path, p.Position.Line, p.Position.Column,
			p.Position.Line, p.Position.Column, p.Rule, p.Message)
	}
	fmt.Fprintln(r.out, "::endgroup::")
	fmt.Fprintln(r.out)
}

func (r *githubReporter) Finish() error { return nil }

type jsonProblem struct {
	File    string `json:"file"`
	Line    int    `json:"line"`
	Column  int    `json:"column"`
	Level   string `json:"level"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

type jsonReporter struct {
	out      io.Writer
	problems []jsonProblem
}

func (r *jsonReporter) File(path string, problems []linter.Problem) {
	for _, p := range problems {
		r.problems = append(r.problems, jsonProblem{
			File:    path,
			Line:    p.Position.Line,
			Column:  p.Position.Column,
			Level:   string(p.Severity),
			Rule:    p.Rule,
			Message: p.Message,
		})
	}
}

func (r *jsonReporter) Finish() error {
	encoder := json.NewEncoder(r.out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(r.problems)
}
