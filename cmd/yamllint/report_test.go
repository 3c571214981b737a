package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/platinummonkey/yamllint/pkg/linter"
)

func sampleResults() []linter.LintResult {
	return []linter.LintResult{
		{
			FilePath: "a.yaml",
			Problems: []linter.Problem{
				{Position: linter.At(1, 1), Rule: "document-start", Message: `missing document start "---"`, Severity: linter.SeverityWarning},
				{Position: linter.At(12, 6), Rule: "colons", Message: "too many spaces after colon", Severity: linter.SeverityError},
			},
		},
		{FilePath: "b.yaml"},
	}
}

func TestReport_Standard(t *testing.T) {
	var buf bytes.Buffer
	r, err := newReporter("standard", &buf)
	require.NoError(t, err)

	reported, err := report(r, sampleResults(), false)
	require.NoError(t, err)
	summary := linter.NewLintEngine(nil).GenerateSummary(reported)

	assert.Equal(t, "a.yaml\n"+
		`  1:1       warning  missing document start "---"  (document-start)`+"\n"+
		"  12:6      error    too many spaces after colon  (colons)\n"+
		"\n", buf.String())
	assert.Equal(t, linter.Summary{TotalFiles: 2, TotalProblems: 2, Errors: 1, Warnings: 1}, summary)
}

func TestReport_Parsable(t *testing.T) {
	var buf bytes.Buffer
	r, err := newReporter("parsable", &buf)
	require.NoError(t, err)

	_, err = report(r, sampleResults(), false)
	require.NoError(t, err)

	assert.Equal(t, `a.yaml:1:1: [warning] missing document start "---" (document-start)`+"\n"+
		"a.yaml:12:6: [error] too many spaces after colon (colons)\n", buf.String())
}

func TestReport_Colored(t *testing.T) {
	var buf bytes.Buffer
	r := &coloredReporter{out: &buf, s: newStyles(false)}

	_, err := report(r, sampleResults(), false)
	require.NoError(t, err)

	assert.Equal(t, "a.yaml\n"+
		`  1:1       warning  missing document start "---"  (document-start)`+"\n"+
		"  12:6      error    too many spaces after colon  (colons)\n"+
		"\n", buf.String())
}

func TestReport_ColoredEscapes(t *testing.T) {
	var buf bytes.Buffer
	r := &coloredReporter{out: &buf, s: newStyles(true)}

	_, err := report(r, sampleResults(), false)
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "\x1b[")
	assert.Contains(t, buf.String(), "too many spaces after colon")
}

func TestReport_GitHub(t *testing.T) {
	var buf bytes.Buffer
	r, err := newReporter("github", &buf)
	require.NoError(t, err)

	_, err = report(r, sampleResults(), false)
	require.NoError(t, err)

	assert.Equal(t, "::group::a.yaml\n"+
		`::warning file=a.yaml,line=1,col=1::1:1 [document-start] missing document start "---"`+"\n"+
		"::error file=a.yaml,line=12,col=6::12:6 [colons] too many spaces after colon\n"+
		"::endgroup::\n"+
		"\n", buf.String())
}

func TestReport_JSON(t *testing.T) {
	var buf bytes.Buffer
	r, err := newReporter("json", &buf)
	require.NoError(t, err)

	_, err = report(r, sampleResults(), false)
	require.NoError(t, err)

	var got []jsonProblem
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, jsonProblem{File: "a.yaml", Line: 12, Column: 6, Level: "error", Rule: "colons", Message: "too many spaces after colon"}, got[1])
}

func TestReport_JSONEmpty(t *testing.T) {
	var buf bytes.Buffer
	r, err := newReporter("json", &buf)
	require.NoError(t, err)

	_, err = report(r, nil, false)
	require.NoError(t, err)
	assert.Equal(t, "[]\n", buf.String())
}

func TestReport_ErrorsOnly(t *testing.T) {
	var buf bytes.Buffer
	r, err := newReporter("parsable", &buf)
	require.NoError(t, err)

	reported, err := report(r, sampleResults(), true)
	require.NoError(t, err)
	summary := linter.NewLintEngine(nil).GenerateSummary(reported)

	assert.Equal(t, "a.yaml:12:6: [error] too many spaces after colon (colons)\n", buf.String())
	assert.Equal(t, linter.Summary{TotalFiles: 2, TotalProblems: 1, Errors: 1}, summary)
}

func TestResolveFormat(t *testing.T) {
	t.Setenv("GITHUB_ACTIONS", "")
	assert.Equal(t, "json", resolveFormat("json"))
	// test output is never a terminal
	assert.Equal(t, "standard", resolveFormat("auto"))

	t.Setenv("GITHUB_ACTIONS", "true")
	t.Setenv("GITHUB_WORKFLOW", "ci")
	assert.Equal(t, "github", resolveFormat("auto"))
}

func TestNewReporter_Unknown(t *testing.T) {
	_, err := newReporter("xml", &bytes.Buffer{})
	assert.EqualError(t, err, "unknown output format: xml")
}
