package linter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSeverity(t *testing.T) {
	for _, level := range []string{"error", "warning", "info", "WARNING"} {
		_, err := ParseSeverity(level)
		assert.NoError(t, err, level)
	}

	_, err := ParseSeverity("fatal")
	assert.Error(t, err)
}

func TestProblemString(t *testing.T) {
	p := Problem{Position: At(3, 7), Rule: "colons", Message: "too many spaces after colon", Severity: SeverityError}
	assert.Equal(t, "3:7 error too many spaces after colon (colons)", p.String())
}

func TestAggregator_Order(t *testing.T) {
	agg := NewAggregator()
	agg.Add(1, Problem{Position: At(2, 1), Rule: "b", Message: "second line"})
	agg.Add(1, Problem{Position: At(1, 5), Rule: "b", Message: "b at 1:5"})
	agg.Add(0, Problem{Position: At(1, 5), Rule: "a", Message: "a at 1:5"})
	agg.Add(0, Problem{Position: At(1, 2), Rule: "a", Message: "first"})
	agg.Add(0, Problem{Position: At(1, 5), Rule: "a", Message: "a at 1:5 again"})

	got := agg.Problems()
	require.Len(t, got, 5)

	messages := make([]string, len(got))
	for i, p := range got {
		messages[i] = p.Message
	}
	assert.Equal(t, []string{
		"first",
		"a at 1:5",
		"a at 1:5 again",
		"b at 1:5",
		"second line",
	}, messages)
}

func TestAggregator_Dedupe(t *testing.T) {
	agg := NewAggregator()
	p := Problem{Position: At(1, 1), Rule: "colons", Message: "too many spaces after colon"}

	agg.Add(0, p)
	agg.Add(0, p)
	assert.Equal(t, 1, agg.Len())

	// a different rule or message is a different problem
	agg.Add(1, Problem{Position: At(1, 1), Rule: "commas", Message: "too many spaces after colon"})
	agg.Add(0, Problem{Position: At(1, 1), Rule: "colons", Message: "too many spaces before colon"})
	assert.Equal(t, 3, agg.Len())
}

func TestAggregator_Empty(t *testing.T) {
	agg := NewAggregator()
	assert.Empty(t, agg.Problems())
	assert.Equal(t, 0, agg.Len())
}
