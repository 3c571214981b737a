package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindString(t *testing.T) {
	assert.Equal(t, "None", None.String())
	assert.Equal(t, "Value", Value.String())
	assert.Equal(t, "Scalar", Scalar.String())
	assert.Equal(t, "Kind(99)", Kind(99).String())
}

func TestTokenIsZero(t *testing.T) {
	assert.True(t, Token{}.IsZero())
	assert.False(t, Token{Kind: Scalar}.IsZero())
}

func TestTokenIsExplicitKey(t *testing.T) {
	tests := []struct {
		name string
		tok  Token
		want bool
	}{
		{
			name: "question mark",
			tok: Token{Kind: Key,
				Start: Position{Line: 1, Column: 1, Offset: 0},
				End:   Position{Line: 1, Column: 2, Offset: 1}},
			want: true,
		},
		{
			name: "implicit key",
			tok: Token{Kind: Key,
				Start: Position{Line: 1, Column: 1, Offset: 0},
				End:   Position{Line: 1, Column: 1, Offset: 0}},
			want: false,
		},
		{
			name: "value marker",
			tok: Token{Kind: Value,
				Start: Position{Line: 1, Column: 4, Offset: 3},
				End:   Position{Line: 1, Column: 5, Offset: 4}},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.tok.IsExplicitKey())
		})
	}
}

func TestTokenIs(t *testing.T) {
	tok := Token{Kind: FlowEntry}
	assert.True(t, tok.Is(FlowEntry))
	assert.True(t, tok.Is(Value, FlowEntry))
	assert.False(t, tok.Is(Value, Key))
	assert.False(t, tok.Is())
}

func TestSameLine(t *testing.T) {
	a := Token{Kind: Scalar, Start: Position{Line: 1, Column: 1}, End: Position{Line: 1, Column: 4}}
	b := Token{Kind: Value, Start: Position{Line: 1, Column: 4}, End: Position{Line: 1, Column: 5}}
	c := Token{Kind: Scalar, Start: Position{Line: 2, Column: 1}, End: Position{Line: 2, Column: 2}}

	assert.True(t, SameLine(a, b))
	assert.False(t, SameLine(b, c))
	assert.False(t, SameLine(Token{}, b))
	assert.False(t, SameLine(a, Token{}))
}

func TestSliceStream(t *testing.T) {
	tokens := []Token{{Kind: StreamStart}, {Kind: Scalar, Value: "a"}, {Kind: StreamEnd}}
	s := NewSliceStream(tokens)

	for _, want := range tokens {
		got, ok := s.Next()
		assert.True(t, ok)
		assert.Equal(t, want, got)
	}

	_, ok := s.Next()
	assert.False(t, ok)
	_, ok = s.Next()
	assert.False(t, ok, "exhausted stream stays exhausted")
}

func TestCollect(t *testing.T) {
	tokens := []Token{{Kind: StreamStart}, {Kind: StreamEnd}}
	assert.Equal(t, tokens, Collect(NewSliceStream(tokens)))
	assert.Nil(t, Collect(NewSliceStream(nil)))
}
