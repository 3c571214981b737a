package token

// Stream is a forward-only sequence of tokens in document order.
// Next returns false once the stream is exhausted.
type Stream interface {
	Next() (Token, bool)
}

// SliceStream replays a slice of already scanned tokens once.
type SliceStream struct {
	tokens []Token
	pos    int
}

// NewSliceStream creates a stream over tokens. The slice is not copied
// and must not be modified while the stream is in use.
func NewSliceStream(tokens []Token) *SliceStream {
	return &SliceStream{tokens: tokens}
}

// Next returns the next token
func (s *SliceStream) Next() (Token, bool) {
	if s.pos >= len(s.tokens) {
		return Token{}, false
	}
	tok := s.tokens[s.pos]
	s.pos++
	return tok, true
}

// Collect drains a stream into a slice.
func Collect(s Stream) []Token {
	var tokens []Token
	for {
		tok, ok := s.Next()
		if !ok {
			return tokens
		}
		tokens = append(tokens, tok)
	}
}
