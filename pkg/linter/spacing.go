package linter

import "github.com/platinummonkey/yamllint/pkg/token"

// Disabled is the threshold value that turns a spacing check off
const Disabled = -1

// Gap returns the number of columns between the end of a and the start of
// b. ok is false when either token is absent or they are not on the same
// line.
func Gap(a, b token.Token) (gap int, ok bool) {
	if !token.SameLine(a, b) {
		return 0, false
	}
	return b.Start.Column - a.End.Column, true
}

// SpacesBefore checks the whitespace run between prev and tok. A "too
// many" problem points at the last space of the run, a "too few" problem
// at tok. When both thresholds are violated (minSpaces > maxSpaces) the
// max check wins.
func SpacesBefore(tok, prev token.Token, minSpaces, maxSpaces int, minMsg, maxMsg string) *Problem {
	gap, ok := Gap(prev, tok)
	if !ok {
		return nil
	}
	return checkGap(gap, tok.Start, minSpaces, maxSpaces, minMsg, maxMsg)
}

// SpacesAfter checks the whitespace run between tok and next, with the
// same conventions as SpacesBefore.
func SpacesAfter(tok, next token.Token, minSpaces, maxSpaces int, minMsg, maxMsg string) *Problem {
	gap, ok := Gap(tok, next)
	if !ok {
		return nil
	}
	return checkGap(gap, next.Start, minSpaces, maxSpaces, minMsg, maxMsg)
}

// checkGap compares a gap ending at the token starting at end
func checkGap(gap int, end token.Position, minSpaces, maxSpaces int, minMsg, maxMsg string) *Problem {
	if maxSpaces != Disabled && gap > maxSpaces {
		return &Problem{Position: At(end.Line, end.Column-1), Message: maxMsg}
	}
	if minSpaces != Disabled && gap < minSpaces {
		return &Problem{Position: At(end.Line, end.Column), Message: minMsg}
	}
	return nil
}
