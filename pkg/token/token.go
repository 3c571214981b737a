package token

import "fmt"

// Kind represents the type of a YAML token
type Kind int

const (
	// None is the zero Kind. A Token with Kind None stands for "no token"
	// at the edges of a stream.
	None Kind = iota
	StreamStart
	StreamEnd
	Directive
	DocumentStart
	DocumentEnd
	BlockSequenceStart
	BlockMappingStart
	BlockEnd
	FlowSequenceStart
	FlowSequenceEnd
	FlowMappingStart
	FlowMappingEnd
	BlockEntry
	FlowEntry
	Key
	Value
	Alias
	Anchor
	Tag
	Scalar
)

var kindNames = [...]string{
	None:               "None",
	StreamStart:        "StreamStart",
	StreamEnd:          "StreamEnd",
	Directive:          "Directive",
	DocumentStart:      "DocumentStart",
	DocumentEnd:        "DocumentEnd",
	BlockSequenceStart: "BlockSequenceStart",
	BlockMappingStart:  "BlockMappingStart",
	BlockEnd:           "BlockEnd",
	FlowSequenceStart:  "FlowSequenceStart",
	FlowSequenceEnd:    "FlowSequenceEnd",
	FlowMappingStart:   "FlowMappingStart",
	FlowMappingEnd:     "FlowMappingEnd",
	BlockEntry:         "BlockEntry",
	FlowEntry:          "FlowEntry",
	Key:                "Key",
	Value:              "Value",
	Alias:              "Alias",
	Anchor:             "Anchor",
	Tag:                "Tag",
	Scalar:             "Scalar",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// Position represents a location in the source document.
// Line and Column are 1-based, Offset is a 0-based byte offset.
type Position struct {
	Line   int
	Column int
	Offset int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Token is an immutable lexical unit produced by a scanner.
// End is the position just past the last character of the token.
type Token struct {
	Kind  Kind
	Value string
	Start Position
	End   Position
}

// IsZero reports whether t is the "no token" sentinel.
func (t Token) IsZero() bool {
	return t.Kind == None
}

// Is reports whether t has one of the given kinds.
func (t Token) Is(kinds ...Kind) bool {
	for _, k := range kinds {
		if t.Kind == k {
			return true
		}
	}
	return false
}

// IsExplicitKey reports whether t is a "?" key indicator. Implicit keys
// are zero-width tokens placed at the start of the key node.
func (t Token) IsExplicitKey() bool {
	return t.Kind == Key && t.Start.Offset < t.End.Offset
}

// SameLine reports whether a ends on the line where b starts. The
// sentinel is never on the same line as anything.
func SameLine(a, b Token) bool {
	if a.IsZero() || b.IsZero() {
		return false
	}
	return a.End.Line == b.Start.Line
}

func (t Token) String() string {
	if t.Value == "" {
		return fmt.Sprintf("%s@%s", t.Kind, t.Start)
	}
	return fmt.Sprintf("%s(%q)@%s", t.Kind, t.Value, t.Start)
}
