package scanner

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/platinummonkey/yamllint/pkg/token"
)

// ErrSyntax is wrapped by every error the scanner returns
var ErrSyntax = errors.New("syntax error")

// maxSimpleKeyLength bounds how far back a ':' may promote a node to a key
const maxSimpleKeyLength = 1024

// Error describes a scanning failure at a position
type Error struct {
	Pos token.Position
	Msg string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Pos.Line, e.Pos.Column, e.Msg)
}

func (e *Error) Unwrap() error {
	return ErrSyntax
}

// simpleKey records a node that becomes a mapping key if a ':' follows
// it on the same line
type simpleKey struct {
	possible bool
	required bool
	index    int // absolute token number
	pos      token.Position
}

// Scanner turns a YAML document into a stream of tokens
type Scanner struct {
	src      []byte
	ch       rune // current character, -1 at EOF
	offset   int  // byte offset of ch
	rdOffset int  // byte offset after ch
	line     int
	column   int

	queue []token.Token
	taken int // tokens already handed out
	done  bool

	indent         int
	indents        []int
	flowLevel      int
	allowSimpleKey bool
	keys           []simpleKey // one slot per flow level
}

// NewScanner creates a new Scanner over src
func NewScanner(src []byte) *Scanner {
	s := &Scanner{
		src:            src,
		line:           1,
		column:         1,
		indent:         -1,
		allowSimpleKey: true,
		keys:           make([]simpleKey, 1),
	}
	s.read()
	if s.ch == '\uFEFF' {
		s.next()
		s.column = 1
	}

	start := s.pos()
	s.queue = append(s.queue, token.Token{Kind: token.StreamStart, Start: start, End: start})
	return s
}

// Tokenize scans src completely. Either every token is returned or the
// first syntax error.
func Tokenize(src []byte) ([]token.Token, error) {
	s := NewScanner(src)
	var tokens []token.Token
	for {
		tok, err := s.Scan()
		if err == io.EOF {
			return tokens, nil
		}
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
	}
}

// Scan returns the next token, or io.EOF after StreamEnd has been returned
func (s *Scanner) Scan() (token.Token, error) {
	for {
		more, err := s.needMoreTokens()
		if err != nil {
			return token.Token{}, err
		}
		if !more {
			break
		}
		if err := s.fetchNext(); err != nil {
			return token.Token{}, err
		}
	}

	if len(s.queue) == 0 {
		return token.Token{}, io.EOF
	}

	tok := s.queue[0]
	s.queue = s.queue[1:]
	s.taken++
	return tok, nil
}

// read decodes the rune at rdOffset into s.ch
func (s *Scanner) read() {
	s.offset = s.rdOffset
	if s.rdOffset >= len(s.src) {
		s.ch = -1
		return
	}
	r, size := utf8.DecodeRune(s.src[s.rdOffset:])
	s.rdOffset += size
	s.ch = r
}

// next advances past the current character and updates line/column
func (s *Scanner) next() {
	if s.ch == -1 {
		return
	}
	if s.ch == '\n' {
		s.line++
		s.column = 1
	} else {
		s.column++
	}
	s.read()
}

// peek returns the character after s.ch without advancing
func (s *Scanner) peek() rune {
	if s.rdOffset >= len(s.src) {
		return -1
	}
	r, _ := utf8.DecodeRune(s.src[s.rdOffset:])
	return r
}

func (s *Scanner) pos() token.Position {
	return token.Position{Line: s.line, Column: s.column, Offset: s.offset}
}

func (s *Scanner) errorf(pos token.Position, format string, args ...interface{}) error {
	return &Error{Pos: pos, Msg: fmt.Sprintf(format, args...)}
}

func (s *Scanner) emit(kind token.Kind, start token.Position, value string) {
	s.queue = append(s.queue, token.Token{Kind: kind, Value: value, Start: start, End: s.pos()})
}

func (s *Scanner) insert(index int, tok token.Token) {
	i := index - s.taken
	s.queue = append(s.queue, token.Token{})
	copy(s.queue[i+1:], s.queue[i:])
	s.queue[i] = tok
}

func isBlankOrEnd(r rune) bool {
	return r == ' ' || r == '\t' || r == '\r' || r == '\n' || r == -1
}

func isFlowIndicator(r rune) bool {
	switch r {
	case ',', '[', ']', '{', '}':
		return true
	default:
		return false
	}
}

func (s *Scanner) isDocumentIndicator(marker string) bool {
	if s.column != 1 || !bytes.HasPrefix(s.src[s.offset:], []byte(marker)) {
		return false
	}
	after := s.offset + len(marker)
	if after >= len(s.src) {
		return true
	}
	r, _ := utf8.DecodeRune(s.src[after:])
	return isBlankOrEnd(r)
}

// needMoreTokens reports whether the queue head may still be preceded by
// a Key or BlockMappingStart token
func (s *Scanner) needMoreTokens() (bool, error) {
	if s.done {
		return false, nil
	}
	if len(s.queue) == 0 {
		return true, nil
	}
	if err := s.staleSimpleKeys(); err != nil {
		return false, err
	}
	for _, key := range s.keys {
		if key.possible && key.index == s.taken {
			return true, nil
		}
	}
	return false, nil
}

func (s *Scanner) fetchNext() error {
	s.scanToNextToken()
	if err := s.staleSimpleKeys(); err != nil {
		return err
	}
	s.unwindIndent(s.column - 1)

	if s.ch == -1 {
		return s.fetchStreamEnd()
	}

	switch {
	case s.column == 1 && s.ch == '%':
		return s.fetchDirective()
	case s.isDocumentIndicator("---"):
		return s.fetchDocumentIndicator(token.DocumentStart)
	case s.isDocumentIndicator("..."):
		return s.fetchDocumentIndicator(token.DocumentEnd)
	}

	switch s.ch {
	case '[':
		return s.fetchFlowCollectionStart(token.FlowSequenceStart)
	case '{':
		return s.fetchFlowCollectionStart(token.FlowMappingStart)
	case ']':
		return s.fetchFlowCollectionEnd(token.FlowSequenceEnd)
	case '}':
		return s.fetchFlowCollectionEnd(token.FlowMappingEnd)
	case ',':
		return s.fetchFlowEntry()
	case '*':
		return s.fetchNamed(token.Alias)
	case '&':
		return s.fetchNamed(token.Anchor)
	case '!':
		return s.fetchTag()
	case '\'', '"':
		return s.fetchQuoted()
	}

	next := s.peek()
	switch {
	case s.ch == '-' && isBlankOrEnd(next):
		return s.fetchBlockEntry()
	case s.ch == '?' && (s.flowLevel > 0 || isBlankOrEnd(next)):
		return s.fetchKey()
	case s.ch == ':' && (s.flowLevel > 0 || isBlankOrEnd(next)):
		return s.fetchValue()
	case s.flowLevel == 0 && (s.ch == '|' || s.ch == '>'):
		return s.fetchBlockScalar()
	case s.checkPlain(next):
		return s.fetchPlain()
	}

	return s.errorf(s.pos(), "found character %q that cannot start any token", s.ch)
}

// scanToNextToken skips spaces, comments and line breaks. Tabs are not
// separation whitespace and are left for fetchNext to reject.
func (s *Scanner) scanToNextToken() {
	for {
		for s.ch == ' ' || s.ch == '\r' {
			s.next()
		}
		if s.ch == '#' {
			for s.ch != '\n' && s.ch != -1 {
				s.next()
			}
		}
		if s.ch != '\n' {
			return
		}
		s.next()
		if s.flowLevel == 0 {
			s.allowSimpleKey = true
		}
	}
}

func (s *Scanner) staleSimpleKeys() error {
	for level, key := range s.keys {
		if !key.possible {
			continue
		}
		if key.pos.Line != s.line || s.offset-key.pos.Offset > maxSimpleKeyLength {
			if key.required {
				return s.errorf(key.pos, "could not find expected ':'")
			}
			s.keys[level] = simpleKey{}
		}
	}
	return nil
}

func (s *Scanner) saveSimpleKey() error {
	if !s.allowSimpleKey {
		return nil
	}
	if err := s.removeSimpleKey(); err != nil {
		return err
	}
	s.keys[s.flowLevel] = simpleKey{
		possible: true,
		required: s.flowLevel == 0 && s.indent == s.column-1,
		index:    s.taken + len(s.queue),
		pos:      s.pos(),
	}
	return nil
}

func (s *Scanner) removeSimpleKey() error {
	key := s.keys[s.flowLevel]
	if key.possible && key.required {
		return s.errorf(key.pos, "could not find expected ':'")
	}
	s.keys[s.flowLevel] = simpleKey{}
	return nil
}

// unwindIndent closes block collections deeper than column (0-based)
func (s *Scanner) unwindIndent(column int) {
	if s.flowLevel > 0 {
		return
	}
	for s.indent > column {
		at := s.pos()
		s.indent = s.indents[len(s.indents)-1]
		s.indents = s.indents[:len(s.indents)-1]
		s.queue = append(s.queue, token.Token{Kind: token.BlockEnd, Start: at, End: at})
	}
}

// addIndent opens a block collection at column (0-based) when it is
// deeper than the current one
func (s *Scanner) addIndent(column int) bool {
	if s.indent < column {
		s.indents = append(s.indents, s.indent)
		s.indent = column
		return true
	}
	return false
}

func (s *Scanner) fetchStreamEnd() error {
	s.unwindIndent(-1)
	if err := s.removeSimpleKey(); err != nil {
		return err
	}
	s.allowSimpleKey = false
	s.emit(token.StreamEnd, s.pos(), "")
	s.done = true
	return nil
}

func (s *Scanner) fetchDirective() error {
	s.unwindIndent(-1)
	if err := s.removeSimpleKey(); err != nil {
		return err
	}
	s.allowSimpleKey = false

	start := s.pos()
	end := start
	prevBlank := false
	for s.ch != '\n' && s.ch != -1 && !(s.ch == '#' && prevBlank) {
		blank := s.ch == ' ' || s.ch == '\t' || s.ch == '\r'
		s.next()
		if !blank {
			end = s.pos()
		}
		prevBlank = blank
	}
	s.queue = append(s.queue, token.Token{
		Kind:  token.Directive,
		Value: string(s.src[start.Offset:end.Offset]),
		Start: start,
		End:   end,
	})
	return nil
}

func (s *Scanner) fetchDocumentIndicator(kind token.Kind) error {
	s.unwindIndent(-1)
	if err := s.removeSimpleKey(); err != nil {
		return err
	}
	s.allowSimpleKey = false

	start := s.pos()
	for i := 0; i < 3; i++ {
		s.next()
	}
	s.emit(kind, start, "")
	return nil
}

func (s *Scanner) fetchFlowCollectionStart(kind token.Kind) error {
	if err := s.saveSimpleKey(); err != nil {
		return err
	}
	s.flowLevel++
	s.keys = append(s.keys, simpleKey{})
	s.allowSimpleKey = true

	start := s.pos()
	s.next()
	s.emit(kind, start, "")
	return nil
}

func (s *Scanner) fetchFlowCollectionEnd(kind token.Kind) error {
	if err := s.removeSimpleKey(); err != nil {
		return err
	}
	if s.flowLevel > 0 {
		s.flowLevel--
		s.keys = s.keys[:len(s.keys)-1]
	}
	s.allowSimpleKey = false

	start := s.pos()
	s.next()
	s.emit(kind, start, "")
	return nil
}

func (s *Scanner) fetchFlowEntry() error {
	s.allowSimpleKey = true
	if err := s.removeSimpleKey(); err != nil {
		return err
	}

	start := s.pos()
	s.next()
	s.emit(token.FlowEntry, start, "")
	return nil
}

func (s *Scanner) fetchBlockEntry() error {
	start := s.pos()
	if s.flowLevel == 0 {
		if !s.allowSimpleKey {
			return s.errorf(start, "block sequence entries are not allowed here")
		}
		if s.addIndent(s.column - 1) {
			s.queue = append(s.queue, token.Token{Kind: token.BlockSequenceStart, Start: start, End: start})
		}
	}
	s.allowSimpleKey = true
	if err := s.removeSimpleKey(); err != nil {
		return err
	}

	s.next()
	s.emit(token.BlockEntry, start, "")
	return nil
}

func (s *Scanner) fetchKey() error {
	start := s.pos()
	if s.flowLevel == 0 {
		if !s.allowSimpleKey {
			return s.errorf(start, "mapping keys are not allowed here")
		}
		if s.addIndent(s.column - 1) {
			s.queue = append(s.queue, token.Token{Kind: token.BlockMappingStart, Start: start, End: start})
		}
	}
	s.allowSimpleKey = s.flowLevel == 0
	if err := s.removeSimpleKey(); err != nil {
		return err
	}

	s.next()
	s.emit(token.Key, start, "")
	return nil
}

func (s *Scanner) fetchValue() error {
	start := s.pos()
	key := s.keys[s.flowLevel]
	if key.possible {
		s.insert(key.index, token.Token{Kind: token.Key, Start: key.pos, End: key.pos})
		if s.flowLevel == 0 && s.addIndent(key.pos.Column-1) {
			s.insert(key.index, token.Token{Kind: token.BlockMappingStart, Start: key.pos, End: key.pos})
		}
		s.keys[s.flowLevel] = simpleKey{}
		s.allowSimpleKey = false
	} else {
		if s.flowLevel == 0 {
			if !s.allowSimpleKey {
				return s.errorf(start, "mapping values are not allowed here")
			}
			if s.addIndent(s.column - 1) {
				s.queue = append(s.queue, token.Token{Kind: token.BlockMappingStart, Start: start, End: start})
			}
		}
		s.allowSimpleKey = s.flowLevel == 0
		if err := s.removeSimpleKey(); err != nil {
			return err
		}
	}

	s.next()
	s.emit(token.Value, start, "")
	return nil
}

// fetchNamed scans an alias (*name) or an anchor (&name)
func (s *Scanner) fetchNamed(kind token.Kind) error {
	if err := s.saveSimpleKey(); err != nil {
		return err
	}
	s.allowSimpleKey = false

	start := s.pos()
	s.next()
	nameStart := s.offset
	for !isBlankOrEnd(s.ch) && !isFlowIndicator(s.ch) {
		s.next()
	}
	if s.offset == nameStart {
		return s.errorf(start, "expected alphabetic or numeric character after %q", s.src[start.Offset])
	}
	s.emit(kind, start, string(s.src[nameStart:s.offset]))
	return nil
}

func (s *Scanner) fetchTag() error {
	if err := s.saveSimpleKey(); err != nil {
		return err
	}
	s.allowSimpleKey = false

	start := s.pos()
	for !isBlankOrEnd(s.ch) && !(s.flowLevel > 0 && isFlowIndicator(s.ch)) {
		s.next()
	}
	s.emit(token.Tag, start, string(s.src[start.Offset:s.offset]))
	return nil
}

// fetchQuoted scans a single or double quoted scalar
func (s *Scanner) fetchQuoted() error {
	if err := s.saveSimpleKey(); err != nil {
		return err
	}
	s.allowSimpleKey = false

	start := s.pos()
	quote := s.ch
	s.next()

	var sb strings.Builder
	for {
		switch {
		case s.ch == -1:
			return s.errorf(start, "found unexpected end of stream while scanning a quoted scalar")
		case s.ch == quote && quote == '\'' && s.peek() == '\'':
			sb.WriteRune('\'')
			s.next()
			s.next()
			continue
		case s.ch == quote:
			s.next()
			s.emit(token.Scalar, start, sb.String())
			return nil
		case s.ch == '\\' && quote == '"':
			if err := s.scanEscape(&sb); err != nil {
				return err
			}
			continue
		case s.ch == '\n':
			s.foldQuotedBreak(&sb)
			continue
		}
		sb.WriteRune(s.ch)
		s.next()
	}
}

func (s *Scanner) scanEscape(sb *strings.Builder) error {
	at := s.pos()
	s.next()
	switch s.ch {
	case '0':
		sb.WriteRune(0)
	case 'a':
		sb.WriteRune('\a')
	case 'b':
		sb.WriteRune('\b')
	case 't', '\t':
		sb.WriteRune('\t')
	case 'n':
		sb.WriteRune('\n')
	case 'v':
		sb.WriteRune('\v')
	case 'f':
		sb.WriteRune('\f')
	case 'r':
		sb.WriteRune('\r')
	case 'e':
		sb.WriteRune('\x1b')
	case ' ', '"', '/', '\\':
		sb.WriteRune(s.ch)
	case 'N':
		sb.WriteRune('\u0085')
	case '_':
		sb.WriteRune('\u00a0')
	case 'L':
		sb.WriteRune('\u2028')
	case 'P':
		sb.WriteRune('\u2029')
	case 'x', 'u', 'U':
		return s.scanHexEscape(sb, at)
	case '\n':
		// escaped line break: continue on the next line without folding
		s.next()
		for s.ch == ' ' || s.ch == '\t' {
			s.next()
		}
		return nil
	default:
		return s.errorf(at, "found unknown escape character %q", s.ch)
	}
	s.next()
	return nil
}

// escapeDigits is the number of hex digits after \x, \u and \U
var escapeDigits = map[rune]int{'x': 2, 'u': 4, 'U': 8}

func isHex(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

// scanHexEscape decodes \xXX, \uXXXX or \UXXXXXXXX; s.ch is the letter
func (s *Scanner) scanHexEscape(sb *strings.Builder, at token.Position) error {
	n := escapeDigits[s.ch]
	s.next()
	begin := s.offset
	for i := 0; i < n; i++ {
		if !isHex(s.ch) {
			return s.errorf(s.pos(), "expected escape sequence of %d hexadecimal numbers, but found %q", n, s.ch)
		}
		s.next()
	}
	digits := string(s.src[begin:s.offset])
	code, err := strconv.ParseUint(digits, 16, 32)
	if err != nil || !utf8.ValidRune(rune(code)) {
		return s.errorf(at, "found invalid Unicode character escape code %s", digits)
	}
	sb.WriteRune(rune(code))
	return nil
}

// foldQuotedBreak folds a line break inside a quoted scalar into a space,
// or into newlines when blank lines follow
func (s *Scanner) foldQuotedBreak(sb *strings.Builder) {
	trimmed := strings.TrimRight(sb.String(), " \t")
	sb.Reset()
	sb.WriteString(trimmed)

	breaks := 0
	for s.ch == '\n' {
		s.next()
		for s.ch == ' ' || s.ch == '\t' || s.ch == '\r' {
			s.next()
		}
		if s.ch == '\n' {
			breaks++
		}
	}
	if breaks == 0 {
		sb.WriteRune(' ')
		return
	}
	sb.WriteString(strings.Repeat("\n", breaks))
}

// chomping is the trailing line break handling of a block scalar
type chomping int

const (
	chompClip chomping = iota
	chompStrip
	chompKeep
)

func (s *Scanner) fetchBlockScalar() error {
	if err := s.removeSimpleKey(); err != nil {
		return err
	}
	s.allowSimpleKey = true

	start := s.pos()
	folded := s.ch == '>'
	s.next()

	chomp, increment, err := s.scanBlockScalarIndicators()
	if err != nil {
		return err
	}
	end := s.pos()

	for s.ch == ' ' {
		s.next()
	}
	if s.ch == '#' {
		for s.ch != '\n' && s.ch != -1 {
			s.next()
		}
	}
	if !s.skipLineBreak() && s.ch != -1 {
		return s.errorf(s.pos(), "expected a comment or a line break after a block scalar indicator, but found %q", s.ch)
	}

	minIndent := max(s.indent+1, 1)
	var indent, breaks int
	if increment == 0 {
		var maxIndent int
		breaks, maxIndent = s.scanBlockScalarIndentation()
		indent = max(minIndent, maxIndent)
	} else {
		indent = minIndent + increment - 1
		breaks = s.scanBlockScalarBreaks(indent)
	}

	var sb strings.Builder
	lineBreak := ""
	for s.column-1 == indent && s.ch != -1 {
		sb.WriteString(strings.Repeat("\n", breaks))
		leadingNonSpace := s.ch != ' ' && s.ch != '\t'

		lineStart := s.offset
		for s.ch != '\n' && s.ch != -1 && !(s.ch == '\r' && s.peek() == '\n') {
			s.next()
		}
		sb.Write(s.src[lineStart:s.offset])
		end = s.pos()

		lineBreak = ""
		if s.skipLineBreak() {
			lineBreak = "\n"
		}
		breaks = s.scanBlockScalarBreaks(indent)
		if s.column-1 != indent || s.ch == -1 {
			break
		}

		if folded && lineBreak != "" && leadingNonSpace && s.ch != ' ' && s.ch != '\t' {
			if breaks == 0 {
				sb.WriteByte(' ')
			}
		} else {
			sb.WriteString(lineBreak)
		}
	}

	switch chomp {
	case chompClip:
		sb.WriteString(lineBreak)
	case chompKeep:
		sb.WriteString(lineBreak)
		sb.WriteString(strings.Repeat("\n", breaks))
	}

	s.queue = append(s.queue, token.Token{Kind: token.Scalar, Value: sb.String(), Start: start, End: end})
	return nil
}

// scanBlockScalarIndicators reads the chomping and indentation indicators
// in either order. increment is 0 when the indentation is auto-detected.
func (s *Scanner) scanBlockScalarIndicators() (chomping, int, error) {
	chomp, chompSeen := chompClip, false
	increment := 0
	for {
		switch {
		case (s.ch == '+' || s.ch == '-') && !chompSeen:
			chompSeen = true
			chomp = chompStrip
			if s.ch == '+' {
				chomp = chompKeep
			}
		case s.ch >= '0' && s.ch <= '9' && increment == 0:
			if s.ch == '0' {
				return chomp, 0, s.errorf(s.pos(), "expected indentation indicator in the range 1-9, but found 0")
			}
			increment = int(s.ch - '0')
		case s.ch == ' ' || s.ch == '\r' || s.ch == '\n' || s.ch == -1:
			return chomp, increment, nil
		default:
			return chomp, increment, s.errorf(s.pos(), "expected chomping or indentation indicators, but found %q", s.ch)
		}
		s.next()
	}
}

// scanBlockScalarIndentation skips leading empty lines and returns how
// many there were and the deepest indentation seen on them
func (s *Scanner) scanBlockScalarIndentation() (breaks, maxIndent int) {
	for {
		switch {
		case s.ch == ' ':
			s.next()
			maxIndent = max(maxIndent, s.column-1)
		case s.skipLineBreak():
			breaks++
		default:
			return breaks, maxIndent
		}
	}
}

// scanBlockScalarBreaks skips empty lines and up to indent spaces of the
// next line
func (s *Scanner) scanBlockScalarBreaks(indent int) int {
	breaks := 0
	for s.column-1 < indent && s.ch == ' ' {
		s.next()
	}
	for s.skipLineBreak() {
		breaks++
		for s.column-1 < indent && s.ch == ' ' {
			s.next()
		}
	}
	return breaks
}

// skipLineBreak consumes "\n" or "\r\n"
func (s *Scanner) skipLineBreak() bool {
	if s.ch == '\r' && s.peek() == '\n' {
		s.next()
	}
	if s.ch == '\n' {
		s.next()
		return true
	}
	return false
}

// checkPlain reports whether a plain scalar starts at s.ch
func (s *Scanner) checkPlain(next rune) bool {
	switch s.ch {
	case '-', '?', ':':
		return !isBlankOrEnd(next) && !(s.flowLevel > 0 && isFlowIndicator(next))
	case ',', '[', ']', '{', '}', '#', '&', '*', '!', '|', '>', '\'', '"', '%', '@', '`':
		return false
	}
	return !isBlankOrEnd(s.ch)
}

// plainEnds reports whether the plain scalar being scanned ends at s.ch
func (s *Scanner) plainEnds() bool {
	if isBlankOrEnd(s.ch) {
		return true
	}
	if s.ch == ':' {
		next := s.peek()
		return isBlankOrEnd(next) || (s.flowLevel > 0 && isFlowIndicator(next))
	}
	return s.flowLevel > 0 && (isFlowIndicator(s.ch) || s.ch == '?')
}

func (s *Scanner) fetchPlain() error {
	if err := s.saveSimpleKey(); err != nil {
		return err
	}
	s.allowSimpleKey = false

	start := s.pos()
	end := start
	minColumn := s.indent + 1
	var sb strings.Builder
	pending := ""

	for {
		chunkStart := s.offset
		for !s.plainEnds() {
			s.next()
		}
		if s.offset == chunkStart {
			break
		}
		sb.WriteString(pending)
		sb.Write(s.src[chunkStart:s.offset])
		end = s.pos()
		// only a line break after the last chunk may allow a key again
		s.allowSimpleKey = false

		var ok bool
		pending, ok = s.scanPlainSpaces()
		if !ok || s.ch == '#' || (s.flowLevel == 0 && s.column-1 < minColumn) {
			break
		}
	}

	s.queue = append(s.queue, token.Token{Kind: token.Scalar, Value: sb.String(), Start: start, End: end})
	return nil
}

// scanPlainSpaces consumes whitespace after a plain scalar chunk and
// returns its folded form. ok is false when the scalar cannot continue.
func (s *Scanner) scanPlainSpaces() (string, bool) {
	start := s.offset
	for s.ch == ' ' || s.ch == '\r' {
		s.next()
	}
	if s.ch != '\n' {
		return string(s.src[start:s.offset]), true
	}

	if s.flowLevel == 0 {
		s.allowSimpleKey = true
	}
	breaks := 0
	for s.ch == '\n' {
		s.next()
		for s.ch == ' ' || s.ch == '\r' {
			s.next()
		}
		if s.ch == '\n' {
			breaks++
		}
	}
	if s.isDocumentIndicator("---") || s.isDocumentIndicator("...") {
		return "", false
	}
	if breaks == 0 {
		return " ", true
	}
	return strings.Repeat("\n", breaks), true
}
