// Package javaparser extracts comments, and optionally string contents, from
// Java source while keeping the line/column layout of the input. Every other
// character is masked with a space.
package javaparser

import (
	"bufio"
	"io"
	"strings"
)

// Options tune the scanner. The zero value is the default behavior; all
// fields but PreserveStrings opt out of known layout quirks.
type Options struct {
	// PreserveStrings passes string and text block contents, including their
	// delimiters, through to the output instead of masking them.
	PreserveStrings bool

	// KeepCommentDecoration turns off continuation-marker absorption, so the
	// leading " * " of block comment lines passes through like any other
	// comment text.
	KeepCommentDecoration bool

	// CloseEmptyStrings treats "" (not followed by a third quote) as a closed
	// empty string. By default the second quote opens a string literal that
	// runs until the next quote.
	CloseEmptyStrings bool

	// AlignEscapes emits two characters for the two-character escape
	// sequences in string and text block literals, and lets an escaped
	// newline through. By default an escape sequence collapses to one
	// character.
	AlignEscapes bool

	// CloseEmptyComments closes a block comment whose opening stars run
	// straight into a `/`, as in `/**/` and `/***/`. By default the `/` after
	// the absorbed stars is comment text and the comment stays open.
	CloseEmptyComments bool
}

// Scanner is a single-pass state machine over Java source. Each call to Step
// consumes one logical unit of input: a single character, or a few with
// bounded lookahead (`//`, `/*`, `*/`, `"""`, escape sequences).
//
// The scanner cannot fail; it accepts any sequence of characters and any
// state is valid at end of input.
type Scanner struct {
	opts  Options
	src   source
	out   sink
	state State

	// unit is the region the last consumed unit belongs to; delimiters
	// belong to the region they open or close
	unit State

	buf *strings.Builder // set when scanning into memory
}

// NewScanner creates a Scanner over input, positioned before the first
// character in CodeState. Call Step to advance.
func NewScanner(file FileRef, input string, opts Options) *Scanner {
	buf := &strings.Builder{}
	buf.Grow(len(input))
	return &Scanner{
		opts:  opts,
		src:   newStringSource(file, input),
		out:   buf,
		buf:   buf,
		state: CodeState,
	}
}

// State returns the current lexical state.
func (s *Scanner) State() State {
	return s.state
}

// Pos returns the position of the next unread character.
func (s *Scanner) Pos() Pos {
	return s.src.pos()
}

// Output returns what has been emitted so far. It is empty for a scanner
// writing to a stream.
func (s *Scanner) Output() string {
	if s.buf == nil {
		return ""
	}
	return s.buf.String()
}

// Scan masks all code in input, leaving comments (and strings, if
// preserveStrings is set) in place.
func Scan(input string, preserveStrings bool) string {
	out, _ := ScanWithOptions(input, Options{PreserveStrings: preserveStrings})
	return out
}

// ScanWithOptions is like Scan, and also returns the state the scanner was
// left in. Anything other than CodeState means the input ended inside a
// comment or literal.
func ScanWithOptions(input string, opts Options) (string, State) {
	s := NewScanner("", input, opts)
	for s.Step() {
	}
	return s.Output(), s.State()
}

// ScanReader streams r through the scanner into w. The returned error is
// either from reading r, writing w, or an Error for input that is not
// valid UTF-8; in those cases the output stops where the error occurred.
func ScanReader(file FileRef, r io.Reader, w io.Writer, opts Options) (State, error) {
	src := newReaderSource(file, r)
	bw := bufio.NewWriter(w)
	s := &Scanner{opts: opts, src: src, out: bw, state: CodeState}
	for s.Step() {
	}
	if src.err != nil {
		// keep what was scanned before the bad input
		_ = bw.Flush()
		return s.state, src.err
	}
	return s.state, bw.Flush()
}

// Step consumes the next unit of input and emits its output. It returns
// false at end of input.
func (s *Scanner) Step() bool {
	r, ok := s.src.next()
	if !ok {
		return false
	}
	s.unit = s.state
	switch s.state {
	case CodeState:
		s.stepCode(r)
	case LineCommentState:
		s.stepLineComment(r)
	case BlockCommentState:
		s.stepBlockComment(r)
	case StringLiteralState:
		s.stepStringLiteral(r)
	case TextBlockLiteralState:
		s.stepTextBlockLiteral(r)
	case CharLiteralState:
		s.stepCharLiteral(r)
	default:
		panic("unknown scanner state")
	}
	return true
}

func (s *Scanner) emit(r rune) {
	// write errors are sticky in bufio.Writer and surface on Flush
	_, _ = s.out.WriteRune(r)
}

func (s *Scanner) mask(n int) {
	for i := 0; i < n; i++ {
		s.emit(' ')
	}
}

// literal emits r if string contents are preserved, else a space
func (s *Scanner) literal(r rune) {
	if s.opts.PreserveStrings {
		s.emit(r)
	} else {
		s.emit(' ')
	}
}

func (s *Scanner) peekIs(n int, want rune) bool {
	r, ok := s.src.peek(n)
	return ok && r == want
}

func (s *Scanner) skip(n int) {
	for i := 0; i < n; i++ {
		s.src.next()
	}
}

func (s *Scanner) enter(st State) {
	s.state = st
	s.unit = st
}

func (s *Scanner) stepCode(r rune) {
	switch {
	case r == '/' && s.peekIs(0, '/'):
		s.skip(1)
		s.mask(2)
		s.enter(LineCommentState)
	case r == '/' && s.peekIs(0, '*'):
		s.skip(1)
		s.mask(2)
		s.enter(BlockCommentState)
		s.absorbOpener()
	case r == '"' && s.peekIs(0, '"') && s.peekIs(1, '"'):
		s.skip(2)
		for i := 0; i < 3; i++ {
			s.literal('"')
		}
		s.enter(TextBlockLiteralState)
	case r == '"' && s.peekIs(0, '"'):
		s.skip(1)
		if s.opts.CloseEmptyStrings {
			s.literal('"')
			s.literal('"')
			s.unit = StringLiteralState
			return
		}
		// the second quote opens a new string rather than closing this one
		s.literal('"')
		s.enter(StringLiteralState)
	case r == '"':
		s.literal('"')
		s.enter(StringLiteralState)
	case r == '\'':
		s.emit(' ')
		s.enter(CharLiteralState)
	case r == '\n':
		s.emit('\n')
	default:
		s.emit(' ')
	}
}

// absorbOpener masks the extra stars of `/**`, `/***`, ... and then drops
// the decoration that follows like on any other comment line, so `/* x`
// emits "  x" and `/** */` is closed right away.
func (s *Scanner) absorbOpener() {
	for s.peekIs(0, '*') {
		if s.opts.CloseEmptyComments && s.peekIs(1, '/') {
			s.skip(2)
			s.mask(2)
			s.state = CodeState
			return
		}
		s.skip(1)
		s.emit(' ')
	}
	if !s.opts.KeepCommentDecoration && s.absorbContinuationMarker() {
		s.state = CodeState
	}
}

func (s *Scanner) stepLineComment(r rune) {
	s.emit(r)
	if r == '\n' {
		s.state = CodeState
	}
}

func (s *Scanner) stepBlockComment(r rune) {
	switch {
	case r == '*' && s.peekIs(0, '/'):
		s.skip(1)
		s.mask(2)
		s.state = CodeState
	case r == '\n':
		s.emit('\n')
		if !s.opts.KeepCommentDecoration && s.absorbContinuationMarker() {
			s.state = CodeState
		}
	default:
		s.emit(r)
	}
}

func (s *Scanner) stepStringLiteral(r rune) {
	switch r {
	case '\\':
		s.escape()
	case '"':
		s.literal('"')
		s.state = CodeState
	case '\n':
		// unterminated string; Java does not allow newlines in "..."
		s.emit('\n')
		s.state = CodeState
	default:
		s.literal(r)
	}
}

func (s *Scanner) stepTextBlockLiteral(r rune) {
	switch {
	case r == '"' && s.peekIs(0, '"') && s.peekIs(1, '"'):
		s.skip(2)
		for i := 0; i < 3; i++ {
			s.literal('"')
		}
		s.state = CodeState
	case r == '\\':
		s.escape()
	case r == '\n':
		s.emit('\n')
	default:
		s.literal(r)
	}
}

func (s *Scanner) stepCharLiteral(r rune) {
	switch r {
	case '\\':
		// escapes in char literals are always masked
		s.emit(' ')
		if escaped, ok := s.src.next(); ok {
			if escaped == '\n' && s.opts.AlignEscapes {
				s.emit('\n')
			} else {
				s.emit(' ')
			}
		}
	case '\'':
		s.emit(' ')
		s.state = CodeState
	case '\n':
		s.emit('\n')
		s.state = CodeState
	default:
		s.emit(' ')
	}
}

// escape handles the character after a backslash in a string or text
// block; the backslash itself has been consumed.
func (s *Scanner) escape() {
	escaped, ok := s.src.next()
	if !s.opts.AlignEscapes {
		if ok {
			s.literal(escaped)
		}
		return
	}
	s.literal('\\')
	if !ok {
		return
	}
	if escaped == '\n' {
		s.emit('\n')
		return
	}
	s.literal(escaped)
}
