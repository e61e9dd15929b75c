package javaparser

import (
	"bufio"
	"io"
	"unicode/utf8"
)

// source is the scan cursor: the next unread rune plus a small lookahead.
// peek(0) is the rune next() would return.
type source interface {
	next() (rune, bool)
	peek(n int) (rune, bool)
	pos() Pos
}

// sink is satisfied by both *strings.Builder and *bufio.Writer
type sink interface {
	WriteRune(r rune) (int, error)
	WriteString(s string) (int, error)
}

// advance moves p past r; a newline starts the next line.
func advance(p *Pos, r rune, w int) {
	p.Offset += w
	if r == '\n' {
		p.Line++
		p.Col = 1
	} else {
		p.Col += w
	}
}

type stringSource struct {
	input string
	p     Pos
}

func newStringSource(file FileRef, input string) *stringSource {
	return &stringSource{input: input, p: Pos{File: file, Line: 1, Col: 1}}
}

func (s *stringSource) next() (rune, bool) {
	r, w := utf8.DecodeRuneInString(s.input[s.p.Offset:])
	if w == 0 {
		return 0, false
	}
	advance(&s.p, r, w)
	return r, true
}

func (s *stringSource) peek(n int) (rune, bool) {
	i := s.p.Offset
	for {
		r, w := utf8.DecodeRuneInString(s.input[i:])
		if w == 0 {
			return 0, false
		}
		if n == 0 {
			return r, true
		}
		i += w
		n--
	}
}

func (s *stringSource) pos() Pos {
	return s.p
}

// readerSource streams runes from a bufio.Reader. Invalid UTF-8 and read
// errors stop the scan; the first one is kept in err.
type readerSource struct {
	r   *bufio.Reader
	p   Pos
	err error
}

func newReaderSource(file FileRef, r io.Reader) *readerSource {
	return &readerSource{r: bufio.NewReaderSize(r, 4096), p: Pos{File: file, Line: 1, Col: 1}}
}

func (s *readerSource) next() (rune, bool) {
	if s.err != nil {
		return 0, false
	}
	r, w, err := s.r.ReadRune()
	if err != nil {
		if err != io.EOF {
			s.err = err
		}
		return 0, false
	}
	if r == utf8.RuneError && w == 1 {
		s.err = Error{Pos: s.p, Message: "input is not valid UTF-8"}
		return 0, false
	}
	advance(&s.p, r, w)
	return r, true
}

func (s *readerSource) peek(n int) (rune, bool) {
	// Peek returns whatever is buffered together with an error when fewer
	// bytes remain, so the error is only interesting through next()
	buf, _ := s.r.Peek((n + 1) * utf8.UTFMax)
	for {
		r, w := utf8.DecodeRune(buf)
		if w == 0 {
			return 0, false
		}
		if n == 0 {
			return r, true
		}
		buf = buf[w:]
		n--
	}
}

func (s *readerSource) pos() Pos {
	return s.p
}
