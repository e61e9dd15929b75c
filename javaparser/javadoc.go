package javaparser

import (
	"strings"
	"unicode"

	"github.com/smasher164/xid"
)

// Tag is a Javadoc tag found in a `/** ... */` comment: either a block tag
// (`@param name text` at the start of a comment line) or an inline tag
// (`{@link Foo}`). Name is without the `@`.
type Tag struct {
	Name   string `yaml:"name"`
	Inline bool   `yaml:"inline"`
	Pos    Pos    `yaml:"pos"`
	Text   string `yaml:"text"`
}

// JavadocTags collects the tags of all Javadoc comments among regions, in
// source order.
func JavadocTags(regions []Region) []Tag {
	var result []Tag
	for _, r := range regions {
		if r.State != BlockCommentState || !isJavadoc(r.Text) {
			continue
		}
		result = append(result, parseJavadoc(r)...)
	}
	return result
}

// isJavadoc is true for `/** ...`, but not for the empty comment `/**/`
func isJavadoc(text string) bool {
	return strings.HasPrefix(text, "/**") && !strings.HasPrefix(text, "/**/")
}

func parseJavadoc(r Region) []Tag {
	var result []Tag
	lineOffset := 0
	for i, line := range strings.Split(r.Text, "\n") {
		linePos := Pos{File: r.Start.File, Line: r.Start.Line + i, Col: 1, Offset: r.Start.Offset + lineOffset}
		if i == 0 {
			linePos.Col = r.Start.Col
		}
		lineOffset += len(line) + 1

		body := stripDecoration(line, i == 0)
		bodyStart := len(line) - len(body)

		if strings.HasPrefix(body, "@") {
			if n := scanIdentifier(body[1:]); n > 0 {
				text := strings.TrimSpace(trimCommentEnd(body[1+n:]))
				result = append(result, Tag{
					Name: body[1 : 1+n],
					Pos:  linePos.shift(bodyStart),
					Text: text,
				})
			}
		}

		for j := 0; j < len(line); {
			k := strings.Index(line[j:], "{@")
			if k == -1 {
				break
			}
			at := j + k
			n := scanIdentifier(line[at+2:])
			if n == 0 {
				j = at + 2
				continue
			}
			rest := line[at+2+n:]
			end := strings.IndexByte(rest, '}')
			if end == -1 {
				end = len(rest)
			}
			result = append(result, Tag{
				Name:   line[at+2 : at+2+n],
				Inline: true,
				Pos:    linePos.shift(at),
				Text:   strings.TrimSpace(rest[:end]),
			})
			j = at + 2 + n
		}
	}
	return result
}

// stripDecoration removes the comment opener (first line) or the leading
// `*` decoration of a comment line, and surrounding whitespace
func stripDecoration(line string, first bool) string {
	body := strings.TrimLeft(line, " \t")
	if first {
		body = strings.TrimPrefix(body, "/")
	}
	body = strings.TrimLeft(body, "*")
	return strings.TrimLeft(body, " \t")
}

func trimCommentEnd(s string) string {
	s = strings.TrimRight(s, " \t\r")
	return strings.TrimSuffix(s, "*/")
}

// scanIdentifier returns the byte length of the Java identifier s starts
// with, or 0
func scanIdentifier(s string) int {
	for i, r := range s {
		if i == 0 {
			if !(xid.Start(r) || r == '_' || r == '$') {
				return 0
			}
			continue
		}
		if !(xid.Continue(r) || r == '$' || unicode.Is(unicode.Cf, r)) {
			return i
		}
	}
	return len(s)
}

// shift moves p n bytes to the right on the same line
func (p Pos) shift(n int) Pos {
	p.Col += n
	p.Offset += n
	return p
}
