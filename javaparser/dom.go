package javaparser

import "fmt"

// FileRef is a dedicated type for file references, allowing future refactoring
// of how files are identified without changing the API.
type FileRef string

// Pos represents a position in a source file. Line and column are 1-indexed
// for human-readable messages; Col counts bytes like Offset does.
type Pos struct {
	File   FileRef `yaml:"-"`
	Line   int     `yaml:"line"`
	Col    int     `yaml:"col"`
	Offset int     `yaml:"offset"`
}

func (p Pos) String() string {
	if p.File == "" {
		return fmt.Sprintf("%d:%d", p.Line, p.Col)
	}
	return fmt.Sprintf("%s:%d:%d", p.File, p.Line, p.Col)
}

// Region is a maximal run of input classified under one State.
// Stop is the position just after the last character of the region.
type Region struct {
	State State  `yaml:"state"`
	Start Pos    `yaml:"start"`
	Stop  Pos    `yaml:"stop"`
	Text  string `yaml:"text"`
}

// Error is reported for input the scanner cannot read, never for the Java
// itself: the state machine accepts any sequence of characters.
type Error struct {
	Pos     Pos
	Message string
}

func (e Error) Error() string {
	return fmt.Sprintf("%s:%d:%d %s", e.Pos.File, e.Pos.Line, e.Pos.Col, e.Message)
}

func (e Error) WithoutPos() Error {
	return Error{Message: e.Message}
}
