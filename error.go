package javacomments

import (
	"fmt"
	"strings"

	"github.com/vippsas/javacomments/javaparser"
)

// DecodeErrors lists every file in a tree that could not be read as UTF-8
// text.
type DecodeErrors struct {
	Errors []javaparser.Error
}

func (e DecodeErrors) Error() string {
	var msg strings.Builder
	msg.WriteString("javacomments: input is not valid text:\n\n")
	for _, e := range e.Errors {
		msg.WriteString(fmt.Sprintf("%s:%d:%d: %s\n", e.Pos.File, e.Pos.Line, e.Pos.Col, e.Message))
	}
	return msg.String()
}
