package parser

import "fmt"

// ParseError reports a grammar violation or trailing, unconsumed input, at
// the line and column where the parser gave up.
type ParseError struct {
	Line    int
	Column  int
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at %d:%d: %s", e.Line, e.Column, e.Message)
}

func errorf(tok Token, format string, args ...interface{}) *ParseError {
	return &ParseError{Line: tok.Line, Column: tok.Column, Message: fmt.Sprintf(format, args...)}
}
