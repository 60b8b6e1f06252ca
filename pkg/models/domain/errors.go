package domain

import "fmt"

// ParseError reports input that could not be decoded as delimited tabular
// text: malformed quoting, inconsistent field counts, not UTF-8.
type ParseError struct {
	Line   int
	Reason string
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("parse error at line %d: %s", e.Line, e.Reason)
	}
	return fmt.Sprintf("parse error: %s", e.Reason)
}

// SchemaError reports a well-formed table that does not satisfy the
// dashboard schema: a required column is missing, or a value in a numeric
// column is not a number. Surfaced distinctly from ParseError so the UI
// can tell "bad file" from "wrong columns".
type SchemaError struct {
	Column string
	Line   int
	Reason string
}

func (e *SchemaError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("schema error in column %q at line %d: %s", e.Column, e.Line, e.Reason)
	}
	return fmt.Sprintf("schema error in column %q: %s", e.Column, e.Reason)
}
