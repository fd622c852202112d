package matrix

import "fmt"

// ValidationError indicates a structural problem in the CSV input: a repeated
// feature or taxa name, a row with the wrong number of value fields, or no
// usable data at all.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// ParseError indicates a value field that could not be converted to a number.
type ParseError struct {
	Row     int    // 1-based CSV row number, counting the header
	Field   int    // 1-based value field within the row
	Literal string // the offending cell contents, trimmed
	Err     error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("row %d, value field %d: could not convert %q to a number", e.Row, e.Field, e.Literal)
}

func (e *ParseError) Unwrap() error { return e.Err }

// NotFoundError indicates a query for a feature or taxa name the matrix does
// not hold.
type NotFoundError struct {
	Kind string // "feature" or "taxa"
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Kind, e.Name)
}
