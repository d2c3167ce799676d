package ioformat

import "errors"

// ErrMalformedLine is returned when a line does not have exactly three
// whitespace-separated fields.
var ErrMalformedLine = errors.New("ioformat: malformed line, expected \"id x y\"")

// ErrMalformedField is returned when a line's x or y field is not a
// valid floating-point number.
var ErrMalformedField = errors.New("ioformat: malformed coordinate field")
