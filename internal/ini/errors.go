package ini

import "fmt"

// ParseError reports a malformed line in an input file.
type ParseError struct {
	File    string // source name passed to Parse
	Line    int    // 1-based physical line number
	Message string
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s:%d: %s", e.File, e.Line, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.File, e.Message)
}
