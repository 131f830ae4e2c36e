package ini

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Parse reads the stream line by line and builds a Document. source names the
// input for error messages; it is not opened or read by this function.
//
// Rules, in order, per physical line:
//   - everything from the first CR, ';' or '#' is discarded
//   - a line containing '[' with a ']' after it opens (or reopens) the
//     section named between the brackets
//   - a blank line is skipped
//   - anything else must be a key=value line belonging to the current
//     section; a line before any section header is an error
func Parse(r io.Reader, source string) (*Document, error) {
	doc := NewDocument()

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var current *Section
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := cleanLine(sc.Text())

		if name, ok := sectionName(line); ok {
			current = doc.open(name)
			continue
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		if current == nil {
			return nil, &ParseError{File: source, Line: lineNo,
				Message: fmt.Sprintf("definition before any section header: %q", line)}
		}

		eq := strings.IndexByte(line, '=')
		if eq < 0 {
			return nil, &ParseError{File: source, Line: lineNo,
				Message: fmt.Sprintf("cannot parse %q as key=value", line)}
		}
		current.Entries = append(current.Entries, Entry{
			Key:   strings.TrimSpace(line[:eq]),
			Value: strings.TrimSpace(line[eq+1:]),
		})
	}
	if err := sc.Err(); err != nil {
		return nil, &ParseError{File: source, Message: fmt.Sprintf("read failed: %v", err)}
	}

	return doc, nil
}

// cleanLine truncates line at the first CR, ';' or '#'. The truncation does
// not respect quoting; a quoted value containing ';' is cut short.
func cleanLine(line string) string {
	if i := strings.IndexAny(line, "\r;#"); i >= 0 {
		return line[:i]
	}
	return line
}

// sectionName reports whether line is a section header and returns the
// trimmed name between the first '[' and the next ']'. A '[' without a
// closing ']' does not make a header; such a line falls through to key=value
// handling.
func sectionName(line string) (string, bool) {
	open := strings.IndexByte(line, '[')
	if open < 0 {
		return "", false
	}
	rest := line[open+1:]
	closing := strings.IndexByte(rest, ']')
	if closing < 0 {
		return "", false
	}
	return strings.TrimSpace(rest[:closing]), true
}
