package snapshot

import (
	"errors"
	"fmt"
)

// Severity indicates how serious an error is. Everything the pipeline emits
// today is SeverityError; the field exists so callers can distinguish
// advisory conditions if they ever appear.
type Severity int

const (
	SeverityWarning Severity = iota
	SeverityError
)

// String returns a human-readable name for the severity.
func (s Severity) String() string {
	switch s {
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return fmt.Sprintf("Severity(%d)", s)
	}
}

// Code classifies an error into one of the pipeline's stable domains.
type Code int

const (
	// CodeUsage indicates bad or missing command-line input.
	CodeUsage Code = iota
	// CodeIO indicates a failed file open, read or write.
	CodeIO
	// CodeSyntax indicates a malformed line in an input file.
	CodeSyntax
	// CodeSemantic indicates a structurally valid file that violates a
	// model rule (missing required key, duplicate single-valued key, ...).
	CodeSemantic
	// CodeValidation indicates a rejection by the pre-build validator.
	CodeValidation
)

// String returns a human-readable name for the code.
func (c Code) String() string {
	switch c {
	case CodeUsage:
		return "usage error"
	case CodeIO:
		return "i/o error"
	case CodeSyntax:
		return "syntax error"
	case CodeSemantic:
		return "semantic error"
	case CodeValidation:
		return "validation error"
	default:
		return fmt.Sprintf("Code(%d)", c)
	}
}

// Error is the structured error used throughout the snapshot pipeline.
type Error struct {
	Severity Severity
	Code     Code
	Message  string // self-contained description, names the offending input
	Path     string // offending file path, when known
	Err      error  // underlying error, if any
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error for error chain inspection.
func (e *Error) Unwrap() error {
	return e.Err
}

// NewUsageError creates a command-line usage error.
func NewUsageError(message string) *Error {
	return &Error{Severity: SeverityError, Code: CodeUsage, Message: message}
}

// NewIOError creates a file I/O error for the given path.
func NewIOError(message, path string, err error) *Error {
	return &Error{Severity: SeverityError, Code: CodeIO,
		Message: message + ": " + path, Path: path, Err: err}
}

// NewSyntaxError wraps a parse failure from the ini layer.
func NewSyntaxError(path string, err error) *Error {
	return &Error{Severity: SeverityError, Code: CodeSyntax,
		Message: err.Error(), Path: path, Err: err}
}

// NewSemanticError creates a model-rule violation error.
func NewSemanticError(path, message string) *Error {
	return &Error{Severity: SeverityError, Code: CodeSemantic,
		Message: message, Path: path}
}

// NewValidationError wraps a rejection from the pre-build validator.
func NewValidationError(path string, err error) *Error {
	return &Error{Severity: SeverityError, Code: CodeValidation,
		Message: err.Error(), Path: path, Err: err}
}

func isCode(err error, code Code) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == code
}

// IsUsageError checks if an error is a usage error.
func IsUsageError(err error) bool { return isCode(err, CodeUsage) }

// IsIOError checks if an error is an I/O error.
func IsIOError(err error) bool { return isCode(err, CodeIO) }

// IsSyntaxError checks if an error is a syntax error.
func IsSyntaxError(err error) bool { return isCode(err, CodeSyntax) }

// IsSemanticError checks if an error is a semantic error.
func IsSemanticError(err error) bool { return isCode(err, CodeSemantic) }

// IsValidationError checks if an error is a validator rejection.
func IsValidationError(err error) bool { return isCode(err, CodeValidation) }
