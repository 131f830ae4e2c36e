package snapshot

import (
	"io"

	"github.com/muurk/snapdump/internal/ini"
)

// Role identifies which kind of snapshot file a raw stream holds.
type Role int

const (
	RoleManifest Role = iota
	RoleDevice
	RoleTraceMetadata
)

// String returns a human-readable name for the role.
func (r Role) String() string {
	switch r {
	case RoleManifest:
		return "manifest"
	case RoleDevice:
		return "device"
	case RoleTraceMetadata:
		return "trace metadata"
	default:
		return "unknown"
	}
}

// Validator checks a raw input stream before any model is built from it.
// The production deployment pairs this tool with an independent validating
// parser that performs deeper domain-specific consistency checks; the
// pipeline depends on that capability only through this interface so tests
// can substitute doubles that always pass, always fail, or record their
// inputs.
//
// A non-nil return aborts the whole run before any model file is
// interpreted and before any output is produced.
type Validator interface {
	Validate(role Role, path string, r io.Reader) error
}

// structuralValidator is the built-in Validator. It re-parses each raw
// stream with the ini parser, so files that would fail model assembly anyway
// are rejected up front, mirroring the production validate-then-build order.
type structuralValidator struct{}

// NewStructuralValidator returns the built-in validator.
func NewStructuralValidator() Validator {
	return structuralValidator{}
}

func (structuralValidator) Validate(role Role, path string, r io.Reader) error {
	if _, err := ini.Parse(r, path); err != nil {
		return NewValidationError(path, err)
	}
	return nil
}
