// Package errors provides error handling for stubgen.
//
// This package re-exports github.com/cockroachdb/errors, providing:
//   - Stack traces for debugging
//   - Error wrapping and context
//   - PII-safe error formatting
//
// Usage:
//
//	// Create new error
//	err := errors.New("something went wrong")
//
//	// Wrap with context
//	if err := analyze(); err != nil {
//	    return errors.Wrap(err, "failed to analyze client package")
//	}
//
//	// Check against the analysis taxonomy
//	if errors.Is(err, errors.ErrUnionResolution) {
//	    // fatal for this client, abort before writing
//	}
//
// For full documentation see: https://pkg.go.dev/github.com/cockroachdb/errors
package errors

import (
	crdb "github.com/cockroachdb/errors"
)

// Core error creation and wrapping
var (
	New          = crdb.New
	Newf         = crdb.Newf
	Wrap         = crdb.Wrap
	Wrapf        = crdb.Wrapf
	WithStack    = crdb.WithStack
	WithMessage  = crdb.WithMessage
	WithMessagef = crdb.WithMessagef
)

// User-facing messages and details
var (
	WithHint    = crdb.WithHint
	WithHintf   = crdb.WithHintf
	WithDetail  = crdb.WithDetail
	WithDetailf = crdb.WithDetailf
)

// Error inspection
var (
	Is        = crdb.Is
	IsAny     = crdb.IsAny
	As        = crdb.As
	Unwrap    = crdb.Unwrap
	UnwrapAll = crdb.UnwrapAll
)

// Assertions
var (
	AssertionFailedf = crdb.AssertionFailedf
)

// Analysis and generation error taxonomy.
// Every error produced by the pipeline wraps exactly one of these sentinels,
// so callers can branch on the failure class with errors.Is().
var (
	// ErrDiscovery indicates a required submodule or class is absent from
	// the client package (no client/config/models module, no *Client class,
	// missing Config or Plugin member, or an unloadable module graph).
	ErrDiscovery = New("discovery failed")

	// ErrAnnotation indicates an operation parameter or return annotation
	// is missing or is not a recognized typed expression.
	ErrAnnotation = New("invalid type annotation")

	// ErrSubscript indicates a malformed generic decomposition: the return
	// annotation of a streaming operation is not a subscript, carries a raw
	// unparsed slice, or has the wrong argument arity for its stream kind.
	ErrSubscript = New("invalid generic subscript")

	// ErrUnionResolution indicates a union alias names a member that does
	// not resolve to a sibling of the models module.
	ErrUnionResolution = New("union member not resolved")

	// ErrWrite indicates a filesystem failure while emitting a page.
	// Unlike the four analysis sentinels it is caught at the write site
	// and converted into a per-client failure.
	ErrWrite = New("write failed")
)

// IsFatalAnalysis reports whether err belongs to the analysis taxonomy that
// aborts a client run before any output is written.
func IsFatalAnalysis(err error) bool {
	return err != nil && IsAny(err, ErrDiscovery, ErrAnnotation, ErrSubscript, ErrUnionResolution)
}

// IsDiscoveryError checks if an error is or wraps ErrDiscovery.
func IsDiscoveryError(err error) bool {
	return err != nil && Is(err, ErrDiscovery)
}

// IsWriteError checks if an error is or wraps ErrWrite.
func IsWriteError(err error) bool {
	return err != nil && Is(err, ErrWrite)
}

// NewDiscoveryError creates a discovery error with a formatted message.
func NewDiscoveryError(format string, args ...interface{}) error {
	return Wrap(ErrDiscovery, Newf(format, args...).Error())
}

// NewAnnotationError creates an annotation error with a formatted message.
func NewAnnotationError(format string, args ...interface{}) error {
	return Wrap(ErrAnnotation, Newf(format, args...).Error())
}

// NewSubscriptError creates a subscript error with a formatted message.
func NewSubscriptError(format string, args ...interface{}) error {
	return Wrap(ErrSubscript, Newf(format, args...).Error())
}

// NewUnionResolutionError creates a union resolution error with a formatted message.
func NewUnionResolutionError(format string, args ...interface{}) error {
	return Wrap(ErrUnionResolution, Newf(format, args...).Error())
}

// WrapWrite wraps a filesystem error as a write error with the offending path.
func WrapWrite(err error, path string) error {
	return Wrap(Wrap(ErrWrite, err.Error()), path)
}
