// Package errors provides structured error types for the bendy library.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error category).
// The Error type includes the emission path (dict keys and list indices) leading to
// the failing value, plus an optional cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseEncode, errors.KindDepthLimit).
//		Path("info", "files", "[3]").
//		Detail("nesting depth %d exceeds ceiling %d", 5, 4).
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.DepthLimit(path, 5, 4)
//	err := errors.InvalidState(errors.PhaseFinalize, "no value has been emitted")
//
// All errors implement the standard error interface and support errors.Is/As.
// Two *Error values match under errors.Is when their Phase and Kind agree.
package errors
