package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseEncode   Phase = "encode"   // value emission
	PhaseFinalize Phase = "finalize" // output retrieval
)

// Kind categorizes the error
type Kind string

const (
	KindDepthLimit   Kind = "depth_limit"   // nesting would exceed the configured ceiling
	KindInvalidState Kind = "invalid_state" // operation not valid in the encoder's current state
	KindWriteFailure Kind = "write_failure" // the output buffer rejected bytes
	KindInvalidData  Kind = "invalid_data"  // value cannot be represented in the format
)

// Error is the structured error type used throughout the library
type Error struct {
	Cause  error
	Phase  Phase
	Kind   Kind
	Detail string
	Path   []string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if len(e.Path) > 0 {
		b.WriteString(" at ")
		b.WriteString(strings.Join(e.Path, "."))
	}

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Path sets the emission path
func (b *Builder) Path(path ...string) *Builder {
	b.err.Path = path
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// DepthLimit creates a depth ceiling violation error
func DepthLimit(path []string, depth, limit int) *Error {
	return &Error{
		Phase:  PhaseEncode,
		Kind:   KindDepthLimit,
		Path:   path,
		Detail: fmt.Sprintf("nesting depth %d exceeds ceiling %d", depth, limit),
	}
}

// InvalidState creates an error for an operation that is not valid in the
// encoder's current state (second emission, premature output, reused slot)
func InvalidState(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidState,
		Detail: detail,
	}
}

// WriteFailure creates an error for an output buffer that rejected bytes
func WriteFailure(cause error) *Error {
	return &Error{
		Phase:  PhaseEncode,
		Kind:   KindWriteFailure,
		Detail: "output buffer write failed",
		Cause:  cause,
	}
}

// InvalidData creates an error for a value the format cannot represent
func InvalidData(path []string, detail string) *Error {
	return &Error{
		Phase:  PhaseEncode,
		Kind:   KindInvalidData,
		Path:   path,
		Detail: detail,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}
