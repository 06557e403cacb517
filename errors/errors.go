package errors

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Phase indicates where in the conversion flow the error occurred
type Phase string

const (
	PhaseClassify Phase = "classify" // extension classification
	PhaseLoad     Phase = "load"     // engine module acquisition
	PhaseInit     Phase = "init"     // engine initialization
	PhaseStage    Phase = "stage"    // staging filesystem I/O
	PhaseInvoke   Phase = "invoke"   // engine entrypoint invocation
	PhaseCollect  Phase = "collect"  // output and media collection
	PhaseDeliver  Phase = "deliver"  // result persistence
)

// Kind categorizes the error
type Kind string

const (
	KindUnsupportedFormat Kind = "unsupported_format"
	KindEngineLoad        Kind = "engine_load"
	KindInitTimeout       Kind = "init_timeout"
	KindNotReady          Kind = "not_ready"
	KindConversionFailed  Kind = "conversion_failed"
	KindStagingIO         Kind = "staging_io"
	KindMediaRead         Kind = "media_read"
	KindInvalidInput      Kind = "invalid_input"
)

// ErrSaveCancelled reports that the user aborted the output-persistence step.
// It is a flow outcome, not a failure, and must be checked with IsCancelled
// before treating a delivery error as fatal.
var ErrSaveCancelled = errors.New("save cancelled")

// IsCancelled reports whether err represents a user-cancelled save.
func IsCancelled(err error) bool {
	return errors.Is(err, ErrSaveCancelled)
}

// Error is the structured error type used throughout the library
type Error struct {
	Cause  error
	Phase  Phase
	Kind   Kind
	Path   string
	Detail string
	Status int32
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Path != "" {
		b.WriteString(" at ")
		b.WriteString(e.Path)
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

// Path sets the staging path involved
func (b *Builder) Path(path string) *Builder {
	b.err.Path = path
	return b
}

// Status sets the engine status code
func (b *Builder) Status(code int32) *Builder {
	b.err.Status = code
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

// UnsupportedFormat creates an error for an extension outside the
// classification table, naming the offending extension.
func UnsupportedFormat(ext string) *Error {
	return &Error{
		Phase:  PhaseClassify,
		Kind:   KindUnsupportedFormat,
		Detail: fmt.Sprintf("unsupported format %q", ext),
	}
}

// EngineLoad creates an engine acquisition failure
func EngineLoad(detail string, cause error) *Error {
	return &Error{
		Phase:  PhaseLoad,
		Kind:   KindEngineLoad,
		Detail: detail,
		Cause:  cause,
	}
}

// InitTimeout creates an error for an initialization attempt that ran past
// its readiness deadline
func InitTimeout(limit time.Duration) *Error {
	return &Error{
		Phase:  PhaseInit,
		Kind:   KindInitTimeout,
		Detail: fmt.Sprintf("engine not ready within %s", limit),
	}
}

// NotReady creates an error for use of the engine before initialization
func NotReady() *Error {
	return &Error{
		Phase:  PhaseInit,
		Kind:   KindNotReady,
		Detail: "engine not initialized",
	}
}

// ConversionFailed creates an error carrying the engine's non-zero status code
func ConversionFailed(status int32) *Error {
	return &Error{
		Phase:  PhaseInvoke,
		Kind:   KindConversionFailed,
		Status: status,
		Detail: fmt.Sprintf("engine exited with status %d", status),
	}
}

// StagingIO creates a staging filesystem failure at the given virtual path
func StagingIO(path string, cause error) *Error {
	return &Error{
		Phase: PhaseStage,
		Kind:  KindStagingIO,
		Path:  path,
		Cause: cause,
	}
}

// MediaRead creates a non-fatal media file read failure. Callers log and
// skip; a MediaRead error never aborts an otherwise-successful conversion.
func MediaRead(path string, cause error) *Error {
	return &Error{
		Phase: PhaseCollect,
		Kind:  KindMediaRead,
		Path:  path,
		Cause: cause,
	}
}

// InvalidInput creates an invalid input error
func InvalidInput(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidInput,
		Detail: detail,
	}
}

// StatusCode extracts the engine status code from a conversion failure.
// The second return is false when err does not carry one.
func StatusCode(err error) (int32, bool) {
	var e *Error
	if errors.As(err, &e) && e.Kind == KindConversionFailed {
		return e.Status, true
	}
	return 0, false
}
