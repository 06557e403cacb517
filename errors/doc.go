// Package errors provides structured error types for the convertd library.
//
// Errors are categorized by Phase (where in the conversion flow the error
// occurred) and Kind (error category). The Error type includes rich context:
// the staging path involved, the engine status code, and a cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseStage, errors.KindStagingIO).
//		Path("/working/report.docx").
//		Detail("write input file").
//		Cause(ioErr).
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.UnsupportedFormat("xyz")
//	err := errors.ConversionFailed(1)
//
// All errors implement the standard error interface and support errors.Is/As.
// A cancelled save is not a failure: it is reported through the
// ErrSaveCancelled sentinel and recognized with IsCancelled.
package errors
