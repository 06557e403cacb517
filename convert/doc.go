// Package convert drives one document conversion end to end: stage the
// input, write the parameter document, invoke the engine, and collect the
// produced binary plus any extracted media.
//
// The Orchestrator borrows the engine handle from its lifecycle per call and
// never retains it. Classification and sanitization failures surface before
// anything is staged; once the entrypoint is invoked, the conversion runs to
// completion or failure atomically from the orchestrator's point of view.
package convert
