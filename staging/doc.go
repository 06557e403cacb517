// Package staging owns everything written into the engine's scratch
// filesystem before an invocation: the fixed directory layout, safe staging
// file names, and the parameter document the engine parses.
//
// The parameter document's element names and order are a wire contract with
// the engine parser and must not change. Paths placed into it must already be
// sanitized; the builder performs no escaping of its own.
package staging
