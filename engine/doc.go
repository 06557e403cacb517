// Package engine loads and drives the native conversion engine.
//
// The engine ships as a WebAssembly command module. It is acquired through a
// Source, compiled with wazero, and handed the staging tree as a directory
// mount. One Invoke corresponds to one instantiation of the module: argv
// carries the parameter document path, and the WASI exit code is the engine's
// conversion status.
//
// Lifecycle owns the single engine handle for the process lifetime.
// Initialization is single-flight with a bounded readiness wait: concurrent
// callers share one loading attempt and its outcome, a timed-out or failed
// attempt is discarded, and the next caller starts a fresh one.
package engine
