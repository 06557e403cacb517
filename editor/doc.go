// Package editor bridges the conversion orchestrator to a hosting document
// editor.
//
// The editor contract is command/event shaped: the bridge emits named
// commands carrying payloads (open-document, set-image-urls, save-callback,
// write-file-callback) and handles the editor's save and write-file events.
// Output formats cross the boundary as integer codes both the editor and the
// engine agree on; see the format package table.
package editor
