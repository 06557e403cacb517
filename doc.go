// Package convertd orchestrates office document conversion through a
// sandboxed, pre-built conversion engine.
//
// The engine is a black box compiled to WebAssembly: it reads its inputs from
// a staged virtual filesystem, is driven by a single parameter document, and
// reports success or failure through an integer status code. This library
// owns everything around that contract: loading and initializing the engine
// exactly once, staging inputs and parameters, invoking the entrypoint, and
// collecting the converted output plus any embedded media the engine
// extracted along the way.
//
// # Architecture Overview
//
// The library is organized into focused packages:
//
//	convertd/            Root package with the FS and Handle capabilities
//	├── engine/          wazero integration, module source, lifecycle
//	├── vfs/             afero-backed staging filesystem implementations
//	├── staging/         name sanitization, layout, parameter documents
//	├── format/          extension classification and save-target metadata
//	├── convert/         the conversion orchestrator and media collection
//	├── editor/          document editor command/event bridge
//	├── errors/          structured error types for debugging
//	└── cmd/convertd/    command-line front end
//
// # Quick Start
//
// Convert a document to the engine's binary representation:
//
//	eng, err := engine.New(ctx, nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer eng.Close(ctx)
//
//	lc := engine.NewLifecycle(eng.Loader(engine.FileSource("x2t.wasm"), workDir))
//	orch := convert.New(lc)
//
//	res, err := orch.DocumentToBinary(ctx, "report.docx", data)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.OutputFileName, len(res.Payload), "bytes")
//
// # Concurrency
//
// Lifecycle initialization is single-flight: concurrent callers share one
// loading attempt and observe the same outcome. Conversions themselves are
// not serialized by this library; the engine is a single shared resource and
// callers that convert concurrently must coordinate among themselves.
//
// # Staging Model
//
// The engine's scratch filesystem keeps no history. Staging paths are
// rewritten, never appended, between requests; files from a prior conversion
// remain on disk until a later request overwrites them, and nothing in this
// library relies on their presence.
package convertd
