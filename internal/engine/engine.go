// Package engine defines the call boundary to the native sr_vulkan
// inference library. The library performs the actual image enhancement;
// this package only describes its primitives and provides the binding.
//
// Build tags and runtimes:
//
//   - Real binding (cgo): vulkan.go, enabled with `-tags=srvulkan`.
//     Links against libsr_vulkan; see the cgo directives there.
//   - Default builds compile stub.go instead, which fails fast from
//     NewVulkan. This keeps CI and cross-compilation CGO-free.
//   - Tests use the scriptable fake in the enginetest subpackage.
package engine

import "errors"

// ErrNotBuilt is returned by NewVulkan when the binary was compiled without
// the 'srvulkan' build tag.
var ErrNotBuilt = errors.New("sr_vulkan support not built (missing 'srvulkan' build tag)")

// Symbol is one entry of the engine's exposed symbol table.
type Symbol struct {
	Name  string
	Value int
}

// Output is the payload returned by a completed task slot: the enhanced
// bytes, the engine's output format, its internal result id, and the
// processing time tick in seconds.
type Output struct {
	Data     []byte
	Format   string
	ResultID int
	Tick     float64
}

// Engine is the primitive contract of the native inference provider. At most
// one live engine is driven per invocation; the library is not reentrant
// across logical sessions, so all calls after Init must go through the same
// instance.
type Engine interface {
	// Symbols enumerates the engine's exposed named constants in the
	// engine's own order. The catalog preserves that order; it is neither
	// lexicographic nor controlled by this program.
	Symbols() []Symbol
	// SetModelPath points the engine at a custom model-weights directory.
	// When never called, the engine's built-in default stays in effect.
	SetModelPath(dir string)
	// Init brings the engine up on the GPU backend. A negative return code
	// means GPU initialization failed and CPU execution must be used.
	Init() int
	// InitSet selects the compute device. gpuID -1 selects CPU execution
	// with the given thread count; for a real GPU index threads is ignored.
	// A negative return code is a hard configuration failure.
	InitSet(gpuID, threads int) int
	// CPUCoreCount reports the engine's usable CPU core count.
	CPUCoreCount() int
	// Add enqueues one enhancement task. A non-positive return code signals
	// submission failure; consult LastError for the reason.
	Add(data []byte, modelID, backID int, scale float32, tileSize int, format string) int
	// Load polls the given output slot. ok is false while no result exists
	// yet. A present Output with empty Data also means "not ready".
	Load(slot int) (out Output, ok bool)
	// LastError returns the engine's most recent error text, if any.
	LastError() string
	// Stop tears down the running task pipeline. Only meaningful after a
	// successful Add.
	Stop()
}
