// Package processor owns the single enhancement job: engine session
// lifecycle, model catalog construction, task submission, result polling,
// and atomic persistence. It is structured into small files by concern:
//
//   - processor.go: core Processor type, constructor, Process entry point.
//   - config.go: Config and package defaults; NewWithConfig applies defaults.
//   - session.go: engine session (weights path, device selection, teardown).
//   - poll.go: task submission and the fixed-interval result poll loop.
//   - writer.go: temp-file write and atomic rename onto the destination.
//   - errors.go: error types and helpers (IsUnknownModel, IsTimeout, ...).
//   - events.go: lifecycle event publishing (noop by default).
//   - metrics.go: Prometheus counters/histograms for jobs and polling.
//
// The engine binding itself lives in internal/engine (real cgo binding
// behind `-tags=srvulkan`, a failing stub otherwise); this package only
// drives the Engine interface and never links cgo.
//
// External packages should treat this package as the orchestration layer and
// use public methods only (NewWithConfig, Init, Process, Models, Status).
// Internal types are subject to change.
package processor
