//go:build !srvulkan

package engine

// This file provides a no-CGO stub for the sr_vulkan binding. It is compiled
// when the 'srvulkan' build tag is NOT set, keeping default builds and CI
// CGO-free. The real binding lives in vulkan.go.

// NewVulkan fails fast: the native engine is not available in this build.
func NewVulkan() (Engine, error) {
	return nil, ErrNotBuilt
}

// Built reports whether real engine support was compiled in.
func Built() bool { return false }
