package srctl

import (
	"context"
	"os"
	"path/filepath"
)

func runGoTests(cfg *Config) error {
	info("==== Run Go tests ====")
	args := []string{"test", "./..."}
	if cfg.LogLvl == "debug" {
		args = append(args, "-v")
	}
	return runCmdStreaming(context.Background(), "go", args...)
}

// buildEngine compiles the cgo binding against the real library. Skipped
// when the library is absent so the target stays usable on dev machines
// without a GPU setup.
func buildEngine() error {
	if !fnHasNativeLib() {
		warn("lib/libsr_vulkan not found; skipping tagged engine build")
		return nil
	}
	info("==== Compile the sr_vulkan binding ====")
	return runCmdStreaming(context.Background(), "go", "build", "-tags", "srvulkan", "./internal/engine")
}

// smoke builds the CLI into a temp dir and runs its version report, enough
// to prove the binary links and starts.
func smoke() error {
	info("==== Build and smoke the sr CLI ====")
	dir, err := os.MkdirTemp("", "srctl-smoke-*")
	if err != nil {
		return err
	}
	defer os.RemoveAll(dir)
	bin := filepath.Join(dir, "sr")
	if err := runCmdStreaming(context.Background(), "go", "build", "-o", bin, "./cmd/sr"); err != nil {
		return err
	}
	return runCmdStreaming(context.Background(), bin, "--version")
}
