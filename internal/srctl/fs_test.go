package srctl

import (
	"os"
	"path/filepath"
	"testing"
)

func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir %s: %v", dir, err)
	}
	t.Cleanup(func() { _ = os.Chdir(prev) })
}

func TestFindNativeLib(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	if _, ok := findNativeLib(); ok {
		t.Fatal("found a lib in an empty tree")
	}
	if err := os.MkdirAll(filepath.Join(dir, "lib"), 0o755); err != nil {
		t.Fatalf("mkdir lib: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "lib", "libsr_vulkan.so"), []byte("elf"), 0o644); err != nil {
		t.Fatalf("write lib: %v", err)
	}
	got, ok := findNativeLib()
	if !ok || got != filepath.Join("lib", "libsr_vulkan.so") {
		t.Fatalf("findNativeLib = %q, %v", got, ok)
	}
	if !hasNativeLib() {
		t.Fatal("hasNativeLib = false with lib present")
	}
}

func TestWeightsDirEnvPrecedence(t *testing.T) {
	t.Setenv("SR_MODEL_PATH", "/custom/weights")
	if got := weightsDir(); got != "/custom/weights" {
		t.Fatalf("weightsDir = %q, want env value", got)
	}
	t.Setenv("SR_MODEL_PATH", "")
	want := filepath.Join(homeDir(), "models", "sr")
	if got := weightsDir(); got != want {
		t.Fatalf("weightsDir = %q, want %q", got, want)
	}
}

func TestCountWeightFiles(t *testing.T) {
	dir := t.TempDir()
	for _, n := range []string{"up2x.param", "up2x.bin", "README.md"} {
		if err := os.WriteFile(filepath.Join(dir, n), []byte("x"), 0o644); err != nil {
			t.Fatalf("write %s: %v", n, err)
		}
	}
	if err := os.Mkdir(filepath.Join(dir, "sub.bin"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if got := countWeightFiles(dir); got != 2 {
		t.Fatalf("count = %d, want 2", got)
	}
	if got := countWeightFiles(filepath.Join(dir, "missing")); got != 0 {
		t.Fatalf("missing dir count = %d, want 0", got)
	}
}
