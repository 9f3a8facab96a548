package srctl

import (
	"os"
	"path/filepath"
	"strings"
)

// findNativeLib looks for the sr_vulkan shared library under lib/ relative
// to the working directory, the layout the cgo binding links against.
func findNativeLib() (string, bool) {
	for _, name := range []string{"libsr_vulkan.so", "libsr_vulkan.dylib", "sr_vulkan.dll"} {
		p := filepath.Join("lib", name)
		if st, err := os.Stat(p); err == nil && !st.IsDir() {
			return p, true
		}
	}
	return "", false
}

func hasNativeLib() bool {
	_, ok := findNativeLib()
	return ok
}

// weightsDir resolves the model-weights directory the same way the CLI
// does: SR_MODEL_PATH, else ~/models/sr.
func weightsDir() string {
	if v := os.Getenv("SR_MODEL_PATH"); v != "" {
		return v
	}
	return filepath.Join(homeDir(), "models", "sr")
}

// countWeightFiles counts ncnn weight files (*.param / *.bin) in dir.
func countWeightFiles(dir string) int {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0
	}
	n := 0
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(e.Name())) {
		case ".param", ".bin":
			n++
		}
	}
	return n
}

func homeDir() string {
	if h := os.Getenv("HOME"); h != "" {
		return h
	}
	h, _ := os.UserHomeDir()
	return h
}
