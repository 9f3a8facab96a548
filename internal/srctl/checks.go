package srctl

import "fmt"

// checkLib verifies the native library layout the srvulkan build expects.
func checkLib() error {
	path, ok := findNativeLib()
	if !ok {
		return fmt.Errorf("no sr_vulkan library under lib/ (expected lib/libsr_vulkan.so)")
	}
	info("found %s", path)
	return nil
}

// checkModels verifies that model weights are where the engine will look.
func checkModels() error {
	dir := weightsDir()
	n := countWeightFiles(dir)
	if n == 0 {
		return fmt.Errorf("no model weights (*.param/*.bin) in %s; set SR_MODEL_PATH or pass --model-path", dir)
	}
	info("found %d weight files in %s", n, dir)
	return nil
}
