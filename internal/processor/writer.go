package processor

import (
	"fmt"
	"os"

	"sr/pkg/types"
)

// persist writes the result through a temporary file named by the engine's
// own output convention, "<result_id>.<format>", in the current working
// directory, then renames it onto the destination. The rename both avoids
// partial files at the destination and re-targets the engine-named artifact
// onto the caller's chosen name; the destination keeps the caller's
// extension even when it differs from the engine's reported format.
func persist(res types.TaskResult, dest string) error {
	tmp := fmt.Sprintf("%d.%s", res.ResultID, res.OutputFormat)
	if err := os.WriteFile(tmp, res.OutputBytes, 0o644); err != nil {
		return fmt.Errorf("write temp %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, dest); err != nil {
		// The temp artifact may remain; the destination is never partial.
		return fmt.Errorf("rename %s -> %s: %w", tmp, dest, err)
	}
	return nil
}
