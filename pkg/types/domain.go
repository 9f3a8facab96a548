package types

// Model represents one selectable enhancement model discovered from the
// engine's symbol table.
type Model struct {
	// Engine-assigned integer handle used in task submission calls.
	// example: 23
	ID int `json:"id" example:"23"`
	// Lowercase, separator-normalized name derived from the raw symbol.
	// example: waifu2x_cunet_up2x
	Name string `json:"name" example:"waifu2x_cunet_up2x"`
	// Raw engine symbol the descriptor was built from.
	// example: MODEL_WAIFU2X_CUNET_UP2X
	Symbol string `json:"symbol" example:"MODEL_WAIFU2X_CUNET_UP2X"`
	// Family prefix grouping related models for listing.
	// example: WAIFU2X
	Family string `json:"family,omitempty" example:"WAIFU2X"`
	// Family-relative label: the name with the family prefix stripped.
	// example: cunet_up2x
	Label string `json:"label,omitempty" example:"cunet_up2x"`
}

// TaskRequest is a single enhancement task handed to the engine. It is
// constructed from validated CLI input and consumed exactly once.
type TaskRequest struct {
	// Raw input image bytes, read whole into memory before submission.
	ImageBytes []byte `json:"-"`
	// Resolved model handle.
	ModelID int `json:"model_id"`
	// Submission priority; the engine contract fixes this at 1.
	Priority int `json:"priority"`
	// Upscale factor.
	Scale float32 `json:"scale"`
}

// TaskResult carries the payload returned by a completed engine task.
type TaskResult struct {
	// Enhanced image bytes.
	OutputBytes []byte `json:"-"`
	// Output format reported by the engine (e.g. webp).
	OutputFormat string `json:"output_format"`
	// Engine-internal numeric id of the result.
	ResultID int `json:"result_id"`
	// Processing time reported by the engine, in seconds.
	ElapsedSeconds float64 `json:"elapsed_seconds"`
}
