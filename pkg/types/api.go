package types

// ModelsResponse wraps the catalog returned by GET /models.
type ModelsResponse struct {
	// Classified models in engine enumeration order.
	Models []Model `json:"models"`
}

// ErrorResponse is a consistent JSON error payload.
type ErrorResponse struct {
	// Error message.
	// example: engine not initialized
	Error string `json:"error" example:"engine not initialized"`
	// HTTP status code.
	// example: 503
	Code int `json:"code" example:"503"`
}

// DeviceStatus describes the compute device the engine session settled on.
type DeviceStatus struct {
	// Active mode, "gpu" or "cpu".
	// example: gpu
	Mode string `json:"mode" example:"gpu"`
	// GPU index in use when mode is "gpu".
	// example: 0
	GPUID int `json:"gpu_id" example:"0"`
	// CPU thread count when mode is "cpu".
	// example: 8
	Threads int `json:"threads,omitempty" example:"8"`
	// True when GPU initialization failed and the session fell back to CPU.
	// example: false
	CPUFallback bool `json:"cpu_fallback" example:"false"`
}

// JobStatus summarizes the in-flight or most recently finished job.
type JobStatus struct {
	// Model name the job was submitted with.
	// example: waifu2x_cunet_up2x
	Model string `json:"model" example:"waifu2x_cunet_up2x"`
	// Lifecycle state: running, done or failed.
	// example: running
	State string `json:"state" example:"running"`
	// Poll attempts performed so far.
	// example: 12
	PollAttempts int `json:"poll_attempts" example:"12"`
	// Engine result id, set once the job completes.
	// example: 7
	ResultID int `json:"result_id,omitempty" example:"7"`
	// Engine-reported processing time in seconds, set on completion.
	// example: 3.52
	ElapsedSeconds float64 `json:"elapsed_seconds,omitempty" example:"3.52"`
	// Failure message for failed or timed-out jobs.
	Error string `json:"error,omitempty"`
}

// StatusResponse is returned by GET /status.
type StatusResponse struct {
	// Session state (uninitialized, idle, processing).
	// example: idle
	State string `json:"state" example:"idle"`
	// Active device configuration.
	Device DeviceStatus `json:"device"`
	// Number of classified models in the catalog.
	// example: 37
	ModelCount int `json:"model_count" example:"37"`
	// Single-job view; nil before the first submission.
	Job *JobStatus `json:"job,omitempty"`
	// Top-level error observed by the session, if any.
	Error string `json:"error,omitempty"`
	// Uptime of this invocation in seconds.
	// example: 12
	UptimeSeconds int64 `json:"uptime_seconds" example:"12"`
	// Server time in unix seconds.
	// example: 1700000000
	ServerTimeUnix int64 `json:"server_time_unix" example:"1700000000"`
}
