package processor

import (
	"time"

	"sr/internal/engine"
)

// ModelPathEnv is the fallback environment variable supplying the engine's
// model-weights directory when no explicit override is given.
const ModelPathEnv = "SR_MODEL_PATH"

// Defaults applied when corresponding Config fields are unset.
const (
	defaultPollInterval = 500 * time.Millisecond
	defaultMaxPolls     = 60
	defaultTileSize     = 400
	defaultOutputFormat = "webp"
)

// Fixed protocol values of the engine's task interface.
const (
	// taskBackID is the priority value every submission carries.
	taskBackID = 1
	// pollSlot is the output-channel index completed results appear on.
	pollSlot = 0
)

// Config encapsulates all tunables for Processor construction.
type Config struct {
	Engine engine.Engine

	// ModelPath optionally overrides the engine's weights directory. When
	// empty, ModelPathEnv is consulted; when that is empty too, the
	// engine's built-in default stays in effect.
	ModelPath string

	// GPUID selects the GPU when CPUMode is false.
	GPUID int
	// CPUMode forces CPU execution regardless of GPU availability.
	CPUMode bool

	TileSize     int
	OutputFormat string

	PollInterval time.Duration
	MaxPolls     int

	Events EventPublisher
}

// NewWithConfig constructs a Processor from Config.
func NewWithConfig(cfg Config) *Processor {
	p := &Processor{
		session:      newSession(cfg.Engine),
		gpuID:        cfg.GPUID,
		cpuMode:      cfg.CPUMode,
		modelPath:    cfg.ModelPath,
		tileSize:     cfg.TileSize,
		outputFormat: cfg.OutputFormat,
		pollInterval: cfg.PollInterval,
		maxPolls:     cfg.MaxPolls,
		events:       cfg.Events,
	}
	// Apply defaults if unset
	if p.tileSize <= 0 {
		p.tileSize = defaultTileSize
	}
	if p.outputFormat == "" {
		p.outputFormat = defaultOutputFormat
	}
	if p.pollInterval <= 0 {
		p.pollInterval = defaultPollInterval
	}
	if p.maxPolls <= 0 {
		p.maxPolls = defaultMaxPolls
	}
	if p.events == nil {
		p.events = noopPublisher{}
	}
	p.startTime = time.Now()
	return p
}
