package processor

import (
	"fmt"
	"log"
	"os"
	"sync"
	"time"

	"sr/internal/catalog"
	"sr/internal/common/fsutil"
	"sr/pkg/types"
)

// Processor coordinates one enhancement job at a time against a single
// engine session. Construct with NewWithConfig; Init may be called
// explicitly (listing mode) or is run lazily by Process after input
// validation.
type Processor struct {
	mu sync.Mutex

	session *session
	catalog *catalog.Catalog

	gpuID        int
	cpuMode      bool
	modelPath    string
	tileSize     int
	outputFormat string
	pollInterval time.Duration
	maxPolls     int

	events EventPublisher

	busy      bool
	lastJob   *types.JobStatus
	startTime time.Time
}

// Init configures the session (weights path, device) and builds the model
// catalog. Idempotent; safe to call before Process or listing.
func (p *Processor) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.catalog != nil {
		return nil
	}
	if err := p.session.configure(p.modelPath); err != nil {
		return err
	}
	if forced := p.session.initialize(p.cpuMode); forced {
		engineInitsTotal.WithLabelValues("cpu_fallback").Inc()
		log.Printf("processor event=gpu_init_failed fallback=cpu")
	}
	if err := p.session.selectDevice(p.gpuID); err != nil {
		p.events.Publish(Event{Name: "init_failed"})
		return err
	}
	mode := "gpu"
	if p.session.cpuMode {
		mode = "cpu"
	}
	engineInitsTotal.WithLabelValues(mode).Inc()
	p.catalog = catalog.Build(p.session.eng.Symbols())
	log.Printf("processor event=session_ready mode=%s models=%d", mode, p.catalog.Len())
	p.events.Publish(Event{Name: "session_ready", Fields: map[string]any{
		"mode":   mode,
		"models": p.catalog.Len(),
	}})
	return nil
}

// Ready reports whether the session is initialized and the catalog built.
func (p *Processor) Ready() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.catalog != nil
}

// Models returns the classified models in enumeration order, or nil before
// Init.
func (p *Processor) Models() []types.Model {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.catalog == nil {
		return nil
	}
	return p.catalog.Models()
}

// FormatListing renders the grouped model listing. Init must have run.
func (p *Processor) FormatListing() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.catalog == nil {
		return ""
	}
	return p.catalog.FormatListing()
}

// Process runs one enhancement job end to end: validate input, initialize
// the session if needed, resolve the model, submit, poll to completion, and
// persist atomically. On success the returned message is the engine's
// elapsed tick formatted to two decimal places.
func (p *Processor) Process(inputPath, outputPath string, scale float32, model string) (string, error) {
	if err := p.acquire(model); err != nil {
		return "", err
	}
	start := time.Now()
	res, attempts, err := p.run(inputPath, outputPath, scale, model)
	p.finish(attempts, res, err, time.Since(start))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%.2f", res.ElapsedSeconds), nil
}

func (p *Processor) run(inputPath, outputPath string, scale float32, model string) (types.TaskResult, int, error) {
	// Input validation precedes any engine contact.
	if !fsutil.PathExists(inputPath) {
		return types.TaskResult{}, 0, ErrInputNotFound(inputPath)
	}
	if err := p.Init(); err != nil {
		return types.TaskResult{}, 0, err
	}
	m, ok := p.resolve(model)
	if !ok {
		log.Printf("processor event=unknown_model input=%q", model)
		return types.TaskResult{}, 0, ErrUnknownModel(model)
	}
	data, err := os.ReadFile(inputPath)
	if err != nil {
		return types.TaskResult{}, 0, fmt.Errorf("read input %s: %w", inputPath, err)
	}
	req := types.TaskRequest{
		ImageBytes: data,
		ModelID:    m.ID,
		Priority:   taskBackID,
		Scale:      scale,
	}
	res, attempts, err := p.submitAndWait(req, m)
	if err != nil {
		return types.TaskResult{}, attempts, err
	}
	if err := persist(res, outputPath); err != nil {
		return res, attempts, err
	}
	log.Printf("processor event=result_written dest=%q bytes=%d", outputPath, len(res.OutputBytes))
	return res, attempts, nil
}

func (p *Processor) resolve(model string) (types.Model, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.catalog.Resolve(model)
}

// acquire claims the single job slot.
func (p *Processor) acquire(model string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.busy {
		return busyError{}
	}
	p.busy = true
	p.lastJob = &types.JobStatus{Model: model, State: "running"}
	return nil
}

// finish releases the job slot and records the outcome.
func (p *Processor) finish(attempts int, res types.TaskResult, err error, dur time.Duration) {
	outcome := outcomeLabel(err)
	jobsTotal.WithLabelValues(outcome).Inc()
	jobDuration.Observe(dur.Seconds())

	p.mu.Lock()
	defer p.mu.Unlock()
	p.busy = false
	job := p.lastJob
	job.PollAttempts = attempts
	if err != nil {
		job.State = "failed"
		job.Error = err.Error()
		p.events.Publish(Event{Name: "job_failed", Model: job.Model, Fields: map[string]any{
			"outcome": outcome,
		}})
		return
	}
	job.State = "done"
	job.ResultID = res.ResultID
	job.ElapsedSeconds = res.ElapsedSeconds
	p.events.Publish(Event{Name: "job_done", Model: job.Model, Fields: map[string]any{
		"elapsed": res.ElapsedSeconds,
		"polls":   attempts,
	}})
}

func outcomeLabel(err error) string {
	switch {
	case err == nil:
		return "success"
	case IsTimeout(err):
		return "timeout"
	case IsSubmit(err):
		return "submit_error"
	case IsInputNotFound(err):
		return "input_missing"
	case IsUnknownModel(err):
		return "unknown_model"
	case IsInitFailed(err):
		return "init_failed"
	case IsBusy(err):
		return "busy"
	default:
		return "io_error"
	}
}

// Status builds a read-only snapshot for the debug HTTP surface.
func (p *Processor) Status() types.StatusResponse {
	p.mu.Lock()
	defer p.mu.Unlock()
	resp := types.StatusResponse{
		State:          "idle",
		UptimeSeconds:  int64(time.Since(p.startTime).Seconds()),
		ServerTimeUnix: time.Now().Unix(),
	}
	if p.catalog == nil {
		resp.State = "uninitialized"
	} else {
		resp.ModelCount = p.catalog.Len()
	}
	if p.busy {
		resp.State = "processing"
	}
	mode := "gpu"
	if p.session.cpuMode {
		mode = "cpu"
	}
	resp.Device = types.DeviceStatus{
		Mode:        mode,
		GPUID:       p.session.gpuID,
		Threads:     p.session.threads,
		CPUFallback: p.session.cpuMode && !p.cpuMode,
	}
	if p.lastJob != nil {
		job := *p.lastJob
		resp.Job = &job
	}
	return resp
}
