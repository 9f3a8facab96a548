package processor

import (
	"log"
	"time"

	"sr/pkg/types"
)

// submitAndWait enqueues one task and polls the fixed output slot until a
// result arrives or the poll budget is exhausted.
//
// Teardown contract: stop runs exactly once on the success and timeout
// paths. A rejected add never stops the engine, since nothing was started.
func (p *Processor) submitAndWait(req types.TaskRequest, m types.Model) (types.TaskResult, int, error) {
	eng := p.session.eng
	if rc := eng.Add(req.ImageBytes, req.ModelID, req.Priority, req.Scale, p.tileSize, p.outputFormat); rc <= 0 {
		msg := eng.LastError()
		log.Printf("processor event=submit_failed model=%q rc=%d err=%q", m.Name, rc, msg)
		return types.TaskResult{}, 0, ErrSubmit(msg)
	}
	p.session.markStarted()
	log.Printf("processor event=job_submitted model=%q id=%d scale=%.2f", m.Name, req.ModelID, req.Scale)
	p.events.Publish(Event{Name: "job_submitted", Model: m.Name})

	for attempt := 1; attempt <= p.maxPolls; attempt++ {
		out, ok := eng.Load(pollSlot)
		// A present result with an empty payload is "not ready yet" too.
		if ok && len(out.Data) > 0 {
			p.session.stop()
			pollsPerJob.Observe(float64(attempt))
			log.Printf("processor event=job_done model=%q polls=%d tick=%.2f", m.Name, attempt, out.Tick)
			return types.TaskResult{
				OutputBytes:    out.Data,
				OutputFormat:   out.Format,
				ResultID:       out.ResultID,
				ElapsedSeconds: out.Tick,
			}, attempt, nil
		}
		time.Sleep(p.pollInterval)
	}
	p.session.stop()
	pollsPerJob.Observe(float64(p.maxPolls))
	log.Printf("processor event=job_timeout model=%q polls=%d", m.Name, p.maxPolls)
	return types.TaskResult{}, p.maxPolls, ErrTimeout()
}
