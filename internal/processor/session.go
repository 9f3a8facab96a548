package processor

import (
	"log"
	"os"

	"sr/internal/common/fsutil"
	"sr/internal/engine"
)

// session owns the one live engine connection for this invocation. The
// engine is not reentrant across logical sessions, so every call after
// initialization goes through this instance, and at most one session is
// initialized per process.
type session struct {
	eng engine.Engine

	cpuMode bool // requested by the caller or forced by failed GPU init
	gpuID   int
	threads int
	inited  bool
	started bool // a task was successfully added
	stopped bool
}

func newSession(eng engine.Engine) *session { return &session{eng: eng} }

// configure points the engine at a weights directory. Priority: explicit
// override, then the ModelPathEnv fallback. When both are empty the
// engine's built-in default stays in effect and no call is made.
func (s *session) configure(override string) error {
	path := override
	if path == "" {
		path = os.Getenv(ModelPathEnv)
	}
	if path == "" {
		return nil
	}
	expanded, err := fsutil.ExpandHome(path)
	if err != nil {
		return err
	}
	log.Printf("processor event=model_path dir=%q", expanded)
	s.eng.SetModelPath(expanded)
	return nil
}

// initialize brings the engine up. A negative init code means GPU bring-up
// failed; CPU mode is then forced and the job continues. The caller gets no
// signal beyond the returned flag and the resulting mode.
func (s *session) initialize(cpuRequested bool) (cpuForced bool) {
	s.cpuMode = cpuRequested
	if rc := s.eng.Init(); rc < 0 {
		cpuForced = !s.cpuMode
		s.cpuMode = true
	}
	return cpuForced
}

// selectDevice commits the compute device: CPU execution with the engine's
// own core count, or the requested GPU index. A negative return code is a
// hard failure and no job may be submitted.
func (s *session) selectDevice(gpuID int) error {
	if s.cpuMode {
		s.threads = s.eng.CPUCoreCount()
		if rc := s.eng.InitSet(-1, s.threads); rc < 0 {
			return ErrInitFailed()
		}
	} else {
		s.gpuID = gpuID
		if rc := s.eng.InitSet(gpuID, 0); rc < 0 {
			return ErrInitFailed()
		}
	}
	s.inited = true
	return nil
}

// markStarted records a successful task add. stop is only meaningful after
// this point.
func (s *session) markStarted() { s.started = true }

// stop tears the task pipeline down at most once. Before a successful add it
// is a no-op: an unadded session has nothing running to stop.
func (s *session) stop() {
	if !s.started || s.stopped {
		return
	}
	s.stopped = true
	s.eng.Stop()
}
