package processor

import (
	"path/filepath"
	"testing"
	"time"

	"sr/internal/engine/enginetest"
)

func TestEventsPublishedInOrder(t *testing.T) {
	t.Setenv(ModelPathEnv, "")
	f := enginetest.New()
	pub := NewMemoryPublisher()
	p := NewWithConfig(Config{Engine: f, PollInterval: time.Millisecond, Events: pub})

	dir := t.TempDir()
	chdir(t, dir)
	in := writeInputFile(t, dir)
	if _, err := p.Process(in, filepath.Join(dir, "out.webp"), 2, "df2k"); err != nil {
		t.Fatalf("process: %v", err)
	}

	var names []string
	for _, e := range pub.Events() {
		names = append(names, e.Name)
	}
	want := []string{"session_ready", "job_submitted", "job_done"}
	if len(names) != len(want) {
		t.Fatalf("events %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("events %v, want %v", names, want)
		}
	}
}

func TestEventsOnTimeout(t *testing.T) {
	t.Setenv(ModelPathEnv, "")
	f := enginetest.New()
	f.NotReadyLoads = -1
	pub := NewMemoryPublisher()
	p := NewWithConfig(Config{Engine: f, PollInterval: time.Millisecond, Events: pub})

	dir := t.TempDir()
	in := writeInputFile(t, dir)
	if _, err := p.Process(in, filepath.Join(dir, "out.webp"), 2, "df2k"); !IsTimeout(err) {
		t.Fatalf("expected timeout, got %v", err)
	}

	events := pub.Events()
	last := events[len(events)-1]
	if last.Name != "job_failed" {
		t.Fatalf("last event %q, want job_failed", last.Name)
	}
	if last.Fields["outcome"] != "timeout" {
		t.Fatalf("outcome field %v", last.Fields["outcome"])
	}
}

func TestStatusSnapshot(t *testing.T) {
	t.Setenv(ModelPathEnv, "")
	f := enginetest.New()
	p := newTestProcessor(f)

	if st := p.Status(); st.State != "uninitialized" {
		t.Fatalf("state %q before init", st.State)
	}

	if err := p.Init(); err != nil {
		t.Fatalf("init: %v", err)
	}
	st := p.Status()
	if st.State != "idle" {
		t.Fatalf("state %q after init", st.State)
	}
	if st.ModelCount == 0 {
		t.Fatal("expected models counted")
	}
	if st.Device.Mode != "gpu" {
		t.Fatalf("device %+v", st.Device)
	}

	dir := t.TempDir()
	chdir(t, dir)
	in := writeInputFile(t, dir)
	if _, err := p.Process(in, filepath.Join(dir, "out.webp"), 2, "df2k"); err != nil {
		t.Fatalf("process: %v", err)
	}
	st = p.Status()
	if st.Job == nil {
		t.Fatal("expected job status after process")
	}
	if st.Job.State != "done" || st.Job.Model != "df2k" {
		t.Fatalf("job %+v", st.Job)
	}
	if st.Job.ResultID != 1 || st.Job.ElapsedSeconds != 1.5 {
		t.Fatalf("job result fields %+v", st.Job)
	}
	if st.Job.PollAttempts != 1 {
		t.Fatalf("poll attempts %d", st.Job.PollAttempts)
	}
}
