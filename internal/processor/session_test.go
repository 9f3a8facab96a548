package processor

import (
	"path/filepath"
	"testing"

	"sr/internal/engine/enginetest"
)

func TestConfigureOverrideBeatsEnv(t *testing.T) {
	t.Setenv(ModelPathEnv, "/env/weights")
	f := enginetest.New()
	p := NewWithConfig(Config{Engine: f, ModelPath: "/cli/weights"})
	if err := p.Init(); err != nil {
		t.Fatalf("init: %v", err)
	}
	if f.ModelPath != "/cli/weights" {
		t.Fatalf("model path %q, want explicit override", f.ModelPath)
	}
}

func TestConfigureEnvFallback(t *testing.T) {
	t.Setenv(ModelPathEnv, "/env/weights")
	f := enginetest.New()
	p := newTestProcessor(f)
	if err := p.Init(); err != nil {
		t.Fatalf("init: %v", err)
	}
	if f.ModelPath != "/env/weights" {
		t.Fatalf("model path %q, want env fallback", f.ModelPath)
	}
}

func TestConfigureAbsentLeavesEngineDefault(t *testing.T) {
	t.Setenv(ModelPathEnv, "")
	f := enginetest.New()
	p := newTestProcessor(f)
	if err := p.Init(); err != nil {
		t.Fatalf("init: %v", err)
	}
	if f.ModelPath != "" {
		t.Fatalf("model path %q, want engine default (no call)", f.ModelPath)
	}
}

func TestGPUInitFailureForcesCPUNotFatal(t *testing.T) {
	t.Setenv(ModelPathEnv, "")
	f := enginetest.New()
	f.InitRC = -1
	p := newTestProcessor(f)

	if err := p.Init(); err != nil {
		t.Fatalf("gpu init failure must not be fatal: %v", err)
	}
	if len(f.InitSetCalls) != 1 {
		t.Fatalf("expected 1 initSet, got %d", len(f.InitSetCalls))
	}
	if got := f.InitSetCalls[0]; got != [2]int{-1, 8} {
		t.Fatalf("expected CPU config with engine core count, got %v", got)
	}
	st := p.Status()
	if st.Device.Mode != "cpu" || !st.Device.CPUFallback {
		t.Fatalf("device status %+v", st.Device)
	}
}

func TestCPURequestedUsesCoreCount(t *testing.T) {
	t.Setenv(ModelPathEnv, "")
	f := enginetest.New()
	f.Cores = 12
	p := NewWithConfig(Config{Engine: f, CPUMode: true})
	if err := p.Init(); err != nil {
		t.Fatalf("init: %v", err)
	}
	if f.InitCalls != 1 {
		t.Fatalf("init primitive must still run, got %d calls", f.InitCalls)
	}
	if got := f.InitSetCalls[0]; got != [2]int{-1, 12} {
		t.Fatalf("expected CPU config, got %v", got)
	}
	st := p.Status()
	if st.Device.Mode != "cpu" || st.Device.CPUFallback {
		t.Fatalf("requested CPU is not a fallback: %+v", st.Device)
	}
}

func TestGPUModeUsesRequestedIndex(t *testing.T) {
	t.Setenv(ModelPathEnv, "")
	f := enginetest.New()
	p := NewWithConfig(Config{Engine: f, GPUID: 2})
	if err := p.Init(); err != nil {
		t.Fatalf("init: %v", err)
	}
	if got := f.InitSetCalls[0]; got != [2]int{2, 0} {
		t.Fatalf("expected GPU config for index 2, got %v", got)
	}
	if st := p.Status(); st.Device.Mode != "gpu" || st.Device.GPUID != 2 {
		t.Fatalf("device status %+v", p.Status().Device)
	}
}

func TestDeviceConfigFailureIsFatal(t *testing.T) {
	t.Setenv(ModelPathEnv, "")
	f := enginetest.New()
	f.InitSetRC = -1
	p := newTestProcessor(f)

	dir := t.TempDir()
	in := writeInputFile(t, dir)
	_, err := p.Process(in, filepath.Join(dir, "out.webp"), 2, "df2k")
	if !IsInitFailed(err) {
		t.Fatalf("expected init failure, got %v", err)
	}
	if err.Error() != "Initialization failed" {
		t.Fatalf("message %q", err.Error())
	}
	if len(f.AddCalls) != 0 {
		t.Fatal("no submission after failed device configuration")
	}
	if f.StopCalls != 0 {
		t.Fatal("nothing started, stop must not run")
	}
}
