// Package enginetest provides a scriptable in-memory engine.Engine for
// tests. Behavior is controlled through exported fields; every call is
// recorded so tests can assert poll counts and teardown.
package enginetest

import (
	"sync"

	"sr/internal/engine"
)

// AddCall records the arguments of one Add invocation.
type AddCall struct {
	Data     []byte
	ModelID  int
	BackID   int
	Scale    float32
	TileSize int
	Format   string
}

// Fake implements engine.Engine. The zero value is unusable; construct
// through New and override fields before handing it to code under test.
type Fake struct {
	mu sync.Mutex

	// Table is returned by Symbols, in order.
	Table []engine.Symbol

	// Return codes.
	InitRC    int
	InitSetRC int
	AddRC     int

	// Cores is returned by CPUCoreCount.
	Cores int

	// EmptyLoads is the number of leading Load calls that report a present
	// result with an empty payload. NotReadyLoads is the number of Load
	// calls after that reporting no result at all. Once both are exhausted,
	// Load returns Result. A negative NotReadyLoads means the result never
	// arrives.
	EmptyLoads    int
	NotReadyLoads int
	Result        engine.Output

	// LastErr is returned by LastError.
	LastErr string

	// Recorded calls.
	InitCalls    int
	InitSetCalls [][2]int
	AddCalls     []AddCall
	LoadCalls    int
	StopCalls    int
	ModelPath    string
}

var _ engine.Engine = (*Fake)(nil)

// New returns a Fake that succeeds at everything: a default symbol table,
// init return codes of 0, a positive Add slot, and a result ready on the
// first poll.
func New() *Fake {
	return &Fake{
		Table: DefaultTable(),
		AddRC: 1,
		Cores: 8,
		Result: engine.Output{
			Data:     []byte("upscaled"),
			Format:   "webp",
			ResultID: 1,
			Tick:     1.5,
		},
	}
}

// DefaultTable mirrors a plausible sr_vulkan symbol dump: model constants
// from all four families, deliberately not in lexicographic order, plus
// non-model symbols that must never surface as models.
func DefaultTable() []engine.Symbol {
	return []engine.Symbol{
		{Name: "VERSION", Value: 21},
		{Name: "MODEL_WAIFU2X_CUNET_UP2X", Value: 30},
		{Name: "MODEL_WAIFU2X_CUNET_UP3X", Value: 31},
		{Name: "MODEL_REALCUGAN_PRO_UP2X", Value: 1},
		{Name: "MODEL_REALCUGAN_PRO_UP3X", Value: 2},
		{Name: "MODEL_REALCUGAN_SE_UP2X", Value: 5},
		{Name: "MODEL_REALESRGAN_X4PLUS", Value: 10},
		{Name: "MODEL_REALESRGAN_X4PLUS_ANIME", Value: 11},
		{Name: "MODEL_WAIFU2X_ANIME_UP2X", Value: 33},
		{Name: "MODEL_REALSR_DF2K", Value: 20},
		{Name: "BACKEND_VULKAN", Value: 1},
	}
}

func (f *Fake) Symbols() []engine.Symbol {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]engine.Symbol, len(f.Table))
	copy(out, f.Table)
	return out
}

func (f *Fake) SetModelPath(dir string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ModelPath = dir
}

func (f *Fake) Init() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.InitCalls++
	return f.InitRC
}

func (f *Fake) InitSet(gpuID, threads int) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.InitSetCalls = append(f.InitSetCalls, [2]int{gpuID, threads})
	return f.InitSetRC
}

func (f *Fake) CPUCoreCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.Cores
}

func (f *Fake) Add(data []byte, modelID, backID int, scale float32, tileSize int, format string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.AddCalls = append(f.AddCalls, AddCall{
		Data:     data,
		ModelID:  modelID,
		BackID:   backID,
		Scale:    scale,
		TileSize: tileSize,
		Format:   format,
	})
	return f.AddRC
}

func (f *Fake) Load(slot int) (engine.Output, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.LoadCalls++
	n := f.LoadCalls
	if n <= f.EmptyLoads {
		return engine.Output{}, true
	}
	if f.NotReadyLoads < 0 || n <= f.EmptyLoads+f.NotReadyLoads {
		return engine.Output{}, false
	}
	return f.Result, true
}

func (f *Fake) LastError() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.LastErr
}

func (f *Fake) Stop() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.StopCalls++
}
