//go:build srvulkan

package engine

// Real sr_vulkan binding (cgo). Compiled only with `-tags=srvulkan`.
//
// The preamble mirrors the exported C surface of libsr_vulkan. Buffers
// returned by sr_load are owned by the library and must be released with
// sr_free after copying. The library holds global state, so vulkanEngine is
// stateless on the Go side.

/*
#cgo LDFLAGS: -L${SRCDIR}/../../lib -lsr_vulkan -Wl,-rpath,'$ORIGIN/../lib'
#include <stdlib.h>

extern int         sr_symbol_count(void);
extern const char *sr_symbol_name(int idx);
extern int         sr_symbol_value(int idx);
extern void        sr_set_model_path(const char *dir);
extern int         sr_init(void);
extern int         sr_init_set(int gpu_id, int threads);
extern int         sr_get_cpu_core_num(void);
extern int         sr_add(const unsigned char *data, int len, int model_id,
                          int back_id, float scale, int tile_size,
                          const char *format);
extern int         sr_load(int slot, unsigned char **data, int *len,
                           char *format, int format_cap, int *result_id,
                           double *tick);
extern const char *sr_get_last_error(void);
extern void        sr_stop(void);
extern void        sr_free(void *p);
*/
import "C"

import "unsafe"

type vulkanEngine struct{}

// NewVulkan returns the real in-process sr_vulkan engine.
func NewVulkan() (Engine, error) {
	return &vulkanEngine{}, nil
}

// Built reports whether real engine support was compiled in.
func Built() bool { return true }

func (e *vulkanEngine) Symbols() []Symbol {
	n := int(C.sr_symbol_count())
	syms := make([]Symbol, 0, n)
	for i := 0; i < n; i++ {
		syms = append(syms, Symbol{
			Name:  C.GoString(C.sr_symbol_name(C.int(i))),
			Value: int(C.sr_symbol_value(C.int(i))),
		})
	}
	return syms
}

func (e *vulkanEngine) SetModelPath(dir string) {
	cdir := C.CString(dir)
	defer C.free(unsafe.Pointer(cdir))
	C.sr_set_model_path(cdir)
}

func (e *vulkanEngine) Init() int { return int(C.sr_init()) }

func (e *vulkanEngine) InitSet(gpuID, threads int) int {
	return int(C.sr_init_set(C.int(gpuID), C.int(threads)))
}

func (e *vulkanEngine) CPUCoreCount() int { return int(C.sr_get_cpu_core_num()) }

func (e *vulkanEngine) Add(data []byte, modelID, backID int, scale float32, tileSize int, format string) int {
	cformat := C.CString(format)
	defer C.free(unsafe.Pointer(cformat))
	var p *C.uchar
	if len(data) > 0 {
		p = (*C.uchar)(unsafe.Pointer(&data[0]))
	}
	return int(C.sr_add(p, C.int(len(data)), C.int(modelID), C.int(backID),
		C.float(scale), C.int(tileSize), cformat))
}

func (e *vulkanEngine) Load(slot int) (Output, bool) {
	var (
		cdata *C.uchar
		clen  C.int
		crid  C.int
		ctick C.double
	)
	cformat := (*C.char)(C.malloc(16))
	defer C.free(unsafe.Pointer(cformat))
	rc := C.sr_load(C.int(slot), &cdata, &clen, cformat, 16, &crid, &ctick)
	if rc == 0 || cdata == nil {
		return Output{}, false
	}
	out := Output{
		Data:     C.GoBytes(unsafe.Pointer(cdata), clen),
		Format:   C.GoString(cformat),
		ResultID: int(crid),
		Tick:     float64(ctick),
	}
	C.sr_free(unsafe.Pointer(cdata))
	return out, true
}

func (e *vulkanEngine) LastError() string { return C.GoString(C.sr_get_last_error()) }

func (e *vulkanEngine) Stop() { C.sr_stop() }
