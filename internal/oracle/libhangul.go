//go:build cgo && libhangul

package oracle

/*
#cgo pkg-config: libhangul
#include <stdlib.h>
#include <hangul.h>
*/
import "C"

import (
	"fmt"
	"unsafe"
)

const Available = true

type libhangul struct {
	hic *C.HangulInputContext
}

// OpenLibhangul creates a libhangul input context for the keyboard id.
func OpenLibhangul(layout string) (Oracle, error) {
	id := C.CString(layout)
	defer C.free(unsafe.Pointer(id))
	hic := C.hangul_ic_new(id)
	if hic == nil {
		return nil, fmt.Errorf("oracle: hangul_ic_new(%q) failed", layout)
	}
	return &libhangul{hic: hic}, nil
}

func (l *libhangul) Process(ascii rune) bool {
	return bool(C.hangul_ic_process(l.hic, C.int(ascii)))
}

func (l *libhangul) PreeditString() []rune {
	return readUCS(C.hangul_ic_get_preedit_string(l.hic))
}

func (l *libhangul) CommitString() []rune {
	return readUCS(C.hangul_ic_get_commit_string(l.hic))
}

func (l *libhangul) Flush() []rune {
	return readUCS(C.hangul_ic_flush(l.hic))
}

func (l *libhangul) Reset() {
	C.hangul_ic_reset(l.hic)
}

func (l *libhangul) Close() error {
	if l.hic == nil {
		return nil
	}
	C.hangul_ic_delete(l.hic)
	l.hic = nil
	return nil
}

// readUCS copies a zero-terminated ucschar buffer owned by libhangul.
func readUCS(p *C.ucschar) []rune {
	if p == nil {
		return nil
	}
	out := []rune{}
	for ptr := unsafe.Pointer(p); ; ptr = unsafe.Add(ptr, unsafe.Sizeof(*p)) {
		ch := *(*C.ucschar)(ptr)
		if ch == 0 {
			return out
		}
		out = append(out, rune(ch))
	}
}
