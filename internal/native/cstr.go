package native

import "unsafe"

// maxCStringLen caps GoString's scan so a missing terminator in a
// misbehaving engine cannot walk off into unmapped memory forever.
const maxCStringLen = 1 << 20

// CString returns s as a NUL-terminated byte buffer suitable for handing
// to the engine via BufPtr. The caller must keep the buffer alive across
// the native call (runtime.KeepAlive).
func CString(s string) []byte {
	return append([]byte(s), 0)
}

// BufPtr returns the address of the first byte of b.
func BufPtr(b []byte) uintptr {
	return uintptr(unsafe.Pointer(&b[0]))
}

// GoString copies the NUL-terminated buffer at ptr into a Go string.
// A zero ptr yields "". Invalid UTF-8 passes through unchanged; Go
// strings are byte strings and the dialog reports paths as the
// filesystem spelled them.
func GoString(ptr uintptr) string {
	if ptr == 0 {
		return ""
	}
	n := 0
	for n < maxCStringLen {
		if *(*byte)(unsafe.Pointer(ptr + uintptr(n))) == 0 {
			break
		}
		n++
	}
	if n == 0 {
		return ""
	}
	b := make([]byte, n)
	for i := 0; i < n; i++ {
		b[i] = *(*byte)(unsafe.Pointer(ptr + uintptr(i)))
	}
	return string(b)
}

// ReadPair returns the i-th pair of a selection table.
func ReadPair(table uintptr, i int) RawSelectionPair {
	addr := table + uintptr(i)*unsafe.Sizeof(RawSelectionPair{})
	return *(*RawSelectionPair)(unsafe.Pointer(addr))
}
