package igfd

import (
	"runtime"
	"strings"
	"unsafe"

	"igfd/internal/native"
)

// SetExtensionStyle colors entries matching ext (e.g. ".txt") and
// optionally prefixes them with icon text. Styles live on the context;
// no ownership transfers back to the caller. An empty icon sets none.
func (d *Dialog) SetExtensionStyle(ext string, color Color, icon string) error {
	h := d.handle()
	extB, iconPtr, iconB, err := styleArgs(ext, icon)
	if err != nil {
		return err
	}
	d.tbl.SetExtentionInfos(h, native.BufPtr(extB),
		native.Vec4{X: color.R, Y: color.G, Z: color.B, W: color.A}, iconPtr)
	runtime.KeepAlive(extB)
	runtime.KeepAlive(iconB)
	return nil
}

// SetExtensionStyleRGBA is SetExtensionStyle with the color spelled out,
// matching the engine's second overload.
func (d *Dialog) SetExtensionStyleRGBA(ext string, r, g, b, a float32, icon string) error {
	h := d.handle()
	extB, iconPtr, iconB, err := styleArgs(ext, icon)
	if err != nil {
		return err
	}
	d.tbl.SetExtentionInfos2(h, native.BufPtr(extB), r, g, b, a, iconPtr)
	runtime.KeepAlive(extB)
	runtime.KeepAlive(iconB)
	return nil
}

// ExtensionStyle reads back the style registered for ext. It reports
// false when none is set.
func (d *Dialog) ExtensionStyle(ext string) (Color, string, bool) {
	h := d.handle()
	if strings.IndexByte(ext, 0) >= 0 {
		return Color{}, "", false
	}
	extB := native.CString(ext)
	outColor := new(native.Vec4)
	outIcon := new(uintptr)
	ok := d.tbl.GetExtentionInfos(h, native.BufPtr(extB),
		uintptr(unsafe.Pointer(outColor)), uintptr(unsafe.Pointer(outIcon)))
	runtime.KeepAlive(extB)
	if !ok {
		return Color{}, "", false
	}
	// The icon string is borrowed from the context; copy, don't free.
	icon := native.GoString(*outIcon)
	runtime.KeepAlive(outIcon)
	c := Color{R: outColor.X, G: outColor.Y, B: outColor.Z, A: outColor.W}
	return c, icon, true
}

// ClearExtensionStyles removes every registered extension style. Calling
// it on an already-clear context is a no-op.
func (d *Dialog) ClearExtensionStyles() {
	d.tbl.ClearExtentionInfos(d.handle())
}

func styleArgs(ext, icon string) (extB []byte, iconPtr uintptr, iconB []byte, err error) {
	if strings.IndexByte(ext, 0) >= 0 {
		return nil, 0, nil, configErr("extension", ErrNulByte)
	}
	if strings.IndexByte(icon, 0) >= 0 {
		return nil, 0, nil, configErr("icon", ErrNulByte)
	}
	extB = native.CString(ext)
	if icon != "" {
		iconB = native.CString(icon)
		iconPtr = native.BufPtr(iconB)
	}
	return extB, iconPtr, iconB, nil
}
