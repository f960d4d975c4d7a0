// Package igfd provides Go bindings for the ImGuiFileDialog engine
// (v0.5.4 C API). The engine renders and drives the dialog inside an
// ImGui frame loop; this package owns the memory and type safety around
// it: context lifetime, request building, the per-frame display/poll
// protocol, and extraction of engine-allocated results into Go values.
//
// Typical use:
//
//	dlg, err := igfd.New()
//	if err != nil { ... }
//	defer dlg.Destroy()
//
//	// when the user asks for a file:
//	err = dlg.OpenFile().
//		Title("Select a File").
//		Filters(".txt,.md").
//		Path(".").
//		Open("choose_file")
//
//	// every frame:
//	if !dlg.Display("choose_file", igfd.Size{W: 400, H: 300}, igfd.Size{W: 800, H: 600}) {
//		if dlg.IsOk() {
//			for _, p := range dlg.Selection().Files() {
//				fmt.Println(p)
//			}
//		}
//		dlg.Close()
//	}
//
// A Dialog is not safe for concurrent use. It may be handed between
// goroutines, but only one may touch it at a time.
package igfd

import (
	"runtime"
	"strings"

	"igfd/internal/native"
)

// Size is a dialog size constraint in ImGui display units.
type Size struct {
	W, H float32
}

// Color is an RGBA color with components in [0, 1].
type Color struct {
	R, G, B, A float32
}

// Dialog exclusively owns one native dialog context. Create one with New
// and release it with Destroy; every other method requires a live handle.
type Dialog struct {
	tbl *native.Table
	ptr uintptr

	// Keys opened through Builder.Open and not yet closed. Used to
	// refuse reopening a key mid-session, which the engine leaves
	// undefined.
	open map[string]struct{}

	// Key most recently polled by Display. The native close call has no
	// key parameter; this identifies which session Close tears down.
	lastKey string
}

// New loads the dialog engine (if not already loaded) and creates a
// dialog context. The engine library is located via the IGFD_LIBRARY
// environment variable or a short search path; see NewFromLibrary to
// name it explicitly.
func New() (*Dialog, error) {
	return NewFromLibrary("")
}

// NewFromLibrary is New with an explicit engine library path. The engine
// is loaded once per process; the path is ignored after the first load.
func NewFromLibrary(path string) (*Dialog, error) {
	tbl, err := native.Load(path)
	if err != nil {
		return nil, err
	}
	return newDialog(tbl), nil
}

// newDialog wires a dialog to an already-bound function table. Tests use
// this to substitute a fake engine.
func newDialog(tbl *native.Table) *Dialog {
	return &Dialog{
		tbl:  tbl,
		ptr:  tbl.Create(),
		open: make(map[string]struct{}),
	}
}

// Destroy releases the native context. It must be called exactly once
// when the dialog is no longer needed; calling it again is a no-op.
// Every other method panics after Destroy.
func (d *Dialog) Destroy() {
	if d.ptr == 0 {
		return
	}
	d.tbl.Destroy(d.ptr)
	d.ptr = 0
}

func (d *Dialog) handle() uintptr {
	if d.ptr == 0 {
		panic("igfd: Dialog used after Destroy")
	}
	return d.ptr
}

// Display polls the dialog identified by key and reports whether it is
// still visible. Call it once per frame while it reports true. Once it
// reports false, check IsOk, extract results, then Close.
func (d *Dialog) Display(key string, minSize, maxSize Size) bool {
	return d.DisplayWithFlags(key, 0, minSize, maxSize)
}

// DisplayWithFlags is Display with explicit ImGui window flags for the
// dialog window. A key containing an embedded NUL cannot cross the C
// boundary and reports not-visible without reaching the engine.
func (d *Dialog) DisplayWithFlags(key string, windowFlags int32, minSize, maxSize Size) bool {
	h := d.handle()
	if strings.IndexByte(key, 0) >= 0 {
		return false
	}
	d.lastKey = key
	kb := native.CString(key)
	visible := d.tbl.DisplayDialog(h, native.BufPtr(kb), windowFlags,
		native.Vec2{X: minSize.W, Y: minSize.H},
		native.Vec2{X: maxSize.W, Y: maxSize.H})
	runtime.KeepAlive(kb)
	return visible
}

// IsOk reports whether the last completed dialog was confirmed rather
// than cancelled. Results are only meaningful while this is true.
func (d *Dialog) IsOk() bool {
	return d.tbl.IsOk(d.handle())
}

// IsOpened reports whether any dialog is currently open. Valid at any
// time; false before the first open.
func (d *Dialog) IsOpened() bool {
	return d.tbl.IsOpened(d.handle())
}

// IsKeyOpened reports whether the dialog identified by key is open. A
// key containing an embedded NUL identifies no dialog and reports false.
func (d *Dialog) IsKeyOpened(key string) bool {
	h := d.handle()
	if strings.IndexByte(key, 0) >= 0 {
		return false
	}
	kb := native.CString(key)
	opened := d.tbl.IsKeyOpened(h, native.BufPtr(kb))
	runtime.KeepAlive(kb)
	return opened
}

// WasOpenedThisFrame reports whether any dialog was opened during the
// current frame.
func (d *Dialog) WasOpenedThisFrame() bool {
	return d.tbl.WasOpenedThisFrame(d.handle())
}

// WasKeyOpenedThisFrame reports whether the dialog identified by key was
// opened during the current frame. A key containing an embedded NUL
// identifies no dialog and reports false.
func (d *Dialog) WasKeyOpenedThisFrame(key string) bool {
	h := d.handle()
	if strings.IndexByte(key, 0) >= 0 {
		return false
	}
	kb := native.CString(key)
	opened := d.tbl.WasKeyOpenedThisFrame(h, native.BufPtr(kb))
	runtime.KeepAlive(kb)
	return opened
}

// Close tears down the completed dialog session. It must be called once
// after Display reports not-visible and results have been extracted;
// only then may the same key be opened again. The session released is
// the one identified by the key most recently polled through Display;
// other keys still open on the context stay locked.
func (d *Dialog) Close() {
	d.tbl.CloseDialog(d.handle())
	delete(d.open, d.lastKey)
	d.lastKey = ""
}

// UserData returns the opaque user-data pointer recorded by the last
// open call. Opens issued through this package always pass zero; the
// accessor exists for engines shared with other bindings.
func (d *Dialog) UserData() uintptr {
	return d.tbl.GetUserDatas(d.handle())
}
