package igfd

import (
	"unsafe"

	"igfd/internal/native"
)

// fakeEngine simulates the native dialog engine behind a native.Table so
// the bridge can be exercised without dlopen. It hands out real heap
// buffers for "native-owned" strings and records every free so tests can
// assert exactly-once release.
type fakeEngine struct {
	// buffers handed across the fake boundary, kept alive here
	bufs  [][]byte
	pairs [][]native.RawSelectionPair

	created   int
	destroyed int
	closed    int

	opens    []openCall
	displays []displayCall

	ok      bool
	visible bool
	opened  bool

	selection       []Entry
	selDestroyed    int
	filePathName    string
	currentFileName string
	currentPath     string
	currentFilter   string
	userDatas       uintptr

	allocated map[uintptr]bool
	frees     int
	badFrees  int

	styles map[string]styleRec
	clears int

	withBookmarks bool
	bookmarks     string
	withKeyNav    bool
	flashing      float32
}

type openCall struct {
	entry        string
	key          string
	title        string
	filters      string
	nullFilters  bool
	path         string
	fileName     string
	fromFile     string
	pane         uintptr
	paneWidth    float32
	maxSelection int32
	userDatas    uintptr
	flags        native.Flags
}

type displayCall struct {
	key         string
	windowFlags int32
	minSize     native.Vec2
	maxSize     native.Vec2
}

type styleRec struct {
	color native.Vec4
	icon  string
}

func newFake() *fakeEngine {
	return &fakeEngine{
		allocated: make(map[uintptr]bool),
		styles:    make(map[string]styleRec),
	}
}

// alloc simulates an engine-owned heap string the caller must free.
func (f *fakeEngine) alloc(s string) uintptr {
	b := append([]byte(s), 0)
	f.bufs = append(f.bufs, b)
	ptr := uintptr(unsafe.Pointer(&b[0]))
	f.allocated[ptr] = true
	return ptr
}

// borrow simulates a string the engine retains ownership of.
func (f *fakeEngine) borrow(s string) uintptr {
	b := append([]byte(s), 0)
	f.bufs = append(f.bufs, b)
	return uintptr(unsafe.Pointer(&b[0]))
}

func str(p uintptr) string { return native.GoString(p) }

func (f *fakeEngine) record(entry string, key, title, filters uintptr, call openCall) {
	call.entry = entry
	call.key = str(key)
	call.title = str(title)
	call.filters = str(filters)
	call.nullFilters = filters == 0
	f.opens = append(f.opens, call)
}

func (f *fakeEngine) table() *native.Table {
	t := &native.Table{
		Create: func() uintptr {
			f.created++
			return uintptr(unsafe.Pointer(f))
		},
		Destroy: func(ctx uintptr) { f.destroyed++ },

		OpenDialog: func(ctx, key, title, filters, path, fileName uintptr, max int32, ud uintptr, flags native.Flags) {
			f.record("OpenDialog", key, title, filters, openCall{
				path: str(path), fileName: str(fileName), maxSelection: max, userDatas: ud, flags: flags,
			})
		},
		OpenDialog2: func(ctx, key, title, filters, fromFile uintptr, max int32, ud uintptr, flags native.Flags) {
			f.record("OpenDialog2", key, title, filters, openCall{
				fromFile: str(fromFile), maxSelection: max, userDatas: ud, flags: flags,
			})
		},
		OpenModal: func(ctx, key, title, filters, path, fileName uintptr, max int32, ud uintptr, flags native.Flags) {
			f.record("OpenModal", key, title, filters, openCall{
				path: str(path), fileName: str(fileName), maxSelection: max, userDatas: ud, flags: flags,
			})
		},
		OpenModal2: func(ctx, key, title, filters, fromFile uintptr, max int32, ud uintptr, flags native.Flags) {
			f.record("OpenModal2", key, title, filters, openCall{
				fromFile: str(fromFile), maxSelection: max, userDatas: ud, flags: flags,
			})
		},
		OpenPaneDialog: func(ctx, key, title, filters, path, fileName uintptr, pane uintptr, paneWidth float32, max int32, ud uintptr, flags native.Flags) {
			f.record("OpenPaneDialog", key, title, filters, openCall{
				path: str(path), fileName: str(fileName), pane: pane, paneWidth: paneWidth,
				maxSelection: max, userDatas: ud, flags: flags,
			})
		},
		OpenPaneDialog2: func(ctx, key, title, filters, fromFile uintptr, pane uintptr, paneWidth float32, max int32, ud uintptr, flags native.Flags) {
			f.record("OpenPaneDialog2", key, title, filters, openCall{
				fromFile: str(fromFile), pane: pane, paneWidth: paneWidth,
				maxSelection: max, userDatas: ud, flags: flags,
			})
		},
		OpenPaneModal: func(ctx, key, title, filters, path, fileName uintptr, pane uintptr, paneWidth float32, max int32, ud uintptr, flags native.Flags) {
			f.record("OpenPaneModal", key, title, filters, openCall{
				path: str(path), fileName: str(fileName), pane: pane, paneWidth: paneWidth,
				maxSelection: max, userDatas: ud, flags: flags,
			})
		},
		OpenPaneModal2: func(ctx, key, title, filters, fromFile uintptr, pane uintptr, paneWidth float32, max int32, ud uintptr, flags native.Flags) {
			f.record("OpenPaneModal2", key, title, filters, openCall{
				fromFile: str(fromFile), pane: pane, paneWidth: paneWidth,
				maxSelection: max, userDatas: ud, flags: flags,
			})
		},

		DisplayDialog: func(ctx, key uintptr, windowFlags int32, minSize, maxSize native.Vec2) bool {
			f.displays = append(f.displays, displayCall{
				key: str(key), windowFlags: windowFlags, minSize: minSize, maxSize: maxSize,
			})
			return f.visible
		},
		CloseDialog: func(ctx uintptr) { f.closed++ },

		IsOk:                  func(ctx uintptr) bool { return f.ok },
		IsOpened:              func(ctx uintptr) bool { return f.opened },
		IsKeyOpened:           func(ctx, key uintptr) bool { return f.opened },
		WasOpenedThisFrame:    func(ctx uintptr) bool { return false },
		WasKeyOpenedThisFrame: func(ctx, key uintptr) bool { return false },

		GetSelection: func(ctx uintptr) native.RawSelection {
			if len(f.selection) == 0 {
				return native.RawSelection{}
			}
			pairs := make([]native.RawSelectionPair, len(f.selection))
			for i, e := range f.selection {
				pairs[i] = native.RawSelectionPair{
					FileName:     f.borrow(e.Name),
					FilePathName: f.borrow(e.Path),
				}
			}
			f.pairs = append(f.pairs, pairs)
			return native.RawSelection{
				Table: uintptr(unsafe.Pointer(&pairs[0])),
				Count: uintptr(len(pairs)),
			}
		},
		SelectionDestroyContent: func(sel uintptr) { f.selDestroyed++ },

		GetFilePathName: func(ctx uintptr) uintptr {
			if f.filePathName == "" {
				return 0
			}
			return f.alloc(f.filePathName)
		},
		GetCurrentFileName: func(ctx uintptr) uintptr {
			if f.currentFileName == "" {
				return 0
			}
			return f.alloc(f.currentFileName)
		},
		GetCurrentPath: func(ctx uintptr) uintptr {
			if f.currentPath == "" {
				return 0
			}
			return f.alloc(f.currentPath)
		},
		GetCurrentFilter: func(ctx uintptr) uintptr {
			if f.currentFilter == "" {
				return 0
			}
			return f.alloc(f.currentFilter)
		},
		GetUserDatas: func(ctx uintptr) uintptr { return f.userDatas },

		SetExtentionInfos: func(ctx, filter uintptr, color native.Vec4, iconText uintptr) {
			f.styles[str(filter)] = styleRec{color: color, icon: str(iconText)}
		},
		SetExtentionInfos2: func(ctx, filter uintptr, r, g, b, a float32, iconText uintptr) {
			f.styles[str(filter)] = styleRec{color: native.Vec4{X: r, Y: g, Z: b, W: a}, icon: str(iconText)}
		},
		GetExtentionInfos: func(ctx, filter, outColor, outIconText uintptr) bool {
			rec, present := f.styles[str(filter)]
			if !present {
				return false
			}
			*(*native.Vec4)(unsafe.Pointer(outColor)) = rec.color
			*(*uintptr)(unsafe.Pointer(outIconText)) = f.borrow(rec.icon)
			return true
		},
		ClearExtentionInfos: func(ctx uintptr) {
			f.clears++
			f.styles = make(map[string]styleRec)
		},

		Free: func(ptr uintptr) {
			if !f.allocated[ptr] {
				f.badFrees++
				return
			}
			delete(f.allocated, ptr)
			f.frees++
		},
	}

	if f.withBookmarks {
		t.SerializeBookmarks = func(ctx uintptr) uintptr {
			return f.alloc(f.bookmarks)
		}
		t.DeserializeBookmarks = func(ctx, blob uintptr) {
			f.bookmarks = str(blob)
		}
	}
	if f.withKeyNav {
		t.SetFlashingAttenuationInSeconds = func(ctx uintptr, seconds float32) {
			f.flashing = seconds
		}
	}
	return t
}

// newFakeDialog wires a Dialog to a fresh fake engine.
func newFakeDialog() (*fakeEngine, *Dialog) {
	f := newFake()
	return f, newDialog(f.table())
}
