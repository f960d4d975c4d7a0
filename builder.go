package igfd

import (
	"runtime"
	"strings"

	"igfd/internal/native"
	"igfd/pkg/filter"
)

// Mode selects what the dialog lets the user pick.
type Mode int

const (
	// OpenFile selects one or more existing files.
	OpenFile Mode = iota
	// OpenDirectory selects a directory. Directory dialogs have no
	// filter; the builder suppresses the filter argument entirely.
	OpenDirectory
	// SaveFile selects a (possibly new) file name to write.
	SaveFile
)

func (m Mode) defaultTitle() string {
	switch m {
	case OpenDirectory:
		return "Select Directory"
	case SaveFile:
		return "Save File"
	default:
		return "Open File"
	}
}

// PaneFunc draws a custom side pane next to the file list. It runs
// inside the engine's frame and receives the currently selected filter.
type PaneFunc func(filter string)

// OpenFile starts building an open-file request.
func (d *Dialog) OpenFile() *Builder {
	return newBuilder(d, OpenFile)
}

// OpenDirectory starts building a select-directory request.
func (d *Dialog) OpenDirectory() *Builder {
	return newBuilder(d, OpenDirectory)
}

// SaveFile starts building a save-file request.
func (d *Dialog) SaveFile() *Builder {
	return newBuilder(d, SaveFile)
}

// Builder accumulates the configuration of one open request. All setters
// chain; the first invalid argument poisons the builder and is reported
// by Open, before anything reaches the engine. A builder is consumed by
// Open and cannot be reused.
type Builder struct {
	d    *Dialog
	mode Mode

	title    string
	hasTitle bool

	filters    string
	hasFilters bool

	path    string
	hasPath bool

	fileName    string
	hasFileName bool

	// Path-extracted variant: a single file path the engine splits into
	// directory and file name itself.
	fromFile    string
	hasFromFile bool

	maxSelection int32
	modal        bool
	flags        native.Flags

	pane      PaneFunc
	paneWidth float32

	err      error
	consumed bool
}

func newBuilder(d *Dialog, mode Mode) *Builder {
	return &Builder{d: d, mode: mode, maxSelection: 1}
}

func (b *Builder) set(field string, dst *string, has *bool, s string) *Builder {
	if b.err != nil {
		return b
	}
	if strings.IndexByte(s, 0) >= 0 {
		b.err = configErr(field, ErrNulByte)
		return b
	}
	*dst = s
	*has = true
	return b
}

// Title sets the dialog title. Defaults per mode: "Open File",
// "Select Directory", "Save File".
func (b *Builder) Title(title string) *Builder {
	return b.set("title", &b.title, &b.hasTitle, title)
}

// Filters sets the filter expression, e.g. ".txt,.md", ".*" or
// "Sources{.c,.h}". Ignored by the engine in directory mode. Defaults to
// ".*" for file modes.
func (b *Builder) Filters(filters string) *Builder {
	return b.set("filters", &b.filters, &b.hasFilters, filters)
}

// FilterSpec sets the filter expression from a parsed filter.Spec.
func (b *Builder) FilterSpec(spec *filter.Spec) *Builder {
	return b.Filters(spec.String())
}

// Path sets the directory the dialog starts in. Defaults to ".".
func (b *Builder) Path(path string) *Builder {
	return b.set("path", &b.path, &b.hasPath, path)
}

// FileName sets the default file name, mainly for save dialogs.
func (b *Builder) FileName(name string) *Builder {
	return b.set("file name", &b.fileName, &b.hasFileName, name)
}

// FromFilePath seeds the dialog from one full file path; the engine
// extracts the starting directory and default name from it. When set,
// Path and FileName are ignored.
func (b *Builder) FromFilePath(filePathName string) *Builder {
	return b.set("file path", &b.fromFile, &b.hasFromFile, filePathName)
}

// MultiSelect caps how many files may be selected: 1 is single selection
// (the default), n > 1 allows up to n, and 0 removes the cap.
func (b *Builder) MultiSelect(max int) *Builder {
	if b.err == nil {
		b.maxSelection = int32(max)
	}
	return b
}

// Modal makes the dialog modal: the engine blocks interaction with the
// rest of the frame until it resolves.
func (b *Builder) Modal() *Builder {
	b.modal = true
	return b
}

// ConfirmOverwrite asks for confirmation before overwriting an existing
// file (save dialogs).
func (b *Builder) ConfirmOverwrite() *Builder {
	b.flags |= native.FlagsConfirmOverwrite
	return b
}

// SidePane attaches a custom pane of the given width, drawn by fn beside
// the file list each frame.
func (b *Builder) SidePane(fn PaneFunc, width float32) *Builder {
	b.pane = fn
	b.paneWidth = width
	return b
}

// Open finalizes the request and issues exactly one native open call for
// the dialog identified by key. Unset fields take their mode defaults;
// directory mode passes a null filter. The builder is consumed whether
// or not the call succeeds. After Open, drive the session with
// Dialog.Display.
func (b *Builder) Open(key string) error {
	if b.err != nil {
		return b.err
	}
	if b.consumed {
		return ErrBuilderConsumed
	}
	b.consumed = true

	if strings.IndexByte(key, 0) >= 0 {
		return configErr("key", ErrNulByte)
	}
	if _, opened := b.d.open[key]; opened {
		return ErrKeyAlreadyOpen
	}

	h := b.d.handle()

	title := b.title
	if !b.hasTitle {
		title = b.mode.defaultTitle()
	}
	path := b.path
	if !b.hasPath {
		path = "."
	}

	keyB := native.CString(key)
	titleB := native.CString(title)
	pathB := native.CString(path)
	fileNameB := native.CString(b.fileName)
	fromFileB := native.CString(b.fromFile)

	// Directory dialogs must see a null filter pointer, not an empty
	// string.
	var filtersPtr uintptr
	var filtersB []byte
	if b.mode != OpenDirectory {
		f := b.filters
		if !b.hasFilters {
			f = ".*"
		}
		filtersB = native.CString(f)
		filtersPtr = native.BufPtr(filtersB)
	}

	var paneCB uintptr
	if b.pane != nil {
		paneCB = native.NewPaneCallback(native.PaneRenderer(b.pane))
	}

	keyP := native.BufPtr(keyB)
	titleP := native.BufPtr(titleB)

	tbl := b.d.tbl
	switch {
	case b.pane != nil && b.hasFromFile && b.modal:
		tbl.OpenPaneModal2(h, keyP, titleP, filtersPtr, native.BufPtr(fromFileB), paneCB, b.paneWidth, b.maxSelection, 0, b.flags)
	case b.pane != nil && b.hasFromFile:
		tbl.OpenPaneDialog2(h, keyP, titleP, filtersPtr, native.BufPtr(fromFileB), paneCB, b.paneWidth, b.maxSelection, 0, b.flags)
	case b.pane != nil && b.modal:
		tbl.OpenPaneModal(h, keyP, titleP, filtersPtr, native.BufPtr(pathB), native.BufPtr(fileNameB), paneCB, b.paneWidth, b.maxSelection, 0, b.flags)
	case b.pane != nil:
		tbl.OpenPaneDialog(h, keyP, titleP, filtersPtr, native.BufPtr(pathB), native.BufPtr(fileNameB), paneCB, b.paneWidth, b.maxSelection, 0, b.flags)
	case b.hasFromFile && b.modal:
		tbl.OpenModal2(h, keyP, titleP, filtersPtr, native.BufPtr(fromFileB), b.maxSelection, 0, b.flags)
	case b.hasFromFile:
		tbl.OpenDialog2(h, keyP, titleP, filtersPtr, native.BufPtr(fromFileB), b.maxSelection, 0, b.flags)
	case b.modal:
		tbl.OpenModal(h, keyP, titleP, filtersPtr, native.BufPtr(pathB), native.BufPtr(fileNameB), b.maxSelection, 0, b.flags)
	default:
		tbl.OpenDialog(h, keyP, titleP, filtersPtr, native.BufPtr(pathB), native.BufPtr(fileNameB), b.maxSelection, 0, b.flags)
	}

	runtime.KeepAlive(keyB)
	runtime.KeepAlive(titleB)
	runtime.KeepAlive(pathB)
	runtime.KeepAlive(fileNameB)
	runtime.KeepAlive(fromFileB)
	runtime.KeepAlive(filtersB)

	b.d.open[key] = struct{}{}
	return nil
}
