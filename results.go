package igfd

import "igfd/internal/native"

// takeString decodes an engine-allocated string and releases it through
// the engine's deallocator. The release happens exactly once, here; the
// returned string is owned by the caller.
func (d *Dialog) takeString(ptr uintptr) (string, bool) {
	if ptr == 0 {
		return "", false
	}
	s := native.GoString(ptr)
	d.tbl.Free(ptr)
	return s, true
}

// FilePathName returns the full path of the chosen file (save dialogs).
// It reports false when the dialog was cancelled or nothing was chosen.
func (d *Dialog) FilePathName() (string, bool) {
	h := d.handle()
	if !d.tbl.IsOk(h) {
		return "", false
	}
	return d.takeString(d.tbl.GetFilePathName(h))
}

// CurrentFileName returns the file name currently entered in the dialog.
func (d *Dialog) CurrentFileName() (string, bool) {
	return d.takeString(d.tbl.GetCurrentFileName(d.handle()))
}

// CurrentPath returns the directory the dialog is showing.
func (d *Dialog) CurrentPath() (string, bool) {
	return d.takeString(d.tbl.GetCurrentPath(d.handle()))
}

// CurrentFilter returns the filter currently selected in the dialog.
func (d *Dialog) CurrentFilter() (string, bool) {
	return d.takeString(d.tbl.GetCurrentFilter(d.handle()))
}
