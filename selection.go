package igfd

import (
	"runtime"
	"unsafe"

	"igfd/internal/native"
)

// Entry is one selected file: the display name and the full path.
type Entry struct {
	Name string
	Path string
}

// Selection holds the files chosen in a confirmed dialog. The native
// selection table is decoded and released before Selection is returned,
// so a Selection is plain Go data: iterate it as often as needed, keep
// it past Close or Destroy, share it freely.
type Selection struct {
	entries []Entry
}

// Selection returns the confirmed selection, or nil when the dialog was
// cancelled or nothing was selected. The native table backing the result
// is released exactly once, inside this call.
func (d *Dialog) Selection() *Selection {
	h := d.handle()
	if !d.tbl.IsOk(h) {
		return nil
	}

	raw := new(native.RawSelection)
	*raw = d.tbl.GetSelection(h)

	entries := make([]Entry, 0, int(raw.Count))
	for i := 0; i < int(raw.Count); i++ {
		pair := native.ReadPair(raw.Table, i)
		entries = append(entries, Entry{
			Name: native.GoString(pair.FileName),
			Path: native.GoString(pair.FilePathName),
		})
	}

	d.tbl.SelectionDestroyContent(uintptr(unsafe.Pointer(raw)))
	runtime.KeepAlive(raw)

	return &Selection{entries: entries}
}

// Count returns the number of selected files.
func (s *Selection) Count() int {
	return len(s.entries)
}

// Files returns the full paths of the selected files, in the order the
// engine reported them.
func (s *Selection) Files() []string {
	paths := make([]string, len(s.entries))
	for i, e := range s.entries {
		paths[i] = e.Path
	}
	return paths
}

// Entries returns the (name, path) pairs of the selected files.
func (s *Selection) Entries() []Entry {
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}
