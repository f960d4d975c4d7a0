package igfd

import (
	"runtime"
	"strings"

	"igfd/internal/native"
)

// HasBookmarks reports whether the loaded engine supports bookmark
// serialization (a build-time option of the engine).
func (d *Dialog) HasBookmarks() bool {
	return d.tbl.HasBookmarks()
}

// SerializeBookmarks returns the engine's bookmark set as an opaque
// blob, suitable for persisting (see pkg/bookmarks) and feeding back to
// DeserializeBookmarks. Returns ErrUnsupported when the engine was built
// without bookmarks.
func (d *Dialog) SerializeBookmarks() (string, error) {
	h := d.handle()
	if d.tbl.SerializeBookmarks == nil {
		return "", ErrUnsupported
	}
	s, _ := d.takeString(d.tbl.SerializeBookmarks(h))
	return s, nil
}

// DeserializeBookmarks restores a bookmark set previously produced by
// SerializeBookmarks.
func (d *Dialog) DeserializeBookmarks(blob string) error {
	h := d.handle()
	if d.tbl.DeserializeBookmarks == nil {
		return ErrUnsupported
	}
	if strings.IndexByte(blob, 0) >= 0 {
		return configErr("bookmarks", ErrNulByte)
	}
	b := native.CString(blob)
	d.tbl.DeserializeBookmarks(h, native.BufPtr(b))
	runtime.KeepAlive(b)
	return nil
}

// HasKeyNavigation reports whether the engine supports keyboard
// exploration tuning.
func (d *Dialog) HasKeyNavigation() bool {
	return d.tbl.HasKeyNavigation()
}

// SetFlashingAttenuation sets how long, in seconds, the keyboard
// navigation highlight takes to fade. Returns ErrUnsupported when the
// engine was built without keyboard exploration.
func (d *Dialog) SetFlashingAttenuation(seconds float32) error {
	h := d.handle()
	if d.tbl.SetFlashingAttenuationInSeconds == nil {
		return ErrUnsupported
	}
	d.tbl.SetFlashingAttenuationInSeconds(h, seconds)
	return nil
}
