package native

import "github.com/ebitengine/purego"

// PaneRenderer draws a custom side pane. filter is the filter currently
// selected in the dialog; the engine owns the string for the duration of
// the call.
type PaneRenderer func(filter string)

// NewPaneCallback wraps fn as an IGFD_PaneFun trampoline:
//
//	void (*)(const char* filter, void* user_datas, bool* can_continue)
//
// Callbacks are never released (purego trampolines live for the process),
// so callers should create one per dialog key, not per frame.
func NewPaneCallback(fn PaneRenderer) uintptr {
	return purego.NewCallback(func(filter, userDatas, canContinue uintptr) {
		fn(GoString(filter))
	})
}
