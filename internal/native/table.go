// Package native holds the raw function table of the ImGuiFileDialog C
// engine. Everything here is a direct mirror of the C ABI: strings cross
// as uintptrs to NUL-terminated buffers, structs match the C layout, and
// returned heap memory is the caller's to free. The safe wrappers live in
// the root igfd package; nothing outside this module should import native.
package native

// Vec2 matches ImVec2.
type Vec2 struct {
	X, Y float32
}

// Vec4 matches ImVec4.
type Vec4 struct {
	X, Y, Z, W float32
}

// Flags matches ImGuiFileDialogFlags.
type Flags int32

const (
	FlagsNone             Flags = 0
	FlagsConfirmOverwrite Flags = 1 << 0
)

// RawSelectionPair matches IGFD_Selection_Pair: two malloc'd C strings.
type RawSelectionPair struct {
	FileName     uintptr
	FilePathName uintptr
}

// RawSelection matches IGFD_Selection. Table points at Count contiguous
// RawSelectionPair values; the whole thing must be released with
// SelectionDestroyContent exactly once.
type RawSelection struct {
	Table uintptr
	Count uintptr
}

// Table is the engine's C function table bound to Go function values.
// Load populates one from a dlopen'd library; tests populate one from
// closures. Field names follow the IGFD_* symbol names, including the
// engine's own spelling of "Extention".
//
// String parameters are uintptrs to NUL-terminated buffers. A zero
// filters pointer means "no filter" (directory dialogs). userDatas is an
// opaque pointer the engine hands back through GetUserDatas.
type Table struct {
	Create  func() uintptr
	Destroy func(ctx uintptr)

	OpenDialog  func(ctx, key, title, filters, path, fileName uintptr, countSelectionMax int32, userDatas uintptr, flags Flags)
	OpenDialog2 func(ctx, key, title, filters, filePathName uintptr, countSelectionMax int32, userDatas uintptr, flags Flags)
	OpenModal   func(ctx, key, title, filters, path, fileName uintptr, countSelectionMax int32, userDatas uintptr, flags Flags)
	OpenModal2  func(ctx, key, title, filters, filePathName uintptr, countSelectionMax int32, userDatas uintptr, flags Flags)

	OpenPaneDialog  func(ctx, key, title, filters, path, fileName uintptr, sidePane uintptr, sidePaneWidth float32, countSelectionMax int32, userDatas uintptr, flags Flags)
	OpenPaneDialog2 func(ctx, key, title, filters, filePathName uintptr, sidePane uintptr, sidePaneWidth float32, countSelectionMax int32, userDatas uintptr, flags Flags)
	OpenPaneModal   func(ctx, key, title, filters, path, fileName uintptr, sidePane uintptr, sidePaneWidth float32, countSelectionMax int32, userDatas uintptr, flags Flags)
	OpenPaneModal2  func(ctx, key, title, filters, filePathName uintptr, sidePane uintptr, sidePaneWidth float32, countSelectionMax int32, userDatas uintptr, flags Flags)

	DisplayDialog func(ctx, key uintptr, windowFlags int32, minSize, maxSize Vec2) bool
	CloseDialog   func(ctx uintptr)

	IsOk                  func(ctx uintptr) bool
	IsOpened              func(ctx uintptr) bool
	IsKeyOpened           func(ctx, key uintptr) bool
	WasOpenedThisFrame    func(ctx uintptr) bool
	WasKeyOpenedThisFrame func(ctx, key uintptr) bool

	// GetSelection returns an owned table; release it once with
	// SelectionDestroyContent (which takes a pointer to the RawSelection).
	GetSelection            func(ctx uintptr) RawSelection
	SelectionDestroyContent func(selection uintptr)

	// Scalar string accessors return malloc'd buffers owned by the
	// caller; release each with Free. A zero return means no value.
	GetFilePathName    func(ctx uintptr) uintptr
	GetCurrentFileName func(ctx uintptr) uintptr
	GetCurrentPath     func(ctx uintptr) uintptr
	GetCurrentFilter   func(ctx uintptr) uintptr
	GetUserDatas       func(ctx uintptr) uintptr

	SetExtentionInfos  func(ctx, filter uintptr, color Vec4, iconText uintptr)
	SetExtentionInfos2 func(ctx, filter uintptr, r, g, b, a float32, iconText uintptr)
	// GetExtentionInfos writes through outColor (*Vec4) and outIconText
	// (**char). The icon string is borrowed from the engine, not freed.
	GetExtentionInfos   func(ctx, filter, outColor, outIconText uintptr) bool
	ClearExtentionInfos func(ctx uintptr)

	// Free is the generic deallocator paired with the scalar accessors.
	Free func(ptr uintptr)

	// Optional features; nil when the engine was built without them.
	SerializeBookmarks              func(ctx uintptr) uintptr
	DeserializeBookmarks            func(ctx, bookmarks uintptr)
	SetFlashingAttenuationInSeconds func(ctx uintptr, seconds float32)
}

// HasBookmarks reports whether the loaded engine exports the bookmark
// serialization symbols (the USE_BOOKMARK build flavor).
func (t *Table) HasBookmarks() bool {
	return t.SerializeBookmarks != nil && t.DeserializeBookmarks != nil
}

// HasKeyNavigation reports whether the keyboard-navigation tuning symbol
// is present (the USE_EXPLORATION_BY_KEYS build flavor).
func (t *Table) HasKeyNavigation() bool {
	return t.SetFlashingAttenuationInSeconds != nil
}
