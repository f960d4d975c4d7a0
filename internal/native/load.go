//go:build linux || darwin || freebsd

package native

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"github.com/ebitengine/purego"

	"igfd/internal/log"
)

var (
	loadOnce sync.Once
	loaded   *Table
	loadErr  error
)

// Load dlopens the ImGuiFileDialog C engine and binds its symbols into a
// Table. An empty path consults the IGFD_LIBRARY environment variable and
// then a short search list before falling back to the bare library name
// (letting the system loader find it). The library is loaded once per
// process; later calls return the same table regardless of path.
func Load(path string) (*Table, error) {
	loadOnce.Do(func() {
		libPath := path
		if libPath == "" {
			libPath = findLibrary()
		}
		log.Debugf("native: loading %s", libPath)

		handle, err := purego.Dlopen(libPath, purego.RTLD_NOW|purego.RTLD_GLOBAL)
		if err != nil {
			loadErr = fmt.Errorf("load dialog engine from %s: %w", libPath, err)
			return
		}

		t := &Table{}
		if err := register(t, handle); err != nil {
			loadErr = err
			return
		}
		loaded = t
	})
	return loaded, loadErr
}

func libraryName() string {
	if runtime.GOOS == "darwin" {
		return "libImGuiFileDialogC.dylib"
	}
	return "libImGuiFileDialogC.so"
}

func findLibrary() string {
	if p := os.Getenv("IGFD_LIBRARY"); p != "" {
		return p
	}
	name := libraryName()
	candidates := []string{name, filepath.Join(".", name)}
	if exe, err := os.Executable(); err == nil {
		dir := filepath.Dir(exe)
		candidates = append(candidates,
			filepath.Join(dir, name),
			filepath.Join(dir, "..", "lib", name),
		)
	}
	for _, c := range candidates {
		if _, err := os.Stat(c); err == nil {
			if abs, err := filepath.Abs(c); err == nil {
				return abs
			}
			return c
		}
	}
	// Let dlopen search the system paths.
	return name
}

func register(t *Table, handle uintptr) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("bind dialog engine symbols: %v", r)
		}
	}()

	purego.RegisterLibFunc(&t.Create, handle, "IGFD_Create")
	purego.RegisterLibFunc(&t.Destroy, handle, "IGFD_Destroy")

	purego.RegisterLibFunc(&t.OpenDialog, handle, "IGFD_OpenDialog")
	purego.RegisterLibFunc(&t.OpenDialog2, handle, "IGFD_OpenDialog2")
	purego.RegisterLibFunc(&t.OpenModal, handle, "IGFD_OpenModal")
	purego.RegisterLibFunc(&t.OpenModal2, handle, "IGFD_OpenModal2")
	purego.RegisterLibFunc(&t.OpenPaneDialog, handle, "IGFD_OpenPaneDialog")
	purego.RegisterLibFunc(&t.OpenPaneDialog2, handle, "IGFD_OpenPaneDialog2")
	purego.RegisterLibFunc(&t.OpenPaneModal, handle, "IGFD_OpenPaneModal")
	purego.RegisterLibFunc(&t.OpenPaneModal2, handle, "IGFD_OpenPaneModal2")

	purego.RegisterLibFunc(&t.DisplayDialog, handle, "IGFD_DisplayDialog")
	purego.RegisterLibFunc(&t.CloseDialog, handle, "IGFD_CloseDialog")

	purego.RegisterLibFunc(&t.IsOk, handle, "IGFD_IsOk")
	purego.RegisterLibFunc(&t.IsOpened, handle, "IGFD_IsOpened")
	purego.RegisterLibFunc(&t.IsKeyOpened, handle, "IGFD_IsKeyOpened")
	purego.RegisterLibFunc(&t.WasOpenedThisFrame, handle, "IGFD_WasOpenedThisFrame")
	purego.RegisterLibFunc(&t.WasKeyOpenedThisFrame, handle, "IGFD_WasKeyOpenedThisFrame")

	purego.RegisterLibFunc(&t.GetSelection, handle, "IGFD_GetSelection")
	purego.RegisterLibFunc(&t.SelectionDestroyContent, handle, "IGFD_Selection_DestroyContent")
	purego.RegisterLibFunc(&t.GetFilePathName, handle, "IGFD_GetFilePathName")
	purego.RegisterLibFunc(&t.GetCurrentFileName, handle, "IGFD_GetCurrentFileName")
	purego.RegisterLibFunc(&t.GetCurrentPath, handle, "IGFD_GetCurrentPath")
	purego.RegisterLibFunc(&t.GetCurrentFilter, handle, "IGFD_GetCurrentFilter")
	purego.RegisterLibFunc(&t.GetUserDatas, handle, "IGFD_GetUserDatas")

	purego.RegisterLibFunc(&t.SetExtentionInfos, handle, "IGFD_SetExtentionInfos")
	purego.RegisterLibFunc(&t.SetExtentionInfos2, handle, "IGFD_SetExtentionInfos2")
	purego.RegisterLibFunc(&t.GetExtentionInfos, handle, "IGFD_GetExtentionInfos")
	purego.RegisterLibFunc(&t.ClearExtentionInfos, handle, "IGFD_ClearExtentionInfos")

	// The scalar accessors document "you are responsible for freeing";
	// the matching deallocator is plain free, resolved through the
	// engine's own dependency chain.
	purego.RegisterLibFunc(&t.Free, handle, "free")

	// Optional build flavors.
	registerOptional(&t.SerializeBookmarks, handle, "IGFD_SerializeBookmarks")
	registerOptional(&t.DeserializeBookmarks, handle, "IGFD_DeserializeBookmarks")
	registerOptional(&t.SetFlashingAttenuationInSeconds, handle, "IGFD_SetFlashingAttenuationInSeconds")

	return nil
}

// registerOptional binds a symbol if the engine exports it, leaving the
// function nil otherwise.
func registerOptional[T any](fn *T, handle uintptr, name string) {
	defer func() {
		if recover() != nil {
			log.Debugf("native: optional symbol %s not present", name)
		}
	}()
	purego.RegisterLibFunc(fn, handle, name)
}
