package main

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/AllenDang/cimgui-go/backend"
	"github.com/AllenDang/cimgui-go/backend/sdlbackend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/spf13/cobra"

	"igfd"
	"igfd/internal/log"
	"igfd/pkg/bookmarks"
	"igfd/pkg/filter"
)

var (
	demoLib       string
	demoMode      string
	demoFilters   string
	demoPath      string
	demoModal     bool
	demoMulti     int
	demoOverwrite bool
	demoBookmarks string
)

const demoKey = "igfd_demo"

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run an ImGui window with a live file dialog",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDemo()
	},
}

func init() {
	demoCmd.Flags().StringVar(&demoLib, "lib", "", "path to the ImGuiFileDialog C library")
	demoCmd.Flags().StringVar(&demoMode, "mode", "open", "dialog mode: open, dir or save")
	demoCmd.Flags().StringVar(&demoFilters, "filters", "", `filter expression, e.g. ".txt,.md" or "Sources{.c,.h}"`)
	demoCmd.Flags().StringVar(&demoPath, "path", ".", "starting directory")
	demoCmd.Flags().BoolVar(&demoModal, "modal", false, "open as a modal dialog")
	demoCmd.Flags().IntVar(&demoMulti, "multi", 1, "max selected files, 0 for unlimited")
	demoCmd.Flags().BoolVar(&demoOverwrite, "confirm-overwrite", false, "confirm before overwriting (save mode)")
	demoCmd.Flags().StringVar(&demoBookmarks, "bookmarks", "", "bookmark store file (default: user config dir)")
}

func runDemo() error {
	var spec *filter.Spec
	if demoFilters != "" {
		var err error
		spec, err = filter.Parse(demoFilters)
		if err != nil {
			return fmt.Errorf("bad --filters: %w", err)
		}
	}

	dlg, err := igfd.NewFromLibrary(demoLib)
	if err != nil {
		return err
	}
	defer dlg.Destroy()

	store, err := openStore()
	if err != nil {
		return err
	}
	if dlg.HasBookmarks() {
		if blob, err := store.Load(); err != nil {
			log.Warnf("demo: load bookmarks: %v", err)
		} else if blob != "" {
			if err := dlg.DeserializeBookmarks(blob); err != nil {
				log.Warnf("demo: restore bookmarks: %v", err)
			}
		}
	}

	if err := dlg.SetExtensionStyle(".md", igfd.Color{R: 0.3, G: 0.7, B: 1.0, A: 1.0}, "[md]"); err != nil {
		log.Warnf("demo: style .md: %v", err)
	}
	if err := dlg.SetExtensionStyle(".go", igfd.Color{R: 0.4, G: 0.9, B: 0.6, A: 1.0}, "[go]"); err != nil {
		log.Warnf("demo: style .go: %v", err)
	}

	runtime.LockOSThread()
	imgui.CreateContext()

	bk, err := backend.CreateBackend(sdlbackend.NewSDLBackend())
	if err != nil {
		return fmt.Errorf("create SDL backend: %w", err)
	}
	bk.CreateWindow("igfd demo", 960, 640)
	bk.SetBgColor(imgui.NewVec4(0.08, 0.08, 0.08, 1.0))

	sessionOpen := false
	var lastResult string

	bk.Run(func() {
		imgui.Begin("igfd demo")

		if imgui.Button("Browse...") && !sessionOpen {
			if err := openDialog(dlg, spec); err != nil {
				log.Errorf("demo: open: %v", err)
			} else {
				sessionOpen = true
			}
		}
		if lastResult != "" {
			imgui.Text(lastResult)
		}

		if sessionOpen && !dlg.Display(demoKey, igfd.Size{W: 420, H: 310}, igfd.Size{W: 900, H: 620}) {
			if dlg.IsOk() {
				lastResult = describeResult(dlg)
				fmt.Println(lastResult)
			} else {
				lastResult = "cancelled"
			}
			dlg.Close()
			sessionOpen = false
		}

		imgui.End()
	})

	if dlg.HasBookmarks() {
		if blob, err := dlg.SerializeBookmarks(); err == nil {
			if err := store.Save(blob); err != nil {
				log.Warnf("demo: save bookmarks: %v", err)
			}
		}
	}
	return nil
}

func openStore() (*bookmarks.Store, error) {
	path := demoBookmarks
	if path == "" {
		var err error
		path, err = bookmarks.DefaultPath("igfd-demo")
		if err != nil {
			return nil, err
		}
	}
	return &bookmarks.Store{Path: path}, nil
}

func openDialog(dlg *igfd.Dialog, spec *filter.Spec) error {
	var b *igfd.Builder
	switch demoMode {
	case "dir":
		b = dlg.OpenDirectory()
	case "save":
		b = dlg.SaveFile()
		if demoOverwrite {
			b = b.ConfirmOverwrite()
		}
	case "open":
		b = dlg.OpenFile().MultiSelect(demoMulti)
	default:
		return fmt.Errorf("unknown mode %q", demoMode)
	}
	b = b.Path(demoPath)
	if spec != nil {
		b = b.FilterSpec(spec)
	}
	if demoModal {
		b = b.Modal()
	}
	return b.Open(demoKey)
}

func describeResult(dlg *igfd.Dialog) string {
	if demoMode == "save" {
		if path, ok := dlg.FilePathName(); ok {
			return "save to: " + path
		}
		return "confirmed, no path"
	}
	sel := dlg.Selection()
	if sel == nil || sel.Count() == 0 {
		return "confirmed, nothing selected"
	}
	return fmt.Sprintf("selected %d: %s", sel.Count(), strings.Join(sel.Files(), ", "))
}
