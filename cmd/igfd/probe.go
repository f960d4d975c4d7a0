package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"igfd"
)

var probeLib string

var probeCmd = &cobra.Command{
	Use:   "probe",
	Short: "Load the dialog engine and report its optional features",
	RunE: func(cmd *cobra.Command, args []string) error {
		dlg, err := igfd.NewFromLibrary(probeLib)
		if err != nil {
			return err
		}
		defer dlg.Destroy()

		fmt.Printf("engine loaded\n")
		fmt.Printf("  bookmarks:            %v\n", dlg.HasBookmarks())
		fmt.Printf("  keyboard exploration: %v\n", dlg.HasKeyNavigation())
		return nil
	},
}

func init() {
	probeCmd.Flags().StringVar(&probeLib, "lib", "", "path to the ImGuiFileDialog C library")
}
