// Command igfd exercises the ImGuiFileDialog bindings: "demo" opens a
// small ImGui window driving a dialog session, "probe" loads the engine
// and reports what it was built with.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"igfd/internal/log"
)

var debug bool

var rootCmd = &cobra.Command{
	Use:   "igfd",
	Short: "ImGuiFileDialog binding playground",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		log.SetDebug(debug)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.AddCommand(demoCmd)
	rootCmd.AddCommand(probeCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
