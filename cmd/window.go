package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/zjrosen/sketchpad/internal/clipboard"
	"github.com/zjrosen/sketchpad/internal/sketch/catalog"
	"github.com/zjrosen/sketchpad/internal/window"
)

var windowFlags struct {
	width  int
	height int
	seed   uint64
}

var windowCmd = &cobra.Command{
	Use:   "window <sketch>",
	Short: "Open a sketch in a native window",
	Long: `Open one sketch in a native window with full-resolution rendering and
real pointer input. Ctrl+E exports a PNG.

Available sketches: ` + strings.Join(catalog.Names(), ", "),
	Args: cobra.ExactArgs(1),
	RunE: runWindow,
}

func init() {
	f := windowCmd.Flags()
	f.IntVar(&windowFlags.width, "width", window.DefaultWidth, "window width")
	f.IntVar(&windowFlags.height, "height", window.DefaultHeight, "window height")
	f.Uint64Var(&windowFlags.seed, "seed", 0, "random seed (0 uses the clock)")
	rootCmd.AddCommand(windowCmd)
}

func runWindow(cmd *cobra.Command, args []string) error {
	env, err := setup(cmd.Context(), false)
	if err != nil {
		return err
	}
	defer env.Close()

	sketches, err := buildSketches(args, windowFlags.seed)
	if err != nil {
		return err
	}
	exporter := env.exporter(exportOptions(cfg.Export))
	defer exporter.Close()

	return window.Run(cmd.Context(), window.Options{
		Sketch:    sketches[0],
		Exporter:  exporter,
		Clipboard: clipboard.System(),
		Width:     windowFlags.width,
		Height:    windowFlags.height,
	})
}
