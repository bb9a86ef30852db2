package cmd

import (
	"fmt"
	"strings"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/zjrosen/sketchpad/internal/config"
	"github.com/zjrosen/sketchpad/internal/log"
	"github.com/zjrosen/sketchpad/internal/sketch/catalog"
)

var exportFlags struct {
	all        bool
	dir        string
	sets       []string
	width      int
	height     int
	pixelRatio float64
	unique     bool
	seed       uint64
}

var exportCmd = &cobra.Command{
	Use:   "export [sketch...]",
	Short: "Render sketches to PNG files",
	Long: `Render one or more sketches headlessly and write them as PNG files.

Available sketches: ` + strings.Join(catalog.Names(), ", ") + `

Flags override the export section of the config file. --set applies a
parameter to every selected sketch that has it.`,
	Example: `  sketchpad export radio
  sketchpad export --all -o shots --pixel-ratio 2
  sketchpad export tabs --set tabCount=3 --set "tab2Title=Settings"`,
	RunE: runExport,
}

func init() {
	f := exportCmd.Flags()
	f.BoolVar(&exportFlags.all, "all", false, "export every sketch")
	f.StringVarP(&exportFlags.dir, "output", "o", "", "output directory")
	f.StringArrayVar(&exportFlags.sets, "set", nil, "parameter override key=value (repeatable)")
	f.IntVar(&exportFlags.width, "width", 0, "image width in logical pixels")
	f.IntVar(&exportFlags.height, "height", 0, "image height in logical pixels")
	f.Float64Var(&exportFlags.pixelRatio, "pixel-ratio", 0, "device pixels per logical pixel")
	f.BoolVar(&exportFlags.unique, "unique", false, "add a random suffix instead of overwriting")
	f.Uint64Var(&exportFlags.seed, "seed", 1, "random seed for sketches with random state (0 uses the clock)")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	if len(args) == 0 && !exportFlags.all {
		return fmt.Errorf("name a sketch or pass --all (available: %s)", strings.Join(catalog.Names(), ", "))
	}
	if len(args) > 0 && exportFlags.all {
		return fmt.Errorf("--all cannot be combined with sketch names")
	}

	ec := exportConfig(cmd, cfg.Export)
	if err := config.ValidateExport(ec); err != nil {
		return err
	}

	env, err := setup(cmd.Context(), false)
	if err != nil {
		return err
	}
	defer env.Close()

	sketches, err := buildSketches(args, exportFlags.seed)
	if err != nil {
		return err
	}
	if err := applySets(sketches, exportFlags.sets); err != nil {
		return err
	}

	exporter := env.exporter(exportOptions(ec))
	defer exporter.Close()

	var bar *progressbar.ProgressBar
	if len(sketches) > 1 {
		bar = progressbar.NewOptions(len(sketches),
			progressbar.OptionSetWriter(cmd.ErrOrStderr()),
			progressbar.OptionSetDescription("Exporting"),
			progressbar.OptionSetWidth(40),
			progressbar.OptionShowCount(),
			progressbar.OptionClearOnFinish(),
		)
	}

	written, err := exporter.ExportAll(cmd.Context(), sketches, func(_ int, path string, err error) {
		if err != nil {
			log.ErrorErr(log.CatExport, "Export failed", err)
		} else {
			log.Info(log.CatExport, "Exported", "path", path)
		}
		if bar != nil {
			_ = bar.Add(1)
		}
	})
	if bar != nil {
		_ = bar.Finish()
	}
	for _, p := range written {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), p)
	}
	return err
}

// exportConfig layers the flags the user set over the config section.
func exportConfig(cmd *cobra.Command, ec config.ExportConfig) config.ExportConfig {
	f := cmd.Flags()
	if f.Changed("output") {
		ec.Dir = exportFlags.dir
	}
	if f.Changed("width") {
		ec.Width = exportFlags.width
	}
	if f.Changed("height") {
		ec.Height = exportFlags.height
	}
	if f.Changed("pixel-ratio") {
		ec.PixelRatio = exportFlags.pixelRatio
	}
	if f.Changed("unique") {
		ec.UniqueNames = exportFlags.unique
	}
	return ec
}
