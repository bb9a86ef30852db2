package cmd

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/signal"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/zjrosen/sketchpad/internal/clipboard"
	"github.com/zjrosen/sketchpad/internal/config"
	"github.com/zjrosen/sketchpad/internal/mode"
	"github.com/zjrosen/sketchpad/internal/mode/playground"
	"github.com/zjrosen/sketchpad/internal/paths"
	"github.com/zjrosen/sketchpad/internal/ui/preview"
)

func init() {
	// Force lipgloss/termenv to query terminal background color BEFORE
	// any Bubble Tea program starts. This prevents the terminal's OSC 11
	// response from racing with Bubble Tea's input loop and appearing as
	// garbage text in input fields.
	//
	// See: https://github.com/charmbracelet/bubbletea/issues/1036
	_ = lipgloss.HasDarkBackground()
}

var (
	version = "dev"
	cfgFile string
	cfg     config.Config
	// cfgPath is the file ctrl+s writes sketch parameters to.
	cfgPath string
	cfgErr  error
	// "::" keeps dotted keys like "text.primary" in theme.colors intact.
	v = viper.NewWithOptions(viper.KeyDelimiter("::"))
)

var rootCmd = &cobra.Command{
	Use:   "sketchpad",
	Short: "Interactive UI component sketches in the terminal",
	Long: `A playground of interactive UI component sketches: tab bars, a radio
grid and stacked text fields, previewed in the terminal with live
parameter editing and PNG export.`,
	Version:      version,
	SilenceUsage: true,
	RunE:         runPlayground,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: ~/.config/sketchpad/config.yaml)")
	rootCmd.PersistentFlags().Bool("debug", false, "write a debug log")
	defaults := config.Defaults()
	rootCmd.Flags().Float64("scale", defaults.Preview.Scale, "preview canvas pixels per terminal column")
	rootCmd.Flags().Int("fps", defaults.Preview.FPS, "preview frame rate")

	_ = v.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	_ = v.BindEnv("debug", "SKETCHPAD_DEBUG")
	_ = v.BindPFlag("preview::scale", rootCmd.Flags().Lookup("scale"))
	_ = v.BindPFlag("preview::fps", rootCmd.Flags().Lookup("fps"))
}

func initConfig() {
	cfg, cfgPath, cfgErr = loadConfig(v, cfgFile)
}

// loadConfig reads the config file into the defaults. Lookup order is the
// explicit file, .sketchpad/config.yaml, then ~/.config/sketchpad/config.yaml.
// A missing file is created from the default template.
func loadConfig(v *viper.Viper, explicit string) (config.Config, string, error) {
	c := config.Defaults()

	target := paths.UserConfigPath()
	switch {
	case explicit != "":
		target = explicit
		v.SetConfigFile(explicit)
	case fileExists(paths.LocalConfigPath()):
		v.SetConfigFile(paths.LocalConfigPath())
	default:
		v.AddConfigPath(paths.UserConfigDir())
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return c, "", fmt.Errorf("reading config: %w", err)
		}
		// If the write fails, continue with defaults and no config file
		if writeErr := config.WriteDefaultConfig(target); writeErr == nil {
			v.SetConfigFile(target)
			_ = v.ReadInConfig()
		}
	}

	if err := v.Unmarshal(&c); err != nil {
		return c, "", fmt.Errorf("decoding config: %w", err)
	}
	used := v.ConfigFileUsed()
	if used == "" {
		used = target
	}
	return c, used, nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func runPlayground(cmd *cobra.Command, _ []string) error {
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	env, err := setup(ctx, true)
	if err != nil {
		return err
	}
	defer env.Close()

	sketches, err := buildSketches(nil, 0)
	if err != nil {
		return err
	}
	exporter := env.exporter(exportOptions(cfg.Export))
	defer exporter.Close()

	model := playground.New(ctx, mode.Services{
		Config:     &cfg,
		ConfigPath: cfgPath,
		Sketches:   sketches,
		Theme:      env.theme,
		Exporter:   exporter,
		Clipboard:  clipboard.System(),
		Renderer:   preview.New(lipgloss.ColorProfile()),
	})
	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
		tea.WithContext(ctx),
	)

	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("running playground: %w", err)
	}
	return nil
}

// Execute runs the root command. Interrupts cancel the command's context.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return rootCmd.ExecuteContext(ctx)
}

// SetVersion sets the version string (called from main with ldflags)
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}
