package cmd

import (
	"fmt"
	"os"

	"github.com/manifoldco/promptui"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/zjrosen/sketchpad/internal/theme"
)

var themeCmd = &cobra.Command{
	Use:   "theme [light|dark|system]",
	Short: "Show or change the stored theme mode",
	Long: `With no argument, print the stored theme mode, or pick one from a list
when run in a terminal. A running playground picks the change up
immediately.`,
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{string(theme.Light), string(theme.Dark), string(theme.System)},
	RunE:      runTheme,
}

func init() {
	rootCmd.AddCommand(themeCmd)
}

// stdinIsTerminal is replaced in tests.
var stdinIsTerminal = func() bool {
	fd := os.Stdin.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func runTheme(cmd *cobra.Command, args []string) error {
	env, err := setup(cmd.Context(), false)
	if err != nil {
		return err
	}
	defer env.Close()

	var mode theme.Mode
	switch {
	case len(args) == 1:
		if mode, err = theme.ParseMode(args[0]); err != nil {
			return err
		}
	case stdinIsTerminal():
		if mode, err = pickMode(env.theme.Mode()); err != nil {
			return err
		}
	default:
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), env.theme.Mode())
		return nil
	}

	if env.store == nil {
		return fmt.Errorf("storage unavailable at %s", cfg.StoragePath)
	}
	if err := env.theme.Set(cmd.Context(), mode); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Theme set to %s\n", mode)
	return nil
}

func pickMode(current theme.Mode) (theme.Mode, error) {
	modes := theme.Modes()
	cursor := 0
	for i, m := range modes {
		if m == current {
			cursor = i
		}
	}
	prompt := promptui.Select{
		Label:     fmt.Sprintf("Theme (current: %s)", current),
		Items:     modes,
		CursorPos: cursor,
	}
	i, _, err := prompt.Run()
	if err != nil {
		return "", fmt.Errorf("theme selection cancelled: %w", err)
	}
	return modes[i], nil
}
