package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// useColor resolves the --color flag. "auto" colours only when writing to a
// terminal.
func useColor(cmd *cobra.Command) (bool, error) {
	mode, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return false, err
	}
	switch mode {
	case "on":
		return true, nil
	case "off":
		return false, nil
	case "auto":
		f, ok := cmd.OutOrStdout().(*os.File)
		return ok && term.IsTerminal(int(f.Fd())), nil
	default:
		return false, fmt.Errorf("unknown color mode %q (auto|on|off)", mode)
	}
}

// label renders s in the style used for the non-numeric parts of the output.
func label(cmd *cobra.Command, s string) (string, error) {
	on, err := useColor(cmd)
	if err != nil || !on {
		return s, err
	}
	c := color.New(color.FgCyan, color.Faint)
	c.EnableColor()
	return c.Sprint(s), nil
}
