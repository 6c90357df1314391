package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/pronix/okaara"
	"github.com/pronix/okaara/internal/presentation/tui"
)

var colorsCmd = &cobra.Command{
	Use:   "colors",
	Short: "Print the supported color names, each in its own color",
	Run: func(cmd *cobra.Command, args []string) {
		colored := term.IsTerminal(int(os.Stdout.Fd()))
		p := okaara.New(okaara.WithColor(colored))

		if err := p.Write("supported colors", okaara.Centered()); err != nil {
			tui.Error(err.Error())
			os.Exit(1)
		}
		for _, c := range okaara.Colors() {
			if err := p.Write(string(c), okaara.Colored(c)); err != nil {
				tui.Error(err.Error())
				os.Exit(1)
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(colorsCmd)
}
