package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/pronix/okaara/internal/cli"
	"github.com/pronix/okaara/internal/presentation/tui"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run an interactive menu shell",
	Long: `Starts the interactive shell, either with the built-in demo menu or with
a menu definition supplied via --menu.`,
	Run: func(cmd *cobra.Command, args []string) {
		var opts cli.RunOptions
		opts.MenuPath, _ = cmd.Flags().GetString("menu")
		if !cmd.Flags().Changed("menu") && len(args) > 0 {
			opts.MenuPath = args[0]
		}
		opts.ScriptPath, _ = cmd.Flags().GetString("script")
		opts.NoBanner, _ = cmd.Flags().GetBool("no-banner")
		opts.NoColor, _ = cmd.Flags().GetBool("no-color")
		opts.RecordTags, _ = cmd.Flags().GetBool("record-tags")
		opts.Debug, _ = cmd.Flags().GetBool("debug")

		if err := cli.Execute(opts); err != nil {
			tui.Error(err.Error())
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringP("script", "s", "", "Read input lines from a file instead of stdin")
	runCmd.Flags().Bool("no-banner", false, "Skip the startup banner")
	runCmd.Flags().Bool("no-color", false, "Disable colored output")
	runCmd.Flags().Bool("record-tags", false, "Record write/read tags and print a summary on exit")
	runCmd.Flags().Bool("debug", false, "Enable debug logging")

	// Running the bare binary starts the shell.
	rootCmd.Run = runCmd.Run
}
