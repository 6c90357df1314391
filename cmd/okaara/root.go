package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "okaara",
	Short: "okaara is an interactive prompt and menu shell for the terminal",
	Long: `okaara drives terminal conversations: colored prompts, centered text,
tagged reads and writes, and multi-screen menu shells defined in YAML.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().StringP("menu", "m", "", "Menu definition file (YAML); empty runs the built-in demo")
}
