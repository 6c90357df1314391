package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pronix/okaara"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of okaara",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("okaara version %s\n", strings.TrimSpace(okaara.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
