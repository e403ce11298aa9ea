package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/iw2rmb/apacite"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version of apacite",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "apacite %s\n", apacite.VersionTag())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
