package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "cfgtool",
	Short: "cfgtool reads, formats and queries cfg configuration files.",
	Long:  "cfgtool reads, formats and queries cfg configuration files: sectioned documents of typed key/value pairs.",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of cfgtool",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("cfgtool v0.1 -- HEAD")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(fmtCmd)
	rootCmd.AddCommand(getCmd)
}
