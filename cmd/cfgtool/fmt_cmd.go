package main

import (
	"fmt"
	"os"

	"github.com/cfg-lang/go-cfg"
	"github.com/spf13/cobra"
)

type fmtParams struct {
	Output string
}

var fmtFlags fmtParams

var fmtCmd = &cobra.Command{
	Use:   "fmt <file>",
	Short: "Parse a cfg file and print it back in canonical form",
	Long: "Parse a cfg file and print it back in canonical form: one key per " +
		"line, tab-indented containers, no trailing commas. Comments are not " +
		"preserved.",
	Args: cobra.ExactArgs(1),
	RunE: fmtRun,
}

func init() {
	fmtCmd.Flags().StringVarP(&fmtFlags.Output, "output", "o", "", "write the result to a file instead of stdout")
}

func fmtRun(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}

	doc, err := cfg.Parse(string(data))
	if err != nil {
		return fmt.Errorf("%s: %w", args[0], err)
	}

	out, err := cfg.Marshal(doc)
	if err != nil {
		return err
	}

	if fmtFlags.Output != "" {
		return os.WriteFile(fmtFlags.Output, out, 0o644)
	}

	_, err = cmd.OutOrStdout().Write(out)
	return err
}
