package main

import (
	"fmt"
	"os"

	"github.com/cfg-lang/go-cfg"
	"github.com/spf13/cobra"
)

var getCmd = &cobra.Command{
	Use:   "get <file> <section> [key]",
	Short: "Print a section, or a single key's value, from a cfg file",
	Long: "Print a section, or a single key's value, from a cfg file. Names " +
		"are matched case-insensitively.",
	Args: cobra.RangeArgs(2, 3),
	RunE: getRun,
}

func getRun(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}

	doc, err := cfg.Parse(string(data))
	if err != nil {
		return fmt.Errorf("%s: %w", args[0], err)
	}

	sec := doc.Get(args[1])
	if sec == nil {
		return fmt.Errorf("%s: no section named %q", args[0], args[1])
	}

	if len(args) == 2 {
		fmt.Fprintln(cmd.OutOrStdout(), sec)
		return nil
	}

	key := sec.Get(args[2])
	if key == nil {
		return fmt.Errorf("%s: no key named %q in section %q", args[0], args[2], sec.Name())
	}

	fmt.Fprintln(cmd.OutOrStdout(), key.Value)
	return nil
}
