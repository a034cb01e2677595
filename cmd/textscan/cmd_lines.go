package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dhamidi/textscan"
)

func newLinesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lines <file>",
		Short: "Count lines, treating CRLF and the Unicode line separators as single breaks",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read file: %w", err)
			}

			c := textscan.New(string(source))
			var runes int
			for range c.Runes() {
				runes++
			}
			log.Debugf("scanned %d characters", runes)

			fmt.Println(c.Position().Line)
			return nil
		},
	}
}
