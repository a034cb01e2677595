package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/dhamidi/textscan"
)

func newSliceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "slice <file> <start> <end>",
		Short: "Print the text between two byte offsets",
		Long: `Print the text between two byte offsets.

Offsets that fall inside a multi-byte character snap forward to the next
character boundary.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read file: %w", err)
			}
			start, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("parse start offset: %w", err)
			}
			end, err := strconv.Atoi(args[2])
			if err != nil {
				return fmt.Errorf("parse end offset: %w", err)
			}
			if start < 0 || end < start || end > len(source) {
				return fmt.Errorf("invalid range [%d, %d) for %d bytes", start, end, len(source))
			}

			c := textscan.New(string(source))
			for c.Offset() < start {
				if _, ok := c.Next(); !ok {
					break
				}
			}
			c.SetMarker()
			log.Debugf("marker at byte %d (%s)", c.Offset(), c.Position())

			for c.Offset() < end {
				if _, ok := c.Next(); !ok {
					break
				}
			}

			fmt.Println(c.SliceFromMarker())
			return nil
		},
	}
}
