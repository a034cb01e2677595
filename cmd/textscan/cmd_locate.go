package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/dhamidi/textscan"
)

func newLocateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "locate <file> <offset>",
		Short: "Translate a byte offset into a line:column position",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read file: %w", err)
			}
			offset, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("parse offset: %w", err)
			}
			if offset < 0 || offset > len(source) {
				return fmt.Errorf("offset %d out of range [0, %d]", offset, len(source))
			}

			c := textscan.New(string(source))
			for c.Offset() < offset {
				if _, ok := c.Next(); !ok {
					break
				}
			}
			log.Debugf("stopped at byte %d of %d", c.Offset(), len(source))

			fmt.Printf("%s:%s\n", args[0], c.Position())
			return nil
		},
	}
}
