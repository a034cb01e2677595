package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	_ "github.com/tliron/commonlog/simple"
)

var log = commonlog.GetLogger("textscan")

func main() {
	var verbosity int

	rootCmd := &cobra.Command{
		Use:   "textscan",
		Short: "Line/column tools for text files",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			commonlog.Configure(verbosity, nil)
		},
	}
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "increase log verbosity")

	rootCmd.AddCommand(newLocateCmd())
	rootCmd.AddCommand(newSliceCmd())
	rootCmd.AddCommand(newLinesCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
