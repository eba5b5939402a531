package main

import (
	"os"
	"time"

	"github.com/anddsdev/linda/internal/tuplespace"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(outCmd)
	outCmd.Flags().IntVar(&outTTL, "ttl", 0, "expiry in seconds from now (0 = never)")
	outCmd.Flags().BoolVar(&outSeq, "seq", false, "append a FIFO sequence token")
	outCmd.Flags().BoolVar(&outRep, "rep", false, "replace any existing tuple with this name")
}

var (
	outTTL int
	outSeq bool
	outRep bool
)

var outCmd = &cobra.Command{
	Use:   "out <name>",
	Short: "Publish a tuple, reading its payload from stdin",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var opts []tuplespace.OutOption
		if outTTL > 0 {
			opts = append(opts, tuplespace.WithTTL(time.Duration(outTTL)*time.Second))
		}
		if outSeq {
			opts = append(opts, tuplespace.WithSeq())
		}
		if outRep {
			opts = append(opts, tuplespace.WithRep())
		}

		return tuplespace.OutStream(args[0], os.Stdin, opts...)
	},
}
