package main

import (
	"fmt"

	"github.com/anddsdev/linda/internal/tuplespace"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(lsCmd)
}

var lsCmd = &cobra.Command{
	Use:   "ls [pattern]",
	Short: "List distinct tuple names and their counts",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		pattern := "*"
		if len(args) == 1 {
			pattern = args[0]
		}

		lines, err := tuplespace.Ls(pattern)
		if err != nil {
			return err
		}

		for _, line := range lines {
			fmt.Println(line)
		}
		return nil
	},
}
