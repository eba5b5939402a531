package main

import (
	"os"

	"github.com/anddsdev/linda/internal/tuplespace"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(rdCmd)
	rdModeFlags.register(rdCmd)
}

var rdModeFlags modeFlags

var rdCmd = &cobra.Command{
	Use:   "rd <pattern>",
	Short: "Read a matching tuple without removing it, writing its payload to stdout",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		mode, err := rdModeFlags.mode()
		if err != nil {
			return err
		}

		data, err := tuplespace.Rd(args[0], mode)
		if err != nil {
			return err
		}

		_, err = os.Stdout.Write(data)
		return err
	},
}
