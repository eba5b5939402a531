package main

import (
	"os"

	"github.com/anddsdev/linda/internal/tuplespace"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(inpCmd)
	inpModeFlags.register(inpCmd)
}

var inpModeFlags modeFlags

var inpCmd = &cobra.Command{
	Use:   "inp <pattern>",
	Short: "Read and remove a matching tuple, writing its payload to stdout",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		mode, err := inpModeFlags.mode()
		if err != nil {
			return err
		}

		data, err := tuplespace.Inp(args[0], mode)
		if err != nil {
			return err
		}

		_, err = os.Stdout.Write(data)
		return err
	},
}
