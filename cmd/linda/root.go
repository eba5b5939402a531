// Package main implements the linda CLI: one subcommand per tuple-space
// operation, plus serve for the HTTP frontend. Grounded on zeoday-chatlog's
// cmd/chatlog package layout — a package-level *cobra.Command per file,
// wired together by init().
package main

import (
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Err(err).Msg("command failed")
		os.Exit(exitCodeForError(err))
	}
}

var rootCmd = &cobra.Command{
	Use:   "linda",
	Short: "linda is a filesystem-backed Linda tuple space",
	Long: `linda coordinates processes through a POSIX directory: out publishes a
tuple, rd reads one without removing it, inp reads and removes one, ls
lists names present, and clear empties the space.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}
