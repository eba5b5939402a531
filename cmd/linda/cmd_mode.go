package main

import (
	"fmt"
	"time"

	"github.com/anddsdev/linda/internal/tuplespace"
	"github.com/spf13/cobra"
)

// modeFlags backs the shared --once/--timeout flag pair that rd and inp
// both expose; absent either flag, the operation blocks forever.
type modeFlags struct {
	once    bool
	timeout int
}

func (f *modeFlags) register(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&f.once, "once", false, "make a single attempt, fail immediately if nothing matches")
	cmd.Flags().IntVar(&f.timeout, "timeout", -1, "poll for up to this many seconds before giving up")
}

func (f *modeFlags) mode() (tuplespace.Mode, error) {
	switch {
	case f.once && f.timeout >= 0:
		return tuplespace.Mode{}, &tuplespace.Error{
			Op:   "mode",
			Kind: tuplespace.KindInvalidArgument,
			Err:  fmt.Errorf("--once and --timeout are mutually exclusive"),
		}
	case f.once:
		return tuplespace.ModeOnce, nil
	case f.timeout >= 0:
		return tuplespace.ModeTimeout(time.Duration(f.timeout) * time.Second), nil
	default:
		return tuplespace.ModeWait, nil
	}
}
