package main

import "github.com/anddsdev/linda/internal/tuplespace"

// exitCodeForError maps an engine Kind onto the exit codes fixed by
// SPEC_FULL.md §6: 0 success, 1 no-match/timeout, 2 invalid-argument,
// 3 unexpected I/O. Anything that isn't a *tuplespace.Error (config load
// failure, stdin read error) also exits 3.
func exitCodeForError(err error) int {
	if err == nil {
		return 0
	}

	spaceErr, ok := err.(*tuplespace.Error)
	if !ok {
		return 3
	}

	switch spaceErr.Kind {
	case tuplespace.KindNoMatch, tuplespace.KindTimeout:
		return 1
	case tuplespace.KindInvalidArgument:
		return 2
	default:
		return 3
	}
}
