package tuplespace

import (
	"io"
	"os"
	"sync"

	"github.com/rs/zerolog"
)

// defaultDir is used when LINDA_DIR is unset, matching the CLI's own
// fallback so `linda out`/`linda rd` behave sensibly with no configuration
// at all (SPEC_FULL.md §6, §9 "ambient state").
const defaultDir = "/tmp/linda"

var (
	defaultOnce  sync.Once
	defaultSpace *Space
	defaultErr   error
)

// Default returns the process-wide ambient Space rooted at LINDA_DIR (or
// defaultDir if unset), constructing it on first use. Every subsequent call
// returns the same *Space, including the same lazily-started fsnotify
// watcher.
func Default() (*Space, error) {
	defaultOnce.Do(func() {
		dir := os.Getenv("LINDA_DIR")
		if dir == "" {
			dir = defaultDir
		}
		defaultSpace, defaultErr = New(dir)
		if defaultErr == nil {
			defaultSpace = defaultSpace.WithLogger(zerolog.Nop())
		}
	})
	return defaultSpace, defaultErr
}

// Out publishes to the ambient Default Space. See Space.Out.
func Out(name string, data []byte, opts ...OutOption) error {
	s, err := Default()
	if err != nil {
		return err
	}
	return s.Out(name, data, opts...)
}

// OutStream publishes to the ambient Default Space. See Space.OutStream.
func OutStream(name string, r io.Reader, opts ...OutOption) error {
	s, err := Default()
	if err != nil {
		return err
	}
	return s.OutStream(name, r, opts...)
}

// Rd reads from the ambient Default Space. See Space.Rd.
func Rd(pattern string, mode Mode) ([]byte, error) {
	s, err := Default()
	if err != nil {
		return nil, err
	}
	return s.Rd(pattern, mode)
}

// Inp consumes from the ambient Default Space. See Space.Inp.
func Inp(pattern string, mode Mode) ([]byte, error) {
	s, err := Default()
	if err != nil {
		return nil, err
	}
	return s.Inp(pattern, mode)
}

// Ls lists the ambient Default Space. See Space.Ls.
func Ls(pattern string) ([]string, error) {
	s, err := Default()
	if err != nil {
		return nil, err
	}
	return s.Ls(pattern)
}

// Clear empties the ambient Default Space. See Space.Clear.
func Clear() error {
	s, err := Default()
	if err != nil {
		return err
	}
	return s.Clear()
}
