package tuplespace

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/rs/zerolog"
)

// pollInterval is the fixed fallback tick used by the rd/inp poll loop and
// is the resolution floor for ModeTimeout accuracy (SPEC_FULL.md §5).
const pollInterval = 100 * time.Millisecond

// Mode selects how Rd/Inp behave when no tuple currently matches.
type Mode struct {
	kind    modeKind
	timeout time.Duration
}

type modeKind int

const (
	modeWait modeKind = iota
	modeOnce
	modeTimeout
)

// ModeWait blocks until a match appears. It is the default mode.
var ModeWait = Mode{kind: modeWait}

// ModeOnce makes a single attempt and fails with KindNoMatch if empty.
var ModeOnce = Mode{kind: modeOnce}

// ModeTimeout polls until at least the given duration has elapsed since the
// call began, then fails with KindTimeout.
func ModeTimeout(d time.Duration) Mode {
	return Mode{kind: modeTimeout, timeout: d}
}

// OutOption configures a single Out call.
type OutOption func(*outConfig)

type outConfig struct {
	ttl time.Duration
	seq bool
	rep bool
}

// WithTTL sets an expiry ttl seconds in the future. ttl must be >= 0; 0
// means "never expires".
func WithTTL(ttl time.Duration) OutOption {
	return func(c *outConfig) { c.ttl = ttl }
}

// WithSeq allocates a FIFO sequence token for this publication.
func WithSeq() OutOption {
	return func(c *outConfig) { c.seq = true }
}

// WithRep publishes in replacement mode: no disambiguator, so the atomic
// rename overwrites any prior tuple of the same bare name.
func WithRep() OutOption {
	return func(c *outConfig) { c.rep = true }
}

// Space is a handle on one tuple-space directory. It holds no in-memory
// tuple state — every operation is a synchronous transaction against Dir.
type Space struct {
	dir    string
	atomic *atomicOps
	seqs   *sequenceAllocator
	watch  *dirWatch
	log    zerolog.Logger
}

// New opens (creating if absent) the tuple space rooted at dir.
func New(dir string) (*Space, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, newErr("new", KindIO, err)
	}
	log := zerolog.Nop()
	s := &Space{
		dir:    dir,
		atomic: newAtomicOps(dir),
		log:    log,
	}
	s.seqs = newSequenceAllocator(dir, s.atomic)
	s.watch = newDirWatch(log)
	return s, nil
}

// WithLogger attaches a logger Space will use for sweep and watch events.
// It returns the same Space for chaining at construction time.
func (s *Space) WithLogger(log zerolog.Logger) *Space {
	s.log = log
	s.seqs = newSequenceAllocator(s.dir, s.atomic)
	s.watch = newDirWatch(log)
	return s
}

// Dir returns the tuple-space directory this Space is rooted at.
func (s *Space) Dir() string { return s.dir }

// Close releases any resources Space opened lazily (currently, the fsnotify
// watcher, if one was ever started).
func (s *Space) Close() error {
	s.watch.close()
	return nil
}

func (s *Space) sweep() {
	sweep(s.dir, s.log)
}

// Out publishes data under name. See SPEC_FULL.md §4.7.1 for the full
// contract including the rep/non-rep mixing caveat.
func (s *Space) Out(name string, data []byte, opts ...OutOption) error {
	return s.out(name, func(finalPath string, perm os.FileMode) error {
		return s.atomic.write(finalPath, data, perm)
	}, opts...)
}

// OutStream is the streaming counterpart of Out, used by the HTTP frontend
// so large payloads are never fully buffered before the atomic rename.
func (s *Space) OutStream(name string, r io.Reader, opts ...OutOption) error {
	return s.out(name, func(finalPath string, perm os.FileMode) error {
		return s.atomic.writeStream(finalPath, r, perm)
	}, opts...)
}

func (s *Space) out(name string, write func(string, os.FileMode) error, opts ...OutOption) error {
	if err := validateOutName(name); err != nil {
		return newErr("out", KindInvalidArgument, err)
	}

	cfg := outConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.seq && cfg.rep {
		return newErr("out", KindInvalidArgument, errMutuallyExclusive)
	}
	if cfg.ttl < 0 {
		return newErr("out", KindInvalidArgument, errNegativeTTL)
	}

	s.sweep()

	var seqToken string
	if cfg.seq {
		tok, err := s.seqs.next(name)
		if err != nil {
			if err == errTimeout {
				return newErr("out", KindTimeout, err)
			}
			return newErr("out", KindIO, err)
		}
		seqToken = tok
	}

	var randToken string
	if !cfg.rep {
		randToken = newRand()
	}

	var expiry int64
	if cfg.ttl > 0 {
		expiry = time.Now().Add(cfg.ttl).Unix()
	}

	filename := buildFilename(name, seqToken, randToken, expiry)
	finalPath := filepath.Join(s.dir, filename)

	if err := write(finalPath, 0644); err != nil {
		return newErr("out", KindIO, err)
	}
	return nil
}

// Rd returns a snapshot of some tuple matching pattern without consuming it.
// See SPEC_FULL.md §4.7.2.
func (s *Space) Rd(pattern string, mode Mode) ([]byte, error) {
	return s.poll(context.Background(), "rd", pattern, mode, false)
}

// RdCtx is Rd with context-based cancellation of ModeWait/ModeTimeout waits,
// used by the HTTP frontend to abort a blocked read on client disconnect.
func (s *Space) RdCtx(ctx context.Context, pattern string, mode Mode) ([]byte, error) {
	return s.poll(ctx, "rd", pattern, mode, false)
}

// Inp returns and consumes some tuple matching pattern. See SPEC_FULL.md
// §4.7.3.
func (s *Space) Inp(pattern string, mode Mode) ([]byte, error) {
	return s.poll(context.Background(), "inp", pattern, mode, true)
}

// InpCtx is Inp with context-based cancellation.
func (s *Space) InpCtx(ctx context.Context, pattern string, mode Mode) ([]byte, error) {
	return s.poll(ctx, "inp", pattern, mode, true)
}

func (s *Space) poll(ctx context.Context, op, pattern string, mode Mode, consume bool) ([]byte, error) {
	if err := validatePattern(pattern); err != nil {
		return nil, newErr(op, KindInvalidArgument, err)
	}

	s.sweep()

	started := time.Now()
	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	for {
		candidates, err := match(s.dir, pattern, time.Now())
		if err != nil {
			return nil, newErr(op, KindIO, err)
		}

		for _, c := range candidates {
			path := filepath.Join(s.dir, c.filename)
			data, rerr := s.atomic.read(path)
			if rerr != nil {
				// Lost the race to a peer that consumed it first; try the
				// next candidate.
				continue
			}
			if consume {
				// Best-effort unlink: ignore failure, another process may
				// have won the delete race and gotten its own copy. This is
				// the engine's documented at-most-one-delivery property.
				_ = os.Remove(path)
			}
			return data, nil
		}

		switch mode.kind {
		case modeOnce:
			return nil, newErr(op, KindNoMatch, nil)
		case modeTimeout:
			if time.Since(started) >= mode.timeout {
				return nil, newErr(op, KindTimeout, nil)
			}
		}

		wake := s.watch.signal(s.dir)
		select {
		case <-ctx.Done():
			return nil, newErr(op, KindTimeout, ctx.Err())
		case <-ticker.C:
		case <-wake:
		}
	}
}

// Ls groups live tuples by logical name and reports "<count> <name>" lines
// sorted lexicographically by name. An empty pattern, or a bare "*", matches
// everything. See SPEC_FULL.md §4.7.4.
func (s *Space) Ls(pattern string) ([]string, error) {
	if pattern != "" && pattern != "*" {
		if err := validatePattern(pattern); err != nil {
			return nil, newErr("ls", KindInvalidArgument, err)
		}
	}

	s.sweep()

	candidates, err := match(s.dir, pattern, time.Now())
	if err != nil {
		return nil, newErr("ls", KindIO, err)
	}

	counts := map[string]int{}
	var order []string
	for _, c := range candidates {
		if _, seen := counts[c.name]; !seen {
			order = append(order, c.name)
		}
		counts[c.name]++
	}

	sort.Strings(order)

	out := make([]string, 0, len(order))
	for _, name := range order {
		out = append(out, strconv.Itoa(counts[name])+" "+name)
	}
	return out, nil
}

// Clear unlinks every file in Dir, including sequence files, stale locks,
// and stray temporaries. Not atomic with respect to concurrent peers; per-
// file errors are ignored. See SPEC_FULL.md §4.7.5.
func (s *Space) Clear() error {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return newErr("clear", KindIO, err)
	}
	for _, entry := range entries {
		os.Remove(filepath.Join(s.dir, entry.Name()))
	}
	return nil
}
