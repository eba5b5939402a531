package tuplespace

import (
	"encoding/hex"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// tuple is the decoded form of a filename in D. Only fields that actually
// appeared in the filename are populated; the zero value of a field means
// "absent", not "zero".
type tuple struct {
	name     string
	seq      string // "-NNNNNNNN" including the leading hyphen, or ""
	rand     string // "-hhhhhhhh" including the leading hyphen, or ""
	expiry   int64  // unix seconds, 0 means no expiry
	hasExp   bool
	filename string
}

const (
	seqDigits = 8
	randHex   = 8
)

// newRand returns an 8 lowercase hex character disambiguator drawn from a
// fresh crypto-random UUID, per the codec rule in SPEC_FULL.md §4.1.
func newRand() string {
	id := uuid.New()
	return hex.EncodeToString(id[:4])
}

// encodeSeq zero-pads n to the fixed 8-digit width the matcher relies on
// for lexicographic == FIFO ordering.
func encodeSeq(n int64) string {
	s := strconv.FormatInt(n, 10)
	for len(s) < seqDigits {
		s = "0" + s
	}
	return s
}

// buildFilename composes name(-seq)?(-rand)?(.expiry)? per the filename
// grammar in SPEC_FULL.md §3.
func buildFilename(name, seq, rand string, expiry int64) string {
	var b strings.Builder
	b.WriteString(name)
	if seq != "" {
		b.WriteByte('-')
		b.WriteString(seq)
	}
	if rand != "" {
		b.WriteByte('-')
		b.WriteString(rand)
	}
	if expiry > 0 {
		b.WriteByte('.')
		b.WriteString(strconv.FormatInt(expiry, 10))
	}
	return b.String()
}

// parseTuple decodes filename into a tuple. It returns ok=false for
// engine-private files (leading dot), lock sentinels, temp files, and
// anything that otherwise fails to parse as a tuple — callers skip these
// silently, they are not errors.
func parseTuple(filename string) (tuple, bool) {
	if filename == "" || strings.HasPrefix(filename, ".") {
		return tuple{}, false
	}
	if strings.HasSuffix(filename, ".lock") {
		return tuple{}, false
	}
	if idx := strings.Index(filename, ".tmp."); idx >= 0 {
		return tuple{}, false
	}

	rest := filename
	var expiry int64
	var hasExp bool

	// expiry: the LAST '.' in the string, if what follows is all digits.
	if dot := strings.LastIndexByte(rest, '.'); dot >= 0 {
		candidate := rest[dot+1:]
		if candidate != "" && isAllDigits(candidate) {
			n, err := strconv.ParseInt(candidate, 10, 64)
			if err == nil {
				expiry = n
				hasExp = true
				rest = rest[:dot]
			}
		}
	}

	// rest is now name(-seq)?(-rand)?
	name := rest
	var seq, rnd string

	parts := strings.Split(rest, "-")
	switch len(parts) {
	case 1:
		name = parts[0]
	case 2:
		name = parts[0]
		if isSeqToken(parts[1]) {
			seq = parts[1]
		} else if isRandToken(parts[1]) {
			rnd = parts[1]
		} else {
			return tuple{}, false
		}
	case 3:
		name = parts[0]
		if !isSeqToken(parts[1]) {
			return tuple{}, false
		}
		seq = parts[1]
		if !isRandToken(parts[2]) {
			return tuple{}, false
		}
		rnd = parts[2]
	default:
		return tuple{}, false
	}

	if name == "" {
		return tuple{}, false
	}

	t := tuple{
		name:     name,
		expiry:   expiry,
		hasExp:   hasExp,
		filename: filename,
	}
	if seq != "" {
		t.seq = "-" + seq
	}
	if rnd != "" {
		t.rand = "-" + rnd
	}
	return t, true
}

func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func isSeqToken(s string) bool {
	return len(s) == seqDigits && isAllDigits(s)
}

func isRandToken(s string) bool {
	if len(s) != randHex {
		return false
	}
	for _, r := range s {
		if !((r >= '0' && r <= '9') || (r >= 'a' && r <= 'f')) {
			return false
		}
	}
	return true
}

// listName is the logical name used for grouping by ls: the substring of
// filename before the first '-' or '.'.
func listName(filename string) string {
	cut := len(filename)
	if i := strings.IndexByte(filename, '-'); i >= 0 && i < cut {
		cut = i
	}
	if i := strings.IndexByte(filename, '.'); i >= 0 && i < cut {
		cut = i
	}
	return filename[:cut]
}
