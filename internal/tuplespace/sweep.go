package tuplespace

import (
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
)

// orphanTempMaxAge bounds how long a leftover *.tmp.<pid>.<hex> file from a
// failed out() survives before the sweeper reaps it.
const orphanTempMaxAge = int64(time.Hour / time.Second)

// sweep enumerates dir once and unlinks every tuple whose encoded expiry is
// strictly in the past, then opportunistically reaps orphaned temp files.
// It never blocks and makes no lock acquisitions, per SPEC_FULL.md §4.2.
// Unlink failures (a peer beat us to it, permissions) are swallowed — the
// sweeper is a best-effort optimization, not a source of user-visible
// errors — and logged at debug level.
func sweep(dir string, log zerolog.Logger) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return
	}

	now := time.Now().Unix()
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		t, ok := parseTuple(name)
		if !ok {
			continue
		}
		if !t.hasExp || now < t.expiry {
			continue
		}
		path := filepath.Join(dir, name)
		if err := os.Remove(path); err != nil {
			if !os.IsNotExist(err) {
				log.Debug().Str("tuple", name).Err(err).Msg("sweep: unlink failed")
			}
			continue
		}
		log.Debug().Str("tuple", name).Msg("sweep: expired tuple removed")
	}

	newAtomicOps(dir).reapOrphanedTemps(orphanTempMaxAge, now)
}
