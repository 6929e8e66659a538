package loghive

import (
	"os"
	"path/filepath"
	"strings"
	"time"
)

// cleanupOldLogs deletes files in dir whose name ends in ".log" and whose
// modification time is more than retentionDays days in the past. A negative
// retentionDays disables cleanup entirely.
//
// Every per-file failure (metadata read, deletion) is absorbed and the sweep
// continues; log hygiene must never block startup. The counts are reported
// back for the initialization record and metrics, nothing else.
func cleanupOldLogs(dir string, retentionDays int) (removed, failed int) {
	if retentionDays < 0 {
		return 0, 0
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0, 1
	}

	cutoff := time.Now().Add(-time.Duration(retentionDays) * 24 * time.Hour)
	for _, entry := range entries {
		if !strings.HasSuffix(entry.Name(), logFileSuffix) {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			failed++
			continue
		}
		if !info.ModTime().Before(cutoff) {
			continue
		}
		if err := os.Remove(filepath.Join(dir, entry.Name())); err != nil {
			failed++
			continue
		}
		removed++
	}
	return removed, failed
}
