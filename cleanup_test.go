package loghive

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeAgedFile(t *testing.T, path string, age time.Duration) {
	t.Helper()
	if err := os.WriteFile(path, []byte("old log\n"), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
	stamp := time.Now().Add(-age)
	if err := os.Chtimes(path, stamp, stamp); err != nil {
		t.Fatalf("setting times on %s: %v", path, err)
	}
}

func TestCleanupNegativeRetentionKeepsEverything(t *testing.T) {
	dir := t.TempDir()
	old := filepath.Join(dir, "ancient_20230101_0000.log")
	writeAgedFile(t, old, 1000*24*time.Hour)

	cfg := fileConfig(dir)
	cfg.RetentionDays = -1

	hive := New()
	if err := hive.Initialize(cfg); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}
	defer hive.Close()

	if _, err := os.Stat(old); err != nil {
		t.Errorf("file deleted despite negative retention: %v", err)
	}
}

func TestCleanupZeroRetention(t *testing.T) {
	dir := t.TempDir()
	old := filepath.Join(dir, "stale_20230101_0000.log")
	writeAgedFile(t, old, time.Hour)

	future := filepath.Join(dir, "future_20990101_0000.log")
	writeAgedFile(t, future, -time.Hour)

	cfg := fileConfig(dir)
	cfg.RetentionDays = 0

	hive := New()
	if err := hive.Initialize(cfg); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}
	defer hive.Close()

	if _, err := os.Stat(old); !os.IsNotExist(err) {
		t.Error("file strictly older than now survived zero-day retention")
	}
	if _, err := os.Stat(future); err != nil {
		t.Errorf("file with non-positive age was deleted: %v", err)
	}
}

func TestCleanupKeepsFilesWithinRetention(t *testing.T) {
	dir := t.TempDir()
	old := filepath.Join(dir, "app_old.log")
	writeAgedFile(t, old, 2*24*time.Hour)
	fresh := filepath.Join(dir, "app_new.log")
	writeAgedFile(t, fresh, time.Hour)

	removed, failed := cleanupOldLogs(dir, 1)
	if removed != 1 || failed != 0 {
		t.Errorf("cleanup = (%d removed, %d failed), want (1, 0)", removed, failed)
	}
	if _, err := os.Stat(old); !os.IsNotExist(err) {
		t.Error("file older than retention survived")
	}
	if _, err := os.Stat(fresh); err != nil {
		t.Errorf("file within retention was deleted: %v", err)
	}
}

func TestCleanupIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	other := filepath.Join(dir, "data.txt")
	writeAgedFile(t, other, 100*24*time.Hour)

	removed, failed := cleanupOldLogs(dir, 0)
	if removed != 0 || failed != 0 {
		t.Errorf("cleanup = (%d removed, %d failed), want (0, 0)", removed, failed)
	}
	if _, err := os.Stat(other); err != nil {
		t.Errorf("non-log file was touched: %v", err)
	}
}

func TestCleanupToleratesPerFileFailures(t *testing.T) {
	dir := t.TempDir()

	// A non-empty directory with a .log name: matched by the sweep, but
	// deletion fails. The sweep must carry on with the rest.
	stuck := filepath.Join(dir, "stuck_20230101_0000.log")
	if err := os.Mkdir(stuck, 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(stuck, "child"), []byte("x"), 0644); err != nil {
		t.Fatalf("writing child: %v", err)
	}
	stamp := time.Now().Add(-48 * time.Hour)
	if err := os.Chtimes(stuck, stamp, stamp); err != nil {
		t.Fatalf("setting times: %v", err)
	}

	old := filepath.Join(dir, "old_20230101_0000.log")
	writeAgedFile(t, old, 48*time.Hour)

	removed, failed := cleanupOldLogs(dir, 0)
	if removed != 1 {
		t.Errorf("removed = %d, want 1", removed)
	}
	if failed != 1 {
		t.Errorf("failed = %d, want 1", failed)
	}
	if _, err := os.Stat(old); !os.IsNotExist(err) {
		t.Error("eligible file not removed despite earlier failure")
	}

	// Initialization over the same hostile directory must still complete.
	cfg := fileConfig(dir)
	cfg.RetentionDays = 0
	hive := New()
	if err := hive.Initialize(cfg); err != nil {
		t.Fatalf("Initialize failed over hostile directory: %v", err)
	}
	hive.Close()
}

func TestCleanupMissingDirectory(t *testing.T) {
	removed, failed := cleanupOldLogs(filepath.Join(t.TempDir(), "absent"), 0)
	if removed != 0 {
		t.Errorf("removed = %d, want 0", removed)
	}
	if failed != 1 {
		t.Errorf("failed = %d, want 1", failed)
	}
}

func TestCleanupNegativeRetentionDirect(t *testing.T) {
	dir := t.TempDir()
	old := filepath.Join(dir, "a.log")
	writeAgedFile(t, old, 365*24*time.Hour)

	removed, failed := cleanupOldLogs(dir, -1)
	if removed != 0 || failed != 0 {
		t.Errorf("cleanup = (%d, %d), want no-op", removed, failed)
	}
	if _, err := os.Stat(old); err != nil {
		t.Errorf("negative retention deleted a file: %v", err)
	}
}
