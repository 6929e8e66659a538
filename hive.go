package loghive

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/pkg/errors"
)

// Hive owns the shared logging state for a process: the current
// configuration, the numeric level, the active destinations, and the
// registry of every logger handle it has issued. All mutation is serialized
// under one lock; record emission only snapshots the destination set and
// writes outside it.
type Hive struct {
	mu           sync.RWMutex
	config       *Config
	level        Level
	moduleName   string
	formatter    *formatter
	destinations []*Destination
	registry     map[string]*Logger

	records        [numLevels]atomic.Uint64
	writeErrors    atomic.Uint64
	cleanupRemoved atomic.Uint64
	cleanupFailed  atomic.Uint64
}

// New returns an unconfigured Hive. The first Initialize or GetLogger call
// configures it; until then no records are emitted.
func New() *Hive {
	return &Hive{registry: make(map[string]*Logger)}
}

// Initialize configures the hive. A nil config means defaults. The level is
// validated before any state changes; an unrecognized level returns an error
// matching ErrInvalidLevel and leaves the hive untouched.
//
// Re-initializing fully replaces the previous configuration and sinks, and
// clears the handle registry: handles issued earlier keep emitting through
// whatever sinks are current, but no longer receive SetLevel updates until
// re-fetched with GetLogger.
func (h *Hive) Initialize(cfg *Config) error {
	if cfg == nil {
		cfg = NewConfig()
	}
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return err
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	return h.configure(cfg, level)
}

// configure applies cfg under h.mu. The level has already been validated.
func (h *Hive) configure(cfg *Config, level Level) error {
	if cfg == nil {
		return &Error{
			Code: ErrCodeNotInitialized,
			Op:   "configure",
			Err:  errors.New("no configuration present"),
		}
	}

	h.level = level
	h.config = cfg
	h.registry = make(map[string]*Logger)

	dir := cfg.Dir
	if dir == "" {
		dir = DefaultDir
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return &Error{Code: ErrCodeDirCreate, Op: "create directory", Path: dir, Err: err}
	}

	for _, dest := range h.destinations {
		_ = dest.Close()
	}
	h.destinations = nil

	h.formatter = newFormatter(cfg)

	moduleName := cfg.ModuleName
	if moduleName == "" {
		moduleName = deriveModuleName()
	}
	h.moduleName = moduleName

	if cfg.File {
		path := filepath.Join(dir, fmt.Sprintf("%s_%s%s",
			moduleName, time.Now().Format(fileTimestampFormat), logFileSuffix))
		dest, err := newFileDestination(path, level)
		if err != nil {
			return err
		}
		h.destinations = append(h.destinations, dest)
	}

	if cfg.Console {
		h.destinations = append(h.destinations, newConsoleDestination(level))
	}

	if cfg.NATSURL != "" {
		dest, err := newNATSDestination(cfg.NATSURL, cfg.NATSSubject, level)
		if err != nil {
			return err
		}
		h.destinations = append(h.destinations, dest)
	}

	var removed, failed int
	if cfg.File {
		removed, failed = cleanupOldLogs(dir, cfg.RetentionDays)
		h.cleanupRemoved.Add(uint64(removed))
		h.cleanupFailed.Add(uint64(failed))
	}

	h.write(h.formatter, h.destinations, moduleName, LevelInfo, "logger configured", []Field{
		{Key: "dir", Value: dir},
		{Key: "level", Value: level.String()},
		{Key: "retention_days", Value: cfg.RetentionDays},
		{Key: "pattern", Value: moduleName + "_YYYYMMDD_HHMM" + logFileSuffix},
		{Key: "environment", Value: cfg.Environment},
		{Key: "console", Value: cfg.Console},
		{Key: "file", Value: cfg.File},
		{Key: "cleanup_removed", Value: removed},
		{Key: "cleanup_failed", Value: failed},
	})
	return nil
}

// GetLogger returns the handle for name, creating and registering it if
// unseen. An unconfigured hive is first initialized with defaults. Fetching
// the same name twice yields the same handle, never two handles with
// divergent levels.
func (h *Hive) GetLogger(name string) *Logger {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.config == nil {
		// Lazy first-use initialization. Best effort: a handle is always
		// returned even if sink setup fails.
		_ = h.configure(NewConfig(), LevelInfo)
	}

	if logger, ok := h.registry[name]; ok {
		logger.setLevel(h.level)
		return logger
	}

	logger := &Logger{name: name, hive: h}
	logger.setLevel(h.level)
	h.registry[name] = logger
	return logger
}

// SetLevel changes the process-wide level at runtime. On success the hive
// level, every destination, and every registered handle are updated under
// one lock, so no handle is ever observed at a mixed level, and an
// informational record confirms the change. An unrecognized level emits a
// best-effort error record through the current sinks and returns an error
// matching ErrInvalidLevel with all state unchanged.
func (h *Hive) SetLevel(level string) error {
	parsed, err := ParseLevel(level)
	if err != nil {
		h.mu.RLock()
		name := h.moduleName
		h.mu.RUnlock()
		h.emit(name, LevelError, fmt.Sprintf("attempted to set invalid log level: %s", level), nil)
		return err
	}

	h.mu.Lock()
	h.level = parsed
	for _, dest := range h.destinations {
		dest.setLevel(parsed)
	}
	for _, logger := range h.registry {
		logger.setLevel(parsed)
	}
	name := h.moduleName
	h.mu.Unlock()

	h.emit(name, LevelInfo, "log level changed to "+parsed.String(), nil)
	return nil
}

// Level returns the current process-wide level.
func (h *Hive) Level() Level {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.level
}

// Destinations returns a copy of the active destination set.
func (h *Hive) Destinations() []*Destination {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return append([]*Destination(nil), h.destinations...)
}

// Close flushes and closes all destinations. The hive returns to its
// unconfigured state and can be initialized again.
func (h *Hive) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	var lastErr error
	for _, dest := range h.destinations {
		if err := dest.Close(); err != nil {
			lastErr = err
		}
	}
	h.destinations = nil
	h.config = nil
	h.formatter = nil
	h.registry = make(map[string]*Logger)
	return lastErr
}

// emit renders one record and writes it through a snapshot of the current
// destinations without holding the hive lock.
func (h *Hive) emit(name string, level Level, message string, fields []Field) {
	h.mu.RLock()
	f := h.formatter
	dests := append([]*Destination(nil), h.destinations...)
	h.mu.RUnlock()
	h.write(f, dests, name, level, message, fields)
}

func (h *Hive) write(f *formatter, dests []*Destination, name string, level Level, message string, fields []Field) {
	if f == nil {
		return
	}
	line := f.render(name, level, message, fields)
	for _, dest := range dests {
		if err := dest.writeRecord(level, line); err != nil {
			h.writeErrors.Add(1)
		}
	}
	if level >= 0 && int(level) < numLevels {
		h.records[level].Add(1)
	}
}

// deriveModuleName resolves the file-name stem from the invoking program's
// name. Identifiers that start with "-" (interactive invocations) and
// unresolvable ones fall back to "app".
func deriveModuleName() string {
	if len(os.Args) == 0 || os.Args[0] == "" || strings.HasPrefix(os.Args[0], "-") {
		return "app"
	}
	base := filepath.Base(os.Args[0])
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	if stem == "" {
		return "app"
	}
	return stem
}
