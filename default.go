package loghive

import "sync"

var (
	defaultHive *Hive
	defaultOnce sync.Once
)

// Default returns the process-wide hive, creating it unconfigured on first
// use. Components that want explicit wiring should construct their own Hive
// with New and pass it around instead.
func Default() *Hive {
	defaultOnce.Do(func() {
		defaultHive = New()
	})
	return defaultHive
}

// Initialize configures the process-wide hive. See Hive.Initialize.
func Initialize(cfg *Config) error {
	return Default().Initialize(cfg)
}

// GetLogger returns a named handle from the process-wide hive, initializing
// it with defaults on first use. See Hive.GetLogger.
func GetLogger(name string) *Logger {
	return Default().GetLogger(name)
}

// SetLevel changes the process-wide level at runtime. See Hive.SetLevel.
func SetLevel(level string) error {
	return Default().SetLevel(level)
}
