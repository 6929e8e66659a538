// Package loghive provides a process-wide logging facility: one shared
// configuration point that routes formatted records to console, file, and
// optional NATS destinations, propagates dynamic level changes to every
// logger handle it has issued, and prunes old log files by age.
//
// Key features:
//
//   - Single Hive owning configuration, level, sinks, and handle registry
//   - Dynamic level changes that reach all previously issued handles
//   - Process-safe file output using file locks (flock)
//   - Retention-based cleanup of historical log files, best-effort per file
//   - Ordered extra fields appended to every record
//   - Configuration from code, functional options, or file/env via viper
//
// Basic usage:
//
//	cfg := loghive.NewConfig()
//	cfg.Level = "DEBUG"
//	cfg.Dir = "/var/log/myapp"
//	if err := loghive.Initialize(cfg); err != nil {
//		log.Fatal(err)
//	}
//
//	logger := loghive.GetLogger("my_component")
//	logger.Info("component started")
//	logger.Debugf("connected to %s", host)
//
// Handles may also be fetched before Initialize; the process default is then
// built with default configuration on first use.
//
// Applications that prefer explicit wiring over the process default can
// construct their own instance:
//
//	hive := loghive.New()
//	if err := hive.Initialize(cfg); err != nil {
//		log.Fatal(err)
//	}
//	logger := hive.GetLogger("worker")
package loghive
