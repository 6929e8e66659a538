package loghive

const numLevels = int(LevelCritical) + 1

// Metrics is a point-in-time snapshot of a hive's counters.
type Metrics struct {
	// Records counts emitted records by level, including the hive's own
	// configuration and level-change records.
	Records map[Level]uint64

	// WriteErrors counts destination write failures. Emission never
	// surfaces these to callers.
	WriteErrors uint64

	// CleanupRemoved and CleanupFailed count retention-sweep outcomes
	// across all initializations of this hive.
	CleanupRemoved uint64
	CleanupFailed  uint64

	// Destinations is the number of currently active sinks.
	Destinations int
}

// Metrics returns the hive's current counters.
func (h *Hive) Metrics() Metrics {
	m := Metrics{
		Records:        make(map[Level]uint64, numLevels),
		WriteErrors:    h.writeErrors.Load(),
		CleanupRemoved: h.cleanupRemoved.Load(),
		CleanupFailed:  h.cleanupFailed.Load(),
	}
	for level := LevelDebug; level <= LevelCritical; level++ {
		if n := h.records[level].Load(); n > 0 {
			m.Records[level] = n
		}
	}

	h.mu.RLock()
	m.Destinations = len(h.destinations)
	h.mu.RUnlock()
	return m
}
