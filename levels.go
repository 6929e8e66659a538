package loghive

import "strings"

// Level is an ordered severity classification used both to filter emission
// and to tag records.
type Level int32

const (
	// LevelDebug for detailed diagnostic output
	LevelDebug Level = iota
	// LevelInfo for normal operational messages
	LevelInfo
	// LevelWarn for potentially problematic situations
	LevelWarn
	// LevelError for failures that need attention
	LevelError
	// LevelCritical for failures that likely abort the process
	LevelCritical
)

// String returns the canonical name of the level.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARNING"
	case LevelError:
		return "ERROR"
	case LevelCritical:
		return "CRITICAL"
	default:
		return "LOG"
	}
}

// ParseLevel converts a level name to a Level. Matching is case-insensitive
// but otherwise strict: only DEBUG, INFO, WARNING, ERROR and CRITICAL are
// recognized. Any other value yields an error carrying ErrCodeInvalidLevel.
func ParseLevel(value string) (Level, error) {
	switch strings.ToUpper(value) {
	case "DEBUG":
		return LevelDebug, nil
	case "INFO":
		return LevelInfo, nil
	case "WARNING":
		return LevelWarn, nil
	case "ERROR":
		return LevelError, nil
	case "CRITICAL":
		return LevelCritical, nil
	default:
		return LevelInfo, InvalidLevelError(value)
	}
}
