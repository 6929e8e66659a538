package loghive

const (
	defaultBufferSize = 4096

	// DefaultFormat is the record template used when Config.Format is empty.
	DefaultFormat = "{time} - {name} - {level} - {pid} - {gid} - {message}"

	// DefaultTimeFormat is the timestamp layout used when Config.TimeFormat is empty.
	DefaultTimeFormat = "2006-01-02 15:04:05"

	// DefaultDir is the log directory used when Config.Dir is empty.
	DefaultDir = "logs"

	// DefaultRetentionDays is how long log files are kept by default.
	DefaultRetentionDays = 30

	// fileTimestampFormat gives the {module}_{YYYYMMDD_HHMM}.log naming
	// its minute-resolution timestamp.
	fileTimestampFormat = "20060102_1504"

	logFileSuffix = ".log"
)
