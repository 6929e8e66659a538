package loghive

// Option is a functional option for building a Config.
type Option func(*Config)

// NewConfigWithOptions returns a default Config with the given options applied.
func NewConfigWithOptions(options ...Option) *Config {
	cfg := NewConfig()
	for _, opt := range options {
		opt(cfg)
	}
	return cfg
}

// WithLevel sets the minimum log level by name.
func WithLevel(level string) Option {
	return func(c *Config) {
		c.Level = level
	}
}

// WithDir sets the log directory.
func WithDir(dir string) Option {
	return func(c *Config) {
		c.Dir = dir
	}
}

// WithModuleName overrides the derived module name used in file names.
func WithModuleName(name string) Option {
	return func(c *Config) {
		c.ModuleName = name
	}
}

// WithRetentionDays sets the log-file retention period in days.
// Negative disables cleanup.
func WithRetentionDays(days int) Option {
	return func(c *Config) {
		c.RetentionDays = days
	}
}

// WithFormat sets the record template.
func WithFormat(format string) Option {
	return func(c *Config) {
		c.Format = format
	}
}

// WithTimeFormat sets the timestamp layout for the {time} placeholder.
func WithTimeFormat(layout string) Option {
	return func(c *Config) {
		c.TimeFormat = layout
	}
}

// WithEnvironment sets the informational environment label.
func WithEnvironment(env string) Option {
	return func(c *Config) {
		c.Environment = env
	}
}

// WithConsole enables or disables the console destination.
func WithConsole(enabled bool) Option {
	return func(c *Config) {
		c.Console = enabled
	}
}

// WithFile enables or disables the file destination.
func WithFile(enabled bool) Option {
	return func(c *Config) {
		c.File = enabled
	}
}

// WithExtraField appends one key/value pair to every record. Fields appear
// in the order the options are given.
func WithExtraField(key string, value interface{}) Option {
	return func(c *Config) {
		c.ExtraFields = append(c.ExtraFields, Field{Key: key, Value: value})
	}
}

// WithNATS enables a NATS destination publishing records to subject.
func WithNATS(url, subject string) Option {
	return func(c *Config) {
		c.NATSURL = url
		if subject != "" {
			c.NATSSubject = subject
		}
	}
}
