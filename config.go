package loghive

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// Field is one key/value pair appended to formatted records. Fields keep
// their insertion order, which a plain map would not.
type Field struct {
	Key   string
	Value interface{}
}

// Config holds all configuration for a Hive. A Config is treated as
// immutable once passed to Initialize; re-initializing with a new Config
// fully replaces the previous one, there is no merging.
type Config struct {
	// Level is the minimum severity to emit (DEBUG, INFO, WARNING, ERROR, CRITICAL).
	Level string `mapstructure:"level"`

	// Dir is the directory log files are written to.
	Dir string `mapstructure:"dir"`

	// ModuleName overrides the file-name stem. When empty it is derived
	// from the invoking program's name, falling back to "app".
	ModuleName string `mapstructure:"module_name"`

	// RetentionDays is how many days log files are kept. Files older than
	// this are deleted during initialization. Negative disables cleanup.
	RetentionDays int `mapstructure:"retention_days"`

	// Format is the record template. Recognized placeholders:
	// {time}, {name}, {level}, {pid}, {gid}, {message}.
	Format string `mapstructure:"format"`

	// TimeFormat is the Go layout used for the {time} placeholder.
	TimeFormat string `mapstructure:"time_format"`

	// Environment is a free-form label (e.g. "production"), informational only.
	Environment string `mapstructure:"environment"`

	// Console enables the standard-output destination.
	Console bool `mapstructure:"console"`

	// File enables the timestamped log-file destination.
	File bool `mapstructure:"file"`

	// ExtraFields are appended verbatim to every record, in order.
	ExtraFields []Field `mapstructure:"-"`

	// NATSURL, when non-empty, enables a NATS destination publishing each
	// record to NATSSubject.
	NATSURL     string `mapstructure:"nats_url"`
	NATSSubject string `mapstructure:"nats_subject"`
}

// NewConfig returns a Config with defaults: INFO level, "logs" directory,
// 30-day retention, both console and file output enabled.
func NewConfig() *Config {
	return &Config{
		Level:         "INFO",
		Dir:           DefaultDir,
		RetentionDays: DefaultRetentionDays,
		Format:        DefaultFormat,
		TimeFormat:    DefaultTimeFormat,
		Environment:   "production",
		Console:       true,
		File:          true,
		NATSSubject:   "loghive.records",
	}
}

// LoadConfig reads a Config from the given file (any format viper supports)
// with LOGHIVE_* environment variables taking precedence over file values.
// Extra fields are given as "key=value" list entries so their order survives
// parsing:
//
//	level: DEBUG
//	dir: /var/log/myapp
//	extra_fields:
//	  - app=myapp
//	  - version=1.0.0
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetEnvPrefix("LOGHIVE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	defaults := NewConfig()
	v.SetDefault("level", defaults.Level)
	v.SetDefault("dir", defaults.Dir)
	v.SetDefault("module_name", defaults.ModuleName)
	v.SetDefault("retention_days", defaults.RetentionDays)
	v.SetDefault("format", defaults.Format)
	v.SetDefault("time_format", defaults.TimeFormat)
	v.SetDefault("environment", defaults.Environment)
	v.SetDefault("console", defaults.Console)
	v.SetDefault("file", defaults.File)
	v.SetDefault("nats_url", defaults.NATSURL)
	v.SetDefault("nats_subject", defaults.NATSSubject)

	if err := v.ReadInConfig(); err != nil {
		return nil, errors.Wrap(err, "reading logging config")
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.Wrap(err, "parsing logging config")
	}

	for _, kv := range v.GetStringSlice("extra_fields") {
		key, value, found := strings.Cut(kv, "=")
		if !found {
			return nil, errors.Errorf("malformed extra field %q, want key=value", kv)
		}
		cfg.ExtraFields = append(cfg.ExtraFields, Field{Key: key, Value: value})
	}

	return cfg, nil
}
