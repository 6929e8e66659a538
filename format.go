package loghive

import (
	"bytes"
	"fmt"
	"os"
	"runtime"
	"strconv"
	"strings"
	"time"
)

// formatter renders one record line from the configured template. The
// ordered extra-field suffix is precomputed at build time so every render
// only substitutes placeholders.
type formatter struct {
	template   string
	timeFormat string
}

func newFormatter(cfg *Config) *formatter {
	template := cfg.Format
	if template == "" {
		template = DefaultFormat
	}
	timeFormat := cfg.TimeFormat
	if timeFormat == "" {
		timeFormat = DefaultTimeFormat
	}

	var suffix strings.Builder
	for _, field := range cfg.ExtraFields {
		fmt.Fprintf(&suffix, " - %s=%v", field.Key, field.Value)
	}

	return &formatter{
		template:   template + suffix.String(),
		timeFormat: timeFormat,
	}
}

// render substitutes the template placeholders and appends any per-call
// fields after the configured suffix.
func (f *formatter) render(name string, level Level, message string, fields []Field) string {
	line := strings.NewReplacer(
		"{time}", time.Now().Format(f.timeFormat),
		"{name}", name,
		"{level}", level.String(),
		"{pid}", strconv.Itoa(os.Getpid()),
		"{gid}", strconv.FormatUint(goroutineID(), 10),
		"{message}", message,
	).Replace(f.template)

	if len(fields) == 0 {
		return line
	}
	var b strings.Builder
	b.WriteString(line)
	for _, field := range fields {
		fmt.Fprintf(&b, " - %s=%v", field.Key, field.Value)
	}
	return b.String()
}

// goroutineID parses the current goroutine's id out of the runtime stack
// header ("goroutine N [running]:"). There is no cheaper portable source
// for a per-goroutine identifier.
func goroutineID() uint64 {
	var buf [64]byte
	n := runtime.Stack(buf[:], false)
	header := bytes.TrimPrefix(buf[:n], []byte("goroutine "))
	if i := bytes.IndexByte(header, ' '); i > 0 {
		if id, err := strconv.ParseUint(string(header[:i]), 10, 64); err == nil {
			return id
		}
	}
	return 0
}
