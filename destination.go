package loghive

import (
	"bufio"
	"io"
	"os"
	"sync"
	"sync/atomic"

	"github.com/gofrs/flock"
	"github.com/nats-io/nats.go"
)

// destKind discriminates the backing target of a Destination.
type destKind int

const (
	destConsole destKind = iota
	destFile
	destNATS
)

// Destination wraps one output target behind a uniform "write a formatted
// record" capability. Each destination carries its own minimum level and a
// write mutex so concurrent emission never interleaves lines.
type Destination struct {
	kind  destKind
	name  string // "console", the file path, or the NATS subject
	level atomic.Int32

	mu   sync.Mutex
	out  io.Writer // console
	file *os.File
	w    *bufio.Writer
	lock *flock.Flock

	nc      *nats.Conn
	subject string
}

func newConsoleDestination(level Level) *Destination {
	d := &Destination{
		kind: destConsole,
		name: "console",
		out:  os.Stdout,
	}
	d.level.Store(int32(level))
	return d
}

// newFileDestination opens path for append, guarding the open with a flock
// sidecar so concurrent processes sharing the file do not corrupt it.
func newFileDestination(path string, level Level) (*Destination, error) {
	lock := flock.New(path + ".lock")
	if err := lock.Lock(); err != nil {
		return nil, sinkError("lock", path, err)
	}
	defer func() {
		_ = lock.Unlock()
	}()

	file, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, sinkError("open", path, err)
	}

	d := &Destination{
		kind: destFile,
		name: path,
		file: file,
		w:    bufio.NewWriterSize(file, defaultBufferSize),
		lock: lock,
	}
	d.level.Store(int32(level))
	return d, nil
}

func newNATSDestination(url, subject string, level Level) (*Destination, error) {
	nc, err := nats.Connect(url, nats.Name("loghive"))
	if err != nil {
		return nil, sinkError("connect", url, err)
	}

	d := &Destination{
		kind:    destNATS,
		name:    subject,
		nc:      nc,
		subject: subject,
	}
	d.level.Store(int32(level))
	return d, nil
}

// Name identifies the destination: "console", the log-file path, or the
// NATS subject.
func (d *Destination) Name() string {
	return d.name
}

// Level returns the destination's minimum severity.
func (d *Destination) Level() Level {
	return Level(d.level.Load())
}

func (d *Destination) setLevel(level Level) {
	d.level.Store(int32(level))
}

// writeRecord emits one already-formatted line if level passes the
// destination's own threshold.
func (d *Destination) writeRecord(level Level, line string) error {
	if level < d.Level() {
		return nil
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	switch d.kind {
	case destFile:
		if d.file == nil {
			return nil // superseded by a later Initialize
		}
		if err := d.lock.Lock(); err != nil {
			return err
		}
		defer func() {
			_ = d.lock.Unlock()
		}()
		if _, err := d.w.WriteString(line + "\n"); err != nil {
			return err
		}
		return d.w.Flush()
	case destNATS:
		if d.nc == nil {
			return nil
		}
		return d.nc.Publish(d.subject, []byte(line))
	default:
		_, err := io.WriteString(d.out, line+"\n")
		return err
	}
}

// Close flushes and releases the destination's resources. Console
// destinations never close standard output.
func (d *Destination) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	switch d.kind {
	case destFile:
		if d.file == nil {
			return nil
		}
		err := d.w.Flush()
		if cerr := d.file.Close(); err == nil {
			err = cerr
		}
		d.file = nil
		return err
	case destNATS:
		if d.nc == nil {
			return nil
		}
		err := d.nc.Drain()
		d.nc = nil
		return err
	default:
		return nil
	}
}
