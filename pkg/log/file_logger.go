package log

import (
	"io"
	"os"
	"sync"

	"github.com/fxamacker/cbor/v2"
	"gopkg.in/natefinch/lumberjack.v2"
)

// FileLogger writes protocol events to an io.WriteCloser in CBOR format.
// It is safe for concurrent use from multiple goroutines.
type FileLogger struct {
	sink    io.WriteCloser
	encoder *cbor.Encoder
	mu      sync.Mutex
	closed  bool
}

// NewFileLogger creates a FileLogger that appends to the file at path.
// The file is created with permissions 0644 if it doesn't exist.
func NewFileLogger(path string) (*FileLogger, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, err
	}
	return &FileLogger{
		sink:    f,
		encoder: NewEncoder(f),
	}, nil
}

// NewRotatingFileLogger creates a FileLogger whose sink rotates when it
// reaches maxSizeMB megabytes, keeping maxBackups old files.
func NewRotatingFileLogger(path string, maxSizeMB, maxBackups int) *FileLogger {
	lj := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    maxSizeMB,
		MaxBackups: maxBackups,
	}
	return &FileLogger{
		sink:    lj,
		encoder: NewEncoder(lj),
	}
}

// Log writes an event to the sink.
// Encoding errors are ignored; logging must not disrupt the application.
func (l *FileLogger) Log(event Event) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed {
		return
	}

	_ = l.encoder.Encode(event)
}

// Close closes the sink.
// It is safe to call Close multiple times.
// After Close is called, subsequent Log calls are silently ignored.
func (l *FileLogger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed {
		return nil
	}

	l.closed = true
	return l.sink.Close()
}

// Compile-time interface satisfaction check.
var _ Logger = (*FileLogger)(nil)
