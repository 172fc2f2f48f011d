package recipecatalog

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// QueryLogger records the catalog queries served by a surface.
type QueryLogger interface {
	LogQuery(entry QueryLog) error
}

// NewQueryLogFilePath returns a timestamped log file path for the given surface (server, cli, lambda).
func NewQueryLogFilePath(dir, surface string) string {
	return filepath.Join(dir, fmt.Sprintf(
		"%d.%s.json",
		time.Now().Unix(),
		strings.ReplaceAll(strings.ToLower(surface), " ", "_"),
	))
}

// QueryLog represents a single filter, search or extraction over the catalog
type QueryLog struct {
	Timestamp time.Time      `json:"timestamp"`
	Operation string         `json:"operation"`
	Input     map[string]any `json:"input,omitempty"`
	Results   int            `json:"results"`
	Duration  time.Duration  `json:"duration_ns"`
	Error     string         `json:"error,omitempty"`
}

// FileQueryLogger accumulates queries and writes them as one JSON document on Flush
type FileQueryLogger struct {
	mu      sync.Mutex
	queries []QueryLog
	writer  io.Writer
}

// NewFileQueryLogger creates a new file-based query logger
func NewFileQueryLogger(writer io.Writer) *FileQueryLogger {
	return &FileQueryLogger{
		queries: make([]QueryLog, 0),
		writer:  writer,
	}
}

// LogQuery buffers the entry until the next Flush
func (l *FileQueryLogger) LogQuery(entry QueryLog) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.queries = append(l.queries, entry)
	return nil
}

// Flush writes all buffered queries to the writer
func (l *FileQueryLogger) Flush() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.writer == nil {
		return nil
	}

	data, err := json.MarshalIndent(map[string]any{
		"query_session": map[string]any{
			"timestamp": time.Now(),
			"queries":   l.queries,
		},
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal query log: %w", err)
	}

	if _, err := l.writer.Write(data); err != nil {
		return fmt.Errorf("failed to write query log: %w", err)
	}

	l.queries = l.queries[:0]
	return nil
}

// NoOpQueryLogger discards all entries
type NoOpQueryLogger struct{}

func NewNoOpQueryLogger() *NoOpQueryLogger {
	return &NoOpQueryLogger{}
}

func (NoOpQueryLogger) LogQuery(QueryLog) error {
	return nil
}

// StreamQueryLogger writes each entry as a JSON line (stdout for Lambda/CloudWatch)
type StreamQueryLogger struct {
	mu sync.Mutex
	w  io.Writer
}

// NewStdoutQueryLogger creates a stream logger bound to os.Stdout
func NewStdoutQueryLogger() *StreamQueryLogger {
	return NewStreamQueryLogger(os.Stdout)
}

func NewStreamQueryLogger(w io.Writer) *StreamQueryLogger {
	return &StreamQueryLogger{w: w}
}

// LogQuery writes the entry immediately
func (l *StreamQueryLogger) LogQuery(entry QueryLog) error {
	data, err := json.Marshal(entry)
	if err != nil {
		return err
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	_, err = fmt.Fprintln(l.w, string(data))
	return err
}
