package audit

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Logger appends scheduling and actuation events to a JSONL file. Entries
// are buffered and flushed by a background worker so the hot cycle path
// never blocks on disk.
type Logger struct {
	logFile    *os.File
	buffer     []Entry
	bufferSize int
	mu         sync.Mutex
	flushChan  chan struct{}
	stopChan   chan struct{}
	doneChan   chan struct{}
}

type Entry struct {
	ID        uuid.UUID `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	CycleID   uuid.UUID `json:"cycle_id"`
	Action    string    `json:"action"`
	PID       int32     `json:"pid,omitempty"`
	Slice     float64   `json:"predicted_slice,omitempty"`
	Outcome   string    `json:"outcome,omitempty"`
	Algorithm string    `json:"algorithm,omitempty"`
	Processes int       `json:"processes,omitempty"`
	Error     string    `json:"error,omitempty"`
}

type Config struct {
	LogPath       string
	BufferSize    int
	FlushInterval time.Duration
}

func NewLogger(config Config) (*Logger, error) {
	if err := os.MkdirAll(filepath.Dir(config.LogPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create audit log directory: %w", err)
	}

	logFile, err := os.OpenFile(config.LogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open audit log file: %w", err)
	}

	if config.BufferSize <= 0 {
		config.BufferSize = 64
	}
	if config.FlushInterval <= 0 {
		config.FlushInterval = 5 * time.Second
	}

	logger := &Logger{
		logFile:    logFile,
		buffer:     make([]Entry, 0, config.BufferSize),
		bufferSize: config.BufferSize,
		flushChan:  make(chan struct{}, 1),
		stopChan:   make(chan struct{}),
		doneChan:   make(chan struct{}),
	}

	go logger.flushWorker(config.FlushInterval)
	return logger, nil
}

func (l *Logger) Log(entry Entry) {
	entry.ID = uuid.New()
	entry.Timestamp = time.Now().UTC()

	l.mu.Lock()
	l.buffer = append(l.buffer, entry)
	shouldFlush := len(l.buffer) >= l.bufferSize
	l.mu.Unlock()

	if shouldFlush {
		select {
		case l.flushChan <- struct{}{}:
		default:
		}
	}
}

// LogCycle records the summary of one completed scheduling cycle.
func (l *Logger) LogCycle(cycleID uuid.UUID, algorithm string, processes int) {
	l.Log(Entry{CycleID: cycleID, Action: "cycle", Algorithm: algorithm, Processes: processes})
}

// LogActuation records one OS scheduling request and how it was resolved.
func (l *Logger) LogActuation(cycleID uuid.UUID, pid int32, slice float64, outcome string) {
	l.Log(Entry{CycleID: cycleID, Action: "actuate", PID: pid, Slice: slice, Outcome: outcome})
}

func (l *Logger) flushWorker(interval time.Duration) {
	defer close(l.doneChan)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			l.flush()
		case <-l.flushChan:
			l.flush()
		case <-l.stopChan:
			l.flush()
			return
		}
	}
}

func (l *Logger) flush() {
	l.mu.Lock()
	if len(l.buffer) == 0 {
		l.mu.Unlock()
		return
	}

	entries := make([]Entry, len(l.buffer))
	copy(entries, l.buffer)
	l.buffer = l.buffer[:0]
	l.mu.Unlock()

	for _, entry := range entries {
		data, err := json.Marshal(entry)
		if err != nil {
			continue
		}
		l.logFile.Write(data)
		l.logFile.Write([]byte("\n"))
	}
	l.logFile.Sync()
}

// Close drains the buffer and waits for the flush worker before releasing
// the file.
func (l *Logger) Close() error {
	close(l.stopChan)
	<-l.doneChan
	return l.logFile.Close()
}
