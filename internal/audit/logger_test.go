package audit

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestLoggerWritesEntries(t *testing.T) {
	path := filepath.Join(t.TempDir(), "audit.log")
	logger, err := NewLogger(Config{LogPath: path, BufferSize: 2, FlushInterval: time.Hour})
	if err != nil {
		t.Fatalf("failed to create logger: %v", err)
	}

	cycle := uuid.New()
	logger.LogCycle(cycle, "SJF", 12)
	logger.LogActuation(cycle, 4242, 87.5, "permission-denied")

	if err := logger.Close(); err != nil {
		t.Fatalf("failed to close logger: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("failed to open audit log: %v", err)
	}
	defer f.Close()

	var entries []Entry
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var e Entry
		if err := json.Unmarshal(scanner.Bytes(), &e); err != nil {
			t.Fatalf("bad JSONL line: %v", err)
		}
		entries = append(entries, e)
	}

	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Action != "cycle" || entries[0].Algorithm != "SJF" || entries[0].Processes != 12 {
		t.Fatalf("unexpected cycle entry: %+v", entries[0])
	}
	if entries[1].Action != "actuate" || entries[1].PID != 4242 || entries[1].Outcome != "permission-denied" {
		t.Fatalf("unexpected actuation entry: %+v", entries[1])
	}
	if entries[1].CycleID != cycle {
		t.Fatal("actuation entry lost its cycle id")
	}
}
