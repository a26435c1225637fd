package store

import (
	"errors"
	"testing"
	"time"
)

func TestTraceRoundTrip(t *testing.T) {
	baseDir := t.TempDir()

	tw, err := NewTraceWriter(baseDir, "job-1", false)
	if err != nil {
		t.Fatalf("NewTraceWriter failed: %v", err)
	}

	for g := 1; g <= 5; g++ {
		entry := TraceEntry{
			Generation:  g,
			BestFitness: float64(g) * 1.5,
			Timestamp:   time.Now(),
		}
		if g == 5 {
			entry.Genome = []float64{0.1, 0.2}
		}
		if err := tw.Write(entry); err != nil {
			t.Fatalf("Write failed: %v", err)
		}
	}
	if err := tw.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	tr, err := NewTraceReader(baseDir, "job-1")
	if err != nil {
		t.Fatalf("NewTraceReader failed: %v", err)
	}
	defer tr.Close()

	entries, err := tr.ReadAll()
	if err != nil {
		t.Fatalf("ReadAll failed: %v", err)
	}
	if len(entries) != 5 {
		t.Fatalf("Read %d entries, want 5", len(entries))
	}
	for i, entry := range entries {
		if entry.Generation != i+1 {
			t.Errorf("Entry %d generation = %d, want %d", i, entry.Generation, i+1)
		}
		if entry.BestFitness != float64(i+1)*1.5 {
			t.Errorf("Entry %d fitness = %v, want %v", i, entry.BestFitness, float64(i+1)*1.5)
		}
	}
	if len(entries[4].Genome) != 2 {
		t.Errorf("Final entry genome = %v, want the stored 2 values", entries[4].Genome)
	}
}

func TestTraceAppend(t *testing.T) {
	baseDir := t.TempDir()

	tw, err := NewTraceWriter(baseDir, "job-1", false)
	if err != nil {
		t.Fatalf("NewTraceWriter failed: %v", err)
	}
	tw.Write(TraceEntry{Generation: 1, BestFitness: 1, Timestamp: time.Now()})
	tw.Close()

	tw, err = NewTraceWriter(baseDir, "job-1", true)
	if err != nil {
		t.Fatalf("Append NewTraceWriter failed: %v", err)
	}
	tw.Write(TraceEntry{Generation: 2, BestFitness: 2, Timestamp: time.Now()})
	tw.Close()

	tr, err := NewTraceReader(baseDir, "job-1")
	if err != nil {
		t.Fatalf("NewTraceReader failed: %v", err)
	}
	defer tr.Close()

	entries, err := tr.ReadAll()
	if err != nil {
		t.Fatalf("ReadAll failed: %v", err)
	}
	if len(entries) != 2 {
		t.Errorf("Read %d entries after append, want 2", len(entries))
	}
}

func TestTraceReaderNotFound(t *testing.T) {
	_, err := NewTraceReader(t.TempDir(), "missing")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}
