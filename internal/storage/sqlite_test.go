package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/mkallin/driftwalk/internal/core"
)

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := Open(filepath.Join(tmpDir, "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	cfg := core.Config{Width: 80, Height: 24, Particles: 10, Seed: 42}

	runs := []core.RunStats{
		{Frames: 120, Spawned: 10, Duration: 3 * time.Second},
		{Frames: 500, Spawned: 10, Duration: 12 * time.Second},
		{Frames: 80, Spawned: 10, Duration: 2 * time.Second},
	}
	for _, stats := range runs {
		if _, err := store.SaveRun(cfg, stats); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	longest, err := store.LongestRuns(10)
	if err != nil {
		t.Fatalf("LongestRuns() failed: %v", err)
	}
	if len(longest) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(longest))
	}

	// Should be sorted by frames descending
	if longest[0].Frames != 500 {
		t.Errorf("Expected longest run first (500 frames), got %d", longest[0].Frames)
	}
	if longest[2].Frames != 80 {
		t.Errorf("Expected shortest run last (80 frames), got %d", longest[2].Frames)
	}

	if longest[0].Width != 80 || longest[0].Height != 24 || longest[0].Particles != 10 {
		t.Errorf("Run config not round-tripped: %+v", longest[0])
	}
	if longest[0].Duration != 12*time.Second {
		t.Errorf("Duration = %v, expected 12s", longest[0].Duration)
	}
}

func TestStoreTurnProbNullability(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := Open(filepath.Join(tmpDir, "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	withProb := core.Config{Width: 10, Height: 10, Particles: 5, TurnProb: core.TurnProbOf(0)}
	withoutProb := core.Config{Width: 10, Height: 10, Particles: 5}

	if _, err := store.SaveRun(withProb, core.RunStats{Frames: 1}); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if _, err := store.SaveRun(withoutProb, core.RunStats{Frames: 2}); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	records, err := store.LongestRuns(10)
	if err != nil {
		t.Fatalf("LongestRuns() failed: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("Expected 2 runs, got %d", len(records))
	}

	// frames=2 first (default prob), frames=1 second (explicit 0)
	if records[0].TurnProb != nil {
		t.Errorf("Default-probability run should round-trip as nil, got %d", *records[0].TurnProb)
	}
	if records[1].TurnProb == nil || *records[1].TurnProb != 0 {
		t.Error("Explicit zero probability was not preserved")
	}
}

func TestLongestFrames(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := Open(filepath.Join(tmpDir, "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Empty database
	frames, err := store.LongestFrames()
	if err != nil {
		t.Fatalf("LongestFrames() failed: %v", err)
	}
	if frames != 0 {
		t.Errorf("Expected 0 for empty database, got %d", frames)
	}

	cfg := core.Config{Width: 10, Height: 10, Particles: 5}
	if _, err := store.SaveRun(cfg, core.RunStats{Frames: 333}); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	frames, err = store.LongestFrames()
	if err != nil {
		t.Fatalf("LongestFrames() failed: %v", err)
	}
	if frames != 333 {
		t.Errorf("Expected 333, got %d", frames)
	}
}
