package pipeline

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/outliner-go/outliner/internal/config"
	"github.com/outliner-go/outliner/internal/outstore"
)

func testOrchestrator(t *testing.T) *Orchestrator {
	t.Helper()
	store, err := outstore.NewStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	cfg := config.Config{
		WorkerCount:  1,
		MaxQueueSize: 2,
		JobTTL:       time.Minute,
	}
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewOrchestrator(cfg, store, log)
}

func TestOrchestrator_SubmitAfterStop(t *testing.T) {
	o := testOrchestrator(t)
	o.Start(context.Background())
	o.Stop()

	job := NewJob("doc.md", []byte("# Heading\n\nbody\n"), "", false)
	if err := o.Submit(job); err == nil {
		t.Fatal("Submit after Stop returned nil error")
	}
	if snap := job.Snapshot(); snap.Status != StatusFailed {
		t.Errorf("status = %q, want %q", snap.Status, StatusFailed)
	}
}

func TestOrchestrator_StopIsIdempotent(t *testing.T) {
	o := testOrchestrator(t)
	o.Start(context.Background())
	o.Stop()
	o.Stop()
}

func TestOrchestrator_ProcessesSubmittedJob(t *testing.T) {
	o := testOrchestrator(t)
	o.Start(context.Background())
	defer o.Stop()

	job := NewJob("doc.md", []byte("# Field Guide\n\nSome body text here.\n"), "", false)
	if err := o.Submit(job); err != nil {
		t.Fatal(err)
	}

	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		snap := job.Snapshot()
		if snap.Status == StatusCompleted || snap.Status == StatusDupSkipped {
			return
		}
		if snap.Status == StatusFailed {
			t.Fatalf("job failed: %v", snap.Progress.Errors)
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("job not completed, status = %q", job.Snapshot().Status)
}
