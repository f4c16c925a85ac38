package pipeline

import (
	"testing"
	"time"

	"github.com/outliner-go/outliner/internal/outline"
)

func TestContentHashHex_Consistency(t *testing.T) {
	data := []byte("hello world")
	h1 := ContentHashHex(data)
	h2 := ContentHashHex(data)
	if h1 != h2 {
		t.Errorf("expected identical hashes, got %q and %q", h1, h2)
	}
	// SHA-256 of "hello world" is well-known.
	want := "b94d27b9934d3e08a52e52d7da7dabfac484efe37a5380ee9088f7ace2efcde9"
	if h1 != want {
		t.Errorf("expected hash %q, got %q", want, h1)
	}
}

func TestContentHashHex_DifferentInputs(t *testing.T) {
	if ContentHashHex([]byte("aaa")) == ContentHashHex([]byte("bbb")) {
		t.Error("expected different hashes for different inputs")
	}
}

func TestNewJob_DerivesDocIDFromContent(t *testing.T) {
	data := []byte("same document bytes")
	j1 := NewJob("a.pdf", data, "", false)
	j2 := NewJob("b.pdf", data, "", false)

	if j1.DocID != j2.DocID {
		t.Errorf("doc IDs differ for identical content: %q vs %q", j1.DocID, j2.DocID)
	}
	if len(j1.DocID) != 16 {
		t.Errorf("doc ID length = %d, want 16", len(j1.DocID))
	}
	if j1.ID == j2.ID {
		t.Error("job IDs must be unique per submission")
	}
	if j1.Status != StatusQueued {
		t.Errorf("initial status = %s, want %s", j1.Status, StatusQueued)
	}
}

func TestNewJob_ExplicitDocIDWins(t *testing.T) {
	j := NewJob("a.pdf", []byte("x"), "custom-id", true)
	if j.DocID != "custom-id" {
		t.Errorf("doc ID = %q, want custom-id", j.DocID)
	}
	if !j.Force() {
		t.Error("force flag not carried")
	}
}

func TestJob_StateTransitions(t *testing.T) {
	job := NewJob("doc.pdf", []byte("content"), "", false)

	transitions := []struct {
		status JobStatus
		phase  string
	}{
		{StatusParsing, "parsing"},
		{StatusClassifying, "classifying"},
		{StatusNormalizing, "normalizing"},
		{StatusWriting, "writing"},
		{StatusCompleted, "done"},
	}

	for _, tr := range transitions {
		job.SetStatus(tr.status, tr.phase)
		snap := job.Snapshot()
		if snap.Status != tr.status || snap.Phase != tr.phase {
			t.Fatalf("snapshot = %s/%s, want %s/%s", snap.Status, snap.Phase, tr.status, tr.phase)
		}
	}
}

func TestJob_ProgressAndErrors(t *testing.T) {
	job := NewJob("doc.pdf", []byte("content"), "", false)
	job.SetCounts(120, 14, 9)
	job.AddError("page 3 unreadable")

	snap := job.Snapshot()
	if snap.Progress.Lines != 120 || snap.Progress.Candidates != 14 || snap.Progress.Headings != 9 {
		t.Errorf("progress = %+v", snap.Progress)
	}
	if len(snap.Progress.Errors) != 1 || snap.Progress.Errors[0] != "page 3 unreadable" {
		t.Errorf("errors = %v", snap.Progress.Errors)
	}
}

func TestJob_SnapshotErrorsNeverNil(t *testing.T) {
	job := NewJob("doc.pdf", []byte("content"), "", false)
	if job.Snapshot().Progress.Errors == nil {
		t.Error("snapshot errors slice is nil, want empty slice")
	}
}

func TestJob_ResultAndRelease(t *testing.T) {
	job := NewJob("doc.pdf", []byte("content"), "", false)
	if job.Result() != nil {
		t.Fatal("result before completion should be nil")
	}

	doc := outline.NewDocument("T", nil)
	job.SetResult(&doc)
	job.releaseData()

	if job.Result() == nil {
		t.Fatal("result lost")
	}
	if job.FileData() != nil {
		t.Error("file data retained after release")
	}
}

func TestJobStore_CleanupEvictsExpired(t *testing.T) {
	s := NewJobStore(time.Millisecond)
	job := NewJob("doc.pdf", []byte("content"), "", false)
	s.Put(job)

	if s.Get(job.ID) == nil {
		t.Fatal("job not stored")
	}

	time.Sleep(5 * time.Millisecond)
	s.Cleanup()
	if s.Get(job.ID) != nil {
		t.Fatal("expired job survived cleanup")
	}
}

func TestGenerateULID_UniqueAndSortable(t *testing.T) {
	a := generateULID()
	b := generateULID()
	if a == b {
		t.Error("consecutive ULIDs collided")
	}
	if len(a) != len(b) {
		t.Errorf("ULID lengths differ: %d vs %d", len(a), len(b))
	}
}
