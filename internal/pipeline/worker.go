package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/outliner-go/outliner/internal/classify"
	"github.com/outliner-go/outliner/internal/outline"
	"github.com/outliner-go/outliner/internal/outstore"
)

// Worker processes a single outline extraction job.
type Worker struct {
	store *outstore.Store
	stats *classify.Stats
	log   *slog.Logger
	opts  Options
}

func NewWorker(store *outstore.Store, stats *classify.Stats, log *slog.Logger, opts Options) *Worker {
	return &Worker{
		store: store,
		stats: stats,
		log:   log,
		opts:  opts,
	}
}

// Process runs the full extraction pipeline for a job.
func (w *Worker) Process(ctx context.Context, job *Job) {
	log := w.log.With("job_id", job.ID, "doc_id", job.DocID, "filename", job.Filename)

	if err := ctx.Err(); err != nil {
		job.AddError(err.Error())
		job.SetStatus(StatusFailed, "queued")
		return
	}

	// Phase 1: Parse.
	job.SetStatus(StatusParsing, "parsing")
	data := job.FileData()
	lines, err := ParseLines(data, job.Filename, w.opts)
	if err != nil {
		log.Error("parse failed", "error", err)
		job.AddError(err.Error())
		job.SetStatus(StatusFailed, "parsing")
		job.releaseData()
		return
	}
	job.SetCounts(len(lines), 0, 0)
	log.Info("parsed document", "lines", len(lines))

	// Phase 1.5: Dedup check. The doc ID is content-derived by
	// default, so an existing stored outline means the same bytes
	// were already processed.
	if !job.Force() && w.store.Exists(job.DocID) {
		log.Info("duplicate document, skipping")
		job.SetStatus(StatusDupSkipped, "dedup")
		job.releaseData()
		return
	}

	// Phase 2: Classify.
	job.SetStatus(StatusClassifying, "classifying")
	start := time.Now()
	res := classify.Classify(lines)
	w.stats.Record(time.Since(start).Milliseconds(), len(res.Entries))
	job.SetCounts(res.LineCount, res.CandidateCount, len(res.Entries))
	log.Info("classified document", "candidates", res.CandidateCount, "headings", len(res.Entries))

	// Phase 3: Normalize and resolve the title.
	job.SetStatus(StatusNormalizing, "normalizing")
	title := ResolveTitle(res.Title, lines, job.Filename, data)
	doc := outline.NewDocument(title, res.Entries)
	job.SetCounts(res.LineCount, res.CandidateCount, len(doc.Outline))

	// Phase 4: Write the outline.
	job.SetStatus(StatusWriting, "writing")
	path, err := w.store.Put(job.DocID, doc)
	if err != nil {
		log.Error("store failed", "error", err)
		job.AddError(fmt.Sprintf("store: %s", err))
		job.SetStatus(StatusFailed, "writing")
		job.releaseData()
		return
	}
	log.Info("stored outline", "path", path, "title", doc.Title, "headings", len(doc.Outline))

	job.SetResult(&doc)
	job.releaseData()
	job.SetStatus(StatusCompleted, "done")
}
