package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/outliner-go/outliner/internal/classify"
	"github.com/outliner-go/outliner/internal/config"
	"github.com/outliner-go/outliner/internal/outline"
	"github.com/outliner-go/outliner/internal/outstore"
)

// Orchestrator manages the outline extraction pipeline.
type Orchestrator struct {
	jobs  *JobStore
	queue chan *Job
	store *outstore.Store
	stats *classify.Stats
	log   *slog.Logger
	cfg   config.Config
	opts  Options

	cancel context.CancelFunc
	wg     sync.WaitGroup

	mu      sync.Mutex
	stopped bool
}

// NewOrchestrator creates the pipeline. Call Start to launch workers.
func NewOrchestrator(cfg config.Config, store *outstore.Store, log *slog.Logger) *Orchestrator {
	return &Orchestrator{
		jobs:  NewJobStore(cfg.JobTTL),
		queue: make(chan *Job, cfg.MaxQueueSize),
		store: store,
		stats: classify.NewStats(time.Hour),
		log:   log,
		cfg:   cfg,
		opts: Options{
			MaxPages:          cfg.MaxPages,
			FallbackPdftotext: cfg.PDFFallbackPdftotext,
		},
	}
}

// Start launches worker goroutines.
func (o *Orchestrator) Start(ctx context.Context) {
	workerCtx, cancel := context.WithCancel(ctx)
	o.cancel = cancel

	for range o.cfg.WorkerCount {
		o.wg.Add(1)
		go func() {
			defer o.wg.Done()
			w := NewWorker(o.store, o.stats, o.log, o.opts)
			for {
				select {
				case <-workerCtx.Done():
					return
				case job := <-o.queue:
					w.Process(workerCtx, job)
				}
			}
		}()
	}

	// Start job store cleanup.
	o.wg.Add(1)
	go func() {
		defer o.wg.Done()
		ticker := time.NewTicker(5 * time.Minute)
		defer ticker.Stop()
		for {
			select {
			case <-workerCtx.Done():
				return
			case <-ticker.C:
				o.jobs.Cleanup()
			}
		}
	}()
}

// Stop gracefully shuts down the pipeline. The queue channel is never
// closed; workers exit on context cancellation, so a Submit racing
// past shutdown fails cleanly instead of panicking.
func (o *Orchestrator) Stop() {
	o.mu.Lock()
	if o.stopped {
		o.mu.Unlock()
		return
	}
	o.stopped = true
	o.mu.Unlock()

	if o.cancel != nil {
		o.cancel()
	}
	o.wg.Wait()
}

// Submit queues a new job for processing.
func (o *Orchestrator) Submit(job *Job) error {
	o.mu.Lock()
	stopped := o.stopped
	o.mu.Unlock()
	if stopped {
		job.SetStatus(StatusFailed, "shutting_down")
		return fmt.Errorf("pipeline is shutting down")
	}

	o.jobs.Put(job)
	select {
	case o.queue <- job:
		return nil
	default:
		job.SetStatus(StatusFailed, "queue_full")
		return fmt.Errorf("job queue is full (%d)", o.cfg.MaxQueueSize)
	}
}

// GetJob returns a job by ID.
func (o *Orchestrator) GetJob(id string) *Job {
	return o.jobs.Get(id)
}

// QueueDepth returns current queue depth.
func (o *Orchestrator) QueueDepth() int {
	return len(o.queue)
}

// Store returns the outline store for direct use by API handlers.
func (o *Orchestrator) Store() *outstore.Store {
	return o.store
}

// Stats returns the classification stats recorder.
func (o *Orchestrator) Stats() *classify.Stats {
	return o.stats
}

// ExtractSync runs the pipeline synchronously, bypassing the queue.
// Used by the synchronous API path.
func (o *Orchestrator) ExtractSync(data []byte, filename string) (outline.Document, classify.Result, error) {
	start := time.Now()
	doc, res, err := Extract(data, filename, o.opts)
	if err != nil {
		return doc, res, err
	}
	o.stats.Record(time.Since(start).Milliseconds(), len(doc.Outline))
	return doc, res, nil
}
