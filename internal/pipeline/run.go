// Package pipeline provides concurrent batch analysis of resume files.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-ats/internal/ingestion"
	"github.com/jonathan/resume-ats/internal/types"
)

// DefaultConcurrency is used when RunOptions.Concurrency is not positive.
const DefaultConcurrency = 4

// Step names reported in progress events
const (
	StepLoad    = "load"
	StepAnalyze = "analyze"
	StepFailed  = "failed"
)

// Step categories
const (
	CategoryIngestion = "ingestion"
	CategoryScoring   = "scoring"
)

// ProgressEvent represents a progress update during a batch run
type ProgressEvent struct {
	Step     string `json:"step"`
	Category string `json:"category"`
	Message  string `json:"message"`
	Path     string `json:"path"`
	Index    int    `json:"index"`
	Total    int    `json:"total"`
	Content  any    `json:"content,omitempty"`
}

// ProgressCallback is called when batch progress occurs. Calls are serialized.
type ProgressCallback func(event ProgressEvent)

// Analyzer scores one document. *ats.Engine satisfies it.
type Analyzer interface {
	Analyze(doc *types.ResumeDocument, jobTitle string) *types.AnalysisResult
}

// FailureRecorder counts files that never reached analysis.
type FailureRecorder interface {
	RecordFailure()
}

// RunOptions holds configuration for a batch run
type RunOptions struct {
	JobTitle    string
	Concurrency int
	Ingestion   ingestion.Options
	OnProgress  ProgressCallback
	Failures    FailureRecorder
	Logger      *zap.Logger
}

// FileResult is the outcome for one input path. Exactly one of Analysis and Err is set.
type FileResult struct {
	Path     string                `json:"path"`
	Metadata *ingestion.Metadata   `json:"metadata,omitempty"`
	Document *types.ResumeDocument `json:"-"`
	Analysis *types.AnalysisResult `json:"analysis,omitempty"`
	Err      error                 `json:"-"`
	Error    string                `json:"error,omitempty"`
}

// Result holds one FileResult per input path, in input order.
type Result struct {
	Files     []FileResult `json:"files"`
	Succeeded int          `json:"succeeded"`
	Failed    int          `json:"failed"`
}

// Errors returns the per-file errors joined, or nil when every file succeeded.
func (r *Result) Errors() error {
	var errs []error
	for _, f := range r.Files {
		if f.Err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", f.Path, f.Err))
		}
	}
	return errors.Join(errs...)
}

type runner struct {
	analyzer Analyzer
	opts     RunOptions
	log      *zap.Logger
	total    int

	progressMu sync.Mutex
}

// emitProgress calls the progress callback if configured
func (r *runner) emitProgress(event ProgressEvent) {
	if r.opts.OnProgress == nil {
		return
	}
	event.Total = r.total
	r.progressMu.Lock()
	defer r.progressMu.Unlock()
	r.opts.OnProgress(event)
}

// Run loads and analyzes every path with at most opts.Concurrency files in flight. A file that
// cannot be loaded is reported in its FileResult and does not stop the batch. Run returns an
// error only when ctx is cancelled.
func Run(ctx context.Context, analyzer Analyzer, paths []string, opts RunOptions) (*Result, error) {
	if analyzer == nil {
		return nil, errors.New("pipeline: analyzer is nil")
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	if opts.Ingestion.Logger == nil {
		opts.Ingestion.Logger = log
	}
	limit := opts.Concurrency
	if limit <= 0 {
		limit = DefaultConcurrency
	}

	r := &runner{analyzer: analyzer, opts: opts, log: log, total: len(paths)}
	files := make([]FileResult, len(paths))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			// each goroutine owns files[i]
			files[i] = r.process(i, path)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("batch cancelled: %w", err)
	}

	result := &Result{Files: files}
	for _, f := range files {
		if f.Err != nil {
			result.Failed++
		} else {
			result.Succeeded++
		}
	}
	log.Info("Batch complete",
		zap.Int("files", len(paths)),
		zap.Int("succeeded", result.Succeeded),
		zap.Int("failed", result.Failed),
	)
	return result, nil
}

func (r *runner) process(index int, path string) FileResult {
	r.emitProgress(ProgressEvent{
		Step:     StepLoad,
		Category: CategoryIngestion,
		Message:  "Loading resume",
		Path:     path,
		Index:    index,
	})

	doc, meta, err := ingestion.LoadResume(path, r.opts.Ingestion)
	if err != nil {
		r.log.Warn("Skipping resume", zap.String("path", path), zap.Error(err))
		if r.opts.Failures != nil {
			r.opts.Failures.RecordFailure()
		}
		r.emitProgress(ProgressEvent{
			Step:     StepFailed,
			Category: CategoryIngestion,
			Message:  err.Error(),
			Path:     path,
			Index:    index,
		})
		return FileResult{Path: path, Err: err, Error: err.Error()}
	}

	analysis := r.analyzer.Analyze(doc, r.opts.JobTitle)
	r.emitProgress(ProgressEvent{
		Step:     StepAnalyze,
		Category: CategoryScoring,
		Message:  fmt.Sprintf("Scored %d/100", analysis.OverallScore),
		Path:     path,
		Index:    index,
		Content:  analysis.OverallScore,
	})

	return FileResult{Path: path, Metadata: meta, Document: doc, Analysis: analysis}
}
