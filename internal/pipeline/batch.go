package pipeline

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-screener/internal/ingestion"
	"github.com/jonathan/resume-screener/internal/types"
)

// DefaultBatchWorkers bounds concurrent document parsing in a batch.
const DefaultBatchWorkers = 4

// BatchResult is the outcome of parsing one document in a batch. Err is set
// when ingestion failed; parsing itself degrades instead of erroring.
type BatchResult struct {
	Path     string
	Record   *types.ResumeRecord
	Metadata *ingestion.Metadata
	Err      error
}

// ParseBatch parses many resume files concurrently, at most workers at a
// time. Results keep the order of paths, and one failed document never
// aborts the rest. The context cancels outstanding work.
func (p *Parser) ParseBatch(ctx context.Context, paths []string, workers int) []BatchResult {
	if workers <= 0 {
		workers = DefaultBatchWorkers
	}

	results := make([]BatchResult, len(paths))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, path := range paths {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				results[i] = BatchResult{Path: path, Err: err}
				return nil
			}

			rec, meta, err := p.ParseFile(gCtx, path)
			results[i] = BatchResult{Path: path, Record: rec, Metadata: meta, Err: err}
			if err != nil {
				p.logger.Warn("batch document failed", zap.String("path", path), zap.Error(err))
			}
			return nil
		})
	}

	_ = g.Wait()
	return results
}
