// Package pipeline orchestrates resume parsing: document ingestion, the
// model-based extraction path with its rule-based fallback, candidate
// normalization, and field resolution. The output record is always resolved
// and ready for filtering.
package pipeline

import (
	"context"

	"go.uber.org/zap"

	"github.com/jonathan/resume-screener/internal/ingestion"
	"github.com/jonathan/resume-screener/internal/llm"
	"github.com/jonathan/resume-screener/internal/parsing"
	"github.com/jonathan/resume-screener/internal/types"
)

// Options configures a Parser.
type Options struct {
	// Client enables the model-based extraction path. When nil, parsing is
	// purely rule-based.
	Client llm.Client

	// Extractor overrides the default rule-based extractor.
	Extractor *parsing.Extractor

	Logger *zap.Logger
}

// Parser turns cleaned resume text into resolved records. It is safe for
// concurrent use.
type Parser struct {
	extractor *parsing.Extractor
	client    llm.Client
	logger    *zap.Logger
}

// New creates a Parser.
func New(opts Options) *Parser {
	extractor := opts.Extractor
	if extractor == nil {
		extractor = parsing.NewExtractor()
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Parser{
		extractor: extractor,
		client:    opts.Client,
		logger:    logger,
	}
}

// Extractor returns the parser's rule-based extractor.
func (p *Parser) Extractor() *parsing.Extractor { return p.extractor }

// Parse produces a resolved record from cleaned resume text. With a model
// client configured it tries model-based extraction first and falls back to
// the rule-based path on any failure; parsing itself never returns an error.
func (p *Parser) Parse(ctx context.Context, text string) *types.ResumeRecord {
	rec := p.extract(ctx, text)
	resolved := parsing.Resolve(*rec)
	return &resolved
}

func (p *Parser) extract(ctx context.Context, text string) *types.ResumeRecord {
	if p.client != nil {
		candidate, err := llm.ExtractResume(ctx, p.client, text)
		if err == nil {
			p.logger.Debug("model extraction succeeded")
			return parsing.NormalizeCandidate(candidate)
		}
		p.logger.Warn("model extraction failed, falling back to rules", zap.Error(err))
	}
	return p.extractor.ExtractRecord(text)
}

// ParseDocument ingests an uploaded document and parses it.
func (p *Parser) ParseDocument(ctx context.Context, content []byte, name string) (*types.ResumeRecord, *ingestion.Metadata, error) {
	text, meta, err := ingestion.IngestBytes(content, name)
	if err != nil {
		return nil, nil, err
	}
	return p.Parse(ctx, text), meta, nil
}

// ParseFile ingests a resume document from disk and parses it.
func (p *Parser) ParseFile(ctx context.Context, path string) (*types.ResumeRecord, *ingestion.Metadata, error) {
	text, meta, err := ingestion.IngestFromFile(path)
	if err != nil {
		return nil, nil, err
	}
	return p.Parse(ctx, text), meta, nil
}
