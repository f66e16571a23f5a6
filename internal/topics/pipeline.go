package topics

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/henrybloomingdale/pubmed-topics/internal/eutils"
)

// Config controls pipeline behavior.
type Config struct {
	// Workers bounds concurrent extraction calls. 1 means strictly
	// sequential, which is the contract's baseline behavior.
	Workers int
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{Workers: 1}
}

func (c Config) validate() error {
	if c.Workers < 1 {
		return fmt.Errorf("workers must be >= 1")
	}
	return nil
}

// Result holds one run's enriched articles and frequency tables.
// Unigrams count raw post-stoplist entity words as returned by the model;
// bigrams and trigrams count normalized-token phrases. The asymmetry is
// intentional and matches the published output of this tool.
type Result struct {
	Articles           []eutils.Article `json:"articles"`
	Unigrams           map[string]int   `json:"unigrams"`
	Bigrams            map[string]int   `json:"bigrams"`
	Trigrams           map[string]int   `json:"trigrams"`
	ExtractionFailures int              `json:"extraction_failures"`
}

// ProgressPhase indicates where the pipeline is.
type ProgressPhase string

const (
	ProgressExtract   ProgressPhase = "extract"
	ProgressAggregate ProgressPhase = "aggregate"
)

// ProgressUpdate is emitted as the pipeline advances. Counter updates carry
// Current/Total and no Message; everything else (degraded extractions, phase
// changes) carries a Message only.
type ProgressUpdate struct {
	Phase   ProgressPhase
	Message string
	Current int
	Total   int
}

// ProgressCallback receives progress updates. It must be fast and must not
// block; with Workers > 1 it may be called from multiple goroutines.
type ProgressCallback func(ProgressUpdate)

// Pipeline composes extraction, n-gram building, and frequency aggregation
// over a batch of articles.
type Pipeline struct {
	extractor *Extractor
	cfg       Config
	progress  ProgressCallback
}

// NewPipeline creates a pipeline around the given extractor.
func NewPipeline(extractor *Extractor, cfg Config) *Pipeline {
	return &Pipeline{extractor: extractor, cfg: cfg}
}

// WithProgress sets an optional progress callback.
func (p *Pipeline) WithProgress(cb ProgressCallback) *Pipeline {
	if p == nil {
		return nil
	}
	p.progress = cb
	return p
}

func (p *Pipeline) report(update ProgressUpdate) {
	if p == nil || p.progress == nil {
		return
	}
	p.progress(update)
}

// Run extracts entities for every article and builds the three frequency
// tables. No per-article failure aborts the batch: a failed extraction
// degrades to an empty entity list and contributes nothing to any table.
// The returned article order matches the input order regardless of worker
// count. An empty batch yields empty tables and no error.
func (p *Pipeline) Run(ctx context.Context, articles []eutils.Article, credential string) (*Result, error) {
	if p == nil || p.extractor == nil {
		return nil, errors.New("pipeline extractor is nil")
	}
	if err := p.cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	// The batch is owned by this run; copy so callers' slices stay untouched.
	enriched := make([]eutils.Article, len(articles))
	copy(enriched, articles)

	outcomes := make([]Outcome, len(enriched))
	if p.cfg.Workers <= 1 {
		p.extractSequential(ctx, enriched, credential, outcomes)
	} else {
		p.extractParallel(ctx, enriched, credential, outcomes)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	failures := 0
	batches := make([][]string, len(enriched))
	for i, out := range outcomes {
		enriched[i].Entities = out.Entities
		batches[i] = out.Entities
		if out.Failed() {
			failures++
			p.report(ProgressUpdate{
				Phase:   ProgressExtract,
				Message: fmt.Sprintf("extraction degraded for PMID %s: %v", enriched[i].PMID, out.Err),
			})
		}
	}

	p.report(ProgressUpdate{Phase: ProgressAggregate, Message: "Building frequency tables..."})

	var flat []string
	for _, entities := range batches {
		flat = append(flat, entities...)
	}

	return &Result{
		Articles:           enriched,
		Unigrams:           Count(flat),
		Bigrams:            Count(BuildNGrams(batches, 2)),
		Trigrams:           Count(BuildNGrams(batches, 3)),
		ExtractionFailures: failures,
	}, nil
}

func (p *Pipeline) extractSequential(ctx context.Context, articles []eutils.Article, credential string, outcomes []Outcome) {
	total := len(articles)
	for i := range articles {
		outcomes[i] = p.extractor.Extract(ctx, articles[i].Title, credential)
		p.report(ProgressUpdate{Phase: ProgressExtract, Current: i + 1, Total: total})
	}
}

// extractParallel fans extraction out over a bounded worker pool. Results
// are written back by index, so output order is input order, not completion
// order.
func (p *Pipeline) extractParallel(ctx context.Context, articles []eutils.Article, credential string, outcomes []Outcome) {
	sem := make(chan struct{}, p.cfg.Workers)
	var wg sync.WaitGroup
	for i := range articles {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int) {
			defer wg.Done()
			defer func() { <-sem }()
			outcomes[i] = p.extractor.Extract(ctx, articles[i].Title, credential)
			p.report(ProgressUpdate{Phase: ProgressExtract, Current: i + 1, Total: len(articles)})
		}(i)
	}
	wg.Wait()
}
