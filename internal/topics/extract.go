package topics

import (
	"context"
	"strings"

	"github.com/henrybloomingdale/pubmed-topics/internal/hf"
)

// Recognizer is the NER capability the extractor calls per title.
// *hf.Client satisfies it.
type Recognizer interface {
	Recognize(ctx context.Context, text, token string) ([]hf.Entity, error)
}

// Outcome is the tagged result of one title's extraction. A failed call
// still carries an empty (non-nil) entity slice so the pipeline can consume
// it uniformly; Err preserves the reason for logging.
type Outcome struct {
	Entities []string
	Err      error
}

// Failed reports whether the extraction degraded due to an upstream error.
func (o Outcome) Failed() bool {
	return o.Err != nil
}

// Extractor runs NER over a single title and filters the result.
type Extractor struct {
	ner   Recognizer
	stops *Stoplist
}

// NewExtractor creates an extractor over the given recognizer and stoplist.
// A nil stoplist disables filtering.
func NewExtractor(ner Recognizer, stops *Stoplist) *Extractor {
	return &Extractor{ner: ner, stops: stops}
}

// Extract returns the ordered raw entity words for one title.
//
// An empty credential or a blank title short-circuits to an empty sequence
// with no network call; that is a recognized degraded mode, not an error.
// Any transport, status, or parse failure from the recognizer is recovered
// into an empty sequence with the reason kept on the Outcome. Words on the
// stoplist (compared lowercased, raw) are dropped; the survivors keep the
// model's order and casing, with no deduplication and no normalization.
func (e *Extractor) Extract(ctx context.Context, title, credential string) Outcome {
	if credential == "" || strings.TrimSpace(title) == "" {
		return Outcome{Entities: []string{}}
	}

	recognized, err := e.ner.Recognize(ctx, title, credential)
	if err != nil {
		return Outcome{Entities: []string{}, Err: err}
	}

	entities := make([]string, 0, len(recognized))
	for _, ent := range recognized {
		if ent.Word == "" {
			continue
		}
		if e.stops.Contains(ent.Word) {
			continue
		}
		entities = append(entities, ent.Word)
	}
	return Outcome{Entities: entities}
}
