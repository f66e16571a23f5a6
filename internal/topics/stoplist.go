package topics

import "strings"

// Stoplist is a read-only set of generic terms excluded at extraction time.
// Matching is case-insensitive on the raw entity word; normalization for
// n-gram construction happens later and is unaffected by the stoplist.
type Stoplist struct {
	terms map[string]struct{}
}

// NewStoplist builds a stoplist from the given terms, lowercasing each.
func NewStoplist(terms []string) *Stoplist {
	set := make(map[string]struct{}, len(terms))
	for _, t := range terms {
		set[strings.ToLower(t)] = struct{}{}
	}
	return &Stoplist{terms: set}
}

// Contains reports whether word is on the stoplist, ignoring case.
func (s *Stoplist) Contains(word string) bool {
	if s == nil {
		return false
	}
	_, ok := s.terms[strings.ToLower(word)]
	return ok
}

// Len returns the number of terms on the stoplist.
func (s *Stoplist) Len() int {
	if s == nil {
		return 0
	}
	return len(s.terms)
}

// DefaultStopTerms are generic biomedical words that carry no topical signal
// in titles and would otherwise dominate every frequency table.
var DefaultStopTerms = []string{
	"study", "patient", "patients", "trial", "results", "effect", "effects",
	"group", "clinical", "analysis", "evaluation", "treatment", "data",
}

// DefaultStoplist returns a stoplist of the default generic terms.
func DefaultStoplist() *Stoplist {
	return NewStoplist(DefaultStopTerms)
}
