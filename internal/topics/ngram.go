package topics

import "strings"

// BuildNGrams produces the flat sequence of space-joined phrases of the
// given width across each article's entity sequence. Entities are normalized
// first; any that normalize to the empty string are dropped from that
// article's token list before windowing, which shifts window contents.
// An article with fewer normalized tokens than width contributes nothing,
// and windows never span two articles. Output order is article order, then
// window position.
func BuildNGrams(entityBatches [][]string, width int) []string {
	if width < 1 {
		return []string{}
	}

	var ngrams []string
	for _, entities := range entityBatches {
		tokens := make([]string, 0, len(entities))
		for _, e := range entities {
			if e == "" {
				continue
			}
			if t := Normalize(e); t != "" {
				tokens = append(tokens, t)
			}
		}

		for i := 0; i+width <= len(tokens); i++ {
			ngrams = append(ngrams, strings.Join(tokens[i:i+width], " "))
		}
	}

	if ngrams == nil {
		ngrams = []string{}
	}
	return ngrams
}
