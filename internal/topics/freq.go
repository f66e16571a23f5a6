package topics

import "sort"

// Count is a multiset count over items. Filtering happens upstream; every
// item is counted, including duplicates.
func Count(items []string) map[string]int {
	freq := make(map[string]int, len(items))
	for _, item := range items {
		freq[item]++
	}
	return freq
}

// FreqEntry is one ranked row of a frequency table.
type FreqEntry struct {
	Phrase string `json:"phrase"`
	Count  int    `json:"count"`
}

// TopN returns the n highest-count entries of a frequency table, ordered by
// count descending and then phrase ascending so rendering is deterministic.
// n <= 0 returns every entry.
func TopN(freq map[string]int, n int) []FreqEntry {
	entries := make([]FreqEntry, 0, len(freq))
	for phrase, count := range freq {
		entries = append(entries, FreqEntry{Phrase: phrase, Count: count})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		return entries[i].Phrase < entries[j].Phrase
	})
	if n > 0 && len(entries) > n {
		entries = entries[:n]
	}
	return entries
}
