// Package output provides formatting for the pubmed-topics CLI.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/henrybloomingdale/pubmed-topics/internal/eutils"
	"github.com/henrybloomingdale/pubmed-topics/internal/topics"
)

// OutputConfig controls which output mode(s) are active.
type OutputConfig struct {
	JSON    bool   // Structured JSON
	Human   bool   // Rich terminal output with color
	Top     int    // Rows per frequency table (0 = all)
	CSVFile string // Export enriched articles to this CSV path (works alongside any mode)
}

// FormatSearchResult writes search results.
func FormatSearchResult(w io.Writer, result *eutils.SearchResult, cfg OutputConfig) error {
	if cfg.JSON {
		return writeJSON(w, result)
	}
	return formatSearchPlain(w, result)
}

// FormatArticles writes article metadata.
func FormatArticles(w io.Writer, articles []eutils.Article, cfg OutputConfig) error {
	if cfg.CSVFile != "" {
		if err := writeArticlesCSV(cfg.CSVFile, articles); err != nil {
			return fmt.Errorf("CSV export failed: %w", err)
		}
	}
	if cfg.JSON {
		return writeJSON(w, articles)
	}
	if cfg.Human {
		return formatArticlesHuman(w, articles)
	}
	return formatArticlesPlain(w, articles)
}

// FormatAnalysis writes a full pipeline result: enriched articles plus the
// unigram, bigram, and trigram frequency tables.
func FormatAnalysis(w io.Writer, result *topics.Result, cfg OutputConfig) error {
	if cfg.CSVFile != "" {
		if err := writeArticlesCSV(cfg.CSVFile, result.Articles); err != nil {
			return fmt.Errorf("CSV export failed: %w", err)
		}
	}
	if cfg.JSON {
		return writeJSON(w, result)
	}
	if cfg.Human {
		return formatAnalysisHuman(w, result, cfg.Top)
	}
	return formatAnalysisPlain(w, result, cfg.Top)
}

// --- Plain text formatters (default) ---

func formatSearchPlain(w io.Writer, result *eutils.SearchResult) error {
	if result.Count == 0 {
		fmt.Fprintln(w, "No results found.")
		return nil
	}

	fmt.Fprintf(w, "Found %d results", result.Count)
	if len(result.IDs) < result.Count {
		fmt.Fprintf(w, " (showing %d)", len(result.IDs))
	}
	fmt.Fprintln(w)

	if result.QueryTranslation != "" {
		fmt.Fprintf(w, "Query: %s\n", result.QueryTranslation)
	}
	fmt.Fprintln(w)

	for i, id := range result.IDs {
		fmt.Fprintf(w, "  %d. PMID: %s\n", i+1, id)
	}

	return nil
}

func formatArticlesPlain(w io.Writer, articles []eutils.Article) error {
	if len(articles) == 0 {
		fmt.Fprintln(w, "No articles found.")
		return nil
	}

	for i, a := range articles {
		if i > 0 {
			fmt.Fprintf(w, "\n%s\n\n", strings.Repeat("─", 80))
		}

		fmt.Fprintf(w, "PMID: %s\n", a.PMID)
		fmt.Fprintf(w, "Title: %s\n", a.Title)
		fmt.Fprintf(w, "Journal: %s\n", a.Journal)
		fmt.Fprintf(w, "Date: %s\n", a.Date)
		if a.Link != "" {
			fmt.Fprintf(w, "Link: %s\n", a.Link)
		}
		if len(a.Entities) > 0 {
			fmt.Fprintf(w, "Entities: %s\n", strings.Join(a.Entities, "; "))
		}
	}

	return nil
}

func formatAnalysisPlain(w io.Writer, result *topics.Result, top int) error {
	fmt.Fprintf(w, "Analyzed %d articles", len(result.Articles))
	if result.ExtractionFailures > 0 {
		fmt.Fprintf(w, " (%d extractions degraded)", result.ExtractionFailures)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w)

	writeFreqPlain(w, "Top single words", result.Unigrams, top)
	writeFreqPlain(w, "Top bigrams", result.Bigrams, top)
	writeFreqPlain(w, "Top trigrams", result.Trigrams, top)

	return formatArticlesPlain(w, result.Articles)
}

func writeFreqPlain(w io.Writer, title string, freq map[string]int, top int) {
	fmt.Fprintf(w, "%s:\n", title)
	entries := topics.TopN(freq, top)
	if len(entries) == 0 {
		fmt.Fprintln(w, "  (none)")
	}
	for _, e := range entries {
		fmt.Fprintf(w, "  %5d  %s\n", e.Count, e.Phrase)
	}
	fmt.Fprintln(w)
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}
