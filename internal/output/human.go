package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/henrybloomingdale/pubmed-topics/internal/eutils"
	"github.com/henrybloomingdale/pubmed-topics/internal/topics"
)

// --- Styles ---

var (
	cyan       = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	bold       = lipgloss.NewStyle().Bold(true)
	dim        = lipgloss.NewStyle().Faint(true)
	yellow     = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	labelStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("4"))
)

// truncate cuts a string to maxLen characters, appending "…" if truncated.
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-1] + "…"
}

func newTable(headers ...string) *table.Table {
	return table.New().
		Headers(headers...).
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("8"))).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("4"))
			}
			return lipgloss.NewStyle()
		})
}

// --- Articles ---

func formatArticlesHuman(w io.Writer, articles []eutils.Article) error {
	if len(articles) == 0 {
		fmt.Fprintln(w, "No articles found.")
		return nil
	}

	var rows [][]string
	for _, a := range articles {
		rows = append(rows, []string{
			cyan.Render(a.PMID),
			bold.Render(truncate(a.Title, 50)),
			truncate(a.Journal, 24),
			a.Date,
			truncate(strings.Join(a.Entities, "; "), 36),
		})
	}

	t := newTable("PMID", "Title", "Journal", "Date", "Entities").Rows(rows...)
	fmt.Fprintln(w, t.Render())
	return nil
}

// --- Analysis ---

func formatAnalysisHuman(w io.Writer, result *topics.Result, top int) error {
	header := fmt.Sprintf("🔬 Analyzed %d articles", len(result.Articles))
	fmt.Fprintln(w, bold.Render(header))
	if result.ExtractionFailures > 0 {
		fmt.Fprintln(w, yellow.Render(fmt.Sprintf("   %d title(s) degraded to empty entities", result.ExtractionFailures)))
	}
	fmt.Fprintln(w)

	writeFreqHuman(w, "Single words", result.Unigrams, top)
	writeFreqHuman(w, "Bigrams", result.Bigrams, top)
	writeFreqHuman(w, "Trigrams", result.Trigrams, top)

	if err := formatArticlesHuman(w, result.Articles); err != nil {
		return err
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, dim.Render("💾 Use --csv output.csv to export"))
	return nil
}

func writeFreqHuman(w io.Writer, title string, freq map[string]int, top int) {
	fmt.Fprintln(w, labelStyle.Render(title))

	entries := topics.TopN(freq, top)
	if len(entries) == 0 {
		fmt.Fprintln(w, dim.Render("  (none)"))
		fmt.Fprintln(w)
		return
	}

	var rows [][]string
	for i, e := range entries {
		rows = append(rows, []string{
			fmt.Sprintf("%d", i+1),
			e.Phrase,
			fmt.Sprintf("%d", e.Count),
		})
	}

	t := newTable("#", "Phrase", "Count").Rows(rows...)
	fmt.Fprintln(w, t.Render())
	fmt.Fprintln(w)
}
