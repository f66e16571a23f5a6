package output

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"github.com/henrybloomingdale/pubmed-topics/internal/eutils"
)

// writeArticlesCSV exports the enriched article batch as a flat table:
// one row per article, entities rendered as a "; "-joined list.
func writeArticlesCSV(path string, articles []eutils.Article) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating CSV file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"PMID", "Title", "Link", "Journal", "Date", "Entities"}); err != nil {
		return fmt.Errorf("writing CSV header: %w", err)
	}

	for _, a := range articles {
		row := []string{
			a.PMID,
			a.Title,
			a.Link,
			a.Journal,
			a.Date,
			strings.Join(a.Entities, "; "),
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("writing CSV row for PMID %s: %w", a.PMID, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flushing CSV output: %w", err)
	}

	return nil
}
