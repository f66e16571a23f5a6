// Command pubmed-topics surfaces trending biomedical terms from recent
// PubMed articles: it searches PubMed via NCBI E-utilities, runs named
// entity recognition over article titles with a hosted Hugging Face
// model, and aggregates the entities into n-gram frequency tables.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/henrybloomingdale/pubmed-topics/internal/eutils"
	"github.com/henrybloomingdale/pubmed-topics/internal/ncbi"
	"github.com/henrybloomingdale/pubmed-topics/internal/output"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

var (
	flagJSON   bool
	flagHuman  bool
	flagCSV    string
	flagLimit  int
	flagSort   string
	flagYear   string
	flagAPIKey string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pubmed-topics",
	Short: "Hot-topic mining for PubMed",
	Long:  `Search PubMed, run named entity recognition over article titles, and rank the hottest single words, bigrams, and trigrams across the result set.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return validateGlobalFlags(cmd)
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "Output as structured JSON")
	rootCmd.PersistentFlags().BoolVarP(&flagHuman, "human", "H", false, "Rich colorful terminal output")
	rootCmd.PersistentFlags().StringVar(&flagCSV, "csv", "", "Export articles to CSV file")
	rootCmd.PersistentFlags().IntVar(&flagLimit, "limit", 100, "Maximum number of results")
	rootCmd.PersistentFlags().StringVar(&flagSort, "sort", "", "Sort order: relevance or date")
	rootCmd.PersistentFlags().StringVar(&flagYear, "year", "", "Filter by year range (e.g., 2020-2025)")
	rootCmd.PersistentFlags().StringVar(&flagAPIKey, "api-key", "", "NCBI API key (or set NCBI_API_KEY env var)")

	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(fetchCmd)
	rootCmd.AddCommand(analyzeCmd)
}

func outputCfg() output.OutputConfig {
	// Rich tables degrade to plain text when stdout is piped.
	human := flagHuman && isatty.IsTerminal(os.Stdout.Fd())
	return output.OutputConfig{
		JSON:    flagJSON,
		Human:   human,
		Top:     flagTop,
		CSVFile: flagCSV,
	}
}

func newBaseClient(baseURL string) *ncbi.BaseClient {
	apiKey := flagAPIKey
	if apiKey == "" {
		apiKey = os.Getenv("NCBI_API_KEY")
	}
	var opts []ncbi.Option
	if apiKey != "" {
		opts = append(opts, ncbi.WithAPIKey(apiKey))
	}
	if baseURL != "" {
		opts = append(opts, ncbi.WithBaseURL(baseURL))
	}
	return ncbi.NewBaseClient(opts...)
}

func newEutilsClient() *eutils.Client {
	return eutils.NewClientWithBase(newBaseClient(""))
}

func buildQuery(args []string) string {
	query := strings.Join(args, " ")

	if flagYear != "" {
		minDate, maxDate, err := parseYearRange(flagYear)
		if err == nil {
			query += fmt.Sprintf(" AND %s:%s[pdat]", minDate, maxDate)
		}
	}

	return query
}

func searchOptions() *eutils.SearchOptions {
	opts := &eutils.SearchOptions{
		Limit: flagLimit,
		Sort:  flagSort,
	}

	if flagYear != "" {
		if minDate, maxDate, err := parseYearRange(flagYear); err == nil {
			opts.MinDate = minDate
			opts.MaxDate = maxDate
		}
	}

	return opts
}

// parseYearRange parses "2024" or "2020-2025" into a min/max pair.
// A single year covers just that year.
func parseYearRange(in string) (string, string, error) {
	isYear := func(s string) bool {
		if len(s) != 4 {
			return false
		}
		for _, r := range s {
			if r < '0' || r > '9' {
				return false
			}
		}
		return true
	}

	parts := strings.SplitN(in, "-", 2)
	if len(parts) == 1 {
		if !isYear(parts[0]) {
			return "", "", fmt.Errorf("invalid year %q", in)
		}
		return parts[0], parts[0], nil
	}
	if !isYear(parts[0]) || !isYear(parts[1]) {
		return "", "", fmt.Errorf("invalid year range %q (use YYYY or YYYY-YYYY)", in)
	}
	if parts[0] > parts[1] {
		return "", "", fmt.Errorf("year range %q is descending", in)
	}
	return parts[0], parts[1], nil
}

// validateGlobalFlags rejects flag values that would otherwise fail deep
// inside a request, so errors surface before any network call.
func validateGlobalFlags(cmd *cobra.Command) error {
	if flagLimit < 1 {
		return fmt.Errorf("--limit must be >= 1")
	}
	switch flagSort {
	case "", "relevance", "date":
	default:
		return fmt.Errorf("invalid --sort %q (use relevance or date)", flagSort)
	}
	if flagYear != "" {
		if _, _, err := parseYearRange(flagYear); err != nil {
			return err
		}
	}
	return nil
}

// normalizePMIDArgs splits comma-separated PMID arguments and validates that
// each one is numeric.
func normalizePMIDArgs(args []string) ([]string, error) {
	var pmids []string
	for _, arg := range args {
		for _, part := range strings.Split(arg, ",") {
			pmid := strings.TrimSpace(part)
			if pmid == "" {
				continue
			}
			for _, r := range pmid {
				if r < '0' || r > '9' {
					return nil, fmt.Errorf("invalid PMID %q", pmid)
				}
			}
			pmids = append(pmids, pmid)
		}
	}
	if len(pmids) == 0 {
		return nil, fmt.Errorf("no PMIDs provided")
	}
	return pmids, nil
}

// searchCmd implements the search subcommand.
var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search PubMed with Boolean/MeSH queries",
	Long:  `Search PubMed using Boolean operators and MeSH terms. Returns PMIDs and result counts.`,
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client := newEutilsClient()
		query := buildQuery(args)

		result, err := client.Search(cmd.Context(), query, searchOptions())
		if err != nil {
			return fmt.Errorf("search failed: %w", err)
		}

		cfg := outputCfg()

		// Rich table and CSV export need article metadata, not just PMIDs.
		if (cfg.Human || cfg.CSVFile != "") && len(result.IDs) > 0 {
			articles, err := client.Fetch(cmd.Context(), result.IDs)
			if err != nil {
				// Non-fatal: fall back to PMID-only display
				fmt.Fprintf(os.Stderr, "Warning: could not fetch article details: %v\n", err)
			} else {
				return output.FormatArticles(os.Stdout, articles, cfg)
			}
		}

		return output.FormatSearchResult(os.Stdout, result, cfg)
	},
}

// fetchCmd implements the fetch subcommand.
var fetchCmd = &cobra.Command{
	Use:   "fetch <pmid> [pmid...]",
	Short: "Fetch article metadata",
	Long:  `Retrieve title, journal, and publication date for one or more PMIDs.`,
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		pmids, err := normalizePMIDArgs(args)
		if err != nil {
			return err
		}

		client := newEutilsClient()

		articles, err := client.Fetch(cmd.Context(), pmids)
		if err != nil {
			return fmt.Errorf("fetch failed: %w", err)
		}

		return output.FormatArticles(os.Stdout, articles, outputCfg())
	},
}
