package main

import (
	"fmt"
	"os"

	"github.com/henrybloomingdale/pubmed-topics/internal/config"
	"github.com/henrybloomingdale/pubmed-topics/internal/eutils"
	"github.com/henrybloomingdale/pubmed-topics/internal/hf"
	"github.com/henrybloomingdale/pubmed-topics/internal/output"
	"github.com/henrybloomingdale/pubmed-topics/internal/topics"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

var (
	flagTop        int
	flagHFToken    string
	flagHFModel    string
	flagWorkers    int
	flagConfigFile string
)

func init() {
	analyzeCmd.Flags().StringVar(&flagHFToken, "hf-token", "", "Hugging Face API token (or set HF_TOKEN env var)")
	analyzeCmd.Flags().StringVar(&flagHFModel, "hf-model", "", "Hugging Face NER model identifier")
	analyzeCmd.Flags().IntVar(&flagWorkers, "workers", 0, "Concurrent NER requests (default from config)")
	analyzeCmd.Flags().IntVar(&flagTop, "top", 10, "Rows per frequency table (0 = all)")
	analyzeCmd.Flags().StringVar(&flagConfigFile, "config", "", "YAML config file (stoplist, model, workers)")
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze <query>",
	Short: "Rank trending terms across search results",
	Long: `Search PubMed, extract named entities from every article title with a
hosted Hugging Face NER model, and rank the hottest single words, bigrams,
and trigrams across the result set.

Without a Hugging Face token the run still completes: every title degrades
to an empty entity list and the frequency tables come out empty.

Examples:
  # Top terms for a topic
  pubmed-topics analyze "glp-1 receptor agonists" --hf-token hf_xxx

  # Recent papers only, with CSV export
  pubmed-topics analyze "long covid" --year 2024-2025 --csv results.csv

  # JSON for agents
  pubmed-topics analyze "crispr base editing" --json

Environment:
  HF_TOKEN      - Hugging Face API token
  NCBI_API_KEY  - NCBI API key (higher rate limit)`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAnalyze,
}

func validateAnalyzeFlags() error {
	if flagWorkers < 0 {
		return fmt.Errorf("--workers must be >= 1")
	}
	if flagTop < 0 {
		return fmt.Errorf("--top must be >= 0")
	}
	return nil
}

// resolveCredential returns the Hugging Face token, flag first, env second.
// Empty is allowed: the pipeline degrades instead of failing.
func resolveCredential() string {
	if flagHFToken != "" {
		return flagHFToken
	}
	return os.Getenv("HF_TOKEN")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	if err := validateAnalyzeFlags(); err != nil {
		return err
	}

	cfg, err := config.Load(flagConfigFile)
	if err != nil {
		return err
	}
	if flagHFModel != "" {
		cfg.Model = flagHFModel
	}
	if flagWorkers > 0 {
		cfg.Workers = flagWorkers
	}

	ctx := cmd.Context()
	client := eutils.NewClientWithBase(newBaseClient(cfg.EutilsBaseURL))
	query := buildQuery(args)

	result, err := client.Search(ctx, query, searchOptions())
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	var articles []eutils.Article
	if len(result.IDs) > 0 {
		articles, err = client.Fetch(ctx, result.IDs)
		if err != nil {
			// Non-fatal: the analysis still runs, over an empty batch.
			fmt.Fprintf(os.Stderr, "Warning: could not fetch article details: %v\n", err)
			articles = nil
		}
	}

	credential := resolveCredential()
	if credential == "" {
		fmt.Fprintln(os.Stderr, "Warning: no Hugging Face token; entity extraction disabled (--hf-token or HF_TOKEN)")
	}

	ner := hf.NewClient(hf.WithModel(cfg.Model), hf.WithBaseURL(cfg.HFBaseURL))
	extractor := topics.NewExtractor(ner, topics.NewStoplist(cfg.Stoplist))

	pipeline := topics.NewPipeline(extractor, topics.Config{Workers: cfg.Workers})
	if isatty.IsTerminal(os.Stderr.Fd()) {
		pipeline.WithProgress(analyzeProgress())
	}

	analysis, err := pipeline.Run(ctx, articles, credential)
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	return output.FormatAnalysis(os.Stdout, analysis, outputCfg())
}

// analyzeProgress returns a callback that redraws an extraction counter in
// place and prints everything else as its own line. With Workers > 1 the
// counter may arrive out of order; the final count still lands on Total.
func analyzeProgress() topics.ProgressCallback {
	lastMsg := ""
	counting := false
	return func(u topics.ProgressUpdate) {
		if u.Message == "" && u.Total > 0 {
			fmt.Fprintf(os.Stderr, "\rExtracting entities %d/%d", u.Current, u.Total)
			counting = true
			return
		}
		if u.Message != "" && u.Message != lastMsg {
			if counting {
				fmt.Fprintln(os.Stderr)
				counting = false
			}
			lastMsg = u.Message
			fmt.Fprintln(os.Stderr, u.Message)
		}
	}
}
