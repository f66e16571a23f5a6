package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/henrybloomingdale/pubmed-topics/internal/eutils"
	"github.com/henrybloomingdale/pubmed-topics/internal/topics"
)

func sampleResult() *topics.Result {
	return &topics.Result{
		Articles: []eutils.Article{
			{
				PMID:     "38000001",
				Title:    "Type 2 diabetes and insulin resistance",
				Link:     "https://pubmed.ncbi.nlm.nih.gov/38000001/",
				Journal:  "Diabetes Care",
				Date:     "2024",
				Entities: []string{"Type 2 diabetes", "insulin resistance"},
			},
			{
				PMID:    "38000002",
				Title:   "Thyroid hormone signalling",
				Journal: "Endocrine Reviews",
				Date:    "N/A",
			},
		},
		Unigrams:           map[string]int{"Type 2 diabetes": 1, "insulin resistance": 1},
		Bigrams:            map[string]int{"type2diabetes insulinresistance": 1},
		Trigrams:           map[string]int{},
		ExtractionFailures: 1,
	}
}

func TestFormatSearchJSON(t *testing.T) {
	result := &eutils.SearchResult{
		Count:            42,
		IDs:              []string{"123", "456", "789"},
		QueryTranslation: "test query",
	}

	var buf bytes.Buffer
	if err := FormatSearchResult(&buf, result, OutputConfig{JSON: true}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var parsed map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &parsed); err != nil {
		t.Fatalf("output is not valid JSON: %v\nOutput: %s", err, buf.String())
	}

	if count, ok := parsed["count"].(float64); !ok || int(count) != 42 {
		t.Errorf("expected count 42, got %v", parsed["count"])
	}
	ids, ok := parsed["ids"].([]interface{})
	if !ok || len(ids) != 3 {
		t.Errorf("expected 3 ids, got %v", parsed["ids"])
	}
}

func TestFormatSearchPlain(t *testing.T) {
	result := &eutils.SearchResult{
		Count:            42,
		IDs:              []string{"123", "456"},
		QueryTranslation: "test query",
	}

	var buf bytes.Buffer
	if err := FormatSearchResult(&buf, result, OutputConfig{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"42", "123", "456"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q", want)
		}
	}
}

func TestFormatSearchEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := FormatSearchResult(&buf, &eutils.SearchResult{IDs: []string{}}, OutputConfig{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(buf.String(), "No results") {
		t.Error("expected 'No results' message")
	}
}

func TestFormatArticlesPlain(t *testing.T) {
	articles := sampleResult().Articles

	var buf bytes.Buffer
	if err := FormatArticles(&buf, articles, OutputConfig{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"38000001", "Diabetes Care", "2024", "Type 2 diabetes; insulin resistance"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q, got:\n%s", want, out)
		}
	}
}

func TestFormatArticlesEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := FormatArticles(&buf, nil, OutputConfig{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(buf.String(), "No articles") {
		t.Error("expected 'No articles' message")
	}
}

func TestFormatAnalysisJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := FormatAnalysis(&buf, sampleResult(), OutputConfig{JSON: true}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var parsed map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &parsed); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}

	if _, ok := parsed["unigrams"]; !ok {
		t.Error("expected unigrams key in JSON output")
	}
	if _, ok := parsed["trigrams"]; !ok {
		t.Error("expected trigrams key in JSON output")
	}
}

func TestFormatAnalysisPlain(t *testing.T) {
	var buf bytes.Buffer
	if err := FormatAnalysis(&buf, sampleResult(), OutputConfig{Top: 10}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"Analyzed 2 articles", "degraded", "Top single words", "Top bigrams", "Top trigrams", "(none)"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q, got:\n%s", want, out)
		}
	}
}

func TestFormatAnalysisHuman(t *testing.T) {
	var buf bytes.Buffer
	if err := FormatAnalysis(&buf, sampleResult(), OutputConfig{Human: true, Top: 5}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"Analyzed 2 articles", "38000001", "Single words", "Bigrams", "Trigrams"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q", want)
		}
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("short", 10); got != "short" {
		t.Errorf("expected no truncation, got %q", got)
	}
	got := truncate("a very long title that exceeds the limit", 10)
	if len(got) > 12 { // 9 bytes + multi-byte ellipsis
		t.Errorf("truncated string too long: %q", got)
	}
	if !strings.HasSuffix(got, "…") {
		t.Errorf("expected ellipsis suffix, got %q", got)
	}
}
