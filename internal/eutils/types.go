// Package eutils provides a client for NCBI E-utilities API.
package eutils

// SearchResult represents the result of an ESearch query.
type SearchResult struct {
	Count            int      `json:"count"`
	IDs              []string `json:"ids"`
	QueryTranslation string   `json:"query_translation"`
}

// Article represents a PubMed article reduced to the fields the topic
// analysis needs. Entities is empty until the extraction pipeline has run;
// it keeps the model's token order and is never deduplicated.
type Article struct {
	PMID     string   `json:"pmid"`
	Title    string   `json:"title"`
	Link     string   `json:"link"`
	Journal  string   `json:"journal"`
	Date     string   `json:"date"`
	Entities []string `json:"entities,omitempty"`
}

// SearchOptions configures a search query.
type SearchOptions struct {
	Limit   int    `json:"limit,omitempty"`
	Sort    string `json:"sort,omitempty"`
	MinDate string `json:"min_date,omitempty"`
	MaxDate string `json:"max_date,omitempty"`
}
