package eutils

import (
	"context"
	"encoding/xml"
	"fmt"
	"net/url"
	"strings"
)

// ArticleURLPrefix is the canonical PubMed article URL prefix.
const ArticleURLPrefix = "https://pubmed.ncbi.nlm.nih.gov/"

// DateUnknown is the publication date sentinel used when neither a year nor
// a Medline date is present in the record.
const DateUnknown = "N/A"

// XML structures for parsing PubMed EFetch responses. Only the fields the
// topic pipeline consumes are mapped.

type pubmedArticleSet struct {
	XMLName  xml.Name        `xml:"PubmedArticleSet"`
	Articles []pubmedArticle `xml:"PubmedArticle"`
}

type pubmedArticle struct {
	Citation medlineCitation `xml:"MedlineCitation"`
}

type medlineCitation struct {
	PMID    xmlPMID    `xml:"PMID"`
	Article xmlArticle `xml:"Article"`
}

type xmlPMID struct {
	Value string `xml:",chardata"`
}

type xmlArticle struct {
	Journal      xmlJournal `xml:"Journal"`
	ArticleTitle string     `xml:"ArticleTitle"`
}

type xmlJournal struct {
	Title        string          `xml:"Title"`
	JournalIssue xmlJournalIssue `xml:"JournalIssue"`
}

type xmlJournalIssue struct {
	PubDate xmlPubDate `xml:"PubDate"`
}

type xmlPubDate struct {
	Year        string `xml:"Year"`
	MedlineDate string `xml:"MedlineDate"`
}

// Fetch retrieves article metadata for the given PMIDs.
func (c *Client) Fetch(ctx context.Context, pmids []string) ([]Article, error) {
	if len(pmids) == 0 {
		return nil, fmt.Errorf("at least one PMID is required")
	}

	params := url.Values{}
	params.Set("db", "pubmed")
	params.Set("id", strings.Join(pmids, ","))
	params.Set("rettype", "xml")
	params.Set("retmode", "xml")

	body, err := c.DoGet(ctx, "efetch.fcgi", params)
	if err != nil {
		return nil, fmt.Errorf("fetch request failed: %w", err)
	}

	return parseArticles(body)
}

// parseArticles parses PubMed XML into Article structs.
func parseArticles(data []byte) ([]Article, error) {
	var articleSet pubmedArticleSet
	if err := xml.Unmarshal(data, &articleSet); err != nil {
		return nil, fmt.Errorf("parsing PubMed XML: %w", err)
	}

	articles := make([]Article, 0, len(articleSet.Articles))
	for _, pa := range articleSet.Articles {
		articles = append(articles, convertArticle(pa))
	}

	return articles, nil
}

func convertArticle(pa pubmedArticle) Article {
	mc := pa.Citation
	xa := mc.Article

	a := Article{
		PMID:    mc.PMID.Value,
		Title:   xa.ArticleTitle,
		Journal: xa.Journal.Title,
		Date:    publicationDate(xa.Journal.JournalIssue.PubDate),
	}
	if a.PMID != "" {
		a.Link = ArticleURLPrefix + a.PMID + "/"
	}
	return a
}

// publicationDate prefers the structured year, falls back to the free-form
// Medline date, and finally to the unknown sentinel.
func publicationDate(d xmlPubDate) string {
	if y := strings.TrimSpace(d.Year); y != "" {
		return y
	}
	if m := strings.TrimSpace(d.MedlineDate); m != "" {
		return m
	}
	return DateUnknown
}
