package offline

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/poiesic/civicmind/ai"
	"github.com/poiesic/civicmind/core"
)

// WebSearcher implements ai.WebSearcher with a fixed table of official
// civic portals. It produces deterministic, network-free results so the
// document strategy keeps its web-sources sub-list in offline
// deployments and demos.
type WebSearcher struct {
	logger *slog.Logger
}

// NewWebSearcher creates an offline web searcher.
//
// Returns ai.WebSearcher interface to enforce abstraction.
func NewWebSearcher() ai.WebSearcher {
	return &WebSearcher{
		logger: slog.Default().With("component", "offline-websearch"),
	}
}

// portal is one entry of the fixed official-source table.
type portal struct {
	title   string
	url     string
	snippet string
	source  string
	date    string
}

var portals = []portal{
	{
		title:   "Chennai Corporation Latest Updates",
		url:     "https://chennaicorporation.gov.in/latest-updates",
		snippet: "Recent updates on %s in Chennai. New initiatives launched for better civic services.",
		source:  "Chennai Corporation Official",
		date:    "2025-10-04",
	},
	{
		title:   "CMWSSB News: %s Services",
		url:     "https://cmwssb.tn.gov.in/news",
		snippet: "Chennai Metro Water board announces improvements in %s related services across the city.",
		source:  "CMWSSB Official",
		date:    "2025-10-03",
	},
	{
		title:   "Tamil Nadu Government Portal",
		url:     "https://tn.gov.in/citizen-services",
		snippet: "Official government guidelines and procedures for %s in Tamil Nadu.",
		source:  "TN Government",
		date:    "2025-10-02",
	},
}

// Search returns up to limit portal entries with the query interpolated
// into titles and snippets. It never fails.
func (w *WebSearcher) Search(ctx context.Context, query string, limit int) ([]core.WebResult, error) {
	if limit > len(portals) {
		limit = len(portals)
	}
	if limit < 1 {
		return nil, nil
	}

	w.logger.Debug("serving offline web results", "query", query, "limit", limit)

	results := make([]core.WebResult, 0, limit)
	for _, p := range portals[:limit] {
		results = append(results, core.WebResult{
			Title:   expand(p.title, query),
			URL:     p.url,
			Snippet: expand(p.snippet, query),
			Source:  p.source,
			Date:    p.date,
		})
	}
	return results, nil
}

func expand(template, query string) string {
	if !strings.Contains(template, "%s") {
		return template
	}
	return fmt.Sprintf(template, query)
}
