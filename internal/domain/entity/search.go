package entity

import (
	"fmt"
	"strings"
)

const NoSearchResults = "No search results found."

type SearchItem struct {
	Title   string
	URL     string
	Snippet string
}

type SearchResult struct {
	QuickAnswer string
	Items       []SearchItem
}

// Format renders the result as the text block injected into the conversation.
func (r SearchResult) Format() string {
	var sb strings.Builder
	if r.QuickAnswer != "" {
		fmt.Fprintf(&sb, "Quick answer: %s\n\n", r.QuickAnswer)
	}

	for i, item := range r.Items {
		if i > 0 {
			sb.WriteString("\n\n")
		}
		fmt.Fprintf(&sb, "%d. %s\n   URL: %s\n   %s", i+1, item.Title, item.URL, item.Snippet)
	}

	if sb.Len() == 0 {
		return NoSearchResults
	}
	return sb.String()
}
