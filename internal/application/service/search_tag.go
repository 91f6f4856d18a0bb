package service

import (
	"regexp"
	"strings"
)

// NoResponse replaces an answer that is empty once the marker is removed.
const NoResponse = "No response."

// searchTagRe matches the first <SEARCH>query</SEARCH> marker in model output.
// Case-insensitive, payload may span lines, surrounding whitespace is ignored.
var searchTagRe = regexp.MustCompile(`(?is)<SEARCH>\s*(.*?)\s*</SEARCH>`)

// SearchDetection is what the loop learns from one model output.
type SearchDetection struct {
	// Query is set when the model asked for a search.
	Query string
	// Answer is the final text when no search is requested.
	Answer string
}

func (d SearchDetection) WantsSearch() bool {
	return d.Query != ""
}

// DetectSearch inspects output for a search marker. Only the first marker counts.
func DetectSearch(output string) SearchDetection {
	loc := searchTagRe.FindStringSubmatchIndex(output)
	if loc == nil {
		return SearchDetection{Answer: output}
	}

	query := strings.TrimSpace(output[loc[2]:loc[3]])
	if query != "" {
		return SearchDetection{Query: query}
	}

	answer := strings.TrimSpace(output[:loc[0]] + output[loc[1]:])
	if answer == "" {
		answer = NoResponse
	}
	return SearchDetection{Answer: answer}
}
