package tavily

import (
	"strings"

	"golang.org/x/net/html"
)

const maxSnippetLen = 2000

var skippedTags = []string{"script", "style", "noscript", "svg", "iframe", "head"}

// cleanSnippet collapses whitespace and caps the length. Content that carries
// real markup (a closing tag or a comment) is first reduced to its text; plain
// text such as "a<b" or "vector<int>" is kept as is.
func cleanSnippet(raw string) string {
	if !hasMarkup(raw) {
		return truncateSnippet(collapseSpace(raw), maxSnippetLen)
	}
	return truncateSnippet(collapseSpace(stripTags(raw)), maxSnippetLen)
}

func hasMarkup(s string) bool {
	if strings.Contains(s, "<!--") {
		return true
	}
	for i := strings.Index(s, "</"); i >= 0; {
		rest := s[i+2:]
		if rest != "" && isASCIILetter(rest[0]) {
			return true
		}
		next := strings.Index(rest, "</")
		if next < 0 {
			break
		}
		i += 2 + next
	}
	return false
}

func isASCIILetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func stripTags(raw string) string {
	var sb strings.Builder
	tokenizer := html.NewTokenizer(strings.NewReader(raw))
	skipDepth := 0

	for {
		switch tokenizer.Next() {
		case html.ErrorToken:
			return sb.String()
		case html.StartTagToken:
			name, _ := tokenizer.TagName()
			if isOneOf(string(name), skippedTags...) {
				skipDepth++
			}
			sb.WriteByte(' ')
		case html.EndTagToken:
			name, _ := tokenizer.TagName()
			if isOneOf(string(name), skippedTags...) && skipDepth > 0 {
				skipDepth--
			}
			sb.WriteByte(' ')
		case html.SelfClosingTagToken:
			sb.WriteByte(' ')
		case html.TextToken:
			if skipDepth == 0 {
				sb.Write(tokenizer.Text())
			}
		}
	}
}

// truncateSnippet cuts s to at most maxRunes runes.
func truncateSnippet(s string, maxRunes int) string {
	runes := []rune(s)
	if len(runes) <= maxRunes {
		return s
	}
	return string(runes[:maxRunes]) + "…"
}

func isOneOf(s string, candidates ...string) bool {
	for _, c := range candidates {
		if s == c {
			return true
		}
	}
	return false
}
