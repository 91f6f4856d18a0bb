package tavily

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestCleanSnippet(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"Plain text", "Cloudy, 15C", "Cloudy, 15C"},
		{"Empty", "", ""},
		{"Tags removed", "<p>Hello <b>world</b></p>", "Hello world"},
		{"Entities decoded in markup", "<p>Tom &amp; Jerry &quot;live&quot;</p>", `Tom & Jerry "live"`},
		{"Entities kept in plain text", "Tom &amp; Jerry", "Tom &amp; Jerry"},
		{"Script dropped", "before<script>alert(1)</script>after", "before after"},
		{"Comment dropped", "a<!-- hidden -->b", "ab"},
		{"Whitespace collapsed", "  line one\n\n\tline two  ", "line one line two"},
		{"Less-than in text", "3 < 5 is true", "3 < 5 is true"},
		{"Comparison without spaces", "Note if a<b and c>d then ok.", "Note if a<b and c>d then ok."},
		{"Generic type", "std::vector<int> v;", "std::vector<int> v;"},
		{"Tag name in prose", "How to use the <script> tag", "How to use the <script> tag"},
		{"Closing slash not followed by a letter", "x </ 3 and <y>", "x </ 3 and <y>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cleanSnippet(tt.in))
		})
	}
}

func TestCleanSnippet_Truncates(t *testing.T) {
	long := strings.Repeat("é", maxSnippetLen+50)

	got := cleanSnippet(long)

	assert.Equal(t, maxSnippetLen+1, utf8.RuneCountInString(got))
	assert.True(t, strings.HasSuffix(got, "…"))
}
