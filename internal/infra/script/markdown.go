// Where: cli/internal/infra/script/markdown.go
// What: HTML anchor to inline-link rewriting.
// Why: Feed help texts embed HTML links; the CLI shows markdown-style text.
package script

import "regexp"

var anchorPattern = regexp.MustCompile(`(?i)<a[^>]*href=['"]([^'"]*)['"][^>]*>([^<]*)</a>`)

// ReplaceHTMLLinkWithMarkdown rewrites the first <a href="URL">TEXT</a> as [TEXT](URL).
func ReplaceHTMLLinkWithMarkdown(text string) string {
	loc := anchorPattern.FindStringSubmatchIndex(text)
	if loc == nil {
		return text
	}
	url := text[loc[2]:loc[3]]
	label := text[loc[4]:loc[5]]
	return text[:loc[0]] + "[" + label + "](" + url + ")" + text[loc[1]:]
}
