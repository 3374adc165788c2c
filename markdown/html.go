package markdown

import (
	"io"

	"golang.org/x/net/html"
)

// anchorHrefs tokenizes an HTML fragment and returns the href of every <a>
// tag in it. Fragments are often partial (a lone opening tag), so tokenizer
// errors simply end the scan.
func anchorHrefs(body io.Reader) []string {
	tokenizer := html.NewTokenizer(body)
	var hrefs []string

	for {
		switch tokenizer.Next() {
		case html.ErrorToken:
			return hrefs
		case html.StartTagToken, html.SelfClosingTagToken:
			token := tokenizer.Token()
			if token.Data != "a" {
				continue
			}
			for _, attr := range token.Attr {
				if attr.Key == "href" {
					hrefs = append(hrefs, attr.Val)
				}
			}
		}
	}
}
