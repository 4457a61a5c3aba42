// Package extract — content locator strategies.
// A Locator knows one way of finding the main-content region of a page.
// Strategies are tried in priority order and the first match wins; new site
// layouts are supported by appending a strategy, not by branching deeper.
package extract

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	readability "github.com/go-shiori/go-readability"
)

// Locator finds the main-content region of a parsed page, or returns nil
// when its strategy does not apply.
type Locator interface {
	Name() string
	Locate(doc *goquery.Document, base *url.URL) *goquery.Selection
}

// selectorLocator matches a single CSS selector. It rejects regions with no
// visible text so the extractor can fall through to the next strategy.
type selectorLocator struct {
	name     string
	selector string
}

func (l selectorLocator) Name() string { return l.name }

func (l selectorLocator) Locate(doc *goquery.Document, _ *url.URL) *goquery.Selection {
	sel := doc.Find(l.selector)
	if sel.Length() == 0 {
		return nil
	}
	first := sel.First()
	if strings.TrimSpace(first.Text()) == "" {
		return nil
	}
	return first
}

// readabilityLocator runs go-readability over the whole page. It is the
// last-resort strategy for layouts no structural selector knows about.
type readabilityLocator struct{}

func (readabilityLocator) Name() string { return "readability" }

func (readabilityLocator) Locate(doc *goquery.Document, base *url.URL) *goquery.Selection {
	html, err := doc.Html()
	if err != nil {
		return nil
	}
	if base == nil {
		base = &url.URL{}
	}

	article, err := readability.FromReader(strings.NewReader(html), base)
	if err != nil || strings.TrimSpace(article.TextContent) == "" {
		return nil
	}

	frag, err := goquery.NewDocumentFromReader(strings.NewReader(article.Content))
	if err != nil {
		return nil
	}
	return frag.Find("body").First()
}

// DefaultLocators returns the built-in strategy list, most specific first.
func DefaultLocators() []Locator {
	return []Locator{
		selectorLocator{name: "main-column", selector: "[data-main-column]"},
		selectorLocator{name: "unit-inner", selector: "#unit-inner-section"},
		selectorLocator{name: "article", selector: "article"},
		selectorLocator{name: "main", selector: "main"},
		selectorLocator{name: "content-div", selector: "div.content"},
		readabilityLocator{},
	}
}
