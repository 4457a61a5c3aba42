// Package extract implements the Extractor interface.
// It isolates a unit's title and main content from a full HTML page by:
//  1. Finding the content region via the prioritized locator strategies
//  2. Removing chrome elements (navigation, breadcrumbs, feedback widgets)
//  3. Rewriting relative links and image sources to absolute URLs
//
// Extraction is pure with respect to its inputs: the same markup and URL
// always yield the same title and body.
package extract

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"coursepack/core"
)

// chromeSelectors are elements removed from the located content region.
// They carry navigation and page furniture, never unit content.
var chromeSelectors = []string{
	"script", "style", "noscript",
	"nav", "aside", "footer",
	".breadcrumbs", ".page-breadcrumbs",
	".feedback", ".feedback-verbatim",
	".next-section-link", ".prev-section-link",
	".font-size-sm.margin-top-md.display-none-print",
	".button.button-clear.button-primary.button-sm.inner-focus",
	`[class*="background-color-body"]`,
	".ads", ".advertisement",
}

// HTMLExtractor extracts unit content using a locator strategy list.
type HTMLExtractor struct {
	locators []Locator
}

// New creates an HTMLExtractor with the default locator strategies.
func New() *HTMLExtractor {
	return &HTMLExtractor{locators: DefaultLocators()}
}

// NewWithLocators creates an HTMLExtractor with a custom strategy list,
// tried in the given order.
func NewWithLocators(locators []Locator) *HTMLExtractor {
	return &HTMLExtractor{locators: locators}
}

// Extract returns the unit's title and cleaned content fragment. When no
// strategy matches (or the markup is unusable) it returns core.ErrNoContent;
// it never aborts the caller with anything harsher, losing one unit must not
// lose the module.
func (e *HTMLExtractor) Extract(markup string, sourceURL string) (string, string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return "", "", core.ErrNoContent
	}

	base, err := url.Parse(sourceURL)
	if err != nil {
		base = nil
	}

	for _, locator := range e.locators {
		content := locator.Locate(doc, base)
		if content == nil {
			continue
		}

		for _, sel := range chromeSelectors {
			content.Find(sel).Remove()
		}
		if base != nil {
			rewriteURLs(content, base)
		}

		body, err := goquery.OuterHtml(content)
		if err != nil || strings.TrimSpace(content.Text()) == "" {
			continue
		}
		return extractTitle(content, doc), body, nil
	}

	return "", "", core.ErrNoContent
}

// extractTitle reads the unit title from the content region's first h1,
// falling back to the page h1, then the document title.
func extractTitle(content *goquery.Selection, doc *goquery.Document) string {
	if h1 := content.Find("h1").First(); h1.Length() > 0 {
		if t := strings.TrimSpace(h1.Text()); t != "" {
			return t
		}
	}
	if h1 := doc.Find("h1").First(); h1.Length() > 0 {
		if t := strings.TrimSpace(h1.Text()); t != "" {
			return t
		}
	}
	if t := strings.TrimSpace(doc.Find("title").First().Text()); t != "" {
		return t
	}
	return "Untitled"
}

// rewriteURLs makes a[href], img[src], and img[srcset] absolute so the
// assembled document stays usable standalone.
func rewriteURLs(content *goquery.Selection, base *url.URL) {
	content.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		href, _ := s.Attr("href")
		if resolved := resolveURL(href, base); resolved != "" {
			s.SetAttr("href", resolved)
		}
	})

	content.Find("img").Each(func(_ int, s *goquery.Selection) {
		if src, ok := s.Attr("src"); ok {
			if resolved := resolveURL(src, base); resolved != "" {
				s.SetAttr("src", resolved)
			}
		}
		if srcset, ok := s.Attr("srcset"); ok {
			s.SetAttr("srcset", resolveSrcset(srcset, base))
		}
	})
}

// resolveSrcset resolves the URL candidate of each srcset entry, keeping
// the density/width descriptors intact.
func resolveSrcset(srcset string, base *url.URL) string {
	items := strings.Split(srcset, ",")
	resolved := make([]string, 0, len(items))
	for _, item := range items {
		parts := strings.Fields(strings.TrimSpace(item))
		if len(parts) == 0 {
			continue
		}
		if r := resolveURL(parts[0], base); r != "" {
			parts[0] = r
		}
		resolved = append(resolved, strings.Join(parts, " "))
	}
	return strings.Join(resolved, ", ")
}

// resolveURL resolves a potentially relative URL against a base.
// Non-navigable schemes are left alone.
func resolveURL(ref string, base *url.URL) string {
	if strings.HasPrefix(ref, "mailto:") || strings.HasPrefix(ref, "javascript:") ||
		strings.HasPrefix(ref, "tel:") || strings.HasPrefix(ref, "data:") {
		return ""
	}
	parsed, err := url.Parse(ref)
	if err != nil {
		return ""
	}
	return base.ResolveReference(parsed).String()
}
