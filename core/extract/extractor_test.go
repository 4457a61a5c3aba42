package extract

import (
	"errors"
	"net/url"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"

	"coursepack/core"
)

const unitPage = `<!DOCTYPE html>
<html><head><title>Doc Title | Site</title></head>
<body>
<nav><a href="/home">Home</a></nav>
<main>
  <div class="breadcrumbs"><a href="/course">Course</a></div>
  <h1>Introduction to Widgets</h1>
  <p>Widgets are <a href="/docs/widgets">documented</a> elsewhere.</p>
  <img src="media/widget.png" srcset="media/widget.png 1x, media/widget@2x.png 2x">
  <div class="next-section-link"><a href="2-setup">Next unit</a></div>
</main>
<footer>footer chrome</footer>
</body></html>`

func TestExtract_MainRegionAndChromeRemoval(t *testing.T) {
	title, body, err := New().Extract(unitPage, "https://site.test/mod/1-intro")
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if title != "Introduction to Widgets" {
		t.Errorf("title = %q", title)
	}
	if !strings.Contains(body, "Widgets are") {
		t.Errorf("body lost paragraph content: %q", body)
	}
	for _, gone := range []string{"breadcrumbs", "Next unit", "footer chrome", "<nav"} {
		if strings.Contains(body, gone) {
			t.Errorf("chrome %q survived extraction", gone)
		}
	}
}

func TestExtract_RewritesRelativeURLs(t *testing.T) {
	_, body, err := New().Extract(unitPage, "https://site.test/mod/1-intro")
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if !strings.Contains(body, `href="https://site.test/docs/widgets"`) {
		t.Errorf("link not rewritten: %q", body)
	}
	if !strings.Contains(body, `src="https://site.test/mod/media/widget.png"`) {
		t.Errorf("img src not rewritten: %q", body)
	}
	if !strings.Contains(body, `https://site.test/mod/media/widget@2x.png 2x`) {
		t.Errorf("srcset not rewritten: %q", body)
	}
}

func TestExtract_FallsThroughSelectorList(t *testing.T) {
	page := `<html><body><div class="content"><h1>Fallback</h1><p>via div.content</p></div></body></html>`
	title, body, err := New().Extract(page, "https://site.test/x")
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if title != "Fallback" || !strings.Contains(body, "via div.content") {
		t.Errorf("fallback locator not used: title=%q body=%q", title, body)
	}
}

func TestExtract_TitleFallsBackToDocumentTitle(t *testing.T) {
	page := `<html><head><title>Only The Doc Title</title></head>
<body><main><p>content without headings</p></main></body></html>`
	title, _, err := New().Extract(page, "https://site.test/x")
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if title != "Only The Doc Title" {
		t.Errorf("title = %q", title)
	}
}

func TestExtract_NoContentRegion(t *testing.T) {
	_, _, err := New().Extract("<html><body></body></html>", "https://site.test/x")
	if !errors.Is(err, core.ErrNoContent) {
		t.Fatalf("expected ErrNoContent, got %v", err)
	}
}

func TestExtract_Deterministic(t *testing.T) {
	e := New()
	t1, b1, err1 := e.Extract(unitPage, "https://site.test/mod/1-intro")
	t2, b2, err2 := e.Extract(unitPage, "https://site.test/mod/1-intro")
	if err1 != nil || err2 != nil {
		t.Fatalf("Extract: %v / %v", err1, err2)
	}
	if t1 != t2 || b1 != b2 {
		t.Errorf("extraction not deterministic")
	}
}

// stubLocator always matches a fixed selector, recording that it ran.
type stubLocator struct {
	selector string
	ran      *bool
}

func (l stubLocator) Name() string { return "stub" }

func (l stubLocator) Locate(doc *goquery.Document, _ *url.URL) *goquery.Selection {
	*l.ran = true
	sel := doc.Find(l.selector)
	if sel.Length() == 0 {
		return nil
	}
	return sel.First()
}

func TestExtract_LocatorPriorityOrder(t *testing.T) {
	var firstRan, secondRan bool
	e := NewWithLocators([]Locator{
		stubLocator{selector: "#special", ran: &firstRan},
		stubLocator{selector: "main", ran: &secondRan},
	})

	page := `<html><body><div id="special"><p>special wins</p></div><main><p>main loses</p></main></body></html>`
	_, body, err := e.Extract(page, "https://site.test/x")
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if !firstRan {
		t.Errorf("first locator never ran")
	}
	if secondRan {
		t.Errorf("second locator ran despite earlier match")
	}
	if !strings.Contains(body, "special wins") {
		t.Errorf("wrong region extracted: %q", body)
	}
}
