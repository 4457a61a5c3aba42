// Package render — PDF renderer.
// Converts an AssembledDocument into a styled PDF using gofpdf: document
// title, table of contents, then each section with a numbered heading and
// its Markdown body (headings, paragraphs, code blocks, lists).
//
// The renderer never reorders sections; the assembled order is final.
package render

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"coursepack/core"
)

// PDFRenderer renders an AssembledDocument as a PDF document.
type PDFRenderer struct{}

// NewPDFRenderer creates a PDFRenderer.
func NewPDFRenderer() *PDFRenderer {
	return &PDFRenderer{}
}

// Render converts the document into PDF bytes.
func (r *PDFRenderer) Render(doc core.AssembledDocument) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	// Module title.
	if doc.Title != "" {
		pdf.SetFont("Helvetica", "B", 18)
		pdf.MultiCell(0, 8, doc.Title, "", "L", false)
		pdf.Ln(4)
	}

	if doc.SourceURL != "" {
		pdf.SetFont("Helvetica", "I", 9)
		pdf.SetTextColor(100, 100, 100)
		pdf.MultiCell(0, 5, "Source: "+doc.SourceURL, "", "L", false)
		pdf.SetTextColor(0, 0, 0)
		pdf.Ln(6)
	}

	renderTOC(pdf, doc.Sections)

	for _, section := range doc.Sections {
		renderSection(pdf, section)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Extension returns the file extension for PDF output.
func (r *PDFRenderer) Extension() string {
	return ".pdf"
}

// renderTOC writes the table of contents: every section title, numbered, in
// assembled order.
func renderTOC(pdf *gofpdf.Fpdf, sections []core.Section) {
	if len(sections) == 0 {
		return
	}
	pdf.SetFont("Helvetica", "B", 13)
	pdf.MultiCell(0, 7, "Contents", "", "L", false)
	pdf.Ln(1)

	pdf.SetFont("Helvetica", "", 10)
	for _, s := range sections {
		pdf.MultiCell(0, 5, fmt.Sprintf("%d. %s", s.Number, s.Title), "", "L", false)
	}
	pdf.Ln(6)
}

// renderSection writes one numbered section heading, its source URL, and
// its Markdown body. Placeholder sections render grayed out.
func renderSection(pdf *gofpdf.Fpdf, section core.Section) {
	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 15)
	pdf.MultiCell(0, 9, fmt.Sprintf("%d. %s", section.Number, section.Title), "", "L", false)

	if section.SourceURL != "" {
		pdf.SetFont("Helvetica", "I", 9)
		pdf.SetTextColor(100, 100, 100)
		pdf.MultiCell(0, 5, section.SourceURL, "", "L", false)
		pdf.SetTextColor(0, 0, 0)
	}
	pdf.Ln(2)

	if section.Unavailable {
		pdf.SetFont("Helvetica", "I", 10)
		pdf.SetTextColor(140, 140, 140)
		pdf.MultiCell(0, 5, cleanInlineMarkdown(section.Markdown), "", "L", false)
		pdf.SetTextColor(0, 0, 0)
		pdf.Ln(2)
		return
	}

	renderMarkdown(pdf, section.Markdown)
}

// renderMarkdown writes Markdown line by line: headings with level-scaled
// fonts, fenced code with monospace and fill, list items, plain paragraphs.
func renderMarkdown(pdf *gofpdf.Fpdf, markdown string) {
	lines := strings.Split(markdown, "\n")
	inCodeBlock := false

	for _, line := range lines {
		// Toggle code block state.
		if strings.HasPrefix(strings.TrimSpace(line), "```") {
			inCodeBlock = !inCodeBlock
			pdf.Ln(2)
			continue
		}

		if inCodeBlock {
			pdf.SetFont("Courier", "", 9)
			pdf.SetFillColor(245, 245, 245)
			pdf.MultiCell(0, 4.5, line, "", "L", true)
			continue
		}

		if strings.TrimSpace(line) == "" {
			pdf.Ln(3)
			continue
		}

		// Headings. Section titles already use h-level 1, so body headings
		// are bumped one level down to keep the hierarchy readable.
		if strings.HasPrefix(line, "#") {
			level := 0
			for _, ch := range line {
				if ch == '#' {
					level++
				} else {
					break
				}
			}
			text := strings.TrimSpace(strings.TrimLeft(line, "# "))
			renderHeading(pdf, text, level+1)
			continue
		}

		// List items.
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "- ") || strings.HasPrefix(trimmed, "* ") {
			pdf.SetFont("Helvetica", "", 10)
			text := "• " + cleanInlineMarkdown(strings.TrimSpace(trimmed[2:]))
			pdf.MultiCell(0, 5, text, "", "L", false)
			continue
		}

		// Numbered list items.
		if numberedItemRegex.MatchString(trimmed) {
			pdf.SetFont("Helvetica", "", 10)
			pdf.MultiCell(0, 5, cleanInlineMarkdown(trimmed), "", "L", false)
			continue
		}

		// Regular paragraph text.
		pdf.SetFont("Helvetica", "", 10)
		pdf.MultiCell(0, 5, cleanInlineMarkdown(line), "", "L", false)
	}
}

var numberedItemRegex = regexp.MustCompile(`^\d+\.\s`)

// renderHeading sets the font size based on heading level and writes text.
func renderHeading(pdf *gofpdf.Fpdf, text string, level int) {
	sizes := map[int]float64{1: 18, 2: 15, 3: 13, 4: 12, 5: 11, 6: 10}
	size, ok := sizes[level]
	if !ok {
		size = 10
	}
	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", size)
	pdf.MultiCell(0, size*0.6, cleanInlineMarkdown(text), "", "L", false)
	pdf.Ln(2)
}

// cleanInlineMarkdown strips inline Markdown formatting for PDF rendering.
func cleanInlineMarkdown(text string) string {
	// Remove bold markers.
	text = strings.ReplaceAll(text, "**", "")
	text = strings.ReplaceAll(text, "__", "")
	// Remove italic markers (but not inside words like don't).
	re := regexp.MustCompile(`(?:^|\s)\*([^*]+)\*(?:\s|$)`)
	text = re.ReplaceAllString(text, " $1 ")
	// Remove inline code markers.
	text = regexp.MustCompile("`([^`]+)`").ReplaceAllString(text, "$1")
	// Remove image syntax entirely (before links, which it would match as).
	text = regexp.MustCompile(`!\[[^\]]*\]\([^)]+\)`).ReplaceAllString(text, "")
	// Remove link syntax, keep text.
	text = regexp.MustCompile(`\[([^\]]*)\]\([^)]+\)`).ReplaceAllString(text, "$1")
	return strings.TrimSpace(text)
}
