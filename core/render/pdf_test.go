package render

import (
	"bytes"
	"testing"

	"coursepack/core"
)

func TestRender_ProducesPDF(t *testing.T) {
	doc := core.AssembledDocument{
		Title:     "Module A",
		SourceURL: "https://site.test/mod-a/",
		Sections: []core.Section{
			{Number: 1, Title: "Intro", Markdown: "# Intro\n\nSome **bold** text.\n\n- item one\n- item two", SourceURL: "u1"},
			{Number: 2, Title: "Unit 2 (unavailable)", Markdown: "Content unavailable: status 503", SourceURL: "u2", Unavailable: true},
			{Number: 3, Title: "Code", Markdown: "```\nfmt.Println(\"hi\")\n```", SourceURL: "u3"},
		},
	}

	data, err := NewPDFRenderer().Render(doc)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Errorf("output does not look like a PDF")
	}
}

func TestExtension(t *testing.T) {
	if ext := NewPDFRenderer().Extension(); ext != ".pdf" {
		t.Errorf("Extension = %q", ext)
	}
}

func TestCleanInlineMarkdown(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"**bold** and `code`", "bold and code"},
		{"[link text](https://x.test)", "link text"},
		{"![alt](https://x.test/img.png)", ""},
		{"plain", "plain"},
	}
	for _, c := range cases {
		if got := cleanInlineMarkdown(c.in); got != c.want {
			t.Errorf("cleanInlineMarkdown(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
