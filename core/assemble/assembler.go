// Package assemble merges a module's per-unit contents into one
// AssembledDocument. The merge is strictly positional: section i always
// corresponds to unit i, and a failed unit becomes a visible placeholder at
// its position. Failures degrade content, never structure.
package assemble

import (
	"fmt"

	"coursepack/core"
)

// Assembler builds AssembledDocuments from unit contents.
type Assembler struct{}

// New creates an Assembler.
func New() *Assembler {
	return &Assembler{}
}

// Assemble merges contents into one document for the module. contents must
// be in the module's unit order; the returned document has exactly
// len(contents) sections in that same order.
func (a *Assembler) Assemble(module core.Module, contents []core.UnitContent) core.AssembledDocument {
	doc := core.AssembledDocument{
		Title:     module.Title,
		SourceURL: module.URL,
		Sections:  make([]core.Section, 0, len(contents)),
	}

	for i, content := range contents {
		number := i + 1
		if !content.OK {
			doc.Sections = append(doc.Sections, placeholderSection(number, content))
			continue
		}
		doc.Sections = append(doc.Sections, core.Section{
			Number:    number,
			Title:     content.Title,
			Markdown:  content.Markdown,
			SourceURL: content.SourceURL,
		})
	}

	return doc
}

// placeholderSection stands in for a unit whose content could not be
// obtained. The reason stays visible in the document rather than vanishing
// into logs.
func placeholderSection(number int, content core.UnitContent) core.Section {
	reason := content.Err
	if reason == "" {
		reason = "unknown error"
	}
	return core.Section{
		Number:      number,
		Title:       fmt.Sprintf("Unit %d (unavailable)", number),
		Markdown:    fmt.Sprintf("Content unavailable: %s\n\nSource: %s", reason, content.SourceURL),
		SourceURL:   content.SourceURL,
		Unavailable: true,
	}
}
