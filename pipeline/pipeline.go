// Package pipeline orchestrates the full run: resolve the course tree, then
// fetch → extract → normalize every unit and assemble one document per
// module, strictly sequentially and in catalog order.
//
// Failure policy: catalog-level failures abort the run before any output;
// unit-level failures are contained to a placeholder section and a logged
// warning. Nothing crosses component boundaries as control flow — every unit
// produces a UnitContent value, good or bad.
package pipeline

import (
	"context"
	"log/slog"

	"coursepack/core"
	"coursepack/core/assemble"
	"coursepack/core/output"
)

// Result pairs one assembled document with its relative output path.
type Result struct {
	Path string
	Doc  core.AssembledDocument
}

// Pipeline walks a course tree and emits one assembled document per
// non-empty module.
type Pipeline struct {
	resolver   core.Resolver
	fetcher    core.Fetcher
	extractor  core.Extractor
	normalizer core.Normalizer
	assembler  *assemble.Assembler
	log        *slog.Logger
}

// New creates a Pipeline from its stage implementations.
func New(resolver core.Resolver, fetcher core.Fetcher, extractor core.Extractor, normalizer core.Normalizer, log *slog.Logger) *Pipeline {
	if log == nil {
		log = slog.Default()
	}
	return &Pipeline{
		resolver:   resolver,
		fetcher:    fetcher,
		extractor:  extractor,
		normalizer: normalizer,
		assembler:  assemble.New(),
		log:        log,
	}
}

// Run resolves the course and produces the assembled documents in
// course → path → module order. Resolution failures return before any
// fetching; per-unit failures never abort the run.
func (p *Pipeline) Run(ctx context.Context, courseURLOrSlug string) ([]Result, error) {
	tree, err := p.resolver.Resolve(ctx, courseURLOrSlug)
	if err != nil {
		return nil, err
	}

	p.log.Info("course resolved",
		"course", tree.Slug,
		"learning_paths", len(tree.Paths))

	var results []Result
	for pi, path := range tree.Paths {
		if len(path.Modules) == 0 {
			p.log.Info("learning path has no modules, skipping", "path", path.Title)
			continue
		}

		for mi, module := range path.Modules {
			if len(module.Units) == 0 {
				p.log.Info("module has no units, skipping", "module", module.Title)
				continue
			}

			p.log.Info("processing module",
				"path", path.Title,
				"module", module.Title,
				"units", len(module.Units))

			contents := p.collectUnits(ctx, module)
			doc := p.assembler.Assemble(module, contents)

			results = append(results, Result{
				Path: output.ModulePath(pi+1, path.Title, mi+1, module.Title),
				Doc:  doc,
			})
		}
	}

	return results, nil
}

// collectUnits fetches and extracts every unit of the module in order. The
// returned slice is positionally aligned with module.Units; failed units
// carry OK=false with the reason.
func (p *Pipeline) collectUnits(ctx context.Context, module core.Module) []core.UnitContent {
	contents := make([]core.UnitContent, 0, len(module.Units))
	for _, unit := range module.Units {
		contents = append(contents, p.processUnit(ctx, unit))
	}
	return contents
}

// processUnit runs one unit through fetch → extract → normalize. Any
// failure is folded into the result value, never returned as an error.
func (p *Pipeline) processUnit(ctx context.Context, unit core.UnitRef) core.UnitContent {
	fail := func(stage string, err error) core.UnitContent {
		p.log.Warn("unit degraded to placeholder",
			"url", unit.URL,
			"stage", stage,
			"error", err)
		return core.UnitContent{SourceURL: unit.URL, Err: err.Error()}
	}

	result, err := p.fetcher.Fetch(ctx, unit.URL)
	if err != nil {
		return fail("fetch", err)
	}

	title, body, err := p.extractor.Extract(result.HTML, unit.URL)
	if err != nil {
		return fail("extract", err)
	}

	markdown, err := p.normalizer.Normalize(body)
	if err != nil {
		return fail("normalize", err)
	}

	return core.UnitContent{
		Title:     title,
		Markdown:  markdown,
		SourceURL: unit.URL,
		OK:        true,
	}
}
