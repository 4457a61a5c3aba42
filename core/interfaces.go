// Package core defines the domain model and pipeline interfaces for coursepack.
// Each stage of the pipeline is a clean, testable interface.
package core

import "context"

// CourseTree is the resolved structure of one course: an ordered sequence of
// learning paths, each an ordered sequence of modules. It is built once per
// run and read-only afterward.
type CourseTree struct {
	Slug  string
	Title string
	Paths []LearningPath
}

// LearningPath is an ordered group of modules. The order is the catalog's
// published order and determines output numbering.
type LearningPath struct {
	UID     string
	Title   string
	Modules []Module
}

// Module is an ordered group of units; exactly one assembled document
// corresponds to exactly one non-empty module.
type Module struct {
	UID   string
	Title string
	URL   string
	Units []UnitRef
}

// UnitRef points at a single fetchable unit page. Position is 1-based within
// the module.
type UnitRef struct {
	URL      string
	Position int
}

// FetchResult holds the raw HTML and response metadata from a fetch.
type FetchResult struct {
	URL        string
	StatusCode int
	HTML       string
}

// UnitContent is the outcome of fetching and extracting one unit. Failed
// units carry OK=false and a reason instead of a body; they are never
// dropped, they become placeholder sections downstream.
type UnitContent struct {
	Title     string
	Markdown  string
	SourceURL string
	OK        bool
	Err       string
}

// Section is one titled slice of an assembled document. Number is the unit's
// 1-based position. Unavailable marks placeholder sections for failed units.
type Section struct {
	Number      int
	Title       string
	Markdown    string
	SourceURL   string
	Unavailable bool
}

// AssembledDocument is the merged, ordered content of one module, ready for
// rendering. Section order equals the module's unit order; the section count
// always equals the unit count.
type AssembledDocument struct {
	Title     string
	SourceURL string
	Sections  []Section
}

// Fetcher retrieves raw HTML from a URL in a single timeout-bounded attempt.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (*FetchResult, error)
}

// Resolver turns a course URL or slug into the full CourseTree.
type Resolver interface {
	Resolve(ctx context.Context, courseURLOrSlug string) (*CourseTree, error)
}

// Extractor pulls the unit title and main content out of raw HTML, stripping
// site chrome. It must be deterministic with respect to its inputs.
type Extractor interface {
	Extract(html string, sourceURL string) (title string, body string, err error)
}

// Normalizer converts cleaned HTML into Markdown (the canonical format).
type Normalizer interface {
	Normalize(html string) (string, error)
}

// Renderer converts an AssembledDocument into a final output format. It must
// not reorder sections.
type Renderer interface {
	Render(doc AssembledDocument) ([]byte, error)
	// Extension returns the file extension for this renderer (e.g. ".pdf").
	Extension() string
}
