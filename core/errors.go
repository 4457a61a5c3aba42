package core

import (
	"errors"
	"fmt"
)

// ErrNoContent is returned by extraction when the markup parsed but no
// content locator matched. Recovered per unit, same as a fetch failure.
var ErrNoContent = errors.New("no content region matched")

// CatalogUnavailableError reports a failed catalog query (network error,
// timeout, non-2xx, or a malformed response). Fatal: without the catalog
// there is no meaningful partial tree.
type CatalogUnavailableError struct {
	Query string
	Err   error
}

func (e *CatalogUnavailableError) Error() string {
	return fmt.Sprintf("catalog unavailable (%s): %v", e.Query, e.Err)
}

func (e *CatalogUnavailableError) Unwrap() error { return e.Err }

// ResolutionError reports an identifier the catalog answered for but could
// not match to any record. Fatal, and raised before any page fetching.
type ResolutionError struct {
	Kind string // "course", "learningPath", "module"
	ID   string
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("%s %q not found in catalog", e.Kind, e.ID)
}

// FetchError reports a single failed page fetch: connection error, timeout,
// or non-2xx status. Status is zero when no response was received.
// Recovered: the unit becomes a placeholder section.
type FetchError struct {
	URL    string
	Status int
	Err    error
}

func (e *FetchError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("fetching %s: status %d", e.URL, e.Status)
	}
	return fmt.Sprintf("fetching %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }
