// Package catalog queries the course catalog API and resolves course
// structure. The catalog is the single source of truth for ordering:
// responses are consumed in published order and never re-sorted.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"coursepack/core"
)

// Client performs read-only catalog queries. Catalog queries aggregate more
// data than unit fetches, so the client carries its own, larger timeout.
type Client struct {
	baseURL   string
	userAgent string
	client    *http.Client
}

// NewClient creates a catalog Client for the given API base URL.
func NewClient(baseURL string, timeout time.Duration, userAgent string) *Client {
	return &Client{
		baseURL:   baseURL,
		userAgent: userAgent,
		client:    &http.Client{Timeout: timeout},
	}
}

// CourseRecord is the catalog's course entry: ordered learning-path uids.
type CourseRecord struct {
	UID           string   `json:"uid"`
	Title         string   `json:"title"`
	LearningPaths []string `json:"learning_paths"`
}

// PathRecord is the catalog's learning-path entry: ordered module uids.
type PathRecord struct {
	UID     string   `json:"uid"`
	Title   string   `json:"title"`
	Modules []string `json:"modules"`
}

// UnitRecord carries one unit page URL.
type UnitRecord struct {
	URL string `json:"url"`
}

// ModuleRecord is the catalog's module entry, units in published order.
type ModuleRecord struct {
	UID   string       `json:"uid"`
	Title string       `json:"title"`
	URL   string       `json:"url"`
	Units []UnitRecord `json:"units"`
}

// Course looks up one course record by its slug.
func (c *Client) Course(ctx context.Context, slug string) (*CourseRecord, error) {
	var envelope struct {
		Courses []CourseRecord `json:"courses"`
	}
	if err := c.get(ctx, "courses", slug, &envelope); err != nil {
		return nil, err
	}
	if len(envelope.Courses) == 0 {
		return nil, &core.ResolutionError{Kind: "course", ID: slug}
	}
	return &envelope.Courses[0], nil
}

// LearningPath looks up one learning-path record by uid.
func (c *Client) LearningPath(ctx context.Context, uid string) (*PathRecord, error) {
	var envelope struct {
		LearningPaths []PathRecord `json:"learningPaths"`
	}
	if err := c.get(ctx, "learningPaths", uid, &envelope); err != nil {
		return nil, err
	}
	if len(envelope.LearningPaths) == 0 {
		return nil, &core.ResolutionError{Kind: "learningPath", ID: uid}
	}
	return &envelope.LearningPaths[0], nil
}

// Module looks up one module record, including its ordered unit URLs.
func (c *Client) Module(ctx context.Context, uid string) (*ModuleRecord, error) {
	var envelope struct {
		Modules []ModuleRecord `json:"modules"`
	}
	if err := c.get(ctx, "modules", uid, &envelope); err != nil {
		return nil, err
	}
	if len(envelope.Modules) == 0 {
		return nil, &core.ResolutionError{Kind: "module", ID: uid}
	}
	return &envelope.Modules[0], nil
}

// get performs one catalog query and decodes the JSON envelope. Any
// transport-level or decode failure is a *core.CatalogUnavailableError.
func (c *Client) get(ctx context.Context, kind, uid string, into any) error {
	query := fmt.Sprintf("%s?type=%s&uid=%s", c.baseURL, kind, url.QueryEscape(uid))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, query, nil)
	if err != nil {
		return &core.CatalogUnavailableError{Query: query, Err: err}
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return &core.CatalogUnavailableError{Query: query, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &core.CatalogUnavailableError{
			Query: query,
			Err:   fmt.Errorf("status %d", resp.StatusCode),
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(into); err != nil {
		return &core.CatalogUnavailableError{Query: query, Err: fmt.Errorf("decoding response: %w", err)}
	}
	return nil
}
