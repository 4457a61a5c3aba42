package catalog

import (
	"context"
	"time"

	"coursepack/core"
)

// Resolver builds a CourseTree from catalog queries.
//
// Empty learning paths and empty modules are retained as empty nodes rather
// than dropped; downstream stages emit nothing for them.
type Resolver struct {
	client *Client
}

// NewResolver creates a Resolver backed by a catalog Client.
func NewResolver(baseURL string, timeout time.Duration, userAgent string) *Resolver {
	return &Resolver{client: NewClient(baseURL, timeout, userAgent)}
}

// Resolve walks course → learning paths → modules → units, preserving the
// catalog's published order at every level.
func (r *Resolver) Resolve(ctx context.Context, courseURLOrSlug string) (*core.CourseTree, error) {
	slug := CourseSlug(courseURLOrSlug)

	course, err := r.client.Course(ctx, slug)
	if err != nil {
		return nil, err
	}

	tree := &core.CourseTree{
		Slug:  slug,
		Title: course.Title,
		Paths: make([]core.LearningPath, 0, len(course.LearningPaths)),
	}

	for _, pathUID := range course.LearningPaths {
		record, err := r.client.LearningPath(ctx, pathUID)
		if err != nil {
			return nil, err
		}

		path := core.LearningPath{
			UID:     record.UID,
			Title:   record.Title,
			Modules: make([]core.Module, 0, len(record.Modules)),
		}

		for _, moduleUID := range record.Modules {
			mod, err := r.client.Module(ctx, moduleUID)
			if err != nil {
				return nil, err
			}

			units := make([]core.UnitRef, 0, len(mod.Units))
			for i, u := range mod.Units {
				units = append(units, core.UnitRef{
					URL:      CleanURL(u.URL),
					Position: i + 1,
				})
			}

			path.Modules = append(path.Modules, core.Module{
				UID:   mod.UID,
				Title: mod.Title,
				URL:   CleanURL(mod.URL),
				Units: units,
			})
		}

		tree.Paths = append(tree.Paths, path)
	}

	return tree, nil
}
