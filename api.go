package projection

import (
	"context"
)

// Projector is a reusable projection with its schema resolved once at
// creation time.
type Projector func(ctx context.Context, data any) (any, error)

// Project selects the branches named by sel out of data, producing a fresh
// value that retains only those branches. Data is a decoded JSON-ish value
// (map[string]any, []any, primitives); when the top-level input is itself a
// sequence the projection applies per element.
func Project(ctx context.Context, data any, sel Selector, opt Options) (any, error) {
	s, err := resolveSchema(sel, opt)
	if err != nil {
		return nil, err
	}
	return execute(ctx, data, s, opt)
}

// NewProjector compiles (and caches) the selector once and returns a function
// applying it. Options are fixed at creation time.
func NewProjector(sel Selector, opt Options) (Projector, error) {
	s, err := resolveSchema(sel, opt)
	if err != nil {
		return nil, err
	}
	return func(ctx context.Context, data any) (any, error) {
		return execute(ctx, data, s, opt)
	}, nil
}

// resolveSchema turns a selector into a compiled schema, consulting the cache
// for path selectors. Path syntax errors surface before any cache
// interaction and are never cached.
func resolveSchema(sel Selector, opt Options) (*Schema, error) {
	if sel.schema != nil {
		// externally supplied schemas are already compiled; their identity is
		// the schema value itself, so the string cache is not involved
		return sel.schema, nil
	}
	key, parsed, err := parseSelector(sel.paths)
	if err != nil {
		return nil, err
	}
	if opt.NoCache {
		return compileParsed(parsed), nil
	}
	return opt.cache().GetOrBuild(key, func() (*Schema, error) {
		return compileParsed(parsed), nil
	})
}
