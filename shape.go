package projection

import (
	"context"
	"sort"
)

// PathsFromShape derives a canonical selector-path set from the own fields of
// a reference value. A nil or primitive field yields a leaf path; a nested
// object recurses into dotted paths; an array yields only the bare "key[]"
// path. Example elements are never inspected, so mixed-content arrays stay
// unambiguous and are included whole per element.
func PathsFromShape(reference map[string]any) []string {
	var paths []string
	collectShapePaths(reference, "", &paths)
	sort.Strings(paths)
	return paths
}

func collectShapePaths(obj map[string]any, prefix string, paths *[]string) {
	for k, v := range obj {
		p := k
		if prefix != "" {
			p = prefix + "." + k
		}
		switch t := v.(type) {
		case map[string]any:
			if len(t) == 0 {
				*paths = append(*paths, p)
				continue
			}
			collectShapePaths(t, p, paths)
		case []any:
			*paths = append(*paths, p+"[]")
		default:
			*paths = append(*paths, p)
		}
	}
}

// ProjectByShape projects data down to the shape of the reference value,
// feeding the derived path set through the regular builder + cache pipeline.
func ProjectByShape(ctx context.Context, data any, reference map[string]any, opt Options) (any, error) {
	return Project(ctx, data, ByPaths(PathsFromShape(reference)...), opt)
}

// NewShapeProjector wraps shape extraction, schema compilation and the
// executor behind a single reusable function with options fixed at creation
// time.
func NewShapeProjector(reference map[string]any, opt Options) (Projector, error) {
	return NewProjector(ByPaths(PathsFromShape(reference)...), opt)
}
