package projection

import (
	"strings"

	"github.com/noony-serverless/projection/internal/pathspec"
)

// parseSelector normalizes and parses a raw path set. It runs before any
// cache interaction so syntax errors are never cached. The returned key is
// canonical: any permutation of the same path set yields the same key.
func parseSelector(paths []string) (key string, parsed [][]pathspec.Segment, err error) {
	if len(paths) == 0 {
		return "", nil, singleIssue(CodePathSyntax, "", "selector requires at least one path")
	}
	norm := pathspec.Normalize(paths)
	parsed = make([][]pathspec.Segment, 0, len(norm))
	for _, p := range norm {
		segs, perr := pathspec.Parse(p)
		if perr != nil {
			return "", nil, AppendIssues(nil, Issue{
				Path:    p,
				Code:    CodePathSyntax,
				Message: perr.Error(),
				Cause:   perr,
			})
		}
		parsed = append(parsed, segs)
	}
	return strings.Join(norm, "\x1f"), parsed, nil
}

// compileParsed folds parsed paths into an inclusion tree and compiles it.
// The tree is discarded afterwards; only the compiled schema is retained
// (and cached).
func compileParsed(parsed [][]pathspec.Segment) *Schema {
	return compileNode(pathspec.BuildTree(parsed))
}

func compileNode(n *pathspec.Node) *Schema {
	var s *Schema
	switch {
	case len(n.Children) == 0:
		s = Leaf()
	default:
		b := Object()
		for _, key := range n.Order {
			b.Field(key, compileNode(n.Children[key]))
		}
		s = b.Build()
		// a shorter path also targeted this node whole
		s.whole = n.Whole
	}
	if n.Array {
		s = Array(s)
	}
	return s
}
