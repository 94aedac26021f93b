package pathspec

import (
	"fmt"
	"sort"
	"strings"
)

// Segment is one parsed element of a selector path. Array is true when the
// segment carried the trailing "[]" marker, meaning the remainder of the
// path applies to every element of the named field.
type Segment struct {
	Key   string
	Array bool
}

// SyntaxError reports a malformed selector path. It is raised before any
// cache interaction and is never cached.
type SyntaxError struct {
	Path string
	Msg  string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("pathspec: invalid path %q: %s", e.Path, e.Msg)
}

// Parse splits a selector path into ordered segments.
//
// Grammar: segments separated by '.', a segment immediately followed by the
// literal marker "[]" names an array container. The marker may appear at any
// depth ("a[].b[].c"). No element-index syntax exists; "array" always means
// "every element".
func Parse(path string) ([]Segment, error) {
	if path == "" {
		return nil, &SyntaxError{Path: path, Msg: "empty path"}
	}
	parts := strings.Split(path, ".")
	segs := make([]Segment, 0, len(parts))
	for _, part := range parts {
		if part == "" {
			return nil, &SyntaxError{Path: path, Msg: "empty segment"}
		}
		seg := Segment{Key: part}
		if strings.HasSuffix(part, "[]") {
			seg.Key = part[:len(part)-2]
			seg.Array = true
			if seg.Key == "" {
				return nil, &SyntaxError{Path: path, Msg: "array marker requires a field name"}
			}
		}
		if strings.ContainsAny(seg.Key, "[]") {
			return nil, &SyntaxError{Path: path, Msg: "misplaced bracket in segment " + fmt.Sprintf("%q", part)}
		}
		segs = append(segs, seg)
	}
	return segs, nil
}

// Node is one level of the inclusion tree built from a set of parsed paths.
// A node with no children is a leaf: the value at that location is included
// whole. A node reached through an array marker is flagged Array. A node that
// was targeted by a shorter path and later extended by a longer one keeps
// Whole set, recording the whole-value inclusion of the shorter path.
type Node struct {
	Children map[string]*Node
	Order    []string // child keys in insertion order
	Array    bool
	Whole    bool
}

// Leaf reports whether the node includes its value without further descent.
func (n *Node) Leaf() bool { return len(n.Children) == 0 || n.Whole }

func (n *Node) child(key string) *Node {
	if n.Children == nil {
		n.Children = make(map[string]*Node)
	}
	c, ok := n.Children[key]
	if !ok {
		c = &Node{}
		n.Children[key] = c
		n.Order = append(n.Order, key)
	}
	return c
}

// BuildTree folds parsed paths into an inclusion tree. Inserting an existing
// path is a no-op; a node is marked Array exactly when any path segment
// reaching it used the array marker.
func BuildTree(paths [][]Segment) *Node {
	root := &Node{}
	for _, segs := range paths {
		cur := root
		for _, seg := range segs {
			cur = cur.child(seg.Key)
			if seg.Array {
				cur.Array = true
			}
		}
		// terminal segment: the value here is included whole
		cur.Whole = true
	}
	return root
}

// Normalize returns a sorted, deduplicated copy of the raw path set. It is a
// pure string operation, independent of parsing, so the canonical form is
// cheap to compute and easy to debug.
func Normalize(paths []string) []string {
	out := make([]string, 0, len(paths))
	seen := make(map[string]struct{}, len(paths))
	for _, p := range paths {
		if _, dup := seen[p]; dup {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}

// CacheKey derives the canonical cache key for a path set. Any permutation of
// an identical set yields an identical key. The separator cannot appear in a
// valid path segment.
func CacheKey(paths []string) string {
	return strings.Join(Normalize(paths), "\x1f")
}
