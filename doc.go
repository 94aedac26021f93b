// Package projection selects a declared subset of fields out of arbitrary
// nested data (objects, arrays, and any mix of the two), producing a fresh
// value that retains only the selected branches. It is the in-process
// equivalent of a database column projection or a GraphQL field selection,
// built for API response sanitization and DTO shaping.
//
// It provides:
//
//   - A small selector-path grammar ("items[].product.name") and its parser
//   - Merging of many paths into one compiled, reusable projection schema
//   - A bounded LRU cache of compiled schemas with hit/miss accounting
//   - A recursive executor with strict/lenient field-presence semantics
//   - Shape extraction: deriving a selector from an example value's fields
//   - A stable error model via Issues (selector path, code, message)
//
// Design policy:
//   - Keep only public APIs in the root package; put the path grammar under
//     internal/pathspec.
//   - The engine is pure and performs no I/O; JSON/YAML conveniences live in
//     json.go and the yamlshape subpackage.
//   - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	out, err := projection.Project(ctx, data,
//	    projection.ByPaths("id", "items[].name"), projection.Options{})
//
//	p, err := projection.NewProjector(
//	    projection.ByPaths("id", "name"), projection.Options{Strict: true})
//	out, err = p(ctx, data)
package projection
