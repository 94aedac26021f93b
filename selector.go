package projection

// Selector names the branches a projection keeps. It is an explicit tagged
// value: either a set of selector paths compiled (and cached) internally, or
// a schema the caller built directly. There is no runtime shape sniffing.
type Selector struct {
	paths  []string
	schema *Schema
}

// ByPaths selects via selector-path strings, e.g. "id", "items[].name",
// "a[].b.c[].d".
func ByPaths(paths ...string) Selector { return Selector{paths: paths} }

// BySchema selects via a directly supplied schema, bypassing the path
// grammar and the string-keyed cache; the schema's identity is its own key.
func BySchema(s *Schema) Selector { return Selector{schema: s} }
