package projection

// DefaultMaxDepth bounds the executor's recursion when Options.MaxDepth is
// left zero. The limit exists to fail deterministically on pathological or
// cyclic inputs instead of overflowing the stack.
const DefaultMaxDepth = 256

// Options bundles per-call projection behavior. The zero value carries the
// defaults: lenient field presence, unknown fields stripped, post-projection
// validation enabled, schema caching enabled.
type Options struct {
	// Strict makes every declared field mandatory; an absent field aborts the
	// whole call with a required issue naming the full dotted path.
	Strict bool
	// KeepUnknown preserves sibling fields absent from the schema instead of
	// stripping them (stripUnknown=false in other implementations).
	KeepUnknown bool
	// SkipValidate disables the post-projection Validator pass for schemas
	// that carry one (validate=false).
	SkipValidate bool
	// NoCache bypasses the schema cache; the selector is compiled per call
	// (cache=false).
	NoCache bool
	// MaxDepth overrides the recursion-depth limit; zero means
	// DefaultMaxDepth.
	MaxDepth int
	// Cache selects an explicit schema cache instance. Nil uses the
	// package-level default.
	Cache *SchemaCache
}

func (o Options) maxDepth() int {
	if o.MaxDepth > 0 {
		return o.MaxDepth
	}
	return DefaultMaxDepth
}

func (o Options) cache() *SchemaCache {
	if o.Cache != nil {
		return o.Cache
	}
	return defaultCache
}
