package projection

import "context"

// Validator is the opaque external validation capability a caller may attach
// to a schema it supplies directly. When projection finishes and validation
// is enabled, the projected value is handed to Validate; a rejection
// propagates unmodified as a validation issue.
type Validator interface {
	Validate(ctx context.Context, v any) error
}

type schemaKind int

const (
	kindLeaf schemaKind = iota
	kindObject
	kindArray
)

type schemaField struct {
	name string
	sub  *Schema
}

// Schema is a compiled, immutable projection plan: a closed tree of
// leaf/object/array nodes. Schemas derived from path selectors are built and
// cached internally; callers can also construct one directly via Leaf/Array/
// Object and pass it through BySchema, bypassing the path grammar entirely.
type Schema struct {
	kind   schemaKind
	fields []schemaField  // object: declared fields in declaration order
	index  map[string]int // object: field name -> fields position
	elem   *Schema        // array: element plan

	// whole marks an object node that was also targeted by a shorter path;
	// the source value at this level is included unprojected (set-union of
	// whole-value inclusion and any deeper selections).
	whole bool
	// required makes every declared field of this object mandatory at
	// projection time, independent of the per-call strict option.
	required bool
	// passthrough keeps unknown sibling fields at this level instead of
	// stripping them.
	passthrough bool

	validator Validator
}

// Leaf returns the plan that includes a value whole, without further descent.
func Leaf() *Schema { return &Schema{kind: kindLeaf} }

// Array returns the plan that applies elem to every element of a sequence.
func Array(elem *Schema) *Schema {
	if elem == nil {
		elem = Leaf()
	}
	return &Schema{kind: kindArray, elem: elem}
}

// ObjectBuilder assembles an object schema field by field. Field order is
// declaration order and drives the executor's deterministic traversal.
type ObjectBuilder struct {
	fields []schemaField
	index  map[string]int
}

// Object creates a new object schema builder.
func Object() *ObjectBuilder {
	return &ObjectBuilder{index: map[string]int{}}
}

// Field declares a field with its sub-plan. Redeclaring a name replaces the
// earlier sub-plan in place, keeping the original position.
func (b *ObjectBuilder) Field(name string, sub *Schema) *ObjectBuilder {
	if sub == nil {
		sub = Leaf()
	}
	if i, ok := b.index[name]; ok {
		b.fields[i].sub = sub
		return b
	}
	b.index[name] = len(b.fields)
	b.fields = append(b.fields, schemaField{name: name, sub: sub})
	return b
}

// Build returns the immutable schema.
func (b *ObjectBuilder) Build() *Schema {
	idx := make(map[string]int, len(b.fields))
	fs := make([]schemaField, len(b.fields))
	copy(fs, b.fields)
	for i, f := range fs {
		idx[f.name] = i
	}
	return &Schema{kind: kindObject, fields: fs, index: idx}
}

// WithValidator returns a copy of s carrying the external validation
// capability. The original schema is left untouched.
func WithValidator(s *Schema, v Validator) *Schema {
	c := s.clone()
	c.validator = v
	return c
}

// clone copies the node itself; sub-plans are shared (they are immutable).
func (s *Schema) clone() *Schema {
	c := *s
	if s.fields != nil {
		c.fields = make([]schemaField, len(s.fields))
		copy(c.fields, s.fields)
		c.index = make(map[string]int, len(s.index))
		for k, v := range s.index {
			c.index[k] = v
		}
	}
	return &c
}

// MergeSchemas shallow-unions the top-level fields of several object schemas,
// last-writer-wins on name collision. Non-object inputs are skipped.
func MergeSchemas(schemas ...*Schema) *Schema {
	b := Object()
	for _, s := range schemas {
		if s == nil || s.kind != kindObject {
			continue
		}
		for _, f := range s.fields {
			b.Field(f.name, f.sub)
		}
	}
	return b.Build()
}

// MakeStrict returns a copy of s in which every declared field, at every
// object level, is required: absence becomes an error at projection time.
func MakeStrict(s *Schema) *Schema {
	if s == nil {
		return nil
	}
	c := s.clone()
	switch c.kind {
	case kindObject:
		c.required = true
		for i := range c.fields {
			c.fields[i].sub = MakeStrict(c.fields[i].sub)
		}
	case kindArray:
		c.elem = MakeStrict(c.elem)
	}
	return c
}

// MakePassthrough returns a copy of s whose top level keeps sibling fields
// absent from the schema instead of stripping them. Deeper levels keep the
// default stripping behavior.
func MakePassthrough(s *Schema) *Schema {
	if s == nil {
		return nil
	}
	c := s.clone()
	c.passthrough = true
	return c
}
