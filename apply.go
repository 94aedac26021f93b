package projection

import (
	"context"
	"reflect"

	"github.com/noony-serverless/projection/i18n"
)

// apply is the recursive executor. It produces a fresh value holding only the
// branches the schema declares, or Issues on the first structural violation.
// Errors are all-or-nothing for the whole call; there is no partial result.
func apply(v any, s *Schema, opt Options, at PathRef, depth int) (any, error) {
	if depth > opt.maxDepth() {
		return nil, Issues{at.Issue(CodeDepthExceeded, i18n.T(CodeDepthExceeded, nil), "limit", opt.maxDepth())}
	}
	switch s.kind {
	case kindLeaf:
		// whole-value inclusion: nested containers below a leaf are returned
		// unprojected
		return v, nil
	case kindArray:
		return applyArray(v, s, opt, at, depth)
	default:
		return applyObject(v, s, opt, at, depth)
	}
}

func applyObject(v any, s *Schema, opt Options, at PathRef, depth int) (any, error) {
	if s.whole {
		// a shorter selector path included this value whole; deeper paths are
		// subsets of it, so the union is the whole value
		return v, nil
	}
	src, ok := v.(map[string]any)
	if !ok {
		return nil, Issues{at.Issue(CodeInvalidType, i18n.T(CodeInvalidType, map[string]string{"expected": "object"}), "got", typeName(v))}
	}
	out := make(map[string]any, len(s.fields))
	for _, f := range s.fields {
		fv, exists := src[f.name]
		if !exists {
			if opt.Strict || s.required {
				return nil, Issues{at.Field(f.name).Issue(CodeRequired, i18n.T(CodeRequired, nil), "field", f.name)}
			}
			continue
		}
		pv, err := apply(fv, f.sub, opt, at.Field(f.name), depth+1)
		if err != nil {
			return nil, err
		}
		out[f.name] = pv
	}
	if s.passthrough || opt.KeepUnknown {
		for k, fv := range src {
			if _, declared := s.index[k]; !declared {
				out[k] = fv
			}
		}
	}
	return out, nil
}

func applyArray(v any, s *Schema, opt Options, at PathRef, depth int) (any, error) {
	if src, ok := v.([]any); ok {
		out := make([]any, len(src))
		for i, ev := range src {
			pv, err := apply(ev, s.elem, opt, at.Index(i), depth+1)
			if err != nil {
				return nil, err
			}
			out[i] = pv
		}
		return out, nil
	}
	// typed slices ([]string, []map[string]any, ...) still count as sequences
	rv := reflect.ValueOf(v)
	if v != nil && (rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array) && rv.Type() != reflect.TypeOf([]byte(nil)) {
		out := make([]any, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			pv, err := apply(rv.Index(i).Interface(), s.elem, opt, at.Index(i), depth+1)
			if err != nil {
				return nil, err
			}
			out[i] = pv
		}
		return out, nil
	}
	return nil, Issues{at.Issue(CodeInvalidType, i18n.T(CodeInvalidType, map[string]string{"expected": "array"}), "got", typeName(v))}
}

// execute runs the executor over data, applying the schema per element when
// the top-level input is itself a sequence, then runs the optional
// post-projection validation pass.
func execute(ctx context.Context, data any, s *Schema, opt Options) (any, error) {
	var out any
	if seq, ok := asSequence(data); ok && s.kind != kindArray {
		projected := make([]any, len(seq))
		for i, ev := range seq {
			pv, err := apply(ev, s, opt, Root().Index(i), 1)
			if err != nil {
				return nil, err
			}
			projected[i] = pv
		}
		out = any(projected)
	} else {
		pv, err := apply(data, s, opt, Root(), 0)
		if err != nil {
			return nil, err
		}
		out = pv
	}
	if s.validator != nil && !opt.SkipValidate {
		if verr := s.validator.Validate(ctx, out); verr != nil {
			if iss, ok := AsIssues(verr); ok {
				return nil, iss
			}
			return nil, Issues{Issue{Code: CodeValidation, Message: i18n.T(CodeValidation, nil), Cause: verr}}
		}
	}
	return out, nil
}

func asSequence(v any) ([]any, bool) {
	if seq, ok := v.([]any); ok {
		return seq, true
	}
	rv := reflect.ValueOf(v)
	if v == nil || (rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array) || rv.Type() == reflect.TypeOf([]byte(nil)) {
		return nil, false
	}
	out := make([]any, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		out[i] = rv.Index(i).Interface()
	}
	return out, true
}

func typeName(v any) string {
	if v == nil {
		return "null"
	}
	return reflect.TypeOf(v).String()
}
