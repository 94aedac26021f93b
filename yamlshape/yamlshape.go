// Package yamlshape derives projection selectors from YAML example
// documents and offers YAML-in/YAML-out projection. It keeps the core engine
// free of YAML concerns, the same way the JSON conveniences stay in the root
// package.
package yamlshape

import (
	"bytes"
	"context"
	"errors"
	"io"

	"gopkg.in/yaml.v3"

	projection "github.com/noony-serverless/projection"
)

// PathsFromYAML scans a (possibly multi-document) YAML stream and derives the
// selector-path set from the first document whose root is a mapping. It
// returns an error when no mapping document exists.
func PathsFromYAML(data []byte) ([]string, error) {
	ref, err := firstMapping(data)
	if err != nil {
		return nil, err
	}
	return projection.PathsFromShape(ref), nil
}

// ProjectorFromYAML builds a reusable projector whose shape comes from a YAML
// reference document. Options are fixed at creation time.
func ProjectorFromYAML(data []byte, opt projection.Options) (projection.Projector, error) {
	ref, err := firstMapping(data)
	if err != nil {
		return nil, err
	}
	return projection.NewShapeProjector(ref, opt)
}

// ProjectYAML decodes a YAML document, projects it with sel, and re-encodes
// the result as YAML.
func ProjectYAML(ctx context.Context, data []byte, sel projection.Selector, opt projection.Options) ([]byte, error) {
	var node any
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, err
	}
	out, err := projection.Project(ctx, normalizeValue(node), sel, opt)
	if err != nil {
		return nil, err
	}
	return yaml.Marshal(out)
}

func firstMapping(data []byte) (map[string]any, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	for {
		var node any
		if err := dec.Decode(&node); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, err
		}
		if m := anyToStringMap(node); m != nil {
			return m, nil
		}
	}
	return nil, errors.New("yamlshape: no mapping document found")
}

// anyToStringMap converts YAML-decoded values (which may contain
// map[any]any) into JSON-like map[string]any recursively. Non-map roots
// return nil.
func anyToStringMap(v any) map[string]any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			out[k] = normalizeValue(vv)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			ks, ok := k.(string)
			if !ok {
				continue
			}
			out[ks] = normalizeValue(vv)
		}
		return out
	default:
		return nil
	}
}

func normalizeValue(v any) any {
	switch t := v.(type) {
	case map[string]any, map[any]any:
		return anyToStringMap(t)
	case []any:
		arr := make([]any, len(t))
		for i := range t {
			arr[i] = normalizeValue(t[i])
		}
		return arr
	default:
		return v
	}
}
