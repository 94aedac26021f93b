package projection

import (
	"bytes"
	"context"

	j "github.com/goccy/go-json"

	"github.com/noony-serverless/projection/i18n"
)

// ProjectJSON decodes a JSON document, projects it with sel, and re-encodes
// the result. Numbers round-trip as json.Number so no precision is lost
// through the projection. Decode failures surface as a parse_error issue.
func ProjectJSON(ctx context.Context, data []byte, sel Selector, opt Options) ([]byte, error) {
	v, err := decodeJSON(data)
	if err != nil {
		return nil, err
	}
	out, err := Project(ctx, v, sel, opt)
	if err != nil {
		return nil, err
	}
	return j.Marshal(out)
}

// ProjectJSONValue decodes a JSON document and projects it, returning the
// projected value instead of re-encoding. Useful when the caller keeps
// working with the decoded form.
func ProjectJSONValue(ctx context.Context, data []byte, sel Selector, opt Options) (any, error) {
	v, err := decodeJSON(data)
	if err != nil {
		return nil, err
	}
	return Project(ctx, v, sel, opt)
}

func decodeJSON(data []byte) (any, error) {
	dec := j.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, Issues{Issue{Code: CodeParseError, Message: i18n.T(CodeParseError, nil), Cause: err}}
	}
	return v, nil
}
