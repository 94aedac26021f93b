package projection_test

import (
	"context"
	"reflect"
	"testing"

	j "github.com/goccy/go-json"

	projection "github.com/noony-serverless/projection"
)

func TestProjectJSON_RoundTrip(t *testing.T) {
	ctx := context.Background()
	in := []byte(`{"id":1,"secret":"x","items":[{"name":"a","price":9.5},{"name":"b","price":3}]}`)
	out, err := projection.ProjectJSON(ctx, in, projection.ByPaths("id", "items[].name"), projection.Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var got map[string]any
	if err := j.Unmarshal(out, &got); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	want := map[string]any{
		"id":    float64(1),
		"items": []any{map[string]any{"name": "a"}, map[string]any{"name": "b"}},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestProjectJSON_PreservesNumberPrecision(t *testing.T) {
	ctx := context.Background()
	in := []byte(`{"id":9007199254740993,"x":1}`)
	out, err := projection.ProjectJSON(ctx, in, projection.ByPaths("id"), projection.Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(out) != `{"id":9007199254740993}` {
		t.Fatalf("large integer lost precision: %s", out)
	}
}

func TestProjectJSON_InvalidInput(t *testing.T) {
	ctx := context.Background()
	_, err := projection.ProjectJSON(ctx, []byte(`{"id":`), projection.ByPaths("id"), projection.Options{})
	iss, ok := projection.AsIssues(err)
	if !ok || iss[0].Code != projection.CodeParseError {
		t.Fatalf("expected parse_error, got %v", err)
	}
}

func TestProjectJSONValue_TopLevelArray(t *testing.T) {
	ctx := context.Background()
	in := []byte(`[{"id":1,"s":"a"},{"id":2,"s":"b"}]`)
	out, err := projection.ProjectJSONValue(ctx, in, projection.ByPaths("id"), projection.Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	seq, ok := out.([]any)
	if !ok || len(seq) != 2 {
		t.Fatalf("expected projected sequence, got %v", out)
	}
	for i, el := range seq {
		m := el.(map[string]any)
		if _, leaked := m["s"]; leaked {
			t.Fatalf("element %d kept stripped field: %v", i, m)
		}
	}
}
