package pathspec

import (
	"reflect"
	"testing"
)

func TestParse_Segments(t *testing.T) {
	cases := []struct {
		path string
		want []Segment
	}{
		{"name", []Segment{{Key: "name"}}},
		{"parent.child", []Segment{{Key: "parent"}, {Key: "child"}}},
		{"items[]", []Segment{{Key: "items", Array: true}}},
		{"items[].field", []Segment{{Key: "items", Array: true}, {Key: "field"}}},
		{"a[].b.c[].d", []Segment{
			{Key: "a", Array: true}, {Key: "b"}, {Key: "c", Array: true}, {Key: "d"},
		}},
	}
	for _, tc := range cases {
		got, err := Parse(tc.path)
		if err != nil {
			t.Fatalf("Parse(%q): unexpected error: %v", tc.path, err)
		}
		if !reflect.DeepEqual(got, tc.want) {
			t.Fatalf("Parse(%q) = %+v, want %+v", tc.path, got, tc.want)
		}
	}
}

func TestParse_SyntaxErrors(t *testing.T) {
	for _, path := range []string{
		"",
		"a..b",
		".a",
		"a.",
		"[]",
		"a[",
		"a]",
		"a[]b",
		"a[0]",
		"[].a",
	} {
		if _, err := Parse(path); err == nil {
			t.Fatalf("Parse(%q): expected syntax error, got nil", path)
		}
	}
}

func TestBuildTree_MergesAndMarksArrays(t *testing.T) {
	paths := [][]Segment{
		mustParse(t, "items[].id"),
		mustParse(t, "items[].name"),
		mustParse(t, "items[].id"), // duplicate insert is a no-op
		mustParse(t, "total"),
	}
	root := BuildTree(paths)
	items := root.Children["items"]
	if items == nil || !items.Array {
		t.Fatalf("items node missing or not marked as array container: %+v", items)
	}
	if len(items.Children) != 2 {
		t.Fatalf("items children = %d, want 2", len(items.Children))
	}
	if got := root.Order; !reflect.DeepEqual(got, []string{"items", "total"}) {
		t.Fatalf("insertion order = %v", got)
	}
	if !root.Children["total"].Leaf() {
		t.Fatalf("total should be a leaf")
	}
}

func TestBuildTree_ShortAndLongPathsCoexist(t *testing.T) {
	root := BuildTree([][]Segment{
		mustParse(t, "address"),
		mustParse(t, "address.city"),
	})
	addr := root.Children["address"]
	if addr == nil {
		t.Fatalf("address node missing")
	}
	if !addr.Whole {
		t.Fatalf("address should carry the whole-value marker")
	}
	if addr.Children["city"] == nil {
		t.Fatalf("address.city child missing")
	}
}

func TestNormalize_SortsAndDedupes(t *testing.T) {
	got := Normalize([]string{"b", "a", "b", "c.d", "a"})
	want := []string{"a", "b", "c.d"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Normalize = %v, want %v", got, want)
	}
}

func TestCacheKey_PermutationInvariant(t *testing.T) {
	k1 := CacheKey([]string{"items[].id", "total", "user.name"})
	k2 := CacheKey([]string{"user.name", "items[].id", "total"})
	if k1 != k2 {
		t.Fatalf("cache keys differ for permuted sets: %q vs %q", k1, k2)
	}
	k3 := CacheKey([]string{"items[].id", "total"})
	if k1 == k3 {
		t.Fatalf("different sets must not share a key")
	}
}

func mustParse(t *testing.T, path string) []Segment {
	t.Helper()
	segs, err := Parse(path)
	if err != nil {
		t.Fatalf("Parse(%q): %v", path, err)
	}
	return segs
}
