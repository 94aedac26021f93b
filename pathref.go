package projection

import (
	"fmt"
	"strconv"
)

// PathRef builds selector-syntax paths ("a.b[2].c") in a chain-safe way and
// creates Issues anchored at the built location.
type PathRef interface {
	Field(name string) PathRef
	Index(i int) PathRef
	String() string
	Issue(code, msg string, kv ...any) Issue
}

// Root returns a PathRef anchored at the top of the value.
func Root() PathRef { return pathRef("") }

type pathRef string

func (p pathRef) Field(name string) PathRef {
	if name == "" {
		return p
	}
	if p == "" {
		return pathRef(name)
	}
	return p + "." + pathRef(name)
}

func (p pathRef) Index(i int) PathRef {
	return p + pathRef("["+strconv.Itoa(i)+"]")
}

func (p pathRef) String() string { return string(p) }

func (p pathRef) Issue(code, msg string, kv ...any) Issue {
	var m map[string]any
	if len(kv) > 0 {
		m = make(map[string]any, len(kv)/2)
		for i := 0; i+1 < len(kv); i += 2 {
			m[fmt.Sprint(kv[i])] = kv[i+1]
		}
	}
	return Issue{Path: string(p), Code: code, Message: msg, Params: m}
}
