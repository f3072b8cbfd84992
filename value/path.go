package value

import (
	"strconv"
	"strings"

	"github.com/tidwall/match"
)

type pathSeg struct {
	key     string
	index   int
	isIndex bool
	allIdx  bool
}

func parsePath(path string) ([]pathSeg, error) {
	var segs []pathSeg
	i, n := 0, len(path)
	for i < n {
		switch path[i] {
		case '.':
			i++
			if i >= n || path[i] == '.' || path[i] == '[' {
				return nil, &PathError{Path: path, Reason: "empty key segment"}
			}
		case '[':
			j := strings.IndexByte(path[i:], ']')
			if j < 0 {
				return nil, &PathError{Path: path, Reason: "unterminated index"}
			}
			inner := path[i+1 : i+j]
			if inner == "*" {
				segs = append(segs, pathSeg{allIdx: true})
			} else {
				idx, err := strconv.Atoi(inner)
				if err != nil {
					return nil, &PathError{Path: path, Segment: path[i : i+j+1], Reason: "bad index"}
				}
				segs = append(segs, pathSeg{index: idx, isIndex: true})
			}
			i += j + 1
		default:
			j := i
			for j < n && path[j] != '.' && path[j] != '[' {
				j++
			}
			segs = append(segs, pathSeg{key: path[i:j]})
			i = j
		}
	}
	return segs, nil
}

// GetPath resolves a dotted path like "a.b[0].c" against v. Keys address
// object entries, bracketed indices address array elements. Unlike Get, an
// unresolved segment is an error (wrapping ErrPath), since a path lookup
// that dead-ends is not distinguishable from a present null otherwise.
func GetPath(v Value, path string) (Value, error) {
	segs, err := parsePath(path)
	if err != nil {
		return Null(), err
	}
	cur := v
	for _, s := range segs {
		switch {
		case s.allIdx:
			return Null(), &PathError{Path: path, Segment: "[*]", Reason: "wildcard needs ListPath"}
		case s.isIndex:
			if cur.Kind() != ArrayKind {
				return Null(), &PathError{Path: path, Segment: "[" + strconv.Itoa(s.index) + "]", Reason: "not an array"}
			}
			x, err := cur.At(s.index)
			if err != nil {
				return Null(), &PathError{Path: path, Segment: "[" + strconv.Itoa(s.index) + "]", Reason: "index out of range"}
			}
			cur = x
		default:
			n := cur.impl()
			if n.kind != ObjectKind {
				return Null(), &PathError{Path: path, Segment: s.key, Reason: "not an object"}
			}
			x, ok := n.obj[s.key]
			if !ok {
				return Null(), &PathError{Path: path, Segment: s.key, Reason: "no such key"}
			}
			cur = x
		}
	}
	return cur, nil
}

// ListPath resolves a path that may contain wildcards: key segments are
// glob patterns ("*", "serv*", "?x") and "[*]" matches every array
// element. It returns all matching values, object matches in key order.
// Dead-end branches are skipped rather than reported.
func ListPath(v Value, path string) ([]Value, error) {
	segs, err := parsePath(path)
	if err != nil {
		return nil, err
	}
	var res []Value
	listPath(v, segs, &res)
	return res, nil
}

func listPath(v Value, segs []pathSeg, out *[]Value) {
	if len(segs) == 0 {
		*out = append(*out, v)
		return
	}
	s := segs[0]
	n := v.impl()
	switch {
	case s.allIdx:
		if n.kind != ArrayKind {
			return
		}
		for _, e := range n.arr {
			listPath(e, segs[1:], out)
		}
	case s.isIndex:
		if x, err := v.At(s.index); err == nil {
			listPath(x, segs[1:], out)
		}
	default:
		if n.kind != ObjectKind {
			return
		}
		if match.IsPattern(s.key) {
			keys, _ := v.Keys()
			for _, k := range keys {
				if match.Match(k, s.key) {
					listPath(n.obj[k], segs[1:], out)
				}
			}
			return
		}
		if x, ok := n.obj[s.key]; ok {
			listPath(x, segs[1:], out)
		}
	}
}
