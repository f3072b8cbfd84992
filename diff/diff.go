package diff

import (
	"strconv"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/json-toolkit/go-json/debug"
	"github.com/json-toolkit/go-json/value"
)

// Diff computes a structural diff between two values. It returns ok=false
// when the values are equal; otherwise the result is a diff tree as
// described in the package comment.
func Diff(from, to value.Value) (value.Value, bool) {
	if value.Equal(from, to) {
		return value.Null(), false
	}
	if debug.Diff() {
		debug.Logf("diff %v against %v\n", from, to)
	}
	if from.Kind() != to.Kind() {
		return replaceDiff(from, to), true
	}
	switch from.Kind() {
	case value.ObjectKind:
		return diffObject(from, to)
	case value.ArrayKind:
		return diffArray(from, to)
	}
	return replaceDiff(from, to), true
}

func replaceDiff(from, to value.Value) value.Value {
	res := value.NewObject()
	res.Set("-", from)
	res.Set("+", to)
	return res
}

func deleteDiff(from value.Value) value.Value {
	res := value.NewObject()
	res.Set("-", from)
	return res
}

func insertDiff(to value.Value) value.Value {
	res := value.NewObject()
	res.Set("+", to)
	return res
}

// diffObject aligns the key-sorted field sequences of both sides with a
// rune-mapped text diff, then recurses on fields present in both.
func diffObject(from, to value.Value) (value.Value, bool) {
	keyMap := map[string]rune{}
	runeMap := map[rune]string{}
	fromKeys, _ := from.Keys()
	toKeys, _ := to.Keys()
	fromRunes := mapKeysTo(keyMap, runeMap, fromKeys)
	toRunes := mapKeysTo(keyMap, runeMap, toKeys)

	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMainRunes(fromRunes, toRunes, false)

	fromObj := from.ToObject().Data()
	toObj := to.ToObject().Data()
	res := value.NewObject()
	changed := false
	for i := range diffs {
		d := &diffs[i]
		switch d.Type {
		case diffpatch.DiffDelete:
			for _, r := range d.Text {
				k := runeMap[r]
				res.Set(k, deleteDiff(fromObj[k]))
				changed = true
			}
		case diffpatch.DiffInsert:
			for _, r := range d.Text {
				k := runeMap[r]
				res.Set(k, insertDiff(toObj[k]))
				changed = true
			}
		case diffpatch.DiffEqual:
			for _, r := range d.Text {
				k := runeMap[r]
				if sub, ok := Diff(fromObj[k], toObj[k]); ok {
					res.Set(k, sub)
					changed = true
				}
			}
		}
	}
	if !changed {
		return value.Null(), false
	}
	return res, true
}

func mapKeysTo(m map[string]rune, im map[rune]string, keys []string) []rune {
	rs := make([]rune, len(keys))
	for i, k := range keys {
		r, ok := m[k]
		if !ok {
			r = rune(len(m))
			m[k] = r
			im[r] = k
		}
		rs[i] = r
	}
	return rs
}

// diffArray recurses index-wise on equal-length arrays. For unequal
// lengths it aligns the element hash sequences with a rune-mapped text
// diff, reporting removed and added elements.
func diffArray(from, to value.Value) (value.Value, bool) {
	fd := from.ToArray().Data()
	td := to.ToArray().Data()
	if len(fd) == len(td) {
		res := value.NewObject()
		changed := false
		for i := range fd {
			if sub, ok := Diff(fd[i], td[i]); ok {
				res.Set(strconv.Itoa(i), sub)
				changed = true
			}
		}
		if !changed {
			return value.Null(), false
		}
		return res, true
	}

	hashMap := map[uint64]rune{}
	fromRunes := mapElemsTo(hashMap, fd)
	toRunes := mapElemsTo(hashMap, td)

	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMainRunes(fromRunes, toRunes, false)

	res := value.NewArray()
	fi, ti := 0, 0
	for i := range diffs {
		d := &diffs[i]
		switch d.Type {
		case diffpatch.DiffDelete:
			for range d.Text {
				res.Push(deleteDiff(fd[fi]))
				fi++
			}
		case diffpatch.DiffInsert:
			for range d.Text {
				res.Push(insertDiff(td[ti]))
				ti++
			}
		case diffpatch.DiffEqual:
			fi += len([]rune(d.Text))
			ti += len([]rune(d.Text))
		}
	}
	return res, true
}

func mapElemsTo(m map[uint64]rune, elems []value.Value) []rune {
	rs := make([]rune, len(elems))
	for i, e := range elems {
		h := e.Hash()
		r, ok := m[h]
		if !ok {
			r = rune(len(m))
			m[h] = r
		}
		rs[i] = r
	}
	return rs
}
