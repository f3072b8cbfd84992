// Package diff computes structural diffs between value trees.
//
// A diff is itself a value:
//
//   - a replaced leaf (or a kind change) is {"-": old, "+": new}
//   - a removed entry is {"-": old}, an added entry {"+": new}
//   - an object diff is an object mapping only the changed keys to
//     sub-diffs
//   - an equal-length array diff is an object mapping changed indices to
//     sub-diffs; arrays of different length diff to an array of removed
//     and added elements, aligned on element hashes
//
// Field and element alignment uses diffmatchpatch over rune-mapped
// sequences, so renamed keys and shifted elements produce minimal diffs.
package diff
