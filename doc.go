// Package numerus collects small helpers that are easy to get subtly wrong:
// a strict Roman-numeral codec and a handful of generic slice algorithms
// with explicit failure semantics.
//
// Under the hood, everything is organized under two subpackages:
//
//	roman/   — validate, parse and format canonical numerals in [1, 3999]
//	ordered/ — BinarySearchByKey, InsertionSort, InsertWhere, RemoveAllMatching
//
// The two never depend on each other. Both are pure: no goroutines, no
// global state, no logging. Errors are package sentinels; branch with errors.Is.
//
// Quick example:
//
//	s, _ := roman.Format(1994)            // "MCMXCIV"
//	n, _ := roman.Parse("MCMXCIV")        // 1994
//	_ = ordered.InsertWhere(&xs, 5, pred) // insert at the partition boundary
//
// The numerus command (cmd/numerus) exposes both packages on the command line.
//
//	go install github.com/katalvlaran/numerus/cmd/numerus@latest
package numerus
