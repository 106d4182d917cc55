// Package puzzle is the harness shared by daily solutions: a registry of
// solvers keyed by day, the Part selector, an optional Answer and helpers
// to locate puzzle input on disk.
//
// Solutions register themselves from an init function:
//
//	func init() {
//		puzzle.Register(5, Solver{})
//	}
//
// and are looked up by the CLI with Lookup.
package puzzle
