// Package diagnostic provides structured errors and warnings produced while
// reading and checking puzzle input.
//
// Each diagnostic carries a stable code, the input block it belongs to
// (for example "seed-to-soil map:") and the 1-based input line, so that
// a malformed almanac can be fixed without re-running with a debugger.
package diagnostic
