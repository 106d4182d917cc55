// Package almanac parses the day-5 almanac and resolves seeds through its
// chain of mapping stages.
//
// An almanac is a seed list followed by stages such as
//
//	seed-to-soil map:
//	50 98 2
//	52 50 48
//
// Each body line is "<destination> <source> <length>" and describes the
// half-open source interval [source, source+length) moved onto
// [destination, destination+length). Values outside every interval of a
// stage pass through unchanged.
//
// Resolution starts in the "seed" domain and follows the stage whose source
// domain matches the current one until no stage is left. The chain of
// stages is computed once by Parse; an Almanac is immutable afterwards and
// safe for concurrent use.
package almanac
