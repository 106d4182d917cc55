// Package solver finds the lowest resolved value over seeds of an almanac.
//
// Part one resolves an explicit seed list. Part two resolves every seed of
// a list of seed ranges; the ranges are cut into chunks of consecutive
// seeds that a fixed pool of workers resolves through the shared, read-only
// almanac. Per-chunk minima are reduced once all workers are done, so the
// result does not depend on scheduling.
package solver
