// Package match finds near-miss names, used to suggest the domain a
// misspelled stage header was probably meant to refer to.
package match
