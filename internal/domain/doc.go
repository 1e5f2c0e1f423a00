// Package domain holds the shared value types, interfaces and error
// taxonomy used across cryptolab.
//
// Everything here is a plain value object: key bundles, layer traces and
// envelopes are constructed fresh per operation and never mutated in place,
// so they are safe to hand between goroutines.
package domain
