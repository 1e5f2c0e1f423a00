// Package spacing hides byte payloads in the gaps between words. Each
// gap carries one bit: a single space encodes 0 and a double space
// encodes 1. A 16-bit big-endian byte count precedes the payload, so a
// cover must offer at least 16 gaps before any payload fits.
//
// The channel survives plain-text copying but not whitespace
// normalization; any editor that collapses runs of spaces destroys the
// payload.
package spacing
