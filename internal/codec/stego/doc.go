// Package stego hides byte payloads in natural-language cover text via
// synonym substitution.
//
// Each substitutable word carries 2 bits: the synonym table holds groups
// of four interchangeable words, and the index of the chosen synonym
// within its group is the encoded value. The payload is base64 encoded
// first so arbitrary binary survives the word-oriented channel, then
// framed with a 32-bit big-endian bit-length header.
//
// Encoding through word choice rather than spacing or zero-width tricks
// survives copy-paste and plain-text transport, at the cost of density
// (4 synonyms per group caps a word at 2 bits).
package stego
