// Package watermark embeds short identifiers into text using zero-width
// Unicode characters.
//
// The identifier is framed as "WM:<id>:WM", expanded to 8 bits per byte,
// and each bit is mapped to one of two invisible code points (U+200B for
// 0, U+200C for 1). The run is inserted after the first sentence boundary
// of the host text, so the visible text is unchanged.
//
// Extraction scans the entire text for the two code points, not just the
// contiguous run. That makes it robust to the run being moved around, but
// any stray zero-width character elsewhere in the text corrupts the
// decoded frame.
package watermark
