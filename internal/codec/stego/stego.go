package stego

import (
	"encoding/base64"
	"fmt"
	"strings"
	"unicode"

	"cryptolab/internal/domain"
)

const headerBits = 32

// Codec hides and extracts byte payloads via synonym substitution. It is
// stateless; the zero value is ready to use.
type Codec struct{}

// Hide embeds payload into coverText and returns the stego text. When
// coverText is empty or contains no substitutable words the bundled
// default corpus is used instead. The cover is repeated as many times as
// needed to reach capacity; if capacity still falls short, Hide fails
// with domain.ErrInsufficientCapacity rather than truncating.
func (Codec) Hide(payload []byte, coverText string) (string, error) {
	cover := coverText
	if strings.TrimSpace(cover) == "" {
		cover = DefaultCoverText
	}

	// Base64 first so arbitrary binary and Unicode survive the
	// word-oriented channel, then 8 bits per base64 character.
	encoded := base64.StdEncoding.EncodeToString(payload)
	body := bytesToBits([]byte(encoded))

	frame := appendUint32Bits(make([]byte, 0, headerBits+len(body)+1), uint32(len(body)))
	frame = append(frame, body...)
	if len(frame)%2 != 0 {
		frame = append(frame, 0)
	}
	required := len(frame) / 2

	prepared, err := prepareCover(cover, required)
	if err != nil {
		return "", err
	}

	words := strings.Fields(prepared)
	subs := findSubstitutable(words)
	if len(subs) < required {
		return "", fmt.Errorf("%w: need %d substitutable words, found %d",
			domain.ErrInsufficientCapacity, required, len(subs))
	}

	bit := 0
	for _, s := range subs {
		if bit >= len(frame) {
			break
		}
		idx := int(frame[bit]) << 1
		if bit+1 < len(frame) {
			idx |= int(frame[bit+1])
		}
		words[s.pos] = reshape(words[s.pos], groups[s.group][idx])
		bit += 2
	}
	return strings.Join(words, " "), nil
}

// Extract recovers the payload hidden in stegoText. It fails with
// domain.ErrInsufficientData when fewer than 32 bits can be collected and
// with domain.ErrCorruptFrame when the header or payload fail to decode.
func (Codec) Extract(stegoText string) ([]byte, error) {
	var bits []byte
	for _, tok := range strings.Fields(stegoText) {
		if s, ok := synonymIndex[cleanWord(tok)]; ok {
			bits = append(bits, byte(s.index>>1), byte(s.index&1))
		}
	}
	if len(bits) < headerBits {
		return nil, fmt.Errorf("%w: only %d bits collected (need %d for the header)",
			domain.ErrInsufficientData, len(bits), headerBits)
	}

	declared := bitsToUint64(bits[:headerBits])
	available := uint64(len(bits) - headerBits)
	if declared > available {
		return nil, fmt.Errorf("%w: header declares %d payload bits but only %d are available",
			domain.ErrCorruptFrame, declared, available)
	}
	// The payload is whole base64 bytes, so a genuine frame always declares
	// a multiple of 8 bits. Anything else means the header was disturbed.
	if declared%8 != 0 {
		return nil, fmt.Errorf("%w: header declares %d payload bits, not a whole number of bytes",
			domain.ErrCorruptFrame, declared)
	}

	raw := bitsToBytes(bits[headerBits : headerBits+int(declared)])
	payload, err := base64.StdEncoding.DecodeString(string(raw))
	if err != nil {
		return nil, fmt.Errorf("%w: payload is not valid base64: %v", domain.ErrCorruptFrame, err)
	}
	return payload, nil
}

// substitution is a word position in the cover plus its synonym group.
type substitution struct {
	pos   int
	group int
}

func findSubstitutable(words []string) []substitution {
	var subs []substitution
	for i, w := range words {
		if s, ok := synonymIndex[cleanWord(w)]; ok {
			subs = append(subs, substitution{pos: i, group: s.group})
		}
	}
	return subs
}

// prepareCover repeats text until it holds at least requiredWords
// substitutable words. A cover with none at all falls back to the default
// corpus; a synonym table that leaves even the default without capacity is
// a configuration error.
func prepareCover(text string, requiredWords int) (string, error) {
	base := len(findSubstitutable(strings.Fields(text)))
	if base == 0 {
		text = DefaultCoverText
		base = len(findSubstitutable(strings.Fields(text)))
		if base == 0 {
			return "", fmt.Errorf("%w: default cover text has no substitutable words (synonym table misconfigured)",
				domain.ErrInsufficientCapacity)
		}
	}
	reps := (requiredWords + base - 1) / base
	if reps <= 1 {
		return text, nil
	}
	parts := make([]string, reps)
	for i := range parts {
		parts[i] = text
	}
	return strings.Join(parts, " "), nil
}

// cleanWord normalizes a token for table lookup: every rune that is not a
// letter or digit is dropped (so "Quick," and "quick" collide, and words
// with internal apostrophes lose them) and the rest is lower-cased.
func cleanWord(w string) string {
	var b strings.Builder
	for _, r := range w {
		if isWordRune(r) {
			b.WriteRune(unicode.ToLower(r))
		}
	}
	return b.String()
}

// reshape carries the original token's shape onto the chosen synonym:
// title-case when the original's first letter was upper-case (an all-caps
// original still only title-cases the synonym) and any trailing run of
// punctuation is kept. Leading punctuation is not preserved.
func reshape(original, synonym string) string {
	runes := []rune(original)
	end := len(runes)
	for end > 0 && !isWordRune(runes[end-1]) {
		end--
	}
	trailing := string(runes[end:])

	for _, r := range runes {
		if !unicode.IsLetter(r) {
			continue
		}
		if unicode.IsUpper(r) {
			synonym = strings.ToUpper(synonym[:1]) + synonym[1:]
		}
		break
	}
	return synonym + trailing
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

func bytesToBits(data []byte) []byte {
	bits := make([]byte, 0, len(data)*8)
	for _, b := range data {
		for i := 7; i >= 0; i-- {
			bits = append(bits, b>>uint(i)&1)
		}
	}
	return bits
}

// bitsToBytes packs bits 8 at a time, big-endian within each byte. A
// trailing partial byte is dropped.
func bitsToBytes(bits []byte) []byte {
	out := make([]byte, 0, len(bits)/8)
	for i := 0; i+8 <= len(bits); i += 8 {
		var b byte
		for _, bit := range bits[i : i+8] {
			b = b<<1 | bit
		}
		out = append(out, b)
	}
	return out
}

func appendUint32Bits(dst []byte, v uint32) []byte {
	for i := 31; i >= 0; i-- {
		dst = append(dst, byte(v>>uint(i)&1))
	}
	return dst
}

func bitsToUint64(bits []byte) uint64 {
	var v uint64
	for _, b := range bits {
		v = v<<1 | uint64(b)
	}
	return v
}

// Compile-time assertion that Codec implements domain.Hider.
var _ domain.Hider = Codec{}
