package spacing

import (
	"fmt"
	"strings"

	"cryptolab/internal/domain"
)

const headerBits = 16

// DefaultCoverText is used when the caller supplies no cover. It offers
// enough gaps for short payloads before any repetition kicks in.
const DefaultCoverText = `Cryptography has been an essential tool for secure communication throughout human history.
Ancient civilizations used simple substitution ciphers to protect sensitive information from adversaries.
Modern cryptography employs sophisticated mathematical algorithms to ensure data security.
Public key cryptography revolutionized secure communication in the digital age.
Today, encryption protects everything from online banking to private messages.`

// Codec hides and extracts byte payloads via word spacing. It is
// stateless; the zero value is ready to use.
type Codec struct{}

var _ domain.Hider = Codec{}

// Hide embeds payload into the gaps of coverText. An empty cover falls
// back to the bundled default, and the cover is repeated until it
// offers enough gaps.
func (Codec) Hide(payload []byte, coverText string) (string, error) {
	if len(payload) > 1<<headerBits-1 {
		return "", fmt.Errorf("%w: payload of %d bytes exceeds the %d-byte frame limit",
			domain.ErrInvalidArgument, len(payload), 1<<headerBits-1)
	}
	cover := coverText
	if strings.TrimSpace(cover) == "" {
		cover = DefaultCoverText
	}
	words := strings.Fields(cover)
	if len(words) < 2 {
		return "", fmt.Errorf("%w: cover text has no word gaps", domain.ErrInsufficientCapacity)
	}

	frame := appendUint16Bits(make([]byte, 0, headerBits+8*len(payload)), uint16(len(payload)))
	for _, b := range payload {
		for shift := 7; shift >= 0; shift-- {
			frame = append(frame, b>>shift&1)
		}
	}

	for len(words)-1 < len(frame) {
		words = append(words, strings.Fields(cover)...)
	}

	var sb strings.Builder
	for i, w := range words {
		sb.WriteString(w)
		if i == len(words)-1 {
			break
		}
		if i < len(frame) && frame[i] == 1 {
			sb.WriteString("  ")
		} else {
			sb.WriteString(" ")
		}
	}
	return sb.String(), nil
}

// Extract recovers the payload hidden in stegoText. It fails with
// domain.ErrInsufficientData when fewer than 16 gaps are present and
// with domain.ErrCorruptFrame when the declared length exceeds the
// available bits.
func (Codec) Extract(stegoText string) ([]byte, error) {
	var bits []byte
	run := 0
	sawWord := false
	for _, r := range stegoText {
		if r == ' ' {
			if sawWord {
				run++
			}
			continue
		}
		if run > 0 {
			if run >= 2 {
				bits = append(bits, 1)
			} else {
				bits = append(bits, 0)
			}
			run = 0
		}
		sawWord = true
	}
	if len(bits) < headerBits {
		return nil, fmt.Errorf("%w: only %d gaps found (need %d for the header)",
			domain.ErrInsufficientData, len(bits), headerBits)
	}

	declared := 0
	for _, b := range bits[:headerBits] {
		declared = declared<<1 | int(b)
	}
	if 8*declared > len(bits)-headerBits {
		return nil, fmt.Errorf("%w: header declares %d payload bytes but only %d bits follow",
			domain.ErrCorruptFrame, declared, len(bits)-headerBits)
	}

	payload := make([]byte, 0, declared)
	for i := 0; i < declared; i++ {
		var b byte
		for _, bit := range bits[headerBits+8*i : headerBits+8*i+8] {
			b = b<<1 | bit
		}
		payload = append(payload, b)
	}
	return payload, nil
}

// Capacity reports how many payload bytes fit in coverText without
// repetition.
func (Codec) Capacity(coverText string) int {
	gaps := len(strings.Fields(coverText)) - 1
	if gaps <= headerBits {
		return 0
	}
	return (gaps - headerBits) / 8
}

func appendUint16Bits(dst []byte, v uint16) []byte {
	for shift := headerBits - 1; shift >= 0; shift-- {
		dst = append(dst, byte(v>>shift&1))
	}
	return dst
}
