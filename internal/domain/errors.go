package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument indicates a missing or empty required input.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInsufficientCapacity indicates the cover text cannot hold the
	// payload even after repetition.
	ErrInsufficientCapacity = errors.New("cover text has insufficient capacity")

	// ErrInsufficientData indicates extraction found too few bits to read
	// a frame header.
	ErrInsufficientData = errors.New("insufficient data extracted")

	// ErrCorruptFrame indicates an extracted frame failed to decode.
	ErrCorruptFrame = errors.New("corrupt frame")

	// ErrNoWatermark indicates no watermark is present in the text.
	ErrNoWatermark = errors.New("no watermark found")

	// ErrSignatureInvalid indicates digital signature verification failed.
	ErrSignatureInvalid = errors.New("signature verification failed")

	// ErrIntegrityViolation indicates the recomputed ciphertext hash does
	// not match the envelope's stored hash.
	ErrIntegrityViolation = errors.New("ciphertext hash mismatch")

	// ErrKeyRecovery indicates the symmetric key could not be recovered.
	ErrKeyRecovery = errors.New("symmetric key recovery failed")
)

// LayerError tags a failure with the pipeline layer it occurred in.
type LayerError struct {
	Layer int
	Op    string
	Err   error
}

func (e *LayerError) Error() string {
	return fmt.Sprintf("layer %d (%s): %v", e.Layer, e.Op, e.Err)
}

func (e *LayerError) Unwrap() error { return e.Err }

// Layerf wraps err as a LayerError for the given layer and operation.
func Layerf(layer int, op string, err error) error {
	return &LayerError{Layer: layer, Op: op, Err: err}
}
