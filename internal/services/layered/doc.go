// Package layered drives the 5-layer encryption workflow and its exact
// reverse.
//
// Forward order: AES encryption of the plaintext, asymmetric wrapping of
// the AES key, zero-width watermarking of the ciphertext, SHA-256 hash
// plus digital signature of the watermarked ciphertext, and finally
// linguistic steganography of the watermarked ciphertext into cover text.
//
// Decryption mirrors the layers back to front. Signature verification and
// the hash comparison are both mandatory gates: no plaintext is ever
// returned unless both pass. Watermark extraction alone is diagnostic and
// degrades to "not found" instead of aborting.
package layered
