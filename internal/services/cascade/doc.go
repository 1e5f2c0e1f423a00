// Package cascade stacks a caller-selected subset of RSA, digital
// signature and AES layers over a plaintext. Layers always apply in the
// fixed order RSA, signature, AES regardless of how the caller lists
// them, and decryption walks the stack in reverse.
//
// The signature layer is pass-through: it signs the data flowing past
// and stores the signature in the key set rather than embedding it, so
// the ciphertext shape is independent of whether signing was requested.
package cascade
