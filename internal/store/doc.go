// Package store persists key bundles on disk.
//
// Each bundle is JSON encoded and sealed with ChaCha20-Poly1305 under a
// key derived from the caller's passphrase with scrypt, then written to
// its own <id>.bundle file. The layered pipeline itself holds no state;
// this store only exists so the CLI can reuse a bundle across the
// encrypt and decrypt invocations of one session.
package store
