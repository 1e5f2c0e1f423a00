// Package keyring generates the key bundles one layered encryption
// session needs: a 256-bit symmetric key, a key-encryption pair and a
// signing pair.
package keyring
