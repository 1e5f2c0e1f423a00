// Package crypto exposes the primitives used by cryptolab.
//
// Contents
//
//   - AES-256 in CBC and ECB mode with PKCS#7 padding (EncryptCBC,
//     DecryptCBC, EncryptECB, DecryptECB)
//   - RSA key generation, OAEP encryption and PSS signatures
//     (GenerateRSA, EncryptOAEP, DecryptOAEP, SignPSS, VerifyPSS)
//   - ECDSA key generation, signing and verification over the NIST curves
//     (GenerateECDSA, SignECDSA, VerifyECDSA)
//   - Best-effort memory wiping for sensitive byte slices (Zero)
//
// # Notes
//
// Keys cross package boundaries as PEM strings (PKCS#8 private keys,
// SubjectPublicKeyInfo public keys); ciphertexts, IVs and signatures as
// base64. The symmetric key is treated as a passphrase: it is hashed with
// SHA-256 and truncated to the requested key size before use, so any
// string is a valid key. Provider adapts these functions to the
// domain.CryptoProvider interface.
package crypto
