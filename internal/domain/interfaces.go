package domain

// CryptoProvider exposes the primitive operations the layered pipeline is
// built on. All values are strings at the boundary: keys are PEM or hex,
// ciphertexts, IVs and signatures are base64.
type CryptoProvider interface {
	// SymmetricEncrypt encrypts plaintext under key with a fresh random IV
	// and returns base64 ciphertext and IV.
	SymmetricEncrypt(plaintext, key string) (ciphertext, iv string, err error)
	// SymmetricDecrypt reverses SymmetricEncrypt.
	SymmetricDecrypt(ciphertext, key, iv string) (string, error)

	// AsymmetricEncrypt encrypts data under an RSA public key (OAEP).
	AsymmetricEncrypt(data, publicKeyPEM string) (string, error)
	// AsymmetricDecrypt reverses AsymmetricEncrypt.
	AsymmetricDecrypt(ciphertext, privateKeyPEM string) (string, error)

	// Sign signs message with the private key. algorithm selects RSA-PSS
	// (AlgRSASig) or ECDSA (AlgECDSA).
	Sign(message, privateKeyPEM, algorithm string) (string, error)
	// Verify reports whether signature is valid over message.
	Verify(message, signature, publicKeyPEM, algorithm string) (bool, error)
}

// Watermarker embeds, extracts and strips invisible identifiers.
type Watermarker interface {
	Embed(text, identifier string) (string, error)
	Extract(text string) (string, error)
	Strip(text string) string
}

// Hider embeds and extracts arbitrary byte payloads in natural-language
// cover text.
type Hider interface {
	Hide(payload []byte, coverText string) (string, error)
	Extract(stegoText string) ([]byte, error)
}

// BundleStore persists key bundles encrypted under a passphrase.
type BundleStore interface {
	Save(passphrase string, bundle KeyBundle) error
	Load(passphrase, id string) (KeyBundle, error)
	List() ([]string, error)
}
