package domain

// Key-encryption and signature algorithm identifiers.
const (
	AlgRSA    = "RSA"
	AlgECC    = "ECC"
	AlgRSASig = "RSA-SHA256"
	AlgECDSA  = "ECDSA"
)

// KeyPair is an asymmetric key pair serialized to PEM.
//
// KeySize is set for RSA pairs, Curve for ECDSA pairs; the other field is
// left at its zero value.
type KeyPair struct {
	Algorithm     string `json:"algorithm"`
	PublicKeyPEM  string `json:"public_key"`
	PrivateKeyPEM string `json:"private_key"`
	KeySize       int    `json:"key_size,omitempty"`
	Curve         string `json:"curve,omitempty"`
}

// KeyBundle carries every key one layered encryption session needs.
//
// The caller owns the bundle's lifetime; the pipeline never persists it.
// SymmetricKey is the 256-bit AES key, hex encoded.
type KeyBundle struct {
	ID            string  `json:"id"`
	SymmetricKey  string  `json:"symmetric_key"`
	KeyEncryption KeyPair `json:"key_encryption"`
	Signing       KeyPair `json:"signing"`
	UseECC        bool    `json:"use_ecc"`
}

// LayerOutput records one forward layer for display. It is observational
// only; decryption never consumes it.
type LayerOutput struct {
	Layer     int               `json:"layer"`
	Name      string            `json:"name"`
	Algorithm string            `json:"algorithm"`
	Input     string            `json:"input"`
	Output    string            `json:"output"`
	Metadata  map[string]string `json:"metadata,omitempty"`
}

// Envelope is the terminal artifact of layered encryption and, together
// with the KeyBundle, the sole input decryption needs.
//
// CiphertextHash is the hex SHA-256 of the watermarked ciphertext (after
// layer 3, before layer 5). The reverse pipeline re-derives the hash over
// the still-watermarked ciphertext, so this ordering must not change.
type Envelope struct {
	StegoText      string `json:"stego_text"`
	EncryptedKey   string `json:"encrypted_key"`
	Signature      string `json:"signature"`
	CiphertextHash string `json:"ciphertext_hash"`
	IV             string `json:"iv"`
}

// EncryptResult is returned by the layered pipeline's forward direction.
type EncryptResult struct {
	Envelope Envelope
	Keys     KeyBundle
	Layers   []LayerOutput
}

// DecryptStep records one reverse layer for display.
type DecryptStep struct {
	Layer  int    `json:"layer"`
	Name   string `json:"name"`
	Detail string `json:"detail,omitempty"`
}

// DecryptResult is returned by the layered pipeline's reverse direction.
// A result is only ever produced with both gates passed; WatermarkFound is
// false when the diagnostic watermark extraction failed.
type DecryptResult struct {
	Plaintext         string
	Watermark         string
	WatermarkFound    bool
	SignatureVerified bool
	HashVerified      bool
	Steps             []DecryptStep
}
