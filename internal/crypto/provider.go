package crypto

import (
	"fmt"

	"cryptolab/internal/domain"
)

// Provider adapts the primitive functions in this package to the
// domain.CryptoProvider interface. It is stateless; the zero value is
// ready to use.
type Provider struct{}

func (Provider) SymmetricEncrypt(plaintext, key string) (string, string, error) {
	return EncryptCBC(plaintext, key)
}

func (Provider) SymmetricDecrypt(ciphertext, key, iv string) (string, error) {
	return DecryptCBC(ciphertext, key, iv)
}

func (Provider) AsymmetricEncrypt(data, publicKeyPEM string) (string, error) {
	return EncryptOAEP(data, publicKeyPEM)
}

func (Provider) AsymmetricDecrypt(ciphertext, privateKeyPEM string) (string, error) {
	return DecryptOAEP(ciphertext, privateKeyPEM)
}

func (Provider) Sign(message, privateKeyPEM, algorithm string) (string, error) {
	switch algorithm {
	case domain.AlgRSASig:
		return SignPSS(message, privateKeyPEM)
	case domain.AlgECDSA:
		return SignECDSA(message, privateKeyPEM)
	}
	return "", fmt.Errorf("unsupported signature algorithm %q", algorithm)
}

func (Provider) Verify(message, signature, publicKeyPEM, algorithm string) (bool, error) {
	switch algorithm {
	case domain.AlgRSASig:
		return VerifyPSS(message, signature, publicKeyPEM)
	case domain.AlgECDSA:
		return VerifyECDSA(message, signature, publicKeyPEM)
	}
	return false, fmt.Errorf("unsupported signature algorithm %q", algorithm)
}

// Compile-time assertion that Provider implements domain.CryptoProvider.
var _ domain.CryptoProvider = Provider{}
