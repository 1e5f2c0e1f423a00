package keyring

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"github.com/google/uuid"

	"cryptolab/internal/crypto"
	"cryptolab/internal/domain"
)

const (
	symmetricKeyBytes = 32 // 256-bit AES key
	rsaKeySize        = 2048
	eccCurve          = "secp256r1"
)

// Service generates key bundles. It is stateless; the zero value is
// ready to use.
type Service struct{}

// Generate returns a fresh key bundle. With useECC the key-encryption and
// signing pairs are ECDSA on P-256; otherwise both are RSA-2048.
func (Service) Generate(useECC bool) (domain.KeyBundle, error) {
	symKey := make([]byte, symmetricKeyBytes)
	if _, err := rand.Read(symKey); err != nil {
		return domain.KeyBundle{}, fmt.Errorf("generate symmetric key: %w", err)
	}
	defer crypto.Zero(symKey)

	bundle := domain.KeyBundle{
		ID:           uuid.NewString(),
		SymmetricKey: hex.EncodeToString(symKey),
		UseECC:       useECC,
	}

	if useECC {
		keyEnc, err := crypto.GenerateECDSA(eccCurve)
		if err != nil {
			return domain.KeyBundle{}, fmt.Errorf("generate key-encryption pair: %w", err)
		}
		signing, err := crypto.GenerateECDSA(eccCurve)
		if err != nil {
			return domain.KeyBundle{}, fmt.Errorf("generate signing pair: %w", err)
		}
		signing.Algorithm = domain.AlgECDSA
		bundle.KeyEncryption = keyEnc
		bundle.Signing = signing
		return bundle, nil
	}

	keyEnc, err := crypto.GenerateRSA(rsaKeySize)
	if err != nil {
		return domain.KeyBundle{}, fmt.Errorf("generate key-encryption pair: %w", err)
	}
	signing, err := crypto.GenerateRSA(rsaKeySize)
	if err != nil {
		return domain.KeyBundle{}, fmt.Errorf("generate signing pair: %w", err)
	}
	signing.Algorithm = domain.AlgRSASig
	bundle.KeyEncryption = keyEnc
	bundle.Signing = signing
	return bundle, nil
}
