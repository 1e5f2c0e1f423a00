package keyring_test

import (
	"encoding/hex"
	"testing"

	"cryptolab/internal/domain"
	"cryptolab/internal/services/keyring"
)

func TestGenerate_RSA(t *testing.T) {
	bundle, err := keyring.Service{}.Generate(false)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if bundle.ID == "" {
		t.Fatal("bundle has no id")
	}
	key, err := hex.DecodeString(bundle.SymmetricKey)
	if err != nil || len(key) != 32 {
		t.Fatalf("symmetric key not 32 hex-encoded bytes: %v", err)
	}
	if bundle.KeyEncryption.Algorithm != domain.AlgRSA {
		t.Fatalf("key encryption algorithm %q", bundle.KeyEncryption.Algorithm)
	}
	if bundle.Signing.Algorithm != domain.AlgRSASig {
		t.Fatalf("signing algorithm %q", bundle.Signing.Algorithm)
	}
	if bundle.UseECC {
		t.Fatal("UseECC set on rsa bundle")
	}
}

func TestGenerate_ECC(t *testing.T) {
	bundle, err := keyring.Service{}.Generate(true)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if bundle.KeyEncryption.Algorithm != domain.AlgECC || bundle.KeyEncryption.Curve != "secp256r1" {
		t.Fatalf("key encryption pair: %+v", bundle.KeyEncryption)
	}
	if bundle.Signing.Algorithm != domain.AlgECDSA {
		t.Fatalf("signing algorithm %q", bundle.Signing.Algorithm)
	}
	if !bundle.UseECC {
		t.Fatal("UseECC not set on ecc bundle")
	}
}

func TestGenerate_DistinctKeys(t *testing.T) {
	a, err := keyring.Service{}.Generate(true)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	b, err := keyring.Service{}.Generate(true)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if a.SymmetricKey == b.SymmetricKey || a.ID == b.ID {
		t.Fatal("bundles share key material or ids")
	}
	if a.KeyEncryption.PrivateKeyPEM == a.Signing.PrivateKeyPEM {
		t.Fatal("key-encryption and signing pairs are identical")
	}
}
