package cascade_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"

	"cryptolab/internal/domain"
	"cryptolab/internal/services/cascade"
)

func newService(t *testing.T) *cascade.Service {
	t.Helper()
	log := logrus.New()
	log.SetLevel(logrus.ErrorLevel)
	return cascade.New(log)
}

func roundTrip(t *testing.T, plaintext string, layers []string) *cascade.Result {
	t.Helper()
	s := newService(t)

	res, err := s.Encrypt(cascade.EncryptRequest{Plaintext: plaintext, Layers: layers})
	if err != nil {
		t.Fatalf("Encrypt: %v", err)
	}
	dec, err := s.Decrypt(cascade.DecryptRequest{Ciphertext: res.Ciphertext, Layers: layers, Keys: res.Keys})
	if err != nil {
		t.Fatalf("Decrypt: %v", err)
	}
	if dec.Plaintext != plaintext {
		t.Fatalf("got %q, want %q", dec.Plaintext, plaintext)
	}
	return res
}

func TestRoundTrip_AllLayers(t *testing.T) {
	res := roundTrip(t, "layer me", []string{"aes", "signature", "rsa"})

	want := []string{"rsa", "signature", "aes"}
	if len(res.Layers) != len(want) {
		t.Fatalf("got %d layers, want %d", len(res.Layers), len(want))
	}
	for i, l := range want {
		if res.Layers[i] != l {
			t.Fatalf("layer %d: got %q, want %q", i, res.Layers[i], l)
		}
	}
	if res.Keys.Signature == "" {
		t.Fatal("no signature stored")
	}
	if res.Keys.IV == "" {
		t.Fatal("no IV stored")
	}
}

func TestRoundTrip_SingleLayerSubsets(t *testing.T) {
	roundTrip(t, "just aes", []string{"aes"})
	roundTrip(t, "just rsa", []string{"rsa"})
}

func TestRoundTrip_SignatureAndAES(t *testing.T) {
	res := roundTrip(t, "signed then sealed", []string{"signature", "aes"})
	if res.Keys.Encryption.PublicKeyPEM != "" {
		t.Fatal("rsa pair generated for a selection without the rsa layer")
	}
}

func TestRoundTrip_PlaintextSpansChunks(t *testing.T) {
	// Over the single-block OAEP limit of a 2048-bit key, so the rsa
	// layer must split and rejoin.
	roundTrip(t, strings.Repeat("chunky ", 60), []string{"rsa"})
}

func TestEncrypt_SignatureIsPassThrough(t *testing.T) {
	s := newService(t)

	res, err := s.Encrypt(cascade.EncryptRequest{Plaintext: "visible", Layers: []string{"signature"}})
	if err != nil {
		t.Fatalf("Encrypt: %v", err)
	}
	if res.Ciphertext != "visible" {
		t.Fatalf("signature layer changed the data: %q", res.Ciphertext)
	}
}

func TestDecrypt_TamperedSignatureRejected(t *testing.T) {
	s := newService(t)
	layers := []string{"signature", "aes"}

	res, err := s.Encrypt(cascade.EncryptRequest{Plaintext: "guarded", Layers: layers})
	if err != nil {
		t.Fatalf("Encrypt: %v", err)
	}
	keys := res.Keys
	keys.Signature = strings.Repeat("A", len(keys.Signature))
	_, err = s.Decrypt(cascade.DecryptRequest{Ciphertext: res.Ciphertext, Layers: layers, Keys: keys})
	if !errors.Is(err, domain.ErrSignatureInvalid) {
		t.Fatalf("got %v, want ErrSignatureInvalid", err)
	}
}

func TestDecrypt_TamperedCiphertextFails(t *testing.T) {
	s := newService(t)
	layers := []string{"rsa", "aes"}

	res, err := s.Encrypt(cascade.EncryptRequest{Plaintext: "brittle", Layers: layers})
	if err != nil {
		t.Fatalf("Encrypt: %v", err)
	}
	keys := res.Keys
	keys.AESKey = strings.Repeat("0", 64)
	if _, err := s.Decrypt(cascade.DecryptRequest{Ciphertext: res.Ciphertext, Layers: layers, Keys: keys}); err == nil {
		t.Fatal("decryption under the wrong key succeeded")
	}
}

func TestInvalidArguments(t *testing.T) {
	s := newService(t)

	if _, err := s.Encrypt(cascade.EncryptRequest{Plaintext: "", Layers: []string{"aes"}}); !errors.Is(err, domain.ErrInvalidArgument) {
		t.Fatalf("empty plaintext: got %v", err)
	}
	if _, err := s.Encrypt(cascade.EncryptRequest{Plaintext: "x", Layers: nil}); !errors.Is(err, domain.ErrInvalidArgument) {
		t.Fatalf("no layers: got %v", err)
	}
	if _, err := s.Encrypt(cascade.EncryptRequest{Plaintext: "x", Layers: []string{"rot13"}}); !errors.Is(err, domain.ErrInvalidArgument) {
		t.Fatalf("unknown layer: got %v", err)
	}
}
