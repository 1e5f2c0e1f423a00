package crypto_test

import (
	"strings"
	"testing"

	"cryptolab/internal/crypto"
	"cryptolab/internal/domain"
)

func generateRSA(t *testing.T) domain.KeyPair {
	t.Helper()
	kp, err := crypto.GenerateRSA(2048)
	if err != nil {
		t.Fatalf("GenerateRSA: %v", err)
	}
	return kp
}

func TestRSA_GenerateKeyPair(t *testing.T) {
	kp := generateRSA(t)
	if kp.Algorithm != domain.AlgRSA || kp.KeySize != 2048 {
		t.Fatalf("unexpected pair metadata: %+v", kp)
	}
	if !strings.Contains(kp.PrivateKeyPEM, "PRIVATE KEY") || !strings.Contains(kp.PublicKeyPEM, "PUBLIC KEY") {
		t.Fatal("keys not PEM encoded")
	}
}

func TestRSA_BadKeySize(t *testing.T) {
	if _, err := crypto.GenerateRSA(512); err == nil {
		t.Fatal("expected error for 512-bit key")
	}
}

func TestOAEP_RoundTrip(t *testing.T) {
	kp := generateRSA(t)

	ct, err := crypto.EncryptOAEP("the aes session key", kp.PublicKeyPEM)
	if err != nil {
		t.Fatalf("EncryptOAEP: %v", err)
	}
	pt, err := crypto.DecryptOAEP(ct, kp.PrivateKeyPEM)
	if err != nil {
		t.Fatalf("DecryptOAEP: %v", err)
	}
	if pt != "the aes session key" {
		t.Fatalf("got %q", pt)
	}
}

func TestOAEP_MessageTooLong(t *testing.T) {
	kp := generateRSA(t)

	// 2048-bit OAEP-SHA256 caps messages at 190 bytes.
	if _, err := crypto.EncryptOAEP(strings.Repeat("x", 200), kp.PublicKeyPEM); err == nil {
		t.Fatal("expected error for oversized message")
	}
}

func TestOAEPChunked_RoundTrip(t *testing.T) {
	kp := generateRSA(t)

	// Past the 190-byte single-block limit, forcing multiple chunks.
	msg := strings.Repeat("a message far beyond one OAEP block ", 12)
	ct, err := crypto.EncryptOAEPChunked(msg, kp.PublicKeyPEM)
	if err != nil {
		t.Fatalf("EncryptOAEPChunked: %v", err)
	}
	if !strings.Contains(ct, "|||") {
		t.Fatal("oversized message did not split into chunks")
	}
	pt, err := crypto.DecryptOAEPChunked(ct, kp.PrivateKeyPEM)
	if err != nil {
		t.Fatalf("DecryptOAEPChunked: %v", err)
	}
	if pt != msg {
		t.Fatal("chunked round trip mismatch")
	}
}

func TestOAEPChunked_ShortMessageSingleChunk(t *testing.T) {
	kp := generateRSA(t)

	ct, err := crypto.EncryptOAEPChunked("short", kp.PublicKeyPEM)
	if err != nil {
		t.Fatalf("EncryptOAEPChunked: %v", err)
	}
	if strings.Contains(ct, "|||") {
		t.Fatal("short message split into chunks")
	}
	pt, err := crypto.DecryptOAEPChunked(ct, kp.PrivateKeyPEM)
	if err != nil {
		t.Fatalf("DecryptOAEPChunked: %v", err)
	}
	if pt != "short" {
		t.Fatalf("got %q", pt)
	}
}

func TestPSS_SignVerify(t *testing.T) {
	kp := generateRSA(t)

	sig, err := crypto.SignPSS("message digest", kp.PrivateKeyPEM)
	if err != nil {
		t.Fatalf("SignPSS: %v", err)
	}
	ok, err := crypto.VerifyPSS("message digest", sig, kp.PublicKeyPEM)
	if err != nil {
		t.Fatalf("VerifyPSS: %v", err)
	}
	if !ok {
		t.Fatal("valid signature rejected")
	}

	ok, err = crypto.VerifyPSS("tampered digest", sig, kp.PublicKeyPEM)
	if err != nil {
		t.Fatalf("VerifyPSS: %v", err)
	}
	if ok {
		t.Fatal("signature verified over a different message")
	}
}

func TestPSS_MalformedSignature(t *testing.T) {
	kp := generateRSA(t)

	ok, err := crypto.VerifyPSS("msg", "not-base64!!!", kp.PublicKeyPEM)
	if err != nil {
		t.Fatalf("VerifyPSS: %v", err)
	}
	if ok {
		t.Fatal("malformed signature verified")
	}
}
