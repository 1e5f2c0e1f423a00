package crypto_test

import (
	"testing"

	"cryptolab/internal/crypto"
	"cryptolab/internal/domain"
)

func TestECDSA_SignVerify(t *testing.T) {
	kp, err := crypto.GenerateECDSA("secp256r1")
	if err != nil {
		t.Fatalf("GenerateECDSA: %v", err)
	}
	if kp.Algorithm != domain.AlgECC || kp.Curve != "secp256r1" {
		t.Fatalf("unexpected pair metadata: %+v", kp)
	}

	sig, err := crypto.SignECDSA("hash to sign", kp.PrivateKeyPEM)
	if err != nil {
		t.Fatalf("SignECDSA: %v", err)
	}
	ok, err := crypto.VerifyECDSA("hash to sign", sig, kp.PublicKeyPEM)
	if err != nil {
		t.Fatalf("VerifyECDSA: %v", err)
	}
	if !ok {
		t.Fatal("valid signature rejected")
	}

	ok, err = crypto.VerifyECDSA("different hash", sig, kp.PublicKeyPEM)
	if err != nil {
		t.Fatalf("VerifyECDSA: %v", err)
	}
	if ok {
		t.Fatal("signature verified over a different message")
	}
}

func TestECDSA_WrongKeyRejects(t *testing.T) {
	kp1, err := crypto.GenerateECDSA("secp256r1")
	if err != nil {
		t.Fatalf("GenerateECDSA: %v", err)
	}
	kp2, err := crypto.GenerateECDSA("secp256r1")
	if err != nil {
		t.Fatalf("GenerateECDSA: %v", err)
	}

	sig, err := crypto.SignECDSA("msg", kp1.PrivateKeyPEM)
	if err != nil {
		t.Fatalf("SignECDSA: %v", err)
	}
	ok, err := crypto.VerifyECDSA("msg", sig, kp2.PublicKeyPEM)
	if err != nil {
		t.Fatalf("VerifyECDSA: %v", err)
	}
	if ok {
		t.Fatal("signature verified under the wrong key")
	}
}

func TestECDSA_LargerCurves(t *testing.T) {
	for _, curve := range []string{"secp384r1", "secp521r1"} {
		kp, err := crypto.GenerateECDSA(curve)
		if err != nil {
			t.Fatalf("GenerateECDSA(%s): %v", curve, err)
		}
		sig, err := crypto.SignECDSA("m", kp.PrivateKeyPEM)
		if err != nil {
			t.Fatalf("SignECDSA(%s): %v", curve, err)
		}
		ok, err := crypto.VerifyECDSA("m", sig, kp.PublicKeyPEM)
		if err != nil || !ok {
			t.Fatalf("VerifyECDSA(%s): ok=%v err=%v", curve, ok, err)
		}
	}
}

func TestECDSA_UnknownCurve(t *testing.T) {
	if _, err := crypto.GenerateECDSA("curve25519"); err == nil {
		t.Fatal("expected error for unsupported curve")
	}
}
