package crypto

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"fmt"

	"cryptolab/internal/domain"
)

// curveByName maps the curve names accepted at the boundary to their
// stdlib implementations.
func curveByName(name string) (elliptic.Curve, error) {
	switch name {
	case "secp256r1", "P-256":
		return elliptic.P256(), nil
	case "secp384r1", "P-384":
		return elliptic.P384(), nil
	case "secp521r1", "P-521":
		return elliptic.P521(), nil
	}
	return nil, fmt.Errorf("unsupported curve %q (want secp256r1, secp384r1 or secp521r1)", name)
}

// GenerateECDSA returns a fresh ECDSA key pair on the named curve
// serialized to PEM.
func GenerateECDSA(curve string) (domain.KeyPair, error) {
	c, err := curveByName(curve)
	if err != nil {
		return domain.KeyPair{}, err
	}
	key, err := ecdsa.GenerateKey(c, rand.Reader)
	if err != nil {
		return domain.KeyPair{}, err
	}
	privPEM, pubPEM, err := encodeKeyPair(key, &key.PublicKey)
	if err != nil {
		return domain.KeyPair{}, err
	}
	return domain.KeyPair{
		Algorithm:     domain.AlgECC,
		PublicKeyPEM:  pubPEM,
		PrivateKeyPEM: privPEM,
		Curve:         curve,
	}, nil
}

// SignECDSA signs message with ECDSA over SHA-256 and returns the ASN.1
// signature base64 encoded.
func SignECDSA(message, privateKeyPEM string) (string, error) {
	priv, err := parseECDSAPrivate(privateKeyPEM)
	if err != nil {
		return "", err
	}
	digest := sha256.Sum256([]byte(message))
	sig, err := ecdsa.SignASN1(rand.Reader, priv, digest[:])
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(sig), nil
}

// VerifyECDSA reports whether signature is a valid ECDSA signature over
// message. A malformed signature yields false, not an error.
func VerifyECDSA(message, signature, publicKeyPEM string) (bool, error) {
	pub, err := parseECDSAPublic(publicKeyPEM)
	if err != nil {
		return false, err
	}
	sig, err := base64.StdEncoding.DecodeString(signature)
	if err != nil {
		return false, nil
	}
	digest := sha256.Sum256([]byte(message))
	return ecdsa.VerifyASN1(pub, digest[:], sig), nil
}

func parseECDSAPrivate(pemStr string) (*ecdsa.PrivateKey, error) {
	key, err := parsePrivateKey(pemStr)
	if err != nil {
		return nil, err
	}
	priv, ok := key.(*ecdsa.PrivateKey)
	if !ok {
		return nil, fmt.Errorf("not an ECDSA private key")
	}
	return priv, nil
}

func parseECDSAPublic(pemStr string) (*ecdsa.PublicKey, error) {
	key, err := parsePublicKey(pemStr)
	if err != nil {
		return nil, err
	}
	pub, ok := key.(*ecdsa.PublicKey)
	if !ok {
		return nil, fmt.Errorf("not an ECDSA public key")
	}
	return pub, nil
}
