package crypto

import (
	"crypto"
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha256"
	"crypto/x509"
	"encoding/base64"
	"encoding/pem"
	"fmt"
	"strings"

	"cryptolab/internal/domain"
)

// GenerateRSA returns a fresh RSA key pair of the given size serialized
// to PEM. Accepted sizes are 1024, 2048, 3072 and 4096 bits.
func GenerateRSA(bits int) (domain.KeyPair, error) {
	switch bits {
	case 1024, 2048, 3072, 4096:
	default:
		return domain.KeyPair{}, fmt.Errorf("rsa key size must be 1024, 2048, 3072 or 4096, got %d", bits)
	}
	key, err := rsa.GenerateKey(rand.Reader, bits)
	if err != nil {
		return domain.KeyPair{}, err
	}
	privPEM, pubPEM, err := encodeKeyPair(key, &key.PublicKey)
	if err != nil {
		return domain.KeyPair{}, err
	}
	return domain.KeyPair{
		Algorithm:     domain.AlgRSA,
		PublicKeyPEM:  pubPEM,
		PrivateKeyPEM: privPEM,
		KeySize:       bits,
	}, nil
}

// EncryptOAEP encrypts plaintext under the public key using OAEP with
// SHA-256 and returns base64 ciphertext.
func EncryptOAEP(plaintext, publicKeyPEM string) (string, error) {
	pub, err := parseRSAPublic(publicKeyPEM)
	if err != nil {
		return "", err
	}
	// OAEP limits the message to k - 2*hLen - 2 bytes.
	maxLen := pub.Size() - 2*sha256.Size - 2
	if len(plaintext) > maxLen {
		return "", fmt.Errorf("plaintext too long for %d-bit key: max %d bytes", pub.Size()*8, maxLen)
	}
	ct, err := rsa.EncryptOAEP(sha256.New(), rand.Reader, pub, []byte(plaintext), nil)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(ct), nil
}

// chunkSeparator joins the per-chunk ciphertexts of EncryptOAEPChunked.
const chunkSeparator = "|||"

// EncryptOAEPChunked encrypts plaintext of any length by splitting it
// into blocks that fit the key's OAEP limit. The base64 ciphertext of
// each block is joined with "|||".
func EncryptOAEPChunked(plaintext, publicKeyPEM string) (string, error) {
	pub, err := parseRSAPublic(publicKeyPEM)
	if err != nil {
		return "", err
	}
	maxLen := pub.Size() - 2*sha256.Size - 2
	data := []byte(plaintext)

	var chunks []string
	for len(data) > 0 {
		n := min(maxLen, len(data))
		ct, err := rsa.EncryptOAEP(sha256.New(), rand.Reader, pub, data[:n], nil)
		if err != nil {
			return "", err
		}
		chunks = append(chunks, base64.StdEncoding.EncodeToString(ct))
		data = data[n:]
	}
	return strings.Join(chunks, chunkSeparator), nil
}

// DecryptOAEPChunked reverses EncryptOAEPChunked.
func DecryptOAEPChunked(ciphertext, privateKeyPEM string) (string, error) {
	priv, err := parseRSAPrivate(privateKeyPEM)
	if err != nil {
		return "", err
	}
	var out []byte
	for _, chunk := range strings.Split(ciphertext, chunkSeparator) {
		ct, err := base64.StdEncoding.DecodeString(chunk)
		if err != nil {
			return "", fmt.Errorf("decode ciphertext chunk: %w", err)
		}
		pt, err := rsa.DecryptOAEP(sha256.New(), rand.Reader, priv, ct, nil)
		if err != nil {
			return "", err
		}
		out = append(out, pt...)
	}
	return string(out), nil
}

// DecryptOAEP reverses EncryptOAEP.
func DecryptOAEP(ciphertext, privateKeyPEM string) (string, error) {
	priv, err := parseRSAPrivate(privateKeyPEM)
	if err != nil {
		return "", err
	}
	ct, err := base64.StdEncoding.DecodeString(ciphertext)
	if err != nil {
		return "", fmt.Errorf("decode ciphertext: %w", err)
	}
	pt, err := rsa.DecryptOAEP(sha256.New(), rand.Reader, priv, ct, nil)
	if err != nil {
		return "", err
	}
	return string(pt), nil
}

// SignPSS signs message with RSA-PSS over SHA-256 using the maximum salt
// length and returns the base64 signature.
func SignPSS(message, privateKeyPEM string) (string, error) {
	priv, err := parseRSAPrivate(privateKeyPEM)
	if err != nil {
		return "", err
	}
	digest := sha256.Sum256([]byte(message))
	sig, err := rsa.SignPSS(rand.Reader, priv, crypto.SHA256, digest[:], &rsa.PSSOptions{
		SaltLength: rsa.PSSSaltLengthAuto,
	})
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(sig), nil
}

// VerifyPSS reports whether signature is a valid RSA-PSS signature over
// message. A malformed signature yields false, not an error.
func VerifyPSS(message, signature, publicKeyPEM string) (bool, error) {
	pub, err := parseRSAPublic(publicKeyPEM)
	if err != nil {
		return false, err
	}
	sig, err := base64.StdEncoding.DecodeString(signature)
	if err != nil {
		return false, nil
	}
	digest := sha256.Sum256([]byte(message))
	if err := rsa.VerifyPSS(pub, crypto.SHA256, digest[:], sig, &rsa.PSSOptions{
		SaltLength: rsa.PSSSaltLengthAuto,
	}); err != nil {
		return false, nil
	}
	return true, nil
}

func parseRSAPrivate(pemStr string) (*rsa.PrivateKey, error) {
	key, err := parsePrivateKey(pemStr)
	if err != nil {
		return nil, err
	}
	priv, ok := key.(*rsa.PrivateKey)
	if !ok {
		return nil, fmt.Errorf("not an RSA private key")
	}
	return priv, nil
}

func parseRSAPublic(pemStr string) (*rsa.PublicKey, error) {
	key, err := parsePublicKey(pemStr)
	if err != nil {
		return nil, err
	}
	pub, ok := key.(*rsa.PublicKey)
	if !ok {
		return nil, fmt.Errorf("not an RSA public key")
	}
	return pub, nil
}

// encodeKeyPair serializes a private key as PKCS#8 and the matching
// public key as SubjectPublicKeyInfo, both PEM armored.
func encodeKeyPair(priv, pub any) (privPEM, pubPEM string, err error) {
	privDER, err := x509.MarshalPKCS8PrivateKey(priv)
	if err != nil {
		return "", "", err
	}
	pubDER, err := x509.MarshalPKIXPublicKey(pub)
	if err != nil {
		return "", "", err
	}
	privPEM = string(pem.EncodeToMemory(&pem.Block{Type: "PRIVATE KEY", Bytes: privDER}))
	pubPEM = string(pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: pubDER}))
	return privPEM, pubPEM, nil
}

func parsePrivateKey(pemStr string) (any, error) {
	block, _ := pem.Decode([]byte(pemStr))
	if block == nil {
		return nil, fmt.Errorf("no PEM block in private key")
	}
	return x509.ParsePKCS8PrivateKey(block.Bytes)
}

func parsePublicKey(pemStr string) (any, error) {
	block, _ := pem.Decode([]byte(pemStr))
	if block == nil {
		return nil, fmt.Errorf("no PEM block in public key")
	}
	return x509.ParsePKIXPublicKey(block.Bytes)
}
