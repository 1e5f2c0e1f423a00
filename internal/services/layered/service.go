package layered

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"cryptolab/internal/domain"
)

// Keygen produces key bundles when the caller does not supply one.
type Keygen interface {
	Generate(useECC bool) (domain.KeyBundle, error)
}

// Service orchestrates the layered pipeline. All methods are pure over
// their inputs; a Service is safe for concurrent use.
type Service struct {
	provider domain.CryptoProvider
	marker   domain.Watermarker
	hider    domain.Hider
	keygen   Keygen
	log      *logrus.Logger
}

// New constructs a pipeline service. A nil logger is replaced with a
// default logrus logger.
func New(provider domain.CryptoProvider, marker domain.Watermarker, hider domain.Hider, keygen Keygen, log *logrus.Logger) *Service {
	if log == nil {
		log = logrus.New()
	}
	return &Service{
		provider: provider,
		marker:   marker,
		hider:    hider,
		keygen:   keygen,
		log:      log,
	}
}

// EncryptRequest carries the caller-supplied inputs for Encrypt.
//
// Keys is optional; when nil a fresh bundle is generated according to
// UseECC. CoverText is optional; the stego codec falls back to its
// bundled corpus.
type EncryptRequest struct {
	Plaintext string
	Sender    string
	Keys      *domain.KeyBundle
	UseECC    bool
	CoverText string
}

// DecryptRequest carries the envelope and keys for Decrypt.
type DecryptRequest struct {
	Envelope domain.Envelope
	Keys     domain.KeyBundle
}

// Encrypt runs the five forward layers. Any layer failure aborts the
// whole operation; no partial envelope is ever returned.
func (s *Service) Encrypt(req EncryptRequest) (*domain.EncryptResult, error) {
	if req.Plaintext == "" || req.Sender == "" {
		return nil, fmt.Errorf("%w: plaintext and sender are required", domain.ErrInvalidArgument)
	}

	keys := req.Keys
	if keys == nil {
		generated, err := s.keygen.Generate(req.UseECC)
		if err != nil {
			return nil, fmt.Errorf("key generation: %w", err)
		}
		keys = &generated
	}

	s.log.WithFields(logrus.Fields{
		"sender":  req.Sender,
		"use_ecc": keys.UseECC,
	}).Info("layered encryption started")

	var layers []domain.LayerOutput

	// Layer 1: AES encryption of the plaintext under a fresh IV.
	ciphertext, iv, err := s.provider.SymmetricEncrypt(req.Plaintext, keys.SymmetricKey)
	if err != nil {
		return nil, domain.Layerf(1, "aes encryption", err)
	}
	layers = append(layers, domain.LayerOutput{
		Layer:     1,
		Name:      "AES Encryption",
		Algorithm: "AES-256-CBC",
		Input:     req.Plaintext,
		Output:    ciphertext,
		Metadata:  map[string]string{"iv": iv},
	})
	s.log.WithField("ciphertext_len", len(ciphertext)).Debug("layer 1 complete")

	// Layer 2: wrap the AES key. The ECC branch passes the key through
	// unmodified; real hybrid encryption (ECIES) is out of scope and this
	// weakness is deliberate and documented.
	var encryptedKey, keyEncMethod string
	if keys.UseECC {
		encryptedKey = keys.SymmetricKey
		keyEncMethod = "ECC-Based (Simplified)"
	} else {
		encryptedKey, err = s.provider.AsymmetricEncrypt(keys.SymmetricKey, keys.KeyEncryption.PublicKeyPEM)
		if err != nil {
			return nil, domain.Layerf(2, "rsa key encryption", err)
		}
		keyEncMethod = "RSA-2048"
	}
	layers = append(layers, domain.LayerOutput{
		Layer:     2,
		Name:      "Key Encryption",
		Algorithm: keys.KeyEncryption.Algorithm,
		Input:     keys.SymmetricKey,
		Output:    encryptedKey,
		Metadata:  map[string]string{"method": keyEncMethod},
	})
	s.log.WithField("method", keyEncMethod).Debug("layer 2 complete")

	// Layer 3: watermark the ciphertext with the sender identifier.
	watermarked, err := s.marker.Embed(ciphertext, req.Sender)
	if err != nil {
		return nil, domain.Layerf(3, "text watermarking", err)
	}
	layers = append(layers, domain.LayerOutput{
		Layer:     3,
		Name:      "Text Watermarking",
		Algorithm: "Zero-Width Characters",
		Input:     ciphertext,
		Output:    watermarked,
		Metadata:  map[string]string{"watermark": req.Sender},
	})
	s.log.WithField("watermarked_len", len(watermarked)).Debug("layer 3 complete")

	// Layer 4: hash the watermarked ciphertext and sign the hash. Hashing
	// before the watermark is stripped is what lets decryption re-derive
	// the same digest.
	digest := sha256.Sum256([]byte(watermarked))
	ciphertextHash := hex.EncodeToString(digest[:])
	signature, err := s.provider.Sign(ciphertextHash, keys.Signing.PrivateKeyPEM, keys.Signing.Algorithm)
	if err != nil {
		return nil, domain.Layerf(4, "digital signature", err)
	}
	layers = append(layers, domain.LayerOutput{
		Layer:     4,
		Name:      "Digital Signature",
		Algorithm: keys.Signing.Algorithm,
		Input:     ciphertextHash,
		Output:    signature,
		Metadata:  map[string]string{"hash_algorithm": "SHA-256", "hash": ciphertextHash},
	})
	s.log.WithField("hash", ciphertextHash).Debug("layer 4 complete")

	// Layer 5: hide the watermarked ciphertext in cover text. The stego
	// codec base64-encodes the payload itself, which is what carries the
	// zero-width characters through the word channel intact.
	stegoText, err := s.hider.Hide([]byte(watermarked), req.CoverText)
	if err != nil {
		return nil, domain.Layerf(5, "linguistic steganography", err)
	}
	layers = append(layers, domain.LayerOutput{
		Layer:     5,
		Name:      "Linguistic Steganography",
		Algorithm: "Synonym Substitution",
		Input:     watermarked,
		Output:    stegoText,
		Metadata:  map[string]string{"method": "linguistic-synonym-substitution"},
	})
	s.log.WithField("stego_len", len(stegoText)).Info("layered encryption complete")

	return &domain.EncryptResult{
		Envelope: domain.Envelope{
			StegoText:      stegoText,
			EncryptedKey:   encryptedKey,
			Signature:      signature,
			CiphertextHash: ciphertextHash,
			IV:             iv,
		},
		Keys:   *keys,
		Layers: layers,
	}, nil
}

// Decrypt runs the five layers in reverse. Signature verification and the
// hash comparison both must pass before any key material is touched; a
// failed watermark extraction is recorded, not fatal.
func (s *Service) Decrypt(req DecryptRequest) (*domain.DecryptResult, error) {
	env := req.Envelope
	keys := req.Keys
	if env.StegoText == "" {
		return nil, fmt.Errorf("%w: stego text is required", domain.ErrInvalidArgument)
	}

	s.log.WithField("use_ecc", keys.UseECC).Info("layered decryption started")
	var steps []domain.DecryptStep

	// Layer 5 reverse: pull the watermarked ciphertext out of the stego
	// text.
	extracted, err := s.hider.Extract(env.StegoText)
	if err != nil {
		return nil, domain.Layerf(5, "linguistic stego extraction", err)
	}
	watermarked := string(extracted)
	steps = append(steps, domain.DecryptStep{
		Layer: 5, Name: "Linguistic Steganography Extraction",
		Detail: fmt.Sprintf("recovered %d bytes", len(extracted)),
	})

	// Layer 4 reverse: read the watermark. Best effort only; signature
	// verification is the authoritative integrity gate.
	watermarkValue, wmErr := s.marker.Extract(watermarked)
	watermarkFound := wmErr == nil
	if wmErr != nil {
		s.log.WithError(wmErr).Warn("watermark extraction failed; continuing")
		steps = append(steps, domain.DecryptStep{Layer: 4, Name: "Watermark Extraction", Detail: "not found"})
	} else {
		steps = append(steps, domain.DecryptStep{Layer: 4, Name: "Watermark Extraction", Detail: watermarkValue})
	}

	// Layer 3 reverse: verify the signature over the stored hash, then
	// compare the stored hash against one recomputed over the
	// still-watermarked ciphertext.
	verified, err := s.provider.Verify(env.CiphertextHash, env.Signature, keys.Signing.PublicKeyPEM, keys.Signing.Algorithm)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrSignatureInvalid, err)
	}
	if !verified {
		return nil, domain.ErrSignatureInvalid
	}
	digest := sha256.Sum256([]byte(watermarked))
	if hex.EncodeToString(digest[:]) != env.CiphertextHash {
		return nil, domain.ErrIntegrityViolation
	}
	steps = append(steps, domain.DecryptStep{Layer: 3, Name: "Signature Verification", Detail: "signature and hash verified"})
	s.log.Debug("integrity gates passed")

	// Only now is the watermark stripped to recover the clean ciphertext.
	clean := s.marker.Strip(watermarked)

	// Layer 2 reverse: recover the AES key. The ECC branch mirrors the
	// forward simplification and reads it from the bundle.
	var symKey string
	if keys.UseECC {
		symKey = keys.SymmetricKey
	} else {
		symKey, err = s.provider.AsymmetricDecrypt(env.EncryptedKey, keys.KeyEncryption.PrivateKeyPEM)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrKeyRecovery, err)
		}
	}
	steps = append(steps, domain.DecryptStep{Layer: 2, Name: "Key Decryption"})

	// Layer 1 reverse: AES decryption of the clean ciphertext.
	plaintext, err := s.provider.SymmetricDecrypt(clean, symKey, env.IV)
	if err != nil {
		return nil, domain.Layerf(1, "aes decryption", err)
	}
	steps = append(steps, domain.DecryptStep{Layer: 1, Name: "AES Decryption"})
	s.log.Info("layered decryption complete")

	return &domain.DecryptResult{
		Plaintext:         plaintext,
		Watermark:         watermarkValue,
		WatermarkFound:    watermarkFound,
		SignatureVerified: true,
		HashVerified:      true,
		Steps:             steps,
	}, nil
}

// IsLayerFailure reports whether err is a failure of the given layer.
func IsLayerFailure(err error, layer int) bool {
	var le *domain.LayerError
	return errors.As(err, &le) && le.Layer == layer
}
