package cascade

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"github.com/sirupsen/logrus"

	"cryptolab/internal/crypto"
	"cryptolab/internal/domain"
)

// Selectable layer names.
const (
	LayerRSA       = "rsa"
	LayerSignature = "signature"
	LayerAES       = "aes"
)

// layerOrder fixes the application order no matter how the caller lists
// the layers. Decryption reverses it.
var layerOrder = []string{LayerRSA, LayerSignature, LayerAES}

// Keys holds the key material for one cascade session. Only the fields
// for the selected layers are populated. IV and Signature are produced
// during encryption and must be carried to decryption.
type Keys struct {
	AESKey     string         `json:"aes_key,omitempty"`
	IV         string         `json:"iv,omitempty"`
	Encryption domain.KeyPair `json:"encryption"`
	Signing    domain.KeyPair `json:"signing"`
	Signature  string         `json:"signature,omitempty"`
}

// Service applies and reverses layer stacks. Safe for concurrent use.
type Service struct {
	log *logrus.Logger
}

// New constructs a cascade service. A nil logger is replaced with a
// default logrus logger.
func New(log *logrus.Logger) *Service {
	if log == nil {
		log = logrus.New()
	}
	return &Service{log: log}
}

// EncryptRequest carries the inputs for Encrypt. Keys is optional; when
// nil a fresh set is generated for the selected layers.
type EncryptRequest struct {
	Plaintext string
	Layers    []string
	Keys      *Keys
}

// Result is the outcome of Encrypt. Layers lists the applied layers in
// order; Keys includes the stored IV and signature.
type Result struct {
	Ciphertext string
	Layers     []string
	Outputs    []domain.LayerOutput
	Keys       Keys
}

// DecryptRequest carries the ciphertext, the layer selection it was
// produced with and the keys from the matching Result.
type DecryptRequest struct {
	Ciphertext string
	Layers     []string
	Keys       Keys
}

// DecryptResult is the outcome of Decrypt.
type DecryptResult struct {
	Plaintext string
	Steps     []domain.DecryptStep
}

// Encrypt applies the selected layers in the fixed order. Any layer
// failure aborts the whole operation.
func (s *Service) Encrypt(req EncryptRequest) (*Result, error) {
	if req.Plaintext == "" {
		return nil, fmt.Errorf("%w: plaintext is required", domain.ErrInvalidArgument)
	}
	ordered, err := orderLayers(req.Layers)
	if err != nil {
		return nil, err
	}

	keys := req.Keys
	if keys == nil {
		generated, err := generateKeys(ordered)
		if err != nil {
			return nil, fmt.Errorf("key generation: %w", err)
		}
		keys = &generated
	}

	s.log.WithField("layers", ordered).Info("cascade encryption started")

	current := req.Plaintext
	var outputs []domain.LayerOutput
	for i, layer := range ordered {
		input := current
		out := domain.LayerOutput{Layer: i + 1, Input: input}
		switch layer {
		case LayerRSA:
			current, err = crypto.EncryptOAEPChunked(current, keys.Encryption.PublicKeyPEM)
			if err != nil {
				return nil, domain.Layerf(i+1, "rsa encryption", err)
			}
			out.Name, out.Algorithm = "RSA Encryption", "RSA-2048"
		case LayerSignature:
			sig, err := crypto.SignPSS(current, keys.Signing.PrivateKeyPEM)
			if err != nil {
				return nil, domain.Layerf(i+1, "signing", err)
			}
			// Stored out of band; the data passes through unchanged.
			keys.Signature = sig
			out.Name, out.Algorithm = "Digital Signature", domain.AlgRSASig
			out.Metadata = map[string]string{"signature": sig}
		case LayerAES:
			var iv string
			current, iv, err = crypto.EncryptCBC(current, keys.AESKey)
			if err != nil {
				return nil, domain.Layerf(i+1, "aes encryption", err)
			}
			keys.IV = iv
			out.Name, out.Algorithm = "AES Encryption", "AES-256-CBC"
			out.Metadata = map[string]string{"iv": iv}
		}
		out.Output = current
		outputs = append(outputs, out)
		s.log.WithFields(logrus.Fields{
			"layer": i + 1,
			"name":  out.Name,
			"size":  len(current),
		}).Debug("cascade layer complete")
	}

	return &Result{
		Ciphertext: current,
		Layers:     ordered,
		Outputs:    outputs,
		Keys:       *keys,
	}, nil
}

// Decrypt reverses the selected layers. The signature layer verifies the
// stored signature over the data flowing past and fails with
// domain.ErrSignatureInvalid on mismatch.
func (s *Service) Decrypt(req DecryptRequest) (*DecryptResult, error) {
	if req.Ciphertext == "" {
		return nil, fmt.Errorf("%w: ciphertext is required", domain.ErrInvalidArgument)
	}
	ordered, err := orderLayers(req.Layers)
	if err != nil {
		return nil, err
	}

	current := req.Ciphertext
	var steps []domain.DecryptStep
	for i := len(ordered) - 1; i >= 0; i-- {
		step := len(ordered) - i
		switch ordered[i] {
		case LayerAES:
			current, err = crypto.DecryptCBC(current, req.Keys.AESKey, req.Keys.IV)
			if err != nil {
				return nil, domain.Layerf(step, "aes decryption", err)
			}
			steps = append(steps, domain.DecryptStep{Layer: step, Name: "AES Decryption"})
		case LayerSignature:
			ok, err := crypto.VerifyPSS(current, req.Keys.Signature, req.Keys.Signing.PublicKeyPEM)
			if err != nil {
				return nil, domain.Layerf(step, "signature verification", err)
			}
			if !ok {
				return nil, fmt.Errorf("%w: cascade signature does not match", domain.ErrSignatureInvalid)
			}
			steps = append(steps, domain.DecryptStep{Layer: step, Name: "Signature Verification"})
		case LayerRSA:
			current, err = crypto.DecryptOAEPChunked(current, req.Keys.Encryption.PrivateKeyPEM)
			if err != nil {
				return nil, domain.Layerf(step, "rsa decryption", err)
			}
			steps = append(steps, domain.DecryptStep{Layer: step, Name: "RSA Decryption"})
		}
	}

	s.log.WithField("layers", len(ordered)).Info("cascade decryption complete")
	return &DecryptResult{Plaintext: current, Steps: steps}, nil
}

// orderLayers validates the selection and returns it in application
// order, deduplicated.
func orderLayers(layers []string) ([]string, error) {
	if len(layers) == 0 {
		return nil, fmt.Errorf("%w: at least one layer is required", domain.ErrInvalidArgument)
	}
	selected := make(map[string]bool, len(layers))
	for _, l := range layers {
		switch l {
		case LayerRSA, LayerSignature, LayerAES:
			selected[l] = true
		default:
			return nil, fmt.Errorf("%w: unknown layer %q", domain.ErrInvalidArgument, l)
		}
	}
	var ordered []string
	for _, l := range layerOrder {
		if selected[l] {
			ordered = append(ordered, l)
		}
	}
	return ordered, nil
}

func generateKeys(layers []string) (Keys, error) {
	var keys Keys
	for _, l := range layers {
		switch l {
		case LayerAES:
			raw := make([]byte, 32)
			if _, err := rand.Read(raw); err != nil {
				return Keys{}, err
			}
			keys.AESKey = hex.EncodeToString(raw)
			crypto.Zero(raw)
		case LayerRSA:
			pair, err := crypto.GenerateRSA(2048)
			if err != nil {
				return Keys{}, err
			}
			keys.Encryption = pair
		case LayerSignature:
			pair, err := crypto.GenerateRSA(2048)
			if err != nil {
				return Keys{}, err
			}
			keys.Signing = pair
			keys.Signing.Algorithm = domain.AlgRSASig
		}
	}
	return keys, nil
}
