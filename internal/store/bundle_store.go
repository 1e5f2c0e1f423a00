package store

import (
	"crypto/rand"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/scrypt"

	"cryptolab/internal/crypto"
	"cryptolab/internal/domain"
)

const bundleExt = ".bundle"

// FileStore stores passphrase-encrypted key bundles on disk, one file
// per bundle.
type FileStore struct {
	dir string
	mu  sync.Mutex
}

func NewFileStore(dir string) *FileStore { return &FileStore{dir: dir} }

// Save seals bundle under passphrase and writes it to <id>.bundle.
func (s *FileStore) Save(passphrase string, bundle domain.KeyBundle) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if bundle.ID == "" {
		return fmt.Errorf("%w: bundle has no id", domain.ErrInvalidArgument)
	}
	raw, err := json.Marshal(bundle)
	if err != nil {
		return err
	}
	blob, err := seal(passphrase, raw)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(s.dir, bundle.ID+bundleExt), blob, 0o600)
}

// Load reads and opens the bundle with the given id.
func (s *FileStore) Load(passphrase, id string) (domain.KeyBundle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	blob, err := os.ReadFile(filepath.Join(s.dir, id+bundleExt))
	if err != nil {
		return domain.KeyBundle{}, err
	}
	raw, err := open(passphrase, blob)
	if err != nil {
		return domain.KeyBundle{}, fmt.Errorf("open bundle %s: %w", id, err)
	}
	var bundle domain.KeyBundle
	if err := json.Unmarshal(raw, &bundle); err != nil {
		return domain.KeyBundle{}, err
	}
	return bundle, nil
}

// List returns the ids of all stored bundles.
func (s *FileStore) List() ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, err
	}
	var ids []string
	for _, e := range entries {
		if name := e.Name(); strings.HasSuffix(name, bundleExt) {
			ids = append(ids, strings.TrimSuffix(name, bundleExt))
		}
	}
	return ids, nil
}

// scrypt parameters for the passphrase envelope.
func scryptParamsDefault() (N, r, p int) { return 1 << 15, 8, 1 }

type envelope struct {
	Salt  []byte
	Nonce []byte
	CT    []byte
}

func seal(passphrase string, plaintext []byte) ([]byte, error) {
	salt := make([]byte, 16)
	if _, err := rand.Read(salt); err != nil {
		return nil, err
	}
	N, r, p := scryptParamsDefault()
	key, err := scrypt.Key([]byte(passphrase), salt, N, r, p, chacha20poly1305.KeySize)
	if err != nil {
		return nil, err
	}
	defer crypto.Zero(key)

	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, err
	}
	nonce := make([]byte, aead.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return nil, err
	}
	ct := aead.Seal(nil, nonce, plaintext, salt)
	return json.Marshal(envelope{Salt: salt, Nonce: nonce, CT: ct})
}

func open(passphrase string, blob []byte) ([]byte, error) {
	var env envelope
	if err := json.Unmarshal(blob, &env); err != nil {
		return nil, err
	}
	N, r, p := scryptParamsDefault()
	key, err := scrypt.Key([]byte(passphrase), env.Salt, N, r, p, chacha20poly1305.KeySize)
	if err != nil {
		return nil, err
	}
	defer crypto.Zero(key)

	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, err
	}
	return aead.Open(nil, env.Nonce, env.CT, env.Salt)
}

// Compile-time assertion that FileStore implements domain.BundleStore.
var _ domain.BundleStore = (*FileStore)(nil)
