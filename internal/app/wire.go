package app

import (
	"github.com/sirupsen/logrus"

	"cryptolab/internal/codec/spacing"
	"cryptolab/internal/codec/stego"
	"cryptolab/internal/codec/watermark"
	"cryptolab/internal/crypto"
	"cryptolab/internal/domain"
	"cryptolab/internal/services/cascade"
	"cryptolab/internal/services/keyring"
	"cryptolab/internal/services/layered"
	"cryptolab/internal/store"
)

// Wire bundles the codecs, services and stores for the CLI.
type Wire struct {
	Provider  domain.CryptoProvider
	Watermark domain.Watermarker
	Stego     domain.Hider
	Spacing   spacing.Codec
	Keyring   keyring.Service
	Pipeline  *layered.Service
	Cascade   *cascade.Service
	Bundles   domain.BundleStore
	Logger    *logrus.Logger
}

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg Config) *Wire {
	log := cfg.Logger
	if log == nil {
		log = logrus.New()
	}

	provider := crypto.Provider{}
	marker := watermark.Codec{}
	hider := stego.Codec{}
	keys := keyring.Service{}

	pipeline := layered.New(provider, marker, hider, keys, log)

	return &Wire{
		Provider:  provider,
		Watermark: marker,
		Stego:     hider,
		Spacing:   spacing.Codec{},
		Keyring:   keys,
		Pipeline:  pipeline,
		Cascade:   cascade.New(log),
		Bundles:   store.NewFileStore(cfg.Home),
		Logger:    log,
	}
}
