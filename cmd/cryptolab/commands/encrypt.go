package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"cryptolab/internal/domain"
	"cryptolab/internal/services/layered"
)

// envelopeFile is the on-disk form of an encryption result: the envelope
// plus enough key-bundle metadata to make decrypt self-describing.
type envelopeFile struct {
	BundleID string `json:"bundle_id"`
	UseECC   bool   `json:"use_ecc"`
	Sender   string `json:"sender"`
	domain.Envelope
}

// encrypt <message>: run the 5-layer pipeline and write the envelope.
func encryptCmd() *cobra.Command {
	var (
		sender    string
		bundleID  string
		useECC    bool
		coverFile string
		out       string
	)
	cmd := &cobra.Command{
		Use:   "encrypt <message>",
		Short: "Encrypt a message through all five layers",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if passphrase == "" {
				return fmt.Errorf("passphrase required (-p)")
			}

			req := layered.EncryptRequest{
				Plaintext: args[0],
				Sender:    sender,
				UseECC:    useECC,
			}
			if bundleID != "" {
				bundle, err := wire.Bundles.Load(passphrase, bundleID)
				if err != nil {
					return err
				}
				req.Keys = &bundle
				req.UseECC = bundle.UseECC
			}
			if coverFile != "" {
				cover, err := os.ReadFile(coverFile)
				if err != nil {
					return err
				}
				req.CoverText = string(cover)
			}

			res, err := wire.Pipeline.Encrypt(req)
			if err != nil {
				return err
			}
			// Persist freshly generated keys so decrypt can find them.
			if bundleID == "" {
				if err := wire.Bundles.Save(passphrase, res.Keys); err != nil {
					return err
				}
			}

			blob, err := json.MarshalIndent(envelopeFile{
				BundleID: res.Keys.ID,
				UseECC:   res.Keys.UseECC,
				Sender:   sender,
				Envelope: res.Envelope,
			}, "", "  ")
			if err != nil {
				return err
			}
			if err := os.WriteFile(out, blob, 0o644); err != nil {
				return err
			}

			fmt.Printf("Encrypted through %d layers.\nBundle: %s\nEnvelope: %s\n", len(res.Layers), res.Keys.ID, out)
			for _, l := range res.Layers {
				fmt.Printf("  layer %d: %-25s %s\n", l.Layer, l.Name, l.Algorithm)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&sender, "sender", "", "sender identifier embedded as watermark")
	cmd.Flags().StringVar(&bundleID, "bundle", "", "existing key bundle id (generates one if omitted)")
	cmd.Flags().BoolVar(&useECC, "ecc", false, "use ECC instead of RSA when generating keys")
	cmd.Flags().StringVar(&coverFile, "cover-file", "", "file with cover text for the stego layer")
	cmd.Flags().StringVar(&out, "out", "envelope.json", "output envelope file")
	_ = cmd.MarkFlagRequired("sender")
	return cmd
}
