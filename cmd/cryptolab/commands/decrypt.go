package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"cryptolab/internal/services/layered"
)

// decrypt: run the reverse pipeline on a stored envelope file.
func decryptCmd() *cobra.Command {
	var (
		in       string
		bundleID string
	)
	cmd := &cobra.Command{
		Use:   "decrypt",
		Short: "Decrypt an envelope back through all five layers",
		RunE: func(cmd *cobra.Command, args []string) error {
			if passphrase == "" {
				return fmt.Errorf("passphrase required (-p)")
			}

			blob, err := os.ReadFile(in)
			if err != nil {
				return err
			}
			var ef envelopeFile
			if err := json.Unmarshal(blob, &ef); err != nil {
				return fmt.Errorf("parse envelope file: %w", err)
			}
			id := bundleID
			if id == "" {
				id = ef.BundleID
			}
			if id == "" {
				return fmt.Errorf("no bundle id in envelope; pass --bundle")
			}
			bundle, err := wire.Bundles.Load(passphrase, id)
			if err != nil {
				return err
			}

			res, err := wire.Pipeline.Decrypt(layered.DecryptRequest{
				Envelope: ef.Envelope,
				Keys:     bundle,
			})
			if err != nil {
				return err
			}

			fmt.Printf("Plaintext: %s\n", res.Plaintext)
			if res.WatermarkFound {
				fmt.Printf("Watermark: %s\n", res.Watermark)
			} else {
				fmt.Println("Watermark: not found")
			}
			fmt.Printf("Signature verified: %v\nHash verified: %v\n", res.SignatureVerified, res.HashVerified)
			return nil
		},
	}
	cmd.Flags().StringVar(&in, "in", "envelope.json", "envelope file produced by encrypt")
	cmd.Flags().StringVar(&bundleID, "bundle", "", "key bundle id (defaults to the one in the envelope)")
	return cmd
}
