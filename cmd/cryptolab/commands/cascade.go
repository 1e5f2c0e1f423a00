package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"cryptolab/internal/services/cascade"
)

// cascadeFile is the on-disk form of a cascade result. The key set
// travels with the ciphertext; this command is a layering playground,
// not a secure storage scheme.
type cascadeFile struct {
	Ciphertext string       `json:"ciphertext"`
	Layers     []string     `json:"layers"`
	Keys       cascade.Keys `json:"keys"`
}

// cascade encrypt|decrypt: drive the configurable layer stack.
func cascadeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cascade",
		Short: "Stack selected RSA, signature and AES layers",
	}

	var (
		layersFlag string
		out        string
	)
	encrypt := &cobra.Command{
		Use:   "encrypt <message>",
		Short: "Encrypt a message through the selected layers",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			layers := strings.Split(layersFlag, ",")
			res, err := wire.Cascade.Encrypt(cascade.EncryptRequest{
				Plaintext: args[0],
				Layers:    layers,
			})
			if err != nil {
				return err
			}

			blob, err := json.MarshalIndent(cascadeFile{
				Ciphertext: res.Ciphertext,
				Layers:     res.Layers,
				Keys:       res.Keys,
			}, "", "  ")
			if err != nil {
				return err
			}
			if err := os.WriteFile(out, blob, 0o600); err != nil {
				return err
			}

			fmt.Printf("Encrypted through %d layers.\nOutput: %s\n", len(res.Layers), out)
			for _, l := range res.Outputs {
				fmt.Printf("  layer %d: %-20s %s\n", l.Layer, l.Name, l.Algorithm)
			}
			return nil
		},
	}
	encrypt.Flags().StringVar(&layersFlag, "layers", "rsa,signature,aes", "comma separated layer selection")
	encrypt.Flags().StringVar(&out, "out", "cascade.json", "output file")

	var in string
	decrypt := &cobra.Command{
		Use:   "decrypt",
		Short: "Decrypt a stored cascade file",
		RunE: func(cmd *cobra.Command, args []string) error {
			blob, err := os.ReadFile(in)
			if err != nil {
				return err
			}
			var cf cascadeFile
			if err := json.Unmarshal(blob, &cf); err != nil {
				return fmt.Errorf("parse cascade file: %w", err)
			}

			res, err := wire.Cascade.Decrypt(cascade.DecryptRequest{
				Ciphertext: cf.Ciphertext,
				Layers:     cf.Layers,
				Keys:       cf.Keys,
			})
			if err != nil {
				return err
			}
			fmt.Printf("Plaintext: %s\n", res.Plaintext)
			for _, st := range res.Steps {
				fmt.Printf("  step %d: %s\n", st.Layer, st.Name)
			}
			return nil
		},
	}
	decrypt.Flags().StringVar(&in, "in", "cascade.json", "file produced by cascade encrypt")

	cmd.AddCommand(encrypt, decrypt)
	return cmd
}
