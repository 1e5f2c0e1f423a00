package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// keygen: generate a key bundle and store it under the passphrase.
func keygenCmd() *cobra.Command {
	var useECC bool
	cmd := &cobra.Command{
		Use:   "keygen",
		Short: "Generate a key bundle for a layered encryption session",
		RunE: func(cmd *cobra.Command, args []string) error {
			if passphrase == "" {
				return fmt.Errorf("passphrase required (-p)")
			}
			bundle, err := wire.Keyring.Generate(useECC)
			if err != nil {
				return err
			}
			if err := wire.Bundles.Save(passphrase, bundle); err != nil {
				return err
			}
			fmt.Printf("Bundle created.\nID: %s\nKey encryption: %s\nSignature: %s\n",
				bundle.ID, bundle.KeyEncryption.Algorithm, bundle.Signing.Algorithm)
			return nil
		},
	}
	cmd.Flags().BoolVar(&useECC, "ecc", false, "use ECC instead of RSA")
	return cmd
}

// bundles: list stored key bundle ids.
func bundlesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bundles",
		Short: "List stored key bundles",
		RunE: func(cmd *cobra.Command, args []string) error {
			ids, err := wire.Bundles.List()
			if err != nil {
				return err
			}
			if len(ids) == 0 {
				fmt.Println("no bundles stored")
				return nil
			}
			for _, id := range ids {
				fmt.Println(id)
			}
			return nil
		},
	}
}
