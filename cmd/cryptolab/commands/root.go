package commands

import (
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"cryptolab/internal/app"
)

var (
	home       string
	passphrase string
	verbose    bool
	wire       *app.Wire
)

func Execute() error {
	root := &cobra.Command{
		Use:   "cryptolab",
		Short: "Educational layered-cryptography sandbox CLI",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if home == "" {
				dir, err := os.UserHomeDir()
				if err != nil {
					return err
				}
				home = filepath.Join(dir, ".cryptolab")
			}
			if err := os.MkdirAll(home, 0o700); err != nil {
				return err
			}

			log := logrus.New()
			if verbose {
				log.SetLevel(logrus.DebugLevel)
			} else {
				log.SetLevel(logrus.WarnLevel)
			}

			wire = app.NewWire(app.Config{Home: home, Logger: log})
			return nil
		},
	}

	root.PersistentFlags().StringVar(&home, "home", "", "config dir (default ~/.cryptolab)")
	root.PersistentFlags().StringVarP(&passphrase, "passphrase", "p", "", "passphrase protecting stored key bundles")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log per-layer progress")

	root.AddCommand(keygenCmd(), bundlesCmd(), encryptCmd(), decryptCmd(), cascadeCmd(), watermarkCmd(), stegoCmd())
	return root.Execute()
}
