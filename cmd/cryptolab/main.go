package main

import (
	"os"

	"cryptolab/cmd/cryptolab/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
