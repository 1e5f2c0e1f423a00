package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"cryptolab/internal/domain"
)

// stego hide|extract|capacity: drive the text codecs directly. The
// default codec substitutes synonyms; --spacing switches to the word
// spacing channel.
func stegoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stego",
		Short: "Hide or extract messages in cover text",
	}

	var useSpacing bool
	hider := func() domain.Hider {
		if useSpacing {
			return wire.Spacing
		}
		return wire.Stego
	}

	var coverFile string
	hide := &cobra.Command{
		Use:   "hide <message>",
		Short: "Hide a message in cover text",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var cover string
			if coverFile != "" {
				blob, err := os.ReadFile(coverFile)
				if err != nil {
					return err
				}
				cover = string(blob)
			}
			out, err := hider().Hide([]byte(args[0]), cover)
			if err != nil {
				return err
			}
			fmt.Println(out)
			return nil
		},
	}
	hide.Flags().StringVar(&coverFile, "cover-file", "", "file with cover text (bundled corpus if omitted)")

	extract := &cobra.Command{
		Use:   "extract <text>",
		Short: "Extract the message hidden in stego text",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			payload, err := hider().Extract(args[0])
			if err != nil {
				return err
			}
			fmt.Println(string(payload))
			return nil
		},
	}

	capacity := &cobra.Command{
		Use:   "capacity <cover-file>",
		Short: "Report how many bytes the cover can hold via word spacing",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			blob, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			fmt.Println(wire.Spacing.Capacity(string(blob)))
			return nil
		},
	}

	cmd.PersistentFlags().BoolVar(&useSpacing, "spacing", false, "use word spacing instead of synonym substitution")
	cmd.AddCommand(hide, extract, capacity)
	return cmd
}
