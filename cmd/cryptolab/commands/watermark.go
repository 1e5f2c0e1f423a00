package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// watermark embed|extract|strip: drive the zero-width codec directly.
func watermarkCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watermark",
		Short: "Embed, extract or strip zero-width watermarks",
	}

	embed := &cobra.Command{
		Use:   "embed <text> <identifier>",
		Short: "Embed an invisible identifier into text",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := wire.Watermark.Embed(args[0], args[1])
			if err != nil {
				return err
			}
			fmt.Println(out)
			return nil
		},
	}

	extract := &cobra.Command{
		Use:   "extract <text>",
		Short: "Extract the identifier hidden in text",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := wire.Watermark.Extract(args[0])
			if err != nil {
				return err
			}
			fmt.Println(id)
			return nil
		},
	}

	strip := &cobra.Command{
		Use:   "strip <text>",
		Short: "Remove all zero-width characters from text",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println(wire.Watermark.Strip(args[0]))
			return nil
		},
	}

	cmd.AddCommand(embed, extract, strip)
	return cmd
}
