package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hasbyte1/go-classic-ciphers/cipher"
)

var (
	errNoText       = errors.New("-e to encrypt, -d to decrypt")
	errBothModes    = errors.New("use either -e or -d, not both")
	errNoTransforms = errors.New("how to encrypt? enable at least one transform")
)

func newRootCmd() *cobra.Command {
	var (
		flags            stageFlags
		encrypt, decrypt string
		verify           bool
	)

	root := &cobra.Command{
		Use:   "crypto",
		Short: "Chain classical ciphers over a piece of text",
		Long: `crypto encrypts or decrypts text with any combination of classical ciphers:
Vigenère, simple substitution, multiplicative, affine, leetspeak obfuscation,
columnar transposition, Caesar and reverse.

Encryption applies the selected transforms in a fixed order and decryption
undoes them in the mirrored order, so the same flags decrypt what they
encrypted. None of these ciphers offers real confidentiality.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			mode, text, err := selectMode(encrypt, decrypt)
			if err != nil {
				return err
			}
			p, err := flags.build(cmd)
			if err != nil {
				return err
			}
			out, err := p.Apply(mode, text)
			if err != nil {
				return err
			}
			if verify && mode == cipher.Encrypt {
				if err := p.Verify(text); err != nil {
					return err
				}
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Contents %sed successfully!\n\n%s\n", mode, out)
			return nil
		},
	}

	root.Flags().StringVarP(&encrypt, "encrypt", "e", "", "encrypt the input")
	root.Flags().StringVarP(&decrypt, "decrypt", "d", "", "decrypt the input")
	root.Flags().BoolVar(&verify, "verify", false, "fail if decrypting the result would not restore the input")
	flags.register(root)

	root.AddCommand(newInspectCmd(&flags), newVersionCmd())
	return root
}

func selectMode(encrypt, decrypt string) (cipher.Mode, string, error) {
	switch {
	case encrypt != "" && decrypt != "":
		return 0, "", errBothModes
	case encrypt != "":
		return cipher.Encrypt, encrypt, nil
	case decrypt != "":
		return cipher.Decrypt, decrypt, nil
	default:
		return 0, "", errNoText
	}
}
