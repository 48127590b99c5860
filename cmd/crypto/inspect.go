package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newInspectCmd(flags *stageFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect",
		Short: "Print the stage order and fingerprint of a pipeline",
		Long: `Print the order in which the selected transforms run when encrypting and
decrypting, and the BLAKE2b fingerprint of the pipeline. Two invocations with
the same fingerprint decrypt each other's output.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := flags.build(cmd)
			if err != nil {
				return err
			}
			stages := p.Stages()
			reversed := make([]string, len(stages))
			forward := make([]string, len(stages))
			for i, s := range stages {
				forward[i] = string(s)
				reversed[len(stages)-1-i] = string(s)
			}
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "encrypt:     %s\n", strings.Join(forward, " -> "))
			fmt.Fprintf(w, "decrypt:     %s\n", strings.Join(reversed, " -> "))
			fmt.Fprintf(w, "fingerprint: %s\n", p.Fingerprint())
			return nil
		},
	}
}
