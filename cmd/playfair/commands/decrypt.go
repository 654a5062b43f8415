package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// decryptCmd decrypts ciphertext passed as arguments; several arguments are
// joined with spaces, which sanitization then drops.
func decryptCmd() *cobra.Command {
	var key string
	cmd := &cobra.Command{
		Use:   "decrypt <ciphertext>...",
		Short: "Decrypt Playfair ciphertext",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("key") {
				key = appCtx.Config.Key
			}
			plaintext, err := appCtx.Decrypter.Decrypt(key, strings.Join(args, " "))
			if err != nil {
				return fmt.Errorf("decrypting: %w", err)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), plaintext)
			return err
		},
	}
	cmd.Flags().StringVarP(&key, "key", "k", "", "cipher key (default from config)")
	return cmd
}
