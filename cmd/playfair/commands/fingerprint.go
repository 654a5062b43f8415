package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func fingerprintCmd() *cobra.Command {
	var key string
	cmd := &cobra.Command{
		Use:   "fingerprint",
		Short: "Print key grid fingerprint",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("key") {
				key = appCtx.Config.Key
			}
			fp, err := appCtx.Decrypter.Fingerprint(key)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Fingerprint: %s\n", fp)
			return err
		},
	}
	cmd.Flags().StringVarP(&key, "key", "k", "", "cipher key (default from config)")
	return cmd
}
