package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func gridCmd() *cobra.Command {
	var key string
	cmd := &cobra.Command{
		Use:   "grid",
		Short: "Print the key grid",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("key") {
				key = appCtx.Config.Key
			}
			grid, err := appCtx.Decrypter.Grid(key)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), grid)
			return err
		},
	}
	cmd.Flags().StringVarP(&key, "key", "k", "", "cipher key (default from config)")
	return cmd
}
