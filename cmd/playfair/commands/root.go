package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"playfair/internal/app"
)

var (
	configPath string
	verbose    bool
	appCtx     *app.App
)

// Execute runs the CLI with the process arguments.
func Execute() error {
	root := newRootCmd(os.Stdout, os.Stderr)
	if err := root.Execute(); err != nil {
		fmt.Fprintf(root.ErrOrStderr(), "Error: %v\n", err)
		return err
	}
	return nil
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:           "playfair",
		Short:         "Playfair cipher decryption tools",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.LoadConfig(configPath)
			if err != nil {
				return err
			}
			if verbose {
				cfg.Log.Level = "debug"
				cfg.Log.Development = true
			}
			appCtx, err = app.New(cfg)
			return err
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if appCtx != nil {
				appCtx.Close()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			plaintext, err := appCtx.Decrypter.Decrypt(appCtx.Config.Key, appCtx.Config.Ciphertext)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), plaintext)
			return err
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	root.PersistentFlags().StringVar(&configPath, "config", "", "YAML config file")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging to stderr")

	root.AddCommand(decryptCmd(), gridCmd(), fingerprintCmd())
	return root
}
