package client

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

func (a *App) exchangeCmd() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "exchange",
		Short: "Agree on a shared secret with the server and store it in a key file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if a.adapter == nil {
				return ErrNoServer
			}

			kf, err := a.services.KeyExchangeService.Exchange(cmd.Context())
			if err != nil {
				return err
			}
			if err = writeKeyFile(out, kf); err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "session %s\n", kf.SessionID)
			fmt.Fprintf(w, "key file written to %s\n", out)
			if !kf.ExpiresAt.IsZero() {
				fmt.Fprintf(w, "server token valid until %s\n", kf.ExpiresAt.Local().Format(time.RFC3339))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", DefaultKeyFile, "key file path")
	return cmd
}
