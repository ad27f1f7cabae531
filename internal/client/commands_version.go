package client

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (a *App) versionCmd() *cobra.Command {
	var server bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := cmd.OutOrStdout()
			fmt.Fprintln(w, a.buildInfo.String())
			if !server {
				return nil
			}
			if a.adapter == nil {
				return ErrNoServer
			}

			version, err := a.adapter.Version(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(w, "Server version: %s\n", version)
			return nil
		},
	}

	cmd.Flags().BoolVar(&server, "server", false, "also query the server version")
	return cmd
}
