package cmd

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"
	"github.com/cosmos/cosmos-sdk/server"
	"github.com/spf13/cobra"

	"fiochain/app"
	"fiochain/x/fiostaking/client/storeview"
)

const flagListen = "listen"

// apiCommand serves the staking REST routes out of process, reading the
// module store of the node given by --node.
func apiCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "staking-api",
		Short: "Serve the read only staking REST routes backed by a node",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}
			serverCtx := server.GetServerContextFromCmd(cmd)
			cfg, err := app.ReadStakingAPIConfig(serverCtx.Viper)
			if err != nil {
				return err
			}
			cfg.Routes = true

			listen, err := cmd.Flags().GetString(flagListen)
			if err != nil {
				return err
			}

			logger := serverCtx.Logger.With("module", "staking-api")
			srv := &http.Server{
				Addr:              listen,
				Handler:           app.NewStakingAPIRouter(storeview.FromClientContext(clientCtx), cfg, logger),
				ReadHeaderTimeout: 10 * time.Second,
			}

			errCh := make(chan error, 1)
			go func() {
				logger.Info("staking api listening", "addr", listen, "prefix", cfg.Prefix)
				errCh <- srv.ListenAndServe()
			}()

			select {
			case err := <-errCh:
				if errors.Is(err, http.ErrServerClosed) {
					return nil
				}
				return err
			case <-cmd.Context().Done():
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				return srv.Shutdown(shutdownCtx)
			}
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	cmd.Flags().String(flagListen, "127.0.0.1:1318", "address the staking api listens on")
	return cmd
}
