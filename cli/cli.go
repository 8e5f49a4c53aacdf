// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package cli

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/crossfusion/order-engine/app"
	"github.com/crossfusion/order-engine/config"
	"github.com/crossfusion/order-engine/relayer/relaytest"
)

var (
	rootCMD = &cobra.Command{
		Use: "",
	}

	runCMD = &cobra.Command{
		Use:   "run",
		Short: "Run the order engine API",
		Long:  "Serves the local order API that builds, signs and submits cross-chain swap orders to the configured relayer",
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Run()
		},
	}

	devRelayerAddr string
	devRelayerCMD  = &cobra.Command{
		Use:   "dev-relayer",
		Short: "Run an in-memory stub relayer",
		Long:  "Serves a relayer that accepts submissions and deduplicates them by quoteId, for local development",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer cancel()
			relaytest.Serve(ctx, devRelayerAddr)
			return nil
		},
	}
)

func init() {
	config.BindFlags(rootCMD)
	devRelayerCMD.Flags().StringVar(&devRelayerAddr, "addr", ":8980", "address the stub relayer listens on")
}

func Execute() {
	rootCMD.AddCommand(runCMD, devRelayerCMD)
	if err := rootCMD.Execute(); err != nil {
		log.Fatal().Err(err).Msg("failed to execute root cmd")
	}
}
