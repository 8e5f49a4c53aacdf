// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package app

import (
	"context"
	"crypto/rand"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/crossfusion/order-engine/api"
	"github.com/crossfusion/order-engine/api/handlers"
	"github.com/crossfusion/order-engine/config"
	"github.com/crossfusion/order-engine/engine"
	"github.com/crossfusion/order-engine/health"
	"github.com/crossfusion/order-engine/metrics"
	"github.com/crossfusion/order-engine/relayer"
	"github.com/crossfusion/order-engine/signer"
)

var Version string

const submitRetryLimit = 30 * time.Second

func Run() error {
	var err error

	configFlag := viper.GetString(config.ConfigFlagName)

	var configuration *config.Config
	if strings.ToLower(configFlag) == "env" {
		configuration, err = config.GetConfigFromENV(nil)
		panicOnError(err)
	} else {
		configuration, err = config.GetConfigFromFile(configFlag, nil)
		panicOnError(err)
	}

	configureLogger(configuration.EngineConfig.LogLevel)

	log.Info().Msg("Successfully loaded configuration")

	orderSigner, err := signer.NewLocalKeySigner(configuration.EngineConfig.Key)
	panicOnError(err)
	log.Info().Str("maker", orderSigner.Address()).Msg("Successfully loaded signing identity")

	tokens, err := configuration.TokenStore()
	panicOnError(err)
	client := relayer.NewClient(configuration.EngineConfig.RelayerURL, configuration.SubmitTimeout())
	store := engine.NewStore(configuration.SessionTTL())
	defer store.Stop()

	walletAddresses, err := configuration.WalletAddresses()
	panicOnError(err)
	wallets := engine.StaticWalletProvider(walletAddresses)

	meter := otel.GetMeterProvider().Meter("order-engine")
	orderMetrics, err := metrics.NewOrderMetrics(meter, metric.WithAttributes(attribute.String("version", Version)))
	panicOnError(err)

	orderEngine := engine.New(tokens, rand.Reader, orderSigner, client, wallets, store, orderMetrics)
	orderHandler := handlers.NewOrderHandler(orderEngine, store, submitRetryLimit)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	go health.StartHealthEndpoint(ctx, configuration.EngineConfig.HealthPort)

	api.Serve(ctx, fmt.Sprintf(":%d", configuration.EngineConfig.APIPort), orderHandler)
	return nil
}

func configureLogger(level string) {
	logLevel, err := zerolog.ParseLevel(level)
	if err != nil {
		logLevel = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(logLevel)
	log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()
}

func panicOnError(err error) {
	if err != nil {
		panic(err)
	}
}
