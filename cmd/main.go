// Package main replays a transaction log into per-client account balances.
package main

import (
	"context"
	"flag"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/go-petr/pay-engine/cmd/httpserver"
	"github.com/go-petr/pay-engine/internal/accountdelivery"
	"github.com/go-petr/pay-engine/internal/accountservice"
	"github.com/go-petr/pay-engine/internal/middleware"
	"github.com/go-petr/pay-engine/internal/transactionrepo"
	"github.com/go-petr/pay-engine/pkg/configpkg"
)

func main() {
	serve := flag.Bool("serve", false, "serve the resulting balances over HTTP instead of writing CSV to stdout")
	flag.Parse()

	config, err := configpkg.Load("./configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}

	logger := middleware.CreateLogger(config)

	if flag.NArg() != 1 {
		logger.Fatal().Msg("usage: pay-engine [-serve] <transactions.csv>")
	}

	file, err := os.Open(flag.Arg(0))
	if err != nil {
		logger.Fatal().Err(err).Msg("cannot open transaction log")
	}
	defer file.Close()

	ctx := logger.WithContext(context.Background())

	if !*serve {
		if err := summarize(ctx, file, os.Stdout); err != nil {
			logger.Fatal().Err(err).Msg("cannot summarize transaction log")
		}

		return
	}

	service := accountservice.New()
	if err := replay(ctx, file, service); err != nil {
		logger.Fatal().Err(err).Msg("cannot replay transaction log")
	}

	server := httpserver.New(service, logger, config)

	logger.Info().Str("address", config.ServerAddress).Msg("balances report server has started")

	if err := server.Engine.Run(config.ServerAddress); err != nil {
		logger.Fatal().Err(err).Msg("cannot start server")
	}
}

// replay feeds the log into the registry one record at a time, in input
// order. Engine errors are per-record conditions: the record is logged and
// skipped, processing continues. Malformed input aborts the replay.
func replay(ctx context.Context, input io.Reader, service *accountservice.Service) error {
	l := zerolog.Ctx(ctx)

	repo := transactionrepo.NewRepoCSV(input)

	for {
		t, err := repo.Next()
		if err == io.EOF {
			return nil
		}

		if err != nil {
			return err
		}

		if err := service.Process(ctx, t); err != nil {
			l.Warn().
				Err(err).
				Str("kind", string(t.Kind)).
				Uint16("client", uint16(t.Client)).
				Uint32("tx", uint32(t.Tx)).
				Msg("transaction rejected")
		}
	}
}

// summarize is the whole pipeline over explicit reader and writer.
func summarize(ctx context.Context, input io.Reader, output io.Writer) error {
	service := accountservice.New()

	if err := replay(ctx, input, service); err != nil {
		return err
	}

	return accountdelivery.WriteCSV(output, service.Snapshot(ctx))
}
