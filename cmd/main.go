// Package main runs the cargo/abono exercise server.
package main

import (
	"github.com/rs/zerolog/log"

	"github.com/go-petr/ledger-quiz/cmd/httpserver"
	"github.com/go-petr/ledger-quiz/internal/middleware"
	"github.com/go-petr/ledger-quiz/pkg/configpkg"
)

func main() {
	config, err := configpkg.Load("./configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}

	logger := middleware.GetLogger(config)

	server, err := httpserver.New(logger, config)
	if err != nil {
		logger.Fatal().Err(err).Msg("cannot create server")
	}

	logger.Info().
		Int("accounts", server.AnswerKey.Len()).
		Str("address", config.ServerAddress).
		Msg("LEDGER QUIZ SERVER HAS STARTED")

	err = server.Engine.Run(config.ServerAddress)
	if err != nil {
		logger.Fatal().Err(err).Msg("cannot start server")
	}
}
