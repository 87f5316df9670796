package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/rs/zerolog/pkgerrors"

	"github.com/denismitr/collections/internal/cli"
)

func main() {
	zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack
	log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()

	cmd := cli.NewRootCmd()
	cmd.SilenceErrors = true
	if err := cmd.Execute(); err != nil {
		log.Fatal().Stack().Err(err).Msg("setplay")
	}
}
