package main

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/hooptrack/hooptrack/internal/cli"
)

func main() {
	setupLogger()
	cli.Execute()
}

// setupLogger configures zerolog for console output. The level is applied
// later, once configuration is loaded.
func setupLogger() {
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	})
}
