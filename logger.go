package wren

import (
	"os"

	"github.com/wrenhttp/wren/log"
)

// logger is the server-wide logger instance.
var logger = log.New(os.Stdout, log.InfoLevel)

// initLogger points the package logger and the default log package logger
// at a console writer on stdout.
func initLogger(level log.Level) {
	console := log.DefaultConsoleWriter()
	console.Out = os.Stdout

	logger = log.New(console, level)

	log.SetOutput(console)
	log.SetLevel(level)
}

// displayStartupMessage prints the boot banner with server information.
func displayStartupMessage(addr string, model NetModel) {
	logger.Info().Msg(` __      ___ __ ___ _ __`)
	logger.Info().Msg(` \ \ /\ / / '__/ _ \ '_ \`)
	logger.Info().Msg(`  \ V  V /| | |  __/ | | |`)
	logger.Info().Msg(`   \_/\_/ |_|  \___|_| |_|`)
	logger.Info().Msg(" ")
	logger.Info().Msgf("Server is running on %s (%s engine)", addr, model)
	logger.Info().Msg("Press Ctrl+C to stop the server")
	logger.Info().Msg(" ")
}
