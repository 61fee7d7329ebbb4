package main

import (
	"context"
	"flag"
	"os"
	"path"
	"time"

	"github.com/google/subcommands"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/jan-milacek/bogglehead-portfolio-simulator/cmd"
)

var verbose = flag.Bool("v", false, "enable debug logging")

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	zerolog.SetGlobalLevel(zerolog.WarnLevel)

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "help")
	commander.Register(commander.FlagsCommand(), "help")
	commander.Register(commander.CommandsCommand(), "help")
	cmd.Register(commander)

	flag.Parse()
	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	os.Exit(int(commander.Execute(context.Background())))
}
