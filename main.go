// Command gemhunters runs a two-player Gem Hunters game in the terminal.
//
// Players take turns pressing U, D, L or R to move across a 6x6 board and
// collect gems. After 30 valid turns the player with more gems wins.
//
// Flags control the random seed for gem placement and debug logging. None
// are required; a plain run places gems from a fresh random seed.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v3"

	"github.com/wricardo/gemhunters/game/engine"
	"github.com/wricardo/gemhunters/game/session"
	"github.com/wricardo/gemhunters/random"
	"github.com/wricardo/gemhunters/telemetry"
	"github.com/wricardo/gemhunters/transport/console"
)

// Version information
const (
	Version = "1.0.0"
	AppName = "Gem Hunters"
)

func main() {
	// Load .env file if it exists (ignore error if not found)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Warnf("Error loading .env file: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newCommand().Run(ctx, os.Args); err != nil {
		stop()
		log.Fatal(err)
	}
}

// newCommand builds the root command. Streams default to the process's
// standard streams and can be replaced before Run.
func newCommand() *cli.Command {
	return &cli.Command{
		Name:      "gemhunters",
		Usage:     "two-player gem collecting on a 6x6 board",
		Version:   Version,
		Reader:    os.Stdin,
		Writer:    os.Stdout,
		ErrWriter: os.Stderr,
		Flags: []cli.Flag{
			&cli.Int64Flag{
				Name:    "seed",
				Usage:   "seed for gem placement (0 picks a random seed)",
				Sources: cli.EnvVars("GEMHUNTERS_SEED"),
			},
			&cli.BoolFlag{
				Name:    "debug",
				Usage:   "enable debug logging and board checks",
				Sources: cli.EnvVars("GEMHUNTERS_DEBUG"),
			},
		},
		Action: run,
	}
}

// run sets up logging and telemetry, creates the game and plays it to the end.
func run(ctx context.Context, cmd *cli.Command) error {
	log.SetOutput(cmd.ErrWriter)
	if cmd.Bool("debug") {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(log.WarnLevel)
	}

	if telemetry.Enabled() {
		shutdown, err := telemetry.Setup(ctx, Version)
		if err != nil {
			log.Warnf("Telemetry setup failed, continuing without tracing: %v", err)
		} else {
			defer func() {
				if err := shutdown(context.Background()); err != nil {
					log.Warnf("Error shutting down telemetry: %v", err)
				}
			}()
		}
	}

	rng, seed, err := random.New(cmd.Int64("seed"))
	if err != nil {
		return err
	}
	log.WithField("seed", seed).Debugf("Starting %s v%s", AppName, Version)

	game, err := engine.NewGame(engine.DefaultRules(), rng)
	if err != nil {
		return err
	}

	con := console.New(cmd.Reader, cmd.Writer)
	return session.New(game, con).Run(ctx)
}
