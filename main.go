package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/wfunc/yahtzee/config"
	"github.com/wfunc/yahtzee/console"
	"github.com/wfunc/yahtzee/dice"
	"github.com/wfunc/yahtzee/game"
	"github.com/wfunc/yahtzee/logger"
	"github.com/wfunc/yahtzee/models"
	"github.com/wfunc/yahtzee/monitor"
	"github.com/wfunc/yahtzee/persistence"
	"github.com/wfunc/yahtzee/services"
	"github.com/wfunc/yahtzee/turn"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	flags := config.Flags()
	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		fmt.Fprintln(os.Stderr, err)
		return 2
	}
	configDir, _ := flags.GetString("config")

	// Load configuration
	cfg, err := config.LoadConfig(configDir, flags)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		return 1
	}

	// Initialize logger
	if err := logger.Init(cfg.Log.Level, cfg.Log.Output); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		return 1
	}
	defer logger.Sync()

	ctx := context.Background()
	term := console.New(os.Stdin, os.Stdout, cfg.Game.QuitToken)

	// Optional results archive
	var results *services.ResultsService
	if cfg.Database.Enabled {
		db, err := persistence.Open(cfg.Database)
		if err != nil {
			logger.Log.Errorf("Failed to open %s archive: %v", cfg.Database.Driver, err)
			return 1
		}
		defer db.Close()
		results = services.NewResultsService(db)
	}

	if cfg.History > 0 {
		if results == nil {
			fmt.Fprintln(os.Stderr, "--history needs database.enabled")
			return 1
		}
		records, err := results.History(ctx, cfg.History)
		if err != nil {
			logger.Log.Errorf("Failed to read history: %v", err)
			return 1
		}
		term.ShowHistory(records)
		return 0
	}

	roller, err := dice.NewRandRoller(cfg.Game.Seed)
	if err != nil {
		logger.Log.Errorf("Failed to seed dice: %v", err)
		return 1
	}
	logger.Log.Infow("dice seeded", "seed", roller.Seed())

	mon := monitor.NewMonitor(cfg.Metrics.Namespace)
	if cfg.Metrics.Enabled {
		mon.StartServer(cfg.Metrics.Address)
		defer mon.Stop()
	}

	players, err := seatPlayers(term, cfg.Game)
	if err != nil {
		return finish(term, err)
	}

	controller := turn.NewController(roller, term, term)
	final, err := game.New(controller, term, term, mon).Play(players)
	if err != nil {
		return finish(term, err)
	}

	term.ShowWinners(game.Winners(final))

	if results != nil {
		if _, err := results.Record(ctx, final); err != nil {
			logger.Log.Errorf("Failed to archive game: %v", err)
		}
	}
	return 0
}

func seatPlayers(term *console.Console, cfg config.GameConfig) ([]models.Player, error) {
	if len(cfg.Players) > 0 {
		return term.Seat(cfg.Players)
	}
	return term.Setup(cfg.MaxPlayers)
}

// finish maps an error that ended the game to an exit code. Quitting is a
// normal way out; anything else is a broken invariant.
func finish(term *console.Console, err error) int {
	if errors.Is(err, console.ErrQuit) {
		logger.Log.Info("player quit")
		term.Farewell()
		return 0
	}
	logger.Log.Errorf("Game aborted: %v", err)
	fmt.Fprintf(os.Stderr, "Game aborted: %v\n", err)
	return 1
}
