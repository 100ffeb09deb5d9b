// Package game sequences the rounds of a match and picks the winners.
package game

import (
	"fmt"

	"github.com/wfunc/yahtzee/logger"
	"github.com/wfunc/yahtzee/models"
	"github.com/wfunc/yahtzee/sheet"
)

// Rounds is one round per base category.
const Rounds = models.BaseCategories

// Game 负责轮次调度
type Game struct {
	turns     TurnRunner
	chooser   Chooser
	renderer  Renderer
	observers []Observer
}

func New(turns TurnRunner, chooser Chooser, renderer Renderer, observers ...Observer) *Game {
	return &Game{
		turns:     turns,
		chooser:   chooser,
		renderer:  renderer,
		observers: observers,
	}
}

// Play runs every player through all rounds in seating order and returns the
// finished players. The slice passed in is left untouched. An error from a
// collaborator (such as a quit request) ends the game and is returned wrapped.
func (g *Game) Play(players []models.Player) ([]models.Player, error) {
	current := append([]models.Player(nil), players...)

	for round := 1; round <= Rounds; round++ {
		logger.Log.Infow("round started", "round", round, "players", len(current))
		if g.renderer != nil {
			g.renderer.RoundStarted(round, Rounds)
		}

		for i := range current {
			updated, err := g.playTurn(current[i])
			if err != nil {
				return current, fmt.Errorf("round %d, player %s: %w", round, current[i].Name(), err)
			}
			current[i] = updated
			if g.renderer != nil {
				g.renderer.ScoresUpdated(append([]models.Player(nil), current...))
			}
		}
	}

	winners := Winners(current)
	logger.Log.Infow("game finished", "winners", names(winners))
	for _, o := range g.observers {
		o.GameFinished(current, winners)
	}
	return current, nil
}

func (g *Game) playTurn(player models.Player) (models.Player, error) {
	if g.renderer != nil {
		g.renderer.TurnStarted(player)
	}

	outcome, err := g.turns.Run(models.NewHand())
	if err != nil {
		return player, err
	}

	category, err := g.chooser.ChooseCategory(player, outcome.Hand, sheet.Options(player, outcome.Hand))
	if err != nil {
		return player, err
	}

	updated, err := sheet.Commit(player, category, outcome.Hand)
	if err != nil {
		return player, err
	}

	entry, _ := updated.Sheet.Entry(category)
	for _, o := range g.observers {
		o.TurnFinished(updated, outcome, category, entry.Mark)
	}
	return updated, nil
}

func names(players []models.Player) []string {
	out := make([]string, 0, len(players))
	for _, p := range players {
		out = append(out, p.Name())
	}
	return out
}
