package game

import (
	"github.com/wfunc/yahtzee/models"
	"github.com/wfunc/yahtzee/score"
	"github.com/wfunc/yahtzee/turn"
)

// TurnRunner produces the final hand of one turn.
type TurnRunner interface {
	Run(initial models.Hand) (turn.Outcome, error)
}

// Chooser asks the player which open category to score. options holds only
// unattempted rows, each with the points the hand would earn there.
type Chooser interface {
	ChooseCategory(player models.Player, hand models.Hand, options []score.Option) (models.Category, error)
}

// Renderer shows game progress. It never feeds anything back into the game.
type Renderer interface {
	RoundStarted(round, rounds int)
	TurnStarted(player models.Player)
	ScoresUpdated(players []models.Player)
}

// Observer is told about finished turns and games, e.g. for metrics.
type Observer interface {
	TurnFinished(player models.Player, outcome turn.Outcome, category models.Category, mark models.Mark)
	GameFinished(players []models.Player, winners []models.Player)
}
