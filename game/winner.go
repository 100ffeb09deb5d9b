package game

import (
	"github.com/wfunc/yahtzee/models"
	"github.com/wfunc/yahtzee/sheet"
)

// Winners returns every player holding the highest Total, in seating order.
// Ties produce several winners; no player yields nil.
func Winners(players []models.Player) []models.Player {
	if len(players) == 0 {
		return nil
	}

	best := sheet.TotalOf(players[0])
	for _, p := range players[1:] {
		if total := sheet.TotalOf(p); total > best {
			best = total
		}
	}

	var winners []models.Player
	for _, p := range players {
		if sheet.TotalOf(p) == best {
			winners = append(winners, p)
		}
	}
	return winners
}
