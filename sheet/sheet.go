// Package sheet commits scored categories to a player's sheet and keeps the
// calculated rows in step.
package sheet

import (
	"errors"
	"fmt"

	"github.com/wfunc/yahtzee/logger"
	"github.com/wfunc/yahtzee/models"
	"github.com/wfunc/yahtzee/score"
)

const (
	// BonusThreshold is the upper-section sum that earns the bonus.
	BonusThreshold = 63
	// BonusPoints is what the bonus is worth.
	BonusPoints = 35
)

// Commit failures all mean the caller offered a row it should not have.
var (
	ErrUnknownCategory    = errors.New("category not on sheet")
	ErrCalculatedCategory = errors.New("category is calculated")
	ErrAlreadyScored      = errors.New("category already scored")
)

// Commit scores hand in c and returns the player with the row filled and
// Bonus and Total recalculated. The given player is not modified.
func Commit(player models.Player, c models.Category, hand models.Hand) (models.Player, error) {
	entry, ok := player.Sheet.Entry(c)
	if !ok {
		return player, fmt.Errorf("commit %q for %s: %w", c.Label(), player.Name(), ErrUnknownCategory)
	}
	if c.Calculated() {
		return player, fmt.Errorf("commit %q for %s: %w", c.Label(), player.Name(), ErrCalculatedCategory)
	}
	if entry.Mark.Attempted() {
		return player, fmt.Errorf("commit %q for %s: %w", c.Label(), player.Name(), ErrAlreadyScored)
	}

	mark := score.Category(hand, c)
	filled, _ := player.Sheet.With(c, mark)
	player.Sheet = Recalculate(filled)

	logger.Log.Debugw("category committed",
		"player", player.Name(),
		"category", c.Label(),
		"value", mark.Value(),
		"total", TotalOf(player),
	)
	return player, nil
}

// Recalculate recomputes Bonus and Total from the chosen rows. Running it twice
// gives the same sheet.
func Recalculate(s models.Sheet) models.Sheet {
	bonus := Bonus(s)
	s, _ = s.With(models.Bonus, models.Scored(bonus))

	total := bonus
	for _, e := range s {
		if !e.Category.Calculated() {
			total += e.Mark.Points()
		}
	}
	s, _ = s.With(models.Total, models.Scored(total))
	return s
}

// UpperSum adds the points of the six face rows. Scratched rows add nothing.
func UpperSum(s models.Sheet) int {
	sum := 0
	for _, e := range s {
		if e.Category.Section() == models.Upper && !e.Category.Calculated() {
			sum += e.Mark.Points()
		}
	}
	return sum
}

// Bonus returns the upper bonus the sheet has earned.
func Bonus(s models.Sheet) int {
	if UpperSum(s) >= BonusThreshold {
		return BonusPoints
	}
	return 0
}

// Open lists the rows the player may still choose, in sheet order.
func Open(player models.Player) []models.Category {
	var open []models.Category
	for _, e := range player.Sheet {
		if !e.Category.Calculated() && !e.Mark.Attempted() {
			open = append(open, e.Category)
		}
	}
	return open
}

// Options previews hand against every open row.
func Options(player models.Player, hand models.Hand) []score.Option {
	return score.Preview(hand, Open(player))
}

// Points returns the points held in row c, 0 when absent or scratched.
func Points(player models.Player, c models.Category) int {
	e, ok := player.Sheet.Entry(c)
	if !ok {
		return 0
	}
	return e.Mark.Points()
}

// TotalOf reads the calculated Total row.
func TotalOf(player models.Player) int {
	return Points(player, models.Total)
}

// Complete reports whether every base row has been attempted.
func Complete(player models.Player) bool {
	return len(Open(player)) == 0
}
