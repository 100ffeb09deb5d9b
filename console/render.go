package console

import (
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/wfunc/yahtzee/models"
	"github.com/wfunc/yahtzee/score"
)

const scratchMark = "✘"

func (c *Console) table() *tabwriter.Writer {
	return tabwriter.NewWriter(c.out, 0, 0, 2, ' ', tabwriter.Debug)
}

// ShowDice prints the hand. It implements turn.View.
func (c *Console) ShowDice(hand models.Hand) {
	fmt.Fprint(c.out, "\n\n")
	w := c.table()
	fmt.Fprintln(w, "Die\tValue\tFixed")
	for _, d := range hand {
		fixed := "☐"
		if d.Fixed {
			fixed = "☑"
		}
		fmt.Fprintf(w, "%d\t%d\t%s\n", d.ID, d.Value, fixed)
	}
	w.Flush()
}

// ShowCategories lists the open categories with the points the hand would earn.
func (c *Console) ShowCategories(options []score.Option) {
	fmt.Fprintln(c.out, "Available categories:")
	for _, o := range options {
		fmt.Fprintf(c.out, "%s  %s (Points: %s)\n", scratchMark, o.Category.Label(), formatValue(o.Preview.Value()))
	}
}

// RoundStarted implements game.Renderer.
func (c *Console) RoundStarted(round, rounds int) {
	fmt.Fprintf(c.out, "\n\nRound %d of %d\n", round, rounds)
}

// TurnStarted implements game.Renderer.
func (c *Console) TurnStarted(player models.Player) {
	fmt.Fprintf(c.out, "\n\nIt's your turn, %s!\n\n", colored(player.Color))
}

// ScoresUpdated prints every sheet side by side. It implements game.Renderer.
func (c *Console) ScoresUpdated(players []models.Player) {
	fmt.Fprint(c.out, "\n\n\n--- Current Scores ---\n\n")
	w := c.table()

	header := []string{"Type"}
	for _, p := range players {
		header = append(header, "Score of "+p.Color.Label)
	}
	fmt.Fprintln(w, strings.Join(header, "\t"))

	for i, category := range models.SheetOrder() {
		row := []string{category.Label()}
		for _, p := range players {
			row = append(row, formatValue(p.Sheet[i].Value()))
		}
		fmt.Fprintln(w, strings.Join(row, "\t"))
	}
	w.Flush()
}

// ShowWinners announces the winners; ties are announced together.
func (c *Console) ShowWinners(winners []models.Player) {
	fmt.Fprint(c.out, "\nThe game is over!\n\n")
	switch len(winners) {
	case 0:
		fmt.Fprintln(c.out, "Nobody played.")
	case 1:
		fmt.Fprintf(c.out, "The winner is %s!\n", colored(winners[0].Color))
	default:
		names := make([]string, 0, len(winners))
		for _, w := range winners {
			names = append(names, colored(w.Color))
		}
		fmt.Fprintf(c.out, "It's a tie! The winners are %s!\n", strings.Join(names, " and "))
	}
}

// ShowHistory prints archived games, newest first.
func (c *Console) ShowHistory(records []models.GameRecord) {
	if len(records) == 0 {
		fmt.Fprintln(c.out, "No games archived yet.")
		return
	}
	w := c.table()
	fmt.Fprintln(w, "Played\tGame\tWinners\tTotals")
	for _, r := range records {
		totals := make([]string, 0, len(r.Players))
		for _, p := range r.Players {
			totals = append(totals, fmt.Sprintf("%s %d", p.Color, p.Total))
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			r.PlayedAt.Local().Format("2006-01-02 15:04"),
			r.ID,
			strings.Join(r.Winners(), ", "),
			strings.Join(totals, ", "),
		)
	}
	w.Flush()
}

func formatValue(v int) string {
	if v == -1 {
		return scratchMark
	}
	return strconv.Itoa(v)
}

func colored(color models.Color) string {
	return color.Code + color.Label + resetColor
}
