package console

import (
	"fmt"
	"strconv"

	"github.com/wfunc/yahtzee/models"
)

// Palette lists the colors players can pick, in display order.
var Palette = []models.Color{
	{Label: "red", Code: "\x1b[31m"},
	{Label: "green", Code: "\x1b[32m"},
	{Label: "yellow", Code: "\x1b[33m"},
	{Label: "blue", Code: "\x1b[34m"},
	{Label: "magenta", Code: "\x1b[35m"},
	{Label: "cyan", Code: "\x1b[36m"},
	{Label: "white", Code: "\x1b[37m"},
}

// LookupColor finds a palette color by label, ignoring case.
func (c *Console) LookupColor(label string) (models.Color, bool) {
	want := c.fold.String(label)
	for _, color := range Palette {
		if c.fold.String(color.Label) == want {
			return color, true
		}
	}
	return models.Color{}, false
}

// Seat builds players from preset color labels without prompting.
func (c *Console) Seat(labels []string) ([]models.Player, error) {
	taken := make(map[string]bool)
	players := make([]models.Player, 0, len(labels))
	for _, label := range labels {
		color, ok := c.LookupColor(label)
		if !ok {
			return nil, fmt.Errorf("unknown player color %q", label)
		}
		if taken[color.Label] {
			return nil, fmt.Errorf("player color %q used twice", color.Label)
		}
		taken[color.Label] = true
		players = append(players, models.NewPlayer(color))
	}
	return players, nil
}

// Setup greets the table, asks how many play and lets each player pick a
// free color.
func (c *Console) Setup(maxPlayers int) ([]models.Player, error) {
	fmt.Fprint(c.out, "Welcome to Yahtzee!\n\nPlease follow the setup steps below!\n")

	if maxPlayers > len(Palette) {
		maxPlayers = len(Palette)
	}
	answer, err := c.Request(
		"How many players are playing? ",
		func(input string) bool {
			n, err := strconv.Atoi(input)
			return err == nil && n > 0 && n <= maxPlayers
		},
		fmt.Sprintf("Please enter a number between 1 and %d!", maxPlayers),
	)
	if err != nil {
		return nil, err
	}
	count, _ := strconv.Atoi(answer)

	taken := make(map[string]bool)
	players := make([]models.Player, 0, count)
	for i := 0; i < count; i++ {
		free := c.showColors(taken)
		label, err := c.Request(
			fmt.Sprintf("Enter the color of Player N. %d: ", i+1),
			func(input string) bool {
				color, ok := c.LookupColor(input)
				return ok && !taken[color.Label]
			},
			"Please enter a valid color!",
			free...,
		)
		if err != nil {
			return nil, err
		}
		color, _ := c.LookupColor(label)
		taken[color.Label] = true
		players = append(players, models.NewPlayer(color))
	}
	return players, nil
}

func (c *Console) showColors(taken map[string]bool) []string {
	fmt.Fprintln(c.out, "Available colors:")
	var free []string
	for _, color := range Palette {
		if taken[color.Label] {
			continue
		}
		free = append(free, color.Label)
		fmt.Fprintf(c.out, "%s  %s\n", scratchMark, colored(color))
	}
	return free
}
