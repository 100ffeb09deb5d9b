package console

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/wfunc/yahtzee/models"
	"github.com/wfunc/yahtzee/score"
)

// PickRethrow asks which free dice to throw again. It implements turn.Picker.
func (c *Console) PickRethrow(hand models.Hand) ([]int, error) {
	answer, err := c.Request(
		"Which dice should be rethrown (e.g. 1,2)? ",
		func(input string) bool {
			_, ok := parseRethrow(input, hand)
			return ok
		},
		fmt.Sprintf("Please enter a comma-separated list of numbers between 1 and %d that are not fixed yet.", models.DiceCount),
	)
	if err != nil {
		return nil, err
	}
	ids, _ := parseRethrow(answer, hand)
	return ids, nil
}

// parseRethrow accepts "" or a comma-separated list of free die ids.
func parseRethrow(input string, hand models.Hand) ([]int, bool) {
	if strings.TrimSpace(input) == "" {
		return nil, true
	}

	seen := make(map[int]bool)
	var ids []int
	for _, part := range strings.Split(input, ",") {
		id, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, false
		}
		die, ok := hand.Die(id)
		if !ok || die.Fixed {
			return nil, false
		}
		if !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}
	return ids, true
}

// ChooseCategory lists the open categories with their preview and asks for
// one. It implements game.Chooser.
func (c *Console) ChooseCategory(player models.Player, hand models.Hand, options []score.Option) (models.Category, error) {
	fmt.Fprintln(c.out)
	c.ShowCategories(options)

	labels := make([]string, 0, len(options))
	for _, o := range options {
		labels = append(labels, o.Category.Label())
	}

	answer, err := c.Request(
		"Which category do you want to use? ",
		func(input string) bool {
			_, ok := findOption(input, options)
			return ok
		},
		"Please enter a valid category",
		labels...,
	)
	if err != nil {
		return 0, err
	}
	category, _ := findOption(answer, options)
	return category, nil
}

func findOption(input string, options []score.Option) (models.Category, bool) {
	category, ok := models.ParseCategory(input)
	if !ok {
		return 0, false
	}
	for _, o := range options {
		if o.Category == category {
			return category, true
		}
	}
	return 0, false
}
