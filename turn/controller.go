// Package turn runs the up-to-three throws of a single player's turn.
package turn

import (
	"errors"
	"fmt"

	"github.com/wfunc/yahtzee/dice"
	"github.com/wfunc/yahtzee/logger"
	"github.com/wfunc/yahtzee/models"
	"github.com/wfunc/yahtzee/state"
)

// MaxThrows is the number of throws a turn allows.
const MaxThrows = 3

// Picker asks the player which dice to throw again.
type Picker interface {
	// PickRethrow returns the ids of not-yet-fixed dice to throw again.
	// Every other die becomes fixed; an empty selection ends the turn.
	// The ids are already validated.
	PickRethrow(hand models.Hand) ([]int, error)
}

// View shows the hand after each throw.
type View interface {
	ShowDice(hand models.Hand)
}

// Outcome is the final hand of a turn and how many throws it took.
type Outcome struct {
	Hand   models.Hand
	Throws int
}

// Controller drives the rolling/done state machine of a turn.
type Controller struct {
	roller dice.Roller
	picker Picker
	view   View
}

func NewController(roller dice.Roller, picker Picker, view View) *Controller {
	return &Controller{
		roller: roller,
		picker: picker,
		view:   view,
	}
}

// Run throws the hand until the player keeps every die or the throws run out.
// Errors from the picker are returned as they are.
func (c *Controller) Run(initial models.Hand) (Outcome, error) {
	out := Outcome{Hand: initial}
	attempt := 0

	rolling := newRollingState(0)
	machine := state.NewBaseStateMachine(rolling)
	// 同 ID 的 rolling -> rolling 只在还有剩余次数且有未固定骰子时允许
	if err := machine.AddTransition(rolling, rolling, func() bool {
		return attempt+1 < MaxThrows && !out.Hand.AllFixed()
	}); err != nil {
		return out, err
	}

	for {
		current, ok := machine.GetCurrentState().(*RollingState)
		if !ok {
			break
		}
		attempt = current.Attempt

		out.Hand = out.Hand.Roll(c.roller.RollFace)
		out.Throws++
		logger.Log.Debugw("dice thrown", "attempt", attempt, "values", out.Hand.Values())
		if c.view != nil {
			c.view.ShowDice(out.Hand)
		}

		if attempt < MaxThrows-1 {
			rethrow, err := c.picker.PickRethrow(out.Hand)
			if err != nil {
				return out, err
			}
			out.Hand = out.Hand.Keep(rethrow)
		}

		err := machine.ChangeState(newRollingState(attempt + 1))
		if errors.Is(err, state.ErrTransitionNotAllowed) {
			err = machine.ChangeState(newDoneState())
		}
		if err != nil {
			return out, fmt.Errorf("advance turn from %s: %w", current, err)
		}
	}

	return out, nil
}
