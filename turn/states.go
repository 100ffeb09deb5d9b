package turn

import (
	"fmt"

	"github.com/wfunc/yahtzee/state"
)

const (
	StateRolling = "rolling"
	StateDone    = "done"
)

// RollingState is entered once per throw. Attempt counts from 0.
type RollingState struct {
	state.BaseState
	Attempt int
}

func newRollingState(attempt int) *RollingState {
	return &RollingState{
		BaseState: state.BaseState{ID: StateRolling},
		Attempt:   attempt,
	}
}

func (s *RollingState) String() string {
	return fmt.Sprintf("%s(%d)", s.ID, s.Attempt)
}

// DoneState 回合结束，手牌不再变化
type DoneState struct {
	state.BaseState
}

func newDoneState() *DoneState {
	return &DoneState{BaseState: state.BaseState{ID: StateDone}}
}
