package models

const (
	// DiceCount is the number of dice in every hand.
	DiceCount = 5
	// Faces is the number of sides on a die.
	Faces = 6
)

// Die 骰子。Value 为 0 表示尚未掷出。
type Die struct {
	ID    int  `json:"id"`
	Value int  `json:"value"`
	Fixed bool `json:"fixed"`
}

// Hand holds the five dice of a turn. It is a value type: every method that
// changes dice returns an updated copy.
type Hand [DiceCount]Die

// NewHand returns dice 1..5, unrolled and free.
func NewHand() Hand {
	var h Hand
	for i := range h {
		h[i] = Die{ID: i + 1}
	}
	return h
}

// Values returns the face of every die in id order.
func (h Hand) Values() []int {
	values := make([]int, 0, DiceCount)
	for _, d := range h {
		values = append(values, d.Value)
	}
	return values
}

// Die looks a die up by id.
func (h Hand) Die(id int) (Die, bool) {
	for _, d := range h {
		if d.ID == id {
			return d, true
		}
	}
	return Die{}, false
}

// AllFixed reports whether no die is left to throw.
func (h Hand) AllFixed() bool {
	for _, d := range h {
		if !d.Fixed {
			return false
		}
	}
	return true
}

// Rethrowable returns the ids of the dice that are not fixed yet.
func (h Hand) Rethrowable() []int {
	var ids []int
	for _, d := range h {
		if !d.Fixed {
			ids = append(ids, d.ID)
		}
	}
	return ids
}

// Keep fixes every die whose id is not in rethrow.
func (h Hand) Keep(rethrow []int) Hand {
	free := make(map[int]bool, len(rethrow))
	for _, id := range rethrow {
		free[id] = true
	}
	for i, d := range h {
		if !free[d.ID] {
			h[i].Fixed = true
		}
	}
	return h
}

// Roll draws a new value for every die that is not fixed.
func (h Hand) Roll(face func() int) Hand {
	for i, d := range h {
		if !d.Fixed {
			h[i].Value = face()
		}
	}
	return h
}

// HandOf builds a rolled hand from five face values. Handy for previews and tests.
func HandOf(values ...int) Hand {
	h := NewHand()
	for i := 0; i < DiceCount && i < len(values); i++ {
		h[i].Value = values[i]
	}
	return h
}
