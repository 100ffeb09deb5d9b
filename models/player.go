package models

// Mark records what happened to a row. The zero value is an unattempted row;
// a scored row may hold 0 points, which means the row was scratched.
type Mark struct {
	attempted bool
	points    int
}

// Unattempted returns the mark of a row nobody has used yet.
func Unattempted() Mark {
	return Mark{}
}

// Scored returns the mark of a used row worth points.
func Scored(points int) Mark {
	if points < 0 {
		points = 0
	}
	return Mark{attempted: true, points: points}
}

// Scratched returns a used row worth nothing.
func Scratched() Mark {
	return Scored(0)
}

func (m Mark) Attempted() bool { return m.attempted }

func (m Mark) Points() int { return m.points }

func (m Mark) Scratched() bool { return m.attempted && m.points == 0 }

// Value encodes the mark as a single int: 0 unattempted, -1 scratched, points otherwise.
func (m Mark) Value() int {
	switch {
	case !m.attempted:
		return 0
	case m.points == 0:
		return -1
	default:
		return m.points
	}
}

// Entry 计分表中的一行
type Entry struct {
	Category Category
	Mark     Mark
}

// Value is the display value of the row. Calculated rows never show as scratched.
func (e Entry) Value() int {
	if e.Category.Calculated() {
		return e.Mark.Points()
	}
	return e.Mark.Value()
}

// Sheet is a score sheet in display order.
type Sheet [SheetSize]Entry

// NewSheet returns an empty sheet. Calculated rows start at 0 points.
func NewSheet() Sheet {
	var s Sheet
	for i, c := range SheetOrder() {
		s[i] = Entry{Category: c}
		if c.Calculated() {
			s[i].Mark = Scored(0)
		}
	}
	return s
}

// Entry finds the row for c.
func (s Sheet) Entry(c Category) (Entry, bool) {
	for _, e := range s {
		if e.Category == c {
			return e, true
		}
	}
	return Entry{}, false
}

// With returns a copy of the sheet with the row for c replaced. ok is false
// when the sheet has no such row.
func (s Sheet) With(c Category, m Mark) (Sheet, bool) {
	for i, e := range s {
		if e.Category == c {
			s[i].Mark = m
			return s, true
		}
	}
	return s, false
}

// Color identifies a player on screen.
type Color struct {
	Label string
	Code  string
}

// Player 玩家及其计分表
type Player struct {
	Color Color
	Sheet Sheet
}

// NewPlayer seats a player with an empty sheet.
func NewPlayer(color Color) Player {
	return Player{Color: color, Sheet: NewSheet()}
}

// Name is the player's color label.
func (p Player) Name() string {
	return p.Color.Label
}

// Game 一局游戏
type Game struct {
	Players []Player
}
