package models

import (
	"golang.org/x/text/cases"
)

// Category 是计分表上的一行
type Category int

// 计分表顺序即声明顺序
const (
	Ones Category = iota + 1
	Twos
	Threes
	Fours
	Fives
	Sixes
	Bonus
	ThreeOfAKind
	FourOfAKind
	FullHouse
	SmallStraight
	LargeStraight
	Chance
	Yahtzee
	Total
)

// Section splits the sheet into the face-count rows and the combination rows.
type Section int

const (
	Upper Section = iota
	Lower
)

const (
	// SheetSize is the number of rows on a score sheet, calculated rows included.
	SheetSize = int(Total)
	// BaseCategories is the number of rows a player can choose, one per round.
	BaseCategories = 13
)

var categoryLabels = map[Category]string{
	Ones:          "Ones",
	Twos:          "Twos",
	Threes:        "Threes",
	Fours:         "Fours",
	Fives:         "Fives",
	Sixes:         "Sixes",
	Bonus:         "Bonus",
	ThreeOfAKind:  "Three of a kind",
	FourOfAKind:   "Four of a kind",
	FullHouse:     "Full house",
	SmallStraight: "Small straight",
	LargeStraight: "Large straight",
	Chance:        "Chance",
	Yahtzee:       "Yahtzee",
	Total:         "Total",
}

// SheetOrder returns every category in display order.
func SheetOrder() []Category {
	order := make([]Category, 0, SheetSize)
	for c := Ones; c <= Total; c++ {
		order = append(order, c)
	}
	return order
}

// Label 返回显示名称
func (c Category) Label() string {
	if label, ok := categoryLabels[c]; ok {
		return label
	}
	return "Unknown"
}

func (c Category) String() string {
	return c.Label()
}

// Valid reports whether c names a row of the sheet.
func (c Category) Valid() bool {
	return c >= Ones && c <= Total
}

// Section 返回所属区域。Bonus 属于上半区，Total 属于下半区。
func (c Category) Section() Section {
	if c >= Ones && c <= Bonus {
		return Upper
	}
	return Lower
}

// Calculated reports whether the row is derived from other rows and never chosen.
func (c Category) Calculated() bool {
	return c == Bonus || c == Total
}

// Face returns the die face counted by an upper category, or 0.
func (c Category) Face() int {
	if c >= Ones && c <= Sixes {
		return int(c)
	}
	return 0
}

// ParseCategory matches a label case-insensitively.
func ParseCategory(label string) (Category, bool) {
	folder := cases.Fold()
	want := folder.String(label)
	for c, l := range categoryLabels {
		if folder.String(l) == want {
			return c, true
		}
	}
	return 0, false
}
