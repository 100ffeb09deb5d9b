// Package score evaluates a hand of five dice against a sheet category.
// Every function here is pure.
package score

import (
	"sort"

	"github.com/wfunc/yahtzee/models"
)

// Fixed scores of the lower section.
const (
	FullHousePoints     = 25
	SmallStraightPoints = 30
	LargeStraightPoints = 50
	YahtzeePoints       = 50

	smallStraightRun = 4
	largeStraightRun = 5
)

// Kind is the most frequent face of a hand and how often it shows.
type Kind struct {
	Face  int
	Count int
}

// Option is an open category together with what the current hand would score in it.
type Option struct {
	Category models.Category
	Preview  models.Mark
}

// Category scores the hand in c. A condition that is not met scratches the
// row; calculated rows cannot be scored from dice and stay unattempted.
func Category(hand models.Hand, c models.Category) models.Mark {
	values := hand.Values()

	switch c {
	case models.Ones, models.Twos, models.Threes, models.Fours, models.Fives, models.Sixes:
		return points(countFace(values, c.Face()) * c.Face())
	case models.ThreeOfAKind:
		return ofAKind(values, 3)
	case models.FourOfAKind:
		return ofAKind(values, 4)
	case models.FullHouse:
		first := MaxSameKind(values)
		second := MaxSameKind(without(values, first.Face))
		if first.Count == 3 && second.Count == 2 {
			return models.Scored(FullHousePoints)
		}
		return models.Scratched()
	case models.SmallStraight:
		return straight(values, smallStraightRun, SmallStraightPoints)
	case models.LargeStraight:
		return straight(values, largeStraightRun, LargeStraightPoints)
	case models.Chance:
		return points(sum(values))
	case models.Yahtzee:
		if MaxSameKind(values).Count == models.DiceCount {
			return models.Scored(YahtzeePoints)
		}
		return models.Scratched()
	default:
		return models.Unattempted()
	}
}

// Preview scores the hand in each category without touching any sheet.
func Preview(hand models.Hand, categories []models.Category) []Option {
	options := make([]Option, 0, len(categories))
	for _, c := range categories {
		options = append(options, Option{Category: c, Preview: Category(hand, c)})
	}
	return options
}

// MaxSameKind returns the face with the highest count. Equal counts go to the
// higher face. An empty slice yields the zero Kind.
func MaxSameKind(values []int) Kind {
	counts := make(map[int]int, models.Faces)
	for _, v := range values {
		counts[v]++
	}

	var best Kind
	for face, count := range counts {
		if count > best.Count || (count == best.Count && face > best.Face) {
			best = Kind{Face: face, Count: count}
		}
	}
	return best
}

// LongestRun returns the length of the longest run of consecutive faces in
// values. Duplicates neither extend nor break a run.
func LongestRun(values []int) int {
	if len(values) == 0 {
		return 0
	}

	sorted := append([]int(nil), values...)
	sort.Ints(sorted)

	longest, run := 1, 1
	for i := 1; i < len(sorted); i++ {
		switch sorted[i] - sorted[i-1] {
		case 0:
		case 1:
			run++
		default:
			run = 1
		}
		if run > longest {
			longest = run
		}
	}
	return longest
}

func ofAKind(values []int, need int) models.Mark {
	kind := MaxSameKind(values)
	if kind.Count >= need {
		return points(kind.Count * kind.Face)
	}
	return models.Scratched()
}

func straight(values []int, run, reward int) models.Mark {
	if LongestRun(values) >= run {
		return models.Scored(reward)
	}
	return models.Scratched()
}

// points turns a computed sum into a mark; zero scratches the row.
func points(n int) models.Mark {
	if n <= 0 {
		return models.Scratched()
	}
	return models.Scored(n)
}

func countFace(values []int, face int) int {
	n := 0
	for _, v := range values {
		if v == face {
			n++
		}
	}
	return n
}

func without(values []int, face int) []int {
	rest := make([]int, 0, len(values))
	for _, v := range values {
		if v != face {
			rest = append(rest, v)
		}
	}
	return rest
}

func sum(values []int) int {
	total := 0
	for _, v := range values {
		total += v
	}
	return total
}
