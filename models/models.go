// models/models.go
package models

import (
	"time"
)

// GameRecord 一局结束后的存档记录
type GameRecord struct {
	ID       string         `json:"id"`
	Rounds   int            `json:"rounds"`
	Players  []PlayerResult `json:"players"`
	PlayedAt time.Time      `json:"played_at"`
}

// PlayerResult 玩家结果（用于游戏记录）
type PlayerResult struct {
	Seat   int            `json:"seat"`
	Color  string         `json:"color"`
	Scores map[string]int `json:"scores"` // label -> value, -1 为划掉
	Bonus  int            `json:"bonus"`
	Total  int            `json:"total"`
	Winner bool           `json:"winner"`
}

// Winners returns the colors of the players marked as winners.
func (r GameRecord) Winners() []string {
	var colors []string
	for _, p := range r.Players {
		if p.Winner {
			colors = append(colors, p.Color)
		}
	}
	return colors
}

// NewPlayerResult snapshots a finished sheet.
func NewPlayerResult(seat int, p Player, winner bool) PlayerResult {
	result := PlayerResult{
		Seat:   seat,
		Color:  p.Color.Label,
		Scores: make(map[string]int, BaseCategories),
		Winner: winner,
	}
	for _, e := range p.Sheet {
		switch e.Category {
		case Bonus:
			result.Bonus = e.Value()
		case Total:
			result.Total = e.Value()
		default:
			result.Scores[e.Category.Label()] = e.Value()
		}
	}
	return result
}
