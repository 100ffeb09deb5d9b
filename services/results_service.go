// services/results_service.go
package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/wfunc/yahtzee/game"
	"github.com/wfunc/yahtzee/logger"
	"github.com/wfunc/yahtzee/models"
	"github.com/wfunc/yahtzee/persistence"
	"github.com/wfunc/yahtzee/sheet"
)

type ResultsService struct {
	db  persistence.Database
	now func() time.Time
}

func NewResultsService(db persistence.Database) *ResultsService {
	return &ResultsService{db: db, now: time.Now}
}

// BuildRecord snapshots finished players into an archive record, marking every
// tied leader as a winner.
func (s *ResultsService) BuildRecord(players []models.Player) models.GameRecord {
	best := -1
	if top := game.Winners(players); len(top) > 0 {
		best = sheet.TotalOf(top[0])
	}

	record := models.GameRecord{
		ID:       uuid.New().String(),
		Rounds:   game.Rounds,
		PlayedAt: s.now().UTC(),
	}
	for seat, p := range players {
		record.Players = append(record.Players, models.NewPlayerResult(seat, p, sheet.TotalOf(p) == best))
	}
	return record
}

// Record archives a finished game and returns the stored record.
func (s *ResultsService) Record(ctx context.Context, players []models.Player) (models.GameRecord, error) {
	record := s.BuildRecord(players)
	if err := s.db.SaveGameRecord(ctx, record); err != nil {
		return record, fmt.Errorf("save game %s: %w", record.ID, err)
	}
	logger.Log.Infow("game archived", "game_id", record.ID, "winners", record.Winners())
	return record, nil
}

// History returns the latest limit games, newest first.
func (s *ResultsService) History(ctx context.Context, limit int) ([]models.GameRecord, error) {
	if limit <= 0 {
		return nil, nil
	}
	records, err := s.db.ListGameRecords(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("list games: %w", err)
	}
	return records, nil
}
