package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/wfunc/yahtzee/models"
	"github.com/wfunc/yahtzee/persistence"
)

// MockDatabase is a test double for persistence.Database.
type MockDatabase struct {
	saved   []models.GameRecord
	saveErr error
	limit   int
}

func (m *MockDatabase) SaveGameRecord(ctx context.Context, record models.GameRecord) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saved = append(m.saved, record)
	return nil
}

func (m *MockDatabase) LoadGameRecord(ctx context.Context, id string) (models.GameRecord, error) {
	for _, r := range m.saved {
		if r.ID == id {
			return r, nil
		}
	}
	return models.GameRecord{}, persistence.ErrRecordNotFound
}

func (m *MockDatabase) ListGameRecords(ctx context.Context, limit int) ([]models.GameRecord, error) {
	m.limit = limit
	return m.saved, nil
}

func (m *MockDatabase) Close() error { return nil }

func playerWithTotal(color string, total int) models.Player {
	p := models.NewPlayer(models.Color{Label: color})
	p.Sheet, _ = p.Sheet.With(models.Chance, models.Scored(total))
	p.Sheet, _ = p.Sheet.With(models.Total, models.Scored(total))
	return p
}

func TestResultsService_RecordMarksTiedWinners(t *testing.T) {
	db := &MockDatabase{}
	svc := NewResultsService(db)
	svc.now = func() time.Time { return time.Date(2026, 5, 4, 12, 0, 0, 0, time.UTC) }

	players := []models.Player{
		playerWithTotal("red", 22),
		playerWithTotal("blue", 19),
		playerWithTotal("green", 22),
	}
	record, err := svc.Record(context.Background(), players)
	if err != nil {
		t.Fatalf("Record failed: %v", err)
	}

	if len(db.saved) != 1 || db.saved[0].ID != record.ID {
		t.Fatal("Expected the record to be saved once")
	}
	if record.ID == "" {
		t.Error("Expected a generated game id")
	}
	winners := record.Winners()
	if len(winners) != 2 || winners[0] != "red" || winners[1] != "green" {
		t.Errorf("Expected winners [red green], got %v", winners)
	}
	if record.Players[1].Scores["Chance"] != 19 || record.Players[1].Total != 19 {
		t.Errorf("Expected blue's sheet snapshot, got %+v", record.Players[1])
	}
	if record.Players[0].Scores["Yahtzee"] != 0 {
		t.Errorf("Expected an unattempted row to read 0, got %d", record.Players[0].Scores["Yahtzee"])
	}
}

func TestResultsService_RecordError(t *testing.T) {
	boom := errors.New("disk full")
	svc := NewResultsService(&MockDatabase{saveErr: boom})

	if _, err := svc.Record(context.Background(), []models.Player{playerWithTotal("red", 1)}); !errors.Is(err, boom) {
		t.Errorf("Expected the save error to be wrapped, got %v", err)
	}
}

func TestResultsService_History(t *testing.T) {
	db := &MockDatabase{}
	svc := NewResultsService(db)

	records, err := svc.History(context.Background(), 0)
	if err != nil || records != nil {
		t.Errorf("Expected nothing for a zero limit, got %v, %v", records, err)
	}

	if _, err := svc.History(context.Background(), 3); err != nil {
		t.Fatalf("History failed: %v", err)
	}
	if db.limit != 3 {
		t.Errorf("Expected limit 3 to reach the database, got %d", db.limit)
	}
}
