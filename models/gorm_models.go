// models/gorm_models.go
package models

import (
	"time"
)

// GormGameRecord 游戏记录模型
type GormGameRecord struct {
	ID       uint           `gorm:"primaryKey"`
	GameID   string         `gorm:"uniqueIndex;not null"`
	Rounds   int            `gorm:"not null"`
	Players  []PlayerResult `gorm:"serializer:json;type:jsonb;not null"`
	Winners  []string       `gorm:"serializer:json;type:jsonb"`
	PlayedAt time.Time      `gorm:"index;not null"`
}

// TableName keeps the table shared with the database/sql store.
func (GormGameRecord) TableName() string {
	return "game_records"
}

// ToRecord converts the row back to the domain record.
func (m GormGameRecord) ToRecord() GameRecord {
	return GameRecord{
		ID:       m.GameID,
		Rounds:   m.Rounds,
		Players:  m.Players,
		PlayedAt: m.PlayedAt,
	}
}

// NewGormGameRecord builds a row from a domain record.
func NewGormGameRecord(r GameRecord) GormGameRecord {
	return GormGameRecord{
		GameID:   r.ID,
		Rounds:   r.Rounds,
		Players:  r.Players,
		Winners:  r.Winners(),
		PlayedAt: r.PlayedAt,
	}
}
