// persistence/interface.go
package persistence

import (
	"context"
	"errors"

	"github.com/wfunc/yahtzee/models"
)

// Database 存档接口：只追加、只读列表，从不用来恢复对局
type Database interface {
	SaveGameRecord(ctx context.Context, record models.GameRecord) error
	LoadGameRecord(ctx context.Context, id string) (models.GameRecord, error)
	ListGameRecords(ctx context.Context, limit int) ([]models.GameRecord, error)
	Close() error
}

// 错误定义
var (
	ErrRecordNotFound = errors.New("record not found")
)
