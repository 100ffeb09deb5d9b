// persistence/sql.go
package persistence

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	_ "github.com/lib/pq"  // PostgreSQL 驱动
	_ "modernc.org/sqlite" // SQLite 驱动（纯 Go）

	"github.com/wfunc/yahtzee/models"
)

// Dialect names the SQL flavour a SQLStore speaks.
type Dialect string

const (
	DialectPostgres Dialect = "postgres"
	DialectSQLite   Dialect = "sqlite"
)

const queryTimeout = 5 * time.Second

// SQLStore keeps game records through database/sql.
type SQLStore struct {
	db      *sql.DB
	dialect Dialect
}

// NewPostgreSQL 创建 PostgreSQL 数据库连接
func NewPostgreSQL(dsn string) (*SQLStore, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, err
	}

	// 设置连接池参数
	db.SetMaxOpenConns(5)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	return newSQLStore(db, DialectPostgres)
}

// NewSQLite opens (or creates) a SQLite file. ":memory:" gives a private
// in-memory database.
func NewSQLite(path string) (*SQLStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// 单连接：内存库每个连接都是独立的数据库
	db.SetMaxOpenConns(1)

	return newSQLStore(db, DialectSQLite)
}

func newSQLStore(db *sql.DB, dialect Dialect) (*SQLStore, error) {
	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping %s: %w", dialect, err)
	}

	s := &SQLStore{db: db, dialect: dialect}
	if err := s.initTables(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("init %s tables: %w", dialect, err)
	}
	return s, nil
}

// initTables 初始化数据库表结构
func (s *SQLStore) initTables(ctx context.Context) error {
	ddl := []string{`
        CREATE TABLE IF NOT EXISTS game_records (
            id INTEGER PRIMARY KEY AUTOINCREMENT,
            game_id TEXT UNIQUE NOT NULL,
            rounds INTEGER NOT NULL,
            players TEXT NOT NULL,
            winners TEXT,
            played_at TIMESTAMP NOT NULL
        )`,
	}
	if s.dialect == DialectPostgres {
		ddl = []string{`
        CREATE TABLE IF NOT EXISTS game_records (
            id BIGSERIAL PRIMARY KEY,
            game_id TEXT UNIQUE NOT NULL,
            rounds BIGINT NOT NULL,
            players JSONB NOT NULL,
            winners JSONB,
            played_at TIMESTAMPTZ NOT NULL
        )`,
		}
	}
	ddl = append(ddl, `CREATE INDEX IF NOT EXISTS idx_game_records_played_at ON game_records(played_at)`)

	for _, stmt := range ddl {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

// SaveGameRecord 保存游戏记录
func (s *SQLStore) SaveGameRecord(ctx context.Context, record models.GameRecord) error {
	players, err := json.Marshal(record.Players)
	if err != nil {
		return err
	}
	winners, err := json.Marshal(record.Winners())
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	query := s.rebind(`
        INSERT INTO game_records (game_id, rounds, players, winners, played_at)
        VALUES (?, ?, ?, ?, ?)
    `)
	_, err = s.db.ExecContext(ctx, query,
		record.ID,
		record.Rounds,
		string(players),
		string(winners),
		record.PlayedAt.UTC(),
	)
	return err
}

// LoadGameRecord 加载单条游戏记录
func (s *SQLStore) LoadGameRecord(ctx context.Context, id string) (models.GameRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	query := s.rebind(`SELECT game_id, rounds, players, played_at FROM game_records WHERE game_id = ?`)
	record, err := scanRecord(s.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.GameRecord{}, ErrRecordNotFound
	}
	return record, err
}

// ListGameRecords returns up to limit records, newest first.
func (s *SQLStore) ListGameRecords(ctx context.Context, limit int) ([]models.GameRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	query := s.rebind(`
        SELECT game_id, rounds, players, played_at FROM game_records
        ORDER BY played_at DESC, id DESC
        LIMIT ?
    `)
	rows, err := s.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []models.GameRecord
	for rows.Next() {
		record, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, rows.Err()
}

// Close 关闭数据库连接
func (s *SQLStore) Close() error {
	return s.db.Close()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (models.GameRecord, error) {
	var (
		record   models.GameRecord
		players  []byte
		playedAt timestamp
	)
	if err := row.Scan(&record.ID, &record.Rounds, &players, &playedAt); err != nil {
		return models.GameRecord{}, err
	}
	if err := json.Unmarshal(players, &record.Players); err != nil {
		return models.GameRecord{}, fmt.Errorf("decode players of %s: %w", record.ID, err)
	}
	record.PlayedAt = time.Time(playedAt)
	return record, nil
}

// rebind turns ? placeholders into $n for postgres.
func (s *SQLStore) rebind(query string) string {
	if s.dialect != DialectPostgres {
		return query
	}
	var b strings.Builder
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteString("$" + strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// timestamp accepts the shapes drivers hand back for a time column.
type timestamp time.Time

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02 15:04:05.999999999 -0700 MST",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04:05",
}

func (t *timestamp) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		*t = timestamp(v)
		return nil
	case int64:
		*t = timestamp(time.Unix(v, 0).UTC())
		return nil
	case []byte:
		return t.parse(string(v))
	case string:
		return t.parse(v)
	default:
		return fmt.Errorf("unsupported timestamp type %T", src)
	}
}

func (t *timestamp) parse(s string) error {
	for _, layout := range timestampLayouts {
		if parsed, err := time.Parse(layout, s); err == nil {
			*t = timestamp(parsed)
			return nil
		}
	}
	return fmt.Errorf("unparseable timestamp %q", s)
}
