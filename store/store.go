// Package store persists finished game results in a local SQLite database.
package store

import (
	"context"
	"fmt"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/lixenwraith/tower-siege/engine"
)

// MemoryDSN opens a process-shared in-memory database
const MemoryDSN = "file::memory:?cache=shared"

// Record is one persisted game result
type Record struct {
	ID            uint `gorm:"primaryKey"`
	CreatedAt     time.Time
	Wave          int `gorm:"index"`
	EnemiesKilled int
	MoneyEarned   int
	TowersBuilt   int
}

// Store wraps the result database
type Store struct {
	db  *gorm.DB
	log zerolog.Logger
}

// Open connects to the database at path, an empty path selects MemoryDSN, and migrates the schema
func Open(path string, log zerolog.Logger) (*Store, error) {
	dsn := path
	if dsn == "" {
		dsn = MemoryDSN
	}

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open result database: %w", err)
	}

	pragmas := []string{
		"PRAGMA busy_timeout = 5000;",
		"PRAGMA synchronous = NORMAL;",
	}
	for _, pragma := range pragmas {
		if err := db.Exec(pragma).Error; err != nil {
			return nil, fmt.Errorf("error setting PRAGMA: %w", err)
		}
	}

	if err := db.AutoMigrate(&Record{}); err != nil {
		return nil, fmt.Errorf("failed to migrate result table: %w", err)
	}

	log.Info().Str("dsn", dsn).Msg("result store ready")
	return &Store{db: db, log: log}, nil
}

// Save appends a result and returns the stored record
func (s *Store) Save(ctx context.Context, r engine.Result) (Record, error) {
	rec := Record{
		Wave:          r.Wave,
		EnemiesKilled: r.EnemiesKilled,
		MoneyEarned:   r.MoneyEarned,
		TowersBuilt:   r.TowersBuilt,
	}
	if err := s.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return Record{}, fmt.Errorf("failed to save result: %w", err)
	}
	s.log.Debug().Uint("id", rec.ID).Int("wave", rec.Wave).Msg("result saved")
	return rec, nil
}

// Top returns the n best results, furthest wave first, then most kills, then oldest
func (s *Store) Top(ctx context.Context, n int) ([]Record, error) {
	if n <= 0 {
		return nil, nil
	}
	var out []Record
	err := s.db.WithContext(ctx).
		Order("wave DESC").
		Order("enemies_killed DESC").
		Order("id ASC").
		Limit(n).
		Find(&out).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query results: %w", err)
	}
	return out, nil
}

// Count returns the number of stored results
func (s *Store) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := s.db.WithContext(ctx).Model(&Record{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("failed to count results: %w", err)
	}
	return n, nil
}

// Close releases the underlying connection
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("failed to access sql interface: %w", err)
	}
	return sqlDB.Close()
}
