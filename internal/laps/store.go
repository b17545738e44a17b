// Package laps keeps a history of completed laps in a local SQLite file.
package laps

import (
	"context"
	"errors"
	"fmt"

	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"racer/internal/track"
)

// Record is one completed lap.
type Record struct {
	gorm.Model
	Track    string  `json:"track" gorm:"size:64;index:idx_laps_track_seconds,priority:1"`
	PlayerID int     `json:"playerId" gorm:"index:idx_laps_player"`
	Number   int     `json:"number"`
	Seconds  float32 `json:"seconds" gorm:"index:idx_laps_track_seconds,priority:2"`
}

func (Record) TableName() string { return "laps" }

// Store persists lap records.
type Store struct {
	db  *gorm.DB
	log zerolog.Logger
}

// Open opens or creates the database at path and migrates the schema.
func Open(path string, log zerolog.Logger) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		PrepareStmt:            true,
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("opening lap store: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode = WAL;",
		"PRAGMA synchronous = NORMAL;",
	}
	for _, pragma := range pragmas {
		if err := db.Exec(pragma).Error; err != nil {
			return nil, fmt.Errorf("error setting PRAGMA: %w", err)
		}
	}

	if err := db.AutoMigrate(&Record{}); err != nil {
		return nil, fmt.Errorf("migrating lap store: %w", err)
	}

	log.Info().Str("path", path).Msg("Lap store ready")
	return &Store{db: db, log: log}, nil
}

// Record stores r. ID and timestamps are filled in.
func (s *Store) Record(ctx context.Context, r *Record) error {
	if err := s.db.WithContext(ctx).Create(r).Error; err != nil {
		return fmt.Errorf("recording lap: %w", err)
	}
	s.log.Debug().Str("track", r.Track).Int("player", r.PlayerID).
		Int("lap", r.Number).Float32("seconds", r.Seconds).Msg("Lap recorded")
	return nil
}

// Best returns the fastest lap on track. ok is false when none is stored.
func (s *Store) Best(ctx context.Context, track string) (r Record, ok bool, err error) {
	err = s.db.WithContext(ctx).
		Where("track = ?", track).
		Order("seconds ASC").Order("id ASC").
		First(&r).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Record{}, false, nil
	}
	if err != nil {
		return Record{}, false, fmt.Errorf("querying best lap: %w", err)
	}
	return r, true, nil
}

// Recent returns up to n laps of a player, newest first.
func (s *Store) Recent(ctx context.Context, playerID, n int) ([]Record, error) {
	var out []Record
	err := s.db.WithContext(ctx).
		Where("player_id = ?", playerID).
		Order("id DESC").
		Limit(n).
		Find(&out).Error
	if err != nil {
		return nil, fmt.Errorf("querying recent laps: %w", err)
	}
	return out, nil
}

// Watch records every lap completed on counter. Failures are logged, not
// returned, since they happen inside the game loop.
func (s *Store) Watch(ctx context.Context, counter *track.LapCounter, trackName string, playerID int) {
	counter.OnLap.AddListener(func(lap track.Lap) {
		r := &Record{Track: trackName, PlayerID: playerID, Number: lap.Number, Seconds: lap.Time}
		if err := s.Record(ctx, r); err != nil {
			s.log.Error().Err(err).Int("lap", lap.Number).Msg("Failed to store lap")
		}
	})
}

func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("failed to access sql interface: %w", err)
	}
	return sqlDB.Close()
}
