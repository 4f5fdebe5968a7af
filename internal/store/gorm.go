package store

import (
	"context"
	"errors"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// DraftRecord is the row shape for persisted snapshots.
type DraftRecord struct {
	Code      string `gorm:"primaryKey;size:16"`
	Snapshot  []byte
	ExpiresAt time.Time
	UpdatedAt time.Time
}

// Gorm stores snapshots in a relational database through gorm.
type Gorm struct {
	db *gorm.DB
}

func OpenPostgres(dsn string) (*Gorm, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&DraftRecord{}); err != nil {
		return nil, err
	}
	return &Gorm{db: db}, nil
}

func NewGorm(db *gorm.DB) *Gorm {
	return &Gorm{db: db}
}

func (g *Gorm) Save(ctx context.Context, code string, snapshot []byte, expiresAt time.Time) error {
	rec := DraftRecord{Code: code, Snapshot: snapshot, ExpiresAt: expiresAt}
	return g.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "code"}},
			DoUpdates: clause.AssignmentColumns([]string{"snapshot", "expires_at", "updated_at"}),
		}).
		Create(&rec).Error
}

func (g *Gorm) Load(ctx context.Context, code string) ([]byte, error) {
	var rec DraftRecord
	err := g.db.WithContext(ctx).First(&rec, "code = ?", code).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if !rec.ExpiresAt.IsZero() && time.Now().After(rec.ExpiresAt) {
		return nil, ErrNotFound
	}
	return rec.Snapshot, nil
}

func (g *Gorm) Delete(ctx context.Context, code string) error {
	return g.db.WithContext(ctx).Delete(&DraftRecord{}, "code = ?", code).Error
}
