// Package postgres backs the local key-value layer with a PostgreSQL table through GORM.
package postgres

import (
	"context"
	"time"

	"storefront/internal/errors"
	"storefront/internal/infra/persistence/kv"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// KVRecordModel is one stored document.
type KVRecordModel struct {
	Key       string    `gorm:"primaryKey;size:255"`
	Value     []byte    `gorm:"type:bytea;not null"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

// TableName overrides the default table name.
func (KVRecordModel) TableName() string {
	return "storefront_kv"
}

type kvStore struct {
	db *gorm.DB
}

// NewKVStore migrates the document table and returns a kv.Store over it.
func NewKVStore(ctx context.Context, db *gorm.DB) (kv.Store, error) {
	if err := db.WithContext(ctx).AutoMigrate(&KVRecordModel{}); err != nil {
		return nil, errors.Wrap(err, "migrate storefront_kv")
	}

	return &kvStore{db: db}, nil
}

func (s *kvStore) Get(ctx context.Context, key string) ([]byte, error) {
	var record KVRecordModel
	err := s.db.WithContext(ctx).Where("key = ?", key).First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, kv.ErrKeyNotFound
	}
	if err != nil {
		return nil, errors.Wrapf(err, "select %s", key)
	}

	return record.Value, nil
}

func (s *kvStore) Put(ctx context.Context, key string, value []byte) error {
	record := KVRecordModel{Key: key, Value: value}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&record).Error

	return errors.Wrapf(err, "upsert %s", key)
}

func (s *kvStore) Delete(ctx context.Context, key string) error {
	err := s.db.WithContext(ctx).Where("key = ?", key).Delete(&KVRecordModel{}).Error

	return errors.Wrapf(err, "delete %s", key)
}

// Close is a no-op; the pool belongs to whoever opened the *gorm.DB.
func (s *kvStore) Close() error {
	return nil
}
