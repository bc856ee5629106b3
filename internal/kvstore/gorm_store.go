package kvstore

import (
	"context"
	"errors"
	"unicode/utf8"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Entry is one row of the kv_store table.
type Entry struct {
	Key   string `gorm:"column:key;type:text;primaryKey"`
	Value string `gorm:"column:value;type:text;not null"`
}

// TableName keeps the table name stable regardless of naming strategy.
func (Entry) TableName() string {
	return "kv_store"
}

type gormStore struct {
	db *gorm.DB
}

// NewGormStore wraps an already migrated database (see database.NewConnection).
func NewGormStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

func (s *gormStore) Get(ctx context.Context, key string) ([]byte, error) {
	var entry Entry
	if err := s.db.WithContext(ctx).Where("key = ?", key).Take(&entry).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return []byte(entry.Value), nil
}

func (s *gormStore) Set(ctx context.Context, key string, value []byte) error {
	entry := Entry{Key: key, Value: string(value)}
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&entry).Error
}

func (s *gormStore) Delete(ctx context.Context, key string) error {
	return s.db.WithContext(ctx).Where("key = ?", key).Delete(&Entry{}).Error
}

func (s *gormStore) GetByPrefix(ctx context.Context, prefix string) ([][]byte, error) {
	var entries []Entry
	if err := s.db.WithContext(ctx).
		Where("substr(key, 1, ?) = ?", utf8.RuneCountInString(prefix), prefix).
		Find(&entries).Error; err != nil {
		return nil, err
	}

	values := make([][]byte, 0, len(entries))
	for _, e := range entries {
		values = append(values, []byte(e.Value))
	}
	return values, nil
}

func (s *gormStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
