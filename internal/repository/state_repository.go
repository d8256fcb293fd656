package repository

import (
	"context"
	"errors"
	"time"

	"oecd_explorer/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// StateRepository is the durable key/value contract behind the state store.
type StateRepository interface {
	Load(ctx context.Context, key string) ([]byte, bool, error)
	Save(ctx context.Context, key string, value []byte) error
	Ping(ctx context.Context) error
}

type GormStateRepository struct {
	DB *gorm.DB
}

func NewGormStateRepository(db *gorm.DB) *GormStateRepository {
	return &GormStateRepository{DB: db}
}

func (r *GormStateRepository) Load(ctx context.Context, key string) ([]byte, bool, error) {
	var record model.StateRecord
	err := r.DB.WithContext(ctx).Where("`key` = ?", key).First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return []byte(record.Value), true, nil
}

func (r *GormStateRepository) Save(ctx context.Context, key string, value []byte) error {
	record := model.StateRecord{
		Key:       key,
		Value:     string(value),
		UpdatedAt: time.Now(),
	}
	return r.DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&record).Error
}

func (r *GormStateRepository) Ping(ctx context.Context) error {
	sqlDB, err := r.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
