package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"oecd_explorer/internal/model"

	"gorm.io/gorm"
)

// EventLogRepository 只追加的事件日志，导入时整体替换
type EventLogRepository interface {
	Append(ctx context.Context, record model.EventRecord) error
	List(ctx context.Context) ([]model.EventRecord, error)
	Replace(ctx context.Context, records []model.EventRecord) error
}

type GormEventLogRepository struct {
	DB *gorm.DB
}

func NewGormEventLogRepository(db *gorm.DB) *GormEventLogRepository {
	return &GormEventLogRepository{DB: db}
}

func (r *GormEventLogRepository) Append(ctx context.Context, record model.EventRecord) error {
	entry, err := toLogEntry(record)
	if err != nil {
		return err
	}
	return r.DB.WithContext(ctx).Create(&entry).Error
}

func (r *GormEventLogRepository) List(ctx context.Context) ([]model.EventRecord, error) {
	var entries []model.EventLogEntry
	if err := r.DB.WithContext(ctx).Order("id ASC").Find(&entries).Error; err != nil {
		return nil, err
	}

	records := make([]model.EventRecord, 0, len(entries))
	for _, e := range entries {
		rec, err := fromLogEntry(e)
		if err != nil {
			return nil, fmt.Errorf("event %d: %w", e.ID, err)
		}
		records = append(records, rec)
	}
	return records, nil
}

func (r *GormEventLogRepository) Replace(ctx context.Context, records []model.EventRecord) error {
	entries := make([]model.EventLogEntry, 0, len(records))
	for _, rec := range records {
		entry, err := toLogEntry(rec)
		if err != nil {
			return err
		}
		entries = append(entries, entry)
	}

	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&model.EventLogEntry{}).Error; err != nil {
			return err
		}
		if len(entries) == 0 {
			return nil
		}
		return tx.CreateInBatches(entries, 100).Error
	})
}

func toLogEntry(record model.EventRecord) (model.EventLogEntry, error) {
	raw, err := json.Marshal(record.Statement)
	if err != nil {
		return model.EventLogEntry{}, err
	}
	return model.EventLogEntry{
		RecordedAt: record.RecordedAt,
		Statement:  string(raw),
	}, nil
}

func fromLogEntry(entry model.EventLogEntry) (model.EventRecord, error) {
	var stmt model.Statement
	if err := json.Unmarshal([]byte(entry.Statement), &stmt); err != nil {
		return model.EventRecord{}, err
	}
	return model.EventRecord{RecordedAt: entry.RecordedAt, Statement: stmt}, nil
}
