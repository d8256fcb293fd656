package model

import "time"

// StateRecord 持久化聚合（identity/progress/submissions/integration）的键值行
type StateRecord struct {
	Key       string `gorm:"primaryKey;size:64"`
	Value     string `gorm:"type:longtext"`
	UpdatedAt time.Time
}

func (StateRecord) TableName() string {
	return "state_records"
}

// EventLogEntry 事件日志行，自增ID即追加顺序
type EventLogEntry struct {
	ID         uint      `gorm:"primaryKey;autoIncrement"`
	RecordedAt time.Time `gorm:"index"`
	Statement  string    `gorm:"type:longtext"`
}

func (EventLogEntry) TableName() string {
	return "event_records"
}
