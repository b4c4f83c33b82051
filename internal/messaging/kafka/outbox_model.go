package kafka

import (
	"time"

	"github.com/google/uuid"
)

// OutboxRecord is the gorm schema of outbox_events, used only for migration.
// Reads and writes go through OutboxRepository on plain database/sql.
type OutboxRecord struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	RequestID     *string   `gorm:"type:varchar(64)"`
	AggregateType string    `gorm:"type:varchar(50);not null"`
	AggregateID   uuid.UUID `gorm:"type:uuid;not null"`
	EventType     string    `gorm:"type:varchar(100);not null"`
	Topic         string    `gorm:"type:varchar(255);not null"`
	Payload       []byte    `gorm:"type:bytea;not null"`
	Status        string    `gorm:"type:varchar(20);not null;default:'pending';index:idx_outbox_status_created,priority:1"`
	RetryCount    int       `gorm:"not null;default:0"`
	ErrorMessage  *string   `gorm:"type:varchar(500)"`
	NextRetryAt   *time.Time
	ProcessedAt   *time.Time
	CreatedAt     time.Time `gorm:"index:idx_outbox_status_created,priority:2"`
	UpdatedAt     time.Time
}

func (OutboxRecord) TableName() string {
	return "outbox_events"
}
