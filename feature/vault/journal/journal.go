package journal

import (
	"context"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Transfer actions recorded in the journal.
const (
	ActionUpload = "upload"
	ActionRemove = "remove"
)

// TransferLog is one journal row per upload or removal.
type TransferLog struct {
	ID uint `gorm:"primaryKey" json:"id"`
	// Key is the resolved storage key the operation targeted.
	Key string `gorm:"size:512;index" json:"key"`
	// Action is either "upload" or "remove".
	Action string `gorm:"size:16" json:"action"`
	// Tombstoned marks removals that retained a tombstone copy.
	Tombstoned bool      `json:"tombstoned"`
	CreatedAt  time.Time `json:"created_at"`
}

// TableName overrides the gorm default.
func (TransferLog) TableName() string {
	return "transfer_log"
}

// Recorder writes transfer journal rows. A nil Recorder is valid and records
// nothing, so callers don't need to branch on whether a database is configured.
type Recorder struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewRecorder creates a journal recorder. Returns nil when db is nil.
func NewRecorder(db *gorm.DB, logger *zap.Logger) *Recorder {
	if db == nil {
		return nil
	}
	return &Recorder{db: db, logger: logger}
}

// Migrate creates or updates the transfer_log table.
func (r *Recorder) Migrate() error {
	if r == nil {
		return nil
	}
	return r.db.AutoMigrate(&TransferLog{})
}

// RecordUpload journals a completed upload. Journal failures are logged and
// never fail the storage operation itself.
func (r *Recorder) RecordUpload(ctx context.Context, key string) {
	r.record(ctx, TransferLog{Key: key, Action: ActionUpload})
}

// RecordRemoval journals a completed removal.
func (r *Recorder) RecordRemoval(ctx context.Context, key string, tombstoned bool) {
	r.record(ctx, TransferLog{Key: key, Action: ActionRemove, Tombstoned: tombstoned})
}

func (r *Recorder) record(ctx context.Context, entry TransferLog) {
	if r == nil {
		return
	}
	if err := r.db.WithContext(ctx).Create(&entry).Error; err != nil {
		r.logger.Warn("failed to write transfer journal entry",
			zap.String("key", entry.Key),
			zap.String("action", entry.Action),
			zap.Error(err),
		)
	}
}

// Recent returns the newest journal entries, capped at limit.
func (r *Recorder) Recent(ctx context.Context, limit int) ([]TransferLog, error) {
	if r == nil {
		return nil, nil
	}
	if limit <= 0 {
		limit = 50
	}
	var entries []TransferLog
	err := r.db.WithContext(ctx).Order("id DESC").Limit(limit).Find(&entries).Error
	return entries, err
}
