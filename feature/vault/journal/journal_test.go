package journal_test

import (
	"context"
	"testing"

	"file-vault/core/database"
	"file-vault/feature/vault/journal"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func TestRecorder(t *testing.T) {
	logger := zap.NewNop()

	t.Run("NilRecorderIsNoop", func(t *testing.T) {
		rec := journal.NewRecorder(nil, logger)
		assert.Nil(t, rec)

		// Every method must be safe on the nil recorder.
		assert.NoError(t, rec.Migrate())
		rec.RecordUpload(context.Background(), "uploads/a.png")
		rec.RecordRemoval(context.Background(), "uploads/a.png", true)

		entries, err := rec.Recent(context.Background(), 10)
		assert.NoError(t, err)
		assert.Empty(t, entries)
	})

	t.Run("RecordsAndReads", func(t *testing.T) {
		db, err := database.Connect(database.Config{Driver: "sqlite", Name: ":memory:"})
		assert.NoError(t, err)

		rec := journal.NewRecorder(db, logger)
		assert.NoError(t, rec.Migrate())

		ctx := context.Background()
		rec.RecordUpload(ctx, "uploads/a.png")
		rec.RecordRemoval(ctx, "uploads/a.png", true)

		entries, err := rec.Recent(ctx, 10)
		assert.NoError(t, err)
		assert.Len(t, entries, 2)

		// Newest first
		assert.Equal(t, journal.ActionRemove, entries[0].Action)
		assert.True(t, entries[0].Tombstoned)
		assert.Equal(t, journal.ActionUpload, entries[1].Action)
		assert.Equal(t, "uploads/a.png", entries[1].Key)
	})

	t.Run("InsertFailureDoesNotPanic", func(t *testing.T) {
		sqlDB, mock, err := sqlmock.New()
		assert.NoError(t, err)
		defer sqlDB.Close()

		gdb, err := gorm.Open(mysql.New(mysql.Config{
			Conn:                      sqlDB,
			SkipInitializeWithVersion: true,
		}), &gorm.Config{})
		assert.NoError(t, err)

		mock.ExpectBegin()
		mock.ExpectExec("INSERT INTO `transfer_log`").WillReturnError(assert.AnError)
		mock.ExpectRollback()

		rec := journal.NewRecorder(gdb, logger)
		// The failure is logged, never surfaced to the storage operation.
		rec.RecordUpload(context.Background(), "uploads/a.png")

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
