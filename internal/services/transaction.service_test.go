package services

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"

	"hotelsys/internal/database"
	"hotelsys/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

var testDBCounter atomic.Int64

func newTestService(t *testing.T) (*TransactionService, database.DB) {
	t.Helper()

	dsn := fmt.Sprintf(
		"file:transaction_service_%d?mode=memory&cache=shared",
		testDBCounter.Add(1),
	)
	gormDB, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := gormDB.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	db := database.DB{SQL: gormDB}
	require.NoError(t, db.MigrateModels())

	return NewTransactionService(db), db
}

func customerCount(t *testing.T, db database.DB) int64 {
	t.Helper()

	var count int64
	require.NoError(t, db.SQL.Model(&models.Customer{}).Count(&count).Error)
	return count
}

func TestTransactionService_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("commits on success", func(t *testing.T) {
		service, db := newTestService(t)

		err := service.Execute(ctx, func(ctx context.Context, tx *gorm.DB) error {
			return tx.Create(&models.Customer{Email: "guest@mail.com", Name: "Guest"}).Error
		})
		require.NoError(t, err)

		assert.EqualValues(t, 1, customerCount(t, db))
	})

	t.Run("rolls back on error and returns it unchanged", func(t *testing.T) {
		service, db := newTestService(t)

		boom := errors.New("validation failed")
		err := service.Execute(ctx, func(ctx context.Context, tx *gorm.DB) error {
			if err := tx.Create(&models.Customer{Email: "guest@mail.com", Name: "Guest"}).Error; err != nil {
				return err
			}
			return boom
		})

		assert.Same(t, boom, err)
		assert.Zero(t, customerCount(t, db))
	})

	t.Run("rolls back on panic and converts it to an error", func(t *testing.T) {
		service, db := newTestService(t)

		err := service.Execute(ctx, func(ctx context.Context, tx *gorm.DB) error {
			if err := tx.Create(&models.Customer{Email: "guest@mail.com", Name: "Guest"}).Error; err != nil {
				return err
			}
			panic("something broke")
		})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "something broke")
		assert.Zero(t, customerCount(t, db))
	})
}
