package accountController

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"hotelsys/config"
	"hotelsys/internal/apperror"
	"hotelsys/internal/database"
	. "hotelsys/internal/models"
	"hotelsys/internal/repositories"
	"hotelsys/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

var testDBCounter atomic.Int64

func newTestController(t *testing.T) AccountControllerInterface {
	t.Helper()

	dsn := fmt.Sprintf(
		"file:account_controller_%d?mode=memory&cache=shared",
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

	repos := repositories.New(db)
	testServices, err := services.New(db, config.Config{})
	require.NoError(t, err)

	return New(repos, testServices, config.Config{}, db)
}

func validAccount() *Account {
	return &Account{
		Password:    "Sommerwind1",
		Address:     "12 Seaside Lane",
		DateOfBirth: time.Date(1990, 4, 12, 0, 0, 0, 0, time.UTC),
	}
}

func assertAppError(t *testing.T, err error, status int, message string) {
	t.Helper()

	require.Error(t, err)
	appErr, ok := err.(*apperror.Error)
	require.True(t, ok, "expected *apperror.Error, got %T", err)
	assert.Equal(t, status, appErr.Status)
	assert.Equal(t, message, appErr.Message)
}

func TestValidateAccount(t *testing.T) {
	t.Run("valid account passes", func(t *testing.T) {
		assert.NoError(t, validateAccount(validAccount()))
	})

	t.Run("empty fields are rejected", func(t *testing.T) {
		cases := map[string]func(*Account){
			"missing password":      func(a *Account) { a.Password = "" },
			"missing address":       func(a *Account) { a.Address = "" },
			"missing date of birth": func(a *Account) { a.DateOfBirth = time.Time{} },
		}

		for name, mutate := range cases {
			t.Run(name, func(t *testing.T) {
				account := validAccount()
				mutate(account)

				err := validateAccount(account)
				assertAppError(t, err, fiber.StatusBadRequest, "Empty field in the account")
			})
		}
	})

	t.Run("weak passwords are rejected", func(t *testing.T) {
		for name, password := range map[string]string{
			"too short":          "Ab1",
			"no uppercase":       "sommerwind1",
			"no digit":           "Sommerwind",
			"only digits":        "12345678",
			"only capital chars": "SOMMERWIND",
		} {
			t.Run(name, func(t *testing.T) {
				account := validAccount()
				account.Password = password

				err := validateAccount(account)
				assertAppError(t, err, fiber.StatusBadRequest, "Invalid Password")
			})
		}
	})
}

func TestAccountController_CRUD(t *testing.T) {
	ctx := context.Background()

	t.Run("create then fetch", func(t *testing.T) {
		controller := newTestController(t)

		created, err := controller.Create(ctx, validAccount())
		require.NoError(t, err)
		require.NotZero(t, created.ID)

		fetched, err := controller.GetByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, created.Address, fetched.Address)
	})

	t.Run("empty store has no accounts", func(t *testing.T) {
		controller := newTestController(t)

		_, err := controller.GetAll(ctx)
		assertAppError(t, err, fiber.StatusNotFound, "There are no accounts in the system.")
	})

	t.Run("unknown account is not found", func(t *testing.T) {
		controller := newTestController(t)

		_, err := controller.GetByID(ctx, 404)
		assertAppError(t, err, fiber.StatusNotFound, "Account not found.")
	})

	t.Run("update rewrites the stored account", func(t *testing.T) {
		controller := newTestController(t)

		created, err := controller.Create(ctx, validAccount())
		require.NoError(t, err)

		created.Address = "99 Hilltop Road"
		_, err = controller.Update(ctx, created)
		require.NoError(t, err)

		fetched, err := controller.GetByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, "99 Hilltop Road", fetched.Address)
	})

	t.Run("updating an unknown account is not found", func(t *testing.T) {
		controller := newTestController(t)

		missing := validAccount()
		missing.ID = 404

		_, err := controller.Update(ctx, missing)
		assertAppError(t, err, fiber.StatusNotFound, "Account not found.")
	})
}
