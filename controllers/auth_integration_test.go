//go:build integration

package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/sazid-zero/ConsultBook-sub001/db"
	"github.com/sazid-zero/ConsultBook-sub001/models"
)

func setupAuthTestDB(t *testing.T) func() {
	ctx := context.Background()

	pgContainer, err := tcpostgres.Run(ctx,
		"postgres:alpine",
		tcpostgres.WithDatabase("testdb"),
		tcpostgres.WithUsername("testuser"),
		tcpostgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err, "failed to start postgres container")

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	gdb, err := gorm.Open(postgres.Open(connStr), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
		TranslateError:                           true,
	})
	require.NoError(t, err)
	require.NoError(t, gdb.AutoMigrate(&models.User{}))

	prev := db.DB
	db.DB = gdb

	return func() {
		db.DB = prev
		if err := pgContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	}
}

func registerRequest(t *testing.T, app *fiber.App, email string) *http.Response {
	body, err := json.Marshal(fiber.Map{
		"name":     "Ravi",
		"email":    email,
		"password": "hunter2!",
		"role":     string(models.RoleClient),
	})
	require.NoError(t, err)

	req := httptest.NewRequest(fiber.MethodPost, "/register", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, 30000)
	require.NoError(t, err)
	return resp
}

// A duplicate email must always come back as a conflict, whether the
// pre-check or the unique constraint catches it.
func TestRegisterDuplicateEmailConflict(t *testing.T) {
	cleanup := setupAuthTestDB(t)
	defer cleanup()

	newApp := func() *fiber.App {
		app := fiber.New()
		app.Post("/register", Register)
		return app
	}

	statuses := make([]int, 2)
	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			statuses[i] = registerRequest(t, newApp(), "ravi@example.com").StatusCode
		}(i)
	}
	wg.Wait()

	assert.ElementsMatch(t, []int{fiber.StatusCreated, fiber.StatusConflict}, statuses)

	// A later retry lands on the pre-check.
	resp := registerRequest(t, newApp(), "ravi@example.com")
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)

	var count int64
	require.NoError(t, db.DB.Model(&models.User{}).
		Where("email = ?", "ravi@example.com").Count(&count).Error)
	assert.Equal(t, int64(1), count)
}
