//go:build integration

package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
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

// setupTestDB points the package-level DB handle at a throwaway Postgres
// container with the full schema applied.
func setupTestDB(t *testing.T) func() {
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

	require.NoError(t, gdb.AutoMigrate(
		&models.User{},
		&models.ConsultantProfile{},
		&models.WeeklySchedule{},
		&models.Appointment{},
		&models.Workshop{},
		&models.WorkshopRegistration{},
		&models.Review{},
		&models.Notification{},
	))

	prev := db.DB
	db.DB = gdb

	return func() {
		db.DB = prev
		if err := pgContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	}
}

// clientApp mounts the client handlers behind a stub auth layer for the
// given user.
func clientApp(userID uint) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("userID", userID)
		c.Locals("role", string(models.RoleClient))
		return c.Next()
	})
	app.Post("/reviews", CreateReview)
	app.Delete("/reviews/:id", DeleteReview)
	app.Post("/workshops/:id/register", RegisterForWorkshop)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path string, body any) *http.Response {
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(fiber.MethodPost, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, 30000)
	require.NoError(t, err)
	return resp
}

func seedUser(t *testing.T, name string, role models.Role) models.User {
	user := models.User{
		Name:     name,
		Email:    fmt.Sprintf("%s@example.com", uuid.NewString()),
		Password: "x",
		Role:     role,
	}
	require.NoError(t, db.DB.Create(&user).Error)
	return user
}

// A deleted review must free the appointment for a fresh one; the unique
// index on appointment_id may only see live rows.
func TestReviewCanBeRewrittenAfterDelete(t *testing.T) {
	cleanup := setupTestDB(t)
	defer cleanup()

	client := seedUser(t, "Ravi", models.RoleClient)
	consultant := seedUser(t, "Kara", models.RoleConsultant)
	require.NoError(t, db.DB.Create(&models.ConsultantProfile{ConsultantID: consultant.ID}).Error)

	appointment := models.Appointment{
		RefID:           uuid.NewString(),
		ClientID:        client.ID,
		ConsultantID:    consultant.ID,
		Date:            "2026-08-01",
		StartTime:       "10:00",
		DurationMinutes: 30,
		Status:          models.StatusCompleted,
	}
	require.NoError(t, db.DB.Create(&appointment).Error)

	app := clientApp(client.ID)

	resp := postJSON(t, app, "/reviews", fiber.Map{
		"appointment_id": appointment.ID,
		"rating":         5,
		"comment":        "great session",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var created struct {
		ID uint `json:"ID"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))

	req := httptest.NewRequest(fiber.MethodDelete, fmt.Sprintf("/reviews/%d", created.ID), nil)
	delResp, err := app.Test(req, 30000)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusNoContent, delResp.StatusCode)

	resp = postJSON(t, app, "/reviews", fiber.Map{
		"appointment_id": appointment.ID,
		"rating":         4,
		"comment":        "second thoughts",
	})
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var profile models.ConsultantProfile
	require.NoError(t, db.DB.Where("consultant_id = ?", consultant.ID).First(&profile).Error)
	assert.Equal(t, 4, profile.AverageRating)
	assert.Equal(t, 1, profile.RatingCount)
}

// Two clients racing for the last seat: the row lock serializes them, so
// exactly one registration lands.
func TestWorkshopLastSeatConcurrentRegistrations(t *testing.T) {
	cleanup := setupTestDB(t)
	defer cleanup()

	consultant := seedUser(t, "Kara", models.RoleConsultant)
	clientA := seedUser(t, "Ravi", models.RoleClient)
	clientB := seedUser(t, "Mira", models.RoleClient)

	capacity := 1
	workshop := models.Workshop{
		ConsultantID: consultant.ID,
		Title:        "Pricing Strategy",
		StartsAt:     time.Now().Add(48 * time.Hour),
		Capacity:     &capacity,
		IsPublished:  true,
	}
	require.NoError(t, db.DB.Create(&workshop).Error)

	path := fmt.Sprintf("/workshops/%d/register", workshop.ID)
	statuses := make([]int, 2)

	var wg sync.WaitGroup
	for i, id := range []uint{clientA.ID, clientB.ID} {
		wg.Add(1)
		go func(i int, userID uint) {
			defer wg.Done()
			req := httptest.NewRequest(fiber.MethodPost, path, nil)
			resp, err := clientApp(userID).Test(req, 30000)
			if err != nil {
				t.Errorf("request failed: %v", err)
				return
			}
			statuses[i] = resp.StatusCode
		}(i, id)
	}
	wg.Wait()

	assert.ElementsMatch(t, []int{fiber.StatusCreated, fiber.StatusConflict}, statuses)

	var count int64
	require.NoError(t, db.DB.Model(&models.WorkshopRegistration{}).
		Where("workshop_id = ?", workshop.ID).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}
