package db

import (
	"fmt"
	"log"

	"github.com/sazid-zero/ConsultBook-sub001/models"
)

func Migrate() {
	// Initialize DB connection
	Init()

	// Run AutoMigrate only when explicitly called
	err := DB.AutoMigrate(
		&models.User{},
		&models.ConsultantProfile{},
		&models.WeeklySchedule{},
		&models.Appointment{},
		&models.Workshop{},
		&models.WorkshopRegistration{},
		&models.Review{},
		&models.Notification{},
		&models.Qualification{},
		&models.Certification{},
		&models.RejectedConsultantRecord{},
	)
	if err != nil {
		log.Fatal("Failed to run migrations: ", err)
	}

	// Slot exclusivity: at most one live appointment per (consultant, date,
	// time). Partial indexes are outside AutoMigrate's vocabulary, so this one
	// is raw SQL. Two concurrent bookings for the same slot hit this index and
	// exactly one wins.
	err = DB.Exec(`
		CREATE UNIQUE INDEX IF NOT EXISTS idx_appointments_slot
		ON appointments (consultant_id, date, start_time)
		WHERE status <> 'cancelled' AND deleted_at IS NULL
	`).Error
	if err != nil {
		log.Fatal("Failed to create slot uniqueness index: ", err)
	}

	fmt.Println("Migrations applied successfully")
}
