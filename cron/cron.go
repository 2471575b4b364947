package cron

import (
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/sazid-zero/ConsultBook-sub001/db"
	"github.com/sazid-zero/ConsultBook-sub001/models"
	"github.com/sazid-zero/ConsultBook-sub001/utils"
)

// StartCronJobs initializes and starts the scheduler for session reminders
// and completion sweeps.
func StartCronJobs() {
	c := cron.New()
	// Run every minute to check for sessions in the next hour
	_, err := c.AddFunc("* * * * *", sendSessionReminders)
	if err != nil {
		log.Fatalf("Failed to add reminder cron job: %v", err)
	}
	// Daily sweep: past-dated upcoming appointments become completed, making
	// them reviewable.
	_, err = c.AddFunc("30 0 * * *", completePastAppointments)
	if err != nil {
		log.Fatalf("Failed to add completion cron job: %v", err)
	}
	c.Start()
	log.Println("Cron scheduler started")
}

// sendSessionReminders checks for appointments and sends reminders
func sendSessionReminders() {
	now := time.Now()
	startWindow := now.Add(55 * time.Minute)
	endWindow := now.Add(65 * time.Minute)

	var appointments []models.Appointment
	err := db.DB.Preload("Client").Preload("Consultant").
		Where("status = ?", models.StatusUpcoming).
		Find(&appointments).Error
	if err != nil {
		utils.GetLogger().Error("reminder sweep failed", zap.Error(err))
		return
	}

	for _, appointment := range appointments {
		startsAt, err := appointment.StartsAt()
		if err != nil {
			utils.GetLogger().Warn("skipping malformed appointment in reminder sweep",
				zap.Uint("id", appointment.ID), zap.Error(err))
			continue
		}
		if startsAt.Before(startWindow) || startsAt.After(endWindow) {
			continue
		}
		if err := sendReminderEmail(&appointment); err != nil {
			utils.GetLogger().Warn("reminder email failed",
				zap.Uint("id", appointment.ID), zap.Error(err))
			continue
		}
	}
}

// sendReminderEmail constructs and sends the reminder email
func sendReminderEmail(appointment *models.Appointment) error {
	subject := "Reminder: upcoming session"
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>This is a reminder for your session scheduled in one hour.</p>
		<p><strong>Details:</strong></p>
		<ul>
			<li><strong>Consultant:</strong> %s</li>
			<li><strong>Date:</strong> %s</li>
			<li><strong>Time:</strong> %s</li>
			<li><strong>Duration:</strong> %d minutes</li>
		</ul>
		<p>Please be on time. If you need to reschedule or cancel, do so as soon as possible.</p>
		<p>Best regards,</p>
		<p>The ConsultBook Team</p>
	`, appointment.Client.Name, appointment.Consultant.Name,
		appointment.Date, appointment.StartTime, appointment.DurationMinutes)

	return utils.SendEmail(appointment.Client.Email, subject, body)
}

// completePastAppointments flips upcoming appointments whose date has passed
// to completed.
func completePastAppointments() {
	cutoff := time.Now().AddDate(0, 0, -1).Format(models.DateLayout)
	result := db.DB.Model(&models.Appointment{}).
		Where("status = ? AND date <= ?", models.StatusUpcoming, cutoff).
		Update("status", models.StatusCompleted)
	if result.Error != nil {
		utils.GetLogger().Error("completion sweep failed", zap.Error(result.Error))
		return
	}
	if result.RowsAffected > 0 {
		utils.GetLogger().Info("completed past appointments",
			zap.Int64("count", result.RowsAffected))
	}
}
