package utils

import (
	"time"

	"gorm.io/gorm"

	"github.com/sazid-zero/ConsultBook-sub001/models"
)

// SlotMinutes is the fixed granularity of availability slot labels.
const SlotMinutes = 30

// ParseSlot resolves a (date, slot label) pair into an absolute timestamp.
func ParseSlot(date, label string) (time.Time, error) {
	return time.Parse(models.DateLayout+" "+models.TimeLayout, date+" "+label)
}

// WeeklyAvailability returns the consultant's recurring template as
// weekday-name -> ordered slot labels, including only weekdays marked
// enabled. A weekday enabled with zero slots is present with an empty list
// (distinct from absent). Zero template rows yields an empty map, meaning the
// consultant currently offers no availability. Read failures propagate; an
// empty result is never used to mask one.
func WeeklyAvailability(gdb *gorm.DB, consultantID uint) (map[string][]string, error) {
	var schedules []models.WeeklySchedule
	if err := gdb.Where("consultant_id = ?", consultantID).Find(&schedules).Error; err != nil {
		return nil, StorageError("Failed to load availability", err)
	}

	availability := make(map[string][]string)
	for _, s := range schedules {
		if !s.IsEnabled {
			continue
		}
		slots := make([]string, len(s.Slots))
		copy(slots, s.Slots)
		availability[s.DayOfWeek.String()] = slots
	}
	return availability, nil
}

// BookedAppointments returns the consultant's non-cancelled appointments so a
// caller can subtract taken slots from the template.
func BookedAppointments(gdb *gorm.DB, consultantID uint) ([]models.Appointment, error) {
	var appointments []models.Appointment
	err := gdb.
		Where("consultant_id = ? AND status <> ?", consultantID, models.StatusCancelled).
		Find(&appointments).Error
	if err != nil {
		return nil, StorageError("Failed to load booked appointments", err)
	}
	return appointments, nil
}

// BlockedLabels lists every slot label an appointment covers. A 60 minute
// appointment at "14:00" blocks "14:00" and "14:30".
func BlockedLabels(appt models.Appointment) ([]string, error) {
	start, err := time.Parse(models.TimeLayout, appt.StartTime)
	if err != nil {
		return nil, err
	}
	n := appt.DurationMinutes / SlotMinutes
	if appt.DurationMinutes%SlotMinutes != 0 {
		n++
	}
	if n == 0 {
		n = 1
	}
	labels := make([]string, 0, n)
	for i := 0; i < n; i++ {
		labels = append(labels, start.Add(time.Duration(i*SlotMinutes)*time.Minute).Format(models.TimeLayout))
	}
	return labels, nil
}

// DateSlots is one calendar day of concrete bookable slots.
type DateSlots struct {
	Date    string   `json:"date"`
	Weekday string   `json:"weekday"`
	Slots   []string `json:"slots"`
}

// OpenSlots intersects the weekly template with booked appointments over a
// date range starting at from, producing concrete bookable slots per day.
// Days without an enabled template row are omitted. On the first day, labels
// earlier than from's clock time are dropped so a past slot is never offered.
func OpenSlots(schedules []models.WeeklySchedule, booked []models.Appointment, from time.Time, days int) ([]DateSlots, error) {
	byWeekday := make(map[models.DayOfWeek]models.WeeklySchedule, len(schedules))
	for _, s := range schedules {
		byWeekday[s.DayOfWeek] = s
	}

	blockedByDate := make(map[string]map[string]bool)
	for _, appt := range booked {
		labels, err := BlockedLabels(appt)
		if err != nil {
			return nil, err
		}
		if blockedByDate[appt.Date] == nil {
			blockedByDate[appt.Date] = make(map[string]bool)
		}
		for _, label := range labels {
			blockedByDate[appt.Date][label] = true
		}
	}

	// Zero-padded HH:MM labels compare correctly as strings.
	cutoff := from.Format(models.TimeLayout)

	var result []DateSlots
	for i := 0; i < days; i++ {
		day := from.AddDate(0, 0, i)
		schedule, ok := byWeekday[models.DayOfWeek(day.Weekday())]
		if !ok || !schedule.IsEnabled {
			continue
		}
		date := day.Format(models.DateLayout)
		open := make([]string, 0, len(schedule.Slots))
		for _, label := range schedule.Slots {
			if i == 0 && label < cutoff {
				continue
			}
			if !blockedByDate[date][label] {
				open = append(open, label)
			}
		}
		result = append(result, DateSlots{
			Date:    date,
			Weekday: schedule.DayOfWeek.String(),
			Slots:   open,
		})
	}
	return result, nil
}
