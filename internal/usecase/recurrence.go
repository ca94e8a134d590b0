package usecase

import (
	"time"

	"paguezap/internal/domain/entities"

	"github.com/google/uuid"
)

// nextMonthlySendDate returns local midnight on day-of-month `day` in the month
// after `now`, clamped to that month's last day.
func nextMonthlySendDate(now time.Time, day int, loc *time.Location) time.Time {
	local := now.In(loc)
	first := time.Date(local.Year(), local.Month()+1, 1, 0, 0, 0, 0, loc)
	return time.Date(first.Year(), first.Month(), clampDay(first.Year(), first.Month(), day), 0, 0, 0, 0, loc)
}

// addMonthClamped advances t by one calendar month in loc without overflowing
// into the month after (Jan 31 -> Feb 28/29).
func addMonthClamped(t time.Time, loc *time.Location) time.Time {
	local := t.In(loc)
	first := time.Date(local.Year(), local.Month()+1, 1, 0, 0, 0, 0, loc)
	day := clampDay(first.Year(), first.Month(), local.Day())
	return time.Date(first.Year(), first.Month(), day, local.Hour(), local.Minute(), local.Second(), local.Nanosecond(), loc)
}

func clampDay(year int, month time.Month, day int) int {
	last := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
	if day > last {
		return last
	}
	if day < 1 {
		return 1
	}
	return day
}

// successorCharge clones the customer and billing fields of a monthly charge
// into the next SCHEDULED occurrence.
func successorCharge(c entities.Charge, now time.Time, loc *time.Location) entities.Charge {
	next := nextMonthlySendDate(now, c.ScheduleDay, loc)

	var due *time.Time
	if c.DueDate != nil {
		d := addMonthClamped(*c.DueDate, loc)
		due = &d
	}

	return entities.Charge{
		ID:            uuid.NewString(),
		TenantID:      c.TenantID,
		CustomerName:  c.CustomerName,
		CustomerPhone: c.CustomerPhone,
		CustomerEmail: c.CustomerEmail,
		Amount:        c.Amount,
		Description:   c.Description,
		ProductName:   c.ProductName,
		ImageURL:      c.ImageURL,
		DueDate:       due,
		ScheduleType:  entities.ScheduleTypeMonthlyRecurring,
		ScheduleDay:   c.ScheduleDay,
		NextSendDate:  &next,
		Status:        entities.ChargeStatusScheduled,
		CreatedAt:     now,
	}
}
