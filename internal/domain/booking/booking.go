// Package booking holds the booking record aggregate and the time-window
// overlap rules shared by the repository and the availability engine.
package booking

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/officebook/service-booking/internal/domain"
)

// DateLayout is the wall-clock calendar date format used on the wire and
// inside stored documents. There is no timezone; a date is a local day.
const DateLayout = "02.01.2006"

// Status represents the lifecycle state of a booking. Cancellation removes
// the document instead of flipping the flag, so only confirmed records are
// ever persisted.
type Status string

const (
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
)

// Record is a single workplace reservation, persisted as one JSON document
// per booking.
type Record struct {
	ID            string `json:"id"`
	UserID        string `json:"userId"`
	WorkplaceID   string `json:"workplaceId"`
	WorkplaceName string `json:"workplaceName,omitempty"`
	Branch        string `json:"branch,omitempty"`
	Date          string `json:"date"`
	StartTime     string `json:"startTime"`
	EndTime       string `json:"endTime"`
	Purpose       string `json:"purpose,omitempty"`
	Status        Status `json:"status"`
}

// NewRecord validates the request fields and builds a confirmed booking
// with a freshly generated id. The id is always server-assigned.
func NewRecord(userID, workplaceID, workplaceName, branch, date, startTime, endTime, purpose string) (*Record, error) {
	if userID == "" {
		return nil, domain.NewValidationError("user ID is required")
	}
	if workplaceID == "" {
		return nil, domain.NewValidationError("workplace ID is required")
	}
	if date == "" {
		return nil, domain.NewValidationError("date is required")
	}
	if _, err := ParseDate(date); err != nil {
		return nil, err
	}
	if err := validateClockTime("start time", startTime); err != nil {
		return nil, err
	}
	if err := validateClockTime("end time", endTime); err != nil {
		return nil, err
	}

	return &Record{
		ID:            uuid.New().String(),
		UserID:        userID,
		WorkplaceID:   workplaceID,
		WorkplaceName: workplaceName,
		Branch:        branch,
		Date:          date,
		StartTime:     startTime,
		EndTime:       endTime,
		Purpose:       purpose,
		Status:        StatusConfirmed,
	}, nil
}

// ParseDate parses a DD.MM.YYYY calendar date.
func ParseDate(date string) (time.Time, error) {
	day, err := time.Parse(DateLayout, date)
	if err != nil {
		return time.Time{}, domain.NewValidationError(fmt.Sprintf("invalid date %q, expected DD.MM.YYYY", date))
	}
	return day, nil
}

// Day returns the record's date as a time.Time. The record is expected to
// hold a date that already passed validation.
func (r *Record) Day() (time.Time, error) {
	return ParseDate(r.Date)
}

// Overlaps reports whether two half-open [start, end) windows conflict.
// Times are zero-padded HH:MM strings, so lexicographic comparison equals
// numeric comparison. A window ending exactly when another begins does not
// conflict, and a zero-length window never conflicts with anything.
func Overlaps(start1, end1, start2, end2 string) bool {
	return start1 < end2 && start2 < end1
}

// validateClockTime checks the zero-padded 24-hour HH:MM shape the overlap
// comparison depends on.
func validateClockTime(field, value string) error {
	if value == "" {
		return domain.NewValidationError(field + " is required")
	}
	if len(value) != 5 || value[2] != ':' {
		return domain.NewValidationError(fmt.Sprintf("invalid %s %q, expected HH:MM", field, value))
	}
	if _, err := time.Parse("15:04", value); err != nil {
		return domain.NewValidationError(fmt.Sprintf("invalid %s %q, expected HH:MM", field, value))
	}
	return nil
}
