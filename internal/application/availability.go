package application

import (
	"context"

	"go.uber.org/zap"

	bookingDomain "github.com/officebook/service-booking/internal/domain/booking"
)

// IsAvailable reports whether the workplace is free for the half-open
// [startTime, endTime) window on the given date. It scans only the date's
// partition, filters to the workplace's non-cancelled bookings and
// short-circuits on the first overlap. Time strings are compared
// lexicographically, so both endpoints must be zero-padded HH:MM values;
// the create path enforces that shape.
func (s *BookingService) IsAvailable(ctx context.Context, workplaceID, date, startTime, endTime string) (bool, error) {
	day, err := bookingDomain.ParseDate(date)
	if err != nil {
		return false, err
	}

	existing, err := s.repo.ListByDate(ctx, day)
	if err != nil {
		return false, err
	}

	for _, record := range existing {
		if record.WorkplaceID != workplaceID {
			continue
		}
		if record.Status == bookingDomain.StatusCancelled {
			continue
		}
		if bookingDomain.Overlaps(startTime, endTime, record.StartTime, record.EndTime) {
			s.logger.Debug("booking window conflict",
				zap.String("workplace_id", workplaceID),
				zap.String("date", date),
				zap.String("existing_id", record.ID),
			)
			return false, nil
		}
	}
	return true, nil
}
