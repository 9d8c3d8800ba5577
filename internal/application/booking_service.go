// Package application contains the use-case services orchestrating the
// domain, the repositories, and the event publisher.
package application

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/officebook/service-booking/internal/domain"
	bookingDomain "github.com/officebook/service-booking/internal/domain/booking"
	"github.com/officebook/service-booking/internal/events"
)

// CreateBookingRequest holds the data needed to create a booking.
type CreateBookingRequest struct {
	UserID        string `json:"userId"`
	WorkplaceID   string `json:"workplaceId" binding:"required"`
	WorkplaceName string `json:"workplaceName"`
	Branch        string `json:"branch"`
	Date          string `json:"date" binding:"required"`
	StartTime     string `json:"startTime" binding:"required"`
	EndTime       string `json:"endTime" binding:"required"`
	Purpose       string `json:"purpose"`
}

// BookingService coordinates the booking lifecycle: create (validate,
// assign id, persist), cancel (locate, delete) and the listing reads.
//
// By default "check availability, then create" is two independent round
// trips to the store, so two concurrent requests can both observe a free
// slot and both persist.
// With guarded mode on, CreateBooking re-checks availability inside a
// per-(workplace, date) critical section and rejects overlaps with a
// ConflictError.
type BookingService struct {
	repo      bookingDomain.Repository
	publisher events.Publisher
	logger    *zap.Logger
	guarded   bool
	slots     slotLocks
}

// NewBookingService creates a BookingService. guarded enables the
// exclusive check-then-create section per workplace and date.
func NewBookingService(repo bookingDomain.Repository, publisher events.Publisher, logger *zap.Logger, guarded bool) *BookingService {
	return &BookingService{
		repo:      repo,
		publisher: publisher,
		logger:    logger,
		guarded:   guarded,
	}
}

// CreateBooking validates the request, assigns a fresh id, persists the
// confirmed record and publishes a booking.created event. It does not
// re-check availability unless guarded mode is enabled; callers are
// expected to consult IsAvailable first.
func (s *BookingService) CreateBooking(ctx context.Context, req CreateBookingRequest) (*bookingDomain.Record, error) {
	record, err := bookingDomain.NewRecord(
		req.UserID,
		req.WorkplaceID,
		req.WorkplaceName,
		req.Branch,
		req.Date,
		req.StartTime,
		req.EndTime,
		req.Purpose,
	)
	if err != nil {
		return nil, err
	}

	if s.guarded {
		unlock := s.slots.lock(req.WorkplaceID + "|" + req.Date)
		defer unlock()

		available, err := s.IsAvailable(ctx, req.WorkplaceID, req.Date, req.StartTime, req.EndTime)
		if err != nil {
			return nil, err
		}
		if !available {
			return nil, domain.NewConflictError(fmt.Sprintf(
				"workplace %s is already booked on %s between %s and %s",
				req.WorkplaceID, req.Date, req.StartTime, req.EndTime,
			))
		}
	}

	if err := s.repo.Create(ctx, record); err != nil {
		return nil, err
	}

	s.logger.Info("booking created",
		zap.String("booking_id", record.ID),
		zap.String("workplace_id", record.WorkplaceID),
		zap.String("date", record.Date),
	)

	s.publish(ctx, events.BookingCreated, events.BookingCreatedEvent{
		BookingID:   record.ID,
		UserID:      record.UserID,
		WorkplaceID: record.WorkplaceID,
		Branch:      record.Branch,
		Date:        record.Date,
		StartTime:   record.StartTime,
		EndTime:     record.EndTime,
		OccurredAt:  time.Now().UTC(),
	})

	return record, nil
}

// CancelBooking removes the booking document and reports whether one was
// found. Absence is a normal outcome, not an error, which makes
// cancellation idempotent in effect.
func (s *BookingService) CancelBooking(ctx context.Context, id string) (bool, error) {
	removed, err := s.repo.DeleteByID(ctx, id)
	if err != nil {
		return false, err
	}
	if !removed {
		s.logger.Info("cancellation matched no booking", zap.String("booking_id", id))
		return false, nil
	}

	s.logger.Info("booking cancelled", zap.String("booking_id", id))
	s.publish(ctx, events.BookingCancelled, events.BookingCancelledEvent{
		BookingID:  id,
		OccurredAt: time.Now().UTC(),
	})
	return true, nil
}

// GetBooking retrieves a single booking by id.
func (s *BookingService) GetBooking(ctx context.Context, id string) (*bookingDomain.Record, error) {
	return s.repo.FindByID(ctx, id)
}

// ListBookingsForUser returns every booking owned by the user. Full-corpus
// scan; fine below a modest corpus size.
func (s *BookingService) ListBookingsForUser(ctx context.Context, userID string) ([]bookingDomain.Record, error) {
	all, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	matched := make([]bookingDomain.Record, 0)
	for _, record := range all {
		if record.UserID == userID {
			matched = append(matched, record)
		}
	}
	return matched, nil
}

// ListBookingsForWorkplace returns every booking for the workplace.
func (s *BookingService) ListBookingsForWorkplace(ctx context.Context, workplaceID string) ([]bookingDomain.Record, error) {
	all, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	matched := make([]bookingDomain.Record, 0)
	for _, record := range all {
		if record.WorkplaceID == workplaceID {
			matched = append(matched, record)
		}
	}
	return matched, nil
}

func (s *BookingService) publish(ctx context.Context, eventType string, data interface{}) {
	event, err := events.NewCloudEvent("service-booking", eventType, data)
	if err != nil {
		s.logger.Error("failed to create cloud event",
			zap.String("event_type", eventType),
			zap.Error(err),
		)
		return
	}
	if err := s.publisher.PublishEvent(ctx, events.TopicBookingEvents, event); err != nil {
		s.logger.Error("failed to publish event",
			zap.String("event_type", eventType),
			zap.Error(err),
		)
	}
}

// slotLocks hands out one mutex per (workplace, date) key. Entries are
// never evicted; the key space is bounded by workplaces x active dates.
type slotLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func (l *slotLocks) lock(key string) func() {
	l.mu.Lock()
	if l.locks == nil {
		l.locks = make(map[string]*sync.Mutex)
	}
	m, ok := l.locks[key]
	if !ok {
		m = &sync.Mutex{}
		l.locks[key] = m
	}
	l.mu.Unlock()

	m.Lock()
	return m.Unlock
}
