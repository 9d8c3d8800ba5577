//go:build integration

package main_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/officebook/service-booking/internal/application"
	"github.com/officebook/service-booking/internal/events"
)

// TestCreateBooking_PublishesCreatedEvent verifies that a persisted
// booking produces a booking.created CloudEvent on booking.events.
func TestCreateBooking_PublishesCreatedEvent(t *testing.T) {
	infra := setupContainers(t)
	defer infra.Cleanup()

	stack := setupBookingStack(t, infra.KafkaBrokers)
	defer stack.CleanupProducer()

	ctx := context.Background()
	record, err := stack.Service.CreateBooking(ctx, application.CreateBookingRequest{
		UserID:      "employee1",
		WorkplaceID: "moscow-wp-7",
		Branch:      "moscow",
		Date:        "01.03.2025",
		StartTime:   "09:00",
		EndTime:     "10:00",
		Purpose:     "integration test",
	})
	require.NoError(t, err)

	ce := consumeOneEvent(t, infra.KafkaBrokers, events.TopicBookingEvents,
		events.BookingCreated, 15*time.Second)

	var created events.BookingCreatedEvent
	require.NoError(t, ce.ParseData(&created))
	assert.Equal(t, record.ID, created.BookingID)
	assert.Equal(t, "employee1", created.UserID)
	assert.Equal(t, "moscow-wp-7", created.WorkplaceID)
	assert.Equal(t, "01.03.2025", created.Date)
	assert.Equal(t, "09:00", created.StartTime)
	assert.Equal(t, "10:00", created.EndTime)

	// The document is readable back from the store.
	got, err := stack.Repository.FindByID(ctx, record.ID)
	require.NoError(t, err)
	assert.Equal(t, record, got)
}

// TestCancelBooking_PublishesCancelledEvent verifies that removing a
// booking produces a booking.cancelled CloudEvent and deletes the
// document.
func TestCancelBooking_PublishesCancelledEvent(t *testing.T) {
	infra := setupContainers(t)
	defer infra.Cleanup()

	stack := setupBookingStack(t, infra.KafkaBrokers)
	defer stack.CleanupProducer()

	ctx := context.Background()
	record, err := stack.Service.CreateBooking(ctx, application.CreateBookingRequest{
		UserID:      "employee2",
		WorkplaceID: "spb-wp-3",
		Branch:      "spb",
		Date:        "02.03.2025",
		StartTime:   "14:00",
		EndTime:     "15:00",
	})
	require.NoError(t, err)

	removed, err := stack.Service.CancelBooking(ctx, record.ID)
	require.NoError(t, err)
	require.True(t, removed)

	ce := consumeOneEvent(t, infra.KafkaBrokers, events.TopicBookingEvents,
		events.BookingCancelled, 15*time.Second)

	var cancelled events.BookingCancelledEvent
	require.NoError(t, ce.ParseData(&cancelled))
	assert.Equal(t, record.ID, cancelled.BookingID)

	_, err = stack.Repository.FindByID(ctx, record.ID)
	assert.Error(t, err, "document should be gone after cancellation")
}
