// Package repository implements the domain persistence contracts over the
// document store.
package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/officebook/service-booking/internal/domain"
	bookingDomain "github.com/officebook/service-booking/internal/domain/booking"
	"github.com/officebook/service-booking/internal/storage"
)

const bookingsRoot = "bookings"

// StoreBookingRepository persists booking documents under a
// date-partitioned hierarchy: bookings/{year}/{month}/{day}/booking_{id}.json.
// The partition is derived solely from the record's date, which bounds
// directory fan-out and lets date-scoped reads scan one partition instead
// of the whole corpus.
type StoreBookingRepository struct {
	store storage.DocumentStore
	log   *zap.Logger
}

// NewStoreBookingRepository creates a booking repository over the given
// document store.
func NewStoreBookingRepository(store storage.DocumentStore, log *zap.Logger) *StoreBookingRepository {
	return &StoreBookingRepository{store: store, log: log}
}

// partitionPath returns the date partition directory for a day.
func partitionPath(day time.Time) string {
	return fmt.Sprintf("%s/%d/%02d/%02d", bookingsRoot, day.Year(), day.Month(), day.Day())
}

// documentPath returns the full document path for a booking id on a day.
func documentPath(day time.Time, id string) string {
	return fmt.Sprintf("%s/booking_%s.json", partitionPath(day), id)
}

// Create serializes the record and writes it into its date partition.
func (r *StoreBookingRepository) Create(ctx context.Context, record *bookingDomain.Record) error {
	day, err := record.Day()
	if err != nil {
		return err
	}

	p := documentPath(day, record.ID)
	data, err := json.Marshal(record)
	if err != nil {
		return domain.NewSerializationError(p, err)
	}
	return r.store.Put(ctx, p, data)
}

// ListAll retrieves every booking under the root prefix. Corrupt or
// unreadable documents are logged and skipped so one bad record cannot
// blank out all bookings.
func (r *StoreBookingRepository) ListAll(ctx context.Context) ([]bookingDomain.Record, error) {
	return r.listUnder(ctx, bookingsRoot)
}

// ListByDate retrieves the bookings in one day's partition. A missing
// partition yields an empty slice.
func (r *StoreBookingRepository) ListByDate(ctx context.Context, day time.Time) ([]bookingDomain.Record, error) {
	return r.listUnder(ctx, partitionPath(day))
}

func (r *StoreBookingRepository) listUnder(ctx context.Context, prefix string) ([]bookingDomain.Record, error) {
	paths, err := r.store.ListFiles(ctx, prefix)
	if err != nil {
		return nil, err
	}

	records := make([]bookingDomain.Record, 0, len(paths))
	for _, p := range paths {
		if !strings.HasSuffix(p, ".json") {
			continue
		}
		data, err := r.store.Get(ctx, p)
		if err != nil {
			r.log.Warn("skipping unreadable booking document",
				zap.String("path", p),
				zap.Error(err),
			)
			continue
		}
		var record bookingDomain.Record
		if err := json.Unmarshal(data, &record); err != nil {
			r.log.Warn("skipping corrupt booking document",
				zap.String("path", p),
				zap.Error(err),
			)
			continue
		}
		records = append(records, record)
	}
	return records, nil
}

// FindByID locates a booking by scanning document paths for the id. There
// is no id index, so this is O(n) over the store. A corrupt target
// document is fatal here, unlike in bulk listings.
func (r *StoreBookingRepository) FindByID(ctx context.Context, id string) (*bookingDomain.Record, error) {
	p, err := r.findPath(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == "" {
		return nil, domain.NewNotFoundError("booking", id)
	}

	data, err := r.store.Get(ctx, p)
	if err != nil {
		return nil, err
	}
	var record bookingDomain.Record
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, domain.NewSerializationError(p, err)
	}
	return &record, nil
}

// DeleteByID removes a booking document located by path scan and reports
// whether one was found.
func (r *StoreBookingRepository) DeleteByID(ctx context.Context, id string) (bool, error) {
	p, err := r.findPath(ctx, id)
	if err != nil {
		return false, err
	}
	if p == "" {
		return false, nil
	}
	return r.store.Delete(ctx, p)
}

func (r *StoreBookingRepository) findPath(ctx context.Context, id string) (string, error) {
	paths, err := r.store.ListFiles(ctx, bookingsRoot)
	if err != nil {
		return "", err
	}
	needle := fmt.Sprintf("booking_%s.json", id)
	for _, p := range paths {
		if strings.HasSuffix(p, needle) {
			return p, nil
		}
	}
	return "", nil
}
