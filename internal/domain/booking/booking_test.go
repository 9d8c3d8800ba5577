package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/officebook/service-booking/internal/domain"
)

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name                       string
		start1, end1, start2, end2 string
		want                       bool
	}{
		{"identical windows", "09:00", "10:00", "09:00", "10:00", true},
		{"contained window", "09:00", "12:00", "10:00", "11:00", true},
		{"partial overlap at start", "09:30", "10:30", "10:00", "11:00", true},
		{"partial overlap at end", "10:30", "11:30", "10:00", "11:00", true},
		{"back to back, first ends when second starts", "10:00", "11:00", "11:00", "12:00", false},
		{"back to back, second ends when first starts", "11:00", "12:00", "10:00", "11:00", false},
		{"disjoint", "08:00", "09:00", "13:00", "14:00", false},
		{"zero-length window inside another", "10:30", "10:30", "10:00", "11:00", false},
		{"zero-length window against zero-length", "10:00", "10:00", "10:00", "10:00", false},
		{"crosses midnight boundary values", "23:00", "23:59", "23:30", "23:45", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Overlaps(tt.start1, tt.end1, tt.start2, tt.end2))
		})
	}
}

func TestNewRecord(t *testing.T) {
	record, err := NewRecord("employee1", "moscow-wp-3", "Desk 3 (PC-03)", "moscow",
		"01.03.2025", "09:00", "10:00", "sprint planning")
	require.NoError(t, err)

	assert.NotEmpty(t, record.ID)
	assert.Equal(t, StatusConfirmed, record.Status)
	assert.Equal(t, "employee1", record.UserID)
	assert.Equal(t, "moscow-wp-3", record.WorkplaceID)
	assert.Equal(t, "01.03.2025", record.Date)
}

func TestNewRecord_GeneratesUniqueIDs(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		record, err := NewRecord("employee1", "moscow-wp-1", "", "moscow",
			"01.03.2025", "09:00", "10:00", "")
		require.NoError(t, err)
		_, dup := seen[record.ID]
		require.False(t, dup, "duplicate id %s", record.ID)
		seen[record.ID] = struct{}{}
	}
}

func TestNewRecord_Validation(t *testing.T) {
	tests := []struct {
		name                                  string
		userID, workplaceID, date, start, end string
	}{
		{"missing user", "", "moscow-wp-1", "01.03.2025", "09:00", "10:00"},
		{"missing workplace", "employee1", "", "01.03.2025", "09:00", "10:00"},
		{"missing date", "employee1", "moscow-wp-1", "", "09:00", "10:00"},
		{"bad date format", "employee1", "moscow-wp-1", "2025-03-01", "09:00", "10:00"},
		{"missing start time", "employee1", "moscow-wp-1", "01.03.2025", "", "10:00"},
		{"missing end time", "employee1", "moscow-wp-1", "01.03.2025", "09:00", ""},
		{"unpadded hour", "employee1", "moscow-wp-1", "01.03.2025", "9:00", "10:00"},
		{"not a clock time", "employee1", "moscow-wp-1", "01.03.2025", "morning", "10:00"},
		{"hour out of range", "employee1", "moscow-wp-1", "01.03.2025", "09:00", "25:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewRecord(tt.userID, tt.workplaceID, "", "", tt.date, tt.start, tt.end, "")
			require.Error(t, err)
			var validation *domain.ValidationError
			assert.ErrorAs(t, err, &validation)
		})
	}
}

func TestParseDate(t *testing.T) {
	day, err := ParseDate("01.03.2025")
	require.NoError(t, err)
	assert.Equal(t, 2025, day.Year())
	assert.Equal(t, 3, int(day.Month()))
	assert.Equal(t, 1, day.Day())

	_, err = ParseDate("31.02.2025")
	assert.Error(t, err)
}
