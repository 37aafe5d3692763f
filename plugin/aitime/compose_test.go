package aitime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	rerrors "github.com/hrygo/laddoo/internal/errors"
)

func TestCompose(t *testing.T) {
	tests := []struct {
		name    string
		month   time.Month
		day     int
		hour    int
		minute  int
		year    int
		want    Timestamp
		wantErr bool
	}{
		{"leap day", time.February, 29, 9, 0, 2024, "2024-02-29 09:00", false},
		{"no leap day", time.February, 29, 9, 0, 2026, "", true},
		{"february 30", time.February, 30, 10, 0, 2024, "", true},
		{"31 in 30 day month", time.April, 31, 8, 0, 2026, "", true},
		{"padding", time.June, 2, 15, 5, 2026, "2026-06-02 15:05", false},
		{"end of year", time.December, 31, 23, 59, 2026, "2026-12-31 23:59", false},
		{"bad hour", time.June, 2, 24, 0, 2026, "", true},
		{"bad month", time.Month(13), 2, 10, 0, 2026, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Compose(tt.month, tt.day, tt.hour, tt.minute, tt.year)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, rerrors.IsCode(err, rerrors.ErrCodeInvalid))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimestamp_SortsChronologically(t *testing.T) {
	a, err := Compose(time.September, 9, 9, 5, 2026)
	require.NoError(t, err)
	b, err := Compose(time.October, 10, 8, 0, 2026)
	require.NoError(t, err)
	assert.Less(t, string(a), string(b))
}

func TestTimestamp_Time(t *testing.T) {
	loc := time.FixedZone("test", 3600)
	got, err := Timestamp("2026-06-02 15:30").Time(loc)
	require.NoError(t, err)
	assert.True(t, time.Date(2026, 6, 2, 15, 30, 0, 0, loc).Equal(got))
	assert.Equal(t, Timestamp("2026-06-02 15:30"), FormatTimestamp(got))

	_, err = Timestamp("June 2").Time(loc)
	assert.Error(t, err)
}

func TestValidDate(t *testing.T) {
	assert.True(t, ValidDate(2024, time.February, 29))
	assert.False(t, ValidDate(2025, time.February, 29))
	assert.False(t, ValidDate(2025, time.November, 31))
	assert.False(t, ValidDate(2025, time.November, 0))
}
