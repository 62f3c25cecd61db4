package webdate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompose(t *testing.T) {
	paris, err := time.LoadLocation("Europe/Paris")
	require.NoError(t, err)

	got, err := Compose("2025-08-15", "14:00", paris)
	require.NoError(t, err)
	assert.True(t, got.Equal(time.Date(2025, 8, 15, 14, 0, 0, 0, paris)))
}

func TestComposeErrors(t *testing.T) {
	tests := []struct {
		name     string
		datePart string
		timePart string
	}{
		{name: "empty date", datePart: "", timePart: "14:00"},
		{name: "empty time", datePart: "2025-08-15", timePart: ""},
		{name: "french date format", datePart: "15/08/2025", timePart: "14:00"},
		{name: "bad time", datePart: "2025-08-15", timePart: "25:99"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Compose(tt.datePart, tt.timePart, time.UTC)
			assert.Error(t, err)
		})
	}
}

func TestSplitRoundTrip(t *testing.T) {
	composed, err := Compose("2025-12-31", "23:45", time.UTC)
	require.NoError(t, err)

	datePart, timePart := Split(composed, time.UTC)
	assert.Equal(t, "2025-12-31", datePart)
	assert.Equal(t, "23:45", timePart)
}

func TestSplitZeroTime(t *testing.T) {
	datePart, timePart := Split(time.Time{}, time.UTC)
	assert.Empty(t, datePart)
	assert.Empty(t, timePart)
}

func TestFormatEventDateTime(t *testing.T) {
	scheduled := time.Date(2025, 8, 15, 14, 0, 0, 0, time.UTC)
	assert.Equal(t, "15/08/2025 à 14:00", FormatEventDateTime(scheduled, time.UTC))
	assert.Empty(t, FormatEventDateTime(time.Time{}, time.UTC))
}
