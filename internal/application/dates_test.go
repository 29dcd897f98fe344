package application

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	got, err := ParseDate("2026-08-31")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC), got)

	// Formato de respaldo dd/mm/yyyy
	got, err = ParseDate("31/08/2026")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC), got)

	_, err = ParseDate("")
	assert.Error(t, err)

	_, err = ParseDate("31-08-2026")
	assert.Error(t, err)
}

func TestFormatDate(t *testing.T) {
	d := time.Date(2026, 8, 31, 15, 4, 5, 0, time.UTC)
	assert.Equal(t, "2026-08-31", FormatDate(d))
}

func TestCalculateAge(t *testing.T) {
	today := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		birth time.Time
		want  int
	}{
		{"cumpleaños ya pasó este año", time.Date(2000, 5, 10, 0, 0, 0, 0, time.UTC), 26},
		{"cumpleaños es hoy", time.Date(2000, 8, 31, 0, 0, 0, 0, time.UTC), 26},
		{"cumpleaños aún no llega", time.Date(2000, 12, 25, 0, 0, 0, 0, time.UTC), 25},
		{"cumple mañana", time.Date(2000, 9, 1, 0, 0, 0, 0, time.UTC), 25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CalculateAge(tt.birth, today))
		})
	}
}
