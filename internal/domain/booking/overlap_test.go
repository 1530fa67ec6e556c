package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barber-agenda/internal/models"
)

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name                   string
		aStart, aDur           int
		bStart, bDur           int
		want                   bool
	}{
		{"idênticos", 600, 30, 600, 30, true},
		{"parcial pela direita", 600, 60, 630, 30, true},
		{"parcial pela esquerda", 630, 30, 600, 60, true},
		{"contido", 600, 90, 630, 30, true},
		{"back-to-back não conflita", 600, 30, 630, 30, false},
		{"disjuntos", 600, 30, 720, 30, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Overlaps(tt.aStart, tt.aDur, tt.bStart, tt.bDur))
		})
	}
}

func TestHasOverlap(t *testing.T) {
	active := []models.Booking{
		{Time: "10:00", DurationMin: 60, Status: models.BookingConfirmed},
		{Time: "14:00", DurationMin: 30, Status: models.BookingPending},
		{Time: "16:00", DurationMin: 30, Status: models.BookingCancelled},
	}

	got, err := HasOverlap(active, "10:30", 30)
	require.NoError(t, err)
	assert.True(t, got, "dentro da reserva de 60min")

	got, err = HasOverlap(active, "11:00", 30)
	require.NoError(t, err)
	assert.False(t, got, "começa exatamente quando a outra termina")

	got, err = HasOverlap(active, "13:45", 30)
	require.NoError(t, err)
	assert.True(t, got, "pendente também ocupa")

	got, err = HasOverlap(active, "16:00", 30)
	require.NoError(t, err)
	assert.False(t, got, "cancelada não ocupa")

	_, err = HasOverlap(active, "25:00", 30)
	assert.Error(t, err)
}

func TestOccupiedTimes(t *testing.T) {
	occ := OccupiedTimes([]models.Booking{
		{Time: "10:00", Status: models.BookingConfirmed},
		{Time: "11:00", Status: models.BookingPending},
		{Time: "12:00", Status: models.BookingCancelled},
	})
	assert.True(t, occ["10:00"])
	assert.True(t, occ["11:00"])
	assert.False(t, occ["12:00"])
}

func TestCancel(t *testing.T) {
	now := time.Now()

	b := &models.Booking{Status: models.BookingConfirmed}
	require.NoError(t, Cancel(b, now))
	assert.Equal(t, models.BookingCancelled, b.Status)
	require.NotNil(t, b.CancelledAt)
	assert.Equal(t, now, *b.CancelledAt)

	// cancelar duas vezes é estado inválido
	assert.Error(t, Cancel(b, now))
}

func TestComplete(t *testing.T) {
	now := time.Now()

	b := &models.Booking{Status: models.BookingConfirmed}
	require.NoError(t, Complete(b, now))
	require.NotNil(t, b.CompletedAt)

	assert.Error(t, Complete(&models.Booking{Status: models.BookingCancelled}, now))
}
