package waitlist

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barber-agenda/internal/models"
)

func TestOffer(t *testing.T) {
	now := time.Now()

	e := &models.WaitlistEntry{Status: models.WaitlistWaiting}
	require.NoError(t, Offer(e, "10:00", now, 15*time.Minute))
	assert.Equal(t, models.WaitlistOffered, e.Status)
	assert.Equal(t, "10:00", e.OfferTime)
	require.NotNil(t, e.OfferExpiresAt)
	assert.Equal(t, now.Add(15*time.Minute), *e.OfferExpiresAt)

	// oferta dupla é estado inválido
	assert.Error(t, Offer(e, "10:30", now, 15*time.Minute))
	assert.Error(t, Offer(&models.WaitlistEntry{Status: models.WaitlistExpired}, "10:00", now, time.Minute))
}

func TestClaim(t *testing.T) {
	now := time.Now()

	e := &models.WaitlistEntry{Status: models.WaitlistWaiting}
	require.NoError(t, Offer(e, "10:00", now, 15*time.Minute))

	require.NoError(t, Claim(e, now.Add(5*time.Minute)))
	assert.Equal(t, models.WaitlistBooked, e.Status)

	// fora da janela
	e2 := &models.WaitlistEntry{Status: models.WaitlistWaiting}
	require.NoError(t, Offer(e2, "10:00", now, 15*time.Minute))
	assert.Error(t, Claim(e2, now.Add(16*time.Minute)))

	assert.Error(t, Claim(&models.WaitlistEntry{Status: models.WaitlistWaiting}, now))
}

func TestExpire(t *testing.T) {
	now := time.Now()

	t.Run("volta para waiting abaixo do limite", func(t *testing.T) {
		e := &models.WaitlistEntry{Status: models.WaitlistWaiting}
		require.NoError(t, Offer(e, "10:00", now, time.Minute))
		require.NoError(t, Expire(e, 3))

		assert.Equal(t, models.WaitlistWaiting, e.Status)
		assert.Equal(t, 1, e.OfferAttempts)
		assert.Empty(t, e.OfferTime)
		assert.Nil(t, e.OfferExpiresAt)
	})

	t.Run("descarta no limite de tentativas", func(t *testing.T) {
		e := &models.WaitlistEntry{Status: models.WaitlistWaiting, OfferAttempts: 2}
		require.NoError(t, Offer(e, "10:00", now, time.Minute))
		require.NoError(t, Expire(e, 3))

		assert.Equal(t, models.WaitlistExpired, e.Status)
	})

	t.Run("só oferta expira", func(t *testing.T) {
		assert.Error(t, Expire(&models.WaitlistEntry{Status: models.WaitlistWaiting}, 3))
	})
}
