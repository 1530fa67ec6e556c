package waitlist

import (
	"time"

	"github.com/BruksfildServices01/barber-agenda/internal/httperr"
	"github.com/BruksfildServices01/barber-agenda/internal/models"
)

// ===============================
// Waitlist Status
// ===============================

type Status string

const (
	StatusWaiting Status = "waiting"
	StatusOffered Status = "offered"
	StatusBooked  Status = "booked"
	StatusExpired Status = "expired"
)

// ===============================
// Transitions
// ===============================

// Offer transiciona waiting → offered, carimbando o horário ofertado e
// a expiração. Uma entrada nunca carrega duas ofertas vivas: a exclusão
// entre processos é do lock do matcher, aqui validamos só o estado.
func Offer(e *models.WaitlistEntry, slot string, now time.Time, ttl time.Duration) error {
	if Status(e.Status) != StatusWaiting {
		return httperr.ErrBusiness("invalid_state")
	}

	expires := now.Add(ttl)
	e.Status = string(StatusOffered)
	e.OfferTime = slot
	e.OfferExpiresAt = &expires
	return nil
}

// Claim transiciona offered → booked quando o cliente aceita dentro da
// janela.
func Claim(e *models.WaitlistEntry, now time.Time) error {
	if Status(e.Status) != StatusOffered {
		return httperr.ErrBusiness("invalid_state")
	}
	if e.OfferExpiresAt == nil || now.After(*e.OfferExpiresAt) {
		return httperr.ErrBusiness("offer_expired")
	}

	e.Status = string(StatusBooked)
	return nil
}

// Expire devolve uma oferta vencida para a fila (waiting) ou descarta a
// entrada (expired) quando o limite de tentativas estoura.
func Expire(e *models.WaitlistEntry, retryLimit int) error {
	if Status(e.Status) != StatusOffered {
		return httperr.ErrBusiness("invalid_state")
	}

	e.OfferAttempts++
	e.OfferTime = ""
	e.OfferExpiresAt = nil

	if retryLimit > 0 && e.OfferAttempts >= retryLimit {
		e.Status = string(StatusExpired)
	} else {
		e.Status = string(StatusWaiting)
	}
	return nil
}
