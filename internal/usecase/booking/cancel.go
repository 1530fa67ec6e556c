package booking

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/barber-agenda/internal/audit"
	domain "github.com/BruksfildServices01/barber-agenda/internal/domain/booking"
	"github.com/BruksfildServices01/barber-agenda/internal/dates"
	"github.com/BruksfildServices01/barber-agenda/internal/models"
)

// SlotFreed é notificado quando um cancelamento devolve um horário ao
// estoque; o matcher da fila de espera implementa.
type SlotFreed interface {
	SlotFreed(ctx context.Context, barberID uint, day dates.Day, slot string)
}

// Cancel libera o slot. Cancelada não ocupa: a reserva some do ledger
// ativo e o índice único parcial aceita uma nova no mesmo horário.
type Cancel struct {
	repo    domain.Repository
	audit   *audit.Dispatcher
	matcher SlotFreed
	now     func() time.Time
}

func NewCancel(
	repo domain.Repository,
	audit *audit.Dispatcher,
	matcher SlotFreed,
) *Cancel {
	return &Cancel{repo: repo, audit: audit, matcher: matcher, now: time.Now}
}

// Execute cancela pelo public_id (caminho do cliente, sem login).
func (uc *Cancel) Execute(
	ctx context.Context,
	publicID uuid.UUID,
) (*models.Booking, error) {

	b, err := uc.repo.GetBookingByPublicID(ctx, publicID)
	if err != nil {
		return nil, err
	}
	return uc.cancel(ctx, b)
}

// ExecuteByBarber cancela pelo id interno, só dentro da agenda do
// próprio barbeiro autenticado.
func (uc *Cancel) ExecuteByBarber(
	ctx context.Context,
	barberID uint,
	bookingID uint,
) (*models.Booking, error) {

	b, err := uc.repo.GetBookingForBarber(ctx, bookingID, barberID)
	if err != nil {
		return nil, err
	}
	return uc.cancel(ctx, b)
}

func (uc *Cancel) cancel(
	ctx context.Context,
	b *models.Booking,
) (*models.Booking, error) {

	if err := domain.Cancel(b, uc.now()); err != nil {
		return nil, err
	}
	if err := uc.repo.UpdateBooking(ctx, b); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		BarbershopID: b.BarbershopID,
		Action:       "booking_cancelled",
		Entity:       "booking",
		EntityID:     &b.ID,
		Metadata:     map[string]string{"date": b.Date, "time": b.Time},
	})

	// slot de volta ao estoque: a fila de espera tenta ofertar
	if uc.matcher != nil {
		uc.matcher.SlotFreed(ctx, b.BarberID, dates.Day(b.Date), b.Time)
	}

	return b, nil
}
