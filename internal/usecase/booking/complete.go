package booking

import (
	"context"
	"time"

	"github.com/BruksfildServices01/barber-agenda/internal/audit"
	domain "github.com/BruksfildServices01/barber-agenda/internal/domain/booking"
	"github.com/BruksfildServices01/barber-agenda/internal/dates"
	"github.com/BruksfildServices01/barber-agenda/internal/httperr"
	"github.com/BruksfildServices01/barber-agenda/internal/models"
)

// Complete marca a reserva como atendida. Não muda o status de
// ocupação: concluída continua ocupando o histórico do slot.
type Complete struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	now   func() time.Time
}

func NewComplete(repo domain.Repository, audit *audit.Dispatcher) *Complete {
	return &Complete{repo: repo, audit: audit, now: time.Now}
}

func (uc *Complete) Execute(
	ctx context.Context,
	barberID uint,
	bookingID uint,
) (*models.Booking, error) {

	b, err := uc.repo.GetBookingForBarber(ctx, bookingID, barberID)
	if err != nil {
		return nil, err
	}

	if err := domain.Complete(b, uc.now()); err != nil {
		return nil, err
	}
	if err := uc.repo.UpdateBooking(ctx, b); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		BarbershopID: b.BarbershopID,
		UserID:       &barberID,
		Action:       "booking_completed",
		Entity:       "booking",
		EntityID:     &b.ID,
	})

	return b, nil
}

// ListDay devolve a agenda do dia do barbeiro autenticado.
type ListDay struct {
	repo domain.Repository
}

func NewListDay(repo domain.Repository) *ListDay {
	return &ListDay{repo: repo}
}

func (uc *ListDay) Execute(
	ctx context.Context,
	barberID uint,
	date string,
) ([]models.Booking, error) {

	day, err := dates.Parse(date)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}
	return uc.repo.ListBookingsForDay(ctx, barberID, day)
}
