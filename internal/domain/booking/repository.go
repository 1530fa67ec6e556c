package booking

import (
	"context"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/barber-agenda/internal/dates"
	"github.com/BruksfildServices01/barber-agenda/internal/models"
)

type Repository interface {
	// -------- Barbershop / Service / Client --------
	GetBarbershopBySlug(
		ctx context.Context,
		slug string,
	) (*models.Barbershop, error)

	GetService(
		ctx context.Context,
		barbershopID uint,
		serviceID uint,
	) (*models.Service, error)

	GetOrCreateClient(
		ctx context.Context,
		barbershopID uint,
		name string,
		phone string,
		email string,
	) (*models.Client, error)

	// -------- Booking (create / conflict) --------

	// ListActiveBookingsForUpdate trava as reservas ativas do dia
	// (SELECT ... FOR UPDATE) para o re-check de sobreposição
	// imediatamente antes do insert.
	ListActiveBookingsForUpdate(
		ctx context.Context,
		barberID uint,
		day dates.Day,
	) ([]models.Booking, error)

	CreateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	// -------- Booking (state change) --------
	GetBookingByPublicID(
		ctx context.Context,
		publicID uuid.UUID,
	) (*models.Booking, error)

	GetBookingForBarber(
		ctx context.Context,
		bookingID uint,
		barberID uint,
	) (*models.Booking, error)

	UpdateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	ListBookingsForDay(
		ctx context.Context,
		barberID uint,
		day dates.Day,
	) ([]models.Booking, error)
}
