package availability

import (
	"context"

	"github.com/BruksfildServices01/barber-agenda/internal/dates"
	"github.com/BruksfildServices01/barber-agenda/internal/models"
)

// Repository é o caminho de leitura das cinco fontes do motor.
// "Ausente" é estado válido e volta como nil sem erro; só barbeiro
// desconhecido e falha de storage viram erro.
type Repository interface {
	// -------- Barber --------
	GetBarber(
		ctx context.Context,
		barberID uint,
	) (*models.User, error)

	// -------- Working pattern --------
	GetWorkingHours(
		ctx context.Context,
		barberID uint,
		weekday int,
	) (*models.WorkingHours, error)

	ListWorkingHours(
		ctx context.Context,
		barberID uint,
	) ([]models.WorkingHours, error)

	// -------- Schedule store --------
	GetDaySchedule(
		ctx context.Context,
		barberID uint,
		day dates.Day,
	) (*models.DaySchedule, error)

	ListDaySchedules(
		ctx context.Context,
		barberID uint,
		from dates.Day,
		to dates.Day,
	) ([]models.DaySchedule, error)

	// -------- Closures --------
	GetRecurringClosure(
		ctx context.Context,
		barberID uint,
	) (*models.RecurringClosure, error)

	ListDateClosures(
		ctx context.Context,
		barberID uint,
		from dates.Day,
		to dates.Day,
	) ([]models.DateClosure, error)

	ListRemovedAutoClosures(
		ctx context.Context,
		barberID uint,
		from dates.Day,
		to dates.Day,
	) ([]models.RemovedAutoClosure, error)

	// -------- Booking ledger --------
	ListActiveBookings(
		ctx context.Context,
		barberID uint,
		from dates.Day,
		to dates.Day,
	) ([]models.Booking, error)
}
