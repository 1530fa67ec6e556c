package availability

import (
	"context"

	"github.com/BruksfildServices01/barber-agenda/internal/dates"
	"github.com/BruksfildServices01/barber-agenda/internal/models"
)

// AdminRepository é o caminho de escrita das camadas de fechamento e
// schedule: só as operações explícitas de gestão e os jobs noturnos
// mutam essas fontes, nunca o caminho de leitura.
type AdminRepository interface {
	// -------- Date closures --------
	GetDateClosure(
		ctx context.Context,
		barberID uint,
		day dates.Day,
		closureType string,
	) (*models.DateClosure, error)

	GetDateClosureByID(
		ctx context.Context,
		id uint,
	) (*models.DateClosure, error)

	CreateDateClosure(
		ctx context.Context,
		dc *models.DateClosure,
	) error

	DeleteDateClosure(
		ctx context.Context,
		id uint,
	) error

	// ListSystemAutoClosuresFrom devolve os fechamentos system-auto de
	// `from` em diante: é a base da poda quando um dia sai do conjunto
	// recorrente.
	ListSystemAutoClosuresFrom(
		ctx context.Context,
		barberID uint,
		from dates.Day,
	) ([]models.DateClosure, error)

	// -------- Tombstones --------
	CreateRemovedAutoClosure(
		ctx context.Context,
		t *models.RemovedAutoClosure,
	) error

	// -------- Recurring --------
	UpsertRecurringClosure(
		ctx context.Context,
		barberID uint,
		weekdaysJSON string,
	) error

	// -------- Schedule store --------
	UpsertDaySchedule(
		ctx context.Context,
		ds *models.DaySchedule,
	) error

	// CreateDayScheduleIfAbsent nunca sobrescreve linha existente:
	// é o caminho do job de seed, que não pode pisar em edição do admin.
	CreateDayScheduleIfAbsent(
		ctx context.Context,
		ds *models.DaySchedule,
	) error

	// -------- Job fan-out --------
	ListBarberIDsWithRecurringClosure(
		ctx context.Context,
	) ([]uint, error)

	ListActiveBarberIDs(
		ctx context.Context,
	) ([]uint, error)
}
