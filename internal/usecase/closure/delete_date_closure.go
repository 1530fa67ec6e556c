package closure

import (
	"context"

	"github.com/BruksfildServices01/barber-agenda/internal/audit"
	domain "github.com/BruksfildServices01/barber-agenda/internal/domain/availability"
	"github.com/BruksfildServices01/barber-agenda/internal/dates"
	"github.com/BruksfildServices01/barber-agenda/internal/models"
)

// Reopener é avisado quando a remoção de um fechamento reabre um dia:
// a fila de espera reage a slots que ficaram livres.
type Reopener interface {
	DayReopened(ctx context.Context, barberID uint, day dates.Day)
}

type DeleteDateClosure struct {
	repo     domain.AdminRepository
	audit    *audit.Dispatcher
	reopener Reopener
}

func NewDeleteDateClosure(
	repo domain.AdminRepository,
	audit *audit.Dispatcher,
	reopener Reopener,
) *DeleteDateClosure {
	return &DeleteDateClosure{repo: repo, audit: audit, reopener: reopener}
}

func (uc *DeleteDateClosure) Execute(
	ctx context.Context,
	barbershopID uint,
	barberID uint,
	closureID uint,
) error {

	dc, err := uc.repo.GetDateClosureByID(ctx, closureID)
	if err != nil {
		return err
	}

	// apagar uma linha system-auto deixa a lápide: instrução permanente
	// de nunca re-materializar este fechamento para esta data
	if dc.CreatedBy == models.ClosureBySystem {
		t := &models.RemovedAutoClosure{
			BarberID:    dc.BarberID,
			Date:        dc.Date,
			ClosureType: dc.ClosureType,
		}
		if err := uc.repo.CreateRemovedAutoClosure(ctx, t); err != nil {
			return err
		}
	}

	if err := uc.repo.DeleteDateClosure(ctx, dc.ID); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		BarbershopID: barbershopID,
		UserID:       &barberID,
		Action:       "date_closure_deleted",
		Entity:       "date_closure",
		EntityID:     &dc.ID,
		Metadata: map[string]string{
			"date": dc.Date, "type": dc.ClosureType, "created_by": dc.CreatedBy,
		},
	})

	if uc.reopener != nil {
		uc.reopener.DayReopened(ctx, dc.BarberID, dates.Day(dc.Date))
	}

	return nil
}
