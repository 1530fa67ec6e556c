package schedule

import (
	"context"

	"github.com/BruksfildServices01/barber-agenda/internal/audit"
	domain "github.com/BruksfildServices01/barber-agenda/internal/domain/availability"
	"github.com/BruksfildServices01/barber-agenda/internal/dates"
	"github.com/BruksfildServices01/barber-agenda/internal/httperr"
	"github.com/BruksfildServices01/barber-agenda/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type UpsertInput struct {
	BarbershopID uint
	BarberID     uint
	Date         string
	Slots        []string
	DayOff       bool
}

// ======================================================
// USE CASE
// ======================================================

// Upsert substitui integralmente a lista de slots e a flag de day off
// de um (barbeiro, data). Não tem efeito colateral nenhum sobre
// closures: as duas camadas são independentes e só se compõem na
// leitura.
type Upsert struct {
	repo  domain.AdminRepository
	audit *audit.Dispatcher
}

func NewUpsert(repo domain.AdminRepository, audit *audit.Dispatcher) *Upsert {
	return &Upsert{repo: repo, audit: audit}
}

func (uc *Upsert) Execute(
	ctx context.Context,
	in UpsertInput,
) (*models.DaySchedule, error) {

	day, err := dates.Parse(in.Date)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	// invariante de escrita: day off implica lista vazia
	if in.DayOff && len(in.Slots) > 0 {
		return nil, httperr.ErrBusiness("day_off_mismatch")
	}

	prev := -1
	for _, s := range in.Slots {
		min, err := dates.ParseClock(s)
		if err != nil {
			return nil, httperr.ErrBusiness("invalid_time")
		}
		if min <= prev {
			return nil, httperr.ErrBusiness("slots_not_ordered")
		}
		prev = min
	}

	slots := in.Slots
	if slots == nil {
		slots = []string{}
	}

	ds := &models.DaySchedule{
		BarberID: in.BarberID,
		Date:     string(day),
		Slots:    slots,
		DayOff:   in.DayOff,
	}

	if err := uc.repo.UpsertDaySchedule(ctx, ds); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		BarbershopID: in.BarbershopID,
		UserID:       &in.BarberID,
		Action:       "day_schedule_upserted",
		Entity:       "day_schedule",
		Metadata: map[string]any{
			"date": in.Date, "slots": len(slots), "day_off": in.DayOff,
		},
	})

	return ds, nil
}
