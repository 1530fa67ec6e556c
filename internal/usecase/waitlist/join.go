package waitlist

import (
	"context"

	"github.com/BruksfildServices01/barber-agenda/internal/audit"
	domain "github.com/BruksfildServices01/barber-agenda/internal/domain/waitlist"
	"github.com/BruksfildServices01/barber-agenda/internal/dates"
	"github.com/BruksfildServices01/barber-agenda/internal/httperr"
	"github.com/BruksfildServices01/barber-agenda/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type JoinInput struct {
	BarbershopID  uint
	BarberID      uint
	Date          string
	PreferredTime string
	ClientName    string
	ClientPhone   string
}

// ======================================================
// USE CASE
// ======================================================

// Join coloca o cliente no fim da fila do (barbeiro, data). A posição é
// atribuída na entrada e nunca reordenada depois.
type Join struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewJoin(repo domain.Repository, audit *audit.Dispatcher) *Join {
	return &Join{repo: repo, audit: audit}
}

func (uc *Join) Execute(
	ctx context.Context,
	in JoinInput,
) (*models.WaitlistEntry, error) {

	day, err := dates.Parse(in.Date)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}
	if in.PreferredTime != "" {
		if _, err := dates.ParseClock(in.PreferredTime); err != nil {
			return nil, httperr.ErrBusiness("invalid_time")
		}
	}
	if in.ClientName == "" {
		return nil, httperr.ErrBusiness("client_name_required")
	}

	pos, err := uc.repo.NextPosition(ctx, in.BarberID, day)
	if err != nil {
		return nil, err
	}

	e := &models.WaitlistEntry{
		BarbershopID:  in.BarbershopID,
		BarberID:      in.BarberID,
		Date:          string(day),
		PreferredTime: in.PreferredTime,
		ClientName:    in.ClientName,
		ClientPhone:   in.ClientPhone,
		Status:        models.WaitlistWaiting,
		Position:      pos,
	}

	if err := uc.repo.CreateEntry(ctx, e); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		BarbershopID: in.BarbershopID,
		Action:       "waitlist_joined",
		Entity:       "waitlist_entry",
		EntityID:     &e.ID,
		Metadata:     map[string]any{"date": in.Date, "position": pos},
	})

	return e, nil
}
