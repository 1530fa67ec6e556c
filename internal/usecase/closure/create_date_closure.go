package closure

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

type CreateDateClosureInput struct {
	BarbershopID uint
	BarberID     uint
	Date         string
	ClosureType  string
	Reason       string
}

// ======================================================
// USE CASE
// ======================================================

type CreateDateClosure struct {
	repo  domain.AdminRepository
	audit *audit.Dispatcher
}

func NewCreateDateClosure(
	repo domain.AdminRepository,
	audit *audit.Dispatcher,
) *CreateDateClosure {
	return &CreateDateClosure{repo: repo, audit: audit}
}

func validType(t string) bool {
	switch t {
	case models.ClosureFull, models.ClosureMorning, models.ClosureAfternoon:
		return true
	}
	return false
}

// conflictingTypes lista os tipos que cobririam o mesmo meio-período.
func conflictingTypes(t string) []string {
	if t == models.ClosureFull {
		return []string{models.ClosureFull, models.ClosureMorning, models.ClosureAfternoon}
	}
	return []string{t, models.ClosureFull}
}

func (uc *CreateDateClosure) Execute(
	ctx context.Context,
	in CreateDateClosureInput,
) (*models.DateClosure, error) {

	day, err := dates.Parse(in.Date)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}
	if !validType(in.ClosureType) {
		return nil, httperr.ErrBusiness("invalid_closure_type")
	}

	// tipos não podem cobrir o mesmo meio-período duas vezes: full
	// convive com nada, morning/afternoon convivem entre si
	for _, t := range conflictingTypes(in.ClosureType) {
		existing, err := uc.repo.GetDateClosure(ctx, in.BarberID, day, t)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, httperr.ErrBusiness("closure_exists")
		}
	}

	dc := &models.DateClosure{
		BarberID:    in.BarberID,
		Date:        string(day),
		ClosureType: in.ClosureType,
		Reason:      in.Reason,
		CreatedBy:   models.ClosureByAdmin,
	}

	if err := uc.repo.CreateDateClosure(ctx, dc); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		BarbershopID: in.BarbershopID,
		UserID:       &in.BarberID,
		Action:       "date_closure_created",
		Entity:       "date_closure",
		EntityID:     &dc.ID,
		Metadata:     map[string]string{"date": in.Date, "type": in.ClosureType},
	})

	return dc, nil
}
