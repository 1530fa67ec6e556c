package waitlist

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/barber-agenda/internal/audit"
	domain "github.com/BruksfildServices01/barber-agenda/internal/domain/waitlist"
	"github.com/BruksfildServices01/barber-agenda/internal/models"
)

// Claim aceita a oferta dentro da janela: a entrada vira booked e o
// lock é liberado. A reserva em si segue pelo caminho público normal,
// com o slot que acabou de ser confirmado.
type Claim struct {
	repo  domain.Repository
	lock  domain.OfferLock
	audit *audit.Dispatcher
	now   func() time.Time
}

func NewClaim(
	repo domain.Repository,
	lock domain.OfferLock,
	audit *audit.Dispatcher,
) *Claim {
	return &Claim{repo: repo, lock: lock, audit: audit, now: time.Now}
}

func (uc *Claim) Execute(
	ctx context.Context,
	publicID uuid.UUID,
) (*models.WaitlistEntry, error) {

	e, err := uc.repo.GetEntryByPublicID(ctx, publicID)
	if err != nil {
		return nil, err
	}

	if err := domain.Claim(e, uc.now()); err != nil {
		return nil, err
	}
	if err := uc.repo.UpdateEntry(ctx, e); err != nil {
		return nil, err
	}
	uc.lock.Release(ctx, e.ID)

	uc.audit.Dispatch(audit.Event{
		BarbershopID: e.BarbershopID,
		Action:       "waitlist_claimed",
		Entity:       "waitlist_entry",
		EntityID:     &e.ID,
		Metadata:     map[string]string{"date": e.Date, "slot": e.OfferTime},
	})

	return e, nil
}
