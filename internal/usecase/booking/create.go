package booking

import (
	"context"
	"time"

	"github.com/BruksfildServices01/barber-agenda/internal/audit"
	domain "github.com/BruksfildServices01/barber-agenda/internal/domain/booking"
	"github.com/BruksfildServices01/barber-agenda/internal/dates"
	"github.com/BruksfildServices01/barber-agenda/internal/httperr"
	"github.com/BruksfildServices01/barber-agenda/internal/models"
	"github.com/BruksfildServices01/barber-agenda/internal/timezone"
	availuc "github.com/BruksfildServices01/barber-agenda/internal/usecase/availability"
)

// ======================================================
// INPUT
// ======================================================

type CreateInput struct {
	Slug      string
	BarberID  uint
	ServiceID uint
	Date      string
	Time      string

	ClientName  string
	ClientPhone string
	ClientEmail string
	Notes       string
}

// ======================================================
// USE CASE
// ======================================================

// Create é o caminho público de reserva. A disponibilidade é decidida
// pelo resolver (mesma resposta que o cliente acabou de ver); o
// re-check com lock de linha e o índice único parcial no banco cobrem a
// corrida entre a leitura e o insert.
type Create struct {
	repo     domain.Repository
	resolver *availuc.Resolve
	audit    *audit.Dispatcher
	now      func() time.Time
}

func NewCreate(
	repo domain.Repository,
	resolver *availuc.Resolve,
	audit *audit.Dispatcher,
) *Create {
	return &Create{repo: repo, resolver: resolver, audit: audit, now: time.Now}
}

func (uc *Create) Execute(
	ctx context.Context,
	in CreateInput,
) (*models.Booking, error) {

	day, err := dates.Parse(in.Date)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}
	clock, err := dates.ParseClock(in.Time)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_time")
	}
	if in.ClientName == "" {
		return nil, httperr.ErrBusiness("client_name_required")
	}

	shop, err := uc.repo.GetBarbershopBySlug(ctx, in.Slug)
	if err != nil {
		return nil, err
	}

	svc, err := uc.repo.GetService(ctx, shop.ID, in.ServiceID)
	if err != nil {
		return nil, err
	}
	duration := svc.DurationMin
	if duration <= 0 {
		duration = 30
	}

	if err := uc.checkAdvance(shop, day, clock); err != nil {
		return nil, err
	}

	// o slot precisa existir e estar livre na mesma visão que o motor
	// devolve ao cliente
	slots, err := uc.resolver.Execute(ctx, in.BarberID, day)
	if err != nil {
		return nil, err
	}
	found := false
	for _, s := range slots {
		if s.Time == in.Time {
			if !s.Available {
				return nil, httperr.ErrBusiness("slot_unavailable")
			}
			found = true
			break
		}
	}
	if !found {
		return nil, httperr.ErrBusiness("slot_unavailable")
	}

	client, err := uc.repo.GetOrCreateClient(
		ctx, shop.ID, in.ClientName, in.ClientPhone, in.ClientEmail,
	)
	if err != nil {
		return nil, err
	}

	// re-check com FOR UPDATE: duração variável exige interseção de
	// intervalos, igualdade de horário não basta
	active, err := uc.repo.ListActiveBookingsForUpdate(ctx, in.BarberID, day)
	if err != nil {
		return nil, err
	}
	conflict, err := domain.HasOverlap(active, in.Time, duration)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_time")
	}
	if conflict {
		return nil, httperr.ErrBusiness("time_conflict")
	}

	b := &models.Booking{
		BarbershopID: shop.ID,
		BarberID:     in.BarberID,
		ClientID:     client.ID,
		ServiceID:    svc.ID,
		Date:         string(day),
		Time:         in.Time,
		DurationMin:  duration,
		Status:       string(domain.InitialStatus()),
		Notes:        in.Notes,
	}

	// corrida perdida entre o re-check e o insert vira violação do
	// índice único parcial, que o repositório traduz em time_conflict
	if err := uc.repo.CreateBooking(ctx, b); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		BarbershopID: shop.ID,
		Action:       "booking_created",
		Entity:       "booking",
		EntityID:     &b.ID,
		Metadata: map[string]any{
			"barber_id": in.BarberID, "date": in.Date, "time": in.Time,
		},
	})

	return b, nil
}

// checkAdvance aplica a antecedência mínima da barbearia no fuso dela.
func (uc *Create) checkAdvance(
	shop *models.Barbershop,
	day dates.Day,
	clock int,
) error {

	if shop.MinAdvanceMinutes <= 0 {
		return nil
	}

	now := uc.now().In(timezone.Location(shop.Timezone))
	earliest := now.Add(time.Duration(shop.MinAdvanceMinutes) * time.Minute)

	today := dates.New(earliest.Year(), int(earliest.Month()), earliest.Day())
	if day > today {
		return nil
	}
	if day < today || clock < earliest.Hour()*60+earliest.Minute() {
		return httperr.ErrBusiness("too_soon")
	}
	return nil
}
