package closure

import (
	"context"

	"github.com/rs/zerolog"

	domain "github.com/BruksfildServices01/barber-agenda/internal/domain/availability"
	"github.com/BruksfildServices01/barber-agenda/internal/dates"
	"github.com/BruksfildServices01/barber-agenda/internal/models"
)

// Materialize é o job noturno que expande regras recorrentes em
// DateClosures system-auto para cada data do horizonte. O diff em si é
// a função pura availability.MaterializeClosures; aqui fica só o I/O.
// Seguro de rodar de novo: sem duplicatas, sem ressuscitar lápides e
// sem tocar em fechamentos admin.
type Materialize struct {
	reader domain.Repository
	writer domain.AdminRepository
	log    zerolog.Logger
}

func NewMaterialize(
	reader domain.Repository,
	writer domain.AdminRepository,
	log zerolog.Logger,
) *Materialize {
	return &Materialize{reader: reader, writer: writer, log: log}
}

// Execute devolve quantos fechamentos foram inseridos. Falha por
// barbeiro ou por data é logada e não aborta a rodada inteira: a
// próxima execução idempotente completa o que faltou.
func (uc *Materialize) Execute(
	ctx context.Context,
	horizon []dates.Day,
) (int, error) {

	if len(horizon) == 0 {
		return 0, nil
	}
	from, to := horizon[0], horizon[len(horizon)-1]

	barberIDs, err := uc.writer.ListBarberIDsWithRecurringClosure(ctx)
	if err != nil {
		return 0, err
	}

	inserted := 0
	for _, barberID := range barberIDs {
		n, err := uc.materializeBarber(ctx, barberID, from, to, horizon)
		if err != nil {
			uc.log.Error().Err(err).
				Uint("barber_id", barberID).
				Msg("materialize failed for barber, continuing")
			continue
		}
		inserted += n
	}

	uc.log.Info().
		Int("inserted", inserted).
		Int("barbers", len(barberIDs)).
		Str("from", string(from)).
		Str("to", string(to)).
		Msg("closure materialization done")

	return inserted, nil
}

func (uc *Materialize) materializeBarber(
	ctx context.Context,
	barberID uint,
	from dates.Day,
	to dates.Day,
	horizon []dates.Day,
) (int, error) {

	rc, err := uc.reader.GetRecurringClosure(ctx, barberID)
	if err != nil {
		return 0, err
	}
	if rc == nil {
		return 0, nil
	}

	weekdays, err := domain.ParseWeekdays(rc.Weekdays)
	if err != nil {
		uc.log.Warn().Err(err).
			Uint("barber_id", barberID).
			Msg("malformed recurring closure, skipping barber")
		return 0, nil
	}

	existingRows, err := uc.reader.ListDateClosures(ctx, barberID, from, to)
	if err != nil {
		return 0, err
	}
	existing := map[domain.ClosureKey]bool{}
	for _, dc := range existingRows {
		existing[domain.ClosureKey{Date: dates.Day(dc.Date), Type: dc.ClosureType}] = true
	}

	tombRows, err := uc.reader.ListRemovedAutoClosures(ctx, barberID, from, to)
	if err != nil {
		return 0, err
	}
	tombstones := map[domain.ClosureKey]bool{}
	for _, t := range tombRows {
		tombstones[domain.ClosureKey{Date: dates.Day(t.Date), Type: t.ClosureType}] = true
	}

	diff := domain.MaterializeClosures(weekdays, existing, tombstones, horizon)

	inserted := 0
	for _, day := range diff {
		dc := &models.DateClosure{
			BarberID:    barberID,
			Date:        string(day),
			ClosureType: models.ClosureFull,
			Reason:      "recurring closure",
			CreatedBy:   models.ClosureBySystem,
		}
		if err := uc.writer.CreateDateClosure(ctx, dc); err != nil {
			uc.log.Error().Err(err).
				Uint("barber_id", barberID).
				Str("date", string(day)).
				Msg("insert closure failed, continuing")
			continue
		}
		inserted++
	}
	return inserted, nil
}
