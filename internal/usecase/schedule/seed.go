package schedule

import (
	"context"

	"github.com/rs/zerolog"

	domain "github.com/BruksfildServices01/barber-agenda/internal/domain/availability"
	"github.com/BruksfildServices01/barber-agenda/internal/dates"
	"github.com/BruksfildServices01/barber-agenda/internal/models"
)

// Seed é o job noturno que garante uma linha de DaySchedule para cada
// (barbeiro ativo, data) do horizonte. A linha nasce do padrão semanal
// via gerador de grade; dia sem padrão ativo nasce como day off. Linhas
// já existentes nunca são tocadas, edição do admin prevalece sempre.
type Seed struct {
	reader domain.Repository
	writer domain.AdminRepository
	log    zerolog.Logger
}

func NewSeed(
	reader domain.Repository,
	writer domain.AdminRepository,
	log zerolog.Logger,
) *Seed {
	return &Seed{reader: reader, writer: writer, log: log}
}

// Execute devolve quantas linhas foram submetidas. Falha por barbeiro
// é logada e não aborta a rodada: a próxima execução completa o resto.
func (uc *Seed) Execute(
	ctx context.Context,
	horizon []dates.Day,
) (int, error) {

	if len(horizon) == 0 {
		return 0, nil
	}

	barberIDs, err := uc.writer.ListActiveBarberIDs(ctx)
	if err != nil {
		return 0, err
	}

	seeded := 0
	for _, barberID := range barberIDs {
		n, err := uc.seedBarber(ctx, barberID, horizon)
		if err != nil {
			uc.log.Error().Err(err).
				Uint("barber_id", barberID).
				Msg("seed failed for barber, continuing")
			continue
		}
		seeded += n
	}

	uc.log.Info().
		Int("seeded", seeded).
		Int("barbers", len(barberIDs)).
		Str("from", string(horizon[0])).
		Str("to", string(horizon[len(horizon)-1])).
		Msg("day schedule seeding done")

	return seeded, nil
}

func (uc *Seed) seedBarber(
	ctx context.Context,
	barberID uint,
	horizon []dates.Day,
) (int, error) {

	whs, err := uc.reader.ListWorkingHours(ctx, barberID)
	if err != nil {
		return 0, err
	}

	// grade pré-computada por dia da semana: o horizonte inteiro só
	// repete sete padrões
	grids := map[int][]string{}
	for i := range whs {
		grids[whs[i].Weekday] = domain.Grid(domain.PatternFrom(&whs[i]))
	}

	seeded := 0
	for _, day := range horizon {
		slots := grids[day.Weekday()]
		ds := &models.DaySchedule{
			BarberID: barberID,
			Date:     string(day),
			Slots:    slots,
			DayOff:   len(slots) == 0,
		}
		if ds.Slots == nil {
			ds.Slots = []string{}
		}
		if err := uc.writer.CreateDayScheduleIfAbsent(ctx, ds); err != nil {
			uc.log.Error().Err(err).
				Uint("barber_id", barberID).
				Str("date", string(day)).
				Msg("seed day schedule failed, continuing")
			continue
		}
		seeded++
	}
	return seeded, nil
}
