package availability

import (
	"context"

	"github.com/rs/zerolog"

	domain "github.com/BruksfildServices01/barber-agenda/internal/domain/availability"
	"github.com/BruksfildServices01/barber-agenda/internal/dates"
	"github.com/BruksfildServices01/barber-agenda/internal/models"
)

// ======================================================
// USE CASE — RESOLVE (leitura pura, sem efeito colateral)
// ======================================================

type Resolve struct {
	repo domain.Repository
	log  zerolog.Logger
}

func NewResolve(repo domain.Repository, log zerolog.Logger) *Resolve {
	return &Resolve{repo: repo, log: log}
}

func (uc *Resolve) Execute(
	ctx context.Context,
	barberID uint,
	day dates.Day,
) ([]domain.SlotStatus, error) {

	data, err := uc.prefetch(ctx, barberID, day, day)
	if err != nil {
		return nil, err
	}

	return uc.resolveOne(barberID, day, data), nil
}

// ======================================================
// USE CASE — RESOLVE BATCH
// ======================================================

// ResolveBatch amortiza as consultas: fechamento recorrente, closures,
// lápides, schedules e reservas do range inteiro são buscados uma vez
// e a resolução por data acontece em memória.
type ResolveBatch struct {
	repo domain.Repository
	log  zerolog.Logger
}

func NewResolveBatch(repo domain.Repository, log zerolog.Logger) *ResolveBatch {
	return &ResolveBatch{repo: repo, log: log}
}

func (uc *ResolveBatch) Execute(
	ctx context.Context,
	barberID uint,
	days []dates.Day,
) (map[dates.Day]domain.Summary, error) {

	if len(days) == 0 {
		return map[dates.Day]domain.Summary{}, nil
	}

	from, to := days[0], days[0]
	for _, d := range days[1:] {
		if d < from {
			from = d
		}
		if d > to {
			to = d
		}
	}

	r := &Resolve{repo: uc.repo, log: uc.log}
	data, err := r.prefetch(ctx, barberID, from, to)
	if err != nil {
		return nil, err
	}

	out := make(map[dates.Day]domain.Summary, len(days))
	for _, d := range days {
		out[d] = domain.Summarize(r.resolveOne(barberID, d, data))
	}
	return out, nil
}

// ======================================================
// PREFETCH + RESOLUÇÃO EM MEMÓRIA
// ======================================================

type rangeData struct {
	patterns   map[int]*models.WorkingHours
	recurring  []int
	schedules  map[dates.Day]*models.DaySchedule
	closures   map[dates.Day][]string
	tombstones map[dates.Day][]string
	occupied   map[dates.Day]map[string]bool
}

func (uc *Resolve) prefetch(
	ctx context.Context,
	barberID uint,
	from dates.Day,
	to dates.Day,
) (*rangeData, error) {

	// barbeiro desconhecido é erro duro, distinto de "sem schedule"
	if _, err := uc.repo.GetBarber(ctx, barberID); err != nil {
		return nil, err
	}

	data := &rangeData{
		patterns:   map[int]*models.WorkingHours{},
		schedules:  map[dates.Day]*models.DaySchedule{},
		closures:   map[dates.Day][]string{},
		tombstones: map[dates.Day][]string{},
		occupied:   map[dates.Day]map[string]bool{},
	}

	whs, err := uc.repo.ListWorkingHours(ctx, barberID)
	if err != nil {
		return nil, err
	}
	for i := range whs {
		data.patterns[whs[i].Weekday] = &whs[i]
	}

	rc, err := uc.repo.GetRecurringClosure(ctx, barberID)
	if err != nil {
		return nil, err
	}
	if rc != nil {
		wds, err := domain.ParseWeekdays(rc.Weekdays)
		if err != nil {
			// integridade: fail open, sem fechamento recorrente
			uc.log.Warn().Err(err).
				Uint("barber_id", barberID).
				Msg("malformed recurring closure, treating as none")
		} else {
			data.recurring = wds
		}
	}

	schedules, err := uc.repo.ListDaySchedules(ctx, barberID, from, to)
	if err != nil {
		return nil, err
	}
	for i := range schedules {
		data.schedules[dates.Day(schedules[i].Date)] = &schedules[i]
	}

	closures, err := uc.repo.ListDateClosures(ctx, barberID, from, to)
	if err != nil {
		return nil, err
	}
	for _, dc := range closures {
		d := dates.Day(dc.Date)
		data.closures[d] = append(data.closures[d], dc.ClosureType)
	}

	tombs, err := uc.repo.ListRemovedAutoClosures(ctx, barberID, from, to)
	if err != nil {
		return nil, err
	}
	for _, t := range tombs {
		d := dates.Day(t.Date)
		data.tombstones[d] = append(data.tombstones[d], t.ClosureType)
	}

	bookings, err := uc.repo.ListActiveBookings(ctx, barberID, from, to)
	if err != nil {
		return nil, err
	}
	for _, b := range bookings {
		d := dates.Day(b.Date)
		if data.occupied[d] == nil {
			data.occupied[d] = map[string]bool{}
		}
		data.occupied[d][b.Time] = true
	}

	return data, nil
}

func (uc *Resolve) resolveOne(
	barberID uint,
	day dates.Day,
	data *rangeData,
) []domain.SlotStatus {

	var stored *domain.StoredDay
	if ds := data.schedules[day]; ds != nil {
		stored = &domain.StoredDay{Slots: ds.Slots, DayOff: ds.DayOff}
		if domain.DayOffMismatch(stored) {
			// integridade: day off vence os slots gravados por engano
			uc.log.Warn().
				Uint("barber_id", barberID).
				Str("date", string(day)).
				Msg("day_off schedule with non-empty slots, day off wins")
		}
	}

	verdict := domain.ResolveClosures(domain.ClosureInputs{
		Weekday:           day.Weekday(),
		RecurringWeekdays: data.recurring,
		Tombstones:        data.tombstones[day],
		DateClosures:      data.closures[day],
	})

	return domain.ResolveDay(domain.DayInputs{
		Schedule: stored,
		Pattern:  domain.PatternFrom(data.patterns[day.Weekday()]),
		Closures: verdict,
		Occupied: data.occupied[day],
	})
}
