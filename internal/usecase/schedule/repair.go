package schedule

import (
	"context"

	"github.com/BruksfildServices01/barber-agenda/internal/audit"
	domain "github.com/BruksfildServices01/barber-agenda/internal/domain/availability"
	"github.com/BruksfildServices01/barber-agenda/internal/dates"
	"github.com/BruksfildServices01/barber-agenda/internal/httperr"
)

// ======================================================
// INPUT
// ======================================================

type AppendSlotInput struct {
	BarbershopID uint
	BarberID     uint
	Weekday      int
	Time         string
	From         string
	To           string
}

// ======================================================
// USE CASE
// ======================================================

// AppendSlotForWeekday é a rotina de reparo que propaga um horário novo
// do padrão semanal para as linhas de DaySchedule já materializadas.
// Só toca dias futuros abertos do weekday pedido; day off e dias que já
// têm o horário ficam como estão.
type AppendSlotForWeekday struct {
	reader domain.Repository
	writer domain.AdminRepository
	audit  *audit.Dispatcher
}

func NewAppendSlotForWeekday(
	reader domain.Repository,
	writer domain.AdminRepository,
	audit *audit.Dispatcher,
) *AppendSlotForWeekday {
	return &AppendSlotForWeekday{reader: reader, writer: writer, audit: audit}
}

// Execute devolve quantas linhas foram corrigidas.
func (uc *AppendSlotForWeekday) Execute(
	ctx context.Context,
	in AppendSlotInput,
) (int, error) {

	if in.Weekday < 0 || in.Weekday > 6 {
		return 0, httperr.ErrBusiness("invalid_weekday")
	}
	slotMin, err := dates.ParseClock(in.Time)
	if err != nil {
		return 0, httperr.ErrBusiness("invalid_time")
	}
	from, err := dates.Parse(in.From)
	if err != nil {
		return 0, httperr.ErrBusiness("invalid_date")
	}
	to, err := dates.Parse(in.To)
	if err != nil {
		return 0, httperr.ErrBusiness("invalid_date")
	}

	rows, err := uc.reader.ListDaySchedules(ctx, in.BarberID, from, to)
	if err != nil {
		return 0, err
	}

	repaired := 0
	for i := range rows {
		ds := &rows[i]
		day := dates.Day(ds.Date)
		if day.Weekday() != in.Weekday || ds.DayOff {
			continue
		}
		if containsSlot(ds.Slots, in.Time) {
			continue
		}
		ds.Slots = insertSorted(ds.Slots, in.Time, slotMin)
		if err := uc.writer.UpsertDaySchedule(ctx, ds); err != nil {
			return repaired, err
		}
		repaired++
	}

	if repaired > 0 {
		uc.audit.Dispatch(audit.Event{
			BarbershopID: in.BarbershopID,
			UserID:       &in.BarberID,
			Action:       "day_schedules_repaired",
			Entity:       "day_schedule",
			Metadata: map[string]any{
				"weekday": in.Weekday, "time": in.Time, "rows": repaired,
			},
		})
	}

	return repaired, nil
}

func containsSlot(slots []string, t string) bool {
	for _, s := range slots {
		if s == t {
			return true
		}
	}
	return false
}

func insertSorted(slots []string, t string, tMin int) []string {
	pos := len(slots)
	for i, s := range slots {
		if min, err := dates.ParseClock(s); err == nil && min > tMin {
			pos = i
			break
		}
	}
	out := make([]string, 0, len(slots)+1)
	out = append(out, slots[:pos]...)
	out = append(out, t)
	out = append(out, slots[pos:]...)
	return out
}
