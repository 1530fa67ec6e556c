package closure

import (
	"context"
	"encoding/json"
	"time"

	"github.com/BruksfildServices01/barber-agenda/internal/audit"
	domain "github.com/BruksfildServices01/barber-agenda/internal/domain/availability"
	"github.com/BruksfildServices01/barber-agenda/internal/dates"
	"github.com/BruksfildServices01/barber-agenda/internal/httperr"
	"github.com/BruksfildServices01/barber-agenda/internal/models"
	"github.com/BruksfildServices01/barber-agenda/internal/timezone"
)

type UpsertRecurringClosure struct {
	reader   domain.Repository
	writer   domain.AdminRepository
	audit    *audit.Dispatcher
	reopener Reopener
	now      func() time.Time
}

func NewUpsertRecurringClosure(
	reader domain.Repository,
	writer domain.AdminRepository,
	audit *audit.Dispatcher,
	reopener Reopener,
) *UpsertRecurringClosure {
	return &UpsertRecurringClosure{
		reader:   reader,
		writer:   writer,
		audit:    audit,
		reopener: reopener,
		now:      timezone.Now,
	}
}

// Execute substitui o conjunto de dias fechados atomicamente (no máximo
// um registro por barbeiro). Dia que sai do conjunto leva junto os
// fechamentos system-auto futuros que ele materializou: a linha existe
// só como efeito da regra, e a regra morreu.
func (uc *UpsertRecurringClosure) Execute(
	ctx context.Context,
	barbershopID uint,
	barberID uint,
	weekdays []int,
) error {

	for _, wd := range weekdays {
		if wd < 0 || wd > 6 {
			return httperr.ErrBusiness("invalid_weekday")
		}
	}
	if weekdays == nil {
		weekdays = []int{}
	}

	removed, err := uc.removedWeekdays(ctx, barberID, weekdays)
	if err != nil {
		return err
	}

	raw, err := json.Marshal(weekdays)
	if err != nil {
		return err
	}

	if err := uc.writer.UpsertRecurringClosure(ctx, barberID, string(raw)); err != nil {
		return err
	}

	reopened, err := uc.pruneRemoved(ctx, barberID, removed)
	if err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		BarbershopID: barbershopID,
		UserID:       &barberID,
		Action:       "recurring_closure_updated",
		Entity:       "recurring_closure",
		Metadata:     map[string]any{"weekdays": weekdays, "pruned": len(reopened)},
	})

	if uc.reopener != nil {
		for _, d := range reopened {
			uc.reopener.DayReopened(ctx, barberID, d)
		}
	}

	return nil
}

// removedWeekdays compara o conjunto novo com o persistido. Registro
// antigo corrompido lê como vazio, então nada é considerado removido.
func (uc *UpsertRecurringClosure) removedWeekdays(
	ctx context.Context,
	barberID uint,
	weekdays []int,
) (map[int]bool, error) {

	rc, err := uc.reader.GetRecurringClosure(ctx, barberID)
	if err != nil {
		return nil, err
	}
	if rc == nil {
		return nil, nil
	}

	old, err := domain.ParseWeekdays(rc.Weekdays)
	if err != nil {
		return nil, nil
	}

	keep := map[int]bool{}
	for _, wd := range weekdays {
		keep[wd] = true
	}

	removed := map[int]bool{}
	for _, wd := range old {
		if !keep[wd] {
			removed[wd] = true
		}
	}
	return removed, nil
}

// pruneRemoved apaga os fechamentos system-auto de hoje em diante cujo
// dia da semana saiu do conjunto. Sem lápide: lápide suprime uma regra
// viva, aqui a regra deixou de existir. Dias passados ficam como
// registro histórico.
func (uc *UpsertRecurringClosure) pruneRemoved(
	ctx context.Context,
	barberID uint,
	removed map[int]bool,
) ([]dates.Day, error) {

	if len(removed) == 0 {
		return nil, nil
	}

	now := uc.now()
	today := dates.New(now.Year(), int(now.Month()), now.Day())

	rows, err := uc.writer.ListSystemAutoClosuresFrom(ctx, barberID, today)
	if err != nil {
		return nil, err
	}

	var reopened []dates.Day
	for _, dc := range rows {
		d := dates.Day(dc.Date)
		if dc.ClosureType != models.ClosureFull || !removed[d.Weekday()] {
			continue
		}
		if err := uc.writer.DeleteDateClosure(ctx, dc.ID); err != nil {
			return reopened, err
		}
		reopened = append(reopened, d)
	}
	return reopened, nil
}
