package availability

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/BruksfildServices01/barber-agenda/internal/domain/availability"
	"github.com/BruksfildServices01/barber-agenda/internal/dates"
	"github.com/BruksfildServices01/barber-agenda/internal/httperr"
	"github.com/BruksfildServices01/barber-agenda/internal/models"
)

// fakeEngineRepo implementa domain.Repository em memória para os
// testes de orquestração.
type fakeEngineRepo struct {
	barbers    map[uint]*models.User
	patterns   []models.WorkingHours
	schedules  []models.DaySchedule
	recurring  *models.RecurringClosure
	closures   []models.DateClosure
	tombstones []models.RemovedAutoClosure
	bookings   []models.Booking

	queries int
}

func (f *fakeEngineRepo) GetBarber(ctx context.Context, id uint) (*models.User, error) {
	f.queries++
	if b, ok := f.barbers[id]; ok {
		return b, nil
	}
	return nil, httperr.ErrBusiness("barber_not_found")
}

func (f *fakeEngineRepo) GetWorkingHours(ctx context.Context, barberID uint, weekday int) (*models.WorkingHours, error) {
	f.queries++
	for i := range f.patterns {
		if f.patterns[i].BarberID == barberID && f.patterns[i].Weekday == weekday {
			return &f.patterns[i], nil
		}
	}
	return nil, nil
}

func (f *fakeEngineRepo) ListWorkingHours(ctx context.Context, barberID uint) ([]models.WorkingHours, error) {
	f.queries++
	var out []models.WorkingHours
	for _, wh := range f.patterns {
		if wh.BarberID == barberID {
			out = append(out, wh)
		}
	}
	return out, nil
}

func (f *fakeEngineRepo) GetDaySchedule(ctx context.Context, barberID uint, day dates.Day) (*models.DaySchedule, error) {
	f.queries++
	for i := range f.schedules {
		if f.schedules[i].BarberID == barberID && f.schedules[i].Date == string(day) {
			return &f.schedules[i], nil
		}
	}
	return nil, nil
}

func (f *fakeEngineRepo) ListDaySchedules(ctx context.Context, barberID uint, from, to dates.Day) ([]models.DaySchedule, error) {
	f.queries++
	var out []models.DaySchedule
	for _, ds := range f.schedules {
		if ds.BarberID == barberID && ds.Date >= string(from) && ds.Date <= string(to) {
			out = append(out, ds)
		}
	}
	return out, nil
}

func (f *fakeEngineRepo) GetRecurringClosure(ctx context.Context, barberID uint) (*models.RecurringClosure, error) {
	f.queries++
	if f.recurring != nil && f.recurring.BarberID == barberID {
		return f.recurring, nil
	}
	return nil, nil
}

func (f *fakeEngineRepo) ListDateClosures(ctx context.Context, barberID uint, from, to dates.Day) ([]models.DateClosure, error) {
	f.queries++
	var out []models.DateClosure
	for _, dc := range f.closures {
		if dc.BarberID == barberID && dc.Date >= string(from) && dc.Date <= string(to) {
			out = append(out, dc)
		}
	}
	return out, nil
}

func (f *fakeEngineRepo) ListRemovedAutoClosures(ctx context.Context, barberID uint, from, to dates.Day) ([]models.RemovedAutoClosure, error) {
	f.queries++
	var out []models.RemovedAutoClosure
	for _, t := range f.tombstones {
		if t.BarberID == barberID && t.Date >= string(from) && t.Date <= string(to) {
			out = append(out, t)
		}
	}
	return out, nil
}

func (f *fakeEngineRepo) ListActiveBookings(ctx context.Context, barberID uint, from, to dates.Day) ([]models.Booking, error) {
	f.queries++
	var out []models.Booking
	for _, b := range f.bookings {
		if b.BarberID == barberID && b.Status != models.BookingCancelled &&
			b.Date >= string(from) && b.Date <= string(to) {
			out = append(out, b)
		}
	}
	return out, nil
}

func fullWeekPattern(barberID uint) []models.WorkingHours {
	var whs []models.WorkingHours
	for wd := 1; wd <= 6; wd++ { // domingo ausente do padrão
		whs = append(whs, models.WorkingHours{
			BarberID: barberID, Weekday: wd,
			StartTime: "09:00", EndTime: "18:00",
			LunchStart: "12:00", LunchEnd: "14:00",
			SlotMinutes: 30, Active: true,
		})
	}
	return whs
}

const michele = uint(1)

func micheleRepo() *fakeEngineRepo {
	return &fakeEngineRepo{
		barbers:  map[uint]*models.User{michele: {ID: michele, Name: "michele", Active: true}},
		patterns: fullWeekPattern(michele),
	}
}

func available(slots []domain.SlotStatus) []string {
	var out []string
	for _, s := range slots {
		if s.Available {
			out = append(out, s.Time)
		}
	}
	return out
}

func TestResolveUnknownBarber(t *testing.T) {
	uc := NewResolve(micheleRepo(), zerolog.Nop())

	_, err := uc.Execute(context.Background(), 99, "2025-12-04")
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "barber_not_found"))
}

// Cenário: michele fecha toda quinta (recorrente), 2025-12-04 é quinta
// sem DateClosure nem lápide: todos os slots saem indisponíveis por
// fechamento, não por ausência de schedule.
func TestResolveRecurringClosureDay(t *testing.T) {
	repo := micheleRepo()
	repo.recurring = &models.RecurringClosure{BarberID: michele, Weekdays: "[4]"}

	uc := NewResolve(repo, zerolog.Nop())
	slots, err := uc.Execute(context.Background(), michele, "2025-12-04")
	require.NoError(t, err)

	require.NotEmpty(t, slots, "grade candidata presente, toda indisponível")
	assert.Empty(t, available(slots))
}

// Cenário: admin apagou o fechamento system-auto da quinta 2025-12-04
// criando a lápide; a resolução volta a cair nos slots do gerador.
func TestResolveTombstoneReopensDay(t *testing.T) {
	repo := micheleRepo()
	repo.recurring = &models.RecurringClosure{BarberID: michele, Weekdays: "[4]"}
	repo.tombstones = []models.RemovedAutoClosure{
		{BarberID: michele, Date: "2025-12-04", ClosureType: models.ClosureFull},
	}

	uc := NewResolve(repo, zerolog.Nop())
	slots, err := uc.Execute(context.Background(), michele, "2025-12-04")
	require.NoError(t, err)

	assert.Equal(t, len(slots), len(available(slots)), "dia inteiro reaberto")

	// a lápide vale só para aquela data: a quinta seguinte segue fechada
	next, err := uc.Execute(context.Background(), michele, "2025-12-11")
	require.NoError(t, err)
	assert.Empty(t, available(next))
}

// Cenário: fabio tem DaySchedule armazenado em 2025-10-30 e uma reserva
// confirmada às 10:00; só o 10:00 sai indisponível.
func TestResolveOccupiedSlot(t *testing.T) {
	fabio := uint(2)
	repo := &fakeEngineRepo{
		barbers: map[uint]*models.User{fabio: {ID: fabio, Name: "fabio", Active: true}},
		schedules: []models.DaySchedule{{
			BarberID: fabio, Date: "2025-10-30",
			Slots: []string{"09:00", "09:30", "10:00", "10:30", "17:30"},
		}},
		bookings: []models.Booking{{
			BarberID: fabio, Date: "2025-10-30", Time: "10:00",
			DurationMin: 30, Status: models.BookingConfirmed,
		}},
	}

	uc := NewResolve(repo, zerolog.Nop())
	slots, err := uc.Execute(context.Background(), fabio, "2025-10-30")
	require.NoError(t, err)

	require.Len(t, slots, 5)
	assert.Equal(t, []string{"09:00", "09:30", "10:30", "17:30"}, available(slots))
}

func TestResolveMalformedRecurringFailsOpen(t *testing.T) {
	repo := micheleRepo()
	repo.recurring = &models.RecurringClosure{BarberID: michele, Weekdays: "{quinta}"}

	uc := NewResolve(repo, zerolog.Nop())
	slots, err := uc.Execute(context.Background(), michele, "2025-12-04")
	require.NoError(t, err)
	assert.NotEmpty(t, available(slots), "JSON malformado vale como sem fechamento")
}

func TestResolveDayOffScheduleWins(t *testing.T) {
	repo := micheleRepo()
	repo.schedules = []models.DaySchedule{{
		BarberID: michele, Date: "2025-12-05",
		DayOff: true, Slots: []string{"09:00"}, // mismatch gravado no banco
	}}

	uc := NewResolve(repo, zerolog.Nop())
	slots, err := uc.Execute(context.Background(), michele, "2025-12-05")
	require.NoError(t, err)
	assert.Empty(t, available(slots))
}

// Cenário batch: 30 datas consecutivas devolvem exatamente 30 chaves,
// availableCount ≤ totalSlots, com os lookups de range amortizados.
func TestResolveBatch(t *testing.T) {
	repo := micheleRepo()
	repo.recurring = &models.RecurringClosure{BarberID: michele, Weekdays: "[0]"}
	repo.bookings = []models.Booking{{
		BarberID: michele, Date: "2025-12-02", Time: "09:00",
		DurationMin: 30, Status: models.BookingConfirmed,
	}}

	days := dates.Range("2025-12-01", 30)

	uc := NewResolveBatch(repo, zerolog.Nop())

	start := time.Now()
	out, err := uc.Execute(context.Background(), michele, days)
	elapsed := time.Since(start)

	require.NoError(t, err)
	require.Len(t, out, 30)

	for _, d := range days {
		s, ok := out[d]
		require.True(t, ok, d)
		assert.LessOrEqual(t, s.AvailableCount, s.TotalSlots, d)
	}

	booked := out["2025-12-02"]
	assert.Equal(t, booked.TotalSlots-1, booked.AvailableCount)

	// uma query por fonte, não uma por data
	assert.LessOrEqual(t, repo.queries, 7)
	assert.Less(t, elapsed, 2*time.Second)
}

func TestResolveBatchEmpty(t *testing.T) {
	uc := NewResolveBatch(micheleRepo(), zerolog.Nop())
	out, err := uc.Execute(context.Background(), michele, nil)
	require.NoError(t, err)
	assert.Empty(t, out)
}
