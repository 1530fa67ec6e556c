package waitlist

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barber-agenda/internal/audit"
	domain "github.com/BruksfildServices01/barber-agenda/internal/domain/waitlist"
	"github.com/BruksfildServices01/barber-agenda/internal/dates"
	"github.com/BruksfildServices01/barber-agenda/internal/httperr"
	"github.com/BruksfildServices01/barber-agenda/internal/models"
	availuc "github.com/BruksfildServices01/barber-agenda/internal/usecase/availability"
)

// fakeWaitRepo serve a fila e a fonte do resolver ao mesmo tempo: o
// matcher só oferta slot que o motor confirma livre.
type fakeWaitRepo struct {
	entries   []models.WaitlistEntry
	schedules map[string][]string
	bookings  []models.Booking
	nextID    uint
}

func newFakeWaitRepo() *fakeWaitRepo {
	return &fakeWaitRepo{schedules: map[string][]string{}}
}

// ---- waitlist.Repository ----

func (f *fakeWaitRepo) CreateEntry(ctx context.Context, e *models.WaitlistEntry) error {
	f.nextID++
	e.ID = f.nextID
	if e.PublicID == uuid.Nil {
		e.PublicID = uuid.New()
	}
	e.CreatedAt = time.Now()
	f.entries = append(f.entries, *e)
	return nil
}

func (f *fakeWaitRepo) NextWaiting(ctx context.Context, barberID uint, day dates.Day) (*models.WaitlistEntry, error) {
	var best *models.WaitlistEntry
	for i := range f.entries {
		e := &f.entries[i]
		if e.BarberID != barberID || e.Date != string(day) || e.Status != models.WaitlistWaiting {
			continue
		}
		if best == nil || e.Position < best.Position {
			best = e
		}
	}
	if best == nil {
		return nil, nil
	}
	out := *best
	return &out, nil
}

func (f *fakeWaitRepo) NextPosition(ctx context.Context, barberID uint, day dates.Day) (int, error) {
	max := 0
	for _, e := range f.entries {
		if e.BarberID == barberID && e.Date == string(day) && e.Position > max {
			max = e.Position
		}
	}
	return max + 1, nil
}

func (f *fakeWaitRepo) GetEntryByPublicID(ctx context.Context, publicID uuid.UUID) (*models.WaitlistEntry, error) {
	for i := range f.entries {
		if f.entries[i].PublicID == publicID {
			out := f.entries[i]
			return &out, nil
		}
	}
	return nil, httperr.ErrBusiness("waitlist_entry_not_found")
}

func (f *fakeWaitRepo) UpdateEntry(ctx context.Context, e *models.WaitlistEntry) error {
	for i := range f.entries {
		if f.entries[i].ID == e.ID {
			f.entries[i] = *e
			return nil
		}
	}
	return httperr.ErrBusiness("waitlist_entry_not_found")
}

func (f *fakeWaitRepo) ListEntries(ctx context.Context, barberID uint, day dates.Day) ([]models.WaitlistEntry, error) {
	var out []models.WaitlistEntry
	for _, e := range f.entries {
		if e.BarberID == barberID && e.Date == string(day) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeWaitRepo) ListExpiredOffers(ctx context.Context, now time.Time) ([]models.WaitlistEntry, error) {
	var out []models.WaitlistEntry
	for _, e := range f.entries {
		if e.Status == models.WaitlistOffered && e.OfferExpiresAt != nil && now.After(*e.OfferExpiresAt) {
			out = append(out, e)
		}
	}
	return out, nil
}

// ---- availability.Repository (fonte do resolver) ----

func (f *fakeWaitRepo) GetBarber(ctx context.Context, id uint) (*models.User, error) {
	return &models.User{ID: id, Active: true}, nil
}
func (f *fakeWaitRepo) GetWorkingHours(ctx context.Context, barberID uint, weekday int) (*models.WorkingHours, error) {
	return nil, nil
}
func (f *fakeWaitRepo) ListWorkingHours(ctx context.Context, barberID uint) ([]models.WorkingHours, error) {
	return nil, nil
}
func (f *fakeWaitRepo) GetDaySchedule(ctx context.Context, barberID uint, day dates.Day) (*models.DaySchedule, error) {
	if slots, ok := f.schedules[string(day)]; ok {
		return &models.DaySchedule{BarberID: barberID, Date: string(day), Slots: slots}, nil
	}
	return nil, nil
}
func (f *fakeWaitRepo) ListDaySchedules(ctx context.Context, barberID uint, from, to dates.Day) ([]models.DaySchedule, error) {
	var out []models.DaySchedule
	for date, slots := range f.schedules {
		if date >= string(from) && date <= string(to) {
			out = append(out, models.DaySchedule{BarberID: barberID, Date: date, Slots: slots})
		}
	}
	return out, nil
}
func (f *fakeWaitRepo) GetRecurringClosure(ctx context.Context, barberID uint) (*models.RecurringClosure, error) {
	return nil, nil
}
func (f *fakeWaitRepo) ListDateClosures(ctx context.Context, barberID uint, from, to dates.Day) ([]models.DateClosure, error) {
	return nil, nil
}
func (f *fakeWaitRepo) ListRemovedAutoClosures(ctx context.Context, barberID uint, from, to dates.Day) ([]models.RemovedAutoClosure, error) {
	return nil, nil
}
func (f *fakeWaitRepo) ListActiveBookings(ctx context.Context, barberID uint, from, to dates.Day) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range f.bookings {
		if b.BarberID == barberID && b.Date >= string(from) && b.Date <= string(to) &&
			b.Status != models.BookingCancelled {
			out = append(out, b)
		}
	}
	return out, nil
}

var _ domain.Repository = (*fakeWaitRepo)(nil)

type fakeLock struct {
	held map[uint]bool
	deny bool
}

func newFakeLock() *fakeLock { return &fakeLock{held: map[uint]bool{}} }

func (l *fakeLock) Acquire(ctx context.Context, entryID uint, ttl time.Duration) (bool, error) {
	if l.deny || l.held[entryID] {
		return false, nil
	}
	l.held[entryID] = true
	return true, nil
}

func (l *fakeLock) Release(ctx context.Context, entryID uint) error {
	delete(l.held, entryID)
	return nil
}

type fakeNotifier struct {
	offers []string
}

func (n *fakeNotifier) OfferCreated(ctx context.Context, e *models.WaitlistEntry, slot string) error {
	n.offers = append(n.offers, e.ClientName+"@"+slot)
	return nil
}

func noopAudit() *audit.Dispatcher {
	return audit.NewDispatcher(nil)
}

func fixedNow() time.Time {
	return time.Date(2025, 10, 29, 12, 0, 0, 0, time.UTC)
}

func newMatcher(repo *fakeWaitRepo, lock *fakeLock, n *fakeNotifier) *Matcher {
	m := NewMatcher(
		repo,
		availuc.NewResolve(repo, zerolog.Nop()),
		lock, n, 15*time.Minute, zerolog.Nop(),
	)
	m.now = fixedNow
	return m
}

func join(t *testing.T, repo *fakeWaitRepo, name string) *models.WaitlistEntry {
	t.Helper()
	uc := NewJoin(repo, noopAudit())
	e, err := uc.Execute(context.Background(), JoinInput{
		BarbershopID: 1, BarberID: 3, Date: "2025-10-30", ClientName: name,
	})
	require.NoError(t, err)
	return e
}

func TestJoinAssignsFIFOPositions(t *testing.T) {
	repo := newFakeWaitRepo()

	e1 := join(t, repo, "João")
	e2 := join(t, repo, "Pedro")

	assert.Equal(t, 1, e1.Position)
	assert.Equal(t, 2, e2.Position)
	assert.Equal(t, models.WaitlistWaiting, e1.Status)
}

func TestSlotFreedOffersToHead(t *testing.T) {
	repo := newFakeWaitRepo()
	repo.schedules["2025-10-30"] = []string{"10:00", "11:00"}
	join(t, repo, "João")
	join(t, repo, "Pedro")

	lock := newFakeLock()
	notifier := &fakeNotifier{}
	m := newMatcher(repo, lock, notifier)

	m.SlotFreed(context.Background(), 3, "2025-10-30", "10:00")

	head := repo.entries[0]
	assert.Equal(t, models.WaitlistOffered, head.Status)
	assert.Equal(t, "10:00", head.OfferTime)
	require.NotNil(t, head.OfferExpiresAt)
	assert.Equal(t, fixedNow().Add(15*time.Minute), *head.OfferExpiresAt)
	assert.Equal(t, []string{"João@10:00"}, notifier.offers)
	assert.True(t, lock.held[head.ID])

	assert.Equal(t, models.WaitlistWaiting, repo.entries[1].Status,
		"oferta é estritamente FIFO, um slot por vez")
}

func TestSlotFreedIgnoresTakenSlot(t *testing.T) {
	repo := newFakeWaitRepo()
	repo.schedules["2025-10-30"] = []string{"10:00"}
	repo.bookings = []models.Booking{
		{BarberID: 3, Date: "2025-10-30", Time: "10:00", Status: models.BookingConfirmed},
	}
	join(t, repo, "João")

	m := newMatcher(repo, newFakeLock(), &fakeNotifier{})
	m.SlotFreed(context.Background(), 3, "2025-10-30", "10:00")

	assert.Equal(t, models.WaitlistWaiting, repo.entries[0].Status,
		"slot retomado entre o evento e o match não gera oferta")
}

func TestSlotFreedEmptyQueue(t *testing.T) {
	repo := newFakeWaitRepo()
	repo.schedules["2025-10-30"] = []string{"10:00"}

	m := newMatcher(repo, newFakeLock(), &fakeNotifier{})
	m.SlotFreed(context.Background(), 3, "2025-10-30", "10:00")
	assert.Empty(t, repo.entries)
}

func TestSlotFreedLockDenied(t *testing.T) {
	repo := newFakeWaitRepo()
	repo.schedules["2025-10-30"] = []string{"10:00"}
	join(t, repo, "João")

	lock := newFakeLock()
	lock.deny = true
	m := newMatcher(repo, lock, &fakeNotifier{})
	m.SlotFreed(context.Background(), 3, "2025-10-30", "10:00")

	assert.Equal(t, models.WaitlistWaiting, repo.entries[0].Status,
		"matcher concorrente com o lock fica com a oferta")
}

func TestDayReopenedOffersAcrossQueue(t *testing.T) {
	repo := newFakeWaitRepo()
	repo.schedules["2025-10-30"] = []string{"09:00", "10:00", "11:00"}
	join(t, repo, "João")
	join(t, repo, "Pedro")

	notifier := &fakeNotifier{}
	m := newMatcher(repo, newFakeLock(), notifier)
	m.DayReopened(context.Background(), 3, "2025-10-30")

	assert.Equal(t, []string{"João@09:00", "Pedro@10:00"}, notifier.offers,
		"um slot por entrada, em ordem de fila")
	assert.Equal(t, models.WaitlistOffered, repo.entries[0].Status)
	assert.Equal(t, models.WaitlistOffered, repo.entries[1].Status)
}

func TestExpireSendsEntryToBackOfQueue(t *testing.T) {
	repo := newFakeWaitRepo()
	repo.schedules["2025-10-30"] = []string{"10:00"}
	join(t, repo, "João")
	join(t, repo, "Pedro")

	lock := newFakeLock()
	notifier := &fakeNotifier{}
	m := newMatcher(repo, lock, notifier)
	m.SlotFreed(context.Background(), 3, "2025-10-30", "10:00")
	require.Equal(t, models.WaitlistOffered, repo.entries[0].Status)

	sweep := NewExpireOffers(repo, lock, m, 3, zerolog.Nop())
	sweep.now = func() time.Time { return fixedNow().Add(20 * time.Minute) }
	m.now = sweep.now

	n, err := sweep.Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	// quem deixou a oferta vencer vai para o fim da fila e o slot passa
	// para quem estava atrás
	joao := repo.entries[0]
	assert.Equal(t, models.WaitlistWaiting, joao.Status)
	assert.Equal(t, 1, joao.OfferAttempts)
	assert.Equal(t, 3, joao.Position)
	assert.False(t, lock.held[joao.ID])

	pedro := repo.entries[1]
	assert.Equal(t, models.WaitlistOffered, pedro.Status)
	assert.Equal(t, "10:00", pedro.OfferTime)
	assert.Equal(t, []string{"João@10:00", "Pedro@10:00"}, notifier.offers)
}

func TestExpireWithEmptyQueueRetriesSameEntry(t *testing.T) {
	repo := newFakeWaitRepo()
	repo.schedules["2025-10-30"] = []string{"10:00"}
	join(t, repo, "João")

	lock := newFakeLock()
	notifier := &fakeNotifier{}
	m := newMatcher(repo, lock, notifier)
	m.SlotFreed(context.Background(), 3, "2025-10-30", "10:00")

	sweep := NewExpireOffers(repo, lock, m, 3, zerolog.Nop())
	sweep.now = func() time.Time { return fixedNow().Add(20 * time.Minute) }
	m.now = sweep.now

	_, err := sweep.Execute(context.Background())
	require.NoError(t, err)

	// sozinho na fila, continua sendo o próximo mesmo depois de recuar
	e := repo.entries[0]
	assert.Equal(t, models.WaitlistOffered, e.Status)
	assert.Equal(t, 1, e.OfferAttempts)
	assert.Equal(t, []string{"João@10:00", "João@10:00"}, notifier.offers)
}

func TestExpireDiscardsAtRetryLimit(t *testing.T) {
	repo := newFakeWaitRepo()
	repo.schedules["2025-10-30"] = []string{"10:00"}
	join(t, repo, "João")
	join(t, repo, "Pedro")

	lock := newFakeLock()
	notifier := &fakeNotifier{}
	m := newMatcher(repo, lock, notifier)
	sweep := NewExpireOffers(repo, lock, m, 1, zerolog.Nop())
	sweep.now = func() time.Time { return fixedNow().Add(20 * time.Minute) }

	m.SlotFreed(context.Background(), 3, "2025-10-30", "10:00")

	_, err := sweep.Execute(context.Background())
	require.NoError(t, err)

	// limite 1: João sai da fila e o slot vai para o Pedro
	assert.Equal(t, models.WaitlistExpired, repo.entries[0].Status)
	assert.False(t, lock.held[repo.entries[0].ID])
	assert.Equal(t, models.WaitlistOffered, repo.entries[1].Status)
	assert.Equal(t, []string{"João@10:00", "Pedro@10:00"}, notifier.offers)
}

func TestClaimWithinWindow(t *testing.T) {
	repo := newFakeWaitRepo()
	repo.schedules["2025-10-30"] = []string{"10:00"}
	e := join(t, repo, "João")

	lock := newFakeLock()
	m := newMatcher(repo, lock, &fakeNotifier{})
	m.SlotFreed(context.Background(), 3, "2025-10-30", "10:00")

	claim := NewClaim(repo, lock, noopAudit())
	claim.now = func() time.Time { return fixedNow().Add(5 * time.Minute) }

	got, err := claim.Execute(context.Background(), e.PublicID)
	require.NoError(t, err)
	assert.Equal(t, models.WaitlistBooked, got.Status)
	assert.False(t, lock.held[e.ID])
}

func TestClaimAfterWindow(t *testing.T) {
	repo := newFakeWaitRepo()
	repo.schedules["2025-10-30"] = []string{"10:00"}
	e := join(t, repo, "João")

	lock := newFakeLock()
	m := newMatcher(repo, lock, &fakeNotifier{})
	m.SlotFreed(context.Background(), 3, "2025-10-30", "10:00")

	claim := NewClaim(repo, lock, noopAudit())
	claim.now = func() time.Time { return fixedNow().Add(20 * time.Minute) }

	_, err := claim.Execute(context.Background(), e.PublicID)
	assert.True(t, httperr.IsBusiness(err, "offer_expired"))
}

func TestJoinValidation(t *testing.T) {
	repo := newFakeWaitRepo()
	uc := NewJoin(repo, noopAudit())

	_, err := uc.Execute(context.Background(), JoinInput{
		BarberID: 3, Date: "30/10/2025", ClientName: "João",
	})
	assert.True(t, httperr.IsBusiness(err, "invalid_date"))

	_, err = uc.Execute(context.Background(), JoinInput{
		BarberID: 3, Date: "2025-10-30", PreferredTime: "10h",
	})
	assert.True(t, httperr.IsBusiness(err, "invalid_time"))

	_, err = uc.Execute(context.Background(), JoinInput{
		BarberID: 3, Date: "2025-10-30",
	})
	assert.True(t, httperr.IsBusiness(err, "client_name_required"))
}
