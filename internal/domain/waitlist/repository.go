package waitlist

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/barber-agenda/internal/dates"
	"github.com/BruksfildServices01/barber-agenda/internal/models"
)

type Repository interface {
	CreateEntry(
		ctx context.Context,
		e *models.WaitlistEntry,
	) error

	// NextWaiting devolve a entrada waiting mais antiga do
	// (barbeiro, data): menor position, desempate por created_at.
	// nil quando a fila está vazia.
	NextWaiting(
		ctx context.Context,
		barberID uint,
		day dates.Day,
	) (*models.WaitlistEntry, error)

	NextPosition(
		ctx context.Context,
		barberID uint,
		day dates.Day,
	) (int, error)

	GetEntryByPublicID(
		ctx context.Context,
		publicID uuid.UUID,
	) (*models.WaitlistEntry, error)

	UpdateEntry(
		ctx context.Context,
		e *models.WaitlistEntry,
	) error

	ListEntries(
		ctx context.Context,
		barberID uint,
		day dates.Day,
	) ([]models.WaitlistEntry, error)

	ListExpiredOffers(
		ctx context.Context,
		now time.Time,
	) ([]models.WaitlistEntry, error)
}

// OfferLock garante no máximo uma oferta viva por entrada entre
// processos concorrentes (implementação redis em internal/cache).
type OfferLock interface {
	Acquire(ctx context.Context, entryID uint, ttl time.Duration) (bool, error)
	Release(ctx context.Context, entryID uint) error
}

// Notifier é o porto de saída para o envio da oferta (push/email),
// fora do escopo do motor.
type Notifier interface {
	OfferCreated(ctx context.Context, e *models.WaitlistEntry, slot string) error
}
