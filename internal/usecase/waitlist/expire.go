package waitlist

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	domain "github.com/BruksfildServices01/barber-agenda/internal/domain/waitlist"
	"github.com/BruksfildServices01/barber-agenda/internal/dates"
)

// ExpireOffers é o sweep periódico de ofertas vencidas: devolve a
// entrada para o FIM da fila (ou a descarta no limite de tentativas) e
// reoferta o slot liberado para quem ficou na frente. Quem não responde
// não segura o slot por mais de uma janela.
type ExpireOffers struct {
	repo       domain.Repository
	lock       domain.OfferLock
	matcher    *Matcher
	retryLimit int
	log        zerolog.Logger
	now        func() time.Time
}

func NewExpireOffers(
	repo domain.Repository,
	lock domain.OfferLock,
	matcher *Matcher,
	retryLimit int,
	log zerolog.Logger,
) *ExpireOffers {
	return &ExpireOffers{
		repo:       repo,
		lock:       lock,
		matcher:    matcher,
		retryLimit: retryLimit,
		log:        log,
		now:        time.Now,
	}
}

// Execute devolve quantas ofertas expiraram nesta rodada.
func (uc *ExpireOffers) Execute(ctx context.Context) (int, error) {
	expired, err := uc.repo.ListExpiredOffers(ctx, uc.now())
	if err != nil {
		return 0, err
	}

	n := 0
	for i := range expired {
		e := &expired[i]
		freedSlot := e.OfferTime

		if err := domain.Expire(e, uc.retryLimit); err != nil {
			uc.log.Warn().Err(err).
				Uint("entry_id", e.ID).
				Msg("expire skipped, entry changed state")
			continue
		}

		// oferta recusada manda a entrada para o fim da fila: a próxima
		// posição recebe a vez
		if e.Status == string(domain.StatusWaiting) {
			pos, err := uc.repo.NextPosition(ctx, e.BarberID, dates.Day(e.Date))
			if err != nil {
				uc.log.Error().Err(err).
					Uint("entry_id", e.ID).
					Msg("requeue position failed, continuing")
				continue
			}
			e.Position = pos
		}

		if err := uc.repo.UpdateEntry(ctx, e); err != nil {
			uc.log.Error().Err(err).
				Uint("entry_id", e.ID).
				Msg("expire update failed, continuing")
			continue
		}
		uc.lock.Release(ctx, e.ID)
		n++

		// o slot recusado volta para a próxima da fila
		if uc.matcher != nil && freedSlot != "" {
			uc.matcher.SlotFreed(ctx, e.BarberID, dates.Day(e.Date), freedSlot)
		}
	}

	if n > 0 {
		uc.log.Info().Int("expired", n).Msg("waitlist offer sweep done")
	}
	return n, nil
}
