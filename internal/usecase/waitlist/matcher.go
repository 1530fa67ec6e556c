package waitlist

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	domain "github.com/BruksfildServices01/barber-agenda/internal/domain/waitlist"
	"github.com/BruksfildServices01/barber-agenda/internal/dates"
	availuc "github.com/BruksfildServices01/barber-agenda/internal/usecase/availability"
)

// Matcher casa slots liberados com a cabeça da fila. As ofertas são
// estritamente FIFO: a preferência de horário da entrada é dica para a
// notificação, nunca critério de fura-fila.
type Matcher struct {
	repo     domain.Repository
	resolver *availuc.Resolve
	lock     domain.OfferLock
	notifier domain.Notifier
	ttl      time.Duration
	log      zerolog.Logger
	now      func() time.Time
}

func NewMatcher(
	repo domain.Repository,
	resolver *availuc.Resolve,
	lock domain.OfferLock,
	notifier domain.Notifier,
	ttl time.Duration,
	log zerolog.Logger,
) *Matcher {
	return &Matcher{
		repo:     repo,
		resolver: resolver,
		lock:     lock,
		notifier: notifier,
		ttl:      ttl,
		log:      log,
		now:      time.Now,
	}
}

// SlotFreed tenta ofertar o horário recém-liberado. Falha aqui nunca
// propaga para o cancelamento que liberou o slot: só loga.
func (m *Matcher) SlotFreed(
	ctx context.Context,
	barberID uint,
	day dates.Day,
	slot string,
) {
	if err := m.offerSlot(ctx, barberID, day, slot); err != nil {
		m.log.Error().Err(err).
			Uint("barber_id", barberID).
			Str("date", string(day)).
			Str("slot", slot).
			Msg("waitlist offer failed")
	}
}

// DayReopened varre os horários disponíveis do dia reaberto e oferta um
// por entrada, até esgotar a fila ou os slots.
func (m *Matcher) DayReopened(
	ctx context.Context,
	barberID uint,
	day dates.Day,
) {
	slots, err := m.resolver.Execute(ctx, barberID, day)
	if err != nil {
		m.log.Error().Err(err).
			Uint("barber_id", barberID).
			Str("date", string(day)).
			Msg("waitlist reopen resolve failed")
		return
	}

	for _, s := range slots {
		if !s.Available {
			continue
		}
		offered, err := m.tryOffer(ctx, barberID, day, s.Time)
		if err != nil {
			m.log.Error().Err(err).
				Str("slot", s.Time).
				Msg("waitlist offer failed on reopen")
			continue
		}
		if !offered {
			// fila vazia: nada mais a fazer neste dia
			return
		}
	}
}

func (m *Matcher) offerSlot(
	ctx context.Context,
	barberID uint,
	day dates.Day,
	slot string,
) error {

	// o slot pode já ter sido tomado entre o evento e agora
	slots, err := m.resolver.Execute(ctx, barberID, day)
	if err != nil {
		return err
	}
	free := false
	for _, s := range slots {
		if s.Time == slot && s.Available {
			free = true
			break
		}
	}
	if !free {
		return nil
	}

	_, err = m.tryOffer(ctx, barberID, day, slot)
	return err
}

// tryOffer oferta o slot à cabeça da fila. Devolve false quando não há
// entrada waiting.
func (m *Matcher) tryOffer(
	ctx context.Context,
	barberID uint,
	day dates.Day,
	slot string,
) (bool, error) {

	e, err := m.repo.NextWaiting(ctx, barberID, day)
	if err != nil {
		return false, err
	}
	if e == nil {
		return false, nil
	}

	// exclusão entre processos: um matcher concorrente que perder o
	// lock deixa a entrada para a próxima rodada
	ok, err := m.lock.Acquire(ctx, e.ID, m.ttl)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, nil
	}

	if err := domain.Offer(e, slot, m.now(), m.ttl); err != nil {
		m.lock.Release(ctx, e.ID)
		return false, err
	}
	if err := m.repo.UpdateEntry(ctx, e); err != nil {
		m.lock.Release(ctx, e.ID)
		return false, err
	}

	if m.notifier != nil {
		if err := m.notifier.OfferCreated(ctx, e, slot); err != nil {
			// oferta gravada vale mesmo sem notificação: expira sozinha
			m.log.Warn().Err(err).
				Uint("entry_id", e.ID).
				Msg("offer notification failed")
		}
	}

	m.log.Info().
		Uint("entry_id", e.ID).
		Uint("barber_id", barberID).
		Str("date", string(day)).
		Str("slot", slot).
		Msg("waitlist offer created")

	return true, nil
}
