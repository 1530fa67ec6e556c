package notify

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/BruksfildServices01/barber-agenda/internal/models"
)

// LogNotifier registra a oferta no log estruturado. O envio real
// (WhatsApp/SMS) entra aqui quando o canal estiver contratado.
type LogNotifier struct {
	log zerolog.Logger
}

func NewLogNotifier(log zerolog.Logger) *LogNotifier {
	return &LogNotifier{log: log}
}

func (n *LogNotifier) OfferCreated(
	ctx context.Context,
	e *models.WaitlistEntry,
	slot string,
) error {

	n.log.Info().
		Str("public_id", e.PublicID.String()).
		Str("client", e.ClientName).
		Str("phone", e.ClientPhone).
		Str("date", e.Date).
		Str("slot", slot).
		Msg("waitlist offer notification")

	return nil
}
