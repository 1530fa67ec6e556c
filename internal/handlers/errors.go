package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-agenda/internal/httperr"
)

// respondBusiness traduz o código de negócio do usecase no status HTTP
// certo. Erro que não é de negócio nunca vaza detalhe para o cliente.
func respondBusiness(c *gin.Context, err error) {
	var be httperr.BusinessError
	if !errors.As(err, &be) {
		httperr.Internal(c, "internal_error", "Erro interno.")
		return
	}

	switch be.Code {
	case "barbershop_not_found",
		"barber_not_found",
		"service_not_found",
		"booking_not_found",
		"closure_not_found",
		"waitlist_entry_not_found":
		httperr.NotFound(c, be.Code, messageFor(be.Code))

	case "time_conflict",
		"slot_unavailable",
		"closure_exists",
		"invalid_state",
		"offer_expired":
		httperr.Conflict(c, be.Code, messageFor(be.Code))

	default:
		httperr.BadRequest(c, be.Code, messageFor(be.Code))
	}
}

func messageFor(code string) string {
	switch code {
	case "barbershop_not_found":
		return "Barbearia não encontrada."
	case "barber_not_found":
		return "Barbeiro não encontrado."
	case "service_not_found":
		return "Serviço não encontrado."
	case "booking_not_found":
		return "Reserva não encontrada."
	case "closure_not_found":
		return "Fechamento não encontrado."
	case "waitlist_entry_not_found":
		return "Entrada da fila não encontrada."
	case "time_conflict":
		return "Horário acabou de ser reservado."
	case "slot_unavailable":
		return "Horário indisponível."
	case "closure_exists":
		return "Fechamento já cadastrado para essa data."
	case "invalid_state":
		return "Operação inválida para o estado atual."
	case "offer_expired":
		return "A oferta expirou."
	case "too_soon":
		return "Horário muito em cima da hora."
	case "invalid_date":
		return "Data inválida."
	case "invalid_time":
		return "Horário inválido."
	case "day_off_mismatch":
		return "Dia de folga não pode ter horários."
	default:
		return "Dados inválidos."
	}
}
