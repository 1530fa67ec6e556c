package booking

import (
	"github.com/BruksfildServices01/barber-agenda/internal/dates"
	"github.com/BruksfildServices01/barber-agenda/internal/models"
)

// Overlaps testa interseção de dois intervalos [start, start+dur) em
// minutos. Back-to-back (fim == início) não conflita.
func Overlaps(aStart, aDur, bStart, bDur int) bool {
	return aStart < bStart+bDur && bStart < aStart+aDur
}

// HasOverlap checa o horário pretendido contra as reservas ativas do
// dia, cada uma com a própria duração — igualdade exata de horário não
// basta porque os serviços têm duração variável.
func HasOverlap(active []models.Booking, clock string, durationMin int) (bool, error) {
	start, err := dates.ParseClock(clock)
	if err != nil {
		return false, err
	}

	for _, b := range active {
		if Status(b.Status) == StatusCancelled {
			continue
		}
		bStart, err := dates.ParseClock(b.Time)
		if err != nil {
			continue
		}
		dur := b.DurationMin
		if dur <= 0 {
			dur = 30
		}
		if Overlaps(start, durationMin, bStart, dur) {
			return true, nil
		}
	}
	return false, nil
}

// OccupiedTimes projeta as reservas ativas no conjunto de horários
// ocupados usado pelo resolver.
func OccupiedTimes(active []models.Booking) map[string]bool {
	out := make(map[string]bool, len(active))
	for _, b := range active {
		if Status(b.Status).Occupies() {
			out[b.Time] = true
		}
	}
	return out
}
