package availability

import "github.com/BruksfildServices01/barber-agenda/internal/dates"

// HalfDayCutoffHour é o corte único manhã/tarde usado em todo o motor.
// Um horário é "manhã" se a hora for menor que o corte. Nunca derive o
// corte em outro lugar.
const HalfDayCutoffHour = 14

// IsMorning classifica um "HH:MM" em relação ao corte. Horário
// malformado cai na tarde, mas entradas chegam validadas na borda.
func IsMorning(clock string) bool {
	min, err := dates.ParseClock(clock)
	if err != nil {
		return false
	}
	return min/60 < HalfDayCutoffHour
}
