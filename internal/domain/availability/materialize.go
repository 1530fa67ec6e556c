package availability

import (
	"github.com/BruksfildServices01/barber-agenda/internal/dates"
	"github.com/BruksfildServices01/barber-agenda/internal/models"
)

// ClosureKey identifica um fechamento (ou lápide) dentro do horizonte
// de um barbeiro.
type ClosureKey struct {
	Date dates.Day
	Type string
}

// MaterializeClosures é o diff puro do job noturno: dadas as regras
// recorrentes, os fechamentos e lápides já existentes e o horizonte,
// devolve as datas que precisam ganhar um DateClosure full
// system-auto. A aplicação do diff (I/O) fica no usecase.
//
// Propriedades: idempotente (rodar duas vezes devolve diff vazio na
// segunda), nunca ressuscita fechamento com lápide e nunca duplica uma
// linha existente, seja ela admin ou system-auto.
func MaterializeClosures(
	weekdays []int,
	existing map[ClosureKey]bool,
	tombstones map[ClosureKey]bool,
	horizon []dates.Day,
) []dates.Day {

	if len(weekdays) == 0 {
		return nil
	}

	closed := map[int]bool{}
	for _, wd := range weekdays {
		closed[wd] = true
	}

	var out []dates.Day
	for _, day := range horizon {
		if !closed[day.Weekday()] {
			continue
		}

		key := ClosureKey{Date: day, Type: models.ClosureFull}
		if existing[key] || tombstones[key] {
			continue
		}

		out = append(out, day)
	}
	return out
}
