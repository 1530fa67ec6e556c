package availability

import (
	"encoding/json"
	"fmt"

	"github.com/BruksfildServices01/barber-agenda/internal/models"
)

// Verdict é o resultado do resolver de fechamentos para um
// (barbeiro, data): qual meio-período está fechado.
type Verdict struct {
	MorningClosed   bool
	AfternoonClosed bool
}

func (v Verdict) FullyClosed() bool {
	return v.MorningClosed && v.AfternoonClosed
}

// ClosureInputs reúne tudo que o fold de regras precisa para uma data,
// já carregado pelas camadas de cima.
type ClosureInputs struct {
	Weekday           int
	RecurringWeekdays []int
	// Tipos de lápide existentes para a data exata
	Tombstones []string
	// Tipos de DateClosure existentes para a data exata
	DateClosures []string
}

// rule é um avaliador parcial: recebe o veredito acumulado e devolve o
// novo. A precedência é a ordem da lista, dobrada da esquerda para a
// direita.
type rule func(in ClosureInputs, v Verdict) Verdict

var closureRules = []rule{recurringRule, dateClosureRule}

// ResolveClosures dobra as regras de fechamento na ordem de
// precedência: recorrente (suprimível por lápide) e depois fechamentos
// da data exata, que sempre valem.
func ResolveClosures(in ClosureInputs) Verdict {
	var v Verdict
	for _, r := range closureRules {
		v = r(in, v)
	}
	return v
}

func hasType(types []string, t string) bool {
	for _, x := range types {
		if x == t {
			return true
		}
	}
	return false
}

// recurringRule fecha os dois períodos quando o dia da semana está no
// conjunto recorrente — exceto o período coberto por lápide, que fica
// aberto (a remoção explícita do admin vence a regra recorrente só
// naquela data).
func recurringRule(in ClosureInputs, v Verdict) Verdict {
	closed := false
	for _, wd := range in.RecurringWeekdays {
		if wd == in.Weekday {
			closed = true
			break
		}
	}
	if !closed {
		return v
	}

	full := hasType(in.Tombstones, models.ClosureFull)
	if !full && !hasType(in.Tombstones, models.ClosureMorning) {
		v.MorningClosed = true
	}
	if !full && !hasType(in.Tombstones, models.ClosureAfternoon) {
		v.AfternoonClosed = true
	}
	return v
}

// dateClosureRule aplica os fechamentos da data exata. Lápides nunca
// suprimem uma linha viva de DateClosure, só a re-materialização.
func dateClosureRule(in ClosureInputs, v Verdict) Verdict {
	for _, t := range in.DateClosures {
		switch t {
		case models.ClosureFull:
			v.MorningClosed = true
			v.AfternoonClosed = true
		case models.ClosureMorning:
			v.MorningClosed = true
		case models.ClosureAfternoon:
			v.AfternoonClosed = true
		}
	}
	return v
}

// ParseWeekdays decodifica o JSON cru do RecurringClosure. Erro aqui é
// aviso de integridade: o chamador loga e segue como "sem fechamento
// recorrente" (fail open para visibilidade).
func ParseWeekdays(raw string) ([]int, error) {
	if raw == "" {
		return nil, nil
	}
	var out []int
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return nil, fmt.Errorf("malformed weekdays %q: %w", raw, err)
	}
	for _, wd := range out {
		if wd < 0 || wd > 6 {
			return nil, fmt.Errorf("malformed weekdays %q: out of range", raw)
		}
	}
	return out, nil
}
