package availability

// SlotStatus é o estado final de um horário candidato.
type SlotStatus struct {
	Time      string `json:"time"`
	Available bool   `json:"available"`
}

// StoredDay espelha o DaySchedule persistido, quando existe.
type StoredDay struct {
	Slots  []string
	DayOff bool
}

// DayInputs reúne as quatro fontes já carregadas para uma data.
type DayInputs struct {
	// Schedule nil = sem linha persistida, cai na grade gerada
	Schedule *StoredDay
	Pattern  Pattern
	Closures Verdict
	Occupied map[string]bool
}

// DayOffMismatch detecta o aviso de integridade "day_off com slots não
// vazios". O chamador loga; a resolução em si trata day off como vencedor.
func DayOffMismatch(s *StoredDay) bool {
	return s != nil && s.DayOff && len(s.Slots) > 0
}

// ResolveDay compõe as fontes na resposta final ordenada, sem efeito
// colateral nenhum.
//
// Decisão registrada: com day_off=true devolvemos a grade candidata
// inteira indisponível (grade acinzentada na UI), não lista vazia.
func ResolveDay(in DayInputs) []SlotStatus {
	var candidates []string
	dayOff := false

	switch {
	case in.Schedule == nil:
		candidates = Grid(in.Pattern)
	case in.Schedule.DayOff:
		// day off vence qualquer slot armazenado por engano
		candidates = Grid(in.Pattern)
		dayOff = true
	default:
		candidates = in.Schedule.Slots
	}

	out := make([]SlotStatus, 0, len(candidates))
	for _, t := range candidates {
		available := !dayOff

		if available {
			if IsMorning(t) {
				available = !in.Closures.MorningClosed
			} else {
				available = !in.Closures.AfternoonClosed
			}
		}

		if available && in.Occupied[t] {
			available = false
		}

		out = append(out, SlotStatus{Time: t, Available: available})
	}
	return out
}

// Summary agrega o resultado de um dia para a consulta em lote.
type Summary struct {
	HasSlots       bool         `json:"hasSlots"`
	AvailableCount int          `json:"availableCount"`
	TotalSlots     int          `json:"totalSlots"`
	Slots          []SlotStatus `json:"slots,omitempty"`
}

func Summarize(slots []SlotStatus) Summary {
	s := Summary{TotalSlots: len(slots), Slots: slots}
	for _, sl := range slots {
		if sl.Available {
			s.AvailableCount++
		}
	}
	s.HasSlots = s.AvailableCount > 0
	return s
}
