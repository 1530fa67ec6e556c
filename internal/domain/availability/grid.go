package availability

import (
	"github.com/BruksfildServices01/barber-agenda/internal/dates"
	"github.com/BruksfildServices01/barber-agenda/internal/models"
)

const DefaultSlotMinutes = 30

// Pattern é o padrão nominal de um dia da semana, já validado na
// escrita (horários "HH:MM"). Sem almoço, o dia é uma banda única.
type Pattern struct {
	Start       string
	End         string
	LunchStart  string
	LunchEnd    string
	SlotMinutes int
	Active      bool
}

// PatternFrom converte o registro persistido no padrão puro do motor.
// wh nil (dia ausente do padrão) vira um padrão inativo.
func PatternFrom(wh *models.WorkingHours) Pattern {
	if wh == nil {
		return Pattern{}
	}
	return Pattern{
		Start:       wh.StartTime,
		End:         wh.EndTime,
		LunchStart:  wh.LunchStart,
		LunchEnd:    wh.LunchEnd,
		SlotMinutes: wh.SlotMinutes,
		Active:      wh.Active,
	}
}

// Grid gera a sequência canônica ordenada de horários candidatos
// ("HH:MM") para um dia com o padrão dado. Função pura e total: mesmo
// padrão, mesma saída. Banda de largura zero não contribui nada;
// padrão inativo ou ausente devolve sequência vazia.
func Grid(p Pattern) []string {
	if !p.Active || p.Start == "" || p.End == "" {
		return nil
	}

	step := p.SlotMinutes
	if step <= 0 {
		step = DefaultSlotMinutes
	}

	start, err := dates.ParseClock(p.Start)
	if err != nil {
		return nil
	}
	end, err := dates.ParseClock(p.End)
	if err != nil {
		return nil
	}

	type band struct{ from, to int }
	bands := []band{{start, end}}

	if p.LunchStart != "" && p.LunchEnd != "" {
		ls, err1 := dates.ParseClock(p.LunchStart)
		le, err2 := dates.ParseClock(p.LunchEnd)
		if err1 == nil && err2 == nil && ls < le {
			bands = []band{{start, ls}, {le, end}}
		}
	}

	var slots []string
	for _, b := range bands {
		for cur := b.from; cur+step <= b.to; cur += step {
			slots = append(slots, dates.FormatClock(cur))
		}
	}
	return slots
}
