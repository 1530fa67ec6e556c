package availability

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var weekdayPattern = Pattern{
	Start: "09:00", End: "18:00",
	LunchStart: "12:00", LunchEnd: "14:00",
	SlotMinutes: 30, Active: true,
}

func availableTimes(slots []SlotStatus) []string {
	var out []string
	for _, s := range slots {
		if s.Available {
			out = append(out, s.Time)
		}
	}
	return out
}

func TestResolveDay(t *testing.T) {
	t.Run("fallback na grade gerada quando não há schedule", func(t *testing.T) {
		got := ResolveDay(DayInputs{Pattern: weekdayPattern})
		require.NotEmpty(t, got)
		assert.Equal(t, "09:00", got[0].Time)
		assert.Equal(t, len(got), len(availableTimes(got)))
	})

	t.Run("schedule armazenado ignora a grade gerada", func(t *testing.T) {
		got := ResolveDay(DayInputs{
			Schedule: &StoredDay{Slots: []string{"10:00", "16:00"}},
			Pattern:  weekdayPattern,
		})
		require.Len(t, got, 2)
		assert.Equal(t, []string{"10:00", "16:00"}, availableTimes(got))
	})

	t.Run("day off devolve a grade inteira indisponível", func(t *testing.T) {
		got := ResolveDay(DayInputs{
			Schedule: &StoredDay{DayOff: true},
			Pattern:  weekdayPattern,
		})
		require.NotEmpty(t, got)
		assert.Empty(t, availableTimes(got))
	})

	t.Run("fechamento da manhã derruba só horários antes do corte", func(t *testing.T) {
		got := ResolveDay(DayInputs{
			Schedule: &StoredDay{Slots: []string{"09:00", "11:30", "14:00", "17:30"}},
			Closures: Verdict{MorningClosed: true},
		})
		assert.Equal(t, []string{"14:00", "17:30"}, availableTimes(got))
	})

	t.Run("fechamento total derruba tudo preservando a ordem", func(t *testing.T) {
		got := ResolveDay(DayInputs{
			Schedule: &StoredDay{Slots: []string{"09:00", "14:00"}},
			Closures: Verdict{MorningClosed: true, AfternoonClosed: true},
		})
		require.Len(t, got, 2)
		assert.Equal(t, "09:00", got[0].Time)
		assert.Equal(t, "14:00", got[1].Time)
		assert.Empty(t, availableTimes(got))
	})

	t.Run("reserva ocupa o slot", func(t *testing.T) {
		got := ResolveDay(DayInputs{
			Schedule: &StoredDay{Slots: []string{"09:00", "10:00", "11:00"}},
			Occupied: map[string]bool{"10:00": true},
		})
		assert.Equal(t, []string{"09:00", "11:00"}, availableTimes(got))
		assert.False(t, got[1].Available)
	})

	t.Run("fechamento e ocupação compõem", func(t *testing.T) {
		got := ResolveDay(DayInputs{
			Schedule: &StoredDay{Slots: []string{"09:00", "15:00", "16:00"}},
			Closures: Verdict{AfternoonClosed: true},
			Occupied: map[string]bool{"09:00": true},
		})
		assert.Empty(t, availableTimes(got))
	})
}

func TestDayOffMismatch(t *testing.T) {
	assert.True(t, DayOffMismatch(&StoredDay{DayOff: true, Slots: []string{"09:00"}}))
	assert.False(t, DayOffMismatch(&StoredDay{DayOff: true}))
	assert.False(t, DayOffMismatch(&StoredDay{Slots: []string{"09:00"}}))
	assert.False(t, DayOffMismatch(nil))
}

func TestSummarize(t *testing.T) {
	s := Summarize([]SlotStatus{
		{Time: "09:00", Available: true},
		{Time: "09:30", Available: false},
		{Time: "10:00", Available: true},
	})
	assert.True(t, s.HasSlots)
	assert.Equal(t, 2, s.AvailableCount)
	assert.Equal(t, 3, s.TotalSlots)

	empty := Summarize(nil)
	assert.False(t, empty.HasSlots)
	assert.Equal(t, 0, empty.TotalSlots)
}
