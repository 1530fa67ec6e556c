package availability

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGrid(t *testing.T) {
	tests := []struct {
		name    string
		pattern Pattern
		want    []string
	}{
		{
			name: "duas bandas com almoço",
			pattern: Pattern{
				Start: "09:00", End: "18:00",
				LunchStart: "12:30", LunchEnd: "15:00",
				SlotMinutes: 30, Active: true,
			},
			want: []string{
				"09:00", "09:30", "10:00", "10:30", "11:00", "11:30", "12:00",
				"15:00", "15:30", "16:00", "16:30", "17:00", "17:30",
			},
		},
		{
			name: "banda única sem almoço",
			pattern: Pattern{
				Start: "10:00", End: "12:00",
				SlotMinutes: 30, Active: true,
			},
			want: []string{"10:00", "10:30", "11:00", "11:30"},
		},
		{
			name: "granularidade 60",
			pattern: Pattern{
				Start: "09:00", End: "12:00",
				SlotMinutes: 60, Active: true,
			},
			want: []string{"09:00", "10:00", "11:00"},
		},
		{
			name: "granularidade zero usa default",
			pattern: Pattern{
				Start: "09:00", End: "10:00",
				Active: true,
			},
			want: []string{"09:00", "09:30"},
		},
		{
			name: "banda da manhã com largura zero",
			pattern: Pattern{
				Start: "09:00", End: "18:00",
				LunchStart: "09:00", LunchEnd: "14:00",
				SlotMinutes: 30, Active: true,
			},
			want: []string{"14:00", "14:30", "15:00", "15:30", "16:00", "16:30", "17:00", "17:30"},
		},
		{
			name:    "padrão inativo",
			pattern: Pattern{Start: "09:00", End: "18:00", SlotMinutes: 30},
			want:    nil,
		},
		{
			name:    "dia ausente do padrão",
			pattern: Pattern{},
			want:    nil,
		},
		{
			name: "slot não cabe na banda",
			pattern: Pattern{
				Start: "09:00", End: "09:20",
				SlotMinutes: 30, Active: true,
			},
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Grid(tt.pattern))
		})
	}
}

func TestGridDeterministic(t *testing.T) {
	p := Pattern{
		Start: "09:00", End: "18:00",
		LunchStart: "13:00", LunchEnd: "14:00",
		SlotMinutes: 30, Active: true,
	}
	assert.Equal(t, Grid(p), Grid(p))
}

func TestPatternFrom(t *testing.T) {
	assert.Equal(t, Pattern{}, PatternFrom(nil))
}

func TestIsMorning(t *testing.T) {
	assert.True(t, IsMorning("09:00"))
	assert.True(t, IsMorning("13:59"))
	assert.False(t, IsMorning("14:00"))
	assert.False(t, IsMorning("18:30"))
}
