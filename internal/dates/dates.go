package dates

import (
	"fmt"
)

// Day é uma data de calendário pura ("2006-01-02"), sem timezone.
// Todo o motor de disponibilidade trabalha com esse tipo para evitar
// os bugs de shift de fuso que aparecem ao converter instantes.
type Day string

var daysInMonth = [13]int{0, 31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

func isLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

func monthLen(year, month int) int {
	if month == 2 && isLeap(year) {
		return 29
	}
	return daysInMonth[month]
}

// Parse valida e normaliza uma string "YYYY-MM-DD".
func Parse(s string) (Day, error) {
	var y, m, d int
	if len(s) != 10 || s[4] != '-' || s[7] != '-' {
		return "", fmt.Errorf("invalid date %q", s)
	}
	if _, err := fmt.Sscanf(string(s), "%4d-%2d-%2d", &y, &m, &d); err != nil {
		return "", fmt.Errorf("invalid date %q", s)
	}
	if y < 1 || m < 1 || m > 12 || d < 1 || d > monthLen(y, m) {
		return "", fmt.Errorf("invalid date %q", s)
	}
	return New(y, m, d), nil
}

// New monta um Day a partir da tripla (ano, mês, dia).
func New(year, month, day int) Day {
	return Day(fmt.Sprintf("%04d-%02d-%02d", year, month, day))
}

// Split devolve a tripla (ano, mês, dia).
func (d Day) Split() (int, int, int) {
	var y, m, dd int
	fmt.Sscanf(string(d), "%4d-%2d-%2d", &y, &m, &dd)
	return y, m, dd
}

// serial converte para número de dias desde 1970-01-01 (aritmética civil,
// sem objetos time.Time).
func (d Day) serial() int {
	y, m, dd := d.Split()
	if m <= 2 {
		y--
	}
	era := y / 400
	if y < 0 {
		era = (y - 399) / 400
	}
	yoe := y - era*400
	mp := (m + 9) % 12
	doy := (153*mp+2)/5 + dd - 1
	doe := yoe*365 + yoe/4 - yoe/100 + doy
	return era*146097 + doe - 719468
}

func fromSerial(z int) Day {
	z += 719468
	era := z / 146097
	if z < 0 {
		era = (z - 146096) / 146097
	}
	doe := z - era*146097
	yoe := (doe - doe/1460 + doe/36524 - doe/146096) / 365
	y := yoe + era*400
	doy := doe - (365*yoe + yoe/4 - yoe/100)
	mp := (5*doy + 2) / 153
	dd := doy - (153*mp+2)/5 + 1
	m := (mp+2)%12 + 1
	if m <= 2 {
		y++
	}
	return New(y, m, dd)
}

// Weekday devolve o dia da semana (0=domingo .. 6=sábado).
func (d Day) Weekday() int {
	s := d.serial()
	// 1970-01-01 foi quinta-feira (4)
	wd := (s%7 + 7 + 4) % 7
	return wd
}

// AddDays devolve a data n dias à frente (ou atrás, se negativo).
func (d Day) AddDays(n int) Day {
	return fromSerial(d.serial() + n)
}

// Range devolve n dias consecutivos a partir de from, inclusive.
func Range(from Day, n int) []Day {
	out := make([]Day, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, from.AddDays(i))
	}
	return out
}

// ParseClock converte "HH:MM" em minutos desde meia-noite.
func ParseClock(s string) (int, error) {
	var h, m int
	if len(s) != 5 || s[2] != ':' {
		return 0, fmt.Errorf("invalid time %q", s)
	}
	if _, err := fmt.Sscanf(s, "%2d:%2d", &h, &m); err != nil {
		return 0, fmt.Errorf("invalid time %q", s)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, fmt.Errorf("invalid time %q", s)
	}
	return h*60 + m, nil
}

// FormatClock converte minutos desde meia-noite em "HH:MM".
func FormatClock(min int) string {
	return fmt.Sprintf("%02d:%02d", min/60, min%60)
}
