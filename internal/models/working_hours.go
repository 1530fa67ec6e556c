package models

import "time"

// WorkingHours é o padrão semanal nominal do barbeiro: um registro por
// dia da semana (0=domingo..6=sábado). O almoço divide o dia nas bandas
// da manhã e da tarde; sem almoço, banda única.
type WorkingHours struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	BarberID uint `gorm:"index:idx_wh_barber_weekday,unique" json:"barber_id"`

	Weekday int `gorm:"index:idx_wh_barber_weekday,unique" json:"weekday"`

	StartTime   string `gorm:"size:5" json:"start_time"`
	EndTime     string `gorm:"size:5" json:"end_time"`
	LunchStart  string `gorm:"size:5" json:"lunch_start"`
	LunchEnd    string `gorm:"size:5" json:"lunch_end"`
	SlotMinutes int    `gorm:"default:30" json:"slot_minutes"`
	Active      bool   `json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
