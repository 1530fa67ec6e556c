package models

import "time"

const (
	ClosureFull      = "full"
	ClosureMorning   = "morning"
	ClosureAfternoon = "afternoon"

	ClosureByAdmin  = "admin"
	ClosureBySystem = "system-auto"
)

// DateClosure fecha uma data específica, inteira ou por meio-período.
// Linhas system-auto materializam o fechamento recorrente para datas
// concretas; linhas admin nunca são tocadas pelo job noturno.
type DateClosure struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	BarberID    uint   `gorm:"index:idx_dc_barber_date_type,unique" json:"barber_id"`
	Date        string `gorm:"size:10;index:idx_dc_barber_date_type,unique" json:"date"`
	ClosureType string `gorm:"size:10;index:idx_dc_barber_date_type,unique" json:"closure_type"`
	Reason      string `gorm:"size:255" json:"reason"`
	CreatedBy   string `gorm:"size:20;default:'admin'" json:"created_by"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
