package models

import "time"

// RecurringClosure guarda os dias da semana fechados toda semana, no
// máximo um registro por barbeiro. Weekdays é JSON cru ("[0,4]") lido
// com fail-open: JSON malformado vale como "sem fechamento recorrente".
type RecurringClosure struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	BarberID uint   `gorm:"uniqueIndex" json:"barber_id"`
	Weekdays string `gorm:"type:text" json:"weekdays"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
