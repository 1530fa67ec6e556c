package models

import "time"

// RemovedAutoClosure é a lápide criada quando o admin apaga um
// DateClosure system-auto. Presença = "não recriar este fechamento
// para esta data". Nunca é apagada.
type RemovedAutoClosure struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	BarberID    uint   `gorm:"index:idx_rac_barber_date_type,unique" json:"barber_id"`
	Date        string `gorm:"size:10;index:idx_rac_barber_date_type,unique" json:"date"`
	ClosureType string `gorm:"size:10;index:idx_rac_barber_date_type,unique" json:"closure_type"`

	CreatedAt time.Time `json:"created_at"`
}
