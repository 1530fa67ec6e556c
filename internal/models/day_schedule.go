package models

import "time"

// DaySchedule é a lista autoritativa de horários ofertados para um
// (barbeiro, data). Quando a linha existe, a grade gerada pelo padrão
// semanal é ignorada; os vereditos de fechamento ainda se aplicam por
// cima na leitura.
//
// Invariante de escrita: day_off=true implica slots=[].
type DaySchedule struct {
	ID       uint      `gorm:"primaryKey" json:"id"`
	BarberID uint      `gorm:"index:idx_ds_barber_date,unique" json:"barber_id"`
	Date     string    `gorm:"size:10;index:idx_ds_barber_date,unique" json:"date"`
	Slots    []string  `gorm:"serializer:json;type:text" json:"slots"`
	DayOff   bool      `json:"day_off"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
