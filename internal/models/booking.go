package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	BookingConfirmed = "confirmed"
	BookingPending   = "pending"
	BookingCancelled = "cancelled"
)

// Booking é a reserva de um slot. Date/Time são strings de calendário
// ("2006-01-02" / "15:04"); reservas canceladas não ocupam slot.
//
// O índice único parcial (barber_id, date, time) WHERE status <>
// 'cancelled' é criado por SQL cru em internal/db.
type Booking struct {
	ID       uint      `gorm:"primaryKey" json:"id"`
	PublicID uuid.UUID `gorm:"type:uuid;uniqueIndex" json:"public_id"`

	BarbershopID uint `json:"barbershop_id"`
	BarberID     uint `gorm:"index:idx_bk_barber_date" json:"barber_id"`

	ClientID uint   `json:"client_id"`
	Client   Client `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"client"`

	ServiceID uint    `json:"service_id"`
	Service   Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"service"`

	Date        string `gorm:"size:10;index:idx_bk_barber_date" json:"date"`
	Time        string `gorm:"size:5" json:"time"`
	DurationMin int    `json:"duration_min"`

	Status string `gorm:"size:20;default:'confirmed'" json:"status"`

	Notes       string     `gorm:"size:255" json:"notes"`
	CancelledAt *time.Time `json:"cancelled_at"`
	CompletedAt *time.Time `json:"completed_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (b *Booking) BeforeCreate(tx *gorm.DB) error {
	if b.PublicID == uuid.Nil {
		b.PublicID = uuid.New()
	}
	return nil
}
