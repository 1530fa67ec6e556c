package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	WaitlistWaiting = "waiting"
	WaitlistOffered = "offered"
	WaitlistBooked  = "booked"
	WaitlistExpired = "expired"
)

// WaitlistEntry é a fila de espera por (barbeiro, data), FIFO por
// Position com desempate por CreatedAt. OfferExpiresAt só tem valor
// enquanto status=offered.
type WaitlistEntry struct {
	ID       uint      `gorm:"primaryKey" json:"id"`
	PublicID uuid.UUID `gorm:"type:uuid;uniqueIndex" json:"public_id"`

	BarbershopID uint   `json:"barbershop_id"`
	BarberID     uint   `gorm:"index:idx_wl_barber_date" json:"barber_id"`
	Date         string `gorm:"size:10;index:idx_wl_barber_date" json:"date"`

	PreferredTime string `gorm:"size:5" json:"preferred_time"`

	ClientName  string `gorm:"size:100;not null" json:"client_name"`
	ClientPhone string `gorm:"size:20" json:"client_phone"`

	Status        string     `gorm:"size:20;default:'waiting'" json:"status"`
	Position      int        `json:"position"`
	OfferTime     string     `gorm:"size:5" json:"offer_time"`
	OfferExpiresAt *time.Time `json:"offer_expires_at"`
	OfferAttempts int        `json:"offer_attempts"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (w *WaitlistEntry) BeforeCreate(tx *gorm.DB) error {
	if w.PublicID == uuid.Nil {
		w.PublicID = uuid.New()
	}
	return nil
}
