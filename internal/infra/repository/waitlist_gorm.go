package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/barber-agenda/internal/domain/waitlist"
	"github.com/BruksfildServices01/barber-agenda/internal/dates"
	"github.com/BruksfildServices01/barber-agenda/internal/httperr"
	"github.com/BruksfildServices01/barber-agenda/internal/models"
)

type WaitlistGormRepository struct {
	db *gorm.DB
}

func NewWaitlistGormRepository(db *gorm.DB) *WaitlistGormRepository {
	return &WaitlistGormRepository{db: db}
}

func (r *WaitlistGormRepository) CreateEntry(
	ctx context.Context,
	e *models.WaitlistEntry,
) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *WaitlistGormRepository) NextWaiting(
	ctx context.Context,
	barberID uint,
	day dates.Day,
) (*models.WaitlistEntry, error) {

	var e models.WaitlistEntry
	if err := r.db.WithContext(ctx).
		Where(
			"barber_id = ? AND date = ? AND status = ?",
			barberID, string(day), models.WaitlistWaiting,
		).
		Order("position ASC, created_at ASC").
		First(&e).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &e, nil
}

func (r *WaitlistGormRepository) NextPosition(
	ctx context.Context,
	barberID uint,
	day dates.Day,
) (int, error) {

	var max int
	if err := r.db.WithContext(ctx).
		Model(&models.WaitlistEntry{}).
		Where("barber_id = ? AND date = ?", barberID, string(day)).
		Select("COALESCE(MAX(position), 0)").
		Scan(&max).Error; err != nil {
		return 0, err
	}
	return max + 1, nil
}

func (r *WaitlistGormRepository) GetEntryByPublicID(
	ctx context.Context,
	publicID uuid.UUID,
) (*models.WaitlistEntry, error) {

	var e models.WaitlistEntry
	if err := r.db.WithContext(ctx).
		Where("public_id = ?", publicID).
		First(&e).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("waitlist_entry_not_found")
		}
		return nil, err
	}
	return &e, nil
}

func (r *WaitlistGormRepository) UpdateEntry(
	ctx context.Context,
	e *models.WaitlistEntry,
) error {
	return r.db.WithContext(ctx).Save(e).Error
}

func (r *WaitlistGormRepository) ListEntries(
	ctx context.Context,
	barberID uint,
	day dates.Day,
) ([]models.WaitlistEntry, error) {

	var out []models.WaitlistEntry
	if err := r.db.WithContext(ctx).
		Where("barber_id = ? AND date = ?", barberID, string(day)).
		Order("position ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *WaitlistGormRepository) ListExpiredOffers(
	ctx context.Context,
	now time.Time,
) ([]models.WaitlistEntry, error) {

	var out []models.WaitlistEntry
	if err := r.db.WithContext(ctx).
		Where(
			"status = ? AND offer_expires_at IS NOT NULL AND offer_expires_at < ?",
			models.WaitlistOffered, now,
		).
		Order("offer_expires_at ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// Compile-time check
var _ domain.Repository = (*WaitlistGormRepository)(nil)
