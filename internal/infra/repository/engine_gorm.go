package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/barber-agenda/internal/domain/availability"
	"github.com/BruksfildServices01/barber-agenda/internal/dates"
	"github.com/BruksfildServices01/barber-agenda/internal/httperr"
	"github.com/BruksfildServices01/barber-agenda/internal/models"
)

// EngineGormRepository é a fonte persistida das cinco camadas do motor
// de disponibilidade. Ausência de linha é estado válido (nil, nil);
// só barbeiro desconhecido e falha real de storage viram erro.
type EngineGormRepository struct {
	db *gorm.DB
}

func NewEngineGormRepository(db *gorm.DB) *EngineGormRepository {
	return &EngineGormRepository{db: db}
}

// --------------------------------------------------
// Barber
// --------------------------------------------------

func (r *EngineGormRepository) GetBarber(
	ctx context.Context,
	barberID uint,
) (*models.User, error) {

	var barber models.User
	if err := r.db.WithContext(ctx).
		Where("id = ? AND active = true", barberID).
		First(&barber).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("barber_not_found")
		}
		return nil, err
	}
	return &barber, nil
}

// --------------------------------------------------
// Working pattern
// --------------------------------------------------

func (r *EngineGormRepository) GetWorkingHours(
	ctx context.Context,
	barberID uint,
	weekday int,
) (*models.WorkingHours, error) {

	var wh models.WorkingHours
	if err := r.db.WithContext(ctx).
		Where("barber_id = ? AND weekday = ?", barberID, weekday).
		First(&wh).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &wh, nil
}

func (r *EngineGormRepository) ListWorkingHours(
	ctx context.Context,
	barberID uint,
) ([]models.WorkingHours, error) {

	var whs []models.WorkingHours
	if err := r.db.WithContext(ctx).
		Where("barber_id = ?", barberID).
		Order("weekday ASC").
		Find(&whs).Error; err != nil {
		return nil, err
	}
	return whs, nil
}

// --------------------------------------------------
// Schedule store
// --------------------------------------------------

func (r *EngineGormRepository) GetDaySchedule(
	ctx context.Context,
	barberID uint,
	day dates.Day,
) (*models.DaySchedule, error) {

	var ds models.DaySchedule
	if err := r.db.WithContext(ctx).
		Where("barber_id = ? AND date = ?", barberID, string(day)).
		First(&ds).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &ds, nil
}

func (r *EngineGormRepository) ListDaySchedules(
	ctx context.Context,
	barberID uint,
	from dates.Day,
	to dates.Day,
) ([]models.DaySchedule, error) {

	var out []models.DaySchedule
	if err := r.db.WithContext(ctx).
		Where(
			"barber_id = ? AND date >= ? AND date <= ?",
			barberID, string(from), string(to),
		).
		Order("date ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// UpsertDaySchedule substitui a lista inteira pela chave natural
// (barber_id, date); escritas concorrentes idênticas convergem.
func (r *EngineGormRepository) UpsertDaySchedule(
	ctx context.Context,
	ds *models.DaySchedule,
) error {

	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "barber_id"}, {Name: "date"}},
			DoUpdates: clause.AssignmentColumns([]string{"slots", "day_off", "updated_at"}),
		}).
		Create(ds).Error
}

func (r *EngineGormRepository) CreateDayScheduleIfAbsent(
	ctx context.Context,
	ds *models.DaySchedule,
) error {

	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(ds).Error
}

// --------------------------------------------------
// Closures
// --------------------------------------------------

func (r *EngineGormRepository) GetRecurringClosure(
	ctx context.Context,
	barberID uint,
) (*models.RecurringClosure, error) {

	var rc models.RecurringClosure
	if err := r.db.WithContext(ctx).
		Where("barber_id = ?", barberID).
		First(&rc).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rc, nil
}

func (r *EngineGormRepository) UpsertRecurringClosure(
	ctx context.Context,
	barberID uint,
	weekdaysJSON string,
) error {

	rc := models.RecurringClosure{
		BarberID: barberID,
		Weekdays: weekdaysJSON,
	}

	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "barber_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"weekdays", "updated_at"}),
		}).
		Create(&rc).Error
}

func (r *EngineGormRepository) ListDateClosures(
	ctx context.Context,
	barberID uint,
	from dates.Day,
	to dates.Day,
) ([]models.DateClosure, error) {

	var out []models.DateClosure
	if err := r.db.WithContext(ctx).
		Where(
			"barber_id = ? AND date >= ? AND date <= ?",
			barberID, string(from), string(to),
		).
		Order("date ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *EngineGormRepository) ListRemovedAutoClosures(
	ctx context.Context,
	barberID uint,
	from dates.Day,
	to dates.Day,
) ([]models.RemovedAutoClosure, error) {

	var out []models.RemovedAutoClosure
	if err := r.db.WithContext(ctx).
		Where(
			"barber_id = ? AND date >= ? AND date <= ?",
			barberID, string(from), string(to),
		).
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *EngineGormRepository) GetDateClosure(
	ctx context.Context,
	barberID uint,
	day dates.Day,
	closureType string,
) (*models.DateClosure, error) {

	var dc models.DateClosure
	if err := r.db.WithContext(ctx).
		Where(
			"barber_id = ? AND date = ? AND closure_type = ?",
			barberID, string(day), closureType,
		).
		First(&dc).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &dc, nil
}

func (r *EngineGormRepository) GetDateClosureByID(
	ctx context.Context,
	id uint,
) (*models.DateClosure, error) {

	var dc models.DateClosure
	if err := r.db.WithContext(ctx).First(&dc, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("closure_not_found")
		}
		return nil, err
	}
	return &dc, nil
}

// CreateDateClosure insere pela chave natural (barber, date, type);
// linha já existente não é erro nem sobrescrita (job idempotente).
func (r *EngineGormRepository) CreateDateClosure(
	ctx context.Context,
	dc *models.DateClosure,
) error {

	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(dc).Error
}

func (r *EngineGormRepository) DeleteDateClosure(
	ctx context.Context,
	id uint,
) error {
	return r.db.WithContext(ctx).Delete(&models.DateClosure{}, id).Error
}

func (r *EngineGormRepository) ListSystemAutoClosuresFrom(
	ctx context.Context,
	barberID uint,
	from dates.Day,
) ([]models.DateClosure, error) {

	var out []models.DateClosure
	if err := r.db.WithContext(ctx).
		Where(
			"barber_id = ? AND created_by = ? AND date >= ?",
			barberID, models.ClosureBySystem, string(from),
		).
		Order("date ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *EngineGormRepository) CreateRemovedAutoClosure(
	ctx context.Context,
	t *models.RemovedAutoClosure,
) error {

	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(t).Error
}

// --------------------------------------------------
// Booking ledger (leitura)
// --------------------------------------------------

func (r *EngineGormRepository) ListActiveBookings(
	ctx context.Context,
	barberID uint,
	from dates.Day,
	to dates.Day,
) ([]models.Booking, error) {

	var out []models.Booking
	if err := r.db.WithContext(ctx).
		Select("id", "barber_id", "date", "time", "duration_min", "status").
		Where(
			"barber_id = ? AND status <> 'cancelled' AND date >= ? AND date <= ?",
			barberID, string(from), string(to),
		).
		Order("date ASC, time ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// --------------------------------------------------
// Job fan-out
// --------------------------------------------------

func (r *EngineGormRepository) ListBarberIDsWithRecurringClosure(
	ctx context.Context,
) ([]uint, error) {

	var ids []uint
	if err := r.db.WithContext(ctx).
		Model(&models.RecurringClosure{}).
		Pluck("barber_id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *EngineGormRepository) ListActiveBarberIDs(
	ctx context.Context,
) ([]uint, error) {

	// dono também atende: qualquer usuário ativo é agendável
	var ids []uint
	if err := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("active = true").
		Pluck("id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

// Compile-time checks
var (
	_ domain.Repository      = (*EngineGormRepository)(nil)
	_ domain.AdminRepository = (*EngineGormRepository)(nil)
)
