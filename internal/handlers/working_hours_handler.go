package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-agenda/internal/dates"
	"github.com/BruksfildServices01/barber-agenda/internal/httperr"
	"github.com/BruksfildServices01/barber-agenda/internal/middleware"
	"github.com/BruksfildServices01/barber-agenda/internal/models"
)

type WorkingHoursHandler struct {
	db *gorm.DB
}

func NewWorkingHoursHandler(db *gorm.DB) *WorkingHoursHandler {
	return &WorkingHoursHandler{db: db}
}

type WorkingDayConfig struct {
	Weekday     int    `json:"weekday" binding:"min=0,max=6"`
	Active      bool   `json:"active"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	LunchStart  string `json:"lunch_start"`
	LunchEnd    string `json:"lunch_end"`
	SlotMinutes int    `json:"slot_minutes"`
}

type WorkingHoursUpdateRequest struct {
	Days []WorkingDayConfig `json:"days" binding:"required"`
}

func (h *WorkingHoursHandler) Get(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextUserID).(uint)

	var hours []models.WorkingHours
	if err := h.db.
		Where("barber_id = ?", barberID).
		Order("weekday ASC").
		Find(&hours).Error; err != nil {

		httperr.Internal(c, "failed_to_get_working_hours", "Erro ao buscar expediente.")
		return
	}

	c.JSON(http.StatusOK, hours)
}

// Update substitui o padrão semanal inteiro. A agenda já materializada
// não muda aqui: o job de seed só cria dias futuros ausentes, e o
// append-slot propaga horário novo para dias já existentes.
func (h *WorkingHoursHandler) Update(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextUserID).(uint)

	var req WorkingHoursUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	for _, d := range req.Days {
		if !d.Active {
			continue
		}
		if _, err := dates.ParseClock(d.StartTime); err != nil {
			httperr.BadRequest(c, "invalid_time", "Início de expediente inválido.")
			return
		}
		if _, err := dates.ParseClock(d.EndTime); err != nil {
			httperr.BadRequest(c, "invalid_time", "Fim de expediente inválido.")
			return
		}
	}

	if err := h.db.Where("barber_id = ?", barberID).Delete(&models.WorkingHours{}).Error; err != nil {
		httperr.Internal(c, "failed_to_clear_existing_hours", "Erro ao atualizar expediente.")
		return
	}

	var toCreate []models.WorkingHours
	for _, d := range req.Days {
		toCreate = append(toCreate, models.WorkingHours{
			BarberID:    barberID,
			Weekday:     d.Weekday,
			Active:      d.Active,
			StartTime:   d.StartTime,
			EndTime:     d.EndTime,
			LunchStart:  d.LunchStart,
			LunchEnd:    d.LunchEnd,
			SlotMinutes: d.SlotMinutes,
		})
	}

	if len(toCreate) > 0 {
		if err := h.db.Create(&toCreate).Error; err != nil {
			httperr.Internal(c, "failed_to_save_working_hours", "Erro ao salvar expediente.")
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
