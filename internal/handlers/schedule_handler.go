package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-agenda/internal/dates"
	"github.com/BruksfildServices01/barber-agenda/internal/httperr"
	"github.com/BruksfildServices01/barber-agenda/internal/httpresp"
	"github.com/BruksfildServices01/barber-agenda/internal/middleware"
	"github.com/BruksfildServices01/barber-agenda/internal/models"
	scheduleuc "github.com/BruksfildServices01/barber-agenda/internal/usecase/schedule"
)

// ======================================================
// HANDLER
// ======================================================

type ScheduleHandler struct {
	db     *gorm.DB
	upsert *scheduleuc.Upsert
	repair *scheduleuc.AppendSlotForWeekday
}

func NewScheduleHandler(
	db *gorm.DB,
	upsert *scheduleuc.Upsert,
	repair *scheduleuc.AppendSlotForWeekday,
) *ScheduleHandler {
	return &ScheduleHandler{db: db, upsert: upsert, repair: repair}
}

// ======================================================
// REQUESTS
// ======================================================

type UpsertDayScheduleRequest struct {
	Date   string   `json:"date" binding:"required"`
	Slots  []string `json:"slots"`
	DayOff bool     `json:"day_off"`
}

type AppendSlotRequest struct {
	Weekday int    `json:"weekday"`
	Time    string `json:"time" binding:"required"`
	From    string `json:"from" binding:"required"`
	To      string `json:"to" binding:"required"`
}

// ======================================================
// GET /api/me/day-schedules?from=&to=
// ======================================================

func (h *ScheduleHandler) List(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextUserID).(uint)

	from, err := dates.Parse(c.Query("from"))
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inicial inválida.")
		return
	}
	to, err := dates.Parse(c.Query("to"))
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Data final inválida.")
		return
	}

	var schedules []models.DaySchedule
	if err := h.db.
		Where("barber_id = ? AND date >= ? AND date <= ?", barberID, string(from), string(to)).
		Order("date ASC").
		Find(&schedules).Error; err != nil {
		httperr.Internal(c, "failed_to_list_schedules", "Erro ao listar agenda.")
		return
	}

	httpresp.List(c, schedules)
}

// ======================================================
// PUT /api/me/day-schedules
// ======================================================

func (h *ScheduleHandler) Upsert(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextUserID).(uint)
	barbershopID := c.MustGet(middleware.ContextBarbershopID).(uint)

	var req UpsertDayScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	ds, err := h.upsert.Execute(c.Request.Context(), scheduleuc.UpsertInput{
		BarbershopID: barbershopID,
		BarberID:     barberID,
		Date:         req.Date,
		Slots:        req.Slots,
		DayOff:       req.DayOff,
	})
	if err != nil {
		respondBusiness(c, err)
		return
	}

	c.JSON(http.StatusOK, ds)
}

// ======================================================
// POST /api/me/day-schedules/append-slot
// ======================================================

func (h *ScheduleHandler) AppendSlot(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextUserID).(uint)
	barbershopID := c.MustGet(middleware.ContextBarbershopID).(uint)

	var req AppendSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	n, err := h.repair.Execute(c.Request.Context(), scheduleuc.AppendSlotInput{
		BarbershopID: barbershopID,
		BarberID:     barberID,
		Weekday:      req.Weekday,
		Time:         req.Time,
		From:         req.From,
		To:           req.To,
	})
	if err != nil {
		respondBusiness(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"repaired": n})
}
