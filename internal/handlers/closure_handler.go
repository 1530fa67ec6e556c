package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	availability "github.com/BruksfildServices01/barber-agenda/internal/domain/availability"
	"github.com/BruksfildServices01/barber-agenda/internal/httperr"
	"github.com/BruksfildServices01/barber-agenda/internal/httpresp"
	"github.com/BruksfildServices01/barber-agenda/internal/middleware"
	"github.com/BruksfildServices01/barber-agenda/internal/models"
	closureuc "github.com/BruksfildServices01/barber-agenda/internal/usecase/closure"
)

// ======================================================
// HANDLER
// ======================================================

type ClosureHandler struct {
	db              *gorm.DB
	reader          availability.Repository
	create          *closureuc.CreateDateClosure
	delete          *closureuc.DeleteDateClosure
	upsertRecurring *closureuc.UpsertRecurringClosure
}

func NewClosureHandler(
	db *gorm.DB,
	reader availability.Repository,
	create *closureuc.CreateDateClosure,
	del *closureuc.DeleteDateClosure,
	upsertRecurring *closureuc.UpsertRecurringClosure,
) *ClosureHandler {
	return &ClosureHandler{
		db:              db,
		reader:          reader,
		create:          create,
		delete:          del,
		upsertRecurring: upsertRecurring,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateClosureRequest struct {
	Date        string `json:"date" binding:"required"`
	ClosureType string `json:"closure_type" binding:"required"`
	Reason      string `json:"reason"`
}

type RecurringClosureRequest struct {
	Weekdays []int `json:"weekdays"`
}

// ======================================================
// GET /api/me/closures?from=&to=
// ======================================================

func (h *ClosureHandler) List(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextUserID).(uint)

	q := h.db.Where("barber_id = ?", barberID)
	if from := c.Query("from"); from != "" {
		q = q.Where("date >= ?", from)
	}
	if to := c.Query("to"); to != "" {
		q = q.Where("date <= ?", to)
	}

	var closures []models.DateClosure
	if err := q.Order("date ASC").Find(&closures).Error; err != nil {
		httperr.Internal(c, "failed_to_list_closures", "Erro ao listar fechamentos.")
		return
	}

	httpresp.List(c, closures)
}

// ======================================================
// POST /api/me/closures
// ======================================================

func (h *ClosureHandler) Create(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextUserID).(uint)
	barbershopID := c.MustGet(middleware.ContextBarbershopID).(uint)

	var req CreateClosureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	dc, err := h.create.Execute(c.Request.Context(), closureuc.CreateDateClosureInput{
		BarbershopID: barbershopID,
		BarberID:     barberID,
		Date:         req.Date,
		ClosureType:  req.ClosureType,
		Reason:       req.Reason,
	})
	if err != nil {
		respondBusiness(c, err)
		return
	}

	c.JSON(http.StatusCreated, dc)
}

// ======================================================
// DELETE /api/me/closures/:id
// ======================================================

func (h *ClosureHandler) Delete(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextUserID).(uint)
	barbershopID := c.MustGet(middleware.ContextBarbershopID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	// fechamento de outro barbeiro não é visível nem apagável daqui
	var count int64
	h.db.Model(&models.DateClosure{}).
		Where("id = ? AND barber_id = ?", id, barberID).
		Count(&count)
	if count == 0 {
		httperr.NotFound(c, "closure_not_found", "Fechamento não encontrado.")
		return
	}

	if err := h.delete.Execute(c.Request.Context(), barbershopID, barberID, uint(id)); err != nil {
		respondBusiness(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// ======================================================
// GET /api/me/recurring-closure
// ======================================================

func (h *ClosureHandler) GetRecurring(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextUserID).(uint)

	// ausência de registro é estado válido (nil, nil); falha de storage
	// propaga como 500
	rc, err := h.reader.GetRecurringClosure(c.Request.Context(), barberID)
	if err != nil {
		respondBusiness(c, err)
		return
	}
	if rc == nil {
		c.JSON(http.StatusOK, gin.H{"weekdays": []int{}})
		return
	}

	weekdays, err := availability.ParseWeekdays(rc.Weekdays)
	if err != nil {
		// registro corrompido lê como vazio, igual ao resolver
		weekdays = []int{}
	}

	c.JSON(http.StatusOK, gin.H{"weekdays": weekdays})
}

// ======================================================
// PUT /api/me/recurring-closure
// ======================================================

func (h *ClosureHandler) UpsertRecurring(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextUserID).(uint)
	barbershopID := c.MustGet(middleware.ContextBarbershopID).(uint)

	var req RecurringClosureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	err := h.upsertRecurring.Execute(
		c.Request.Context(), barbershopID, barberID, req.Weekdays,
	)
	if err != nil {
		respondBusiness(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok", "weekdays": req.Weekdays})
}
