package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-agenda/internal/dates"
	"github.com/BruksfildServices01/barber-agenda/internal/httperr"
	"github.com/BruksfildServices01/barber-agenda/internal/models"
	availuc "github.com/BruksfildServices01/barber-agenda/internal/usecase/availability"
)

// ======================================================
// HANDLER
// ======================================================

// Limite de datas por consulta em lote (a UI de calendário pede um mês
// por vez, 90 cobre o trimestre com folga).
const maxBatchDates = 90

type AvailabilityHandler struct {
	db      *gorm.DB
	resolve *availuc.Resolve
	batch   *availuc.ResolveBatch
}

func NewAvailabilityHandler(
	db *gorm.DB,
	resolve *availuc.Resolve,
	batch *availuc.ResolveBatch,
) *AvailabilityHandler {
	return &AvailabilityHandler{db: db, resolve: resolve, batch: batch}
}

// ======================================================
// REQUESTS
// ======================================================

type BatchAvailabilityRequest struct {
	BarberID uint     `json:"barber_id" binding:"required"`
	Dates    []string `json:"dates" binding:"required"`
}

// ======================================================
// GET /api/public/:slug/barbers/:barberID/slots?date=
// ======================================================

func (h *AvailabilityHandler) Slots(c *gin.Context) {
	shop, ok := h.shopBySlug(c)
	if !ok {
		return
	}

	barberID, ok := h.barberInShop(c, shop)
	if !ok {
		return
	}

	day, err := dates.Parse(c.Query("date"))
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inválida.")
		return
	}

	slots, err := h.resolve.Execute(c.Request.Context(), barberID, day)
	if err != nil {
		respondBusiness(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"date":  string(day),
		"slots": slots,
	})
}

// ======================================================
// POST /api/public/:slug/batch-availability
// ======================================================

func (h *AvailabilityHandler) Batch(c *gin.Context) {
	shop, ok := h.shopBySlug(c)
	if !ok {
		return
	}

	var req BatchAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}
	if len(req.Dates) == 0 || len(req.Dates) > maxBatchDates {
		httperr.BadRequest(c, "invalid_dates", "Quantidade de datas fora do limite.")
		return
	}

	if !h.barberBelongsToShop(c, shop, req.BarberID) {
		return
	}

	days := make([]dates.Day, 0, len(req.Dates))
	for _, s := range req.Dates {
		d, err := dates.Parse(s)
		if err != nil {
			httperr.BadRequest(c, "invalid_date", "Data inválida: "+s)
			return
		}
		days = append(days, d)
	}

	summaries, err := h.batch.Execute(c.Request.Context(), req.BarberID, days)
	if err != nil {
		respondBusiness(c, err)
		return
	}

	out := make(map[string]any, len(summaries))
	for d, s := range summaries {
		out[string(d)] = s
	}
	c.JSON(http.StatusOK, gin.H{"availability": out})
}

// ======================================================
// HELPERS
// ======================================================

func (h *AvailabilityHandler) shopBySlug(c *gin.Context) (*models.Barbershop, bool) {
	var shop models.Barbershop
	if err := h.db.Where("slug = ?", c.Param("slug")).First(&shop).Error; err != nil {
		httperr.NotFound(c, "barbershop_not_found", "Barbearia não encontrada.")
		return nil, false
	}
	return &shop, true
}

func (h *AvailabilityHandler) barberInShop(c *gin.Context, shop *models.Barbershop) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("barberID"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_barber_id", "Barbeiro inválido.")
		return 0, false
	}
	if !h.barberBelongsToShop(c, shop, uint(id)) {
		return 0, false
	}
	return uint(id), true
}

func (h *AvailabilityHandler) barberBelongsToShop(
	c *gin.Context,
	shop *models.Barbershop,
	barberID uint,
) bool {
	var count int64
	h.db.Model(&models.User{}).
		Where("id = ? AND barbershop_id = ? AND active = true", barberID, shop.ID).
		Count(&count)
	if count == 0 {
		httperr.NotFound(c, "barber_not_found", "Barbeiro não encontrado.")
		return false
	}
	return true
}
