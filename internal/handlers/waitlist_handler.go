package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/barber-agenda/internal/domain/waitlist"
	"github.com/BruksfildServices01/barber-agenda/internal/dates"
	"github.com/BruksfildServices01/barber-agenda/internal/httperr"
	"github.com/BruksfildServices01/barber-agenda/internal/httpresp"
	"github.com/BruksfildServices01/barber-agenda/internal/middleware"
	"github.com/BruksfildServices01/barber-agenda/internal/models"
	waitlistuc "github.com/BruksfildServices01/barber-agenda/internal/usecase/waitlist"
)

// ======================================================
// HANDLER
// ======================================================

type WaitlistHandler struct {
	db    *gorm.DB
	repo  domain.Repository
	join  *waitlistuc.Join
	claim *waitlistuc.Claim
}

func NewWaitlistHandler(
	db *gorm.DB,
	repo domain.Repository,
	join *waitlistuc.Join,
	claim *waitlistuc.Claim,
) *WaitlistHandler {
	return &WaitlistHandler{db: db, repo: repo, join: join, claim: claim}
}

// ======================================================
// REQUESTS
// ======================================================

type JoinWaitlistRequest struct {
	BarberID      uint   `json:"barber_id" binding:"required"`
	Date          string `json:"date" binding:"required"`
	PreferredTime string `json:"preferred_time"`
	ClientName    string `json:"client_name" binding:"required"`
	ClientPhone   string `json:"client_phone" binding:"required"`
}

// ======================================================
// POST /api/public/:slug/waitlist
// ======================================================

func (h *WaitlistHandler) Join(c *gin.Context) {
	var shop models.Barbershop
	if err := h.db.Where("slug = ?", c.Param("slug")).First(&shop).Error; err != nil {
		httperr.NotFound(c, "barbershop_not_found", "Barbearia não encontrada.")
		return
	}

	var req JoinWaitlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	var count int64
	h.db.Model(&models.User{}).
		Where("id = ? AND barbershop_id = ? AND active = true", req.BarberID, shop.ID).
		Count(&count)
	if count == 0 {
		httperr.NotFound(c, "barber_not_found", "Barbeiro não encontrado.")
		return
	}

	e, err := h.join.Execute(c.Request.Context(), waitlistuc.JoinInput{
		BarbershopID:  shop.ID,
		BarberID:      req.BarberID,
		Date:          req.Date,
		PreferredTime: req.PreferredTime,
		ClientName:    req.ClientName,
		ClientPhone:   req.ClientPhone,
	})
	if err != nil {
		respondBusiness(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"public_id": e.PublicID,
		"position":  e.Position,
		"status":    e.Status,
	})
}

// ======================================================
// POST /api/public/waitlist/:publicID/claim
// ======================================================

func (h *WaitlistHandler) Claim(c *gin.Context) {
	publicID, err := uuid.Parse(c.Param("publicID"))
	if err != nil {
		httperr.BadRequest(c, "invalid_public_id", "Identificador inválido.")
		return
	}

	e, err := h.claim.Execute(c.Request.Context(), publicID)
	if err != nil {
		respondBusiness(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":     e.Status,
		"date":       e.Date,
		"offer_time": e.OfferTime,
	})
}

// ======================================================
// GET /api/me/waitlist?date=
// ======================================================

func (h *WaitlistHandler) ListMine(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextUserID).(uint)

	day, err := dates.Parse(c.Query("date"))
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inválida.")
		return
	}

	entries, err := h.repo.ListEntries(c.Request.Context(), barberID, day)
	if err != nil {
		respondBusiness(c, err)
		return
	}

	httpresp.List(c, entries)
}
