package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/BruksfildServices01/barber-agenda/internal/httperr"
	"github.com/BruksfildServices01/barber-agenda/internal/httpresp"
	"github.com/BruksfildServices01/barber-agenda/internal/middleware"
	bookinguc "github.com/BruksfildServices01/barber-agenda/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type BookingHandler struct {
	create   *bookinguc.Create
	cancel   *bookinguc.Cancel
	complete *bookinguc.Complete
	listDay  *bookinguc.ListDay
}

func NewBookingHandler(
	create *bookinguc.Create,
	cancel *bookinguc.Cancel,
	complete *bookinguc.Complete,
	listDay *bookinguc.ListDay,
) *BookingHandler {
	return &BookingHandler{
		create:   create,
		cancel:   cancel,
		complete: complete,
		listDay:  listDay,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateBookingRequest struct {
	BarberID    uint   `json:"barber_id" binding:"required"`
	ServiceID   uint   `json:"service_id" binding:"required"`
	Date        string `json:"date" binding:"required"`
	Time        string `json:"time" binding:"required"`
	ClientName  string `json:"client_name" binding:"required"`
	ClientPhone string `json:"client_phone" binding:"required"`
	ClientEmail string `json:"client_email"`
	Notes       string `json:"notes"`
}

// ======================================================
// POST /api/public/:slug/bookings
// ======================================================

func (h *BookingHandler) Create(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	b, err := h.create.Execute(c.Request.Context(), bookinguc.CreateInput{
		Slug:        c.Param("slug"),
		BarberID:    req.BarberID,
		ServiceID:   req.ServiceID,
		Date:        req.Date,
		Time:        req.Time,
		ClientName:  req.ClientName,
		ClientPhone: req.ClientPhone,
		ClientEmail: req.ClientEmail,
		Notes:       req.Notes,
	})
	if err != nil {
		respondBusiness(c, err)
		return
	}

	c.JSON(http.StatusCreated, b)
}

// ======================================================
// POST /api/public/bookings/:publicID/cancel
// ======================================================

func (h *BookingHandler) CancelPublic(c *gin.Context) {
	publicID, err := uuid.Parse(c.Param("publicID"))
	if err != nil {
		httperr.BadRequest(c, "invalid_public_id", "Identificador inválido.")
		return
	}

	b, err := h.cancel.Execute(c.Request.Context(), publicID)
	if err != nil {
		respondBusiness(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// ======================================================
// GET /api/me/bookings?date=
// ======================================================

func (h *BookingHandler) ListMyDay(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextUserID).(uint)

	bookings, err := h.listDay.Execute(c.Request.Context(), barberID, c.Query("date"))
	if err != nil {
		respondBusiness(c, err)
		return
	}
	httpresp.List(c, bookings)
}

// ======================================================
// POST /api/me/bookings/:id/cancel
// ======================================================

func (h *BookingHandler) CancelMine(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	b, err := h.cancel.ExecuteByBarber(c.Request.Context(), barberID, uint(id))
	if err != nil {
		respondBusiness(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// ======================================================
// POST /api/me/bookings/:id/complete
// ======================================================

func (h *BookingHandler) CompleteMine(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	b, err := h.complete.Execute(c.Request.Context(), barberID, uint(id))
	if err != nil {
		respondBusiness(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}
