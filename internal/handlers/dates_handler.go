package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/idohairstudios/salon-booking/internal/audit"
	"github.com/idohairstudios/salon-booking/internal/cache"
	domain "github.com/idohairstudios/salon-booking/internal/domain/booking"
	"github.com/idohairstudios/salon-booking/internal/httperr"
	"github.com/idohairstudios/salon-booking/internal/middleware"
	"github.com/idohairstudios/salon-booking/internal/models"
	"github.com/idohairstudios/salon-booking/internal/timezone"
)

// DatesHandler is the admin surface for capacity management.
type DatesHandler struct {
	ledger domain.SlotLedger
	store  domain.AppointmentStore
	cache  DatesInvalidator
	audit  *audit.Dispatcher
	tz     string
}

type DatesInvalidator interface {
	InvalidatePrefix(ctx context.Context, prefix string)
}

func NewDatesHandler(
	ledger domain.SlotLedger,
	store domain.AppointmentStore,
	datesCache DatesInvalidator,
	auditDispatcher *audit.Dispatcher,
	tz string,
) *DatesHandler {
	return &DatesHandler{
		ledger: ledger,
		store:  store,
		cache:  datesCache,
		audit:  auditDispatcher,
		tz:     tz,
	}
}

// --------- Requests ---------

type CreateDateRequest struct {
	Date            string `json:"date"`
	From            string `json:"from"`
	To              string `json:"to"`
	MaxAppointments int    `json:"max_appointments"`
}

// --------- Handlers ---------

// Create accepts a single date or a from/to range (the admin calendar
// supports bulk creation).
func (h *DatesHandler) Create(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateDateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	var created []models.AvailableDate

	switch {
	case req.Date != "":
		day, err := timezone.ParseDate(h.tz, req.Date)
		if err != nil {
			httperr.BadRequest(c, "invalid_date", "expected YYYY-MM-DD")
			return
		}

		date, err := h.ledger.Create(c.Request.Context(), day, req.MaxAppointments)
		if err != nil {
			writeError(c, err)
			return
		}
		created = []models.AvailableDate{*date}

	case req.From != "" && req.To != "":
		from, err := timezone.ParseDate(h.tz, req.From)
		if err != nil {
			httperr.BadRequest(c, "invalid_date", "expected YYYY-MM-DD")
			return
		}
		to, err := timezone.ParseDate(h.tz, req.To)
		if err != nil {
			httperr.BadRequest(c, "invalid_date", "expected YYYY-MM-DD")
			return
		}

		created, err = h.ledger.CreateRange(c.Request.Context(), from, to, req.MaxAppointments)
		if err != nil {
			writeError(c, err)
			return
		}

	default:
		httperr.BadRequest(c, "missing_required_fields", "provide date or from/to")
		return
	}

	h.cache.InvalidatePrefix(c.Request.Context(), cache.DatesPrefix)

	for i := range created {
		id := created[i].ID
		h.audit.Dispatch(audit.Event{
			UserID:   &userID,
			Action:   "available_date_created",
			Entity:   "available_date",
			EntityID: &id,
		})
	}

	c.JSON(http.StatusCreated, gin.H{
		"created": created,
		"total":   len(created),
	})
}

// Delete refuses to remove a date that still has pending or confirmed
// appointments on it.
func (h *DatesHandler) Delete(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	id64, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_request", "invalid date id")
		return
	}
	dateID := uint(id64)

	date, err := h.ledger.Get(c.Request.Context(), dateID)
	if err != nil {
		writeError(c, err)
		return
	}

	active, err := h.store.CountActiveOn(c.Request.Context(), date.Date)
	if err != nil {
		writeError(c, err)
		return
	}
	if active > 0 {
		httperr.Conflict(c, "date_has_appointments",
			"This date still has appointments booked against it.")
		return
	}

	if err := h.ledger.Delete(c.Request.Context(), dateID); err != nil {
		writeError(c, err)
		return
	}

	h.cache.InvalidatePrefix(c.Request.Context(), cache.DatesPrefix)

	h.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "available_date_deleted",
		Entity:   "available_date",
		EntityID: &dateID,
	})

	c.JSON(http.StatusOK, gin.H{"message": "Date removed successfully"})
}
