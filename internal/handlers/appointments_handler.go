package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/idohairstudios/salon-booking/internal/dto"
	"github.com/idohairstudios/salon-booking/internal/httperr"
	"github.com/idohairstudios/salon-booking/internal/httpresp"
	infraRepo "github.com/idohairstudios/salon-booking/internal/infra/repository"
	"github.com/idohairstudios/salon-booking/internal/middleware"
	"github.com/idohairstudios/salon-booking/internal/timezone"
	ucBooking "github.com/idohairstudios/salon-booking/internal/usecase/booking"
)

// AppointmentsHandler is the admin view over booked appointments.
type AppointmentsHandler struct {
	repo     *infraRepo.AppointmentGormRepository
	cancelUC *ucBooking.CancelAppointment
	tz       string
}

func NewAppointmentsHandler(
	repo *infraRepo.AppointmentGormRepository,
	cancelUC *ucBooking.CancelAppointment,
	tz string,
) *AppointmentsHandler {
	return &AppointmentsHandler{
		repo:     repo,
		cancelUC: cancelUC,
		tz:       tz,
	}
}

// List returns appointments for a day (?date=YYYY-MM-DD) or a month
// (?month=YYYY-MM). Defaults to today.
func (h *AppointmentsHandler) List(c *gin.Context) {
	dateStr := c.Query("date")
	monthStr := c.Query("month")

	start := timezone.Today(h.tz)
	end := start.AddDate(0, 0, 1)

	switch {
	case monthStr != "":
		monthStart, err := timezone.ParseMonth(h.tz, monthStr)
		if err != nil {
			httperr.BadRequest(c, "invalid_month", "expected YYYY-MM")
			return
		}
		start = monthStart
		end = monthStart.AddDate(0, 1, 0)

	case dateStr != "":
		day, err := timezone.ParseDate(h.tz, dateStr)
		if err != nil {
			httperr.BadRequest(c, "invalid_date", "expected YYYY-MM-DD")
			return
		}
		start = day
		end = day.AddDate(0, 0, 1)
	}

	apps, err := h.repo.ListForPeriod(c.Request.Context(), start, end)
	if err != nil {
		writeError(c, err)
		return
	}

	out := make([]dto.AppointmentSummaryDTO, 0, len(apps))
	for i := range apps {
		out = append(out, dto.AppointmentSummary(&apps[i]))
	}

	c.JSON(200, gin.H{
		"data":  out,
		"total": len(out),
	})
}

func (h *AppointmentsHandler) Cancel(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	id64, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_request", "invalid appointment id")
		return
	}

	ap, err := h.cancelUC.Execute(c.Request.Context(), userID, uint(id64))
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.OK(c, dto.AppointmentSummary(ap))
}
