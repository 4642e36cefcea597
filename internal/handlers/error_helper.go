package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/idohairstudios/salon-booking/internal/httperr"
	"github.com/idohairstudios/salon-booking/internal/payment"
)

// statusByCode maps business error codes to HTTP statuses. Anything not
// listed is a 400; business errors are always the caller's problem.
var statusByCode = map[string]int{
	"missing_required_fields": http.StatusBadRequest,
	"invalid_date":            http.StatusBadRequest,
	"invalid_time_slot":       http.StatusBadRequest,
	"invalid_month":           http.StatusBadRequest,
	"invalid_date_range":      http.StatusBadRequest,
	"date_in_past":            http.StatusBadRequest,

	"date_not_available":    http.StatusNotFound,
	"date_not_found":        http.StatusNotFound,
	"service_not_found":     http.StatusNotFound,
	"appointment_not_found": http.StatusNotFound,

	"date_fully_booked":     http.StatusConflict,
	"capacity_exceeded":     http.StatusConflict,
	"date_already_exists":   http.StatusConflict,
	"date_has_appointments": http.StatusConflict,
	"invalid_state":         http.StatusConflict,
}

// writeError translates use-case errors for the wire: business codes to
// their 4xx, gateway failures to 502 with the provider detail, and
// everything else to a plain 500.
func writeError(c *gin.Context, err error) {
	if code, ok := httperr.BusinessCode(err); ok {
		status, known := statusByCode[code]
		if !known {
			status = http.StatusBadRequest
		}
		httperr.Write(c, status, code, err.Error())
		return
	}

	if payment.IsGatewayError(err) {
		httperr.BadGateway(c, "payment_gateway_error", payment.GatewayDetail(err))
		return
	}

	httperr.Internal(c, "internal_error", "Something went wrong. Please try again.")
}
