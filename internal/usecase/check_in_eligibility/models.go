package check_in_eligibility

import (
	"github.com/m04kA/SMC-InventoryService/internal/domain"
	"github.com/m04kA/SMC-InventoryService/pkg/types"
)

// Reason причина отказа в онлайн-заселении
type Reason string

const (
	ReasonNone         Reason = ""
	ReasonNotConfirmed Reason = "NOT_CONFIRMED"
	ReasonTooEarly     Reason = "TOO_EARLY"
	ReasonStayEnded    Reason = "STAY_ENDED"
)

// Request модель запроса проверки возможности заселения
type Request struct {
	BookingID int64
}

// Response модель ответа
type Response struct {
	Booking  *domain.Booking
	Today    types.Day
	Eligible bool
	Reason   Reason
}
