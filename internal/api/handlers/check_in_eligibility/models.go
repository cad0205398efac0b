package check_in_eligibility

import (
	checkInEligibility "github.com/m04kA/SMC-InventoryService/internal/usecase/check_in_eligibility"
	"github.com/m04kA/SMC-InventoryService/pkg/types"
)

// EligibilityResponse HTTP response model
type EligibilityResponse struct {
	BookingID int64     `json:"bookingId"`
	RoomID    int64     `json:"roomId"`
	CheckIn   types.Day `json:"checkIn"`
	CheckOut  types.Day `json:"checkOut"`
	Status    string    `json:"status"`
	Today     types.Day `json:"today"`
	Eligible  bool      `json:"eligible"`
	Reason    *string   `json:"reason"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *checkInEligibility.Response) *EligibilityResponse {
	out := &EligibilityResponse{
		BookingID: resp.Booking.ID,
		RoomID:    resp.Booking.RoomID,
		CheckIn:   resp.Booking.CheckIn,
		CheckOut:  resp.Booking.CheckOut,
		Status:    string(resp.Booking.Status),
		Today:     resp.Today,
		Eligible:  resp.Eligible,
	}

	if resp.Reason != checkInEligibility.ReasonNone {
		reason := string(resp.Reason)
		out.Reason = &reason
	}

	return out
}
