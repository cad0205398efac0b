package check_in_eligibility

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-InventoryService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-InventoryService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-InventoryService/pkg/types"
)

// UseCase use case проверки возможности онлайн-заселения
type UseCase struct {
	bookingRepo  BookingRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(bookingRepo BookingRepository, timeProvider TimeProvider, logger Logger) *UseCase {
	if timeProvider == nil {
		timeProvider = &RealTimeProvider{}
	}
	return &UseCase{
		bookingRepo:  bookingRepo,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Execute проверяет, что бронирование подтверждено и сегодня входит в [CheckIn, CheckOut)
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.BookingID <= 0 {
		return nil, fmt.Errorf("%w: bookingID must be positive", ErrInvalidInput)
	}

	booking, err := uc.bookingRepo.GetByID(ctx, req.BookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			uc.logger.Warn("CheckInEligibility: booking id=%d not found", req.BookingID)
			return nil, ErrBookingNotFound
		}
		uc.logger.Error("CheckInEligibility: failed to get booking id=%d: %v", req.BookingID, err)
		return nil, fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
	}

	today := types.DayOf(uc.timeProvider.Now())
	reason := eligibility(booking, today)

	uc.logger.Info("CheckInEligibility: booking=%d, today=%s, eligible=%t, reason=%s",
		booking.ID, today, reason == ReasonNone, reason)

	return &Response{
		Booking:  booking,
		Today:    today,
		Eligible: reason == ReasonNone,
		Reason:   reason,
	}, nil
}

func eligibility(booking *domain.Booking, today types.Day) Reason {
	switch {
	case booking.Status != domain.StatusConfirmed:
		return ReasonNotConfirmed
	case today.Before(booking.CheckIn):
		return ReasonTooEarly
	case !booking.Occupies(today):
		return ReasonStayEnded
	default:
		return ReasonNone
	}
}
