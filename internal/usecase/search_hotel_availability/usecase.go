package search_hotel_availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-InventoryService/internal/availability"
	"github.com/m04kA/SMC-InventoryService/internal/domain"
	catalogClient "github.com/m04kA/SMC-InventoryService/internal/integrations/catalogservice"
	"github.com/m04kA/SMC-InventoryService/pkg/ptr"
	"github.com/m04kA/SMC-InventoryService/pkg/types"
)

const metricsScope = "hotel"

// UseCase use case поиска свободных номеров отеля на период
type UseCase struct {
	bookingRepo   BookingRepository
	catalogClient CatalogClient
	metrics       Metrics
	timeProvider  TimeProvider
	logger        Logger
	maxStayNights int
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	catalogClient CatalogClient,
	metrics Metrics,
	timeProvider TimeProvider,
	logger Logger,
	maxStayNights int,
) *UseCase {
	if timeProvider == nil {
		timeProvider = &RealTimeProvider{}
	}
	if maxStayNights <= 0 {
		maxStayNights = domain.DefaultMaxStayNights
	}
	return &UseCase{
		bookingRepo:   bookingRepo,
		catalogClient: catalogClient,
		metrics:       metrics,
		timeProvider:  timeProvider,
		logger:        logger,
		maxStayNights: maxStayNights,
	}
}

// Execute оценивает каждый тип номера отдельно и отель в целом
// Для сводной оценки вместимости номеров суммируются
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("SearchHotelAvailability: hotel=%d, checkIn=%s, checkOut=%s, rooms=%d",
		req.HotelID, req.CheckIn, req.CheckOut, req.RoomsRequested)

	// 1. Валидация входных данных
	if err := validateRequest(req, uc.maxStayNights); err != nil {
		uc.logger.Warn("SearchHotelAvailability: validation failed: %v", err)
		return nil, err
	}

	today := types.DayOf(uc.timeProvider.Now())

	// 2. Получаем номера отеля
	rooms, err := uc.catalogClient.GetHotelRooms(ctx, req.HotelID)
	if err != nil {
		if errors.Is(err, catalogClient.ErrHotelNotFound) {
			uc.logger.Warn("SearchHotelAvailability: hotel id=%d not found", req.HotelID)
			return nil, ErrHotelNotFound
		}
		uc.logger.Error("SearchHotelAvailability: failed to get rooms of hotel id=%d: %v", req.HotelID, err)
		return nil, fmt.Errorf("%w: failed to get rooms: %v", ErrInternal, err)
	}

	// 3. Одна выборка бронирований на весь отель
	bookings, err := uc.bookingRepo.GetConfirmedByHotel(ctx, req.HotelID, req.CheckIn, req.CheckOut)
	if err != nil {
		uc.logger.Error("SearchHotelAvailability: failed to get bookings for hotel=%d: %v", req.HotelID, err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	resp := &Response{
		HotelID:  req.HotelID,
		CheckIn:  req.CheckIn,
		CheckOut: req.CheckOut,
		Nights:   types.NightsBetween(req.CheckIn, req.CheckOut),
		Rooms:    make([]RoomResult, 0, len(rooms)),
	}

	// 4. Оценка по каждому типу номера
	for _, room := range rooms {
		if room == nil {
			continue
		}
		index := availability.BuildIndex(bookings, availability.ForRoom(room.ID))
		verdict := availability.EvaluateRange(room.Capacity, index, req.CheckIn, req.CheckOut, today, req.RoomsRequested)

		result := RoomResult{
			Room:         room,
			Available:    verdict.Available,
			MinRemaining: verdict.MinRemaining(),
		}
		if verdict.Available {
			result.Quote = ptr.Ptr(availability.QuoteStay(room.BaseRate, req.CheckIn, req.CheckOut))
			resp.AvailableRooms++
		}
		resp.Rooms = append(resp.Rooms, result)
	}

	// 5. Сводная оценка по отелю
	resp.PooledCapacity = domain.PooledCapacity(rooms)
	hotelIndex := availability.BuildIndex(bookings, availability.ForHotel(req.HotelID))
	resp.Pooled = availability.EvaluateRange(resp.PooledCapacity, hotelIndex, req.CheckIn, req.CheckOut, today, req.RoomsRequested)
	resp.UnitsNeeded = resp.Pooled.UnitsNeeded

	uc.metrics.RecordAvailabilityCheck(metricsScope, resp.Pooled.Available)

	uc.logger.Info("SearchHotelAvailability: hotel=%d, room types=%d, available=%d, pooled=%t",
		req.HotelID, len(rooms), resp.AvailableRooms, resp.Pooled.Available)

	return resp, nil
}
