package check_room_availability

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

const metricsScope = "room"

// UseCase use case проверки доступности номера на период проживания
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

// Execute вычисляет доступность номера на [CheckIn, CheckOut)
// Результат не резервирует номера: создание бронирования обязано перепроверить остаток
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CheckRoomAvailability: room=%d, checkIn=%s, checkOut=%s, rooms=%d",
		req.RoomID, req.CheckIn, req.CheckOut, req.RoomsRequested)

	// 1. Валидация входных данных
	if err := validateRequest(req, uc.maxStayNights); err != nil {
		uc.logger.Warn("CheckRoomAvailability: validation failed: %v", err)
		return nil, err
	}

	today := types.DayOf(uc.timeProvider.Now())

	// 2. Получаем номер
	room, roomFound, err := uc.getRoom(ctx, req.RoomID)
	if err != nil {
		return nil, err
	}

	// 3. Получаем бронирования, пересекающие период
	index := availability.Index{}
	if room.HasInventory() {
		bookings, err := uc.bookingRepo.GetConfirmedByRoom(ctx, req.RoomID, req.CheckIn, req.CheckOut)
		if err != nil {
			uc.logger.Error("CheckRoomAvailability: failed to get bookings for room=%d: %v", req.RoomID, err)
			return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}
		index = availability.BuildIndex(bookings, availability.ForRoom(req.RoomID))
	}

	// 4. Оцениваем каждую ночь
	verdict := availability.EvaluateRange(room.Capacity, index, req.CheckIn, req.CheckOut, today, req.RoomsRequested)
	uc.metrics.RecordAvailabilityCheck(metricsScope, verdict.Available)

	resp := &Response{
		Room:         room,
		RoomFound:    roomFound,
		Nights:       types.NightsBetween(req.CheckIn, req.CheckOut),
		Verdict:      verdict,
		MinRemaining: verdict.MinRemaining(),
		PeakOccupied: index.Peak(req.CheckIn, req.CheckOut),
	}

	// 5. Цена показывается только для доступного периода
	if verdict.Available {
		resp.Quote = ptr.Ptr(availability.QuoteStay(room.BaseRate, req.CheckIn, req.CheckOut))
	}

	uc.logger.Info("CheckRoomAvailability: room=%d, available=%t, blocked nights=%d",
		req.RoomID, verdict.Available, len(verdict.UnavailableDays()))

	return resp, nil
}

func (uc *UseCase) getRoom(ctx context.Context, roomID int64) (*domain.Room, bool, error) {
	room, err := uc.catalogClient.GetRoom(ctx, roomID)
	if err == nil {
		return room, true, nil
	}

	if errors.Is(err, catalogClient.ErrRoomNotFound) {
		uc.logger.Warn("CheckRoomAvailability: room id=%d not found, treating as zero capacity", roomID)
		return domain.UnknownRoom(roomID), false, nil
	}

	uc.logger.Error("CheckRoomAvailability: failed to get room id=%d: %v", roomID, err)
	return nil, false, fmt.Errorf("%w: failed to get room: %v", ErrInternal, err)
}
