package get_room_calendar

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-InventoryService/internal/availability"
	"github.com/m04kA/SMC-InventoryService/internal/domain"
	catalogClient "github.com/m04kA/SMC-InventoryService/internal/integrations/catalogservice"
	"github.com/m04kA/SMC-InventoryService/pkg/types"
)

// UseCase use case построения календаря доступности номера
type UseCase struct {
	bookingRepo   BookingRepository
	catalogClient CatalogClient
	metrics       Metrics
	timeProvider  TimeProvider
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
// Если timeProvider не передан, используется системное время
func NewUseCase(
	bookingRepo BookingRepository,
	catalogClient CatalogClient,
	metrics Metrics,
	timeProvider TimeProvider,
	logger Logger,
) *UseCase {
	if timeProvider == nil {
		timeProvider = &RealTimeProvider{}
	}
	return &UseCase{
		bookingRepo:   bookingRepo,
		catalogClient: catalogClient,
		metrics:       metrics,
		timeProvider:  timeProvider,
		logger:        logger,
	}
}

// Execute строит сетку месяца для номера
// Повторный вызов с другим месяцем или выбранной датой строит сетку заново
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetRoomCalendar: room=%d, month=%04d-%02d, rooms=%d",
		req.RoomID, req.Year, int(req.Month), req.RoomsRequested)

	today := types.DayOf(uc.timeProvider.Now())

	// 1. Без указания месяца показываем текущий
	if req.Year == 0 && req.Month == 0 {
		req.Year, req.Month = today.Year(), today.Month()
	}

	// 2. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetRoomCalendar: validation failed: %v", err)
		return nil, err
	}
	unitsNeeded := req.RoomsRequested
	if unitsNeeded == 0 {
		unitsNeeded = domain.DefaultRoomsRequested
	}

	// 3. Получаем номер; отсутствующий номер считается номером с нулевой вместимостью
	room, roomFound, err := uc.getRoom(ctx, req.RoomID)
	if err != nil {
		return nil, err
	}

	// 4. Получаем бронирования на окно сетки, включая дни соседних месяцев
	index := availability.Index{}
	if room.HasInventory() {
		from, to := availability.MonthWindow(req.Year, req.Month)
		bookings, err := uc.bookingRepo.GetConfirmedByRoom(ctx, req.RoomID, from, to)
		if err != nil {
			uc.logger.Error("GetRoomCalendar: failed to get bookings for room=%d: %v", req.RoomID, err)
			return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}
		index = availability.BuildIndex(bookings, availability.ForRoom(req.RoomID))
	}

	// 5. Строим сетку
	calendar := availability.BuildMonth(availability.MonthParams{
		Year:        req.Year,
		Month:       req.Month,
		Capacity:    room.Capacity,
		Index:       index,
		BaseRate:    room.BaseRate,
		UnitsNeeded: unitsNeeded,
		Selected:    req.Selected,
		Today:       today,
	})
	uc.metrics.RecordCalendarBuild()

	uc.logger.Info("GetRoomCalendar: room=%d, month=%04d-%02d, available days=%d",
		req.RoomID, req.Year, int(req.Month), calendar.AvailableDays())

	return &Response{
		Room:        room,
		RoomFound:   roomFound,
		UnitsNeeded: unitsNeeded,
		Calendar:    calendar,
	}, nil
}

func (uc *UseCase) getRoom(ctx context.Context, roomID int64) (*domain.Room, bool, error) {
	room, err := uc.catalogClient.GetRoom(ctx, roomID)
	if err == nil {
		return room, true, nil
	}

	if errors.Is(err, catalogClient.ErrRoomNotFound) {
		uc.logger.Warn("GetRoomCalendar: room id=%d not found, rendering with zero capacity", roomID)
		return domain.UnknownRoom(roomID), false, nil
	}

	uc.logger.Error("GetRoomCalendar: failed to get room id=%d: %v", roomID, err)
	return nil, false, fmt.Errorf("%w: failed to get room: %v", ErrInternal, err)
}
