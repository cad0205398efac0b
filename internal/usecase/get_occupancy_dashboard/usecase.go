package get_occupancy_dashboard

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-InventoryService/internal/availability"
	"github.com/m04kA/SMC-InventoryService/internal/domain"
	catalogClient "github.com/m04kA/SMC-InventoryService/internal/integrations/catalogservice"
)

// UseCase use case сетки загрузки отеля для администратора
type UseCase struct {
	bookingRepo   BookingRepository
	catalogClient CatalogClient
	logger        Logger
	maxDays       int
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(bookingRepo BookingRepository, catalogClient CatalogClient, logger Logger, maxDays int) *UseCase {
	if maxDays <= 0 {
		maxDays = domain.DefaultMaxDashboardDays
	}
	return &UseCase{
		bookingRepo:   bookingRepo,
		catalogClient: catalogClient,
		logger:        logger,
		maxDays:       maxDays,
	}
}

// Execute строит сетку номер x день
// Прошедшие дни не скрываются: администратор видит историю загрузки
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetOccupancyDashboard: hotel=%d, from=%s, to=%s", req.HotelID, req.From, req.To)

	if err := validateRequest(req, uc.maxDays); err != nil {
		uc.logger.Warn("GetOccupancyDashboard: validation failed: %v", err)
		return nil, err
	}

	rooms, err := uc.catalogClient.GetHotelRooms(ctx, req.HotelID)
	if err != nil {
		if errors.Is(err, catalogClient.ErrHotelNotFound) {
			uc.logger.Warn("GetOccupancyDashboard: hotel id=%d not found", req.HotelID)
			return nil, ErrHotelNotFound
		}
		uc.logger.Error("GetOccupancyDashboard: failed to get rooms of hotel id=%d: %v", req.HotelID, err)
		return nil, fmt.Errorf("%w: failed to get rooms: %v", ErrInternal, err)
	}

	if req.RoomID != nil {
		rooms = filterRoom(rooms, *req.RoomID)
		if len(rooms) == 0 {
			uc.logger.Warn("GetOccupancyDashboard: room id=%d not found in hotel id=%d", *req.RoomID, req.HotelID)
			return nil, ErrRoomNotFound
		}
	}

	bookings, err := uc.bookingRepo.GetConfirmedByHotel(ctx, req.HotelID, req.From, req.To)
	if err != nil {
		uc.logger.Error("GetOccupancyDashboard: failed to get bookings for hotel=%d: %v", req.HotelID, err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	dashboard := availability.BuildDashboard(rooms, bookings, req.From, req.To)

	fullDays := 0
	for _, row := range dashboard.Rows {
		for _, cell := range row.Cells {
			if cell.Level == domain.OccupancyFull {
				fullDays++
			}
		}
	}

	uc.logger.Info("GetOccupancyDashboard: hotel=%d, rooms=%d, bookings=%d, full cells=%d",
		req.HotelID, len(dashboard.Rows), len(bookings), fullDays)

	return &Response{
		HotelID:   req.HotelID,
		Dashboard: dashboard,
		FullDays:  fullDays,
	}, nil
}

func filterRoom(rooms []*domain.Room, roomID int64) []*domain.Room {
	for _, r := range rooms {
		if r.ID == roomID {
			return []*domain.Room{r}
		}
	}
	return nil
}
