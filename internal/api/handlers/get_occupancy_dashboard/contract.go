package get_occupancy_dashboard

import (
	"context"

	getOccupancyDashboard "github.com/m04kA/SMC-InventoryService/internal/usecase/get_occupancy_dashboard"
)

type GetOccupancyDashboardUseCase interface {
	Execute(ctx context.Context, req *getOccupancyDashboard.Request) (*getOccupancyDashboard.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
