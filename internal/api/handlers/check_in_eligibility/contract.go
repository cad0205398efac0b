package check_in_eligibility

import (
	"context"

	checkInEligibility "github.com/m04kA/SMC-InventoryService/internal/usecase/check_in_eligibility"
)

type CheckInEligibilityUseCase interface {
	Execute(ctx context.Context, req *checkInEligibility.Request) (*checkInEligibility.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
