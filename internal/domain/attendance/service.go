package attendance

import "context"

type AttendanceService interface {
	CheckIn(ctx context.Context, req CheckInRequest) (SessionResponse, error)
	CheckOut(ctx context.Context, req CheckOutRequest) (CheckOutResponse, error)
	ListByMonth(ctx context.Context, employeeID int64, month string) ([]SessionResponse, error)
	Today(ctx context.Context, employeeID int64) ([]SessionResponse, error)
	MonthlyTotal(ctx context.Context, employeeID int64, month string) (MonthlyTotalResponse, error)
	CloseStaleSessions(ctx context.Context) (int64, error)
}
