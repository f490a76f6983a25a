package deduction

import "context"

type DeductionService interface {
	Create(ctx context.Context, req CreateDeductionRequest) (DeductionResponse, error)
	GetByID(ctx context.Context, id int64) (DeductionResponse, error)
	List(ctx context.Context, req ListDeductionsRequest) ([]DeductionResponse, error)
	Update(ctx context.Context, req UpdateDeductionRequest) (DeductionResponse, error)
	Delete(ctx context.Context, id int64) error
}
