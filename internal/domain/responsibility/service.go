package responsibility

import "context"

type ResponsibilityService interface {
	Create(ctx context.Context, req CreateResponsibilityRequest) (ResponsibilityResponse, error)
	GetByID(ctx context.Context, id int64) (ResponsibilityResponse, error)
	List(ctx context.Context, req ListResponsibilitiesRequest) ([]ResponsibilityResponse, error)
	Update(ctx context.Context, req UpdateResponsibilityRequest) (ResponsibilityResponse, error)
	Delete(ctx context.Context, id int64) error
}
