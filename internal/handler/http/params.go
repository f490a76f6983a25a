package http

import (
	"net/http"
	"strconv"

	"github.com/cmlabs-hris/payroll-backend-go/internal/domain/auth"
	"github.com/cmlabs-hris/payroll-backend-go/internal/handler/http/middleware"
	"github.com/cmlabs-hris/payroll-backend-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/payroll-backend-go/internal/pkg/validator"
	"github.com/go-chi/chi/v5"
)

// idParam parses a positive int64 route parameter.
func idParam(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		return 0, validator.ValidationErrors{{Field: name, Message: "must be a positive integer"}}
	}
	return id, nil
}

// optionalIDQuery parses an optional positive int64 query parameter.
func optionalIDQuery(r *http.Request, name string) (*int64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return nil, validator.ValidationErrors{{Field: name, Message: "must be a positive integer"}}
	}
	return &id, nil
}

func principal(r *http.Request) (jwt.Principal, error) {
	p, ok := middleware.GetPrincipal(r.Context())
	if !ok {
		return jwt.Principal{}, auth.ErrInvalidToken
	}
	return p, nil
}

// authorizeEmployee returns the caller when it may act on employeeID.
func authorizeEmployee(r *http.Request, employeeID int64) (jwt.Principal, error) {
	p, err := principal(r)
	if err != nil {
		return jwt.Principal{}, err
	}
	if !p.CanAccess(employeeID) {
		return jwt.Principal{}, auth.ErrForbidden
	}
	return p, nil
}
