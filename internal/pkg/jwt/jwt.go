package jwt

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"time"

	"github.com/cmlabs-hris/payroll-backend-go/internal/domain/employee"
	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

var ErrMissingClaims = errors.New("token is missing required claims")

type Service interface {
	GenerateAccessToken(emp employee.Employee) (token string, expiresAt int64, err error)
	JWTAuth() *jwtauth.JWTAuth
	RevokeToken(token string)
	IsTokenRevoked(token string) bool
}

// Principal is the authenticated employee carried by an access token.
type Principal struct {
	EmployeeID int64
	Name       string
	Role       employee.Role
	IsAdmin    bool
}

func (p Principal) CanManage() bool {
	return p.Role.CanManage()
}

// CanAccess reports whether the principal may read records of employeeID.
func (p Principal) CanAccess(employeeID int64) bool {
	return p.EmployeeID == employeeID || p.CanManage()
}

type JWTService struct {
	accessTokenExpirationTime time.Duration
	tokenAuth                 *jwtauth.JWTAuth
	revokedTokens             map[string]int64
	mu                        sync.RWMutex
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

func NewJWTService(secretKey string, accessTokenExpirationTime time.Duration) *JWTService {
	return &JWTService{
		accessTokenExpirationTime: accessTokenExpirationTime,
		tokenAuth:                 jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
		revokedTokens:             make(map[string]int64),
	}
}

func (j *JWTService) GenerateAccessToken(emp employee.Employee) (token string, expiresAt int64, err error) {
	expiresAt = time.Now().Add(j.accessTokenExpirationTime).Unix()
	role := emp.EmployeeType.Role()

	claims := map[string]interface{}{
		"sub":         strconv.FormatInt(emp.ID, 10),
		"employee_id": emp.ID,
		"name":        emp.Name,
		"role":        string(role),
		"is_admin":    role == employee.RoleAdmin,
		"type":        "access",
		"exp":         expiresAt,
	}

	_, tokenString, err := j.tokenAuth.Encode(claims)
	return tokenString, expiresAt, err
}

func (j *JWTService) RevokeToken(token string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.revokedTokens[token] = time.Now().Unix()
}

func (j *JWTService) IsTokenRevoked(token string) bool {
	j.mu.RLock()
	defer j.mu.RUnlock()
	_, revoked := j.revokedTokens[token]
	return revoked
}

// PrincipalFromClaims rebuilds the principal from decoded access token claims.
func PrincipalFromClaims(claims map[string]interface{}) (Principal, error) {
	if t, _ := claims["type"].(string); t != "access" {
		return Principal{}, ErrMissingClaims
	}

	sub, _ := claims["sub"].(string)
	id, err := strconv.ParseInt(sub, 10, 64)
	if err != nil || id <= 0 {
		return Principal{}, ErrMissingClaims
	}

	role, _ := claims["role"].(string)
	if role == "" {
		return Principal{}, ErrMissingClaims
	}
	name, _ := claims["name"].(string)
	isAdmin, _ := claims["is_admin"].(bool)

	return Principal{
		EmployeeID: id,
		Name:       name,
		Role:       employee.Role(role),
		IsAdmin:    isAdmin,
	}, nil
}

// PrincipalFromContext reads the token verified by jwtauth.Verifier.
func PrincipalFromContext(ctx context.Context) (Principal, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return Principal{}, err
	}
	return PrincipalFromClaims(claims)
}
