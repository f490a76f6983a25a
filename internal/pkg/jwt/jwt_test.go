package jwt

import (
	"testing"
	"time"

	"github.com/cmlabs-hris/payroll-backend-go/internal/domain/employee"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key-for-jwt"

func TestJWTService_GenerateAccessToken_RoundTrip(t *testing.T) {
	// Setup
	svc := NewJWTService(testSecret, time.Hour)
	emp := employee.Employee{ID: 42, Name: "Ada", EmployeeType: employee.TypeManagerial}

	// Act
	token, expiresAt, err := svc.GenerateAccessToken(emp)
	require.NoError(t, err)
	decoded, err := svc.JWTAuth().Decode(token)
	require.NoError(t, err)
	claims, err := decoded.AsMap(t.Context())
	require.NoError(t, err)
	principal, err := PrincipalFromClaims(claims)

	// Assert
	require.NoError(t, err)
	assert.Greater(t, expiresAt, time.Now().Unix())
	assert.Equal(t, int64(42), principal.EmployeeID)
	assert.Equal(t, "Ada", principal.Name)
	assert.Equal(t, employee.RoleManagerial, principal.Role)
	assert.False(t, principal.IsAdmin)
	assert.True(t, principal.CanManage())
}

func TestJWTService_AdminFlag(t *testing.T) {
	svc := NewJWTService(testSecret, time.Hour)

	token, _, err := svc.GenerateAccessToken(employee.Employee{ID: 1, Name: "Root", EmployeeType: employee.TypeAdmin})
	require.NoError(t, err)
	decoded, err := svc.JWTAuth().Decode(token)
	require.NoError(t, err)
	claims, err := decoded.AsMap(t.Context())
	require.NoError(t, err)

	principal, err := PrincipalFromClaims(claims)
	require.NoError(t, err)
	assert.True(t, principal.IsAdmin)
	assert.Equal(t, employee.RoleAdmin, principal.Role)
}

func TestJWTService_RevokeToken(t *testing.T) {
	svc := NewJWTService(testSecret, time.Hour)
	token, _, err := svc.GenerateAccessToken(employee.Employee{ID: 3, EmployeeType: employee.TypeEmployee})
	require.NoError(t, err)

	assert.False(t, svc.IsTokenRevoked(token))
	svc.RevokeToken(token)
	assert.True(t, svc.IsTokenRevoked(token))
}

func TestPrincipalFromClaims_Rejects(t *testing.T) {
	cases := map[string]map[string]interface{}{
		"wrong type":  {"type": "refresh", "sub": "1", "role": "admin"},
		"missing sub": {"type": "access", "role": "admin"},
		"bad sub":     {"type": "access", "sub": "abc", "role": "admin"},
		"no role":     {"type": "access", "sub": "1"},
	}
	for name, claims := range cases {
		_, err := PrincipalFromClaims(claims)
		assert.ErrorIs(t, err, ErrMissingClaims, name)
	}
}

func TestPrincipal_CanAccess(t *testing.T) {
	self := Principal{EmployeeID: 5, Role: employee.RoleEmployee}
	manager := Principal{EmployeeID: 9, Role: employee.RoleManagerial}

	assert.True(t, self.CanAccess(5))
	assert.False(t, self.CanAccess(6))
	assert.True(t, manager.CanAccess(6))
}
