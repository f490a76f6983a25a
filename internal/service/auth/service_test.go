package auth

import (
	"context"
	"testing"
	"time"

	"github.com/cmlabs-hris/payroll-backend-go/internal/domain/auth"
	"github.com/cmlabs-hris/payroll-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/payroll-backend-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/payroll-backend-go/internal/pkg/validator"
	"github.com/cmlabs-hris/payroll-backend-go/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testSecret = "test-secret-key-for-jwt"

func setupAuth(t *testing.T) (auth.AuthService, *jwt.JWTService, employee.Employee) {
	t.Helper()
	repo := memory.NewEmployeeRepository(memory.NewStore())
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)
	email := "manager@example.com"
	emp, err := repo.Create(context.Background(), employee.Employee{
		Name:         "Mona Manager",
		Username:     "mona",
		Email:        &email,
		PasswordHash: string(hash),
		EmployeeType: employee.TypeManagerial,
	})
	require.NoError(t, err)

	jwtService := jwt.NewJWTService(testSecret, time.Hour)
	return NewAuthService(repo, jwtService), jwtService, emp
}

func TestAuthService_Login_Success(t *testing.T) {
	// Setup
	svc, jwtService, emp := setupAuth(t)

	// Act
	byUsername, err := svc.Login(context.Background(), auth.LoginRequest{Username: "mona", Password: "password123"})
	require.NoError(t, err)
	byEmail, err := svc.Login(context.Background(), auth.LoginRequest{Email: "MANAGER@example.com", Password: "password123"})
	require.NoError(t, err)

	// Assert
	assert.NotEmpty(t, byUsername.AccessToken)
	assert.Equal(t, "Bearer", byUsername.TokenType)
	assert.Greater(t, byUsername.ExpiresAt, time.Now().Unix())
	assert.Equal(t, emp.ID, byUsername.Employee.ID)
	assert.Equal(t, employee.RoleManagerial, byUsername.Employee.Role)
	assert.Equal(t, emp.ID, byEmail.Employee.ID)

	decoded, err := jwtService.JWTAuth().Decode(byUsername.AccessToken)
	require.NoError(t, err)
	claims, err := decoded.AsMap(context.Background())
	require.NoError(t, err)
	principal, err := jwt.PrincipalFromClaims(claims)
	require.NoError(t, err)
	assert.Equal(t, emp.ID, principal.EmployeeID)
}

func TestAuthService_Login_InvalidCredentials(t *testing.T) {
	svc, _, _ := setupAuth(t)

	_, err := svc.Login(context.Background(), auth.LoginRequest{Username: "mona", Password: "wrong"})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)

	_, err = svc.Login(context.Background(), auth.LoginRequest{Username: "nobody", Password: "password123"})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestAuthService_Login_Validation(t *testing.T) {
	svc, _, _ := setupAuth(t)

	_, err := svc.Login(context.Background(), auth.LoginRequest{})

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs.ToMap(), "username")
	assert.Contains(t, verrs.ToMap(), "password")
}

func TestAuthService_Logout_RevokesToken(t *testing.T) {
	svc, jwtService, _ := setupAuth(t)
	resp, err := svc.Login(context.Background(), auth.LoginRequest{Username: "mona", Password: "password123"})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(context.Background(), resp.AccessToken))

	assert.True(t, jwtService.IsTokenRevoked(resp.AccessToken))
	assert.ErrorIs(t, svc.Logout(context.Background(), ""), auth.ErrInvalidToken)
}

func TestAuthService_Me(t *testing.T) {
	svc, _, emp := setupAuth(t)

	me, err := svc.Me(context.Background(), emp.ID)
	require.NoError(t, err)
	assert.Equal(t, "mona", me.Username)

	_, err = svc.Me(context.Background(), 999)
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}
