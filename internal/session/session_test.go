package session

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/galmaraz/Sistema-de-Gesti-n-ISP/internal/middleware"
	"github.com/galmaraz/Sistema-de-Gesti-n-ISP/internal/models"
)

func testOperators(t *testing.T) []Operator {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.MinCost)
	require.NoError(t, err)

	return []Operator{{
		ID:           "1",
		Email:        "admin@isp.com",
		FullName:     "Administrador Sistema",
		Role:         models.RoleAdmin,
		PasswordHash: string(hash),
	}}
}

func TestLogin_Success(t *testing.T) {
	m := NewManager(testOperators(t), "upstream-secret")

	user, token, err := m.Login("admin@isp.com", "admin123")
	require.NoError(t, err)

	assert.Equal(t, "admin@isp.com", user.Email)
	assert.Equal(t, models.RoleAdmin, user.Role)
	assert.NotEmpty(t, token)

	current, ok := m.Current()
	assert.True(t, ok)
	assert.Equal(t, user, current)
}

func TestLogin_IssuedTokenCarriesClaims(t *testing.T) {
	m := NewManager(testOperators(t), "")

	_, tokenString, err := m.Login("admin@isp.com", "admin123")
	require.NoError(t, err)

	parsed, err := jwt.ParseWithClaims(tokenString, &middleware.Claims{}, func(*jwt.Token) (interface{}, error) {
		return middleware.JWTSecret(), nil
	})
	require.NoError(t, err)
	require.True(t, parsed.Valid)

	claims := parsed.Claims.(*middleware.Claims)
	assert.Equal(t, "admin@isp.com", claims.Email)
	assert.Equal(t, "admin", claims.Role)
}

func TestLogin_WrongPassword(t *testing.T) {
	m := NewManager(testOperators(t), "upstream-secret")

	_, _, err := m.Login("admin@isp.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, ok := m.Current()
	assert.False(t, ok)
}

func TestLogin_UnknownOperator(t *testing.T) {
	m := NewManager(testOperators(t), "upstream-secret")

	_, _, err := m.Login("nobody@isp.com", "admin123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestUpstreamToken_GatedBySession(t *testing.T) {
	m := NewManager(testOperators(t), "upstream-secret")

	assert.Empty(t, m.Token(), "no bearer before login")

	_, _, err := m.Login("admin@isp.com", "admin123")
	require.NoError(t, err)
	assert.Equal(t, "upstream-secret", m.Token())

	m.Logout()
	assert.Empty(t, m.Token(), "logout tears the session down")
	_, ok := m.Current()
	assert.False(t, ok)
}

func TestOperatorsParsing(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("pw"), bcrypt.MinCost)

	ops, err := parseOperators("tec@isp.com:Juan Pérez:technician:" + string(hash))
	require.NoError(t, err)
	require.Len(t, ops, 1)
	assert.Equal(t, models.RoleTechnician, ops[0].Role)
	assert.Equal(t, "Juan Pérez", ops[0].FullName)

	_, err = parseOperators("broken-entry")
	assert.Error(t, err)

	_, err = parseOperators("a@b.c:X:superuser:" + string(hash))
	assert.Error(t, err, "unknown roles are rejected")
}
