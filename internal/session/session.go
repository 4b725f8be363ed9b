// Package session owns the console's authenticated state: who the
// operator is, the JWT the browser carries, and the bearer token the
// transport client sends upstream. The session is process-scoped with
// explicit initialization on login and teardown on logout; nothing reads
// tokens from ambient storage.
package session

import (
	"errors"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/galmaraz/Sistema-de-Gesti-n-ISP/internal/middleware"
	"github.com/galmaraz/Sistema-de-Gesti-n-ISP/internal/models"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

const tokenTTL = 24 * time.Hour

// Operator is a console account: admin, technician or support. Accounts
// are configured at deploy time, not stored upstream.
type Operator struct {
	ID           string
	Email        string
	FullName     string
	Role         models.UserRole
	PasswordHash string // bcrypt
}

type Manager struct {
	mu            sync.RWMutex
	operators     []Operator
	upstreamToken string // deploy-time credential for the upstream API
	active        bool
	current       models.User
}

func NewManager(operators []Operator, upstreamToken string) *Manager {
	return &Manager{operators: operators, upstreamToken: upstreamToken}
}

// Login verifies the operator credential and initializes the session.
// On success it returns the operator identity and a signed console JWT.
func (m *Manager) Login(email, password string) (models.User, string, error) {
	var found *Operator
	for i := range m.operators {
		if m.operators[i].Email == email {
			found = &m.operators[i]
			break
		}
	}
	if found == nil {
		return models.User{}, "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(found.PasswordHash), []byte(password)); err != nil {
		return models.User{}, "", ErrInvalidCredentials
	}

	user := models.User{
		ID:       found.ID,
		Email:    found.Email,
		FullName: found.FullName,
		Role:     found.Role,
	}

	token, err := m.issueToken(user)
	if err != nil {
		return models.User{}, "", err
	}

	m.mu.Lock()
	m.active = true
	m.current = user
	m.mu.Unlock()

	return user, token, nil
}

// Logout tears the session down. Upstream calls issued afterwards go out
// unauthenticated and will be rejected there.
func (m *Manager) Logout() {
	m.mu.Lock()
	m.active = false
	m.current = models.User{}
	m.mu.Unlock()
}

// Current returns the logged-in operator, if any.
func (m *Manager) Current() (models.User, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current, m.active
}

// Token implements upstream.TokenSource. The upstream bearer is only
// released while a session is active.
func (m *Manager) Token() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if !m.active {
		return ""
	}
	return m.upstreamToken
}

// Refresh re-issues a console JWT for the already-authenticated operator.
func (m *Manager) Refresh(claims *middleware.Claims) (string, error) {
	return m.issueToken(models.User{
		ID:       claims.UserID,
		Email:    claims.Email,
		FullName: claims.FullName,
		Role:     models.UserRole(claims.Role),
	})
}

func (m *Manager) issueToken(user models.User) (string, error) {
	claims := middleware.Claims{
		UserID:   user.ID,
		Email:    user.Email,
		FullName: user.FullName,
		Role:     string(user.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(middleware.JWTSecret())
}
