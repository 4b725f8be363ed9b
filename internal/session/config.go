package session

import (
	"fmt"
	"os"
	"strings"

	"github.com/galmaraz/Sistema-de-Gesti-n-ISP/internal/models"
)

// OperatorsFromEnv reads the console accounts from the environment.
//
// CONSOLE_OPERATORS holds semicolon-separated entries of
// "email:fullname:role:bcrypt-hash" (bcrypt hashes never contain either
// separator). When unset, ADMIN_EMAIL and ADMIN_PASSWORD_HASH configure a
// single admin account.
func OperatorsFromEnv() ([]Operator, error) {
	if raw := os.Getenv("CONSOLE_OPERATORS"); raw != "" {
		return parseOperators(raw)
	}

	email := os.Getenv("ADMIN_EMAIL")
	hash := os.Getenv("ADMIN_PASSWORD_HASH")
	if email == "" || hash == "" {
		return nil, fmt.Errorf("no console operators configured: set CONSOLE_OPERATORS or ADMIN_EMAIL/ADMIN_PASSWORD_HASH")
	}

	return []Operator{{
		ID:           "1",
		Email:        email,
		FullName:     "Administrator",
		Role:         models.RoleAdmin,
		PasswordHash: hash,
	}}, nil
}

func parseOperators(raw string) ([]Operator, error) {
	validRoles := map[string]bool{
		string(models.RoleAdmin):      true,
		string(models.RoleTechnician): true,
		string(models.RoleSupport):    true,
	}

	var operators []Operator
	for i, entry := range strings.Split(raw, ";") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}

		parts := strings.SplitN(entry, ":", 4)
		if len(parts) != 4 {
			return nil, fmt.Errorf("malformed operator entry %d: want email:fullname:role:hash", i+1)
		}
		if !validRoles[parts[2]] {
			return nil, fmt.Errorf("operator %s: unknown role %q", parts[0], parts[2])
		}

		operators = append(operators, Operator{
			ID:           fmt.Sprintf("%d", i+1),
			Email:        parts[0],
			FullName:     parts[1],
			Role:         models.UserRole(parts[2]),
			PasswordHash: parts[3],
		})
	}

	if len(operators) == 0 {
		return nil, fmt.Errorf("CONSOLE_OPERATORS is set but empty")
	}
	return operators, nil
}
