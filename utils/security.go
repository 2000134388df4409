package utils

import (
	"strings"

	"golang.org/x/crypto/bcrypt"
)

func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func CheckPasswordHash(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// MaskEmail returns masked email for safe display in logs.
func MaskEmail(email string) string {
	email = strings.TrimSpace(email)
	parts := strings.Split(email, "@")
	if len(parts) != 2 {
		return email
	}
	local := parts[0]
	domain := parts[1]

	maskedLocal := local
	if len(local) > 2 {
		maskedLocal = local[:1] + strings.Repeat("*", len(local)-2) + local[len(local)-1:]
	} else if len(local) == 2 {
		maskedLocal = local[:1] + "*"
	}

	domainParts := strings.Split(domain, ".")
	if len(domainParts) >= 2 && len(domainParts[0]) > 1 {
		domainParts[0] = domainParts[0][:1] + strings.Repeat("*", len(domainParts[0])-1)
	}

	return maskedLocal + "@" + strings.Join(domainParts, ".")
}
