package authenticating

import (
	"crypto/rand"
	"math/big"
	"strings"

	"github.com/vfg2006/school-portal-api/pkg/apiErrors"
)

const (
	lowerChars   = "abcdefghijklmnopqrstuvwxyz"
	upperChars   = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	numberChars  = "0123456789"
	specialChars = "!@#$%^&*()-_=+[]{}|;:,.<>?"

	minPasswordLength       = 8
	generatedPasswordLength = 12
)

// ValidatePasswordStrength exige 8 caracteres com maiúscula, minúscula, número e caractere especial
func ValidatePasswordStrength(password string) error {
	if len(password) < minPasswordLength {
		return NewAuthError(ErrWeakPassword, apiErrors.ErrInvalidFormat, "a senha deve conter pelo menos 8 caracteres")
	}

	var hasUpper, hasLower, hasNumber, hasSpecial bool
	for _, char := range password {
		switch {
		case strings.ContainsRune(lowerChars, char):
			hasLower = true
		case strings.ContainsRune(upperChars, char):
			hasUpper = true
		case strings.ContainsRune(numberChars, char):
			hasNumber = true
		case strings.ContainsRune(specialChars, char):
			hasSpecial = true
		}
	}

	switch {
	case !hasUpper:
		return NewAuthError(ErrWeakPassword, apiErrors.ErrInvalidFormat, "a senha deve conter pelo menos uma letra maiúscula")
	case !hasLower:
		return NewAuthError(ErrWeakPassword, apiErrors.ErrInvalidFormat, "a senha deve conter pelo menos uma letra minúscula")
	case !hasNumber:
		return NewAuthError(ErrWeakPassword, apiErrors.ErrInvalidFormat, "a senha deve conter pelo menos um número")
	case !hasSpecial:
		return NewAuthError(ErrWeakPassword, apiErrors.ErrInvalidFormat, "a senha deve conter pelo menos um caractere especial")
	}

	return nil
}

// generateStrongPassword garante um caractere de cada classe e embaralha o resultado
func generateStrongPassword(length int) (string, error) {
	if length < minPasswordLength {
		length = minPasswordLength
	}

	classes := []string{lowerChars, upperChars, numberChars, specialChars}
	all := strings.Join(classes, "")

	password := make([]byte, length)
	for i := range password {
		charset := all
		if i < len(classes) {
			charset = classes[i]
		}

		n, err := randomInt(len(charset))
		if err != nil {
			return "", err
		}
		password[i] = charset[n]
	}

	for i := range password {
		j, err := randomInt(len(password))
		if err != nil {
			return "", err
		}
		password[i], password[j] = password[j], password[i]
	}

	return string(password), nil
}

func randomInt(max int) (int, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(int64(max)))
	if err != nil {
		return 0, err
	}
	return int(n.Int64()), nil
}
