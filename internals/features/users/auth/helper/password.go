package helper

import (
	"regexp"

	"golang.org/x/crypto/bcrypt"
)

var (
	reLetter = regexp.MustCompile(`[A-Za-z]`)
	reDigit  = regexp.MustCompile(`[0-9]`)
)

func HashPassword(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func CheckPasswordHash(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}

// IsAlphaNumeric minimal satu huruf dan satu angka.
func IsAlphaNumeric(s string) bool {
	return reLetter.MatchString(s) && reDigit.MatchString(s)
}
