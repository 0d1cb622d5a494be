// internals/middlewares/auth/claim_utils.go
package auth

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	errUserNotFound = errors.New("user not found")
	errUserInactive = errors.New("user inactive")
)

/* ======== Extractors ======== */

func extractBearerToken(c *fiber.Ctx) (string, error) {
	auth := strings.TrimSpace(c.Get(fiber.HeaderAuthorization))
	if auth == "" {
		if cookieTok := c.Cookies("access_token"); cookieTok != "" {
			auth = "Bearer " + cookieTok
		}
	}
	if auth == "" {
		return "", fmt.Errorf("unauthorized - No token provided")
	}

	fields := strings.Fields(auth)
	if len(fields) < 2 || !strings.EqualFold(fields[0], "Bearer") {
		return "", fmt.Errorf("unauthorized - Invalid token format")
	}
	tok := strings.Trim(strings.TrimSpace(fields[1]), "\"'")
	if tok == "" {
		return "", fmt.Errorf("unauthorized - Empty token")
	}
	return tok, nil
}

// parseAccessToken verifikasi signature HS256; exp dicek manual (dengan skew).
func parseAccessToken(tokenString, secret string) (jwt.MapClaims, error) {
	claims := jwt.MapClaims{}
	parser := jwt.Parser{SkipClaimsValidation: true}
	_, err := parser.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	if typ, ok := claims["typ"].(string); ok && typ != "access" {
		return nil, fmt.Errorf("token type %q bukan access", typ)
	}
	return claims, nil
}

func validateTokenExpiry(claims jwt.MapClaims, skew time.Duration) error {
	expVal, ok := claims["exp"]
	if !ok {
		return fmt.Errorf("token has no exp")
	}

	var expUnix int64
	switch t := expVal.(type) {
	case float64:
		expUnix = int64(t)
	case int64:
		expUnix = t
	case string:
		n, err := strconv.ParseInt(strings.TrimSpace(t), 10, 64)
		if err != nil {
			return fmt.Errorf("invalid exp format")
		}
		expUnix = n
	default:
		return fmt.Errorf("invalid exp type")
	}

	expTime := time.Unix(expUnix, 0).UTC()
	if time.Now().UTC().After(expTime.Add(skew)) {
		return fmt.Errorf("token expired at %v", expTime)
	}
	return nil
}

func extractUserID(claims jwt.MapClaims) (uuid.UUID, error) {
	v, ok := claims["id"].(string)
	if !ok {
		return uuid.Nil, fmt.Errorf("no user id")
	}
	return uuid.Parse(strings.TrimSpace(v))
}

type activeProfile struct {
	ID       uuid.UUID `gorm:"column:id"`
	FullName string    `gorm:"column:full_name"`
	IsAdmin  bool      `gorm:"column:is_admin"`
	IsActive bool      `gorm:"column:is_active"`
}

// loadActiveProfile: flag admin selalu diambil dari DB, bukan dari klaim token.
func loadActiveProfile(ctx context.Context, db *gorm.DB, userID uuid.UUID) (*activeProfile, error) {
	var p activeProfile
	res := db.WithContext(ctx).
		Raw(`SELECT id, full_name, is_admin, is_active FROM profiles WHERE id = ? LIMIT 1`, userID).
		Scan(&p)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, errUserNotFound
	}
	if !p.IsActive {
		return nil, errUserInactive
	}
	return &p, nil
}
