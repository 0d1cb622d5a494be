// internals/features/users/auth/service/token_service.go
package service

import (
	"crypto/hmac"
	"crypto/sha256"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"ibadahku_backend/internals/configs"
	"ibadahku_backend/internals/constants"
	"ibadahku_backend/internals/features/users/auth/dto"
	authModel "ibadahku_backend/internals/features/users/auth/model"
	authRepo "ibadahku_backend/internals/features/users/auth/repository"
	userModel "ibadahku_backend/internals/features/users/user/model"
	helper "ibadahku_backend/internals/helpers"
)

const (
	accessTTLDefault  = 24 * time.Hour
	refreshTTLDefault = 7 * 24 * time.Hour

	typAccess  = "access"
	typRefresh = "refresh"
)

var errRefreshInvalid = errors.New("refresh token invalid")

func nowUTC() time.Time { return time.Now().UTC() }

func getJWTSecret() (string, error) {
	secret := strings.TrimSpace(configs.JWTSecret)
	if secret == "" {
		secret = strings.TrimSpace(os.Getenv("JWT_SECRET"))
	}
	if secret == "" {
		return "", fiber.NewError(fiber.StatusInternalServerError, "JWT_SECRET belum diset")
	}
	return secret, nil
}

func getRefreshSecret() (string, error) {
	secret := strings.TrimSpace(configs.JWTRefreshSecret)
	if secret == "" {
		secret = strings.TrimSpace(os.Getenv("JWT_REFRESH_SECRET"))
	}
	if secret == "" {
		return "", fiber.NewError(fiber.StatusInternalServerError, "JWT_REFRESH_SECRET belum diset")
	}
	return secret, nil
}

func strptr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func computeRefreshHash(token, secret string) []byte {
	m := hmac.New(sha256.New, []byte(secret))
	_, _ = m.Write([]byte(token))
	return m.Sum(nil)
}

func buildAccessClaims(p *userModel.ProfileModel, now time.Time) jwt.MapClaims {
	return jwt.MapClaims{
		"typ":       typAccess,
		"sub":       p.ID.String(),
		"id":        p.ID.String(),
		"full_name": p.FullName,
		"role":      constants.RoleOf(p.IsAdmin),
		"iat":       now.Unix(),
		"exp":       now.Add(accessTTLDefault).Unix(),
	}
}

// jti unik supaya dua refresh token di detik yang sama tetap beda hash.
func buildRefreshClaims(userID uuid.UUID, now time.Time) jwt.MapClaims {
	return jwt.MapClaims{
		"typ": typRefresh,
		"sub": userID.String(),
		"id":  userID.String(),
		"jti": uuid.NewString(),
		"iat": now.Unix(),
		"exp": now.Add(refreshTTLDefault).Unix(),
	}
}

type tokenPair struct {
	Access     string
	Refresh    string
	AccessExp  time.Time
	RefreshExp time.Time
}

func signTokenPair(p *userModel.ProfileModel, now time.Time, secret, refreshSecret string) (*tokenPair, error) {
	access, err := jwt.NewWithClaims(jwt.SigningMethodHS256, buildAccessClaims(p, now)).SignedString([]byte(secret))
	if err != nil {
		return nil, err
	}
	refresh, err := jwt.NewWithClaims(jwt.SigningMethodHS256, buildRefreshClaims(p.ID, now)).SignedString([]byte(refreshSecret))
	if err != nil {
		return nil, err
	}
	return &tokenPair{
		Access:     access,
		Refresh:    refresh,
		AccessExp:  now.Add(accessTTLDefault),
		RefreshExp: now.Add(refreshTTLDefault),
	}, nil
}

// parseRefreshToken validasi signature, exp, dan typ=refresh; balikan user id.
func parseRefreshToken(raw, refreshSecret string) (uuid.UUID, error) {
	claims := jwt.MapClaims{}
	tok, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(refreshSecret), nil
	})
	if err != nil || !tok.Valid {
		return uuid.Nil, errRefreshInvalid
	}
	if typ, _ := claims["typ"].(string); typ != typRefresh {
		return uuid.Nil, errRefreshInvalid
	}
	sub, _ := claims["sub"].(string)
	id, err := uuid.Parse(sub)
	if err != nil {
		return uuid.Nil, errRefreshInvalid
	}
	return id, nil
}

// accessTokenExpiry exp dari access token (signature harus valid); fallback now+TTL.
func accessTokenExpiry(raw, secret string, now time.Time) time.Time {
	claims := jwt.MapClaims{}
	parser := jwt.Parser{SkipClaimsValidation: true}
	if _, err := parser.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
		return []byte(secret), nil
	}); err == nil {
		if exp, ok := claims["exp"].(float64); ok {
			return time.Unix(int64(exp), 0).UTC()
		}
	}
	return now.Add(accessTTLDefault)
}

// issueTokens tanda tangani pasangan token, simpan hash refresh, set cookie, tulis response.
func issueTokens(c *fiber.Ctx, db *gorm.DB, p *userModel.ProfileModel, message string) error {
	secret, err := getJWTSecret()
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	refreshSecret, err := getRefreshSecret()
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	now := nowUTC()
	pair, err := signTokenPair(p, now, secret, refreshSecret)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat token")
	}
	if err := authRepo.CreateRefreshToken(c.UserContext(), db, &authModel.RefreshTokenModel{
		UserID:    p.ID,
		Token:     computeRefreshHash(pair.Refresh, refreshSecret),
		ExpiresAt: pair.RefreshExp,
		UserAgent: strptr(c.Get(fiber.HeaderUserAgent)),
		IP:        strptr(c.IP()),
	}); err != nil {
		return helper.JsonDBError(c, err, "gagal menyimpan refresh token")
	}

	helper.SetAuthCookies(c, pair.Access, pair.Refresh, pair.AccessExp, pair.RefreshExp)
	return helper.JsonOK(c, message, fiber.Map{
		"user":          dto.ToUserResponse(p, constants.RoleOf(p.IsAdmin)),
		"access_token":  pair.Access,
		"refresh_token": pair.Refresh,
		"expires_at":    pair.AccessExp,
	})
}

// ========================== REFRESH TOKEN ==========================
// POST /api/auth/refresh-token
func RefreshToken(db *gorm.DB, c *fiber.Ctx) error {
	raw := helper.GetRefreshTokenFromCookie(c)
	if raw == "" {
		var body dto.RefreshRequest
		_ = c.BodyParser(&body)
		raw = strings.TrimSpace(body.RefreshToken)
	}
	if raw == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Refresh token tidak ada")
	}

	refreshSecret, err := getRefreshSecret()
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	userID, err := parseRefreshToken(raw, refreshSecret)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Refresh token invalid")
	}

	ctx := c.UserContext()
	rt, err := authRepo.FindActiveRefreshToken(ctx, db, computeRefreshHash(raw, refreshSecret))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Refresh token tidak dikenal")
		}
		return helper.JsonDBError(c, err, "gagal cek refresh token")
	}
	if rt.UserID != userID {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Refresh token invalid")
	}

	p, err := authRepo.FindProfileByID(ctx, db, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "User tidak ditemukan")
		}
		return helper.JsonDBError(c, err, "gagal ambil user")
	}
	if !p.IsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Akun dinonaktifkan")
	}

	// rotate: token lama tidak bisa dipakai lagi
	if err := authRepo.RevokeRefreshTokenByID(ctx, db, rt.ID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Refresh token sudah dipakai")
		}
		log.Error().Err(err).Str("user_id", userID.String()).Msg("[AUTH] revoke refresh lama gagal")
		return helper.JsonDBError(c, err, "gagal rotasi refresh token")
	}
	return issueTokens(c, db, p, "Token diperbarui")
}
