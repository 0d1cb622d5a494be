// internals/middlewares/auth/auth_middleware.go
package auth

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"ibadahku_backend/internals/configs"
	helper "ibadahku_backend/internals/helpers"
	helperauth "ibadahku_backend/internals/helpers/auth"
)

const expirySkew = 30 * time.Second

// AuthMiddleware wajib login: token Bearer (atau cookie access_token),
// tidak di-blacklist, signature valid, belum expired, dan profil aktif.
func AuthMiddleware(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString, err := extractBearerToken(c)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, err.Error())
		}

		secretKey := configs.JWTSecret
		if secretKey == "" {
			log.Error().Msg("[ERROR] JWT_SECRET kosong")
			return fiber.NewError(fiber.StatusInternalServerError, "Missing JWT Secret")
		}

		blacklisted, err := helperauth.IsBlacklisted(c.UserContext(), db, tokenString, secretKey)
		if err != nil {
			log.Error().Err(err).Msg("[ERROR] DB error saat cek blacklist")
			return fiber.NewError(fiber.StatusInternalServerError, "Internal Server Error")
		}
		if blacklisted {
			return fiber.NewError(fiber.StatusUnauthorized, "Sesi sudah keluar. Silakan login lagi.")
		}

		claims, err := parseAccessToken(tokenString, secretKey)
		if err != nil {
			log.Debug().Err(err).Msg("[AUTH] gagal parse token")
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Token parse error")
		}
		if err := validateTokenExpiry(claims, expirySkew); err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Token expired")
		}

		userID, err := extractUserID(claims)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Invalid or missing user ID")
		}

		profile, err := loadActiveProfile(c.UserContext(), db, userID)
		switch {
		case errors.Is(err, errUserNotFound):
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - User not found")
		case errors.Is(err, errUserInactive):
			return fiber.NewError(fiber.StatusForbidden, "Akun Anda telah dinonaktifkan")
		case err != nil:
			log.Error().Err(err).Msg("[ERROR] gagal cek profil aktif")
			return fiber.NewError(fiber.StatusInternalServerError, "Internal Server Error")
		}

		c.Locals(helper.LocUserID, profile.ID.String())
		c.Locals(helper.LocIsAdmin, profile.IsAdmin)
		c.Locals(helper.LocUserName, profile.FullName)
		helper.SetRawAccessToken(c, tokenString)
		return c.Next()
	}
}

// OptionalAuth sama seperti AuthMiddleware tapi tidak pernah menolak:
// token bermasalah = lanjut sebagai anonymous.
func OptionalAuth(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString, err := extractBearerToken(c)
		if err != nil || configs.JWTSecret == "" {
			return c.Next()
		}
		if bl, err := helperauth.IsBlacklisted(c.UserContext(), db, tokenString, configs.JWTSecret); err != nil || bl {
			return c.Next()
		}
		claims, err := parseAccessToken(tokenString, configs.JWTSecret)
		if err != nil || validateTokenExpiry(claims, expirySkew) != nil {
			return c.Next()
		}
		userID, err := extractUserID(claims)
		if err != nil {
			return c.Next()
		}
		profile, err := loadActiveProfile(c.UserContext(), db, userID)
		if err != nil {
			return c.Next()
		}
		c.Locals(helper.LocUserID, profile.ID.String())
		c.Locals(helper.LocIsAdmin, profile.IsAdmin)
		c.Locals(helper.LocUserName, profile.FullName)
		return c.Next()
	}
}
