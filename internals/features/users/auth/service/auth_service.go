package service

import (
	"context"
	"errors"
	"strings"

	googleAuthIDTokenVerifier "github.com/futurenda/google-auth-id-token-verifier"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"ibadahku_backend/internals/configs"
	"ibadahku_backend/internals/constants"
	subService "ibadahku_backend/internals/features/ibadah/subscriptions/service"
	typeService "ibadahku_backend/internals/features/ibadah/types/service"
	"ibadahku_backend/internals/features/users/auth/dto"
	authHelper "ibadahku_backend/internals/features/users/auth/helper"
	authRepo "ibadahku_backend/internals/features/users/auth/repository"
	userModel "ibadahku_backend/internals/features/users/user/model"
	helper "ibadahku_backend/internals/helpers"
	helperauth "ibadahku_backend/internals/helpers/auth"
)

/* ==========================
   REGISTER
========================== */

func Register(db *gorm.DB, c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	req.Normalize()
	errs := helper.ValidateStruct(&req)
	if len(req.Password) >= 8 && !authHelper.IsAlphaNumeric(req.Password) {
		if errs == nil {
			errs = map[string][]string{}
		}
		errs["password"] = append(errs["password"], "harus mengandung huruf dan angka")
	}
	if errs != nil {
		return helper.JsonValidationError(c, errs)
	}

	hash, err := authHelper.HashPassword(req.Password)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memproses password")
	}
	p := userModel.ProfileModel{
		Email:    req.Email,
		FullName: req.FullName,
		Password: &hash,
		IsActive: true,
	}

	if err := createProfileWithDefaults(c.UserContext(), db, &p); err != nil {
		if helper.IsDuplicateKey(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Email sudah terdaftar")
		}
		return helper.JsonDBError(c, err, "gagal membuat akun")
	}
	log.Info().Str("user_id", p.ID.String()).Msg("[AUTH] user baru terdaftar")
	return helper.JsonCreated(c, "Registrasi berhasil", dto.ToUserResponse(&p, constants.RoleUser))
}

// createProfileWithDefaults buat profil + langganan semua ibadah default dalam satu transaksi.
func createProfileWithDefaults(ctx context.Context, db *gorm.DB, p *userModel.ProfileModel) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := authRepo.CreateProfile(ctx, tx, p); err != nil {
			return err
		}
		defaults, err := typeService.ListDefaults(ctx, tx)
		if err != nil {
			return err
		}
		return subService.SubscribeDefaults(ctx, tx, p.ID, defaults)
	})
}

/* ==========================
   LOGIN
========================== */

func Login(db *gorm.DB, c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	req.Normalize()
	if errs := helper.ValidateStruct(&req); errs != nil {
		return helper.JsonValidationError(c, errs)
	}

	p, err := authRepo.FindProfileByEmail(c.UserContext(), db, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Email atau password salah")
		}
		return helper.JsonDBError(c, err, "gagal login")
	}
	if !p.HasPassword() || authHelper.CheckPasswordHash(*p.Password, req.Password) != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Email atau password salah")
	}
	if !p.IsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Akun Anda telah dinonaktifkan. Hubungi admin.")
	}
	return issueTokens(c, db, p, "Login berhasil")
}

/* ==========================
   LOGIN GOOGLE
========================== */

func LoginGoogle(db *gorm.DB, c *fiber.Ctx) error {
	if strings.TrimSpace(configs.GoogleClientID) == "" {
		return helper.JsonError(c, fiber.StatusServiceUnavailable, "Login Google belum dikonfigurasi")
	}
	var req dto.GoogleLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	if errs := helper.ValidateStruct(&req); errs != nil {
		return helper.JsonValidationError(c, errs)
	}

	v := googleAuthIDTokenVerifier.Verifier{}
	if err := v.VerifyIDToken(req.IDToken, []string{configs.GoogleClientID}); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Google ID token tidak valid")
	}
	claimSet, err := googleAuthIDTokenVerifier.Decode(req.IDToken)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Gagal membaca Google ID token")
	}

	p, err := findOrCreateGoogleProfile(c.UserContext(), db, claimSet.Sub, dto.NormalizeEmail(claimSet.Email), claimSet.Name)
	if err != nil {
		if helper.IsDuplicateKey(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Email sudah terdaftar")
		}
		return helper.JsonDBError(c, err, "gagal login Google")
	}
	if !p.IsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Akun Anda telah dinonaktifkan. Hubungi admin.")
	}
	return issueTokens(c, db, p, "Login berhasil")
}

// findOrCreateGoogleProfile: cari google_id, lalu email (ditautkan), terakhir buat akun baru.
func findOrCreateGoogleProfile(ctx context.Context, db *gorm.DB, googleID, email, name string) (*userModel.ProfileModel, error) {
	p, err := authRepo.FindProfileByGoogleID(ctx, db, googleID)
	if err == nil {
		return p, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if email != "" {
		p, err = authRepo.FindProfileByEmail(ctx, db, email)
		if err == nil {
			if err := authRepo.LinkGoogleID(ctx, db, p.ID, googleID); err != nil {
				return nil, err
			}
			p.GoogleID = &googleID
			return p, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}

	name = strings.TrimSpace(name)
	if name == "" {
		name = strings.Split(email, "@")[0]
	}
	np := userModel.ProfileModel{
		Email:    email,
		FullName: name,
		GoogleID: &googleID,
		IsActive: true,
	}
	if err := createProfileWithDefaults(ctx, db, &np); err != nil {
		return nil, err
	}
	return &np, nil
}

/* ==========================
   LOGOUT
========================== */

// Logout idempotent: blacklist access token sisa umurnya, revoke refresh, hapus cookie.
func Logout(db *gorm.DB, c *fiber.Ctx) error {
	ctx := c.UserContext()
	if access := helper.GetRawAccessToken(c); access != "" {
		if secret, err := getJWTSecret(); err == nil {
			exp := accessTokenExpiry(access, secret, nowUTC())
			if exp.After(nowUTC()) {
				if err := helperauth.Add(ctx, db, access, secret, exp); err != nil {
					log.Warn().Err(err).Msg("[AUTH] gagal blacklist access token")
				}
			}
		}
	}

	refresh := helper.GetRefreshTokenFromCookie(c)
	if refresh == "" {
		var body dto.RefreshRequest
		_ = c.BodyParser(&body)
		refresh = strings.TrimSpace(body.RefreshToken)
	}
	if refresh != "" {
		if refreshSecret, err := getRefreshSecret(); err == nil {
			if err := authRepo.RevokeRefreshTokenByHash(ctx, db, computeRefreshHash(refresh, refreshSecret)); err != nil {
				log.Warn().Err(err).Msg("[AUTH] gagal revoke refresh token")
			}
		}
	}

	helper.ClearAuthCookies(c)
	return helper.JsonOK(c, "Logout berhasil", nil)
}

/* ==========================
   CHANGE PASSWORD & ME
========================== */

func ChangePassword(db *gorm.DB, c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	var req dto.ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	errs := helper.ValidateStruct(&req)
	if len(req.NewPassword) >= 8 && !authHelper.IsAlphaNumeric(req.NewPassword) {
		if errs == nil {
			errs = map[string][]string{}
		}
		errs["new_password"] = append(errs["new_password"], "harus mengandung huruf dan angka")
	}
	if errs != nil {
		return helper.JsonValidationError(c, errs)
	}

	ctx := c.UserContext()
	p, err := loadProfile(ctx, db, userID)
	if err != nil {
		return err
	}
	// akun Google-only boleh set password pertama tanpa password lama
	if p.HasPassword() && authHelper.CheckPasswordHash(*p.Password, req.CurrentPassword) != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Password lama salah")
	}

	hash, err := authHelper.HashPassword(req.NewPassword)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memproses password")
	}
	if err := authRepo.UpdatePassword(ctx, db, userID, hash); err != nil {
		return helper.JsonDBError(c, err, "gagal update password")
	}
	return helper.JsonUpdated(c, "Password berhasil diubah", nil)
}

func Me(db *gorm.DB, c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	p, err := loadProfile(c.UserContext(), db, userID)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "ok", dto.ToUserResponse(p, constants.RoleOf(p.IsAdmin)))
}

func loadProfile(ctx context.Context, db *gorm.DB, userID uuid.UUID) (*userModel.ProfileModel, error) {
	p, err := authRepo.FindProfileByID(ctx, db, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "User tidak ditemukan")
		}
		return nil, err
	}
	return p, nil
}
