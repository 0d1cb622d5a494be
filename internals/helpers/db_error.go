package helper

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

const (
	PgUniqueViolation     = "23505"
	PgForeignKeyViolation = "23503"
	PgCheckViolation      = "23514"
	PgInsufficientPriv    = "42501"
	PgUndefinedTable      = "42P01"
	PgUndefinedColumn     = "42703"
)

// PgCode ambil SQLSTATE dari error pgx (kosong kalau bukan error Postgres).
func PgCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

func IsDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	if PgCode(err) == PgUniqueViolation || errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "duplicate key") || strings.Contains(s, "unique constraint")
}

func IsUndefinedTable(err error) bool {
	return err != nil && PgCode(err) == PgUndefinedTable
}

func IsUndefinedColumn(err error) bool {
	return err != nil && PgCode(err) == PgUndefinedColumn
}

// ClassifyDBError memetakan error DB ke status HTTP + pesan lokal.
func ClassifyDBError(err error) (int, string) {
	if err == nil {
		return fiber.StatusOK, ""
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fiber.StatusNotFound, "Data tidak ditemukan"
	}
	if IsDuplicateKey(err) {
		return fiber.StatusConflict, "Data sudah ada (duplikat)"
	}
	switch PgCode(err) {
	case PgForeignKeyViolation:
		return fiber.StatusConflict, "Data masih terhubung dengan data lain"
	case PgCheckViolation:
		return fiber.StatusBadRequest, "Data tidak memenuhi aturan"
	case PgInsufficientPriv:
		return fiber.StatusForbidden, "Akses ke data ditolak"
	case PgUndefinedTable:
		return fiber.StatusInternalServerError, "Tabel belum tersedia, hubungi admin"
	case PgUndefinedColumn:
		return fiber.StatusInternalServerError, "Struktur tabel belum lengkap, hubungi admin"
	}
	return fiber.StatusInternalServerError, "Terjadi kesalahan pada server"
}

// JsonDBError log error lalu balas dengan envelope sesuai klasifikasi.
func JsonDBError(c *fiber.Ctx, err error, ctxMsg string) error {
	status, msg := ClassifyDBError(err)
	if status >= fiber.StatusInternalServerError {
		log.Error().Err(err).Str("path", c.Path()).Msg("[ERROR] " + ctxMsg)
	}
	return JsonError(c, status, msg)
}
