package middlewares

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	helper "ibadahku_backend/internals/helpers"
)

// ErrorHandler mengubah error yang lolos dari handler jadi envelope JSON standar.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return helper.JsonError(c, fe.Code, fe.Message)
	}

	status, msg := helper.ClassifyDBError(err)
	if status >= fiber.StatusInternalServerError {
		log.Error().Err(err).
			Interface("request_id", c.Locals(LocRequestID)).
			Str("path", c.Path()).
			Msg("[ERROR] unhandled error")
	}
	return helper.JsonError(c, status, msg)
}
