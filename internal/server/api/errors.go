package api

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/lucy1234dev/server/internal/common"
	"github.com/lucy1234dev/server/internal/logging"
	"github.com/lucy1234dev/server/internal/shared"
)

const internalErrorMessage = "internal error"

var errBadBody = common.NewError(common.ErrorInvalidInput, "Invalid request body.")

var statusByKind = []struct {
	kind   error
	status int
}{
	{common.ErrorInternal, fiber.StatusInternalServerError},
	{common.ErrorInvalidInput, fiber.StatusBadRequest},
	{common.ErrorConflict, fiber.StatusConflict},
	{common.ErrorNotFound, fiber.StatusNotFound},
	{common.ErrorForbidden, fiber.StatusForbidden},
	{common.ErrorThrottled, fiber.StatusTooManyRequests},
}

func statusFor(err error) int {
	for _, m := range statusByKind {
		if errors.Is(err, m.kind) {
			return m.status
		}
	}
	return fiber.StatusInternalServerError
}

// errorHandler renders every failure as {"detail": ...}. Internal failures
// are logged and replaced by a generic message.
func errorHandler(l logging.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return c.Status(fe.Code).JSON(shared.ErrorResponse{Detail: fe.Message})
		}

		var throttled *common.ThrottledError
		if errors.As(err, &throttled) {
			c.Set(common.RetryAfterHeader, strconv.Itoa(throttled.RemainingSeconds))
			return c.Status(fiber.StatusTooManyRequests).JSON(shared.ErrorResponse{
				Detail:           throttled.Error(),
				RemainingSeconds: throttled.RemainingSeconds,
			})
		}

		status := statusFor(err)
		if status == fiber.StatusInternalServerError {
			l.Error(c.UserContext(), "request failed", "method", c.Method(), "path", c.Path(), "error", err)
			return c.Status(status).JSON(shared.ErrorResponse{Detail: internalErrorMessage})
		}

		return c.Status(status).JSON(shared.ErrorResponse{Detail: err.Error()})
	}
}

func decode(c *fiber.Ctx, v any) error {
	if err := c.App().Config().JSONDecoder(c.Body(), v); err != nil {
		return errBadBody
	}
	return nil
}
