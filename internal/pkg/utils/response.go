package utils

import (
	stderrors "errors"

	"github.com/gofiber/fiber/v2"
	"github.com/house-price-service/internal/pkg/errors"
)

type ErrorResponse struct {
	Error *errors.AppError `json:"error"`
}

// SendJSON отдаёт тело ответа как есть: фронтенд ждёт плоский JSON без обёртки
func SendJSON(c *fiber.Ctx, status int, body interface{}) error {
	return c.Status(status).JSON(body)
}

func SendError(c *fiber.Ctx, err error) error {
	var appErr *errors.AppError
	if stderrors.As(err, &appErr) {
		return c.Status(appErr.StatusCode).JSON(ErrorResponse{
			Error: appErr,
		})
	}

	// Unknown error - return 500
	return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
		Error: errors.ErrInternalServer,
	})
}
