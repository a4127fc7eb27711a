package presenters

import (
	"errors"

	"SmartServe-Backend/domain"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
)

type ErrorBody struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

func SuccessResponse(c *fiber.Ctx, data any, status int) error {
	return c.Status(status).JSON(data)
}

// ErrorResponse maps a domain.RequestError to its status/code/message
// triple. Anything else is an unexpected fault: the detail goes to the
// server log only and the client sees a generic 500.
func ErrorResponse(c *fiber.Ctx, err error) error {
	var reqErr *domain.RequestError
	if errors.As(err, &reqErr) {
		return c.Status(reqErr.Status).JSON(ErrorBody{Error: reqErr.Message, Code: reqErr.Code})
	}

	log.Errorf("%s %s: %v", c.Method(), c.Path(), err)
	return c.Status(fiber.StatusInternalServerError).JSON(ErrorBody{
		Error: "Internal server error",
		Code:  "INTERNAL_SERVER_ERROR",
	})
}
