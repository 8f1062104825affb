package models

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// APIResponse is the fixed success envelope. Clients depend on this exact
// shape; do not add fields.
type APIResponse struct {
	Status  int         `json:"status"`
	Data    interface{} `json:"data"`
	Message string      `json:"message"`
}

// APIErrorResponse is the fixed failure envelope.
type APIErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

// Respond writes the success envelope with the given status, payload and
// human-readable message.
func Respond(c *fiber.Ctx, status int, data interface{}, message string) error {
	return c.Status(status).JSON(APIResponse{
		Status:  status,
		Data:    data,
		Message: message,
	})
}

// RespondWithError writes the failure envelope. AppErrors carry their own
// status; anything else is reported as a plain 500 so storage faults are
// never dressed up as domain errors.
func RespondWithError(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	message := "Internal server error"

	var appErr *AppError
	if errors.As(err, &appErr) {
		status = appErr.HTTPStatus()
		message = appErr.Message
	}

	return c.Status(status).JSON(APIErrorResponse{
		Status:  status,
		Message: message,
	})
}
