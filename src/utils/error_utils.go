// error_utils.go
package utils

import (
	"mergington-activities/src/models"

	"github.com/gofiber/fiber/v2"
)

// HandleError writes the standard error envelope.
func HandleError(c *fiber.Ctx, status int, detail string) error {
	return c.Status(status).JSON(models.ErrorResponse{
		Status: status,
		Detail: detail,
	})
}
