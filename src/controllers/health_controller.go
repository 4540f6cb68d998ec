package controllers

import (
	"mergington-activities/src/database"
	"mergington-activities/src/models"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
)

// HealthController reports process and Redis liveness.
type HealthController struct {
	redis *redis.Client
}

// NewHealthController accepts a nil client when Redis is not configured.
func NewHealthController(client *redis.Client) *HealthController {
	return &HealthController{redis: client}
}

// GetHealth godoc
// @Summary      Health check
// @Tags         health
// @Produce      json
// @Success      200  {object}  models.HealthResponse
// @Router       /healthz [get]
func (hc *HealthController) GetHealth(c *fiber.Ctx) error {
	return c.JSON(models.HealthResponse{
		Status: "ok",
		Redis:  database.RedisStatus(c.UserContext(), hc.redis),
	})
}
