package historyController

import (
	"log"

	"medipulse/config"
	"medipulse/history"
	"medipulse/middleware"

	"github.com/gofiber/fiber/v2"
)

// History returns the caller's prediction history, newest first.
func History(c *fiber.Ctx) error {
	username, ok := c.Locals("username").(string)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid user session", nil)
	}

	limit := c.QueryInt("limit", config.AppConfig.HistoryLimit)
	if validated, ok := c.Locals("validatedHistoryLimit").(int); ok {
		limit = validated
	}

	records, err := history.Records.List(c.Context(), username, limit)
	if err != nil {
		log.Printf("Error fetching history for %s: %v", username, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch history", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "History retrieved successfully", fiber.Map{
		"records": records,
		"count":   len(records),
	})
}

// ClearHistory deletes all of the caller's own history records. Clearing an
// empty history succeeds.
func ClearHistory(c *fiber.Ctx) error {
	username, ok := c.Locals("username").(string)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid user session", nil)
	}

	if err := history.Records.Clear(c.Context(), username); err != nil {
		log.Printf("Error clearing history for %s: %v", username, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to clear history", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "History cleared successfully", nil)
}
