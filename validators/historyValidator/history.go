package historyValidator

import (
	"strconv"

	"medipulse/config"
	"medipulse/middleware"

	"github.com/gofiber/fiber/v2"
)

// maxHistoryLimit caps a single listing to keep responses bounded.
const maxHistoryLimit = 200

// HistoryList validates the history listing query parameters.
func HistoryList() fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := c.Query("limit", "")
		if raw == "" {
			c.Locals("validatedHistoryLimit", config.AppConfig.HistoryLimit)
			return c.Next()
		}

		errors := make(map[string]string)

		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 1 {
			errors["limit"] = "Limit must be a positive number"
		} else if limit > maxHistoryLimit {
			errors["limit"] = "Limit must not exceed " + strconv.Itoa(maxHistoryLimit)
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedHistoryLimit", limit)
		return c.Next()
	}
}
