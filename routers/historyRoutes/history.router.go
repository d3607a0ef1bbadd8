package historyRoutes

import (
	historyController "medipulse/controllers/historyController"
	"medipulse/middleware"
	historyValidator "medipulse/validators/historyValidator"

	"github.com/gofiber/fiber/v2"
)

func SetupHistoryRoutes(app *fiber.App) {
	historyGroup := app.Group("/history")

	historyGroup.Get("", historyValidator.HistoryList(), middleware.JWTMiddleware, historyController.History)
	historyGroup.Post("/clear", middleware.JWTMiddleware, historyController.ClearHistory)
}
