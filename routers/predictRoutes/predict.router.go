package predictRoutes

import (
	predictController "medipulse/controllers/predictController"
	"medipulse/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupPredictRoutes(app *fiber.App) {
	// Prediction works signed out; signed-in callers get history persistence.
	app.Post("/predict", middleware.OptionalJWTMiddleware, predictController.Predict)
}
