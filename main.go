package main

import (
	"log"

	"medipulse/config"
	"medipulse/database"
	"medipulse/history"
	"medipulse/ml"
	authRoutes "medipulse/routers/authRoutes"
	historyRoutes "medipulse/routers/historyRoutes"
	predictRoutes "medipulse/routers/predictRoutes"
	"medipulse/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()
	history.Init(database.Database.Db)

	// Model artifacts load once at startup; any fault here is fatal and
	// never surfaces as a per-request error.
	ml.LoadModel()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",        // Allowed HTTP methods
		AllowHeaders: "Content-Type,Authorization", // Allowed headers
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	// Serve static files from the public folder
	app.Static("/", "./public")

	authRoutes.SetupAuthRoutes(app)
	predictRoutes.SetupPredictRoutes(app)
	historyRoutes.SetupHistoryRoutes(app)

	utils.InitializeHistoryScheduler()

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
