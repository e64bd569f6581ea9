package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"

	"voicepos/config"
	"voicepos/database"
	"voicepos/handlers"
	"voicepos/metrics"
	"voicepos/nlp"
	"voicepos/pos"
	"voicepos/routes"
	"voicepos/store"
	"voicepos/transcribe"
)

func main() {
	// Load .env file
	err := godotenv.Load()
	if err != nil {
		log.Println("Error loading .env file, using environment variables")
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// Initialize database
	database.Connect(cfg.DatabaseURL)
	defer database.Close()

	lex := nlp.DefaultLexicon()
	m := metrics.New(cfg.MetricsNamespace)
	st := store.New(database.GetDB())
	dispatcher := pos.New(st, lex, m)

	var transcriber transcribe.Transcriber
	switch cfg.TranscribeProvider {
	case "gemini":
		transcriber = transcribe.NewGemini(cfg.GeminiAPIKey, cfg.GeminiModel)
	default:
		transcriber = transcribe.NewUplift(cfg.UpliftBaseURL, cfg.UpliftAPIKey, cfg.TranscribeTimeout)
	}

	h := handlers.New(transcriber, dispatcher, st, lex, m)

	app := fiber.New()

	// Add CORS middleware
	app.Use(cors.New())
	app.Use(logger.New())

	// Setup routes
	routes.SetupRoutes(app, h, m)

	// Start server
	log.Fatal(app.Listen(cfg.ListenAddr))
}
