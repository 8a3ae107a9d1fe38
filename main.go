package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/template/html/v2"

	"github.com/essa0044/ImageCategorizer/app/assets"
	"github.com/essa0044/ImageCategorizer/app/config"
	"github.com/essa0044/ImageCategorizer/app/database"
	"github.com/essa0044/ImageCategorizer/app/render"
	"github.com/essa0044/ImageCategorizer/app/routes/categories"
	"github.com/essa0044/ImageCategorizer/app/routes/classify"
	"github.com/essa0044/ImageCategorizer/app/routes/exams"
	"github.com/essa0044/ImageCategorizer/app/routes/images"
	"github.com/essa0044/ImageCategorizer/app/routes/submit"
	"github.com/essa0044/ImageCategorizer/app/routes/upload"
)

// customErrorHandler keeps error responses as JSON for API routes
func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}
	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
		"code":  code,
	})
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	defer cfg.DB.Close()

	// Run database migrations
	if err := database.RunMigrations(cfg.DB); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	store, err := assets.NewStore(cfg.UploadDir)
	if err != nil {
		log.Fatal(err)
	}
	renderer := render.NewRenderer(store)

	// Initialize template engine
	engine := html.New("./app/templates", ".html")

	// Create Fiber app
	app := fiber.New(fiber.Config{
		Views:        engine,
		ViewsLayout:  "layouts/main",
		ErrorHandler: customErrorHandler,
	})

	// Middleware
	app.Use(logger.New())
	app.Use(cors.New())

	// Routes
	categories.SetupCategoriesRoutes(app, cfg.DB)
	upload.SetupUploadRoutes(app, renderer)
	images.SetupImagesRoutes(app, store)
	classify.SetupClassifyRoutes(app)
	submit.SetupSubmitRoutes(app, cfg.DB, store)
	exams.SetupExamRoutes(app, cfg.DB)

	// Catch-all route for 404 errors (must be last)
	app.Use("*", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusNotFound, "Not found")
	})

	// Start server
	log.Println("Server starting on", cfg.ListenAddr)
	log.Fatal(app.Listen(cfg.ListenAddr))
}
