package classify

import (
	"github.com/gofiber/fiber/v2"
)

// SetupClassifyRoutes sets up the auto-classification route
func SetupClassifyRoutes(app *fiber.App) {
	app.Post("/api/auto-classify", AutoClassify)
}
