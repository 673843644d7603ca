package middlewares

import (
	"github.com/gofiber/fiber/v2"

	"igrejaku_backend/internals/middlewares/logger"
)

// SetupMiddlewares registra os middlewares globais na ordem correta:
// recovery primeiro (pega panic de tudo abaixo), depois CORS, logger e limiter.
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
	app.Use(logger.LoggerMiddleware())
	app.Use(GlobalRateLimiter())
}
