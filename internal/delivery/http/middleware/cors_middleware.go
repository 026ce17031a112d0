package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

// CorsMiddleware allows the configured origins. The session cookie is only
// sent cross-origin when api.cors.origins names explicit origins, since
// credentials cannot be combined with "*".
func (m *Middleware) CorsMiddleware() fiber.Handler {
	allowOrigins := "*"
	if m != nil && m.Config != nil {
		if v := m.Config.GetString("api.cors.origins"); v != "" {
			allowOrigins = v
		}
	}

	return cors.New(cors.Config{
		AllowHeaders:     "Origin, Content-Type, Accept, Content-Length, Accept-Encoding",
		AllowMethods:     "GET, POST, OPTIONS",
		AllowOrigins:     allowOrigins,
		AllowCredentials: allowOrigins != "*",
		ExposeHeaders:    "Content-Length, Content-Type",
	})
}
