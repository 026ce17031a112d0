package route

import (
	"github.com/evandrarf/academiq-be/internal/delivery/http/handler"
	"github.com/evandrarf/academiq-be/internal/delivery/http/middleware"
	"github.com/gofiber/fiber/v2"
)

func SetupTutorRoute(api *fiber.App, handler handler.TutorHandler, m *middleware.Middleware) {
	api.Get("/health", handler.Health)

	router := api.Group("/", m.SessionMiddleware())
	{
		router.Post("/ask", handler.Ask)
		router.Get("/understanding", handler.Understanding)
		router.Get("/explanation", handler.Explanation)
		router.Get("/diagram", handler.Diagram)
		router.Get("/practice", handler.Practice)
		router.Post("/check_answer", handler.CheckAnswer)
		router.Post("/chat_api", handler.Chat)
		router.Get("/summary", handler.Summary)
		router.Get("/history", handler.History)
	}
}
