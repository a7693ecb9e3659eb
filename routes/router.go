package routes

import (
	"rehber.link/configs"
	"rehber.link/pkg/flashmessages"
	"rehber.link/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	recoverMiddleware "github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/session"
)

// Dependencies rotaların ihtiyaç duyduğu servis ve ayarlardır; main.go'da
// bir kez oluşturulur.
type Dependencies struct {
	ContactService services.IContactService
	ContactConfig  configs.ContactConfig
	SessionStore   *session.Store
}

// SetupRoutes tüm uygulama rotalarını ve genel middleware'leri ayarlar.
func SetupRoutes(app *fiber.App, deps Dependencies) {
	if deps.SessionStore == nil {
		deps.SessionStore = configs.SetupSession()
	}

	// --- Genel Middleware'ler ---
	app.Use(recoverMiddleware.New()) // Panic yakalama
	app.Use(logger.New())            // İstek loglama
	app.Use(initializeSessionLocals(deps.SessionStore))

	// --- Rota Grupları ---
	registerContactRoutes(app, deps.ContactService)
	if deps.ContactConfig.DashboardEnabled {
		registerDashboardRoutes(app, deps.ContactService, deps.SessionStore)
	}

	app.Get("/", rootRedirector)

	// En sonda, eşleşmeyen tüm rotaları yakalar.
	app.Use(notFoundHandler)
}

// initializeSessionLocals flash mesajları için session store'u her isteğe ekler.
func initializeSessionLocals(store *session.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals(flashmessages.SessionStoreLocalsKey, store)
		return c.Next()
	}
}

func rootRedirector(c *fiber.Ctx) error {
	return c.Redirect("/contacts", fiber.StatusFound)
}

func notFoundHandler(c *fiber.Ctx) error {
	accepts := c.Accepts("text/html", "application/json")
	switch accepts {
	case "application/json":
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Kaynak bulunamadı"})
	default:
		return c.Status(fiber.StatusNotFound).Render("errors/404", fiber.Map{"Title": "Sayfa Bulunamadı"}, "layouts/error_layout")
	}
}
