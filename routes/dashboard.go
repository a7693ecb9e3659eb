package routes

import (
	"time"

	handlers "rehber.link/handlers/dashboard"
	"rehber.link/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/csrf"
	"github.com/gofiber/fiber/v2/middleware/session"
)

// registerDashboardRoutes /dashboard altındaki yönetim rotalarını tanımlar.
// Kimlik doğrulama yapılmaz; uygulama bu grubu kendi auth katmanının
// arkasında açmalıdır (CONTACT_DASHBOARD_ENABLED).
func registerDashboardRoutes(app *fiber.App, service services.IContactService, store *session.Store) {
	contactHandler := handlers.NewContactHandler(service)

	dashboardGroup := app.Group("/dashboard")
	dashboardGroup.Use(csrf.New(csrf.Config{
		KeyLookup:      "form:csrf_token",
		CookieName:     "rehber_csrf",
		CookieSameSite: "Lax",
		CookieHTTPOnly: true,
		Expiration:     1 * time.Hour,
		ContextKey:     "csrf",
		Session:        store,
	}))

	// --- Rehber Yönetimi ---
	dashboardGroup.Get("/contacts", contactHandler.ListContacts)                 // GET /dashboard/contacts
	dashboardGroup.Get("/contacts/create", contactHandler.ShowCreateContact)     // GET /dashboard/contacts/create
	dashboardGroup.Post("/contacts/create", contactHandler.CreateContact)        // POST /dashboard/contacts/create
	dashboardGroup.Get("/contacts/update/:id", contactHandler.ShowUpdateContact) // GET /dashboard/contacts/update/{id}
	dashboardGroup.Post("/contacts/update/:id", contactHandler.UpdateContact)    // POST /dashboard/contacts/update/{id}
	dashboardGroup.Post("/contacts/delete/:id", contactHandler.DeleteContact)    // POST /dashboard/contacts/delete/{id} (Form için)
	dashboardGroup.Delete("/contacts/delete/:id", contactHandler.DeleteContact)  // DELETE /dashboard/contacts/delete/{id} (API/JS için)
}
