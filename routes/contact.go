package routes

import (
	handlers "rehber.link/handlers/public"
	"rehber.link/services"

	"github.com/gofiber/fiber/v2"
)

// registerContactRoutes /contacts altındaki herkese açık sayfaları tanımlar.
func registerContactRoutes(app *fiber.App, service services.IContactService) {
	contactHandler := handlers.NewContactHandler(service)

	contacts := app.Group("/contacts")
	contacts.Get("/", contactHandler.List)                       // GET /contacts
	contacts.Get("/people", contactHandler.People)               // GET /contacts/people
	contacts.Get("/organizations", contactHandler.Organizations) // GET /contacts/organizations
	contacts.Get("/types/:type", contactHandler.ByType)          // GET /contacts/types/{type}

	// Sabit yollardan SONRA tanımlanmalı; "people" vb. slug olarak kullanılamaz.
	contacts.Get("/:slug", contactHandler.Detail) // GET /contacts/{slug}
}
