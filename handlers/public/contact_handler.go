package handlers

import (
	"errors"

	"rehber.link/configs/configslog"
	"rehber.link/models"
	"rehber.link/pkg/queryparams"
	"rehber.link/pkg/renderer"
	"rehber.link/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const mainLayout = "layouts/main"

// ContactHandler rehberin herkese açık liste ve detay sayfalarını yönetir.
// Accept: application/json isteyen istemcilere aynı veriyi JSON olarak döner.
type ContactHandler struct {
	service services.IContactService
}

// NewContactHandler yeni bir ContactHandler örneği oluşturur.
func NewContactHandler(service services.IContactService) *ContactHandler {
	return &ContactHandler{service: service}
}

// Detail slug ile tek bir kaydı gösterir.
func (h *ContactHandler) Detail(c *fiber.Ctx) error {
	slug := c.Params("slug")
	contact, err := h.service.GetContactBySlug(c.UserContext(), slug)
	if err != nil {
		if errors.Is(err, services.ErrContactNotFound) {
			return renderNotFound(c, "Kayıt bulunamadı.")
		}
		configslog.Log.Error("ContactHandler.Detail: kayıt alınamadı", zap.String("slug", slug), zap.Error(err))
		return renderError(c, "Kayıt yüklenirken bir sorun oluştu.")
	}

	if wantsJSON(c) {
		return c.JSON(contact)
	}
	return renderer.Render(c, "contacts/detail", mainLayout, fiber.Map{
		"Title":   contact.Name,
		"Contact": contact,
	})
}

// List tüm kayıtları listeler.
func (h *ContactHandler) List(c *fiber.Ctx) error {
	params := listParams(c)
	result, err := h.service.ListContacts(c.UserContext(), params)
	return h.renderList(c, "Rehber", params, result, err)
}

// People yalnızca kişileri listeler.
func (h *ContactHandler) People(c *fiber.Ctx) error {
	params := listParams(c)
	result, err := h.service.ListPeople(c.UserContext(), params)
	return h.renderList(c, "Kişiler", params, result, err)
}

// Organizations kişi dışındaki tüm kayıtları listeler.
func (h *ContactHandler) Organizations(c *fiber.Ctx) error {
	params := listParams(c)
	result, err := h.service.ListOrganizations(c.UserContext(), params)
	return h.renderList(c, "Kurumlar", params, result, err)
}

// ByType :type parametresindeki türe (anahtar veya sayı) ait kayıtları listeler.
func (h *ContactHandler) ByType(c *fiber.Ctx) error {
	contactType, ok := models.ParseContactType(c.Params("type"))
	if !ok {
		return renderNotFound(c, "Bilinmeyen kayıt türü.")
	}
	params := listParams(c)
	result, err := h.service.ListContactsByType(c.UserContext(), contactType, params)
	return h.renderList(c, contactType.Label(), params, result, err)
}

func (h *ContactHandler) renderList(c *fiber.Ctx, heading string, params queryparams.ListParams, result *queryparams.PaginatedResult, err error) error {
	if err != nil {
		if errors.Is(err, services.ErrContactPageNotFound) {
			return renderNotFound(c, "Geçersiz sayfa.")
		}
		configslog.Log.Error("ContactHandler: liste alınamadı", zap.String("path", c.Path()), zap.Error(err))
		return renderError(c, "Kayıtlar listelenirken bir sorun oluştu.")
	}

	if wantsJSON(c) {
		return c.JSON(result)
	}
	return renderer.Render(c, "contacts/list", mainLayout, fiber.Map{
		"Title":    heading,
		"Heading":  heading,
		"Result":   result,
		"Contacts": result.Data,
		"Params":   params,
		"BasePath": c.Path(),
	})
}

// listParams sorgu parametrelerini okur. Okunamayan sayfa numarası 1 sayılır.
func listParams(c *fiber.Ctx) queryparams.ListParams {
	params := queryparams.DefaultListParams("")
	if err := c.QueryParser(&params); err != nil {
		params = queryparams.DefaultListParams("")
		params.Name = c.Query("name")
		params.SortBy = c.Query("sort_by")
		params.OrderBy = c.Query("order_by", queryparams.DefaultOrderBy)
	}
	params.Validate()
	return params
}

func wantsJSON(c *fiber.Ctx) bool {
	return c.Accepts(fiber.MIMETextHTML, fiber.MIMEApplicationJSON) == fiber.MIMEApplicationJSON
}

// renderNotFound standart 404 sayfasını (veya JSON hatasını) döner.
func renderNotFound(c *fiber.Ctx, message string) error {
	if wantsJSON(c) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": message})
	}
	return renderer.Render(c, "errors/404", "layouts/error_layout", fiber.Map{
		"Title":   "Bulunamadı",
		"Message": message,
	}, fiber.StatusNotFound)
}

// renderError standart 500 hata sayfasını (veya JSON hatasını) döner.
func renderError(c *fiber.Ctx, message string) error {
	if wantsJSON(c) {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": message})
	}
	return renderer.Render(c, "errors/500", "layouts/error_layout", fiber.Map{
		"Title":   "Hata",
		"Message": message,
	}, fiber.StatusInternalServerError)
}
