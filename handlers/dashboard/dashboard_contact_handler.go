package handlers

import (
	"errors"
	"fmt"

	"rehber.link/configs/configslog"
	"rehber.link/models"
	"rehber.link/pkg/flashmessages"
	"rehber.link/pkg/queryparams"
	"rehber.link/pkg/renderer"
	"rehber.link/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const (
	dashboardLayout   = "layouts/dashboard_layout"
	contactsListPath  = "/dashboard/contacts"
	contactCreatePath = "/dashboard/contacts/create"
)

// ContactHandler rehber kayıtlarının yönetim ekranlarını yönetir (Dashboard).
// Yetkilendirme bu paketin işi değildir; rotalar uygulamanın kendi
// auth middleware'inin arkasına bağlanmalıdır.
type ContactHandler struct {
	service services.IContactService
}

// NewContactHandler yeni bir ContactHandler örneği oluşturur.
func NewContactHandler(service services.IContactService) *ContactHandler {
	return &ContactHandler{service: service}
}

// ListContacts tüm kayıtları sayfalı listeler.
func (h *ContactHandler) ListContacts(c *fiber.Ctx) error {
	var params queryparams.ListParams
	if err := c.QueryParser(&params); err != nil {
		params = queryparams.DefaultListParams("")
	}
	params.Validate()

	renderData := fiber.Map{
		"Title":     "Rehber Kayıtları",
		"CsrfToken": c.Locals("csrf"),
		"Params":    params,
		"BasePath":  contactsListPath,
	}

	result, err := h.service.ListContacts(c.UserContext(), params)
	if errors.Is(err, services.ErrContactPageNotFound) {
		// mesajlar okunmadan yönlendirilir, ilk sayfada gösterilir
		return c.Redirect(contactsListPath, fiber.StatusSeeOther)
	}
	if flash, ferr := flashmessages.GetFlashMessages(c); ferr == nil {
		renderer.SetFlashMessages(renderData, flash)
	}
	if err != nil {
		configslog.Log.Error("Dashboard - ListContacts Error", zap.Error(err))
		renderData[renderer.FlashErrorKeyView] = "Kayıtlar listelenirken hata oluştu."
		result = &queryparams.PaginatedResult{Data: []models.Contact{}}
	}
	renderData["Result"] = result
	renderData["Contacts"] = result.Data

	return renderer.Render(c, "dashboard/contacts/list", dashboardLayout, renderData)
}

// ShowCreateContact boş kayıt formunu gösterir.
func (h *ContactHandler) ShowCreateContact(c *fiber.Ctx) error {
	form := models.ContactInput{ContactType: models.ContactTypePerson}
	flashmessages.GetFlashFormData(c, &form)

	return renderer.Render(c, "dashboard/contacts/form", dashboardLayout, fiber.Map{
		"Title":     "Yeni Kayıt",
		"Action":    contactCreatePath,
		"Form":      form,
		"CsrfToken": c.Locals("csrf"),
	})
}

// CreateContact formdan yeni kayıt oluşturur.
func (h *ContactHandler) CreateContact(c *fiber.Ctx) error {
	var input models.ContactInput
	if err := c.BodyParser(&input); err != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Geçersiz form verisi.")
		return c.Redirect(contactCreatePath, fiber.StatusSeeOther)
	}

	contact, err := h.service.CreateContact(c.UserContext(), input)
	if err != nil {
		if !isUserError(err) {
			configslog.Log.Error("Dashboard - CreateContact Error", zap.String("name", input.Name), zap.Error(err))
		}
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Kayıt oluşturulamadı: "+err.Error())
		_ = flashmessages.SetFlashFormData(c, input)
		return c.Redirect(contactCreatePath, fiber.StatusSeeOther)
	}

	_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, fmt.Sprintf("%q kaydı oluşturuldu.", contact.Name))
	return c.Redirect(contactsListPath, fiber.StatusSeeOther)
}

// ShowUpdateContact bir kaydın düzenleme formunu gösterir.
func (h *ContactHandler) ShowUpdateContact(c *fiber.Ctx) error {
	id, ok := contactID(c)
	if !ok {
		return c.Redirect(contactsListPath, fiber.StatusSeeOther)
	}

	contact, err := h.service.GetContactByID(c.UserContext(), id)
	if err != nil {
		errMsg := "Kayıt bulunamadı."
		if !errors.Is(err, services.ErrContactNotFound) {
			errMsg = "Kayıt bilgileri alınırken hata oluştu."
			configslog.Log.Error("Dashboard - ShowUpdateContact Error", zap.Uint("id", id), zap.Error(err))
		}
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, errMsg)
		return c.Redirect(contactsListPath, fiber.StatusSeeOther)
	}

	form := models.ContactInputFrom(&contact.ContactBase)
	flashmessages.GetFlashFormData(c, &form)

	return renderer.Render(c, "dashboard/contacts/form", dashboardLayout, fiber.Map{
		"Title":     "Kaydı Düzenle",
		"Action":    updatePath(id),
		"Form":      form,
		"Contact":   contact,
		"CsrfToken": c.Locals("csrf"),
	})
}

// UpdateContact formdaki değişiklikleri kaydeder.
func (h *ContactHandler) UpdateContact(c *fiber.Ctx) error {
	id, ok := contactID(c)
	if !ok {
		return c.Redirect(contactsListPath, fiber.StatusSeeOther)
	}
	redirectPathOnError := updatePath(id)

	var input models.ContactInput
	if err := c.BodyParser(&input); err != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Geçersiz form verisi.")
		return c.Redirect(redirectPathOnError, fiber.StatusSeeOther)
	}

	if _, err := h.service.UpdateContact(c.UserContext(), id, input); err != nil {
		if errors.Is(err, services.ErrContactNotFound) {
			_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Kayıt bulunamadı.")
			return c.Redirect(contactsListPath, fiber.StatusSeeOther)
		}
		if !isUserError(err) {
			configslog.Log.Error("Dashboard - UpdateContact Error", zap.Uint("id", id), zap.Error(err))
		}
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Güncelleme hatası: "+err.Error())
		_ = flashmessages.SetFlashFormData(c, input)
		return c.Redirect(redirectPathOnError, fiber.StatusSeeOther)
	}

	_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "Kayıt başarıyla güncellendi.")
	return c.Redirect(redirectPathOnError, fiber.StatusSeeOther)
}

// DeleteContact kaydı siler. Form (POST) ve DELETE isteklerinden çağrılır.
func (h *ContactHandler) DeleteContact(c *fiber.Ctx) error {
	id, ok := contactID(c)
	if !ok {
		return c.Redirect(contactsListPath, fiber.StatusSeeOther)
	}

	if err := h.service.DeleteContact(c.UserContext(), id); err != nil {
		errMsg := "Silme hatası: " + err.Error()
		if !errors.Is(err, services.ErrContactNotFound) {
			configslog.Log.Error("Dashboard - DeleteContact Error", zap.Uint("id", id), zap.Error(err))
		}
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, errMsg)
	} else {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "Kayıt başarıyla silindi.")
	}
	return c.Redirect(contactsListPath, fiber.StatusSeeOther)
}

func contactID(c *fiber.Ctx) (uint, bool) {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Geçersiz ID.")
		return 0, false
	}
	return uint(id), true
}

func updatePath(id uint) string {
	return fmt.Sprintf("/dashboard/contacts/update/%d", id)
}

// isUserError kullanıcının düzeltebileceği (loglanması gerekmeyen) hataları ayırır.
func isUserError(err error) bool {
	return errors.Is(err, services.ErrContactInvalidInput) || errors.Is(err, services.ErrContactSlugTaken)
}
