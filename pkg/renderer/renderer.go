// Package renderer handler'ların ortak sayfa render yardımcısıdır.
package renderer

import (
	"rehber.link/configs/configslog"
	"rehber.link/pkg/flashmessages"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const (
	FlashSuccessKeyView = "Success"
	FlashErrorKeyView   = "Error"
)

// Render view'ı verilen layout ile render eder. status verilmezse 200 kullanılır.
// Flash mesajları data'da yoksa session'dan okunup eklenir.
func Render(c *fiber.Ctx, view, layout string, data fiber.Map, status ...int) error {
	if data == nil {
		data = fiber.Map{}
	}
	if _, ok := data[FlashSuccessKeyView]; !ok {
		if _, ok := data[FlashErrorKeyView]; !ok {
			if flash, err := flashmessages.GetFlashMessages(c); err == nil {
				SetFlashMessages(data, flash)
			}
		}
	}
	if _, ok := data["CurrentPath"]; !ok {
		data["CurrentPath"] = c.Path()
	}

	code := fiber.StatusOK
	if len(status) > 0 {
		code = status[0]
	}
	if err := c.Status(code).Render(view, data, layout); err != nil {
		configslog.Log.Error("Sayfa render edilemedi", zap.String("view", view), zap.Error(err))
		return err
	}
	return nil
}

// SetFlashMessages boş olmayan mesajları view verisine ekler.
func SetFlashMessages(data fiber.Map, flash flashmessages.FlashData) {
	if flash.Success != "" {
		data[FlashSuccessKeyView] = flash.Success
	}
	if flash.Error != "" {
		data[FlashErrorKeyView] = flash.Error
	}
}
