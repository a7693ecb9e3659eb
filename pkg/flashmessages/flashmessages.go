// Package flashmessages tek seferlik bildirimleri ve form verisini
// yönlendirmeler arasında session üzerinden taşır.
package flashmessages

import (
	"encoding/json"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
)

const (
	FlashSuccessKey = "flash_success"
	FlashErrorKey   = "flash_error"
	flashFormKey    = "flash_form_data"

	// SessionStoreLocalsKey session store'un c.Locals içindeki anahtarıdır.
	SessionStoreLocalsKey = "session_store"
)

var ErrNoSessionStore = errors.New("session store bulunamadı")

// FlashData bir istekte okunan mesajlardır.
type FlashData struct {
	Success string
	Error   string
}

func sessionFor(c *fiber.Ctx) (*session.Session, error) {
	store, ok := c.Locals(SessionStoreLocalsKey).(*session.Store)
	if !ok || store == nil {
		return nil, ErrNoSessionStore
	}
	return store.Get(c)
}

// SetFlashMessage bir sonraki istekte gösterilecek mesajı kaydeder.
func SetFlashMessage(c *fiber.Ctx, key, message string) error {
	sess, err := sessionFor(c)
	if err != nil {
		return err
	}
	sess.Set(key, message)
	return sess.Save()
}

// GetFlashMessages mesajları okur ve session'dan siler.
func GetFlashMessages(c *fiber.Ctx) (FlashData, error) {
	var data FlashData
	sess, err := sessionFor(c)
	if err != nil {
		return data, err
	}
	if v, ok := sess.Get(FlashSuccessKey).(string); ok {
		data.Success = v
		sess.Delete(FlashSuccessKey)
	}
	if v, ok := sess.Get(FlashErrorKey).(string); ok {
		data.Error = v
		sess.Delete(FlashErrorKey)
	}
	if data.Success == "" && data.Error == "" {
		return data, nil
	}
	return data, sess.Save()
}

// SetFlashFormData hatalı gönderilen formu tekrar doldurmak için saklar.
// Session'a JSON metni olarak yazılır.
func SetFlashFormData(c *fiber.Ctx, data interface{}) error {
	encoded, err := json.Marshal(data)
	if err != nil {
		return err
	}
	sess, err := sessionFor(c)
	if err != nil {
		return err
	}
	sess.Set(flashFormKey, string(encoded))
	return sess.Save()
}

// GetFlashFormData saklanan form verisini dest'e çözer ve siler.
// Veri yoksa false döner.
func GetFlashFormData(c *fiber.Ctx, dest interface{}) bool {
	sess, err := sessionFor(c)
	if err != nil {
		return false
	}
	raw, ok := sess.Get(flashFormKey).(string)
	if !ok || raw == "" {
		return false
	}
	sess.Delete(flashFormKey)
	_ = sess.Save()
	return json.Unmarshal([]byte(raw), dest) == nil
}
