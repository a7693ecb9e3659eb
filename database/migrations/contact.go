package migrations

import (
	"errors"

	"rehber.link/configs/configslog"
	"rehber.link/models"

	"gorm.io/gorm"
)

// MigrateContactsTable contacts tablosunu ve (contact_type, name) ile slug
// index'lerini oluşturur.
func MigrateContactsTable(db *gorm.DB) error {
	configslog.SLog.Info("Contact tablosu migrate ediliyor...")

	if err := db.AutoMigrate(&models.Contact{}); err != nil {
		errMsg := "Contact tablosu migrate edilemedi: " + err.Error()
		configslog.Log.Error(errMsg)
		return errors.New(errMsg)
	}

	configslog.SLog.Info("Contact tablosu migrate işlemi tamamlandı.")
	return nil
}
