package repositories

import (
	"rehber.link/models"

	"gorm.io/gorm"
)

// People yalnızca kişi kayıtlarını seçer.
func People(db *gorm.DB) *gorm.DB {
	return db.Where("contact_type = ?", models.ContactTypePerson)
}

// Organizations kişi dışındaki tüm kayıtları seçer. People ile birlikte
// tabloyu eksiksiz ve çakışmasız böler.
func Organizations(db *gorm.DB) *gorm.DB {
	return db.Where("contact_type <> ?", models.ContactTypePerson)
}

// OfType tek bir türe ait kayıtları seçer.
func OfType(t models.ContactType) Scope {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("contact_type = ?", t)
	}
}

// DefaultOrder rehberin varsayılan sıralamasıdır: önce tür, sonra ad.
func DefaultOrder(db *gorm.DB) *gorm.DB {
	return db.Order("contact_type ASC").Order("name ASC").Order("id ASC")
}

// NameSearch ad alanında büyük/küçük harf duyarsız arama yapar.
func NameSearch(term string) Scope {
	return ILike("name", term)
}

// WithSlug slug ile eşleşen kaydı seçer.
func WithSlug(slug string) Scope {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("slug = ?", slug)
	}
}

func excludeID(id uint) Scope {
	return func(db *gorm.DB) *gorm.DB {
		if id == 0 {
			return db
		}
		return db.Where("id <> ?", id)
	}
}
