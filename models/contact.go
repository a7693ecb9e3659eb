package models

import (
	"net/url"
	"strings"
)

// ContactURLPrefix detay sayfalarının kök yoludur.
const ContactURLPrefix = "/contacts"

// MarkupRenderer açıklama alanını HTML'e çeviren bileşendir (bkz. pkg/markup).
type MarkupRenderer interface {
	Render(src string) string
}

// ContactBase kişi ve kurum kayıtlarının ortak alanlarıdır. Somut modeller
// bu yapıyı gömerek kullanır; DescriptionHTML ve ad alanları her kayıtta
// yeniden hesaplanır, elle düzenlenmez.
type ContactBase struct {
	ContactType ContactType `gorm:"type:smallint;not null;index:idx_contacts_order,priority:1" json:"contact_type"`
	Name        string      `gorm:"type:varchar(255);not null;index:idx_contacts_order,priority:2" json:"name"`
	Description string      `gorm:"type:text" json:"description"`

	// Adres
	AddressLine1 string `gorm:"type:varchar(255)" json:"address_line1"`
	AddressLine2 string `gorm:"type:varchar(255)" json:"address_line2"`
	City         string `gorm:"type:varchar(255)" json:"city"`
	State        string `gorm:"type:varchar(128)" json:"state"`
	Code         string `gorm:"type:varchar(32)" json:"code"` // Posta kodu
	Country      string `gorm:"type:varchar(2)" json:"country"` // ISO 3166-1 alpha-2

	// İletişim
	Email   string `gorm:"type:varchar(254)" json:"email"`
	Phone   string `gorm:"type:varchar(64)" json:"phone"`
	Mobile  string `gorm:"type:varchar(64)" json:"mobile"`
	Fax     string `gorm:"type:varchar(64)" json:"fax"`
	Website string `gorm:"type:varchar(200)" json:"website"`

	Slug string `gorm:"type:varchar(50);uniqueIndex;not null" json:"slug"`

	// Otomatik üretilen alanlar
	FirstName       string `gorm:"type:varchar(255)" json:"first_name"`
	MiddleName      string `gorm:"type:varchar(255)" json:"middle_name"`
	LastName        string `gorm:"type:varchar(255)" json:"last_name"`
	DescriptionHTML string `gorm:"type:text" json:"description_html"`
}

// Contact rehberdeki somut kayıttır.
type Contact struct {
	BaseModel
	ContactBase
}

func (Contact) TableName() string {
	return "contacts"
}

func (c *ContactBase) IsPerson() bool {
	return c.ContactType.IsPerson()
}

// RenderMarkup DescriptionHTML alanını Description'dan yeniden üretir.
func (c *ContactBase) RenderMarkup(r MarkupRenderer) {
	c.DescriptionHTML = r.Render(c.Description)
}

// DeriveNames kişi kayıtlarında adı boşluklardan böler: ilk parça ad, son
// parça soyad olur; ikinci ad yalnızca tam üç parça varsa atanır. Kurum
// kayıtlarında ve boş adda türetilmiş alanlar temizlenir.
func (c *ContactBase) DeriveNames() {
	c.FirstName, c.MiddleName, c.LastName = "", "", ""
	if !c.IsPerson() {
		return
	}
	names := strings.Fields(c.Name)
	if len(names) == 0 {
		return
	}
	c.FirstName = names[0]
	c.LastName = names[len(names)-1]
	if len(names) == 3 {
		c.MiddleName = names[1]
	}
}

// Prepare kayıttan hemen önce çalışır.
func (c *ContactBase) Prepare(r MarkupRenderer) {
	c.RenderMarkup(r)
	c.DeriveNames()
}

// AbsoluteURL kaydın detay sayfasının yoludur.
func (c *ContactBase) AbsoluteURL() string {
	return ContactURLPrefix + "/" + url.PathEscape(c.Slug)
}

func (c *ContactBase) String() string {
	return c.Name
}
