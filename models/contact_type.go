package models

import (
	"database/sql/driver"
	"fmt"
	"strconv"
	"strings"
)

// ContactType kişinin mi yoksa bir kurumun mu kayıtlı olduğunu belirtir.
type ContactType uint8

const (
	ContactTypePerson ContactType = iota + 1
	ContactTypeCommercial
	ContactTypeEducational
	ContactTypeNonprofit
	ContactTypeGovernmental
)

type contactTypeInfo struct {
	key   string
	label string
}

var contactTypes = map[ContactType]contactTypeInfo{
	ContactTypePerson:       {key: "person", label: "Kişi"},
	ContactTypeCommercial:   {key: "commercial", label: "Ticari İşletme"},
	ContactTypeEducational:  {key: "educational", label: "Eğitim Kurumu"},
	ContactTypeNonprofit:    {key: "nonprofit", label: "Kâr Amacı Gütmeyen Kuruluş"},
	ContactTypeGovernmental: {key: "governmental", label: "Kamu Kurumu"},
}

// ContactTypes tüm türleri sıralı olarak döndürür.
func ContactTypes() []ContactType {
	return []ContactType{
		ContactTypePerson,
		ContactTypeCommercial,
		ContactTypeEducational,
		ContactTypeNonprofit,
		ContactTypeGovernmental,
	}
}

func (t ContactType) IsValid() bool {
	_, ok := contactTypes[t]
	return ok
}

func (t ContactType) IsPerson() bool {
	return t == ContactTypePerson
}

// IsOrganization kişi dışındaki tüm türler için true döner.
func (t ContactType) IsOrganization() bool {
	return t.IsValid() && !t.IsPerson()
}

// Key URL'lerde kullanılan kısa addır (örn. "commercial").
func (t ContactType) Key() string {
	return contactTypes[t].key
}

func (t ContactType) Label() string {
	if info, ok := contactTypes[t]; ok {
		return info.label
	}
	return "Bilinmeyen"
}

func (t ContactType) String() string {
	return t.Label()
}

// ParseContactType tür anahtarını ("person") veya sayısal değerini ("1") çözer.
func ParseContactType(s string) (ContactType, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if n, err := strconv.Atoi(s); err == nil {
		t := ContactType(n)
		return t, n > 0 && n < 256 && t.IsValid()
	}
	for t, info := range contactTypes {
		if info.key == s {
			return t, true
		}
	}
	return 0, false
}

func (t ContactType) Value() (driver.Value, error) {
	return int64(t), nil
}

func (t *ContactType) Scan(value interface{}) error {
	switch v := value.(type) {
	case int64:
		*t = ContactType(v)
	case int32:
		*t = ContactType(v)
	case int16:
		*t = ContactType(v)
	case []byte:
		n, err := strconv.Atoi(string(v))
		if err != nil {
			return fmt.Errorf("contact_type okunamadı: %w", err)
		}
		*t = ContactType(n)
	case string:
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("contact_type okunamadı: %w", err)
		}
		*t = ContactType(n)
	case nil:
		*t = 0
	default:
		return fmt.Errorf("contact_type için desteklenmeyen tip: %T", value)
	}
	return nil
}
