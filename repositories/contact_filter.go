package repositories

import (
	"strings"

	"rehber.link/models"
)

// ContactKind liste sayfalarının hangi alt kümeyi gösterdiğidir.
type ContactKind uint8

const (
	KindAll ContactKind = iota
	KindPeople
	KindOrganizations
	KindType
)

// ContactFilter bir liste sorgusunun koşullarıdır. Kind KindType ise Type kullanılır.
type ContactFilter struct {
	Kind ContactKind
	Type models.ContactType
}

func AllContacts() ContactFilter       { return ContactFilter{Kind: KindAll} }
func PeopleOnly() ContactFilter        { return ContactFilter{Kind: KindPeople} }
func OrganizationsOnly() ContactFilter { return ContactFilter{Kind: KindOrganizations} }

func TypeOnly(t models.ContactType) ContactFilter {
	return ContactFilter{Kind: KindType, Type: t}
}

// Scopes filtreyi GORM scope'larına çevirir.
func (f ContactFilter) Scopes() []Scope {
	switch f.Kind {
	case KindPeople:
		return []Scope{People}
	case KindOrganizations:
		return []Scope{Organizations}
	case KindType:
		return []Scope{OfType(f.Type)}
	}
	return nil
}

// Match kaydın filtreye uyup uymadığını veritabanına gitmeden söyler.
// Scopes ile aynı anlamı taşır.
func (f ContactFilter) Match(c *models.ContactBase) bool {
	switch f.Kind {
	case KindPeople:
		return c.ContactType == models.ContactTypePerson
	case KindOrganizations:
		return c.ContactType != models.ContactTypePerson
	case KindType:
		return c.ContactType == f.Type
	}
	return true
}

// MatchName NameSearch'ün bellek içi karşılığıdır.
func MatchName(c *models.ContactBase, term string) bool {
	return term == "" || strings.Contains(strings.ToLower(c.Name), strings.ToLower(term))
}
