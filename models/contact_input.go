package models

import "strings"

// ContactInput oluşturma/güncelleme formundan veya JSON gövdesinden gelen veridir.
type ContactInput struct {
	ContactType  ContactType `json:"contact_type" form:"contact_type" validate:"required,min=1,max=5"`
	Name         string      `json:"name" form:"name" validate:"required,max=255"`
	Description  string      `json:"description" form:"description"`
	AddressLine1 string      `json:"address_line1" form:"address_line1" validate:"max=255"`
	AddressLine2 string      `json:"address_line2" form:"address_line2" validate:"max=255"`
	City         string      `json:"city" form:"city" validate:"max=255"`
	State        string      `json:"state" form:"state" validate:"max=128"`
	Code         string      `json:"code" form:"code" validate:"max=32"`
	Country      string      `json:"country" form:"country" validate:"omitempty,iso3166_1_alpha2"`
	Email        string      `json:"email" form:"email" validate:"omitempty,email,max=254"`
	Phone        string      `json:"phone" form:"phone" validate:"max=64"`
	Mobile       string      `json:"mobile" form:"mobile" validate:"max=64"`
	Fax          string      `json:"fax" form:"fax" validate:"max=64"`
	Website      string      `json:"website" form:"website" validate:"omitempty,url,max=200"`
	Slug         string      `json:"slug" form:"slug" validate:"omitempty,max=50"`
}

// Normalize baştaki/sondaki boşlukları temizler ve ülke kodunu büyük harfe çevirir.
// Description olduğu gibi bırakılır.
func (in ContactInput) Normalize() ContactInput {
	trim := strings.TrimSpace
	in.Name = trim(in.Name)
	in.AddressLine1 = trim(in.AddressLine1)
	in.AddressLine2 = trim(in.AddressLine2)
	in.City = trim(in.City)
	in.State = trim(in.State)
	in.Code = trim(in.Code)
	in.Country = strings.ToUpper(trim(in.Country))
	in.Email = trim(in.Email)
	in.Phone = trim(in.Phone)
	in.Mobile = trim(in.Mobile)
	in.Fax = trim(in.Fax)
	in.Website = trim(in.Website)
	in.Slug = strings.ToLower(trim(in.Slug))
	return in
}

// ApplyTo düzenlenebilir alanları kayda kopyalar. Slug servis tarafından atanır.
func (in ContactInput) ApplyTo(c *ContactBase) {
	c.ContactType = in.ContactType
	c.Name = in.Name
	c.Description = in.Description
	c.AddressLine1 = in.AddressLine1
	c.AddressLine2 = in.AddressLine2
	c.City = in.City
	c.State = in.State
	c.Code = in.Code
	c.Country = in.Country
	c.Email = in.Email
	c.Phone = in.Phone
	c.Mobile = in.Mobile
	c.Fax = in.Fax
	c.Website = in.Website
}

// ContactInputFrom güncelleme formunu mevcut kayıtla doldurmak için kullanılır.
func ContactInputFrom(c *ContactBase) ContactInput {
	return ContactInput{
		ContactType:  c.ContactType,
		Name:         c.Name,
		Description:  c.Description,
		AddressLine1: c.AddressLine1,
		AddressLine2: c.AddressLine2,
		City:         c.City,
		State:        c.State,
		Code:         c.Code,
		Country:      c.Country,
		Email:        c.Email,
		Phone:        c.Phone,
		Mobile:       c.Mobile,
		Fax:          c.Fax,
		Website:      c.Website,
		Slug:         c.Slug,
	}
}
