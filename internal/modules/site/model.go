package site

import (
	"errors"
	"sort"
	"strings"
)

var ErrInvalidRecord = errors.New("record does not match expected shape")

// ContactInfo is the storefront's single contact document.
type ContactInfo struct {
	Address   string `json:"address" bson:"address"`
	Phone     string `json:"phone" bson:"phone"`
	Email     string `json:"email" bson:"email"`
	Facebook  string `json:"facebook,omitempty" bson:"facebook,omitempty"`
	Instagram string `json:"instagram,omitempty" bson:"instagram,omitempty"`
	Twitter   string `json:"twitter,omitempty" bson:"twitter,omitempty"`
	Pinterest string `json:"pinterest,omitempty" bson:"pinterest,omitempty"`
	WhatsApp  string `json:"whatsapp,omitempty" bson:"whatsapp,omitempty"`
}

// PromoHeader is the site-wide announcement strip. Disabled by default.
type PromoHeader struct {
	Text    string `json:"text" bson:"text"`
	Enabled bool   `json:"enabled" bson:"enabled"`
}

// Office is a physical location shown on the contact page.
type Office struct {
	ID             string `json:"id" bson:"_id"`
	Country        string `json:"country" bson:"country"`
	City           string `json:"city" bson:"city"`
	Address        string `json:"address" bson:"address"`
	Phone          string `json:"phone,omitempty" bson:"phone,omitempty"`
	Email          string `json:"email,omitempty" bson:"email,omitempty"`
	FlagImage      string `json:"flagImage,omitempty" bson:"flagImage,omitempty"`
	IsHeadquarters bool   `json:"isHeadquarters" bson:"isHeadquarters"`
}

func ParseOffice(o Office) (Office, error) {
	o.City = strings.TrimSpace(o.City)
	o.Country = strings.TrimSpace(o.Country)
	if o.ID == "" || o.City == "" {
		return Office{}, ErrInvalidRecord
	}
	return o, nil
}

// SortOffices puts headquarters first, then groups by country name.
func SortOffices(offices []Office) []Office {
	sorted := make([]Office, len(offices))
	copy(sorted, offices)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].IsHeadquarters != sorted[j].IsHeadquarters {
			return sorted[i].IsHeadquarters
		}
		return sorted[i].Country < sorted[j].Country
	})
	return sorted
}

// DefaultContact seeds the contact document on first boot.
func DefaultContact() ContactInfo {
	return ContactInfo{
		Address:  "123 Diamond Street, Mumbai, India",
		Phone:    "+91 9967381180",
		Email:    "info@starlinkjewels.com",
		WhatsApp: "9967381180",
	}
}
