package models

import "time"

// PropertyType classifies a listing.
type PropertyType string

const (
	PropertyTypeApartment  PropertyType = "apartment"
	PropertyTypeHouse      PropertyType = "house"
	PropertyTypeCommercial PropertyType = "commercial"
	PropertyTypeLand       PropertyType = "land"
)

// PropertyStatus tracks the market state of a listing.
type PropertyStatus string

const (
	PropertyStatusForSale PropertyStatus = "for_sale"
	PropertyStatusForRent PropertyStatus = "for_rent"
	PropertyStatusSold    PropertyStatus = "sold"
	PropertyStatusRented  PropertyStatus = "rented"
)

// PropertyTypes lists the recognized property type values, in display order.
func PropertyTypes() []PropertyType {
	return []PropertyType{PropertyTypeApartment, PropertyTypeHouse, PropertyTypeCommercial, PropertyTypeLand}
}

// StatusChoices lists the recognized status values, in display order.
func StatusChoices() []PropertyStatus {
	return []PropertyStatus{PropertyStatusForSale, PropertyStatusForRent, PropertyStatusSold, PropertyStatusRented}
}

func (t PropertyType) Valid() bool {
	switch t {
	case PropertyTypeApartment, PropertyTypeHouse, PropertyTypeCommercial, PropertyTypeLand:
		return true
	}
	return false
}

func (s PropertyStatus) Valid() bool {
	switch s {
	case PropertyStatusForSale, PropertyStatusForRent, PropertyStatusSold, PropertyStatusRented:
		return true
	}
	return false
}

// Property is a real-estate listing. Every row is owned by exactly one
// realtor; ClientID is the responsible client. The column is nullable because
// rows predating the association exist. Reads that need a client repair it,
// creates always set it.
type Property struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	Title        string         `gorm:"type:varchar(200);not null" json:"title"`
	Description  string         `gorm:"type:text" json:"description,omitempty"`
	PropertyType PropertyType   `gorm:"type:varchar(20);not null;index" json:"property_type"`
	Status       PropertyStatus `gorm:"type:varchar(20);not null;default:'for_sale';index" json:"status"`
	Address      string         `gorm:"type:varchar(255);not null" json:"address"`
	Price        float64        `gorm:"type:decimal(12,2);not null;index" json:"price"`
	Area         float64        `gorm:"type:decimal(10,2);not null" json:"area"`
	Bedrooms     int            `gorm:"not null;default:0" json:"bedrooms"`
	Bathrooms    int            `gorm:"not null;default:0" json:"bathrooms"`

	MainImage string `gorm:"type:varchar(255)" json:"main_image,omitempty"`
	Image1    string `gorm:"type:varchar(255)" json:"image1,omitempty"`
	Image2    string `gorm:"type:varchar(255)" json:"image2,omitempty"`
	Image3    string `gorm:"type:varchar(255)" json:"image3,omitempty"`

	IsFeatured bool `gorm:"not null;default:false;index" json:"is_featured"`

	RealtorID uint            `gorm:"not null;index" json:"realtor_id"`
	Realtor   *RealtorProfile `gorm:"foreignKey:RealtorID;constraint:OnDelete:CASCADE" json:"realtor,omitempty"`
	ClientID  *uint           `gorm:"index" json:"client_id,omitempty"`
	Client    *ClientProfile  `gorm:"foreignKey:ClientID;constraint:OnDelete:CASCADE" json:"client,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime;index:idx_properties_created_at,sort:desc" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Property) TableName() string {
	return "properties"
}

// OwnedBy reports whether the listing belongs to the given realtor profile.
func (p *Property) OwnedBy(realtor *RealtorProfile) bool {
	return realtor != nil && p.RealtorID == realtor.ID
}
