package models

import "time"

type Service struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	UserID uint `gorm:"index;not null" json:"userId"`

	Name            string `gorm:"size:100;not null" json:"serviceName"`
	Description     string `gorm:"size:255" json:"description"`
	MultipleOptions bool   `gorm:"default:false" json:"multipleOptions"`
	Available       bool   `gorm:"default:true" json:"available"`

	// Bookable variants, kept in submission order. A service must always
	// have at least one.
	Options []ServiceOption `gorm:"constraint:OnDelete:CASCADE" json:"options"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type ServiceOption struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	ServiceID uint `gorm:"index;not null" json:"-"`

	Name     string `gorm:"size:100;not null" json:"name"`
	Duration string `gorm:"size:50;not null" json:"duration"`
	Price    string `gorm:"size:50;not null" json:"price"`
	Notes    string `gorm:"size:255" json:"notes"`
	Position int    `json:"-"`
}
