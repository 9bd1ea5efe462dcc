package models

import "time"

const (
	StaffAvailable      = "Available"
	StaffOnLeave        = "On Leave"
	StaffCustomSchedule = "Custom Schedule"
)

func IsValidStaffStatus(s string) bool {
	switch s {
	case StaffAvailable, StaffOnLeave, StaffCustomSchedule:
		return true
	}
	return false
}

type TeamMember struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	UserID uint `gorm:"index;not null" json:"userId"`

	FirstName string `gorm:"size:100;not null" json:"firstName"`
	LastName  string `gorm:"size:100;not null" json:"lastName"`
	Avatar    string `gorm:"size:255" json:"avatar"`

	Status     string `gorm:"size:20;default:'Available'" json:"status"`
	Role       string `gorm:"size:100;not null" json:"role"`
	HourlyRate string `gorm:"size:20;default:'$0/hr'" json:"hourlyRate"`
	Available  bool   `gorm:"default:true" json:"available"`

	Phone   string `gorm:"size:20;not null" json:"phone"`
	Email   string `gorm:"size:100" json:"email"`
	Address string `gorm:"size:255" json:"address"`

	AccountHolderName string `gorm:"size:100" json:"accountHolderName"`
	AccountNumber     string `gorm:"size:50" json:"accountNumber"`
	BankName          string `gorm:"size:100" json:"bankName"`
	BankAddress       string `gorm:"size:255" json:"bankAddress"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
