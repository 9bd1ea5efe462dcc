package models

import "time"

const (
	CustomerMember    = "Member"
	CustomerNonMember = "Non-Member"
)

func IsValidCustomerType(s string) bool {
	return s == CustomerMember || s == CustomerNonMember
}

func IsValidGenderType(s string) bool {
	switch s {
	case "Male", "Female", "Unisex":
		return true
	}
	return false
}

// DateLayout is the storage format for appointment dates. Keeping the
// date as a formatted string makes "ORDER BY date, time" chronological.
const DateLayout = "2006-01-02"

type Appointment struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	CreatedBy uint `gorm:"index;not null" json:"createdBy"`

	CustomerName  string `gorm:"size:100;not null" json:"customerName"`
	CustomerType  string `gorm:"size:20;default:'Non-Member'" json:"customerType"`
	CustomerPhone string `gorm:"size:20;not null" json:"customerPhone"`
	CustomerEmail string `gorm:"size:100;not null" json:"customerEmail"`

	Date         string `gorm:"size:10;not null" json:"date"`
	Time         string `gorm:"size:20;not null" json:"time"`
	Duration     string `gorm:"size:50;not null" json:"duration"`
	ServiceCount string `gorm:"size:30;default:'1 service'" json:"serviceCount"`
	GenderType   string `gorm:"size:10;default:'Unisex'" json:"genderType"`

	// Weak references: lookup-only, no FK constraint. Deleting the
	// referenced service or team member leaves the appointment intact,
	// displaying the denormalized fields below.
	ServiceID     *uint  `gorm:"index" json:"serviceId"`
	AssignedStaff *uint  `gorm:"index" json:"assignedStaff"`
	ServiceName   string `gorm:"size:100" json:"serviceName"`

	Price  string `gorm:"size:50" json:"price"`
	Notes  string `gorm:"size:255" json:"notes"`
	Status string `gorm:"size:20;default:'Scheduled'" json:"status"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
