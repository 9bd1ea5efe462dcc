package models

import "time"

// TeamSizes are the buckets a salon owner can pick during onboarding.
var TeamSizes = []string{"myself", "small", "growing", "medium", "large"}

func IsValidTeamSize(s string) bool {
	for _, v := range TeamSizes {
		if v == s {
			return true
		}
	}
	return false
}

type User struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	Email        string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`

	FirstName      string `gorm:"size:100" json:"firstName"`
	LastName       string `gorm:"size:100" json:"lastName"`
	ProfilePicture string `gorm:"size:255" json:"profilePicture"`

	SalonName     string `gorm:"size:100" json:"salonName"`
	SalonLocation string `gorm:"size:255" json:"salonLocation"`

	OnboardingCompleted bool     `gorm:"default:false" json:"onboardingCompleted"`
	SelectedServices    []string `gorm:"serializer:json" json:"selectedServices"`
	TeamSize            string   `gorm:"size:20" json:"teamSize"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
