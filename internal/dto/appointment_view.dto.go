package dto

import "github.com/salonkit/salon-manager/internal/models"

// ServiceRef is the slice of a service projected into an appointment
// response. Nil when the reference is absent or dangling.
type ServiceRef struct {
	ID          uint   `json:"id"`
	ServiceName string `json:"serviceName"`
	Price       string `json:"price"`
}

type StaffRef struct {
	ID        uint   `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Role      string `json:"role"`
}

type AppointmentView struct {
	models.Appointment
	Service *ServiceRef `json:"service"`
	Staff   *StaffRef   `json:"staff"`
}
