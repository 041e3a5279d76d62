package models

import "time"

// Client is a persisted academy client record. JSON tags match the intake
// form field names so a created record can be echoed straight back to the
// form layer.
type Client struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Code string `gorm:"uniqueIndex" json:"code"` // e.g., ZEN-123456

	// Personal data
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	BirthDate time.Time `json:"birthDate"`
	Age       string    `json:"age"`
	Phone     string    `json:"phone"`
	Email     string    `gorm:"uniqueIndex;not null" json:"email"` // unique client identity

	// Address
	State        string `json:"state"`
	City         string `json:"city"`
	Neighborhood string `json:"neighborhood"`
	Street       string `json:"street"`
	ZipCode      string `json:"zipCode"`

	// Emergency contact
	EmergencyContactName         string `json:"emergencyContactName"`
	EmergencyContactPhone        string `json:"emergencyContactPhone"`
	EmergencyContactRelationship string `json:"emergencyContactRelationship"`

	// Medical history
	HasDisease          bool   `json:"hasDisease"`
	DiseaseName         string `json:"diseaseName"`
	HasInjury           bool   `json:"hasInjury"`
	InjuryName          string `json:"injuryName"`
	TakesMedications    bool   `json:"takesMedications"`
	MedicationsName     string `json:"medicationsName"`
	HasAllergies        bool   `json:"hasAllergies"`
	AllergiesName       string `json:"allergiesName"`
	MedicalObservations string `json:"medicalObservations"`

	// Class information (opaque option codes)
	HowDidYouHear string `json:"howDidYouHear"`
	EndOfClass    string `json:"endOfClass"`
	ClassLevel    string `json:"classLevel"`

	// Terms and conditions
	AcceptsRegulations    bool `json:"acceptsRegulations"`
	AcceptsResponsibility bool `json:"acceptsResponsibility"`
	AcceptsPrivacy        bool `json:"acceptsPrivacy"`
	Signed                bool `json:"signed"`

	Active bool `gorm:"default:true" json:"active"`
}
