package form

import (
	"time"

	"github.com/zenith-academy/intake/internal/models"
)

// BirthDateLayout is the wire format for birth dates throughout the intake
// flow.
const BirthDateLayout = "2006-01-02"

// Draft is the mutable client record under edit. All fields are plain
// strings/bools; age is derived from birthDate and must not be set directly
// (see Form.SetField).
type Draft struct {
	// Personal data
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	BirthDate string `json:"birthDate"` // "2006-01-02"
	Age       string `json:"age"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`

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

	// Class information (opaque option codes from the intake form)
	HowDidYouHear string `json:"howDidYouHear"`
	EndOfClass    string `json:"endOfClass"`
	ClassLevel    string `json:"classLevel"`

	// Terms and conditions
	AcceptsRegulations    bool `json:"acceptsRegulations"`
	AcceptsResponsibility bool `json:"acceptsResponsibility"`
	AcceptsPrivacy        bool `json:"acceptsPrivacy"`
	Signed                bool `json:"signed"`
}

// NewDraft returns an empty draft with the academy's default address
// prefills.
func NewDraft() *Draft {
	return &Draft{
		State: "Nuevo León",
		City:  "Monterrey",
	}
}

// DraftFrom seeds a draft from an existing record (edit mode).
func DraftFrom(c *models.Client) *Draft {
	d := &Draft{
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Age:       c.Age,
		Phone:     c.Phone,
		Email:     c.Email,

		State:        c.State,
		City:         c.City,
		Neighborhood: c.Neighborhood,
		Street:       c.Street,
		ZipCode:      c.ZipCode,

		EmergencyContactName:         c.EmergencyContactName,
		EmergencyContactPhone:        c.EmergencyContactPhone,
		EmergencyContactRelationship: c.EmergencyContactRelationship,

		HasDisease:          c.HasDisease,
		DiseaseName:         c.DiseaseName,
		HasInjury:           c.HasInjury,
		InjuryName:          c.InjuryName,
		TakesMedications:    c.TakesMedications,
		MedicationsName:     c.MedicationsName,
		HasAllergies:        c.HasAllergies,
		AllergiesName:       c.AllergiesName,
		MedicalObservations: c.MedicalObservations,

		HowDidYouHear: c.HowDidYouHear,
		EndOfClass:    c.EndOfClass,
		ClassLevel:    c.ClassLevel,

		AcceptsRegulations:    c.AcceptsRegulations,
		AcceptsResponsibility: c.AcceptsResponsibility,
		AcceptsPrivacy:        c.AcceptsPrivacy,
		Signed:                c.Signed,
	}
	if !c.BirthDate.IsZero() {
		d.BirthDate = c.BirthDate.Format(BirthDateLayout)
	}
	return d
}

// ParseBirthDate parses the draft's birth date string.
func (d *Draft) ParseBirthDate() (time.Time, error) {
	return time.Parse(BirthDateLayout, d.BirthDate)
}
