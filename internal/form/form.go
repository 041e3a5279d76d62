package form

import (
	"strconv"
	"time"

	"github.com/zenith-academy/intake/internal/models"
)

// Form owns a draft for the duration of one intake session. All mutation
// goes through SetField so the derived fields stay consistent.
type Form struct {
	Draft *Draft

	// Busy is set by the caller while a submission is outstanding so the UI
	// can disable double-submit.
	Busy bool

	now func() time.Time
}

// NewForm starts a blank registration.
func NewForm() *Form {
	return &Form{Draft: NewDraft(), now: time.Now}
}

// NewFormFrom starts an edit session seeded from an existing record.
func NewFormFrom(c *models.Client) *Form {
	return &Form{Draft: DraftFrom(c), now: time.Now}
}

// SetField applies a single field edit. Beyond the direct assignment:
//   - setting birthDate recomputes age (completed years as of now);
//   - switching a medical gate off force-clears its paired text field.
//
// age is never directly assignable; it only changes through birthDate.
func (f *Form) SetField(field string, value any) {
	switch field {
	case "firstName":
		f.Draft.FirstName = asString(value)
	case "lastName":
		f.Draft.LastName = asString(value)
	case "birthDate":
		f.Draft.BirthDate = asString(value)
		if f.Draft.BirthDate != "" {
			if birth, err := time.Parse(BirthDateLayout, f.Draft.BirthDate); err == nil {
				f.Draft.Age = strconv.Itoa(completedYears(birth, f.now()))
			}
		}
	case "phone":
		f.Draft.Phone = asString(value)
	case "email":
		f.Draft.Email = asString(value)

	case "state":
		f.Draft.State = asString(value)
	case "city":
		f.Draft.City = asString(value)
	case "neighborhood":
		f.Draft.Neighborhood = asString(value)
	case "street":
		f.Draft.Street = asString(value)
	case "zipCode":
		f.Draft.ZipCode = asString(value)

	case "emergencyContactName":
		f.Draft.EmergencyContactName = asString(value)
	case "emergencyContactPhone":
		f.Draft.EmergencyContactPhone = asString(value)
	case "emergencyContactRelationship":
		f.Draft.EmergencyContactRelationship = asString(value)

	case "hasDisease":
		f.Draft.HasDisease = asBool(value)
		if !f.Draft.HasDisease {
			f.Draft.DiseaseName = ""
		}
	case "diseaseName":
		f.Draft.DiseaseName = asString(value)
	case "hasInjury":
		f.Draft.HasInjury = asBool(value)
		if !f.Draft.HasInjury {
			f.Draft.InjuryName = ""
		}
	case "injuryName":
		f.Draft.InjuryName = asString(value)
	case "takesMedications":
		f.Draft.TakesMedications = asBool(value)
		if !f.Draft.TakesMedications {
			f.Draft.MedicationsName = ""
		}
	case "medicationsName":
		f.Draft.MedicationsName = asString(value)
	case "hasAllergies":
		f.Draft.HasAllergies = asBool(value)
		if !f.Draft.HasAllergies {
			f.Draft.AllergiesName = ""
		}
	case "allergiesName":
		f.Draft.AllergiesName = asString(value)
	case "medicalObservations":
		f.Draft.MedicalObservations = asString(value)

	case "howDidYouHear":
		f.Draft.HowDidYouHear = asString(value)
	case "endOfClass":
		f.Draft.EndOfClass = asString(value)
	case "classLevel":
		f.Draft.ClassLevel = asString(value)

	case "acceptsRegulations":
		f.Draft.AcceptsRegulations = asBool(value)
	case "acceptsResponsibility":
		f.Draft.AcceptsResponsibility = asBool(value)
	case "acceptsPrivacy":
		f.Draft.AcceptsPrivacy = asBool(value)
	case "signed":
		f.Draft.Signed = asBool(value)
	}
}

// completedYears is standard birthday arithmetic: year difference, minus one
// when the birthday has not yet occurred this year.
func completedYears(birth, now time.Time) int {
	years := now.Year() - birth.Year()
	if now.Month() < birth.Month() ||
		(now.Month() == birth.Month() && now.Day() < birth.Day()) {
		years--
	}
	return years
}

func asString(v any) string {
	s, _ := v.(string)
	return s
}

func asBool(v any) bool {
	b, _ := v.(bool)
	return b
}
