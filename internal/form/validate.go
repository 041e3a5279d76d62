package form

import (
	"regexp"
	"strings"
	"time"
	"unicode/utf8"
)

// ErrorMap maps a field name to a human-readable message. Absence of a key
// means the field is valid; an empty map means the draft is submittable.
type ErrorMap map[string]string

var (
	reEmail = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	rePhone = regexp.MustCompile(`^[0-9]{10}$`)
)

// validateName checks a required 2 to 50 character name field. label is the
// user-facing field label used in the message.
func validateName(name, label string) string {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return label + " es requerido"
	}
	if utf8.RuneCountInString(trimmed) < 2 {
		return label + " debe tener al menos 2 caracteres"
	}
	if utf8.RuneCountInString(trimmed) > 50 {
		return label + " no debe exceder 50 caracteres"
	}
	return ""
}

func validateEmail(email string) string {
	if email == "" {
		return "El email es requerido"
	}
	if !reEmail.MatchString(email) {
		return "El formato del email es inválido"
	}
	return ""
}

// validatePhone accepts empty (the primary phone is optional); otherwise the
// value must be exactly 10 digits.
func validatePhone(phone string) string {
	if phone == "" {
		return ""
	}
	if !rePhone.MatchString(phone) {
		return "El teléfono debe tener 10 dígitos"
	}
	return ""
}

// validateBirthDate requires a parseable date that is not in the future and
// yields a naive year-difference age of at most 120. The age bound is a
// coarse sanity check, not the completed-years arithmetic used for display.
func validateBirthDate(birthDate string) string {
	if birthDate == "" {
		return "La fecha de nacimiento es requerida"
	}
	birth, err := time.Parse(BirthDateLayout, birthDate)
	if err != nil {
		return "La fecha de nacimiento no es válida"
	}
	today := time.Now()
	if birth.After(today) {
		return "La fecha de nacimiento no puede ser futura"
	}
	if today.Year()-birth.Year() > 120 {
		return "La fecha de nacimiento no es válida"
	}
	return ""
}

func validateTerms(d *Draft) ErrorMap {
	errs := ErrorMap{}
	if !d.AcceptsRegulations {
		errs["acceptsRegulations"] = "Debe aceptar el reglamento interno"
	}
	if !d.AcceptsResponsibility {
		errs["acceptsResponsibility"] = "Debe aceptar la liberación de responsabilidad"
	}
	if !d.AcceptsPrivacy {
		errs["acceptsPrivacy"] = "Debe aceptar la política de privacidad"
	}
	if !d.Signed {
		errs["signed"] = "Debe firmar el documento"
	}
	return errs
}

func validateEmergencyContact(d *Draft) ErrorMap {
	errs := ErrorMap{}

	if msg := validateName(d.EmergencyContactName, "Nombre del contacto de emergencia"); msg != "" {
		errs["emergencyContactName"] = msg
	}

	if d.EmergencyContactPhone == "" {
		errs["emergencyContactPhone"] = "El teléfono del contacto de emergencia es requerido"
	} else if msg := validatePhone(d.EmergencyContactPhone); msg != "" {
		errs["emergencyContactPhone"] = msg
	}

	if d.EmergencyContactRelationship == "" {
		errs["emergencyContactRelationship"] = "La relación con el contacto de emergencia es requerida"
	}

	return errs
}

// validateMedicalHistory requires each gated text field to be non-blank iff
// its gate flag is on.
func validateMedicalHistory(d *Draft) ErrorMap {
	errs := ErrorMap{}
	if d.HasDisease && strings.TrimSpace(d.DiseaseName) == "" {
		errs["diseaseName"] = "Debe especificar la condición médica"
	}
	if d.HasInjury && strings.TrimSpace(d.InjuryName) == "" {
		errs["injuryName"] = "Debe especificar la lesión"
	}
	if d.TakesMedications && strings.TrimSpace(d.MedicationsName) == "" {
		errs["medicationsName"] = "Debe especificar los medicamentos"
	}
	if d.HasAllergies && strings.TrimSpace(d.AllergiesName) == "" {
		errs["allergiesName"] = "Debe especificar las alergias"
	}
	return errs
}

// ValidateDraft runs the full-form check. It aggregates every failing field
// without short-circuiting and returns an empty map iff the draft is
// submittable.
func ValidateDraft(d *Draft) ErrorMap {
	errs := ErrorMap{}

	if msg := validateName(d.FirstName, "Nombre"); msg != "" {
		errs["firstName"] = msg
	}
	if msg := validateName(d.LastName, "Apellidos"); msg != "" {
		errs["lastName"] = msg
	}
	if msg := validateEmail(d.Email); msg != "" {
		errs["email"] = msg
	}
	if msg := validateBirthDate(d.BirthDate); msg != "" {
		errs["birthDate"] = msg
	}

	// Primary phone only when provided
	if d.Phone != "" {
		if msg := validatePhone(d.Phone); msg != "" {
			errs["phone"] = msg
		}
	}

	for field, msg := range validateEmergencyContact(d) {
		errs[field] = msg
	}
	for field, msg := range validateMedicalHistory(d) {
		errs[field] = msg
	}
	for field, msg := range validateTerms(d) {
		errs[field] = msg
	}

	return errs
}

// ValidateField checks a single field for inline feedback. The draft is
// consulted only for the four gated medical fields, whose required-ness
// depends on their companion flag. An empty string means the value is valid.
func ValidateField(field, value string, d *Draft) string {
	switch field {
	case "firstName":
		return validateName(value, "Nombre")
	case "lastName":
		return validateName(value, "Apellidos")
	case "email":
		return validateEmail(value)
	case "phone":
		return validatePhone(value)
	case "birthDate":
		return validateBirthDate(value)
	case "emergencyContactName":
		return validateName(value, "Nombre del contacto de emergencia")
	case "emergencyContactPhone":
		if value == "" {
			return "El teléfono del contacto de emergencia es requerido"
		}
		return validatePhone(value)
	case "emergencyContactRelationship":
		if value == "" {
			return "La relación con el contacto de emergencia es requerida"
		}
		return ""
	case "diseaseName":
		if d != nil && d.HasDisease && strings.TrimSpace(value) == "" {
			return "Debe especificar la condición médica"
		}
		return ""
	case "injuryName":
		if d != nil && d.HasInjury && strings.TrimSpace(value) == "" {
			return "Debe especificar la lesión"
		}
		return ""
	case "medicationsName":
		if d != nil && d.TakesMedications && strings.TrimSpace(value) == "" {
			return "Debe especificar los medicamentos"
		}
		return ""
	case "allergiesName":
		if d != nil && d.HasAllergies && strings.TrimSpace(value) == "" {
			return "Debe especificar las alergias"
		}
		return ""
	default:
		return ""
	}
}
