package form

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// validDraft builds a draft that passes every check: all required fields
// present, all four consents true, all medical flags off.
func validDraft() *Draft {
	d := NewDraft()
	d.FirstName = "Ana"
	d.LastName = "García"
	d.BirthDate = "2000-04-12"
	d.Email = "ana@example.com"
	d.EmergencyContactName = "Luis García"
	d.EmergencyContactPhone = "8112345678"
	d.EmergencyContactRelationship = "father"
	d.AcceptsRegulations = true
	d.AcceptsResponsibility = true
	d.AcceptsPrivacy = true
	d.Signed = true
	return d
}

func TestValidateDraft_ValidDraftIsClean(t *testing.T) {
	errs := ValidateDraft(validDraft())
	assert.Empty(t, errs)
}

func TestValidateDraft_RequiredFields(t *testing.T) {
	d := validDraft()
	d.FirstName = ""
	d.LastName = ""
	d.Email = ""
	d.BirthDate = ""

	errs := ValidateDraft(d)
	assert.Equal(t, "Nombre es requerido", errs["firstName"])
	assert.Equal(t, "Apellidos es requerido", errs["lastName"])
	assert.Equal(t, "El email es requerido", errs["email"])
	assert.Equal(t, "La fecha de nacimiento es requerida", errs["birthDate"])
}

func TestValidateDraft_AggregatesWithoutShortCircuit(t *testing.T) {
	// Everything wrong at once: every failing field must be reported.
	d := &Draft{HasDisease: true}
	errs := ValidateDraft(d)

	for _, field := range []string{
		"firstName", "lastName", "email", "birthDate",
		"emergencyContactName", "emergencyContactPhone", "emergencyContactRelationship",
		"diseaseName",
		"acceptsRegulations", "acceptsResponsibility", "acceptsPrivacy", "signed",
	} {
		assert.Contains(t, errs, field)
	}
	// Optional fields stay silent even when empty.
	assert.NotContains(t, errs, "phone")
	assert.NotContains(t, errs, "zipCode")
	assert.NotContains(t, errs, "classLevel")
}

func TestValidateDraft_Idempotent(t *testing.T) {
	d := validDraft()
	d.Email = "not-an-email"
	d.HasAllergies = true

	first := ValidateDraft(d)
	second := ValidateDraft(d)
	assert.Equal(t, first, second)
}

func TestValidateName_Bounds(t *testing.T) {
	cases := []struct {
		name  string
		value string
		want  string
	}{
		{"empty", "", "Nombre es requerido"},
		{"whitespace only", "   ", "Nombre es requerido"},
		{"one char", "A", "Nombre debe tener al menos 2 caracteres"},
		{"two chars", "Al", ""},
		{"accented", "Íñigo", ""},
		{"fifty chars", strings.Repeat("a", 50), ""},
		{"fifty-one chars", strings.Repeat("a", 51), "Nombre no debe exceder 50 caracteres"},
		{"trimmed before measuring", "  Jo  ", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ValidateField("firstName", tc.value, nil))
		})
	}
}

func TestValidateField_Email(t *testing.T) {
	assert.Equal(t, "El email es requerido", ValidateField("email", "", nil))
	assert.Equal(t, "El formato del email es inválido", ValidateField("email", "ana@", nil))
	assert.Equal(t, "El formato del email es inválido", ValidateField("email", "ana@dominio", nil))
	assert.Equal(t, "El formato del email es inválido", ValidateField("email", "an a@x.mx", nil))
	assert.Equal(t, "", ValidateField("email", "ana@dominio.mx", nil))
}

func TestValidateField_Phone(t *testing.T) {
	cases := []struct {
		value string
		valid bool
	}{
		{"", true}, // primary phone is optional
		{"8112345678", true},
		{"811234567", false},   // 9 digits
		{"81123456789", false}, // 11 digits
		{"81-1234-567", false}, // separators are not digits
		{"81123456a8", false},
	}
	for _, tc := range cases {
		msg := ValidateField("phone", tc.value, nil)
		if tc.valid {
			assert.Empty(t, msg, "phone %q", tc.value)
		} else {
			assert.Equal(t, "El teléfono debe tener 10 dígitos", msg, "phone %q", tc.value)
		}
	}
}

func TestValidateDraft_EmergencyPhoneIsRequired(t *testing.T) {
	d := validDraft()
	d.EmergencyContactPhone = ""
	errs := ValidateDraft(d)
	assert.Equal(t, "El teléfono del contacto de emergencia es requerido", errs["emergencyContactPhone"])

	d.EmergencyContactPhone = "12345"
	errs = ValidateDraft(d)
	assert.Equal(t, "El teléfono debe tener 10 dígitos", errs["emergencyContactPhone"])
}

func TestValidateField_BirthDate(t *testing.T) {
	assert.Equal(t, "La fecha de nacimiento es requerida", ValidateField("birthDate", "", nil))
	assert.Equal(t, "La fecha de nacimiento no puede ser futura", ValidateField("birthDate", "2999-01-01", nil))
	assert.Equal(t, "La fecha de nacimiento no es válida", ValidateField("birthDate", "1850-01-01", nil))
	assert.Equal(t, "La fecha de nacimiento no es válida", ValidateField("birthDate", "no-date", nil))
	assert.Equal(t, "", ValidateField("birthDate", "2000-04-12", nil))
}

func TestValidateDraft_GatedMedicalFields(t *testing.T) {
	d := validDraft()
	d.HasDisease = true
	d.DiseaseName = "   "
	d.TakesMedications = true
	d.MedicationsName = "ibuprofeno"

	errs := ValidateDraft(d)
	assert.Equal(t, "Debe especificar la condición médica", errs["diseaseName"])
	assert.NotContains(t, errs, "medicationsName")
	assert.NotContains(t, errs, "injuryName")
	assert.NotContains(t, errs, "allergiesName")
}

func TestValidateField_GatedFieldsConsultDraft(t *testing.T) {
	gated := &Draft{HasDisease: true, HasInjury: true, TakesMedications: true, HasAllergies: true}
	ungated := &Draft{}

	require.Equal(t, "Debe especificar la condición médica", ValidateField("diseaseName", "", gated))
	require.Equal(t, "Debe especificar la lesión", ValidateField("injuryName", " ", gated))
	require.Equal(t, "Debe especificar los medicamentos", ValidateField("medicationsName", "", gated))
	require.Equal(t, "Debe especificar las alergias", ValidateField("allergiesName", "", gated))

	assert.Empty(t, ValidateField("diseaseName", "", ungated))
	assert.Empty(t, ValidateField("diseaseName", "asma", gated))
}

func TestValidateDraft_ConsentMessages(t *testing.T) {
	d := validDraft()
	d.AcceptsRegulations = false
	d.AcceptsResponsibility = false
	d.AcceptsPrivacy = false
	d.Signed = false

	errs := ValidateDraft(d)
	assert.Equal(t, "Debe aceptar el reglamento interno", errs["acceptsRegulations"])
	assert.Equal(t, "Debe aceptar la liberación de responsabilidad", errs["acceptsResponsibility"])
	assert.Equal(t, "Debe aceptar la política de privacidad", errs["acceptsPrivacy"])
	assert.Equal(t, "Debe firmar el documento", errs["signed"])
}

func TestValidateField_UnknownFieldIsValid(t *testing.T) {
	assert.Empty(t, ValidateField("medicalObservations", "", nil))
	assert.Empty(t, ValidateField("nope", "x", nil))
}
