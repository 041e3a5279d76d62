package services

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"

	"github.com/zenith-academy/intake/internal/db"
	"github.com/zenith-academy/intake/internal/events"
	"github.com/zenith-academy/intake/internal/form"
	"github.com/zenith-academy/intake/internal/models"
)

var (
	ErrDuplicateEmail = errors.New("email duplicado")
	ErrNotFound       = errors.New("cliente no encontrado")
)

// sortColumns whitelists list-API sortBy values against the real columns.
var sortColumns = map[string]string{
	"firstName": "first_name",
	"lastName":  "last_name",
	"email":     "email",
	"city":      "city",
	"state":     "state",
	"createdAt": "created_at",
}

// CreateClient persists a validated draft as a new client record.
// The email is the unique client identity; a clash yields ErrDuplicateEmail.
func CreateClient(d *form.Draft) (*models.Client, error) {
	record := &models.Client{Active: true}
	applyDraft(record, d)

	var cnt int64
	if err := db.Conn().Model(&models.Client{}).
		Where("email = ?", record.Email).Count(&cnt).Error; err != nil {
		return nil, err
	}
	if cnt > 0 {
		return nil, ErrDuplicateEmail
	}

	code := generateClientCode()
	if code == "" {
		return nil, errors.New("failed to generate code")
	}
	record.Code = code

	if err := db.Conn().Create(record).Error; err != nil {
		le := strings.ToLower(err.Error())
		if strings.Contains(le, "unique") && strings.Contains(le, "email") {
			return nil, ErrDuplicateEmail
		}
		return nil, err
	}

	if events.OnClientCreated != nil {
		events.OnClientCreated(*record)
	}
	return record, nil
}

// ListQuery carries the pagination, sorting, and filters of one list call.
type ListQuery struct {
	Page      int
	Size      int
	SortBy    string
	SortOrder string

	Search     string
	ClassLevel string
	State      string
	Active     *bool // nil = no filter
}

// ListClients returns one page of clients plus the total matching count.
func ListClients(q ListQuery) ([]models.Client, int64, error) {
	tx := db.Conn().Model(&models.Client{})

	if s := strings.TrimSpace(q.Search); s != "" {
		like := "%" + s + "%"
		tx = tx.Where("first_name LIKE ? OR last_name LIKE ? OR email LIKE ?", like, like, like)
	}
	if q.ClassLevel != "" {
		tx = tx.Where("class_level = ?", q.ClassLevel)
	}
	if q.State != "" {
		tx = tx.Where("state = ?", q.State)
	}
	if q.Active != nil {
		tx = tx.Where("active = ?", *q.Active)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	col, ok := sortColumns[q.SortBy]
	if !ok {
		col = "first_name"
	}
	dir := "asc"
	if strings.EqualFold(q.SortOrder, "desc") {
		dir = "desc"
	}

	size := q.Size
	if size <= 0 {
		size = 10
	}
	page := q.Page
	if page < 0 {
		page = 0
	}

	var out []models.Client
	err := tx.Order(col + " " + dir).Limit(size).Offset(page * size).Find(&out).Error
	return out, total, err
}

func GetClientByID(id uint) (*models.Client, error) {
	var record models.Client
	if err := db.Conn().First(&record, id).Error; err != nil {
		return nil, ErrNotFound
	}
	return &record, nil
}

// UpdateClient overwrites an existing record with a validated draft.
func UpdateClient(id uint, d *form.Draft) (*models.Client, error) {
	var record models.Client
	if err := db.Conn().First(&record, id).Error; err != nil {
		return nil, ErrNotFound
	}

	email := NormEmail(d.Email)
	var cnt int64
	if err := db.Conn().Model(&models.Client{}).
		Where("email = ? AND id <> ?", email, id).Count(&cnt).Error; err != nil {
		return nil, err
	}
	if cnt > 0 {
		return nil, ErrDuplicateEmail
	}

	applyDraft(&record, d)
	if err := db.Conn().Save(&record).Error; err != nil {
		le := strings.ToLower(err.Error())
		if strings.Contains(le, "unique") && strings.Contains(le, "email") {
			return nil, ErrDuplicateEmail
		}
		return nil, err
	}
	return &record, nil
}

func DeleteClient(id uint) error {
	res := db.Conn().Delete(&models.Client{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// applyDraft copies draft fields onto a record, normalizing the identity
// fields for storage. The birth date is parsed leniently; validation has
// already run by the time a draft reaches the service.
func applyDraft(c *models.Client, d *form.Draft) {
	c.FirstName = strings.TrimSpace(d.FirstName)
	c.LastName = strings.TrimSpace(d.LastName)
	c.Age = d.Age
	c.Phone = NormPhone(d.Phone)
	c.Email = NormEmail(d.Email)
	if birth, err := d.ParseBirthDate(); err == nil {
		c.BirthDate = birth
	}

	c.State = d.State
	c.City = d.City
	c.Neighborhood = d.Neighborhood
	c.Street = d.Street
	c.ZipCode = d.ZipCode

	c.EmergencyContactName = strings.TrimSpace(d.EmergencyContactName)
	c.EmergencyContactPhone = NormPhone(d.EmergencyContactPhone)
	c.EmergencyContactRelationship = d.EmergencyContactRelationship

	c.HasDisease = d.HasDisease
	c.DiseaseName = d.DiseaseName
	c.HasInjury = d.HasInjury
	c.InjuryName = d.InjuryName
	c.TakesMedications = d.TakesMedications
	c.MedicationsName = d.MedicationsName
	c.HasAllergies = d.HasAllergies
	c.AllergiesName = d.AllergiesName
	c.MedicalObservations = d.MedicalObservations

	c.HowDidYouHear = d.HowDidYouHear
	c.EndOfClass = d.EndOfClass
	c.ClassLevel = d.ClassLevel

	c.AcceptsRegulations = d.AcceptsRegulations
	c.AcceptsResponsibility = d.AcceptsResponsibility
	c.AcceptsPrivacy = d.AcceptsPrivacy
	c.Signed = d.Signed
}

// generateClientCode creates a unique ZEN-xxxxxx code.
func generateClientCode() string {
	for i := 0; i < 20; i++ {
		code := fmt.Sprintf("ZEN-%06d", rand.Intn(1000000))
		var exists int64
		_ = db.Conn().Model(&models.Client{}).Where("code = ?", code).Count(&exists).Error
		if exists == 0 {
			return code
		}
	}
	return ""
}
