package store

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"gorm.io/gorm"

	"github.com/hasancaglar07/tarfcomtr-sub001/models"
)

var (
	ErrApplicationNotFound = errors.New("başvuru bulunamadı")
	ErrInvalidStatus       = errors.New("geçersiz başvuru durumu")
)

// ApplicationInput is a public form submission.
type ApplicationInput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

func (in ApplicationInput) validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.Name, validation.Required.Error("isim zorunludur")),
		validation.Field(&in.Email,
			validation.Required.Error("e-posta zorunludur"),
			is.Email.Error("e-posta geçersiz")),
		validation.Field(&in.Message, validation.Required.Error("mesaj zorunludur")),
	)
}

// SubmitApplication stores a submission with the initial status. There
// is no cache or fan-out involved; submissions are admin-only data.
func (s *ContentStore) SubmitApplication(in ApplicationInput) (*models.Application, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	app := models.Application{
		Name:    in.Name,
		Email:   in.Email,
		Phone:   in.Phone,
		Subject: in.Subject,
		Message: in.Message,
		Status:  models.ApplicationNew,
	}
	if err := s.db.Create(&app).Error; err != nil {
		return nil, err
	}
	return &app, nil
}

// ApplicationFilter narrows the admin listing. Zero values mean no
// constraint.
type ApplicationFilter struct {
	Status models.ApplicationStatus
	Query  string
	Offset int
	Limit  int
}

func validApplicationStatus(s models.ApplicationStatus) bool {
	switch s {
	case models.ApplicationNew, models.ApplicationInReview, models.ApplicationClosed:
		return true
	}
	return false
}

// ListApplications returns submissions newest first, with the total
// count across all pages of the same filter.
func (s *ContentStore) ListApplications(f ApplicationFilter) ([]models.Application, int64, error) {
	q := s.db.Model(&models.Application{})
	if f.Status != "" {
		if !validApplicationStatus(f.Status) {
			return nil, 0, ErrInvalidStatus
		}
		q = q.Where("status = ?", f.Status)
	}
	if f.Query != "" {
		like := "%" + f.Query + "%"
		q = q.Where("name LIKE ? OR email LIKE ? OR subject LIKE ? OR message LIKE ?",
			like, like, like, like)
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if f.Limit > 0 {
		q = q.Limit(f.Limit).Offset(f.Offset)
	}

	var apps []models.Application
	err := q.Order("created_at DESC").Find(&apps).Error
	return apps, count, err
}

// UpdateApplication moves a submission through the review workflow.
func (s *ContentStore) UpdateApplication(id uint, status models.ApplicationStatus, adminNote string) (*models.Application, error) {
	if !validApplicationStatus(status) {
		return nil, ErrInvalidStatus
	}

	var app models.Application
	if err := s.db.First(&app, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}

	app.Status = status
	app.AdminNote = adminNote
	if err := s.db.Save(&app).Error; err != nil {
		return nil, err
	}
	return &app, nil
}
