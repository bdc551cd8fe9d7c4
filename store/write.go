package store

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/hasancaglar07/tarfcomtr-sub001/content"
	"github.com/hasancaglar07/tarfcomtr-sub001/models"
	"github.com/hasancaglar07/tarfcomtr-sub001/slug"
)

var (
	ErrSlugTaken       = errors.New("bu slug zaten kullanımda")
	ErrNotFound        = errors.New("sayfa bulunamadı")
	ErrTitleRequired   = errors.New("başlık zorunludur")
	ErrInvalidCategory = errors.New("geçersiz kategori")
)

// PageInput is the flat field set the admin form submits.
type PageInput struct {
	Slug           string
	Category       string
	Title          string
	SeoTitle       string
	SeoDescription string
	DataJSON       string
	Publish        bool
	OriginalSlug   string // set on edits; differs from Slug on a rename
}

func (in *PageInput) validate() (normalized string, body *content.PageBody, err error) {
	normalized = slug.Normalize(in.Slug)
	if err = slug.Validate(normalized); err != nil {
		return "", nil, err
	}
	if strings.TrimSpace(in.Title) == "" {
		return "", nil, ErrTitleRequired
	}
	if !content.ValidCategory(in.Category) {
		return "", nil, ErrInvalidCategory
	}
	body, err = content.ParseBody([]byte(in.DataJSON))
	if err != nil {
		return "", nil, err
	}
	return normalized, body, nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func isDuplicate(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey) ||
		strings.Contains(err.Error(), "UNIQUE constraint")
}

// CreatePage validates, inserts and invalidates. A conflicting slug is
// a rejected write, never a silent overwrite.
func (s *ContentStore) CreatePage(in PageInput) (*models.ContentPage, error) {
	normalized, _, err := in.validate()
	if err != nil {
		return nil, err
	}

	var count int64
	if err := s.db.Model(&models.ContentPage{}).Where("slug = ?", normalized).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrSlugTaken
	}

	rec := models.ContentPage{
		Slug:           normalized,
		Category:       in.Category,
		Title:          in.Title,
		SeoTitle:       optional(in.SeoTitle),
		SeoDescription: optional(in.SeoDescription),
		Data:           []byte(in.DataJSON),
		Status:         models.StatusDraft,
	}
	if in.Publish {
		now := time.Now()
		rec.Status = models.StatusPublished
		rec.PublishedAt = &now
	}

	if err := s.db.Create(&rec).Error; err != nil {
		if isDuplicate(err) {
			return nil, ErrSlugTaken
		}
		return nil, err
	}

	s.inv.ContentPageChanged(rec.Slug)
	return &rec, nil
}

// UpdatePage locates the record by the original slug (the current one
// when no rename happened) and rewrites it. Re-publishing via edit
// preserves the existing publish timestamp; unpublishing clears it.
func (s *ContentStore) UpdatePage(in PageInput) (*models.ContentPage, error) {
	normalized, _, err := in.validate()
	if err != nil {
		return nil, err
	}

	whereSlug := slug.Normalize(in.OriginalSlug)
	if whereSlug == "" {
		whereSlug = normalized
	}

	var rec models.ContentPage
	if err := s.db.Where("slug = ?", whereSlug).First(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if normalized != rec.Slug {
		var count int64
		if err := s.db.Model(&models.ContentPage{}).Where("slug = ?", normalized).Count(&count).Error; err != nil {
			return nil, err
		}
		if count > 0 {
			return nil, ErrSlugTaken
		}
	}

	oldSlug := rec.Slug
	rec.Slug = normalized
	rec.Category = in.Category
	rec.Title = in.Title
	rec.SeoTitle = optional(in.SeoTitle)
	rec.SeoDescription = optional(in.SeoDescription)
	rec.Data = []byte(in.DataJSON)
	if in.Publish {
		rec.Status = models.StatusPublished
		if rec.PublishedAt == nil {
			now := time.Now()
			rec.PublishedAt = &now
		}
	} else {
		rec.Status = models.StatusDraft
		rec.PublishedAt = nil
	}

	if err := s.db.Save(&rec).Error; err != nil {
		if isDuplicate(err) {
			return nil, ErrSlugTaken
		}
		return nil, err
	}

	if oldSlug != rec.Slug {
		s.inv.ContentPageChanged(oldSlug, rec.Slug)
	} else {
		s.inv.ContentPageChanged(rec.Slug)
	}
	return &rec, nil
}

// DeletePage removes the record and invalidates every derived cache
// permanently.
func (s *ContentStore) DeletePage(slugValue string) error {
	normalized := slug.Normalize(slugValue)
	result := s.db.Where("slug = ?", normalized).Delete(&models.ContentPage{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	s.inv.ContentPageChanged(normalized)
	return nil
}

// SetPublished is the explicit publish toggle. Toggling on keeps a
// still-recorded publish timestamp (first-publish date, not
// last-toggle date) and stamps now only when none is known; toggling
// off clears both status and timestamp, so a later re-publish gets a
// fresh stamp. The edit path above behaves the same way on re-publish
// but reaches this state through the form's publish flag.
func (s *ContentStore) SetPublished(slugValue string, publish bool) (*models.ContentPage, error) {
	normalized := slug.Normalize(slugValue)

	var rec models.ContentPage
	if err := s.db.Where("slug = ?", normalized).First(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if publish {
		rec.Status = models.StatusPublished
		if rec.PublishedAt == nil {
			now := time.Now()
			rec.PublishedAt = &now
		}
	} else {
		rec.Status = models.StatusDraft
		rec.PublishedAt = nil
	}

	if err := s.db.Save(&rec).Error; err != nil {
		return nil, err
	}

	s.inv.ContentPageChanged(rec.Slug)
	return &rec, nil
}
