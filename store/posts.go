package store

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/hasancaglar07/tarfcomtr-sub001/cache"
	"github.com/hasancaglar07/tarfcomtr-sub001/models"
	"github.com/hasancaglar07/tarfcomtr-sub001/slug"
)

var ErrPostNotFound = errors.New("içerik bulunamadı")

// PublishedPosts lists published posts of one type and locale, newest
// publish date first.
func (s *ContentStore) PublishedPosts(t models.PostType, locale string) ([]models.Post, error) {
	key := cache.Key("posts", string(t), locale)
	tags := []string{cache.TagPosts(t, locale)}
	return cache.Cached(s.cache, key, tags, func() ([]models.Post, error) {
		var posts []models.Post
		err := s.db.
			Where("type = ? AND locale = ? AND status = ? AND published_at IS NOT NULL",
				t, locale, models.StatusPublished).
			Order("published_at DESC").
			Find(&posts).Error
		return posts, err
	})
}

// PublishedPost returns nil for missing or unpublished posts, in the
// same not-found-is-nil contract as GetPublishedPage.
func (s *ContentStore) PublishedPost(t models.PostType, locale, slugValue string) (*models.Post, error) {
	key := cache.Key("post", string(t), locale, slugValue)
	tags := []string{
		cache.TagPost(t, locale, slugValue),
		cache.TagPosts(t, locale),
	}
	return cache.Cached(s.cache, key, tags, func() (*models.Post, error) {
		var post models.Post
		err := s.db.
			Where("type = ? AND locale = ? AND slug = ?", t, locale, slugValue).
			First(&post).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		if err != nil {
			return nil, err
		}
		if post.Status != models.StatusPublished || post.PublishedAt == nil {
			return nil, nil
		}
		return &post, nil
	})
}

// Categories lists categories for a locale, optionally scoped to one
// post type (empty type means all).
func (s *ContentStore) Categories(locale string, t models.PostType) ([]models.Category, error) {
	key := cache.Key("categories", locale, string(t))
	tags := []string{cache.TagCategories(locale, t)}
	if t != "" {
		tags = append(tags, cache.TagCategories(locale, ""))
	}
	return cache.Cached(s.cache, key, tags, func() ([]models.Category, error) {
		var cats []models.Category
		q := s.db.Where("locale = ?", locale)
		if t != "" {
			q = q.Where("type = ?", t)
		}
		err := q.Order("name ASC").Find(&cats).Error
		return cats, err
	})
}

func (s *ContentStore) Heroes(locale string) ([]models.Hero, error) {
	key := cache.Key("heroes", locale)
	tags := []string{cache.TagHeroes(locale)}
	return cache.Cached(s.cache, key, tags, func() ([]models.Hero, error) {
		var heroes []models.Hero
		err := s.db.Where("locale = ?", locale).Find(&heroes).Error
		return heroes, err
	})
}

func (s *ContentStore) FAQs(locale string) ([]models.FAQ, error) {
	key := cache.Key("faqs", locale)
	tags := []string{cache.TagFAQs(locale)}
	return cache.Cached(s.cache, key, tags, func() ([]models.FAQ, error) {
		var faqs []models.FAQ
		err := s.db.Where("locale = ?", locale).Order("`order` ASC").Find(&faqs).Error
		return faqs, err
	})
}

func (s *ContentStore) Settings(locale string) (*models.Setting, error) {
	key := cache.Key("settings", locale)
	tags := []string{cache.TagSettings(locale)}
	return cache.Cached(s.cache, key, tags, func() (*models.Setting, error) {
		var setting models.Setting
		err := s.db.Where("locale = ?", locale).First(&setting).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		if err != nil {
			return nil, err
		}
		return &setting, nil
	})
}

// PostInput is the flat field set for post writes.
type PostInput struct {
	Slug           string
	Type           models.PostType
	Locale         string
	Title          string
	Excerpt        string
	Content        string
	CategoryID     *uint
	FeaturedImage  string
	SeoTitle       string
	SeoDescription string
	Publish        bool
}

// SavePost creates or updates a post identified by slug+type+locale,
// applying the same publish stamping rule as content pages.
func (s *ContentStore) SavePost(in PostInput) (*models.Post, error) {
	normalized := slug.Normalize(in.Slug)
	if err := slug.Validate(normalized); err != nil {
		return nil, err
	}
	if strings.TrimSpace(in.Title) == "" {
		return nil, ErrTitleRequired
	}

	var post models.Post
	err := s.db.
		Where("slug = ? AND type = ? AND locale = ?", normalized, in.Type, in.Locale).
		First(&post).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	post.Slug = normalized
	post.Type = in.Type
	post.Locale = in.Locale
	post.Title = in.Title
	post.Excerpt = in.Excerpt
	post.Content = in.Content
	post.CategoryID = in.CategoryID
	post.FeaturedImage = in.FeaturedImage
	post.SeoTitle = optional(in.SeoTitle)
	post.SeoDescription = optional(in.SeoDescription)
	if in.Publish {
		post.Status = models.StatusPublished
		if post.PublishedAt == nil {
			now := time.Now()
			post.PublishedAt = &now
		}
	} else {
		post.Status = models.StatusDraft
		post.PublishedAt = nil
	}

	if err := s.db.Save(&post).Error; err != nil {
		if isDuplicate(err) {
			return nil, ErrSlugTaken
		}
		return nil, err
	}

	s.inv.PostChanged(post.Type, post.Locale, post.Slug)
	return &post, nil
}

func (s *ContentStore) DeletePost(t models.PostType, locale, slugValue string) error {
	result := s.db.
		Where("slug = ? AND type = ? AND locale = ?", slugValue, t, locale).
		Delete(&models.Post{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPostNotFound
	}
	s.inv.PostChanged(t, locale, slugValue)
	return nil
}

// SaveCategory upserts a category and cascades invalidation to the
// post listings that denormalize its name.
func (s *ContentStore) SaveCategory(cat *models.Category) error {
	cat.Slug = slug.Normalize(cat.Slug)
	if err := slug.Validate(cat.Slug); err != nil {
		return err
	}
	if err := s.db.Save(cat).Error; err != nil {
		if isDuplicate(err) {
			return ErrSlugTaken
		}
		return err
	}
	s.inv.CategoryChanged(cat.Locale, cat.Type)
	return nil
}

func (s *ContentStore) DeleteCategory(id uint) error {
	var cat models.Category
	if err := s.db.First(&cat, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if err := s.db.Delete(&cat).Error; err != nil {
		return err
	}
	s.inv.CategoryChanged(cat.Locale, cat.Type)
	return nil
}

func (s *ContentStore) SaveHero(h *models.Hero) error {
	if err := s.db.Save(h).Error; err != nil {
		return err
	}
	s.inv.HeroChanged(h.Locale)
	return nil
}

func (s *ContentStore) SaveFAQ(f *models.FAQ) error {
	if err := s.db.Save(f).Error; err != nil {
		return err
	}
	s.inv.FAQChanged(f.Locale)
	return nil
}

func (s *ContentStore) DeleteFAQ(id uint) error {
	var f models.FAQ
	if err := s.db.First(&f, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if err := s.db.Delete(&f).Error; err != nil {
		return err
	}
	s.inv.FAQChanged(f.Locale)
	return nil
}

func (s *ContentStore) SaveSettings(st *models.Setting) error {
	if err := s.db.Save(st).Error; err != nil {
		return err
	}
	s.inv.SettingsChanged(st.Locale)
	return nil
}
