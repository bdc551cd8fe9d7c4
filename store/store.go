// Package store is the read/write accessor for content pages and the
// supporting entities (posts, categories, heroes, FAQs, settings).
// Reads are memoized in a tag-addressable cache; writes commit to the
// database first and then fan invalidation out through the cache
// layer.
package store

import (
	"encoding/json"
	"errors"

	"gorm.io/gorm"

	"github.com/hasancaglar07/tarfcomtr-sub001/cache"
	"github.com/hasancaglar07/tarfcomtr-sub001/content"
	"github.com/hasancaglar07/tarfcomtr-sub001/models"
)

type ContentStore struct {
	db    *gorm.DB
	cache *cache.Store
	inv   *cache.Invalidator
}

// New builds a store. The invalidator may be nil, in which case writes
// skip the fan-out (handy in tests that assert pure lifecycle rules).
func New(db *gorm.DB, c *cache.Store, inv *cache.Invalidator) *ContentStore {
	if c == nil {
		c = cache.NewStore(cache.DefaultTTL)
	}
	return &ContentStore{db: db, cache: c, inv: inv}
}

// PageView is a content page with its body decoded for rendering.
type PageView struct {
	models.ContentPage
	Body *content.PageBody
}

// SEO resolves the effective SEO title/description for this page.
func (v *PageView) SEO() (title, description string) {
	return content.EffectiveSEO(v.Slug, v.SeoTitle, v.SeoDescription, v.Body)
}

func newPageView(rec *models.ContentPage) (*PageView, error) {
	var body content.PageBody
	if err := json.Unmarshal(rec.Data, &body); err != nil {
		return nil, err
	}
	return &PageView{ContentPage: *rec, Body: &body}, nil
}

// GetPublishedPage returns nil for a slug that does not exist, is in
// draft, or has no publish timestamp. Database errors propagate; they
// are never cached as an empty result.
func (s *ContentStore) GetPublishedPage(slugValue string) (*PageView, error) {
	key := cache.Key("content-page", slugValue)
	tags := []string{cache.TagContentPage(slugValue), cache.TagContentPages()}
	return cache.Cached(s.cache, key, tags, func() (*PageView, error) {
		var rec models.ContentPage
		err := s.db.Where("slug = ?", slugValue).First(&rec).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		if err != nil {
			return nil, err
		}
		if !rec.Published() {
			return nil, nil
		}
		return newPageView(&rec)
	})
}

// ListPublishedPages returns published pages, most recently updated
// first.
func (s *ContentStore) ListPublishedPages() ([]*PageView, error) {
	key := cache.Key("content-pages")
	tags := []string{cache.TagContentPages()}
	return cache.Cached(s.cache, key, tags, func() ([]*PageView, error) {
		var recs []models.ContentPage
		err := s.db.
			Where("status = ? AND published_at IS NOT NULL", models.StatusPublished).
			Order("updated_at DESC").
			Find(&recs).Error
		if err != nil {
			return nil, err
		}
		views := make([]*PageView, 0, len(recs))
		for i := range recs {
			v, err := newPageView(&recs[i])
			if err != nil {
				return nil, err
			}
			views = append(views, v)
		}
		return views, nil
	})
}

func (s *ContentStore) ListPublishedSlugs() ([]string, error) {
	key := cache.Key("content-page-slugs", "published")
	tags := []string{cache.TagContentPages()}
	return cache.Cached(s.cache, key, tags, func() ([]string, error) {
		var slugs []string
		err := s.db.Model(&models.ContentPage{}).
			Where("status = ? AND published_at IS NOT NULL", models.StatusPublished).
			Pluck("slug", &slugs).Error
		return slugs, err
	})
}

// ListAllSlugs includes drafts; the admin surface uses it.
func (s *ContentStore) ListAllSlugs() ([]string, error) {
	key := cache.Key("content-page-slugs", "all")
	tags := []string{cache.TagContentPages()}
	return cache.Cached(s.cache, key, tags, func() ([]string, error) {
		var slugs []string
		err := s.db.Model(&models.ContentPage{}).Pluck("slug", &slugs).Error
		return slugs, err
	})
}

// GetPage returns one record regardless of status, for admin editing.
func (s *ContentStore) GetPage(slugValue string) (*models.ContentPage, error) {
	var rec models.ContentPage
	err := s.db.Where("slug = ?", slugValue).First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// ListPages returns every page for the admin listing, drafts included.
func (s *ContentStore) ListPages() ([]models.ContentPage, error) {
	var recs []models.ContentPage
	err := s.db.Order("updated_at DESC").Find(&recs).Error
	return recs, err
}

// PageGroup is a category bucket for navigation/listing UIs.
type PageGroup struct {
	Label       string
	Description string
	Pages       []*PageView
}

// PageGroups assembles published pages into category groups. This is a
// pure projection over the cached list; it never mutates the cache.
func (s *ContentStore) PageGroups() (map[string]PageGroup, error) {
	pages, err := s.ListPublishedPages()
	if err != nil {
		return nil, err
	}

	groups := make(map[string]PageGroup)
	for _, page := range pages {
		label, ok := content.CategoryLabels[page.Category]
		if !ok {
			label = content.CategoryLabel{Label: page.Category}
		}
		g := groups[page.Category]
		g.Label = label.Label
		g.Description = label.Description
		g.Pages = append(g.Pages, page)
		groups[page.Category] = g
	}
	return groups, nil
}
