package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/hasancaglar07/tarfcomtr-sub001/cache"
	"github.com/hasancaglar07/tarfcomtr-sub001/models"
)

const testBody = `{
	"hero": {"title": "Hakkımızda", "subtitle": "Biz kimiz"},
	"sections": [
		{"id": "tarihce", "title": "Tarihçe", "layout": "timeline"}
	],
	"cta": {
		"title": "Bize katılın",
		"description": "Programlara başvurun",
		"primaryAction": {"label": "Başvur", "href": "/tr/contact"}
	}
}`

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.User{}, &models.ContentPage{}, &models.Post{},
		&models.Category{}, &models.Hero{}, &models.FAQ{}, &models.Setting{},
		&models.Application{},
	)
	require.NoError(t, err)
	return db
}

func setupStore(t *testing.T) (*ContentStore, *cache.Store) {
	db := setupTestDB(t)
	memo := cache.NewStore(time.Hour)
	pages := cache.NewPageCache(time.Hour)
	return New(db, memo, cache.NewInvalidator(memo, pages)), memo
}

func createTestPage(t *testing.T, s *ContentStore, slug string, publish bool) *models.ContentPage {
	rec, err := s.CreatePage(PageInput{
		Slug:     slug,
		Category: "kurumsal",
		Title:    "Test Sayfası",
		DataJSON: testBody,
		Publish:  publish,
	})
	require.NoError(t, err)
	return rec
}

func TestGetPublishedPage_ReturnsPublished(t *testing.T) {
	s, _ := setupStore(t)
	createTestPage(t, s, "hakkimizda", true)

	page, err := s.GetPublishedPage("hakkimizda")
	require.NoError(t, err)
	require.NotNil(t, page)
	assert.Equal(t, "hakkimizda", page.Slug)
	assert.Equal(t, "Hakkımızda", page.Body.Hero.Title)
}

func TestGetPublishedPage_DraftIsInvisible(t *testing.T) {
	s, _ := setupStore(t)
	createTestPage(t, s, "taslak", false)

	page, err := s.GetPublishedPage("taslak")
	assert.NoError(t, err)
	assert.Nil(t, page)
}

func TestGetPublishedPage_MissingIsNilNotError(t *testing.T) {
	s, _ := setupStore(t)

	page, err := s.GetPublishedPage("yok")
	assert.NoError(t, err)
	assert.Nil(t, page)
}

func TestGetPublishedPage_StatusWithoutTimestampIsInvisible(t *testing.T) {
	s, _ := setupStore(t)
	rec := createTestPage(t, s, "bozuk", true)

	// Simulate an inconsistent row written outside the lifecycle.
	require.NoError(t, s.db.Model(rec).Update("published_at", nil).Error)
	s.cache.PurgeAll()

	page, err := s.GetPublishedPage("bozuk")
	assert.NoError(t, err)
	assert.Nil(t, page)
}

func TestGetPublishedPage_SecondReadHitsCache(t *testing.T) {
	s, memo := setupStore(t)
	createTestPage(t, s, "hakkimizda", true)

	_, err := s.GetPublishedPage("hakkimizda")
	require.NoError(t, err)
	entries := memo.Len()

	_, err = s.GetPublishedPage("hakkimizda")
	require.NoError(t, err)
	assert.Equal(t, entries, memo.Len())
}

func TestListPublishedPages_ExcludesDrafts(t *testing.T) {
	s, _ := setupStore(t)
	createTestPage(t, s, "yayinda", true)
	createTestPage(t, s, "taslak", false)

	pages, err := s.ListPublishedPages()
	require.NoError(t, err)
	require.Len(t, pages, 1)
	assert.Equal(t, "yayinda", pages[0].Slug)
}

func TestListSlugs(t *testing.T) {
	s, _ := setupStore(t)
	createTestPage(t, s, "yayinda", true)
	createTestPage(t, s, "taslak", false)

	published, err := s.ListPublishedSlugs()
	require.NoError(t, err)
	assert.Equal(t, []string{"yayinda"}, published)

	all, err := s.ListAllSlugs()
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"yayinda", "taslak"}, all)
}

func TestGetPage_AdminSeesDrafts(t *testing.T) {
	s, _ := setupStore(t)
	createTestPage(t, s, "taslak", false)

	rec, err := s.GetPage("taslak")
	require.NoError(t, err)
	assert.Equal(t, models.StatusDraft, rec.Status)

	_, err = s.GetPage("yok")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPageView_SEOFallback(t *testing.T) {
	s, _ := setupStore(t)
	createTestPage(t, s, "hakkimizda", true)

	page, err := s.GetPublishedPage("hakkimizda")
	require.NoError(t, err)

	title, description := page.SEO()
	assert.Equal(t, "Hakkımızda", title)
	assert.Equal(t, "Biz kimiz", description)
}

func TestPageGroups_BucketsByCategory(t *testing.T) {
	s, _ := setupStore(t)
	createTestPage(t, s, "hakkimizda", true)

	_, err := s.CreatePage(PageInput{
		Slug:     "yazilim-okulu",
		Category: "yazilim",
		Title:    "Yazılım Okulu",
		DataJSON: testBody,
		Publish:  true,
	})
	require.NoError(t, err)

	groups, err := s.PageGroups()
	require.NoError(t, err)
	require.Len(t, groups, 2)
	assert.Len(t, groups["kurumsal"].Pages, 1)
	assert.Len(t, groups["yazilim"].Pages, 1)
	assert.NotEmpty(t, groups["kurumsal"].Label)
}

func TestNoStaleReadAfterWrite(t *testing.T) {
	s, _ := setupStore(t)
	createTestPage(t, s, "hakkimizda", true)

	page, err := s.GetPublishedPage("hakkimizda")
	require.NoError(t, err)
	require.NotNil(t, page)

	_, err = s.SetPublished("hakkimizda", false)
	require.NoError(t, err)

	page, err = s.GetPublishedPage("hakkimizda")
	assert.NoError(t, err)
	assert.Nil(t, page)
}

func TestReaders_Posts(t *testing.T) {
	s, _ := setupStore(t)

	_, err := s.SavePost(PostInput{
		Slug:    "ilk-yazi",
		Type:    models.PostTypeBlog,
		Locale:  "tr",
		Title:   "İlk Yazı",
		Content: "# Merhaba",
		Publish: true,
	})
	require.NoError(t, err)

	_, err = s.SavePost(PostInput{
		Slug:   "taslak-yazi",
		Type:   models.PostTypeBlog,
		Locale: "tr",
		Title:  "Taslak",
	})
	require.NoError(t, err)

	posts, err := s.PublishedPosts(models.PostTypeBlog, "tr")
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "ilk-yazi", posts[0].Slug)

	post, err := s.PublishedPost(models.PostTypeBlog, "tr", "ilk-yazi")
	require.NoError(t, err)
	require.NotNil(t, post)

	post, err = s.PublishedPost(models.PostTypeBlog, "tr", "taslak-yazi")
	require.NoError(t, err)
	assert.Nil(t, post)

	post, err = s.PublishedPost(models.PostTypeBlog, "en", "ilk-yazi")
	require.NoError(t, err)
	assert.Nil(t, post)
}

func TestReaders_Settings(t *testing.T) {
	s, _ := setupStore(t)

	settings, err := s.Settings("tr")
	require.NoError(t, err)
	assert.Nil(t, settings)

	require.NoError(t, s.SaveSettings(&models.Setting{
		Locale:   "tr",
		SiteName: "TARF",
	}))

	settings, err = s.Settings("tr")
	require.NoError(t, err)
	require.NotNil(t, settings)
	assert.Equal(t, "TARF", settings.SiteName)
}

func TestReaders_FAQsOrdered(t *testing.T) {
	s, _ := setupStore(t)

	require.NoError(t, s.SaveFAQ(&models.FAQ{Question: "İkinci?", Answer: "Evet", Order: 2, Locale: "tr"}))
	require.NoError(t, s.SaveFAQ(&models.FAQ{Question: "Birinci?", Answer: "Evet", Order: 1, Locale: "tr"}))

	faqs, err := s.FAQs("tr")
	require.NoError(t, err)
	require.Len(t, faqs, 2)
	assert.Equal(t, "Birinci?", faqs[0].Question)
}
