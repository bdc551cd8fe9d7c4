package admin

import (
	"errors"
	"net/http"
	"net/url"
	"testing"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasancaglar07/tarfcomtr-sub001/content"
	"github.com/hasancaglar07/tarfcomtr-sub001/models"
	"github.com/hasancaglar07/tarfcomtr-sub001/slug"
	"github.com/hasancaglar07/tarfcomtr-sub001/store"
)

func pageForm(slugValue string, publish bool) url.Values {
	form := url.Values{
		"slug":     {slugValue},
		"category": {"kurumsal"},
		"title":    {"Test Sayfası"},
		"dataJson": {testBody},
	}
	if publish {
		form.Set("publish", "on")
	}
	return form
}

func TestCreatePage_Success(t *testing.T) {
	_, router, db := newTestAdmin()
	cookies := loginAs(t, router, db)

	w := postForm(router, cookies, "/admin/pages/create", pageForm("Hakkımızda", true))

	require.Equal(t, http.StatusOK, w.Code)
	state := decodeState(t, w)
	assert.Equal(t, ActionSuccess, state.Status)
	assert.Equal(t, "/admin/pages/edit/hakkimizda", state.Redirect)

	var rec models.ContentPage
	require.NoError(t, db.Where("slug = ?", "hakkimizda").First(&rec).Error)
	assert.Equal(t, models.StatusPublished, rec.Status)
	assert.NotNil(t, rec.PublishedAt)
}

func TestCreatePage_ReservedSlug(t *testing.T) {
	_, router, db := newTestAdmin()
	cookies := loginAs(t, router, db)

	w := postForm(router, cookies, "/admin/pages/create", pageForm("new", false))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	state := decodeState(t, w)
	assert.Equal(t, ActionError, state.Status)

	var count int64
	db.Model(&models.ContentPage{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestCreatePage_DuplicateSlugConflict(t *testing.T) {
	_, router, db := newTestAdmin()
	cookies := loginAs(t, router, db)

	w := postForm(router, cookies, "/admin/pages/create", pageForm("hakkimizda", true))
	require.Equal(t, http.StatusOK, w.Code)

	w = postForm(router, cookies, "/admin/pages/create", pageForm("Hakkımızda", false))
	assert.Equal(t, http.StatusConflict, w.Code)

	state := decodeState(t, w)
	assert.Equal(t, ActionError, state.Status)
	assert.Contains(t, state.Message, "slug")
}

func TestCreatePage_MalformedBody(t *testing.T) {
	_, router, db := newTestAdmin()
	cookies := loginAs(t, router, db)

	form := pageForm("bozuk", false)
	form.Set("dataJson", "{bozuk")
	w := postForm(router, cookies, "/admin/pages/create", form)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreatePage_SchemaViolation(t *testing.T) {
	_, router, db := newTestAdmin()
	cookies := loginAs(t, router, db)

	form := pageForm("eksik", false)
	form.Set("dataJson", `{"hero": {"subtitle": "x"}, "sections": []}`)
	w := postForm(router, cookies, "/admin/pages/create", form)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	state := decodeState(t, w)
	assert.Contains(t, state.Message, "hero.title")
}

func TestUpdatePage_Rename(t *testing.T) {
	_, router, db := newTestAdmin()
	cookies := loginAs(t, router, db)

	postForm(router, cookies, "/admin/pages/create", pageForm("eski", true))

	form := pageForm("yeni", true)
	form.Set("originalSlug", "eski")
	w := postForm(router, cookies, "/admin/pages/update", form)

	require.Equal(t, http.StatusOK, w.Code)
	state := decodeState(t, w)
	assert.Equal(t, "/admin/pages/edit/yeni", state.Redirect)

	var count int64
	db.Model(&models.ContentPage{}).Where("slug = ?", "eski").Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestTogglePage_PublishAndUnpublish(t *testing.T) {
	_, router, db := newTestAdmin()
	cookies := loginAs(t, router, db)

	postForm(router, cookies, "/admin/pages/create", pageForm("hakkimizda", false))

	w := postForm(router, cookies, "/admin/pages/toggle", url.Values{
		"slug": {"hakkimizda"}, "publish": {"true"},
	})
	require.Equal(t, http.StatusOK, w.Code)

	var rec models.ContentPage
	require.NoError(t, db.Where("slug = ?", "hakkimizda").First(&rec).Error)
	assert.Equal(t, models.StatusPublished, rec.Status)
	require.NotNil(t, rec.PublishedAt)

	w = postForm(router, cookies, "/admin/pages/toggle", url.Values{
		"slug": {"hakkimizda"},
	})
	require.Equal(t, http.StatusOK, w.Code)

	var after models.ContentPage
	require.NoError(t, db.Where("slug = ?", "hakkimizda").First(&after).Error)
	assert.Equal(t, models.StatusDraft, after.Status)
	assert.Nil(t, after.PublishedAt)
}

func TestDeletePage_MissingIs404(t *testing.T) {
	_, router, db := newTestAdmin()
	cookies := loginAs(t, router, db)

	w := postForm(router, cookies, "/admin/pages/delete", url.Values{"slug": {"yok"}})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSavePost_Success(t *testing.T) {
	_, router, db := newTestAdmin()
	cookies := loginAs(t, router, db)

	w := postForm(router, cookies, "/admin/posts/blog/save", url.Values{
		"slug":    {"İlk Yazı"},
		"locale":  {"tr"},
		"title":   {"İlk Yazı"},
		"content": {"# Merhaba"},
		"publish": {"on"},
	})
	require.Equal(t, http.StatusOK, w.Code)

	var post models.Post
	require.NoError(t, db.Where("slug = ?", "ilk-yazi").First(&post).Error)
	assert.Equal(t, models.PostTypeBlog, post.Type)
	assert.Equal(t, models.StatusPublished, post.Status)
}

func TestSavePost_UnknownType(t *testing.T) {
	_, router, db := newTestAdmin()
	cookies := loginAs(t, router, db)

	w := postForm(router, cookies, "/admin/posts/bulletin/save", url.Values{
		"slug": {"x"}, "title": {"X"},
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestStatusFor(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not found", store.ErrNotFound, http.StatusNotFound},
		{"post not found", store.ErrPostNotFound, http.StatusNotFound},
		{"slug taken", store.ErrSlugTaken, http.StatusConflict},
		{"title required", store.ErrTitleRequired, http.StatusBadRequest},
		{"invalid category", store.ErrInvalidCategory, http.StatusBadRequest},
		{"malformed json", content.ErrMalformedJSON, http.StatusBadRequest},
		{"empty slug", slug.ErrEmpty, http.StatusBadRequest},
		{"reserved slug", slug.ErrReserved, http.StatusBadRequest},
		{"schema violation", validation.Errors{"hero.title": errors.New("zorunludur")}, http.StatusBadRequest},
		{"database failure", errors.New("disk I/O error"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusFor(tt.err))
		})
	}
}
