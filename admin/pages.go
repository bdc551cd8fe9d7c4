package admin

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/hasancaglar07/tarfcomtr-sub001/content"
	"github.com/hasancaglar07/tarfcomtr-sub001/slug"
	"github.com/hasancaglar07/tarfcomtr-sub001/store"
)

func pageInputFromForm(c *gin.Context) store.PageInput {
	return store.PageInput{
		Slug:           c.PostForm("slug"),
		Category:       c.PostForm("category"),
		Title:          c.PostForm("title"),
		SeoTitle:       c.PostForm("seoTitle"),
		SeoDescription: c.PostForm("seoDescription"),
		DataJSON:       c.PostForm("dataJson"),
		Publish:        c.PostForm("publish") != "",
		OriginalSlug:   c.PostForm("originalSlug"),
	}
}

func (a *AdminModule) listPages(c *gin.Context) {
	pages, err := a.store.ListPages()
	if err != nil {
		c.HTML(http.StatusInternalServerError, "admin_error.html", gin.H{
			"error": "Sayfalar yüklenemedi",
		})
		return
	}

	c.HTML(http.StatusOK, "admin_list_pages.html", gin.H{
		"pages": pages,
	})
}

func (a *AdminModule) newPage(c *gin.Context) {
	c.HTML(http.StatusOK, "admin_page_form.html", gin.H{
		"mode":       "create",
		"categories": content.CategoryValues(),
	})
}

func (a *AdminModule) editPage(c *gin.Context) {
	slugParam := strings.TrimPrefix(c.Param("slug"), "/")

	page, err := a.store.GetPage(slugParam)
	if err != nil {
		c.HTML(http.StatusNotFound, "admin_error.html", gin.H{
			"error": "Sayfa bulunamadı",
		})
		return
	}

	c.HTML(http.StatusOK, "admin_page_form.html", gin.H{
		"mode":       "edit",
		"page":       page,
		"categories": content.CategoryValues(),
	})
}

// All write handlers answer with the tri-state action result; the
// failure branches never leak past this boundary.

func (a *AdminModule) createPage(c *gin.Context) {
	in := pageInputFromForm(c)

	rec, err := a.store.CreatePage(in)
	if err != nil {
		c.JSON(statusFor(err), errorState(err))
		return
	}

	c.JSON(http.StatusOK, successState("Sayfa oluşturuldu", "/admin/pages/edit/"+rec.Slug))
}

func (a *AdminModule) updatePage(c *gin.Context) {
	in := pageInputFromForm(c)

	rec, err := a.store.UpdatePage(in)
	if err != nil {
		c.JSON(statusFor(err), errorState(err))
		return
	}

	c.JSON(http.StatusOK, successState("Sayfa güncellendi", "/admin/pages/edit/"+rec.Slug))
}

func (a *AdminModule) deletePage(c *gin.Context) {
	slugParam := c.PostForm("slug")

	if err := a.store.DeletePage(slugParam); err != nil {
		c.JSON(statusFor(err), errorState(err))
		return
	}

	c.JSON(http.StatusOK, successState("Sayfa silindi", "/admin/pages"))
}

func (a *AdminModule) togglePage(c *gin.Context) {
	slugParam := c.PostForm("slug")
	publish := c.PostForm("publish") == "true"

	rec, err := a.store.SetPublished(slugParam, publish)
	if err != nil {
		c.JSON(statusFor(err), errorState(err))
		return
	}

	message := "Sayfa yayından kaldırıldı"
	if publish {
		message = "Sayfa yayınlandı"
	}
	c.JSON(http.StatusOK, ActionState{
		Status:   ActionSuccess,
		Message:  message,
		Redirect: "/admin/pages/edit/" + rec.Slug,
	})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, store.ErrNotFound),
		errors.Is(err, store.ErrPostNotFound),
		errors.Is(err, store.ErrApplicationNotFound):
		return http.StatusNotFound
	case errors.Is(err, store.ErrSlugTaken):
		return http.StatusConflict
	case errors.Is(err, store.ErrTitleRequired),
		errors.Is(err, store.ErrInvalidCategory),
		errors.Is(err, store.ErrInvalidStatus),
		errors.Is(err, content.ErrMalformedJSON),
		errors.Is(err, slug.ErrEmpty),
		errors.Is(err, slug.ErrReserved):
		return http.StatusBadRequest
	}
	var fieldErrs validation.Errors
	if errors.As(err, &fieldErrs) {
		return http.StatusBadRequest
	}
	var fieldErr validation.ErrorObject
	if errors.As(err, &fieldErr) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
