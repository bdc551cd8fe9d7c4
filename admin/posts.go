package admin

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"

	"github.com/hasancaglar07/tarfcomtr-sub001/common"
	"github.com/hasancaglar07/tarfcomtr-sub001/models"
	"github.com/hasancaglar07/tarfcomtr-sub001/store"
)

func postType(c *gin.Context) (models.PostType, bool) {
	t := models.PostType(c.Param("type"))
	switch t {
	case models.PostTypeBlog, models.PostTypeEvent, models.PostTypeVideo,
		models.PostTypePodcast, models.PostTypeService:
		return t, true
	}
	return "", false
}

func localeOrDefault(c *gin.Context) string {
	locale := c.PostForm("locale")
	if !common.IsLocale(locale) {
		return common.DefaultLocale
	}
	return locale
}

func (a *AdminModule) listPosts(c *gin.Context) {
	t, ok := postType(c)
	if !ok {
		c.HTML(http.StatusNotFound, "admin_error.html", gin.H{"error": "Bilinmeyen içerik türü"})
		return
	}

	var posts []models.Post
	if err := a.db.Where("type = ?", t).Order("updated_at DESC").Find(&posts).Error; err != nil {
		c.HTML(http.StatusInternalServerError, "admin_error.html", gin.H{"error": "İçerikler yüklenemedi"})
		return
	}

	c.HTML(http.StatusOK, "admin_list_posts.html", gin.H{
		"type":  t,
		"posts": posts,
	})
}

func (a *AdminModule) savePost(c *gin.Context) {
	t, ok := postType(c)
	if !ok {
		c.JSON(http.StatusNotFound, errorState(store.ErrPostNotFound))
		return
	}

	var categoryID *uint
	if raw := c.PostForm("categoryId"); raw != "" {
		if id, err := strconv.ParseUint(raw, 10, 32); err == nil {
			v := uint(id)
			categoryID = &v
		}
	}

	post, err := a.store.SavePost(store.PostInput{
		Slug:           c.PostForm("slug"),
		Type:           t,
		Locale:         localeOrDefault(c),
		Title:          c.PostForm("title"),
		Excerpt:        c.PostForm("excerpt"),
		Content:        c.PostForm("content"),
		CategoryID:     categoryID,
		FeaturedImage:  c.PostForm("featuredImage"),
		SeoTitle:       c.PostForm("seoTitle"),
		SeoDescription: c.PostForm("seoDescription"),
		Publish:        c.PostForm("publish") != "",
	})
	if err != nil {
		c.JSON(statusFor(err), errorState(err))
		return
	}

	c.JSON(http.StatusOK, successState("İçerik kaydedildi", "/admin/posts/"+string(post.Type)))
}

func (a *AdminModule) deletePost(c *gin.Context) {
	t, ok := postType(c)
	if !ok {
		c.JSON(http.StatusNotFound, errorState(store.ErrPostNotFound))
		return
	}

	err := a.store.DeletePost(t, localeOrDefault(c), c.PostForm("slug"))
	if err != nil {
		c.JSON(statusFor(err), errorState(err))
		return
	}

	c.JSON(http.StatusOK, successState("İçerik silindi", "/admin/posts/"+string(t)))
}

func (a *AdminModule) saveCategory(c *gin.Context) {
	cat := models.Category{
		Slug:   c.PostForm("slug"),
		Name:   c.PostForm("name"),
		Type:   models.PostType(c.PostForm("type")),
		Locale: localeOrDefault(c),
	}
	if raw := c.PostForm("id"); raw != "" {
		if id, err := strconv.ParseUint(raw, 10, 32); err == nil {
			cat.ID = uint(id)
		}
	}

	if err := a.store.SaveCategory(&cat); err != nil {
		c.JSON(statusFor(err), errorState(err))
		return
	}
	c.JSON(http.StatusOK, successState("Kategori kaydedildi", "/admin/"))
}

func (a *AdminModule) deleteCategory(c *gin.Context) {
	id, err := strconv.ParseUint(c.PostForm("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorState(err))
		return
	}
	if err := a.store.DeleteCategory(uint(id)); err != nil {
		c.JSON(statusFor(err), errorState(err))
		return
	}
	c.JSON(http.StatusOK, successState("Kategori silindi", "/admin/"))
}

func (a *AdminModule) saveHero(c *gin.Context) {
	hero := models.Hero{
		Locale:          localeOrDefault(c),
		Title:           c.PostForm("title"),
		Subtitle:        c.PostForm("subtitle"),
		Description:     c.PostForm("description"),
		ButtonText:      c.PostForm("buttonText"),
		ButtonURL:       c.PostForm("buttonUrl"),
		BackgroundImage: c.PostForm("backgroundImage"),
	}
	if raw := c.PostForm("id"); raw != "" {
		if id, err := strconv.ParseUint(raw, 10, 32); err == nil {
			hero.ID = uint(id)
		}
	}

	if err := a.store.SaveHero(&hero); err != nil {
		c.JSON(statusFor(err), errorState(err))
		return
	}
	c.JSON(http.StatusOK, successState("Hero kaydedildi", "/admin/"))
}

func (a *AdminModule) saveFAQ(c *gin.Context) {
	order, _ := strconv.Atoi(c.PostForm("order"))
	faq := models.FAQ{
		Question: c.PostForm("question"),
		Answer:   c.PostForm("answer"),
		Order:    order,
		Locale:   localeOrDefault(c),
	}
	if raw := c.PostForm("id"); raw != "" {
		if id, err := strconv.ParseUint(raw, 10, 32); err == nil {
			faq.ID = uint(id)
		}
	}

	if err := a.store.SaveFAQ(&faq); err != nil {
		c.JSON(statusFor(err), errorState(err))
		return
	}
	c.JSON(http.StatusOK, successState("SSS kaydedildi", "/admin/"))
}

func (a *AdminModule) deleteFAQ(c *gin.Context) {
	id, err := strconv.ParseUint(c.PostForm("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorState(err))
		return
	}
	if err := a.store.DeleteFAQ(uint(id)); err != nil {
		c.JSON(statusFor(err), errorState(err))
		return
	}
	c.JSON(http.StatusOK, successState("SSS silindi", "/admin/"))
}

func (a *AdminModule) saveSettings(c *gin.Context) {
	locale := localeOrDefault(c)

	var setting models.Setting
	a.db.Where("locale = ?", locale).First(&setting)

	setting.Locale = locale
	setting.SiteName = c.PostForm("siteName")
	setting.SiteDescription = c.PostForm("siteDescription")
	setting.ContactEmail = c.PostForm("contactEmail")
	setting.ContactPhone = c.PostForm("contactPhone")
	setting.ContactAddress = c.PostForm("contactAddress")
	if social := c.PostForm("social"); social != "" {
		setting.Social = datatypes.JSON(social)
	}

	if err := a.store.SaveSettings(&setting); err != nil {
		c.JSON(statusFor(err), errorState(err))
		return
	}
	c.JSON(http.StatusOK, successState("Ayarlar kaydedildi", "/admin/"))
}
