package site

import (
	"bytes"
	"errors"
	"html/template"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	htmlrenderer "github.com/yuin/goldmark/renderer/html"

	"github.com/hasancaglar07/tarfcomtr-sub001/cache"
	"github.com/hasancaglar07/tarfcomtr-sub001/common"
	"github.com/hasancaglar07/tarfcomtr-sub001/models"
	"github.com/hasancaglar07/tarfcomtr-sub001/store"
)

type SiteModule struct {
	store *store.ContentStore
}

// markdown renderer configured with Goldmark and useful extensions
var md = goldmark.New(
	goldmark.WithExtensions(
		extension.GFM,     // tables, strikethrough, task lists, autolinks (GFM set)
		extension.Linkify, // linkify raw URLs
	),
	goldmark.WithRendererOptions(
		htmlrenderer.WithUnsafe(), // allow raw HTML passthrough in Markdown
	),
)

func renderMarkdown(source string) string {
	var buf bytes.Buffer
	if err := md.Convert([]byte(source), &buf); err != nil {
		return template.HTMLEscapeString(source)
	}
	return buf.String()
}

// segmentTypes is the reverse of the public route segment mapping.
var segmentTypes = func() map[string]models.PostType {
	m := make(map[string]models.PostType)
	for _, t := range []models.PostType{
		models.PostTypeBlog, models.PostTypeEvent, models.PostTypeVideo,
		models.PostTypePodcast, models.PostTypeService,
	} {
		m[cache.PostSegment(t)] = t
	}
	return m
}()

func NewSiteModule(st *store.ContentStore) *SiteModule {
	return &SiteModule{store: st}
}

func (s *SiteModule) RegisterRoutes(router *gin.Engine) {
	router.GET("/", s.index)
	router.GET("/sitemap.xml", s.sitemap)
	router.POST("/api/applications", s.submitApplication)
	router.GET("/:locale", s.home)
	router.GET("/:locale/*rest", s.localePath)
}

// submitApplication accepts the public contact/application form. The
// notification mail the admin receives is handled out of process.
func (s *SiteModule) submitApplication(c *gin.Context) {
	var in store.ApplicationInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Form verisi eksik veya hatalı"})
		return
	}

	app, err := s.store.SubmitApplication(in)
	if err != nil {
		var fieldErrs validation.Errors
		if errors.As(err, &fieldErrs) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Başvuru kaydedilemedi"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "id": app.ID})
}

func (s *SiteModule) index(c *gin.Context) {
	s.renderHome(c, common.DefaultLocale)
}

func (s *SiteModule) home(c *gin.Context) {
	locale := c.Param("locale")
	if !common.IsLocale(locale) {
		s.notFound(c)
		return
	}
	s.renderHome(c, locale)
}

func (s *SiteModule) renderHome(c *gin.Context, locale string) {
	heroes, err := s.store.Heroes(locale)
	if err != nil {
		s.serverError(c)
		return
	}
	faqs, err := s.store.FAQs(locale)
	if err != nil {
		s.serverError(c)
		return
	}
	settings, err := s.store.Settings(locale)
	if err != nil {
		s.serverError(c)
		return
	}
	posts, err := s.store.PublishedPosts(models.PostTypeBlog, locale)
	if err != nil {
		s.serverError(c)
		return
	}

	c.HTML(http.StatusOK, "site_home.html", gin.H{
		"locale":   locale,
		"heroes":   heroes,
		"faqs":     faqs,
		"settings": settings,
		"posts":    posts,
	})
}

// localePath dispatches /:locale/*rest to post lists, post details or
// content pages. Content page slugs may contain slashes, so everything
// under a locale shares one wildcard route.
func (s *SiteModule) localePath(c *gin.Context) {
	locale := c.Param("locale")
	if !common.IsLocale(locale) {
		s.notFound(c)
		return
	}

	rest := strings.Trim(c.Param("rest"), "/")
	if rest == "" {
		s.renderHome(c, locale)
		return
	}

	head, tail, _ := strings.Cut(rest, "/")
	if t, ok := segmentTypes[head]; ok {
		if tail == "" {
			s.postList(c, t, locale)
		} else {
			s.postDetail(c, t, locale, tail)
		}
		return
	}

	s.contentPage(c, locale, rest)
}

func (s *SiteModule) contentPage(c *gin.Context, locale, slugValue string) {
	page, err := s.store.GetPublishedPage(slugValue)
	if err != nil {
		s.serverError(c)
		return
	}
	if page == nil {
		s.notFound(c)
		return
	}

	title, description := page.SEO()
	c.HTML(http.StatusOK, "site_page.html", gin.H{
		"locale":      locale,
		"page":        page,
		"body":        page.Body,
		"title":       title,
		"description": description,
	})
}

func (s *SiteModule) postList(c *gin.Context, t models.PostType, locale string) {
	posts, err := s.store.PublishedPosts(t, locale)
	if err != nil {
		s.serverError(c)
		return
	}
	categories, err := s.store.Categories(locale, t)
	if err != nil {
		s.serverError(c)
		return
	}

	c.HTML(http.StatusOK, "site_posts.html", gin.H{
		"locale":     locale,
		"type":       t,
		"segment":    cache.PostSegment(t),
		"posts":      posts,
		"categories": categories,
	})
}

func (s *SiteModule) postDetail(c *gin.Context, t models.PostType, locale, slugValue string) {
	post, err := s.store.PublishedPost(t, locale, slugValue)
	if err != nil {
		s.serverError(c)
		return
	}
	if post == nil {
		s.notFound(c)
		return
	}

	c.HTML(http.StatusOK, "site_post.html", gin.H{
		"locale":      locale,
		"type":        t,
		"post":        post,
		"contentHTML": template.HTML(renderMarkdown(post.Content)),
	})
}

func (s *SiteModule) notFound(c *gin.Context) {
	c.HTML(http.StatusNotFound, "site_error.html", gin.H{
		"error": "Sayfa bulunamadı",
	})
}

func (s *SiteModule) serverError(c *gin.Context) {
	c.HTML(http.StatusInternalServerError, "site_error.html", gin.H{
		"error": "Sayfa yüklenemedi",
	})
}
