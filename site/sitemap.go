package site

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hasancaglar07/tarfcomtr-sub001/cache"
	"github.com/hasancaglar07/tarfcomtr-sub001/common"
	"github.com/hasancaglar07/tarfcomtr-sub001/models"
)

func (s *SiteModule) sitemap(c *gin.Context) {
	domain := os.Getenv("DOMAIN")
	if domain == "" {
		domain = "http://localhost"
	}
	domain = strings.TrimSuffix(domain, "/")

	var sitemap strings.Builder
	sitemap.WriteString(`<?xml version="1.0" encoding="UTF-8"?>`)
	sitemap.WriteString("\n")
	sitemap.WriteString(`<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">`)
	sitemap.WriteString("\n")

	sitemap.WriteString("  <url>\n")
	sitemap.WriteString("    <loc>" + domain + "/</loc>\n")
	sitemap.WriteString("    <changefreq>weekly</changefreq>\n")
	sitemap.WriteString("    <priority>1.0</priority>\n")
	sitemap.WriteString("  </url>\n")

	for _, locale := range common.Locales {
		sitemap.WriteString("  <url>\n")
		sitemap.WriteString("    <loc>" + domain + "/" + locale + "</loc>\n")
		sitemap.WriteString("    <changefreq>weekly</changefreq>\n")
		sitemap.WriteString("    <priority>0.9</priority>\n")
		sitemap.WriteString("  </url>\n")
	}

	pages, err := s.store.ListPublishedPages()
	if err == nil {
		for _, page := range pages {
			for _, locale := range common.Locales {
				sitemap.WriteString("  <url>\n")
				sitemap.WriteString("    <loc>" + domain + "/" + locale + "/" + page.Slug + "</loc>\n")
				sitemap.WriteString("    <lastmod>" + page.UpdatedAt.Format(time.RFC3339) + "</lastmod>\n")
				sitemap.WriteString("    <changefreq>monthly</changefreq>\n")
				sitemap.WriteString("    <priority>0.7</priority>\n")
				sitemap.WriteString("  </url>\n")
			}
		}
	}

	for _, t := range []models.PostType{
		models.PostTypeBlog, models.PostTypeEvent, models.PostTypeVideo,
		models.PostTypePodcast, models.PostTypeService,
	} {
		segment := cache.PostSegment(t)
		for _, locale := range common.Locales {
			sitemap.WriteString("  <url>\n")
			sitemap.WriteString("    <loc>" + domain + "/" + locale + "/" + segment + "</loc>\n")
			sitemap.WriteString("    <changefreq>daily</changefreq>\n")
			sitemap.WriteString("    <priority>0.8</priority>\n")
			sitemap.WriteString("  </url>\n")

			posts, err := s.store.PublishedPosts(t, locale)
			if err != nil {
				continue
			}
			for _, post := range posts {
				sitemap.WriteString("  <url>\n")
				sitemap.WriteString("    <loc>" + domain + "/" + locale + "/" + segment + "/" + post.Slug + "</loc>\n")
				sitemap.WriteString("    <lastmod>" + post.UpdatedAt.Format(time.RFC3339) + "</lastmod>\n")
				sitemap.WriteString("    <changefreq>monthly</changefreq>\n")
				sitemap.WriteString("    <priority>0.6</priority>\n")
				sitemap.WriteString("  </url>\n")
			}
		}
	}

	sitemap.WriteString("</urlset>\n")

	c.Header("Content-Type", "application/xml; charset=utf-8")
	c.String(http.StatusOK, sitemap.String())
}
